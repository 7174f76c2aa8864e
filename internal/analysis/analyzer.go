// Package analysis derives the engagement read-outs shown next to a
// generated profile: the engagement band, the cosmetic average metrics, the
// gauge easing curve and a markdown report for the command line.
//
// Everything here is arithmetic over a profile.Record; nothing is measured.
package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/xanalytics/internal/profile"
	"github.com/Mr-Dark-debug/xanalytics/pkg/numfmt"
	"github.com/Mr-Dark-debug/xanalytics/pkg/timeutil"
)

// ErrEmptyHandle is returned when the handle is empty after normalization.
var ErrEmptyHandle = errors.New("handle is empty")

// Analyzer generates profiles and assembles reports about them.
type Analyzer struct {
	gen   *profile.Generator
	clock timeutil.Clock
}

// NewAnalyzer creates an analyzer backed by the given generator.
func NewAnalyzer(gen *profile.Generator, clock timeutil.Clock) *Analyzer {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}
	return &Analyzer{gen: gen, clock: clock}
}

// Report bundles a profile with its derived engagement read-outs.
type Report struct {
	Profile     profile.Record `json:"profile"`
	Band        Band           `json:"band"`
	Metrics     Metrics        `json:"metrics"`
	GeneratedAt string         `json:"generated_at"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// FullAnalysis normalizes raw input, generates its profile and derives the
// engagement read-outs.
func (a *Analyzer) FullAnalysis(raw string) (*Report, error) {
	handle, ok := profile.Normalize(raw)
	if !ok {
		return nil, fmt.Errorf("analyzing %q: %w", raw, ErrEmptyHandle)
	}

	rec := a.gen.Generate(handle)
	report := &Report{
		Profile:     rec,
		Band:        Classify(rec.Engagement),
		Metrics:     Averages(rec.Engagement),
		GeneratedAt: a.clock.Now().UTC().Format(time.RFC3339),
	}

	if len(rec.DailyPosts) == 0 {
		report.Warnings = append(report.Warnings, "No posts detected for today. User inactive.")
	}
	if report.Band.Level == "MINIMAL" {
		report.Warnings = append(report.Warnings, report.Band.Description)
	}

	return report, nil
}

// FormatReport renders a report as markdown.
func (a *Analyzer) FormatReport(report *Report) string {
	var b strings.Builder
	p := report.Profile

	b.WriteString("# X_ANALYTICS Profile Report\n\n")
	verified := ""
	if p.Verified {
		verified = " ✓"
	}
	b.WriteString(fmt.Sprintf("**%s**%s `@%s`\n\n", p.Name, verified, p.Handle))
	b.WriteString(fmt.Sprintf("> %s\n\n", p.Bio))
	b.WriteString(fmt.Sprintf("**Joined:** %s  \n", p.JoinDate))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt))

	b.WriteString("## Profile\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Followers | %s |\n", numfmt.Compact(p.Followers)))
	b.WriteString(fmt.Sprintf("| Following | %s |\n", numfmt.Compact(p.Following)))
	b.WriteString(fmt.Sprintf("| Posts | %s |\n\n", numfmt.Compact(p.Tweets)))

	b.WriteString("## Engagement\n\n")
	b.WriteString(fmt.Sprintf("- **Rate:** %.1f%%\n", p.Engagement))
	b.WriteString(fmt.Sprintf("- **Level:** %s `%s`\n", report.Band.Level, report.Band.Indicator))
	b.WriteString(fmt.Sprintf("- **Posts Today:** %d\n", len(p.DailyPosts)))
	b.WriteString(fmt.Sprintf("- **Avg Likes:** ~%d\n", report.Metrics.AvgLikes))
	b.WriteString(fmt.Sprintf("- **Avg Retweets:** ~%d\n", report.Metrics.AvgRetweets))
	b.WriteString(fmt.Sprintf("- **Avg Replies:** ~%d\n\n", report.Metrics.AvgReplies))
	b.WriteString(report.Band.Description + "\n\n")

	if len(p.DailyPosts) > 0 {
		b.WriteString("## Today's Posts\n\n")
		b.WriteString("| Time | Post | ♡ | ⟲ | ◬ |\n")
		b.WriteString("|------|------|---|---|---|\n")
		for _, post := range p.DailyPosts {
			b.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %d |\n",
				post.Time, escapeCell(post.Text), post.Likes, post.Retweets, post.Replies))
		}
		b.WriteString("\n")
	}

	if len(report.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range report.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}

// escapeCell keeps pipes in post text from splitting a table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
