package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Mr-Dark-debug/xanalytics/internal/analysis"
	"github.com/Mr-Dark-debug/xanalytics/internal/schedule"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Arc gauge geometry
// ────────────────────────────────────────────────────────────

// The arc is a half ellipse twice as wide as tall to compensate for
// terminal cells being roughly twice as tall as they are wide.
const (
	gaugeRadius = 6
	gaugeRows   = gaugeRadius + 1
	gaugeCols   = 4*gaugeRadius + 1
	gaugeCX     = 2 * gaugeRadius
	gaugeCY     = gaugeRadius
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellTrack
	cellFill
	cellNeedle
	cellHub
)

type gaugeCell struct {
	kind cellKind
	char rune
	pos  float64 // position along the arc in [0, 1], for fill cells
}

// gaugeGrid lays out the arc with the portion up to angle (degrees, 0 at
// the left end, 180 at the right end) filled, and the needle pointing at
// angle from the hub.
func gaugeGrid(angle float64) [gaugeRows][gaugeCols]gaugeCell {
	var grid [gaugeRows][gaugeCols]gaugeCell

	for deg := 0; deg <= 180; deg++ {
		x, y := arcPoint(float64(deg), 1)
		cell := &grid[y][x]
		if angle > 0 && float64(deg) <= angle+1e-9 {
			*cell = gaugeCell{kind: cellFill, char: '●', pos: float64(deg) / 180}
		} else if cell.kind != cellFill {
			*cell = gaugeCell{kind: cellTrack, char: '·'}
		}
	}

	needle := needleRune(angle)
	for r := 0.15; r <= 0.71; r += 0.08 {
		x, y := arcPoint(angle, r)
		grid[y][x] = gaugeCell{kind: cellNeedle, char: needle}
	}
	grid[gaugeCY][gaugeCX] = gaugeCell{kind: cellHub, char: '◉'}

	return grid
}

// arcPoint returns the grid cell at angle degrees and fraction r of the
// radius from the hub.
func arcPoint(angle, r float64) (x, y int) {
	theta := angle * math.Pi / 180
	x = int(math.Round(gaugeCX - float64(2*gaugeRadius)*r*math.Cos(theta)))
	y = int(math.Round(gaugeCY - float64(gaugeRadius)*r*math.Sin(theta)))
	return clamp(x, 0, gaugeCols-1), clamp(y, 0, gaugeRows-1)
}

// needleRune picks the line glyph closest to the needle direction.
func needleRune(angle float64) rune {
	switch {
	case angle < 22.5 || angle > 157.5:
		return '─'
	case angle < 67.5:
		return '╲'
	case angle <= 112.5:
		return '│'
	default:
		return '╱'
	}
}

// renderGauge styles the arc grid for the current gauge value.
func renderGauge(value float64, band analysis.Band) string {
	grid := gaugeGrid(analysis.NeedleAngle(value))
	bandStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(band.Color))

	lines := make([]string, 0, gaugeRows+1)
	for _, row := range grid {
		var b strings.Builder
		for _, c := range row {
			ch := string(c.char)
			switch c.kind {
			case cellEmpty:
				b.WriteString(" ")
			case cellTrack:
				b.WriteString(gaugeTrackStyle.Render(ch))
			case cellFill:
				b.WriteString(lipgloss.NewStyle().Foreground(gradientAt(c.pos)).Render(ch))
			case cellNeedle, cellHub:
				b.WriteString(bandStyle.Render(ch))
			}
		}
		lines = append(lines, b.String())
	}

	lo := gaugeLabelStyle.Render("0%")
	hi := gaugeLabelStyle.Render("15%")
	mid := gaugeValueStyle.Render(formatGaugeValue(value) + "%")
	gap := gaugeCols - lipgloss.Width(lo) - lipgloss.Width(hi) - lipgloss.Width(mid)
	left := gap / 2
	lines = append(lines, lo+strings.Repeat(" ", left)+mid+strings.Repeat(" ", gap-left)+hi)

	return strings.Join(lines, "\n")
}

// formatGaugeValue prints the animated value the shortest way, so settled
// integers read "7" rather than "7.0".
func formatGaugeValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ────────────────────────────────────────────────────────────
// Engagement card
// ────────────────────────────────────────────────────────────

// renderEngagementCard renders the engagement view: gauge, band badge,
// indicator bar, description and the average metrics.
func renderEngagementCard(m *Model, width int) string {
	card := cardStyle.Width(width - 2).Render(engagementContent(m, width-6))
	if !m.revealed(schedule.CueEngagement) {
		return placeholder(card)
	}
	return card
}

func engagementContent(m *Model, width int) string {
	band := m.band
	bandColor := lipgloss.Color(band.Color)

	title := cardTitleStyle.Render("ENGAGEMENT RATE") + cardMutedStyle.Render("  // TODAY")
	gauge := lipgloss.PlaceHorizontal(width, lipgloss.Center, renderGauge(m.gaugeValue, band))

	badge := lipgloss.NewStyle().
		Background(bandColor).
		Foreground(colorBg).
		Bold(true).
		Padding(0, 1).
		Render(band.Level)
	level := badge + "  " + cardDimStyle.Render(fmt.Sprintf("%d POSTS TODAY", len(m.record.DailyPosts)))

	indicator := lipgloss.NewStyle().Foreground(bandColor).Render(band.Indicator)
	desc := cardTextStyle.Width(width).Render(band.Description)

	metrics := renderStats(width, []stat{
		{fmt.Sprintf("~%d", m.metrics.AvgLikes), "AVG LIKES"},
		{fmt.Sprintf("~%d", m.metrics.AvgRetweets), "AVG RETWEETS"},
		{fmt.Sprintf("~%d", m.metrics.AvgReplies), "AVG REPLIES"},
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		gauge,
		"",
		level,
		indicator,
		desc,
		"",
		metrics)
}
