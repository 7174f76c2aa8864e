package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/xanalytics/internal/schedule"
	"github.com/charmbracelet/lipgloss"
)

// postHeight is the number of lines one timeline entry occupies.
const postHeight = 3

// renderPosts renders today's posts. Each post keeps its slot while hidden
// and appears on its own reveal cue.
func renderPosts(m *Model, width int) string {
	posts := m.record.DailyPosts
	inner := width - 6

	title := cardTitleStyle.Render("TODAY'S POSTS")
	count := cardDimStyle.Render(fmt.Sprintf("%d ENTRIES", len(posts)))
	gap := maxInt(1, inner-lipgloss.Width(title)-lipgloss.Width(count))
	header := title + strings.Repeat(" ", gap) + count

	var lines []string
	lines = append(lines, header, "")

	if len(posts) == 0 {
		lines = append(lines,
			emptyIconStyle.Render("◯")+"  "+cardTextStyle.Render("No posts detected for today."),
			"   "+cardMutedStyle.Render("// USER INACTIVE"))
		return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
	}

	for i, post := range posts {
		if !m.revealed(schedule.PostCue(i)) {
			lines = append(lines, strings.Repeat("\n", postHeight-1))
			continue
		}

		rail := timelineLineStyle.Render("│")
		if i == len(posts)-1 {
			rail = " "
		}
		textWidth := maxInt(10, inner-10)

		lines = append(lines,
			postTimeStyle.Render(post.Time)+" "+postDotStyle.Render("●")+"  "+
				postHandleStyle.Render("@"+m.record.Handle),
			"  "+rail+"     "+postTextStyle.Render(truncate(post.Text, textWidth)),
			"  "+rail+"     "+postStatStyle.Render(
				fmt.Sprintf("♡ %d   ⟲ %d   ◬ %d", post.Likes, post.Retweets, post.Replies)))
	}

	lines = append(lines, "", decoration("END_OF_FEED", inner))
	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
