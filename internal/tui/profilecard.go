package tui

import (
	"github.com/Mr-Dark-debug/xanalytics/internal/schedule"
	"github.com/Mr-Dark-debug/xanalytics/pkg/numfmt"
	"github.com/charmbracelet/lipgloss"
)

// renderProfileCard renders the identity view: avatar, name, verified
// badge, handle, bio, join date and the three counters.
func renderProfileCard(m *Model, width int) string {
	card := cardStyle.Width(width - 2).Render(profileCardContent(m, width-6))
	if !m.revealed(schedule.CueProfileCard) {
		return placeholder(card)
	}
	return card
}

func profileCardContent(m *Model, width int) string {
	rec := m.record

	avatar := lipgloss.NewStyle().
		Background(avatarColor(rec.Hue)).
		Foreground(colorBg).
		Bold(true).
		Padding(1, 2).
		Render(rec.Initial())

	name := nameStyle.Render(truncate(rec.Name, width-12))
	if rec.Verified {
		name += " " + verifiedStyle.Render("✓")
	}
	identity := lipgloss.JoinVertical(lipgloss.Left,
		"",
		name,
		cardDimStyle.Render("@"+rec.Handle))
	head := lipgloss.JoinHorizontal(lipgloss.Top, avatar, "  ", identity)

	bio := cardTextStyle.Width(width).Render(rec.Bio)
	joined := cardDimStyle.Render("Joined " + rec.JoinDate)

	stats := renderStats(width, []stat{
		{numfmt.Compact(rec.Followers), "FOLLOWERS"},
		{numfmt.Compact(rec.Following), "FOLLOWING"},
		{numfmt.Compact(rec.Tweets), "POSTS"},
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		head,
		"",
		bio,
		"",
		joined,
		"",
		stats,
		"",
		decoration("USER_DATA", width))
}

type stat struct {
	value string
	label string
}

// renderStats lays counters out in equal columns separated by dividers.
func renderStats(width int, stats []stat) string {
	col := maxInt((width-(len(stats)-1)*3)/len(stats), 9)
	sep := dividerStyle.Render(" │ ")

	cells := make([]string, len(stats))
	for i, s := range stats {
		cells[i] = lipgloss.NewStyle().Width(col).Render(
			statValueStyle.Render(s.value) + "\n" + statLabelStyle.Render(s.label))
	}

	seps := sep + "\n" + sep
	var parts []string
	for i, c := range cells {
		if i > 0 {
			parts = append(parts, seps)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
