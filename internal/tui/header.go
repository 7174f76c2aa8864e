package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	X_ANALYTICS  // PROFILE INTELLIGENCE SYSTEM            ● SYSTEM ONLINE
func renderHeader(m *Model) string {
	left := headerBrandStyle.Render("X") +
		headerTitleStyle.Render("_ANALYTICS") +
		headerMetaStyle.Render("  // PROFILE INTELLIGENCE SYSTEM")
	right := headerOnlineStyle.Render("●") + headerMetaStyle.Render(" SYSTEM ONLINE")

	// Inner width excludes the bar's horizontal padding.
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return headerBarStyle.Width(m.width).Render(left)
	}

	return headerBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		left = statusStyle.Render(m.statusMsg)
	}

	hints := []hint{{"enter", "analyze"}, {"esc", "quit"}}
	if m.state == StateResult {
		hints = []hint{{"enter", "analyze"}, {"↑↓", "scroll"}, {"esc", "quit"}}
	}
	right := renderHints(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
