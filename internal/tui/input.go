package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// buttonLabel is the submit button text for the current state.
func buttonLabel(m *Model) string {
	if m.state == StateLoading {
		return "SCANNING... ◌"
	}
	return "ANALYZE →"
}

// renderInput renders the handle field and its submit button.
func renderInput(m *Model) string {
	box := inputBoxStyle
	if m.input.Focused() {
		box = inputBoxFocusedStyle
	}
	field := box.Render(m.input.View())

	button := buttonStyle
	if m.state == StateLoading {
		button = buttonBusyStyle
	}
	// Match the bordered field's height so the button lines up.
	btn := button.
		Height(lipgloss.Height(field)).
		AlignVertical(lipgloss.Center).
		Render(buttonLabel(m))

	return lipgloss.NewStyle().Padding(1, 2, 0).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, field, btn))
}

// renderLoading renders the simulated fetch: a bar filling over the latency
// window and a spinner.
func renderLoading(m *Model) string {
	bar := m.progress.ViewAs(m.loadProgress())
	text := m.spinner.View() + " " + loadingTextStyle.Render("FETCHING DATA FROM X SERVERS...")
	return lipgloss.NewStyle().Padding(1, 4).Render(
		lipgloss.JoinVertical(lipgloss.Left, bar, "", text))
}

// renderEmptyState is shown before the first scan.
func renderEmptyState(m *Model) string {
	graphic := emptyIconStyle.Render("◯") + "  " +
		dividerStyle.Render("────────────") + "\n" +
		"   " + dividerStyle.Render("──────") + "\n" +
		"   " + dividerStyle.Render("─────────")
	empty := emptyStateStyle.Render(graphic + "\n\n" + "ENTER A HANDLE TO BEGIN ANALYSIS")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, empty)
}
