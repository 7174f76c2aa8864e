package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ────────────────────────────────────────────────────────────
// Color helpers
// ────────────────────────────────────────────────────────────

// avatarColor converts a profile hue to the hex color of hsl(hue, 70%, 50%).
func avatarColor(hue int) lipgloss.Color {
	return lipgloss.Color(colorful.Hsl(float64(hue%360), 0.7, 0.5).Clamped().Hex())
}

// gradientAt returns the gauge gradient color at position t in [0, 1].
func gradientAt(t float64) lipgloss.Color {
	t = clampFloat(t, 0, 1)
	segments := len(gaugeStops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		return lipgloss.Color(gaugeStops[segments])
	}
	if pos == float64(i) {
		return lipgloss.Color(gaugeStops[i])
	}
	from, _ := colorful.Hex(gaugeStops[i])
	to, _ := colorful.Hex(gaugeStops[i+1])
	return lipgloss.Color(from.BlendLab(to, pos-float64(i)).Clamped().Hex())
}

// ────────────────────────────────────────────────────────────
// Layout helpers
// ────────────────────────────────────────────────────────────

// placeholder reserves the footprint of a view that has not revealed yet,
// so later reveals do not shift the layout.
func placeholder(rendered string) string {
	return lipgloss.NewStyle().
		Width(lipgloss.Width(rendered)).
		Height(lipgloss.Height(rendered)).
		Render("")
}

// decoration renders a centered label between two divider lines.
func decoration(label string, width int) string {
	side := (width - lipgloss.Width(label) - 2) / 2
	if side < 1 {
		return cardMutedStyle.Render(label)
	}
	line := dividerStyle.Render(strings.Repeat("─", side))
	return line + " " + cardMutedStyle.Render(label) + " " + line
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func clampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
