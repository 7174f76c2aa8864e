package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAvatarColor(t *testing.T) {
	// hsl(0, 70%, 50%) and hsl(120, 70%, 50%)
	if got := strings.ToLower(string(avatarColor(0))); got != "#d92626" {
		t.Errorf("expected #d92626 for hue 0, got %s", got)
	}
	if got := strings.ToLower(string(avatarColor(120))); got != "#26d926" {
		t.Errorf("expected #26d926 for hue 120, got %s", got)
	}
	if avatarColor(360) != avatarColor(0) {
		t.Error("expected hue 360 to wrap to 0")
	}
}

func TestGradientEnds(t *testing.T) {
	if got := string(gradientAt(0)); got != gaugeStops[0] {
		t.Errorf("expected first stop, got %s", got)
	}
	if got := string(gradientAt(1)); got != gaugeStops[len(gaugeStops)-1] {
		t.Errorf("expected last stop, got %s", got)
	}
}

func TestPlaceholderKeepsFootprint(t *testing.T) {
	card := cardStyle.Width(20).Render("a\nb\nc")
	ph := placeholder(card)
	if lipgloss.Width(ph) != lipgloss.Width(card) || lipgloss.Height(ph) != lipgloss.Height(card) {
		t.Errorf("placeholder %dx%d differs from card %dx%d",
			lipgloss.Width(ph), lipgloss.Height(ph), lipgloss.Width(card), lipgloss.Height(card))
	}
	if strings.TrimSpace(ph) != "" {
		t.Error("expected placeholder to be blank")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 8); got != "hello..." {
		t.Errorf("unexpected truncation %q", got)
	}
	if got := truncate("hi", 8); got != "hi" {
		t.Errorf("unexpected truncation %q", got)
	}
	if got := truncate("hello", 0); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
