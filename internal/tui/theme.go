package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette: neon terminal aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. Band colors come from
// analysis.Classify and the avatar color from the profile hue;
// everything else uses this palette.

var (
	// Base
	colorBg        = lipgloss.Color("#0a0a12")
	colorBgSurface = lipgloss.Color("#12121f")
	colorTrack     = lipgloss.Color("#1a1a2e")

	// Text
	colorText      = lipgloss.Color("#e6e6f0")
	colorTextDim   = lipgloss.Color("#8888aa")
	colorTextMuted = lipgloss.Color("#44445f")

	// Accents
	colorCyan  = lipgloss.Color("#00d4ff")
	colorGreen = lipgloss.Color("#00ff88")
	colorPink  = lipgloss.Color("#ff3366")
	colorRed   = lipgloss.Color("#ff6b6b")

	// Structural
	colorDivider = lipgloss.Color("#2a2a40")
)

// Gauge gradient stops, left to right.
var gaugeStops = []string{"#ff6b6b", "#00d4ff", "#00ff88"}

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPink)

	headerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerOnlineStyle = lipgloss.NewStyle().
				Foreground(colorGreen)
)

// Input form
var (
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	inputBoxFocusedStyle = inputBoxStyle.
				BorderForeground(colorCyan)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorCyan).
			Bold(true).
			Padding(0, 2).
			MarginLeft(1)

	buttonBusyStyle = buttonStyle.
			Background(colorTextMuted).
			Foreground(colorText)
)

// Cards
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	cardDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	cardMutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	cardTextStyle = lipgloss.NewStyle().
			Foreground(colorText)

	nameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	verifiedStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	statValueStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorDivider)
)

// Gauge
var (
	gaugeTrackStyle = lipgloss.NewStyle().
			Foreground(colorTrack)

	gaugeLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	gaugeValueStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)
)

// Posts timeline
var (
	postTimeStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	postDotStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	postHandleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	postTextStyle = lipgloss.NewStyle().
			Foreground(colorText)

	postStatStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	timelineLineStyle = lipgloss.NewStyle().
				Foreground(colorDivider)
)

// Loading + empty state
var (
	loadingTextStyle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)

	emptyIconStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)
