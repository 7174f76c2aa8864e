package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/xanalytics/internal/analysis"
	"github.com/Mr-Dark-debug/xanalytics/internal/profile"
	"github.com/Mr-Dark-debug/xanalytics/internal/schedule"
	"github.com/Mr-Dark-debug/xanalytics/pkg/timeutil"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ────────────────────────────────────────────────────────────
// Scan states
// ────────────────────────────────────────────────────────────

// State is the position of the dashboard in a scan lifecycle.
type State int

const (
	// StateIdle waits for a handle. A previous record may still be shown.
	StateIdle State = iota
	// StateLoading simulates the fetch latency.
	StateLoading
	// StateRevealing holds a computed record until results become visible.
	StateRevealing
	// StateResult shows the record; views reveal on their own cues.
	StateResult
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRevealing:
		return "revealing"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// ────────────────────────────────────────────────────────────
// Options
// ────────────────────────────────────────────────────────────

// Options configures a Model. Zero fields take the defaults below.
type Options struct {
	Generator     *profile.Generator
	Clock         timeutil.Clock
	Logger        *zap.Logger
	Latency       time.Duration
	RevealDelay   time.Duration
	FrameInterval time.Duration
}

const (
	defaultLatency       = 1500 * time.Millisecond
	defaultRevealDelay   = 100 * time.Millisecond
	defaultFrameInterval = 16 * time.Millisecond
)

func (o *Options) defaults() {
	if o.Generator == nil {
		o.Generator = profile.NewGenerator(profile.ModeFixed)
	}
	if o.Clock == nil {
		o.Clock = timeutil.SystemClock{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Latency == 0 {
		o.Latency = defaultLatency
	}
	if o.RevealDelay == 0 {
		o.RevealDelay = defaultRevealDelay
	}
	if o.FrameInterval == 0 {
		o.FrameInterval = defaultFrameInterval
	}
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the dashboard.
// State is organized by concern; rendering is delegated
// to component functions in separate files.
type Model struct {
	gen    *profile.Generator
	clock  timeutil.Clock
	logger *zap.Logger

	latency       time.Duration
	revealDelay   time.Duration
	frameInterval time.Duration

	// Data
	record  *profile.Record
	band    analysis.Band
	metrics analysis.Metrics

	// Scan lifecycle
	state       State
	scanID      string
	pending     string
	loadStarted time.Time
	reveal      *schedule.Timeline
	gaugeValue  float64

	// UI state
	input      textinput.Model
	spinner    spinner.Model
	progress   progress.Model
	bodyScroll int
	width      int
	height     int

	// Status
	statusMsg string
}

// NewModel creates a dashboard model.
func NewModel(opts Options) Model {
	opts.defaults()

	ti := textinput.New()
	ti.Prompt = "@ "
	ti.Placeholder = "enter_handle"
	ti.CharLimit = 64
	ti.Width = 32
	ti.PromptStyle = inputPromptStyle
	ti.TextStyle = cardTextStyle
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	bar := progress.New(
		progress.WithGradient(gaugeStops[0], gaugeStops[len(gaugeStops)-1]),
		progress.WithoutPercentage(),
	)

	return Model{
		gen:           opts.Generator,
		clock:         opts.Clock,
		logger:        opts.Logger,
		latency:       opts.Latency,
		revealDelay:   opts.RevealDelay,
		frameInterval: opts.FrameInterval,
		input:         ti,
		spinner:       sp,
		progress:      bar,
		statusMsg:     "Enter a handle to begin analysis",
	}
}

// State returns the current scan state.
func (m Model) State() State { return m.state }

// Record returns the record on display, or nil before the first scan.
func (m Model) Record() *profile.Record { return m.record }

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// Every timer message carries the scan it was armed for. Messages from a
// superseded scan are dropped, which also ends that scan's frame loop.

type scanDoneMsg struct{ scanID string }
type revealMsg struct{ scanID string }
type frameMsg struct{ scanID string }

func (m Model) after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (m Model) nextFrame() tea.Cmd {
	return m.after(m.frameInterval, frameMsg{scanID: m.scanID})
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = clamp(msg.Width-8, 10, 80)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case scanDoneMsg:
		if msg.scanID != m.scanID || m.state != StateLoading {
			return m.drop("scan done", msg.scanID)
		}
		return m.completeScan()

	case revealMsg:
		if msg.scanID != m.scanID || m.state != StateRevealing {
			return m.drop("reveal", msg.scanID)
		}
		m.state = StateResult
		m.reveal = schedule.Mount(schedule.ResultsPlan(len(m.record.DailyPosts)), m.clock)
		m.gaugeValue = 0
		m.logger.Debug("results shown", zap.String("scan_id", m.scanID))
		return m, m.nextFrame()

	case frameMsg:
		if msg.scanID != m.scanID {
			return m.drop("frame", msg.scanID)
		}
		return m.advanceFrame()

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state != StateLoading {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// drop logs and ignores a timer message armed by a superseded scan.
func (m Model) drop(kind, scanID string) (tea.Model, tea.Cmd) {
	m.logger.Debug("stale message dropped",
		zap.String("kind", kind),
		zap.String("scan_id", scanID),
		zap.String("current", m.scanID))
	return m, nil
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "up":
		if m.bodyScroll > 0 {
			m.bodyScroll--
		}
		return m, nil

	case "down":
		m.bodyScroll = clamp(m.bodyScroll+1, 0, m.maxScroll())
		return m, nil

	case "pgup":
		m.bodyScroll = maxInt(0, m.bodyScroll-10)
		return m, nil

	case "pgdown":
		m.bodyScroll = clamp(m.bodyScroll+10, 0, m.maxScroll())
		return m, nil
	}

	// The field is disabled while a scan is in flight.
	if m.state == StateLoading {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a scan for the typed handle. Empty input and submissions
// during an in-flight scan are ignored.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state == StateLoading {
		return m, nil
	}
	handle, ok := profile.Normalize(m.input.Value())
	if !ok {
		return m, nil
	}

	m.scanID = uuid.NewString()
	m.pending = handle
	m.state = StateLoading
	m.loadStarted = m.clock.Now()
	m.reveal = nil
	m.bodyScroll = 0
	m.input.Blur()
	m.statusMsg = fmt.Sprintf("Scanning @%s", handle)

	m.logger.Info("scan started",
		zap.String("scan_id", m.scanID),
		zap.String("handle", handle))

	return m, tea.Batch(
		m.after(m.latency, scanDoneMsg{scanID: m.scanID}),
		m.nextFrame(),
		m.spinner.Tick,
	)
}

// completeScan runs the generator once the simulated latency elapsed and
// arms the reveal delay.
func (m Model) completeScan() (tea.Model, tea.Cmd) {
	rec := m.gen.Generate(m.pending)
	m.record = &rec
	m.band = analysis.Classify(rec.Engagement)
	m.metrics = analysis.Averages(rec.Engagement)
	m.state = StateRevealing

	took := m.clock.Now().Sub(m.loadStarted)
	m.statusMsg = fmt.Sprintf("@%s scanned in %s", rec.Handle, timeutil.FormatDuration(took.Milliseconds()))
	blink := m.input.Focus()

	m.logger.Info("profile generated",
		zap.String("scan_id", m.scanID),
		zap.String("handle", rec.Handle),
		zap.Int("followers", rec.Followers),
		zap.Float64("engagement", rec.Engagement),
		zap.Int("posts", len(rec.DailyPosts)),
		zap.String("band", m.band.Level))

	return m, tea.Batch(m.after(m.revealDelay, revealMsg{scanID: m.scanID}), blink)
}

// advanceFrame samples the clock for the loading bar, the reveal cues and
// the gauge needle, and re-arms itself until nothing is left to animate.
func (m Model) advanceFrame() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLoading:
		return m, m.nextFrame()

	case StateResult:
		m.reveal.Advance()
		elapsed := m.reveal.Elapsed()
		m.gaugeValue = analysis.Position(elapsed, m.record.Engagement)
		if m.reveal.Done() && analysis.Settled(elapsed) {
			return m, nil
		}
		return m, m.nextFrame()
	}
	return m, nil
}

// loadProgress is the fraction of the simulated latency already elapsed.
func (m Model) loadProgress() float64 {
	if m.latency <= 0 {
		return 1
	}
	return clampFloat(float64(m.clock.Now().Sub(m.loadStarted))/float64(m.latency), 0, 1)
}

// revealed reports whether the named view cue has fired.
func (m Model) revealed(cue string) bool {
	return m.state == StateResult && m.reveal != nil && m.reveal.Revealed(cue)
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	form := renderInput(&m)
	footer := renderFooter(&m)

	body := m.viewport(m.renderBody(), m.bodyHeight())
	return lipgloss.JoinVertical(lipgloss.Left, header, form, body, footer)
}

// bodyHeight is the number of lines left for the body between the chrome.
func (m Model) bodyHeight() int {
	return m.height - lipgloss.Height(renderHeader(&m)) -
		lipgloss.Height(renderInput(&m)) - lipgloss.Height(renderFooter(&m))
}

// maxScroll is the largest scroll offset that still fills the viewport.
func (m Model) maxScroll() int {
	if m.width == 0 {
		return 0
	}
	return maxInt(0, lipgloss.Height(m.renderBody())-m.bodyHeight())
}

// renderBody picks the body for the current state.
func (m Model) renderBody() string {
	switch m.state {
	case StateLoading:
		return renderLoading(&m)
	case StateRevealing:
		return ""
	case StateResult:
		return m.renderResults()
	default:
		return renderEmptyState(&m)
	}
}

// renderResults assembles the profile card, engagement card and timeline.
func (m Model) renderResults() string {
	// Responsive: stack the cards on narrow terminals
	if m.width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left,
			renderProfileCard(&m, m.width),
			renderEngagementCard(&m, m.width),
			renderPosts(&m, m.width))
	}

	half := m.width / 2
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderProfileCard(&m, half),
		renderEngagementCard(&m, m.width-half))
	return lipgloss.JoinVertical(lipgloss.Left, cards, renderPosts(&m, m.width))
}

// viewport clips body to height lines starting at the scroll offset.
func (m Model) viewport(body string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(body, "\n")
	start := clamp(m.bodyScroll, 0, maxInt(0, len(lines)-height))
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(lines[start:end], "\n"))
}
