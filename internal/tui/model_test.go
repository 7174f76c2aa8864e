package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/xanalytics/internal/profile"
	"github.com/Mr-Dark-debug/xanalytics/internal/schedule"
	"github.com/Mr-Dark-debug/xanalytics/pkg/timeutil"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (Model, *timeutil.FakeClock) {
	t.Helper()
	clock := timeutil.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewModel(Options{Clock: clock})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	return m, clock
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func enter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// scanToResult drives a submitted scan through latency and reveal delay.
func scanToResult(t *testing.T, m Model, clock *timeutil.FakeClock) Model {
	t.Helper()
	clock.Advance(defaultLatency)
	m, _ = step(t, m, scanDoneMsg{scanID: m.scanID})
	clock.Advance(defaultRevealDelay)
	m, _ = step(t, m, revealMsg{scanID: m.scanID})
	if m.State() != StateResult {
		t.Fatalf("expected result state, got %s", m.State())
	}
	return m
}

func TestEmptySubmissionStaysIdle(t *testing.T) {
	for _, in := range []string{"", "   ", "@", " @ "} {
		m, _ := newTestModel(t)
		m = typeText(t, m, in)

		m, cmd := enter(t, m)
		if m.State() != StateIdle {
			t.Errorf("input %q: expected idle, got %s", in, m.State())
		}
		if cmd != nil {
			t.Errorf("input %q: expected no command", in)
		}
		if m.Record() != nil || m.scanID != "" {
			t.Errorf("input %q: generator must not run", in)
		}
	}
}

func TestSubmitStartsLoading(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "@abc")

	m, cmd := enter(t, m)
	if m.State() != StateLoading {
		t.Fatalf("expected loading, got %s", m.State())
	}
	if cmd == nil {
		t.Error("expected timers to be armed")
	}
	if m.pending != "abc" {
		t.Errorf("expected pending handle abc, got %q", m.pending)
	}
	if m.input.Focused() {
		t.Error("expected input to be disabled while loading")
	}

	view := m.View()
	for _, want := range []string{"FETCHING DATA FROM X SERVERS...", "SCANNING..."} {
		if !strings.Contains(view, want) {
			t.Errorf("loading view missing %q", want)
		}
	}
}

func TestSubmitIgnoredWhileLoading(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "abc")
	m, _ = enter(t, m)
	id := m.scanID

	m = typeText(t, m, "zzz")
	if got := m.input.Value(); got != "abc" {
		t.Errorf("expected typing to be ignored while loading, got %q", got)
	}

	m, cmd := enter(t, m)
	if m.scanID != id || cmd != nil {
		t.Error("expected second submission to be a no-op")
	}
}

func TestScanLifecycle(t *testing.T) {
	m, clock := newTestModel(t)
	m = typeText(t, m, "abc")
	m, _ = enter(t, m)

	clock.Advance(defaultLatency)
	m, cmd := step(t, m, scanDoneMsg{scanID: m.scanID})
	if m.State() != StateRevealing {
		t.Fatalf("expected revealing, got %s", m.State())
	}
	if cmd == nil {
		t.Error("expected reveal delay to be armed")
	}
	rec := m.Record()
	if rec == nil || rec.Followers != 251511 {
		t.Fatalf("expected generated record for abc, got %+v", rec)
	}
	if m.band.Level != "HIGH" {
		t.Errorf("expected HIGH band, got %s", m.band.Level)
	}
	if !strings.Contains(m.statusMsg, "1.5s") {
		t.Errorf("expected scan duration in status, got %q", m.statusMsg)
	}
	if !m.input.Focused() {
		t.Error("expected input to be enabled after loading")
	}

	clock.Advance(defaultRevealDelay)
	m, cmd = step(t, m, revealMsg{scanID: m.scanID})
	if m.State() != StateResult {
		t.Fatalf("expected result, got %s", m.State())
	}
	if cmd == nil {
		t.Error("expected frame loop to start")
	}
}

func TestStaleMessagesDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "abc")
	m, _ = enter(t, m)

	m, cmd := step(t, m, scanDoneMsg{scanID: "previous"})
	if m.State() != StateLoading || m.Record() != nil || cmd != nil {
		t.Error("expected stale scan completion to be ignored")
	}

	m, cmd = step(t, m, frameMsg{scanID: "previous"})
	if cmd != nil {
		t.Error("expected stale frame loop to stop")
	}
}

func TestStaggeredReveal(t *testing.T) {
	m, clock := newTestModel(t)
	m = typeText(t, m, "abc")
	m, _ = enter(t, m)
	m = scanToResult(t, m, clock)

	m, _ = step(t, m, frameMsg{scanID: m.scanID})
	if m.revealed(schedule.CueProfileCard) {
		t.Error("profile card must not reveal at mount")
	}

	clock.Advance(schedule.ProfileCardDelay)
	m, _ = step(t, m, frameMsg{scanID: m.scanID})
	if !m.revealed(schedule.CueProfileCard) || m.revealed(schedule.CueEngagement) {
		t.Error("expected only the profile card at 100ms")
	}

	clock.Advance(250 * time.Millisecond) // 350ms
	m, _ = step(t, m, frameMsg{scanID: m.scanID})
	if !m.revealed(schedule.PostCue(0)) || m.revealed(schedule.PostCue(1)) {
		t.Error("expected only the first post at 350ms")
	}
	if m.gaugeValue <= 0 || m.gaugeValue >= 7.6 {
		t.Errorf("expected gauge mid-animation, got %v", m.gaugeValue)
	}

	clock.Advance(2 * time.Second)
	m, cmd := step(t, m, frameMsg{scanID: m.scanID})
	for i := range m.Record().DailyPosts {
		if !m.revealed(schedule.PostCue(i)) {
			t.Errorf("post %d not revealed", i)
		}
	}
	if m.gaugeValue != 7.6 {
		t.Errorf("expected gauge to settle at 7.6, got %v", m.gaugeValue)
	}
	if cmd != nil {
		t.Error("expected frame loop to stop once settled")
	}
}

func TestResubmitKeepsRecordUntilComputed(t *testing.T) {
	m, clock := newTestModel(t)
	m = typeText(t, m, "abc")
	m, _ = enter(t, m)
	m = scanToResult(t, m, clock)
	first := m.scanID

	m.input.SetValue("jack")
	m, _ = enter(t, m)
	if m.State() != StateLoading || m.scanID == first {
		t.Fatal("expected a new scan to start from loading")
	}
	if m.Record() == nil || m.Record().Handle != "abc" {
		t.Error("expected previous record to survive until the new one is computed")
	}

	m = scanToResult(t, m, clock)
	if m.Record().Handle != "jack" {
		t.Errorf("expected jack, got %s", m.Record().Handle)
	}
}

func TestViewStates(t *testing.T) {
	m, clock := newTestModel(t)
	view := m.View()
	for _, want := range []string{"X_ANALYTICS", "SYSTEM ONLINE", "ENTER A HANDLE TO BEGIN ANALYSIS", "ANALYZE"} {
		if !strings.Contains(view, want) {
			t.Errorf("idle view missing %q", want)
		}
	}

	m = typeText(t, m, "abc")
	m, _ = enter(t, m)
	m = scanToResult(t, m, clock)
	clock.Advance(3 * time.Second)
	m, _ = step(t, m, frameMsg{scanID: m.scanID})

	view = m.View()
	for _, want := range []string{
		"Abc ✓", "@abc", "Joined Apr 2016", "251.5K", "FOLLOWERS",
		"ENGAGEMENT RATE", "HIGH", "8 POSTS TODAY", "~912",
		"TODAY'S POSTS", "8 ENTRIES", "12:30", "git commit -m 'fixed stuff'",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}
}

func TestEmptyTimelineView(t *testing.T) {
	m, clock := newTestModel(t)
	m = typeText(t, m, "jack")
	m, _ = enter(t, m)
	m = scanToResult(t, m, clock)
	clock.Advance(3 * time.Second)
	m, _ = step(t, m, frameMsg{scanID: m.scanID})

	view := m.View()
	for _, want := range []string{"0 ENTRIES", "No posts detected for today.", "// USER INACTIVE", "MINIMAL"} {
		if !strings.Contains(view, want) {
			t.Errorf("inactive view missing %q", want)
		}
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := NewModel(Options{Generator: profile.NewGenerator(profile.ModeSequence)})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("unexpected view %q", got)
	}
}

func TestScrollStopsAtBodyEnd(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 24})
	m = typeText(t, m, "abc")
	m, _ = enter(t, m)
	m = scanToResult(t, m, clock)

	limit := m.maxScroll()
	if limit <= 0 {
		t.Fatalf("expected the results to overflow a 24-line terminal, max scroll %d", limit)
	}

	for i := 0; i < limit+50; i++ {
		m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.bodyScroll != limit {
		t.Errorf("expected scroll clamped to %d, got %d", limit, m.bodyScroll)
	}

	// A single step back moves the view immediately.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.bodyScroll != limit-1 {
		t.Errorf("expected scroll %d after one up, got %d", limit-1, m.bodyScroll)
	}
}

func TestScrollIgnoredWhenBodyFits(t *testing.T) {
	m, _ := newTestModel(t)
	for i := 0; i < 5; i++ {
		m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	if m.bodyScroll != 0 {
		t.Errorf("expected no scroll on the empty state, got %d", m.bodyScroll)
	}
}
