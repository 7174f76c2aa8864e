// Package schedule resolves staggered reveal timing.
//
// A Plan is an ordered list of (delay, name) cues measured from a mount
// instant. Views never arm their own timers: the TUI samples one frame tick
// and asks the Plan which cues are due, so tests can drive reveals with a
// fake clock.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/Mr-Dark-debug/xanalytics/pkg/timeutil"
)

// Reveal offsets for the result views, measured from the moment results are
// shown.
const (
	ProfileCardDelay = 100 * time.Millisecond
	EngagementDelay  = 200 * time.Millisecond
	PostBaseDelay    = 300 * time.Millisecond
	PostStepDelay    = 100 * time.Millisecond
)

// Cue names used by the result views.
const (
	CueProfileCard = "profile"
	CueEngagement  = "engagement"
)

// PostCue names the reveal cue of the post at index i.
func PostCue(i int) string {
	return fmt.Sprintf("post/%d", i)
}

// Cue is a named action due At after mount.
type Cue struct {
	Name string
	At   time.Duration
}

// Plan is a set of cues sorted by due time.
type Plan struct {
	cues []Cue
}

// NewPlan builds a plan from cues in any order. Cues sharing a due time keep
// their relative order.
func NewPlan(cues ...Cue) Plan {
	sorted := append([]Cue(nil), cues...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return Plan{cues: sorted}
}

// ResultsPlan is the reveal plan for a profile with postCount posts: the
// profile card, then the engagement card, then post k at
// PostBaseDelay + k*PostStepDelay.
func ResultsPlan(postCount int) Plan {
	cues := []Cue{
		{Name: CueProfileCard, At: ProfileCardDelay},
		{Name: CueEngagement, At: EngagementDelay},
	}
	for i := 0; i < postCount; i++ {
		cues = append(cues, Cue{Name: PostCue(i), At: PostBaseDelay + time.Duration(i)*PostStepDelay})
	}
	return NewPlan(cues...)
}

// Cues returns a copy of the plan's cues in due order.
func (p Plan) Cues() []Cue {
	return append([]Cue(nil), p.cues...)
}

// Due returns the names of every cue due at or before elapsed.
func (p Plan) Due(elapsed time.Duration) []string {
	var names []string
	for _, c := range p.cues {
		if c.At > elapsed {
			break
		}
		names = append(names, c.Name)
	}
	return names
}

// Next returns how long after elapsed the next pending cue fires, and false
// when every cue has fired.
func (p Plan) Next(elapsed time.Duration) (time.Duration, bool) {
	for _, c := range p.cues {
		if c.At > elapsed {
			return c.At - elapsed, true
		}
	}
	return 0, false
}

// Done reports whether every cue is due at elapsed.
func (p Plan) Done(elapsed time.Duration) bool {
	_, pending := p.Next(elapsed)
	return !pending
}

// Timeline binds a Plan to a mount instant read from a clock.
type Timeline struct {
	plan    Plan
	clock   timeutil.Clock
	mounted time.Time
	fired   map[string]bool
}

// Mount starts a timeline for plan at the clock's current instant.
func Mount(plan Plan, clock timeutil.Clock) *Timeline {
	return &Timeline{
		plan:    plan,
		clock:   clock,
		mounted: clock.Now(),
		fired:   make(map[string]bool),
	}
}

// Elapsed returns the time since mount.
func (t *Timeline) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.mounted)
}

// Advance marks every cue due now as fired and returns the newly fired names.
func (t *Timeline) Advance() []string {
	var fresh []string
	for _, name := range t.plan.Due(t.Elapsed()) {
		if !t.fired[name] {
			t.fired[name] = true
			fresh = append(fresh, name)
		}
	}
	return fresh
}

// Revealed reports whether the named cue has fired.
func (t *Timeline) Revealed(name string) bool {
	return t.fired[name]
}

// Done reports whether every cue has fired.
func (t *Timeline) Done() bool {
	return len(t.fired) == len(t.plan.cues)
}
