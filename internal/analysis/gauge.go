package analysis

import (
	"math"
	"time"
)

const (
	// GaugeDuration is how long the gauge needle takes to settle.
	GaugeDuration = 1500 * time.Millisecond

	// GaugeScale is the engagement percentage at full deflection.
	GaugeScale = 15.0
)

// EaseOutCubic maps linear progress p in [0, 1] to 1-(1-p)^3.
// p is clamped to [0, 1].
func EaseOutCubic(p float64) float64 {
	p = math.Max(0, math.Min(p, 1))
	return 1 - math.Pow(1-p, 3)
}

// Progress returns elapsed/GaugeDuration clamped to [0, 1].
func Progress(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return math.Min(float64(elapsed)/float64(GaugeDuration), 1)
}

// Position is the value shown by the gauge elapsed after it mounted while
// easing from zero towards target. The result is rounded to one decimal.
func Position(elapsed time.Duration, target float64) float64 {
	v := target * EaseOutCubic(Progress(elapsed))
	return math.Round(v*10) / 10
}

// Settled reports whether the gauge animation has finished.
func Settled(elapsed time.Duration) bool {
	return elapsed >= GaugeDuration
}

// NeedleAngle converts a gauge value to degrees of deflection in [0, 180].
func NeedleAngle(value float64) float64 {
	return math.Max(0, math.Min(value/GaugeScale, 1)) * 180
}
