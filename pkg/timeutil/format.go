// Package timeutil provides clocks and time formatting for xanalytics.
//
// Post times are wall-clock "HH:MM" strings synthesized by the profile
// generator; reveal timing is measured against a Clock so the TUI can be
// driven by a fake clock in tests.
package timeutil

import "fmt"

// FormatClock formats an hour and minute as a zero-padded 24-hour "HH:MM".
// Zero padding keeps lexicographic order equal to chronological order.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatDuration formats a duration in milliseconds to a human-readable string.
// Examples: "1.2s", "450ms", "2m 15.3s"
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	remaining := seconds - float64(minutes*60)
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}
