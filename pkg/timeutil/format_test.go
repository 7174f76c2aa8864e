package timeutil

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		h, m int
		want string
	}{
		{0, 0, "00:00"},
		{9, 5, "09:05"},
		{23, 59, "23:59"},
	}
	for _, c := range cases {
		if got := FormatClock(c.h, c.m); got != c.want {
			t.Errorf("FormatClock(%d, %d) = %q, want %q", c.h, c.m, got, c.want)
		}
	}
}

func TestFormatClockSortsChronologically(t *testing.T) {
	if !(FormatClock(9, 59) < FormatClock(10, 0)) {
		t.Error("expected 09:59 to sort before 10:00")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(450); got != "450ms" {
		t.Errorf("expected 450ms, got %s", got)
	}
	if got := FormatDuration(1500); got != "1.5s" {
		t.Errorf("expected 1.5s, got %s", got)
	}
	if got := FormatDuration(135300); got != "2m 15.3s" {
		t.Errorf("expected 2m 15.3s, got %s", got)
	}
}

func TestFakeClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)
	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("expected 250ms elapsed, got %v", got)
	}
}
