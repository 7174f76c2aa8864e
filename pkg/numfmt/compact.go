// Package numfmt formats counters for the dashboard stat cells.
package numfmt

import (
	"math"
	"strconv"
)

// Compact renders n with a scale suffix: values of at least one million as
// "X.XM", at least one thousand as "X.XK", anything else as the plain integer.
func Compact(n int) string {
	switch {
	case n >= 1_000_000:
		return tenths(n, 1_000_000) + "M"
	case n >= 1_000:
		return tenths(n, 1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// tenths formats n/unit with one decimal place, rounding the binary quotient
// the way JavaScript's toFixed(1) does: 1150/1000 is stored just below 1.15
// and prints "1.1", while exact ties such as 1.25 round up to "1.3".
func tenths(n, unit int) string {
	q := float64(n) / float64(unit)
	if isTie(q) {
		return strconv.FormatFloat((math.Floor(q*10)+1)/10, 'f', 1, 64)
	}
	return strconv.FormatFloat(q, 'f', 1, 64)
}

// isTie reports whether q lies exactly halfway between two tenths, that is
// q*20 is an odd integer with no rounding in the product.
func isTie(q float64) bool {
	t := q * 20
	if t != math.Trunc(t) || math.Mod(t, 2) != 1 {
		return false
	}
	return math.FMA(q, 20, -t) == 0
}
