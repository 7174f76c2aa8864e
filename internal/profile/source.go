package profile

import (
	"math"
	"math/rand/v2"
)

// Source yields pseudo-random values in [0, 1).
type Source interface {
	Float64() float64
}

// fixedSource reproduces the dashboard's historical formula
// frac(sin(seed*9999) * 10000). It never advances: every draw returns the
// same fraction, so all fields of a record are scaled copies of one value.
type fixedSource struct {
	value float64
}

// NewFixedSource returns the non-advancing legacy source for seed.
func NewFixedSource(seed int) Source {
	x := math.Sin(float64(seed)*9999) * 10000
	return fixedSource{value: x - math.Floor(x)}
}

func (s fixedSource) Float64() float64 { return s.value }

// sequenceSource is an advancing PCG stream seeded once per handle.
type sequenceSource struct {
	rng *rand.Rand
}

// pcgStream is the fixed PCG increment; only the seed varies per handle.
const pcgStream = 0x9e3779b97f4a7c15

// NewSequenceSource returns an advancing source for seed. Two sources built
// from the same seed yield identical sequences.
func NewSequenceSource(seed int) Source {
	return &sequenceSource{rng: rand.New(rand.NewPCG(uint64(seed), pcgStream))}
}

func (s *sequenceSource) Float64() float64 { return s.rng.Float64() }

// Intn draws an integer in [min, max] as floor(v*(max-min+1)) + min.
func Intn(src Source, min, max int) int {
	return int(math.Floor(src.Float64()*float64(max-min+1))) + min
}
