package core

import "math/rand"

// Rand draws bounded integers. Range returns a value in [min, max).
type Rand interface {
	Range(min, max int) int
}

// SeededRand is a Rand backed by math/rand with an explicit seed.
type SeededRand struct {
	r *rand.Rand
}

// NewRand returns a SeededRand for the given seed.
func NewRand(seed int64) *SeededRand {
	return &SeededRand{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform integer in [min, max). It returns min when the
// range is empty.
func (s *SeededRand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min)
}
