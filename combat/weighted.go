package combat

import (
	"errors"
	"fmt"
)

// RNG is the random source every probabilistic rule draws from. *rand.Rand
// satisfies it.
type RNG interface {
	Float64() float64
}

var ErrEmptyTable = errors.New("combat: weighted table has no positive weight")

type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedTable picks values with probability proportional to their weight.
type WeightedTable[T any] struct {
	entries []Weighted[T]
	total   float64
}

func NewWeightedTable[T any](entries ...Weighted[T]) (*WeightedTable[T], error) {
	t := &WeightedTable[T]{}
	for i, e := range entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("combat: entry %d has negative weight %g", i, e.Weight)
		}
		if e.Weight == 0 {
			continue
		}
		t.entries = append(t.entries, e)
		t.total += e.Weight
	}
	if len(t.entries) == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// Pick walks the cumulative weights with a single draw from r.
func (t *WeightedTable[T]) Pick(r RNG) T {
	x := r.Float64() * t.total
	for _, e := range t.entries {
		if x < e.Weight {
			return e.Value
		}
		x -= e.Weight
	}
	return t.entries[len(t.entries)-1].Value
}

func (t *WeightedTable[T]) Len() int {
	return len(t.entries)
}

// Chance reports true with probability p.
func Chance(r RNG, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// Uniform draws from [lo, hi).
func Uniform(r RNG, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Index draws an index in [0, n).
func Index(r RNG, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
