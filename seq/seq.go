// Package seq defines an ordered random-access sequence capability and
// the generic algorithms that consume it. Collection types implement
// Sequence once; reversal, uniform choice, membership, and sort-by-key
// then work over them without any per-type code.
package seq

import (
	"cmp"
	"errors"
	"iter"
	"math/rand"
	"slices"
)

// ErrOutOfRange reports a position outside [-Len, Len-1].
var ErrOutOfRange = errors.New("position out of range")

// ErrEmpty reports an operation that needs at least one element.
var ErrEmpty = errors.New("empty sequence")

// Sequence is a finite, ordered, randomly-accessible collection.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at pos. Negative positions count from the
	// end (-1 is the last element). Positions outside [-Len, Len-1]
	// return an error wrapping ErrOutOfRange.
	At(pos int) (T, error)
	// Slice returns the half-open range [start, stop) with clamping:
	// negative bounds count from the end, then both bounds clamp to
	// [0, Len]. An inverted range yields an empty slice.
	Slice(start, stop int) []T
	// All iterates in storage order. Each call starts a fresh pass.
	All() iter.Seq[T]
	// Backward iterates in reverse storage order.
	Backward() iter.Seq[T]
}

// Choice returns one uniformly-random element of s. A nil rng uses the
// global source. Returns ErrEmpty when s has no elements.
func Choice[T any](rng *rand.Rand, s Sequence[T]) (T, error) {
	n := s.Len()
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	var pos int
	if rng != nil {
		pos = rng.Intn(n)
	} else {
		pos = rand.Intn(n)
	}
	return s.At(pos)
}

// SortedBy returns the elements of s ascending by key. The sort is
// stable, so elements with equal keys keep their storage order.
func SortedBy[T any](s Sequence[T], key func(T) int) []T {
	out := Collect(s)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// Collect returns the elements of s in storage order as a new slice.
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// Reversed returns the elements of s in reverse storage order.
func Reversed[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	for v := range s.Backward() {
		out = append(out, v)
	}
	return out
}

// Contains reports whether v occurs in s.
func Contains[T comparable](s Sequence[T], v T) bool {
	for w := range s.All() {
		if w == v {
			return true
		}
	}
	return false
}
