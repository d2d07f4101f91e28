// Package sampling draws reproducible elements of the zint orders from a
// SHAKE-128 stream, for property tests and benchmarks.
package sampling

import (
	"zint/pkg/compose"
	"zint/pkg/zint"
)

// MaxBound is the largest coordinate bound whose halves fit an int32.
const MaxBound = 1<<30 - 1

// Element samples an element of T whose coordinates lie in
// [-bound, bound] (one more in absolute value for half-integer points).
// The coset of the order is chosen uniformly.
func Element[T zint.Element[T]](s *Source, bound int32) T {
	if bound > MaxBound {
		panic("sampling: bound too large")
	}
	al := zint.AlgebraOf[T]()
	cosets := al.Cosets()
	mask := cosets[s.Uint32()%uint32(len(cosets))]

	var l compose.Lanes
	for i := 0; i < al.Rank(); i++ {
		l[i] = s.Intn(bound) * int32(al.Scale())
		if mask>>i&1 == 1 {
			l[i]++
		}
	}
	x, err := zint.FromLanes[T](l)
	if err != nil {
		panic("sampling: " + err.Error())
	}
	return x
}

// NonZero samples like Element but never returns zero. bound must be
// positive.
func NonZero[T zint.Element[T]](s *Source, bound int32) T {
	if bound < 1 {
		panic("sampling: bound must be positive")
	}
	for {
		if x := Element[T](s, bound); !zint.IsZero(x) {
			return x
		}
	}
}

// Fill overwrites xs with samples from s.
func Fill[T zint.Element[T]](s *Source, xs []T, bound int32) {
	for i := range xs {
		xs[i] = Element[T](s, bound)
	}
}

// Slice returns n samples from s.
func Slice[T zint.Element[T]](s *Source, n int, bound int32) []T {
	xs := make([]T, n)
	Fill(s, xs, bound)
	return xs
}
