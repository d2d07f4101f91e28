// Package zint provides exact arithmetic on Gaussian integers, Hurwitz
// quaternions and integral octonions.
//
// The three value types share one implementation in package compose and are
// handled uniformly by the generic functions of this package. Quaternions
// and octonions store halves: QuaternionFromHalves and Halves expose the
// raw numerators over 2, which admits the half-integer points of their
// orders. All values are comparable and never allocate.
package zint

import (
	"zint/pkg/compose"
)

// The sentinels are those of package compose, so errors.Is matches either
// name.
var (
	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = compose.ErrDivisionByZero
	// ErrNotDivisible indicates an exact division whose remainder is nonzero.
	ErrNotDivisible = compose.ErrNotDivisible
	// ErrNoInverse indicates an inverse requested for zero or a non-unit.
	ErrNoInverse = compose.ErrNoInverse
	// ErrInvalidHalfInteger indicates halves outside the order.
	ErrInvalidHalfInteger = compose.ErrInvalidHalfInteger
	// ErrOverflow indicates a result that does not fit the int32 lanes.
	ErrOverflow = compose.ErrOverflow
)

// Element is satisfied by the three value types of this package.
type Element[T any] interface {
	Gaussian | Quaternion | Octonion
	// Algebra returns the order the value lives in.
	Algebra() *compose.Algebra
	// Lanes returns the stored coordinates, halves for rank 4 and 8.
	Lanes() compose.Lanes
	withLanes(compose.Lanes) T
}

func wrap[T Element[T]](l compose.Lanes) T {
	var z T
	return z.withLanes(l)
}

// AlgebraOf returns the algebra of T.
func AlgebraOf[T Element[T]]() *compose.Algebra {
	var z T
	return z.Algebra()
}

// FromLanes builds a T from stored coordinates, checking that they belong
// to the order.
func FromLanes[T Element[T]](l compose.Lanes) (T, error) {
	if !AlgebraOf[T]().Valid(l) {
		var z T
		return z, ErrInvalidHalfInteger
	}
	return wrap[T](l), nil
}

// Zero returns the additive identity of T, which is also its zero value.
func Zero[T Element[T]]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Element[T]]() T { return wrap[T](AlgebraOf[T]().One()) }

// Units returns the unit group of T.
func Units[T Element[T]]() []T {
	us := AlgebraOf[T]().Units()
	out := make([]T, len(us))
	for i, u := range us {
		out[i] = wrap[T](u)
	}
	return out
}

// Add returns a+b; coordinates wrap around on overflow.
func Add[T Element[T]](a, b T) T {
	return wrap[T](a.Algebra().Add(a.Lanes(), b.Lanes()))
}

// Sub returns a-b; coordinates wrap around on overflow.
func Sub[T Element[T]](a, b T) T {
	return wrap[T](a.Algebra().Sub(a.Lanes(), b.Lanes()))
}

// Neg returns -a.
func Neg[T Element[T]](a T) T {
	return wrap[T](a.Algebra().Neg(a.Lanes()))
}

// Conj returns the conjugate of a.
func Conj[T Element[T]](a T) T {
	return wrap[T](a.Algebra().Conj(a.Lanes()))
}

// Mul returns a*b, or ErrOverflow if a coordinate leaves the int32 range.
func Mul[T Element[T]](a, b T) (T, error) {
	l, err := a.Algebra().Mul(a.Lanes(), b.Lanes())
	if err != nil {
		var z T
		return z, err
	}
	return wrap[T](l), nil
}

// Norm returns the squared norm of a.
func Norm[T Element[T]](a T) uint64 {
	return a.Algebra().Norm(a.Lanes())
}

// IsZero reports whether a is zero.
func IsZero[T Element[T]](a T) bool {
	var z T
	return a == z
}

// IsUnit reports whether a has norm 1.
func IsUnit[T Element[T]](a T) bool {
	return Norm(a) == 1
}

// DivRem returns q, r with q*d + r = x and Norm(r) < Norm(d).
func DivRem[T Element[T]](x, d T) (q, r T, err error) {
	ql, rl, err := x.Algebra().DivRem(x.Lanes(), d.Lanes())
	if err != nil {
		return q, r, err
	}
	return wrap[T](ql), wrap[T](rl), nil
}

// DivExact returns q with q*d = x, or ErrNotDivisible.
func DivExact[T Element[T]](x, d T) (T, error) {
	l, err := x.Algebra().DivExact(x.Lanes(), d.Lanes())
	if err != nil {
		var z T
		return z, err
	}
	return wrap[T](l), nil
}

// GCD returns the normalized greatest common right divisor of a and b.
func GCD[T Element[T]](a, b T) (T, error) {
	l, err := a.Algebra().GCD(a.Lanes(), b.Lanes())
	if err != nil {
		var z T
		return z, err
	}
	return wrap[T](l), nil
}

// Normalize returns the canonical associate of a.
func Normalize[T Element[T]](a T) T {
	return wrap[T](a.Algebra().Normalize(a.Lanes()))
}

// Associates returns u*a for every unit u, in Units order.
func Associates[T Element[T]](a T) ([]T, error) {
	ls, err := a.Algebra().Associates(a.Lanes())
	if err != nil {
		return nil, err
	}
	out := make([]T, len(ls))
	for i, l := range ls {
		out[i] = wrap[T](l)
	}
	return out, nil
}

// InvUnit returns the inverse of a unit, or ErrNoInverse.
func InvUnit[T Element[T]](a T) (T, error) {
	l, err := a.Algebra().InvUnit(a.Lanes())
	if err != nil {
		var z T
		return z, err
	}
	return wrap[T](l), nil
}
