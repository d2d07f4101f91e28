package zint

import (
	"fmt"

	"zint/pkg/compose"
)

// Octonion is an integral octonion a + b1·e1 + ... + b7·e7 under the
// Fano-plane product of package basis. Its coordinates are integers or
// halves with a parity pattern from the octavian code; it stores the
// doubled coordinates.
type Octonion struct {
	h [8]int32
}

// NewOctonion returns the octonion with integer coordinates c, or
// ErrOverflow if a doubled coordinate does not fit an int32.
func NewOctonion(c [8]int32) (Octonion, error) {
	l, err := compose.Octavian.FromInts(compose.Lanes(c))
	if err != nil {
		return Octonion{}, err
	}
	return wrap[Octonion](l), nil
}

// OctonionFromHalves returns the octonion with coordinates h[i]/2.
func OctonionFromHalves(h [8]int32) (Octonion, error) {
	return FromLanes[Octonion](compose.Lanes(h))
}

// OctonionE returns the basis element e_i, 0 <= i < 8.
func OctonionE(i int) Octonion {
	if i < 0 || i >= 8 {
		panic(fmt.Sprintf("zint: basis index %d out of range", i))
	}
	var o Octonion
	o.h[i] = 2
	return o
}

// Halves returns the doubled coordinates.
func (o Octonion) Halves() [8]int32 { return o.h }

func (Octonion) Algebra() *compose.Algebra { return compose.Octavian }

func (o Octonion) Lanes() compose.Lanes { return compose.Lanes(o.h) }

func (Octonion) withLanes(l compose.Lanes) Octonion { return Octonion{h: l} }

// Method forms of the package-level functions.
func (o Octonion) Add(p Octonion) Octonion               { return Add(o, p) }
func (o Octonion) Sub(p Octonion) Octonion               { return Sub(o, p) }
func (o Octonion) Neg() Octonion                         { return Neg(o) }
func (o Octonion) Conj() Octonion                        { return Conj(o) }
func (o Octonion) Mul(p Octonion) (Octonion, error)      { return Mul(o, p) }
func (o Octonion) Norm() uint64                          { return Norm(o) }
func (o Octonion) IsZero() bool                          { return IsZero(o) }
func (o Octonion) IsUnit() bool                          { return IsUnit(o) }
func (o Octonion) DivExact(d Octonion) (Octonion, error) { return DivExact(o, d) }
func (o Octonion) Normalize() Octonion                   { return Normalize(o) }

// DivRem divides o by d on the right, see the package-level DivRem.
func (o Octonion) DivRem(d Octonion) (q, r Octonion, err error) { return DivRem(o, d) }

// Associator returns (a·b)·c - a·(b·c).
func Associator(a, b, c Octonion) (Octonion, error) {
	ab, err := Mul(a, b)
	if err != nil {
		return Octonion{}, err
	}
	abc1, err := Mul(ab, c)
	if err != nil {
		return Octonion{}, err
	}
	bc, err := Mul(b, c)
	if err != nil {
		return Octonion{}, err
	}
	abc2, err := Mul(a, bc)
	if err != nil {
		return Octonion{}, err
	}
	return checkedSub(abc1, abc2)
}

// IsAlternativePair reports whether (a·a)·b = a·(a·b) and (b·a)·a = b·(a·a).
func IsAlternativePair(a, b Octonion) (bool, error) {
	left, err := Associator(a, a, b)
	if err != nil {
		return false, err
	}
	right, err := Associator(b, a, a)
	if err != nil {
		return false, err
	}
	return left.IsZero() && right.IsZero(), nil
}

// MoufangHolds reports whether (a·b)·(c·a) = a·((b·c)·a).
func MoufangHolds(a, b, c Octonion) (bool, error) {
	ab, err := Mul(a, b)
	if err != nil {
		return false, err
	}
	ca, err := Mul(c, a)
	if err != nil {
		return false, err
	}
	lhs, err := Mul(ab, ca)
	if err != nil {
		return false, err
	}
	bc, err := Mul(b, c)
	if err != nil {
		return false, err
	}
	bca, err := Mul(bc, a)
	if err != nil {
		return false, err
	}
	rhs, err := Mul(a, bca)
	if err != nil {
		return false, err
	}
	return lhs == rhs, nil
}
