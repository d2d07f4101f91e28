package compose

import (
	"zint/pkg/intmath"
)

// Fraction is Num/Den with Num an element of the order and Den > 0.
type Fraction struct {
	Num Lanes
	Den uint64
}

// DivToFraction returns x/d as x*conj(d) over Norm(d).
func (al *Algebra) DivToFraction(x, d Lanes) (Fraction, error) {
	if al.IsZero(d) {
		return Fraction{}, ErrDivisionByZero
	}
	t := al.conjProduct(x, d)
	var num Lanes
	for i := 0; i < al.rank; i++ {
		v, ok := narrow(t[i])
		if !ok {
			return Fraction{}, ErrOverflow
		}
		num[i] = v
	}
	return Fraction{Num: num, Den: al.Norm(d)}, nil
}

// InvFraction returns 1/x as conj(x) over Norm(x).
func (al *Algebra) InvFraction(x Lanes) (Fraction, error) {
	if al.IsZero(x) {
		return Fraction{}, ErrNoInverse
	}
	return Fraction{Num: al.Conj(x), Den: al.Norm(x)}, nil
}

// Content returns the largest integer g such that x/g is in the order,
// and 0 for x = 0. For integer lanes this is the gcd of the coordinates.
func (al *Algebra) Content(x Lanes) uint64 {
	var g uint64
	for i := 0; i < al.rank; i++ {
		g = intmath.GCD(g, intmath.Abs32(x[i]))
	}
	if g == 0 {
		return 0
	}
	odd := g
	for odd&1 == 0 {
		odd >>= 1
	}
	y := divLanes(x, al.rank, odd)
	two := uint64(1)
	for {
		h, ok := halve(y, al.rank)
		if !ok || !al.Valid(h) {
			break
		}
		y = h
		two <<= 1
	}
	return odd * two
}

// ReduceFraction cancels gcd(Content(Num), Den). A zero numerator reduces
// to 0/1.
func (al *Algebra) ReduceFraction(f Fraction) (Fraction, error) {
	if f.Den == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if !al.Valid(f.Num) {
		return Fraction{}, ErrInvalidHalfInteger
	}
	g := intmath.GCD(al.Content(f.Num), f.Den)
	if g <= 1 {
		return f, nil
	}
	return Fraction{Num: divLanes(f.Num, al.rank, g), Den: f.Den / g}, nil
}

// divLanes divides every used lane by g, which must divide all of them.
func divLanes(x Lanes, rank int, g uint64) Lanes {
	if g == 1 {
		return x
	}
	for i := 0; i < rank; i++ {
		x[i] = int32(int64(x[i]) / int64(g))
	}
	return x
}

func halve(x Lanes, rank int) (Lanes, bool) {
	for i := 0; i < rank; i++ {
		if x[i]&1 != 0 {
			return Lanes{}, false
		}
		x[i] >>= 1
	}
	return x, true
}
