package zint

import "zint/pkg/compose"

// Fraction is Num/Den with Den > 0.
type Fraction[T Element[T]] struct {
	Num T
	Den uint64
}

// DivToFraction returns x/d as x·conj(d) over Norm(d).
func DivToFraction[T Element[T]](x, d T) (Fraction[T], error) {
	f, err := x.Algebra().DivToFraction(x.Lanes(), d.Lanes())
	if err != nil {
		return Fraction[T]{}, err
	}
	return fromCore[T](f), nil
}

// InvFraction returns 1/x as conj(x) over Norm(x), or ErrNoInverse for zero.
func InvFraction[T Element[T]](x T) (Fraction[T], error) {
	f, err := x.Algebra().InvFraction(x.Lanes())
	if err != nil {
		return Fraction[T]{}, err
	}
	return fromCore[T](f), nil
}

// Content returns the largest integer g such that x/g is still of type T.
func Content[T Element[T]](x T) uint64 {
	return x.Algebra().Content(x.Lanes())
}

// Reduce divides Num and Den by gcd(Content(Num), Den). The result's
// denominator divides f.Den; a zero numerator reduces to 0/1.
func (f Fraction[T]) Reduce() (Fraction[T], error) {
	r, err := f.Num.Algebra().ReduceFraction(compose.Fraction{Num: f.Num.Lanes(), Den: f.Den})
	if err != nil {
		return Fraction[T]{}, err
	}
	return fromCore[T](r), nil
}

func fromCore[T Element[T]](f compose.Fraction) Fraction[T] {
	return Fraction[T]{Num: wrap[T](f.Num), Den: f.Den}
}
