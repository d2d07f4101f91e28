package batch

import "zint/pkg/zint"

// Add sets out[i] = a[i] + b[i].
func (e *Engine[T]) Add(out, a, b []T) error {
	if err := sameLen(out, a, b); err != nil {
		return err
	}
	return e.lanewise(out, a, b, addBlocks, zint.Add[T])
}

// Sub sets out[i] = a[i] - b[i].
func (e *Engine[T]) Sub(out, a, b []T) error {
	if err := sameLen(out, a, b); err != nil {
		return err
	}
	return e.lanewise(out, a, b, subBlocks, zint.Sub[T])
}

// Neg sets out[i] = -a[i].
func (e *Engine[T]) Neg(out, a []T) error {
	if err := sameLen(out, a); err != nil {
		return err
	}
	mask := negPattern(zint.AlgebraOf[T]().Rank())
	return e.lanewise(out, a, a,
		func(dst, x, _ []int32) { signBlocks(dst, x, mask) },
		func(x, _ T) T { return zint.Neg(x) })
}

// Conj sets out[i] = conj(a[i]).
func (e *Engine[T]) Conj(out, a []T) error {
	if err := sameLen(out, a); err != nil {
		return err
	}
	mask := conjPattern(zint.AlgebraOf[T]().Rank())
	return e.lanewise(out, a, a,
		func(dst, x, _ []int32) { signBlocks(dst, x, mask) },
		func(x, _ T) T { return zint.Conj(x) })
}

// Mul sets out[i] = a[i] * b[i].
func (e *Engine[T]) Mul(out, a, b []T) error {
	if err := sameLen(out, a, b); err != nil {
		return err
	}
	return e.each(len(out), func(i int) (err error) {
		out[i], err = zint.Mul(a[i], b[i])
		return err
	})
}

// Norm sets out[i] to the squared norm of a[i].
func (e *Engine[T]) Norm(out []uint64, a []T) error {
	if err := checkLen("a", len(a), len(out)); err != nil {
		return err
	}
	return e.each(len(out), func(i int) error {
		out[i] = zint.Norm(a[i])
		return nil
	})
}

// IsZero sets out[i] to whether a[i] is zero.
func (e *Engine[T]) IsZero(out []bool, a []T) error {
	if err := checkLen("a", len(a), len(out)); err != nil {
		return err
	}
	return e.each(len(out), func(i int) error {
		out[i] = zint.IsZero(a[i])
		return nil
	})
}

// IsUnit sets out[i] to whether a[i] is a unit.
func (e *Engine[T]) IsUnit(out []bool, a []T) error {
	if err := checkLen("a", len(a), len(out)); err != nil {
		return err
	}
	return e.each(len(out), func(i int) error {
		out[i] = zint.IsUnit(a[i])
		return nil
	})
}

// DivRem sets q[i], r[i] to the quotient and remainder of x[i] by d[i].
func (e *Engine[T]) DivRem(q, r, x, d []T) error {
	if err := sameLen(q, r, x, d); err != nil {
		return err
	}
	return e.each(len(q), func(i int) (err error) {
		q[i], r[i], err = zint.DivRem(x[i], d[i])
		return err
	})
}

// DivExact sets out[i] = x[i] / d[i] where the division is exact.
func (e *Engine[T]) DivExact(out, x, d []T) error {
	if err := sameLen(out, x, d); err != nil {
		return err
	}
	return e.each(len(out), func(i int) (err error) {
		out[i], err = zint.DivExact(x[i], d[i])
		return err
	})
}

// GCD sets out[i] = gcd(a[i], b[i]).
func (e *Engine[T]) GCD(out, a, b []T) error {
	if err := sameLen(out, a, b); err != nil {
		return err
	}
	return e.each(len(out), func(i int) (err error) {
		out[i], err = zint.GCD(a[i], b[i])
		return err
	})
}

// Normalize sets out[i] to the canonical associate of a[i].
func (e *Engine[T]) Normalize(out, a []T) error {
	if err := sameLen(out, a); err != nil {
		return err
	}
	return e.each(len(out), func(i int) error {
		out[i] = zint.Normalize(a[i])
		return nil
	})
}

// Associates writes the associates of a[i] to
// out[i*len(units) : (i+1)*len(units)], in zint.Units order.
func (e *Engine[T]) Associates(out, a []T) error {
	k := len(zint.Units[T]())
	if err := checkLen("out", len(out), len(a)*k); err != nil {
		return err
	}
	return e.each(len(a), func(i int) error {
		as, err := zint.Associates(a[i])
		if err != nil {
			clear(out[i*k : (i+1)*k])
			return err
		}
		copy(out[i*k:], as)
		return nil
	})
}

// InvUnit sets out[i] to the inverse of the unit a[i].
func (e *Engine[T]) InvUnit(out, a []T) error {
	if err := sameLen(out, a); err != nil {
		return err
	}
	return e.each(len(out), func(i int) (err error) {
		out[i], err = zint.InvUnit(a[i])
		return err
	})
}

// DivToFraction sets out[i] = x[i] / d[i] as a fraction.
func (e *Engine[T]) DivToFraction(out []zint.Fraction[T], x, d []T) error {
	if err := sameLen(x, d); err != nil {
		return err
	}
	if err := checkLen("x", len(x), len(out)); err != nil {
		return err
	}
	return e.each(len(out), func(i int) (err error) {
		out[i], err = zint.DivToFraction(x[i], d[i])
		return err
	})
}

// InvFraction sets out[i] = 1 / a[i] as a fraction.
func (e *Engine[T]) InvFraction(out []zint.Fraction[T], a []T) error {
	if err := checkLen("a", len(a), len(out)); err != nil {
		return err
	}
	return e.each(len(out), func(i int) (err error) {
		out[i], err = zint.InvFraction(a[i])
		return err
	})
}

// ReduceFraction sets out[i] to f[i] in lowest terms.
func (e *Engine[T]) ReduceFraction(out, f []zint.Fraction[T]) error {
	if err := checkLen("f", len(f), len(out)); err != nil {
		return err
	}
	return e.each(len(out), func(i int) (err error) {
		out[i], err = f[i].Reduce()
		return err
	})
}

// sameLen checks that every slice is as long as the first.
func sameLen[T any](first []T, rest ...[]T) error {
	for _, s := range rest {
		if err := checkLen("operand", len(s), len(first)); err != nil {
			return err
		}
	}
	return nil
}
