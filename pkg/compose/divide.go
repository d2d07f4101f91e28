package compose

import "zint/pkg/intmath"

// DivRem returns q and r with q*d + r = x and Norm(r) < Norm(d).
//
// The quotient is the point of the order nearest to x*conj(d)/Norm(d). Each
// coset of the order modulo the integer lattice is rounded separately and
// exactly; the candidate with the smallest remainder wins, the first one on
// ties. The covering radius of Z^2, the Hurwitz order and E8 is at most
// sqrt(1/2), so Norm(r) <= Norm(d)/2.
//
// Only q and r are narrowed to int32; x*conj(d) and q*d stay in 128 bits.
func (al *Algebra) DivRem(x, d Lanes) (q, r Lanes, err error) {
	if al.IsZero(d) {
		return Lanes{}, Lanes{}, ErrDivisionByZero
	}
	t := al.conjProduct(x, d)
	n := al.Norm(d)

	found := false
	var best uint64
	for _, mask := range al.cosets {
		cand, ok := al.round(&t, n, mask)
		if !ok {
			continue
		}
		rem, ok := al.remainder(x, cand, d)
		if !ok {
			continue
		}
		if rn := al.Norm(rem); !found || rn < best {
			q, r, best, found = cand, rem, rn, true
		}
	}
	if !found {
		return Lanes{}, Lanes{}, ErrOverflow
	}
	return q, r, nil
}

// conjProduct returns x*conj(d) in 128 bits as Re(d)*x - x*Im(d). conj(d) is
// never formed, so a MinInt32 lane of d cannot wrap.
func (al *Algebra) conjProduct(x, d Lanes) [8]intmath.Wide {
	re := Lanes{d[0]}
	im := d
	im[0] = 0
	var p, s [8]intmath.Wide
	al.rule(&p, (*[8]int32)(&x), (*[8]int32)(&re))
	al.rule(&s, (*[8]int32)(&x), (*[8]int32)(&im))
	for i := 0; i < al.rank; i++ {
		p[i] = p[i].Sub(s[i])
	}
	return al.rescale(p)
}

// round places t/n on the coset with parity pattern mask.
func (al *Algebra) round(t *[8]intmath.Wide, n uint64, mask uint8) (Lanes, bool) {
	var out Lanes
	for i := 0; i < al.rank; i++ {
		k, ok := intmath.Nearest(t[i], n, int64(mask>>i&1), al.scale)
		if !ok {
			return Lanes{}, false
		}
		v, ok := intmath.Narrow32(k)
		if !ok {
			return Lanes{}, false
		}
		out[i] = v
	}
	return out, true
}

// remainder returns x - q*d, narrowing only the result.
func (al *Algebra) remainder(x, q, d Lanes) (Lanes, bool) {
	qd := al.mulWide(q, d)
	var out Lanes
	for i := 0; i < al.rank; i++ {
		v, ok := narrow(intmath.NewWide(int64(x[i])).Sub(qd[i]))
		if !ok {
			return Lanes{}, false
		}
		out[i] = v
	}
	return out, true
}

// DivExact returns q with q*d = x, or ErrNotDivisible.
func (al *Algebra) DivExact(x, d Lanes) (Lanes, error) {
	q, r, err := al.DivRem(x, d)
	if err != nil {
		return Lanes{}, err
	}
	if !al.IsZero(r) {
		return Lanes{}, ErrNotDivisible
	}
	return q, nil
}

// GCD runs Euclid's algorithm on the remainders of DivRem and returns the
// normalized last nonzero remainder. GCD(x, 0) is Normalize(x).
//
// Octavians are not associative, so there the result need not divide both
// arguments; it still has the smallest norm Euclid reaches.
func (al *Algebra) GCD(a, b Lanes) (Lanes, error) {
	for !al.IsZero(b) {
		_, r, err := al.DivRem(a, b)
		if err != nil {
			return Lanes{}, err
		}
		a, b = b, r
	}
	return al.Normalize(a), nil
}
