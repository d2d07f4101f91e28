package compose

// Units returns the unit group of the order: 4, 24 or 240 elements.
// Signed basis elements come first.
func (al *Algebra) Units() []Lanes {
	return append([]Lanes(nil), al.units...)
}

// Associates returns u*x for every unit u, in Units order.
func (al *Algebra) Associates(x Lanes) ([]Lanes, error) {
	out := make([]Lanes, len(al.units))
	for i, u := range al.units {
		v, err := al.Mul(u, x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Normalize returns the canonical representative of the associate class
// of x. Rank 2 picks the first quadrant (A > 0, B >= 0). Rank 4 picks the
// lexicographically greatest left associate. Octavian left associates do
// not form closed classes, so rank 8 only chooses between x and -x.
// Associates that overflow are not considered; zero maps to zero.
func (al *Algebra) Normalize(x Lanes) Lanes {
	if al.IsZero(x) {
		return x
	}
	switch al.canon {
	case canonQuadrant:
		for _, u := range al.units {
			v, err := al.Mul(u, x)
			if err == nil && v[0] > 0 && v[1] >= 0 {
				return v
			}
		}
		return x
	case canonLex:
		best := x
		for _, u := range al.units {
			if v, err := al.Mul(u, x); err == nil && less(best, v) {
				best = v
			}
		}
		return best
	default:
		if n, err := al.Mul(al.Neg(al.One()), x); err == nil && less(x, n) {
			return n
		}
		return x
	}
}

// less orders lanes lexicographically, scalar lane first.
func less(a, b Lanes) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// InvUnit returns the inverse conj(x) of a unit, or ErrNoInverse.
func (al *Algebra) InvUnit(x Lanes) (Lanes, error) {
	if !al.IsUnit(x) {
		return Lanes{}, ErrNoInverse
	}
	return al.Conj(x), nil
}
