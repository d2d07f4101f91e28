package zint

import "zint/pkg/compose"

// Gaussian is the Gaussian integer A + B·i.
type Gaussian struct {
	A, B int32
}

// NewGaussian returns a + b·i.
func NewGaussian(a, b int32) Gaussian { return Gaussian{A: a, B: b} }

// GaussianI returns i.
func GaussianI() Gaussian { return Gaussian{B: 1} }

func (Gaussian) Algebra() *compose.Algebra { return compose.Gaussian }

func (g Gaussian) Lanes() compose.Lanes { return compose.Lanes{g.A, g.B} }

func (Gaussian) withLanes(l compose.Lanes) Gaussian { return Gaussian{A: l[0], B: l[1]} }

// Method forms of the package-level functions.
func (g Gaussian) Add(h Gaussian) Gaussian               { return Add(g, h) }
func (g Gaussian) Sub(h Gaussian) Gaussian               { return Sub(g, h) }
func (g Gaussian) Neg() Gaussian                         { return Neg(g) }
func (g Gaussian) Conj() Gaussian                        { return Conj(g) }
func (g Gaussian) Mul(h Gaussian) (Gaussian, error)      { return Mul(g, h) }
func (g Gaussian) Norm() uint64                          { return Norm(g) }
func (g Gaussian) IsZero() bool                          { return IsZero(g) }
func (g Gaussian) IsUnit() bool                          { return IsUnit(g) }
func (g Gaussian) DivExact(d Gaussian) (Gaussian, error) { return DivExact(g, d) }
func (g Gaussian) Normalize() Gaussian                   { return Normalize(g) }

// DivRem divides g by d, see the package-level DivRem.
func (g Gaussian) DivRem(d Gaussian) (q, r Gaussian, err error) { return DivRem(g, d) }

// XGCD returns g = GCD(a, b) together with s, t such that s·a + t·b = g.
func XGCD(a, b Gaussian) (g, s, t Gaussian, err error) {
	al := compose.Gaussian
	r0, r1 := a.Lanes(), b.Lanes()
	s0, s1 := al.One(), compose.Lanes{}
	t0, t1 := compose.Lanes{}, al.One()
	for !al.IsZero(r1) {
		q, r, err := al.DivRem(r0, r1)
		if err != nil {
			return g, s, t, err
		}
		r0, r1 = r1, r
		if s0, s1, err = step(al, q, s0, s1); err != nil {
			return g, s, t, err
		}
		if t0, t1, err = step(al, q, t0, t1); err != nil {
			return g, s, t, err
		}
	}

	// Rotate the Bézout relation onto the normalized gcd.
	n := al.Normalize(r0)
	for _, u := range al.Units() {
		ur, err := al.Mul(u, r0)
		if err != nil || ur != n {
			continue
		}
		if s0, err = al.Mul(u, s0); err != nil {
			return g, s, t, err
		}
		if t0, err = al.Mul(u, t0); err != nil {
			return g, s, t, err
		}
		break
	}
	return wrap[Gaussian](n), wrap[Gaussian](s0), wrap[Gaussian](t0), nil
}

// step advances one Bézout coefficient pair: (c0, c1) -> (c1, c0 - q*c1).
func step(al *compose.Algebra, q, c0, c1 compose.Lanes) (compose.Lanes, compose.Lanes, error) {
	qc, err := al.Mul(q, c1)
	if err != nil {
		return c0, c1, err
	}
	next, err := al.SubChecked(c0, qc)
	if err != nil {
		return c0, c1, err
	}
	return c1, next, nil
}
