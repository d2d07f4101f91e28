// Package compose implements integer arithmetic in a composition algebra of
// rank 2, 4 or 8, parameterized by its basis multiplication rule and by the
// order (lattice of integral elements) it works in.
//
// Elements are Lanes: eight int32 lanes of which the first Rank are used.
// An algebra with scale 2 stores every coordinate doubled ("halves"), which
// admits the half-integer points of the Hurwitz and octavian orders. The
// scale is applied only by Mul and Norm; everything else is lane arithmetic.
package compose

import (
	"math/bits"

	"zint/pkg/basis"
	"zint/pkg/intmath"
)

// Lanes holds the coordinates of one element, scalar part first.
type Lanes [8]int32

type canon uint8

const (
	canonQuadrant canon = iota // first quadrant among all associates
	canonLex                   // lexicographically greatest associate
	canonSign                  // lexicographically greatest of x and -x
)

// Algebra describes one integral composition algebra.
type Algebra struct {
	name   string
	rank   int
	scale  int64
	rule   basis.Rule
	cosets []uint8 // parity patterns of the order mod the integer lattice, bit i = lane i
	canon  canon
	units  []Lanes
}

// octavianCode is an extended Hamming [8,4,4] code. Together with the Fano
// table it makes the halves with these parity patterns closed under
// multiplication: an E8 lattice of integral octonions with 240 units.
var octavianCode = []uint8{
	0x00, 0x0f, 0x35, 0x3a, 0x56, 0x59, 0x63, 0x6c,
	0x93, 0x9c, 0xa6, 0xa9, 0xc5, 0xca, 0xf0, 0xff,
}

var (
	// Gaussian is Z[i].
	Gaussian = newAlgebra("gaussian", 2, 1, basis.Gaussian, []uint8{0}, canonQuadrant)
	// Hurwitz is the Hurwitz order: all-integer or all-half-integer quaternions.
	Hurwitz = newAlgebra("hurwitz", 4, 2, basis.Hamilton, []uint8{0x0, 0xf}, canonLex)
	// Octavian is the order of integral octonions under basis.Fano.
	Octavian = newAlgebra("octavian", 8, 2, basis.Octonion, octavianCode, canonSign)
)

func newAlgebra(name string, rank int, scale int64, rule basis.Rule, cosets []uint8, c canon) *Algebra {
	al := &Algebra{name: name, rank: rank, scale: scale, rule: rule, cosets: cosets, canon: c}
	al.units = al.enumerateUnits()
	return al
}

// enumerateUnits lists the elements of norm 1: the signed basis elements,
// then (for halves) every sign choice on each weight-4 parity pattern.
func (al *Algebra) enumerateUnits() []Lanes {
	var us []Lanes
	for i := 0; i < al.rank; i++ {
		for _, s := range []int32{1, -1} {
			var u Lanes
			u[i] = s * int32(al.scale)
			us = append(us, u)
		}
	}
	if al.scale != 2 {
		return us
	}
	for _, m := range al.cosets {
		if bits.OnesCount8(m) != 4 {
			continue
		}
		for signs := 0; signs < 16; signs++ {
			var u Lanes
			k := 0
			for i := 0; i < al.rank; i++ {
				if m>>i&1 == 0 {
					continue
				}
				u[i] = 1
				if signs>>k&1 == 1 {
					u[i] = -1
				}
				k++
			}
			us = append(us, u)
		}
	}
	return us
}

// Name returns a short identifier of the algebra.
func (al *Algebra) Name() string { return al.name }

// Rank returns the number of used lanes.
func (al *Algebra) Rank() int { return al.rank }

// Scale returns 1 for integer coordinates and 2 for halves.
func (al *Algebra) Scale() int { return int(al.scale) }

// Cosets returns the parity patterns admitted by the order.
func (al *Algebra) Cosets() []uint8 {
	return append([]uint8(nil), al.cosets...)
}

// Valid reports whether x is an element of the order: unused lanes are zero
// and the parity pattern of the used lanes is admitted.
func (al *Algebra) Valid(x Lanes) bool {
	var m uint8
	for i := 0; i < 8; i++ {
		if i >= al.rank {
			if x[i] != 0 {
				return false
			}
			continue
		}
		if al.scale == 2 {
			m |= uint8(x[i]&1) << i
		}
	}
	for _, c := range al.cosets {
		if c == m {
			return true
		}
	}
	return false
}

// FromInts scales integer coordinates into lanes.
func (al *Algebra) FromInts(c Lanes) (Lanes, error) {
	var out Lanes
	for i := 0; i < al.rank; i++ {
		v, ok := intmath.Narrow32(int64(c[i]) * al.scale)
		if !ok {
			return Lanes{}, ErrOverflow
		}
		out[i] = v
	}
	return out, nil
}

// One returns the multiplicative identity.
func (al *Algebra) One() Lanes {
	return Lanes{int32(al.scale)}
}

// Basis returns the i-th basis element.
func (al *Algebra) Basis(i int) Lanes {
	var out Lanes
	out[i] = int32(al.scale)
	return out
}

// IsZero reports whether every lane is zero.
func (al *Algebra) IsZero(x Lanes) bool {
	return x == Lanes{}
}

// IsUnit reports whether x has norm 1.
func (al *Algebra) IsUnit(x Lanes) bool {
	return al.Norm(x) == 1
}

// Add returns a+b with two's-complement wraparound on each lane.
func (al *Algebra) Add(a, b Lanes) Lanes {
	for i := 0; i < al.rank; i++ {
		a[i] += b[i]
	}
	return a
}

// Sub returns a-b with two's-complement wraparound on each lane.
func (al *Algebra) Sub(a, b Lanes) Lanes {
	for i := 0; i < al.rank; i++ {
		a[i] -= b[i]
	}
	return a
}

// Neg returns -a with two's-complement wraparound on each lane.
func (al *Algebra) Neg(a Lanes) Lanes {
	for i := 0; i < al.rank; i++ {
		a[i] = -a[i]
	}
	return a
}

// Conj negates every non-scalar lane.
func (al *Algebra) Conj(a Lanes) Lanes {
	for i := 1; i < al.rank; i++ {
		a[i] = -a[i]
	}
	return a
}

// AddChecked returns a+b or ErrOverflow.
func (al *Algebra) AddChecked(a, b Lanes) (Lanes, error) {
	for i := 0; i < al.rank; i++ {
		v, ok := intmath.Narrow32(int64(a[i]) + int64(b[i]))
		if !ok {
			return Lanes{}, ErrOverflow
		}
		a[i] = v
	}
	return a, nil
}

// SubChecked returns a-b or ErrOverflow.
func (al *Algebra) SubChecked(a, b Lanes) (Lanes, error) {
	for i := 0; i < al.rank; i++ {
		v, ok := intmath.Narrow32(int64(a[i]) - int64(b[i]))
		if !ok {
			return Lanes{}, ErrOverflow
		}
		a[i] = v
	}
	return a, nil
}

// Mul returns a*b. The product is accumulated in 128 bits, rescaled, and
// narrowed with a range check.
func (al *Algebra) Mul(a, b Lanes) (Lanes, error) {
	acc := al.mulWide(a, b)
	var out Lanes
	for i := 0; i < al.rank; i++ {
		n, ok := narrow(acc[i])
		if !ok {
			return Lanes{}, ErrOverflow
		}
		out[i] = n
	}
	return out, nil
}

// mulWide returns a*b unnarrowed.
func (al *Algebra) mulWide(a, b Lanes) [8]intmath.Wide {
	var acc [8]intmath.Wide
	al.rule(&acc, (*[8]int32)(&a), (*[8]int32)(&b))
	return al.rescale(acc)
}

// rescale turns a raw product of stored lanes into stored lanes.
func (al *Algebra) rescale(acc [8]intmath.Wide) [8]intmath.Wide {
	if al.scale == 2 {
		// (2a)(2b) = 4ab; halves of ab are 2ab, exact for elements of the order.
		for i := 0; i < al.rank; i++ {
			acc[i] = acc[i].Shr(1)
		}
	}
	return acc
}

func narrow(w intmath.Wide) (int32, bool) {
	v, ok := w.Int64()
	if !ok {
		return 0, false
	}
	return intmath.Narrow32(v)
}

// Norm returns the squared norm, the sum of squared coordinates.
// It always fits a uint64, even for extreme lanes.
func (al *Algebra) Norm(x Lanes) uint64 {
	var acc intmath.Wide
	for i := 0; i < al.rank; i++ {
		acc.MulAdd(x[i], x[i], 1)
	}
	if al.scale == 2 {
		acc = acc.Shr(2)
	}
	n, _ := acc.Uint64()
	return n
}
