// Package basis provides the bilinear multiplication rules of the three
// composition algebras: the Gaussian product, the Hamilton product and the
// octonion product driven by the Fano-plane table.
//
// A Rule accumulates the unscaled product of two coordinate vectors into
// 128-bit sums; scaling and narrowing belong to the caller.
package basis

import (
	"fmt"

	"zint/pkg/intmath"
)

// Rule accumulates a*b into acc. Only the first rank lanes are read or written.
type Rule func(acc *[8]intmath.Wide, a, b *[8]int32)

// Product is one entry of a multiplication table: e_i * e_j = Sign * e_Index.
type Product struct {
	Sign  int8
	Index uint8
}

// Table is an 8x8 basis multiplication table.
type Table [8][8]Product

// Lines are the seven oriented lines of the Fano plane.
// (a, b, c) reads e_a * e_b = e_c, and the same holds for its cyclic shifts.
var Lines = [7][3]uint8{
	{1, 2, 4},
	{2, 3, 5},
	{3, 4, 6},
	{4, 5, 7},
	{5, 6, 1},
	{6, 7, 2},
	{7, 1, 3},
}

// Fano is the octonion table, derived once from Lines.
var Fano = fanoTable()

// Octonion multiplies through the Fano table.
var Octonion = TableRule(&Fano, 8)

func fanoTable() Table {
	var t Table
	for i := 0; i < 8; i++ {
		t[0][i] = Product{Sign: 1, Index: uint8(i)}
		t[i][0] = Product{Sign: 1, Index: uint8(i)}
	}
	for i := 1; i < 8; i++ {
		t[i][i] = Product{Sign: -1, Index: 0}
	}
	for _, l := range Lines {
		for k := 0; k < 3; k++ {
			a, b, c := l[k], l[(k+1)%3], l[(k+2)%3]
			t[a][b] = Product{Sign: 1, Index: c}
			t[b][a] = Product{Sign: -1, Index: c}
		}
	}
	return t
}

// TableRule returns a Rule that sums all rank*rank basis pairs through t.
func TableRule(t *Table, rank int) Rule {
	return func(acc *[8]intmath.Wide, a, b *[8]int32) {
		for i := 0; i < rank; i++ {
			for j := 0; j < rank; j++ {
				p := t[i][j]
				acc[p.Index].MulAdd(a[i], b[j], p.Sign)
			}
		}
	}
}

// Gaussian is (a0 + a1 i)(b0 + b1 i).
func Gaussian(acc *[8]intmath.Wide, a, b *[8]int32) {
	acc[0].MulAdd(a[0], b[0], 1)
	acc[0].MulAdd(a[1], b[1], -1)
	acc[1].MulAdd(a[0], b[1], 1)
	acc[1].MulAdd(a[1], b[0], 1)
}

// Hamilton is the quaternion product with i*j = k, j*k = i, k*i = j.
func Hamilton(acc *[8]intmath.Wide, a, b *[8]int32) {
	acc[0].MulAdd(a[0], b[0], 1)
	acc[0].MulAdd(a[1], b[1], -1)
	acc[0].MulAdd(a[2], b[2], -1)
	acc[0].MulAdd(a[3], b[3], -1)

	acc[1].MulAdd(a[0], b[1], 1)
	acc[1].MulAdd(a[1], b[0], 1)
	acc[1].MulAdd(a[2], b[3], 1)
	acc[1].MulAdd(a[3], b[2], -1)

	acc[2].MulAdd(a[0], b[2], 1)
	acc[2].MulAdd(a[1], b[3], -1)
	acc[2].MulAdd(a[2], b[0], 1)
	acc[2].MulAdd(a[3], b[1], 1)

	acc[3].MulAdd(a[0], b[3], 1)
	acc[3].MulAdd(a[1], b[2], 1)
	acc[3].MulAdd(a[2], b[1], -1)
	acc[3].MulAdd(a[3], b[0], 1)
}

type vec = [8]int32

func unit(i int, sign int32) vec {
	var v vec
	v[i] = sign
	return v
}

// apply evaluates rule on small inputs whose products fit an int32.
func apply(rule Rule, rank int, a, b vec) vec {
	var acc [8]intmath.Wide
	rule(&acc, &a, &b)
	var out vec
	for i := 0; i < rank; i++ {
		v, _ := acc[i].Int64()
		out[i] = int32(v)
	}
	return out
}

func norm(v vec) int64 {
	var n int64
	for _, c := range v {
		n += int64(c) * int64(c)
	}
	return n
}

// Verify checks rule against the composition-algebra axioms on basis
// elements: e0 is the identity, e_i^2 = -1, distinct imaginary units
// anticommute, every basis product is a signed basis element, the norm is
// multiplicative on sums of two basis elements, and the alternative and
// Moufang identities hold for every basis triple.
func Verify(rule Rule, rank int) error {
	mul := func(a, b vec) vec { return apply(rule, rank, a, b) }

	for i := 0; i < rank; i++ {
		e := unit(i, 1)
		if mul(unit(0, 1), e) != e || mul(e, unit(0, 1)) != e {
			return fmt.Errorf("basis: e0 is not the identity for e%d", i)
		}
		if i > 0 && mul(e, e) != unit(0, -1) {
			return fmt.Errorf("basis: e%d^2 != -1", i)
		}
	}

	for i := 1; i < rank; i++ {
		for j := 1; j < rank; j++ {
			if i == j {
				continue
			}
			p := mul(unit(i, 1), unit(j, 1))
			if norm(p) != 1 {
				return fmt.Errorf("basis: e%d*e%d is not a signed basis element", i, j)
			}
			q := mul(unit(j, 1), unit(i, 1))
			for k := range p {
				if p[k] != -q[k] {
					return fmt.Errorf("basis: e%d and e%d do not anticommute", i, j)
				}
			}
		}
	}

	for i := 0; i < rank; i++ {
		for j := i; j < rank; j++ {
			x := unit(i, 1)
			x[j]++
			for k := 0; k < rank; k++ {
				for l := k; l < rank; l++ {
					y := unit(k, 1)
					y[l]--
					if norm(mul(x, y)) != norm(x)*norm(y) {
						return fmt.Errorf("basis: norm not multiplicative for e%d+e%d, e%d-e%d", i, j, k, l)
					}
				}
			}
		}
	}

	for i := 0; i < rank; i++ {
		a := unit(i, 1)
		for j := 0; j < rank; j++ {
			b := unit(j, 1)
			if mul(mul(a, a), b) != mul(a, mul(a, b)) || mul(mul(b, a), a) != mul(b, mul(a, a)) {
				return fmt.Errorf("basis: alternative law fails for (e%d, e%d)", i, j)
			}
			for k := 0; k < rank; k++ {
				c := unit(k, 1)
				if mul(mul(a, b), mul(c, a)) != mul(a, mul(mul(b, c), a)) {
					return fmt.Errorf("basis: Moufang identity fails for (e%d, e%d, e%d)", i, j, k)
				}
			}
		}
	}
	return nil
}
