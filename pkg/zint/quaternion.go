package zint

import "zint/pkg/compose"

// Quaternion is a Hurwitz quaternion a + b·i + c·j + d·k whose coordinates
// are all integers or all halves of odd integers. It stores the doubled
// coordinates.
type Quaternion struct {
	h [4]int32
}

// NewQuaternion returns a + b·i + c·j + d·k, or ErrOverflow if a doubled
// coordinate does not fit an int32.
func NewQuaternion(a, b, c, d int32) (Quaternion, error) {
	l, err := compose.Hurwitz.FromInts(compose.Lanes{a, b, c, d})
	if err != nil {
		return Quaternion{}, err
	}
	return wrap[Quaternion](l), nil
}

// QuaternionFromHalves returns h[0]/2 + h[1]/2·i + h[2]/2·j + h[3]/2·k.
// The halves must be all even or all odd.
func QuaternionFromHalves(h [4]int32) (Quaternion, error) {
	return FromLanes[Quaternion](compose.Lanes{h[0], h[1], h[2], h[3]})
}

// QuaternionI returns i.
func QuaternionI() Quaternion { return Quaternion{h: [4]int32{0, 2, 0, 0}} }

// QuaternionJ returns j.
func QuaternionJ() Quaternion { return Quaternion{h: [4]int32{0, 0, 2, 0}} }

// QuaternionK returns k.
func QuaternionK() Quaternion { return Quaternion{h: [4]int32{0, 0, 0, 2}} }

// Halves returns the doubled coordinates.
func (q Quaternion) Halves() [4]int32 { return q.h }

// IsIntegral reports whether every coordinate is an integer.
func (q Quaternion) IsIntegral() bool { return q.h[0]&1 == 0 }

func (Quaternion) Algebra() *compose.Algebra { return compose.Hurwitz }

func (q Quaternion) Lanes() compose.Lanes {
	return compose.Lanes{q.h[0], q.h[1], q.h[2], q.h[3]}
}

func (Quaternion) withLanes(l compose.Lanes) Quaternion {
	return Quaternion{h: [4]int32{l[0], l[1], l[2], l[3]}}
}

// Method forms of the package-level functions.
func (q Quaternion) Add(p Quaternion) Quaternion               { return Add(q, p) }
func (q Quaternion) Sub(p Quaternion) Quaternion               { return Sub(q, p) }
func (q Quaternion) Neg() Quaternion                           { return Neg(q) }
func (q Quaternion) Conj() Quaternion                          { return Conj(q) }
func (q Quaternion) Mul(p Quaternion) (Quaternion, error)      { return Mul(q, p) }
func (q Quaternion) Norm() uint64                              { return Norm(q) }
func (q Quaternion) IsZero() bool                              { return IsZero(q) }
func (q Quaternion) IsUnit() bool                              { return IsUnit(q) }
func (q Quaternion) DivExact(d Quaternion) (Quaternion, error) { return DivExact(q, d) }
func (q Quaternion) Normalize() Quaternion                     { return Normalize(q) }

// DivRem divides q by d on the right, see the package-level DivRem.
func (q Quaternion) DivRem(d Quaternion) (quo, rem Quaternion, err error) { return DivRem(q, d) }

// Commutator returns a·b - b·a.
func Commutator(a, b Quaternion) (Quaternion, error) {
	ab, err := Mul(a, b)
	if err != nil {
		return Quaternion{}, err
	}
	ba, err := Mul(b, a)
	if err != nil {
		return Quaternion{}, err
	}
	return checkedSub(ab, ba)
}

func checkedSub[T Element[T]](a, b T) (T, error) {
	l, err := a.Algebra().SubChecked(a.Lanes(), b.Lanes())
	if err != nil {
		var z T
		return z, err
	}
	return wrap[T](l), nil
}
