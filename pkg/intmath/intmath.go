// Package intmath provides the exact integer primitives shared by the algebra
// packages: a widened accumulator, checked narrowing, rounding and gcd.
//
// Nothing here touches floating point.
package intmath

import (
	"math"
	"math/bits"
)

// Wide is a signed 128-bit accumulator (two's complement, hi:lo).
//
// Products of two int32 values always fit an int64; sums of up to eight of
// them do not, which is why every bilinear product accumulates here.
type Wide struct {
	hi int64
	lo uint64
}

// NewWide returns v widened.
func NewWide(v int64) Wide {
	return Wide{hi: v >> 63, lo: uint64(v)}
}

// Add accumulates v.
func (w *Wide) Add(v int64) {
	lo, carry := bits.Add64(w.lo, uint64(v), 0)
	w.lo = lo
	w.hi += int64(carry) + (v >> 63)
}

// MulAdd accumulates sign * x * y. sign must be +1 or -1.
func (w *Wide) MulAdd(x, y int32, sign int8) {
	p := int64(x) * int64(y)
	if sign < 0 {
		p = -p
	}
	w.Add(p)
}

// SubU accumulates -u.
func (w *Wide) SubU(u uint64) {
	lo, borrow := bits.Sub64(w.lo, u, 0)
	w.lo = lo
	w.hi -= int64(borrow)
}

// Sub returns w - v. The result wraps modulo 2^128.
func (w Wide) Sub(v Wide) Wide {
	lo, borrow := bits.Sub64(w.lo, v.lo, 0)
	return Wide{hi: w.hi - v.hi - int64(borrow), lo: lo}
}

// abs returns |w| as an unsigned 128-bit hi:lo and whether w is negative.
func (w Wide) abs() (hi, lo uint64, neg bool) {
	if w.hi >= 0 {
		return uint64(w.hi), w.lo, false
	}
	lo, carry := bits.Add64(^w.lo, 1, 0)
	return ^uint64(w.hi) + carry, lo, true
}

// Shr returns w arithmetically shifted right by s bits (0 <= s < 64).
func (w Wide) Shr(s uint) Wide {
	if s == 0 {
		return w
	}
	return Wide{
		hi: w.hi >> s,
		lo: w.lo>>s | uint64(w.hi)<<(64-s),
	}
}

// Int64 returns the accumulated value if it fits an int64.
func (w Wide) Int64() (int64, bool) {
	return int64(w.lo), w.hi == int64(w.lo)>>63
}

// Uint64 returns the accumulated value if it is non-negative and fits a uint64.
func (w Wide) Uint64() (uint64, bool) {
	return w.lo, w.hi == 0
}

// Narrow32 returns v as an int32 if it is in range.
func Narrow32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// Abs32 returns |x| widened, so that |MinInt32| is representable.
func Abs32(x int32) uint64 {
	v := int64(x)
	if v < 0 {
		v = -v
	}
	return uint64(v)
}

// GCD returns the greatest common divisor of a and b; GCD(0, 0) = 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Nearest returns the integer k closest to t/n among those with
// k ≡ parity (mod step), where step is 1 or 2 and parity is 0 or 1
// (parity must be 0 when step is 1). Ties go away from zero in units of step.
// n must be positive. It reports false when |k| would exceed 2^31 in
// units of step, which no int32 coordinate can hold.
func Nearest(t Wide, n uint64, parity, step int64) (int64, bool) {
	// k = step*round((t - parity*n) / (step*n)) + parity
	a := t
	if parity != 0 {
		a.SubU(n)
	}
	hi, lo, neg := a.abs()
	if hi >= n {
		return 0, false
	}
	q1, r1 := bits.Div64(hi, lo, n)

	var q uint64
	var up bool
	if step == 2 {
		// |a| = (2q + q1%2)*n + r1 and the half point of 2n is n.
		q, up = q1/2, q1%2 == 1
	} else {
		q, up = q1, r1 >= n-r1
	}
	if up {
		q++
	}
	if q > 1<<31 {
		return 0, false
	}
	k := int64(q)
	if neg {
		k = -k
	}
	return step*k + parity, true
}
