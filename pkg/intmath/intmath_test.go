package intmath

import (
	"math"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{0, 0, 0},
		{0, 7, 7},
		{7, 0, 7},
		{12, 18, 6},
		{18, 12, 6},
		{17, 5, 1},
		{1 << 40, 1 << 20, 1 << 20},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
	}
	for _, tc := range tests {
		if got := GCD(tc.a, tc.b); got != tc.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// Eight extreme products overflow int64 but must come back exactly.
func TestWideBeyondInt64(t *testing.T) {
	var w Wide
	for i := 0; i < 8; i++ {
		w.MulAdd(math.MinInt32, math.MinInt32, 1)
	}
	if _, ok := w.Int64(); ok {
		t.Fatalf("8 * 2^62 reported as fitting int64")
	}
	for i := 0; i < 8; i++ {
		w.MulAdd(math.MinInt32, math.MinInt32, -1)
	}
	v, ok := w.Int64()
	if !ok || v != 0 {
		t.Errorf("after cancelling: got (%d, %v), want (0, true)", v, ok)
	}
}

func TestWideNegative(t *testing.T) {
	var w Wide
	w.Add(-5)
	w.Add(3)
	if v, ok := w.Int64(); !ok || v != -2 {
		t.Errorf("got (%d, %v), want (-2, true)", v, ok)
	}
	if _, ok := w.Uint64(); ok {
		t.Errorf("negative value reported as uint64")
	}
}

func TestWideShr(t *testing.T) {
	var w Wide
	for i := 0; i < 4; i++ {
		w.MulAdd(math.MinInt32, math.MinInt32, 1) // 4 * 2^62 = 2^64
	}
	u, ok := w.Shr(2).Uint64()
	if !ok || u != 1<<62 {
		t.Errorf("2^64 >> 2 = (%d, %v), want (%d, true)", u, ok, uint64(1)<<62)
	}

	var n Wide
	n.Add(-6)
	if v, _ := n.Shr(1).Int64(); v != -3 {
		t.Errorf("-6 >> 1 = %d, want -3", v)
	}
}

func TestNarrow32(t *testing.T) {
	tests := []struct {
		in   int64
		want int32
		ok   bool
	}{
		{0, 0, true},
		{math.MaxInt32, math.MaxInt32, true},
		{math.MinInt32, math.MinInt32, true},
		{math.MaxInt32 + 1, 0, false},
		{math.MinInt32 - 1, 0, false},
	}
	for _, tc := range tests {
		got, ok := Narrow32(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Narrow32(%d) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAbs32(t *testing.T) {
	if got := Abs32(math.MinInt32); got != 1<<31 {
		t.Errorf("Abs32(MinInt32) = %d, want %d", got, uint64(1)<<31)
	}
	if got := Abs32(-7); got != 7 {
		t.Errorf("Abs32(-7) = %d, want 7", got)
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		t            int64
		n            uint64
		parity, step int64
		want         int64
	}{
		{70, 13, 0, 1, 5},
		{-70, 13, 0, 1, -5},
		{7, 2, 0, 2, 4},  // 3.5 -> nearest even is 4
		{7, 2, 1, 2, 3},  // 3.5 -> nearest odd is 3
		{0, 5, 1, 2, -1}, // tie between -1 and 1 goes away from zero
		{0, 5, 0, 2, 0},
		{9, 1, 1, 2, 9},
		{9, 1, 0, 2, 10},
		{5, 1 << 41, 0, 1, 0},
		{5, 1 << 41, 1, 2, 1},
		{-5, 1 << 41, 1, 2, -1},
		{0, 1 << 63, 1, 2, -1},
	}
	for _, tc := range tests {
		got, ok := Nearest(NewWide(tc.t), tc.n, tc.parity, tc.step)
		if !ok || got != tc.want {
			t.Errorf("Nearest(%d, %d, %d, %d) = (%d, %v), want (%d, true)", tc.t, tc.n, tc.parity, tc.step, got, ok, tc.want)
		}
	}
}

// Quotients of 10^5-sized coordinates need t far beyond 2^32; the divisor
// can reach 2^63.
func TestNearestWide(t *testing.T) {
	var w Wide
	w.MulAdd(1000000, 1000000, 1) // 10^12
	w.MulAdd(1000000, 1000000, 1)
	if k, ok := Nearest(w, 30000, 0, 1); !ok || k != 66666667 {
		t.Errorf("2e12 / 30000 = (%d, %v), want (66666667, true)", k, ok)
	}
	if k, ok := Nearest(w, 30000, 1, 2); !ok || k != 66666667 {
		t.Errorf("2e12 / 30000 odd = (%d, %v), want (66666667, true)", k, ok)
	}
	if k, ok := Nearest(w, 30000, 0, 2); !ok || k != 66666666 {
		t.Errorf("2e12 / 30000 even = (%d, %v), want (66666666, true)", k, ok)
	}

	var neg Wide
	for i := 0; i < 8; i++ {
		neg.MulAdd(math.MinInt32, math.MaxInt32, 1) // about -2^65
	}
	if k, ok := Nearest(neg, 1<<63, 0, 1); !ok || k != -4 {
		t.Errorf("-2^65/2^63 = (%d, %v), want (-4, true)", k, ok)
	}
	if k, ok := Nearest(neg, 1<<63, 1, 2); !ok || k != -3 {
		t.Errorf("-2^65/2^63 odd = (%d, %v), want (-3, true)", k, ok)
	}
	if _, ok := Nearest(neg, 3, 0, 1); ok {
		t.Errorf("-2^65/3 reported as fitting")
	}
	if _, ok := Nearest(NewWide(1<<32), 1, 0, 1); ok {
		t.Errorf("2^32 reported as fitting")
	}
	if k, ok := Nearest(NewWide(math.MinInt32), 1, 0, 1); !ok || k != math.MinInt32 {
		t.Errorf("-2^31 = (%d, %v), want (%d, true)", k, ok, math.MinInt32)
	}
}

func TestWideSub(t *testing.T) {
	a := NewWide(math.MinInt64)
	d := a.Sub(NewWide(1))
	if _, ok := d.Int64(); ok {
		t.Fatalf("MinInt64 - 1 reported as fitting int64")
	}
	if v, ok := d.Sub(NewWide(-1)).Int64(); !ok || v != math.MinInt64 {
		t.Errorf("round trip = (%d, %v), want (%d, true)", v, ok, int64(math.MinInt64))
	}
	w := NewWide(5)
	w.SubU(1 << 63)
	w.SubU(1 << 63)
	w.Add(math.MaxInt64)
	w.Add(math.MaxInt64)
	w.Add(2)
	if v, ok := w.Int64(); !ok || v != 5 {
		t.Errorf("5 - 2^64 + 2^64 = (%d, %v), want (5, true)", v, ok)
	}
}

// Brute-force check that Nearest really is nearest within its class.
func TestNearestIsNearest(t *testing.T) {
	for n := uint64(1); n <= 12; n++ {
		for tv := int64(-60); tv <= 60; tv++ {
			for _, c := range [][2]int64{{0, 1}, {0, 2}, {1, 2}} {
				k, ok := Nearest(NewWide(tv), n, c[0], c[1])
				if !ok {
					t.Fatalf("Nearest(%d, %d, %d, %d) reported overflow", tv, n, c[0], c[1])
				}
				if ((k%c[1])+c[1])%c[1] != c[0] {
					t.Fatalf("Nearest(%d, %d, %d, %d) = %d has wrong class", tv, n, c[0], c[1], k)
				}
				d := absDiff(tv, k*int64(n))
				for _, alt := range []int64{k - c[1], k + c[1]} {
					if absDiff(tv, alt*int64(n)) < d {
						t.Fatalf("Nearest(%d, %d, %d, %d) = %d, but %d is closer", tv, n, c[0], c[1], k, alt)
					}
				}
			}
		}
	}
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
