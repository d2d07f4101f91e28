package batch

import "github.com/ajroetker/go-highway/hwy"

// Lane kernels run over whole 256-bit blocks of int32 lanes in hwy vectors
// of the dispatched width. A region the vector width does not divide, such
// as an odd number of blocks under AVX-512, ends in a masked tail. Lanes
// wrap on overflow exactly like the scalar element operations.

func addBlocks(dst, a, b []int32) {
	hwy.ProcessWithTail[int32](len(dst),
		func(off int) {
			hwy.Store(hwy.Add(hwy.Load(a[off:]), hwy.Load(b[off:])), dst[off:])
		},
		func(off, count int) {
			m := hwy.TailMask[int32](count)
			hwy.MaskStore(m, hwy.Add(hwy.MaskLoad(m, a[off:]), hwy.MaskLoad(m, b[off:])), dst[off:])
		},
	)
}

func subBlocks(dst, a, b []int32) {
	hwy.ProcessWithTail[int32](len(dst),
		func(off int) {
			hwy.Store(hwy.Sub(hwy.Load(a[off:]), hwy.Load(b[off:])), dst[off:])
		},
		func(off, count int) {
			m := hwy.TailMask[int32](count)
			hwy.MaskStore(m, hwy.Sub(hwy.MaskLoad(m, a[off:]), hwy.MaskLoad(m, b[off:])), dst[off:])
		},
	)
}

// signBlocks negates the lanes selected by pattern (-1 selects, 0 keeps)
// with the branchless (x ^ m) - m. The pattern repeats every len(pattern)
// lanes; its length is a multiple of both the rank and the vector width.
func signBlocks(dst, a, pattern []int32) {
	period := len(pattern)
	hwy.ProcessWithTail[int32](len(dst),
		func(off int) {
			m := hwy.Load(pattern[off%period:])
			hwy.Store(hwy.Sub(hwy.Xor(hwy.Load(a[off:]), m), m), dst[off:])
		},
		func(off, count int) {
			tail := hwy.TailMask[int32](count)
			m := hwy.MaskLoad(tail, pattern[off%period:])
			hwy.MaskStore(tail, hwy.Sub(hwy.Xor(hwy.MaskLoad(tail, a[off:]), m), m), dst[off:])
		},
	)
}

// signPattern returns one period of the lane sign mask for values of the
// given rank: lanes whose index within their value is in keep stay, the rest
// are negated. The period covers both a whole vector and a whole value.
func signPattern(rank int, keep func(k int) bool) []int32 {
	period := max(rank, hwy.MaxLanes[int32]())
	p := make([]int32, period)
	for i := range p {
		if !keep(i % rank) {
			p[i] = -1
		}
	}
	return p
}

// negPattern selects every lane.
func negPattern(rank int) []int32 {
	return signPattern(rank, func(int) bool { return false })
}

// conjPattern selects every lane but the scalar one of each packed value.
func conjPattern(rank int) []int32 {
	return signPattern(rank, func(k int) bool { return k == 0 })
}
