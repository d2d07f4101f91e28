// Package batch applies zint operations elementwise over slices.
//
// Every batch operation produces exactly the values of the corresponding
// scalar operation, whichever path runs: hwy vector kernels over full
// 256-bit blocks with a scalar tail, or the scalar path throughout.
// Addition, subtraction, negation and conjugation are lane-blocked; all
// other operations, multiplication included, run per element.
//
// A failing element does not stop a batch. Its output is left zero and the
// call returns an *Error listing every failing index.
package batch

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sync/errgroup"

	"zint/pkg/zint"
)

// blockLanes is the number of int32 lanes in one 256-bit block. Chunks
// align to blocks; the kernels load vectors of whatever width hwy picked.
const blockLanes = 8

// Engine runs batch operations on slices of T. A nil *Engine uses the
// default configuration.
type Engine[T zint.Element[T]] struct {
	cfg config
}

// New returns an engine for T. The hardware probe decides the path unless
// WithScalarOnly is given.
func New[T zint.Element[T]](opts ...Option) *Engine[T] {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return &Engine[T]{cfg: c}
}

func (e *Engine[T]) conf() config {
	if e == nil {
		return defaultConfig()
	}
	return e.cfg
}

// Backend names the selected path: the hwy target ("avx2", "neon", ...)
// or "scalar".
func (e *Engine[T]) Backend() string {
	if e.conf().vector {
		return hwy.CurrentName()
	}
	return "scalar"
}

// Width returns the number of values of T per 256-bit block: 4, 2 or 1.
func (e *Engine[T]) Width() int {
	return blockLanes / zint.AlgebraOf[T]().Rank()
}

// flatten views xs as its stored lanes. Every T is exactly Rank int32s.
func flatten[T zint.Element[T]](xs []T) []int32 {
	if len(xs) == 0 {
		return nil
	}
	rank := zint.AlgebraOf[T]().Rank()
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(xs))), len(xs)*rank)
}

// chunks splits [0, n) into at most workers ranges of at least grain
// elements. Every range but the last starts and ends on a block boundary.
func (c config) chunks(n, width int) [][2]int {
	size := (n + c.workers - 1) / c.workers
	if size < c.grain {
		size = c.grain
	}
	size = (size + width - 1) / width * width

	var cs [][2]int
	for lo := 0; lo < n; lo += size {
		cs = append(cs, [2]int{lo, min(lo+size, n)})
	}
	return cs
}

// run calls fn on the chunks of [0, n), on separate goroutines when more
// than one chunk results, and gathers the element failures in index order.
func (c config) run(n, width int, fn func(lo, hi int) []ElementError) error {
	if n == 0 {
		return nil
	}
	cs := c.chunks(n, width)
	fails := make([][]ElementError, len(cs))
	if len(cs) == 1 {
		fails[0] = fn(0, n)
	} else {
		var g errgroup.Group
		g.SetLimit(c.workers)
		for i, ch := range cs {
			g.Go(func() error {
				fails[i] = fn(ch[0], ch[1])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	var all []ElementError
	for _, f := range fails {
		all = append(all, f...)
	}
	if len(all) == 0 {
		return nil
	}
	return &Error{Failures: all}
}

// each applies fn to every index, recording its failures.
func (e *Engine[T]) each(n int, fn func(i int) error) error {
	return e.conf().run(n, e.Width(), func(lo, hi int) []ElementError {
		var fails []ElementError
		for i := lo; i < hi; i++ {
			if err := fn(i); err != nil {
				fails = append(fails, ElementError{Index: i, Err: err})
			}
		}
		return fails
	})
}

// lanewise runs blocks over the full blocks of each chunk when the vector
// path is enabled, and scalar on every remaining element.
func (e *Engine[T]) lanewise(out, a, b []T, blocks func(dst, x, y []int32), scalar func(x, y T) T) error {
	c := e.conf()
	width := e.Width()
	rank := blockLanes / width
	dst, xs, ys := flatten(out), flatten(a), flatten(b)
	return c.run(len(out), width, func(lo, hi int) []ElementError {
		i := lo
		if c.vector {
			full := (hi - lo) / width * width
			blocks(dst[lo*rank:(lo+full)*rank], xs[lo*rank:(lo+full)*rank], ys[lo*rank:(lo+full)*rank])
			i += full
		}
		for ; i < hi; i++ {
			out[i] = scalar(a[i], b[i])
		}
		return nil
	})
}

func checkLen(what string, got, want int) error {
	if got != want {
		return lengthError(what, got, want)
	}
	return nil
}
