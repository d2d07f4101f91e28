package batch

import "fmt"

// Option configures an Engine.
type Option func(*config)

type config struct {
	vector  bool
	workers int
	grain   int
}

func defaultConfig() config {
	return config{vector: hasVector(), workers: DefaultWorkers, grain: DefaultGrain}
}

// Defaults used by New.
const (
	// DefaultWorkers keeps batches on the calling goroutine.
	DefaultWorkers = 1
	// DefaultGrain is the smallest number of elements handed to one worker.
	DefaultGrain = 4096
)

// WithScalarOnly disables the lane-blocked kernels even when the hardware
// probe succeeds.
func WithScalarOnly() Option {
	return func(c *config) { c.vector = false }
}

// WithWorkers splits each batch across up to n goroutines.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithWorkers(%d): need at least one worker", n))
	}
	return func(c *config) { c.workers = n }
}

// WithGrain sets the minimum chunk size per worker. It is rounded up to a
// whole number of blocks. Panics if n < 1.
func WithGrain(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithGrain(%d): grain must be positive", n))
	}
	return func(c *config) { c.grain = n }
}
