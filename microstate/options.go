// SPDX-License-Identifier: MIT

package microstate

// Defaults (single source of truth).
const (
	// DefaultSamples of 0 selects the exhaustive scan.
	DefaultSamples = 0

	// DefaultSeed of 0 is mapped to defaultRNGSeed.
	DefaultSeed int64 = 0

	// DefaultWorkers runs the exhaustive scan on the calling goroutine.
	DefaultWorkers = 1
)

const (
	panicSamplesInvalid = "microstate: WithSamples: n must be > 0"
	panicWorkersInvalid = "microstate: WithWorkers: k must be > 0"
)

// Option configures Distribution. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	samples int
	seed    int64
	workers int
}

func defaultOptions() options {
	return options{
		samples: DefaultSamples,
		seed:    DefaultSeed,
		workers: DefaultWorkers,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSamples switches to random sampling of n anchors.
func WithSamples(n int) Option {
	if n <= 0 {
		panic(panicSamplesInvalid)
	}

	return func(o *options) { o.samples = n }
}

// WithSeed sets the sampling seed; 0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWorkers splits the exhaustive scan across k goroutines.
// Ignored when sampling.
func WithWorkers(k int) Option {
	if k <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = k }
}
