// SPDX-License-Identifier: MIT

package measure

import (
	"github.com/katalvlaran/rqa/metric"
	"github.com/katalvlaran/rqa/microstate"
	"github.com/katalvlaran/rqa/recurrence"
	"github.com/katalvlaran/rqa/series"
)

// Builder produces a microstate distribution; microstate.Distribution is the default.
type Builder func(x, y series.Series, rule recurrence.Rule, shape microstate.Shape, opts ...microstate.Option) ([]float64, error)

// RateFunc extracts the recurrence rate from a distribution; microstate.Rate is the default.
type RateFunc func(dist []float64) float64

const (
	panicNilMetric  = "measure: WithMetric: metric must not be nil"
	panicNilBuilder = "measure: WithBuilder: builder must not be nil"
	panicNilRate    = "measure: WithRate: rate must not be nil"
)

// Option configures Laminarity.
type Option func(*options)

type options struct {
	metric  metric.Metric
	policy  recurrence.Policy
	builder Builder
	rate    RateFunc
	msOpts  []microstate.Option
}

func defaultOptions() options {
	return options{
		metric:  metric.Euclidean{},
		policy:  recurrence.Standard,
		builder: microstate.Distribution,
		rate:    microstate.Rate,
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

// WithMetric sets the distance metric (default metric.Euclidean).
func WithMetric(m metric.Metric) Option {
	if m == nil {
		panic(panicNilMetric)
	}

	return func(o *options) { o.metric = m }
}

// WithPolicy sets the recurrence policy (default recurrence.Standard).
// The threshold passed to Laminarity must fit the policy.
func WithPolicy(p recurrence.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithBuilder replaces the distribution builder.
func WithBuilder(b Builder) Option {
	if b == nil {
		panic(panicNilBuilder)
	}

	return func(o *options) { o.builder = b }
}

// WithRate replaces the recurrence-rate function.
func WithRate(r RateFunc) Option {
	if r == nil {
		panic(panicNilRate)
	}

	return func(o *options) { o.rate = r }
}

// WithMicrostateOptions forwards options (sampling, seed, workers) to the builder.
func WithMicrostateOptions(opts ...microstate.Option) Option {
	return func(o *options) { o.msOpts = append(o.msOpts, opts...) }
}
