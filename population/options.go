// SPDX-License-Identifier: MIT

// Package population: functional configuration for Evaluate.
package population

import "runtime"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // 0 means runtime.GOMAXPROCS(0)
}

// WithWorkers bounds the number of concurrently scored chromosomes.
// Panics if n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("population: WithWorkers(n) requires n >= 1")
	}
	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
