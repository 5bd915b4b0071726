// SPDX-License-Identifier: MIT

// Package ttpio: functional configuration for Parse and ParseFile.
package ttpio

// Option mutates internal parse options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	exact bool // ignore CEIL_2D and keep exact Euclidean distances
}

// WithExactDistances keeps exact Euclidean distances even when the header
// declares EDGE_WEIGHT_TYPE CEIL_2D. Scores then match tooling that never
// rounds, such as the numpy distance_matrix helpers commonly used with the
// benchmark files.
func WithExactDistances() Option {
	return func(o *Options) { o.exact = true }
}

// gatherOptions applies opts over the zero configuration; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
