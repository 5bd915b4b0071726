// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for distance-matrix builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCeil keeps exact Euclidean distances (TTP "EUC_2D" as used by the
	// benchmark tooling). Enable WithCeil for "CEIL_2D" instances.
	DefaultCeil = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	ceil bool // DefaultCeil
}

// WithCeil rounds every off-diagonal distance up to the next integer.
func WithCeil() Option {
	return func(o *Options) { o.ceil = true }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{ceil: DefaultCeil}
}

// gatherOptions applies opts over defaults in order; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
