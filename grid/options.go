// SPDX-License-Identifier: MIT

// Package grid: functional configuration for grid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Gather, which resolves a list of options against the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes the behavior of some constructor.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package grid

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxBytes is the allocation ceiling for the storage of a single
	// grid or flat array (16 GiB). Requests above it fail with
	// ErrResourceExhausted instead of reaching the allocator.
	DefaultMaxBytes int64 = 1 << 34

	// DefaultBlockTarget is the byte footprint an automatically sized block
	// must not exceed (64 KiB).
	DefaultBlockTarget = 64 * 1024
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxBytesInvalid    = "grid: WithMaxBytes: limit must be > 0"
	panicBlockTargetInvalid = "grid: WithBlockTarget: target must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates Options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept ...Option and call Gather.
type Options struct {
	maxBytes    int64 // DefaultMaxBytes
	blockTarget int   // DefaultBlockTarget
}

// WithMaxBytes sets the allocation ceiling in bytes.
// Panics when limit ≤ 0.
// Complexity: O(1).
func WithMaxBytes(limit int64) Option {
	if limit <= 0 {
		panic(panicMaxBytesInvalid)
	}

	return func(o *Options) { o.maxBytes = limit }
}

// WithBlockTarget sets the per-block byte footprint used when a blocked
// layout derives its own block size. Panics when target ≤ 0.
// Complexity: O(1).
func WithBlockTarget(target int) Option {
	if target <= 0 {
		panic(panicBlockTargetInvalid)
	}

	return func(o *Options) { o.blockTarget = target }
}

// Gather resolves opts against the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func Gather(opts ...Option) Options {
	o := Options{
		maxBytes:    DefaultMaxBytes,
		blockTarget: DefaultBlockTarget,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// MaxBytes returns the effective allocation ceiling.
func (o Options) MaxBytes() int64 { return o.maxBytes }

// BlockTarget returns the effective automatic block footprint.
func (o Options) BlockTarget() int { return o.blockTarget }
