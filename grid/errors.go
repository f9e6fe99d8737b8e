// SPDX-License-Identifier: MIT
// Package grid: sentinel error set shared by every layout.
// Layouts MUST return these sentinels (wrapped with call-site context) and
// tests MUST check them via errors.Is. No layout panics on user-triggered
// conditions.

package grid

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "grid: ..." so the sentinel is recognisable
// after wrapping, e.g. "Blocked.At(12,3): grid: index out of range".
//
// ERROR PRIORITY (enforced in tests):
// freed -> argument -> resource -> range -> capability.

var (
	// ErrInvalidArgument is returned when a width, height, element size or
	// block size is not positive, or when a required callback is nil.
	ErrInvalidArgument = errors.New("grid: invalid argument")

	// ErrOutOfRange indicates that (col,row) or a flat index lies outside
	// the current logical bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrUnsupported signals that a method suite does not implement the
	// requested map order, or that a map was handed a grid of a layout it
	// cannot traverse.
	ErrUnsupported = errors.New("grid: unsupported capability")

	// ErrResourceExhausted signals that the requested storage overflows int
	// or exceeds the configured allocation ceiling (see WithMaxBytes).
	ErrResourceExhausted = errors.New("grid: resource exhausted")

	// ErrFreed indicates use of a grid (or flat array) after Free.
	ErrFreed = errors.New("grid: use after free")

	// ErrDimensionMismatch indicates two grids whose shapes or element
	// sizes are incompatible for the requested operation.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)
