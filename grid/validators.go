// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Provide a single source of truth for construction and access checks.
//  - Keep layouts minimal by delegating shape/bounds/footprint checks here.
//  - Return plain sentinels wrapped with the validator tag, so call sites can
//    add their own context and callers still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package grid

import (
	"fmt"
	"math"
	"math/bits"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures width, height and elemSize are all ≥ 1.
// Returns wrapped ErrInvalidArgument otherwise.
// Complexity: O(1).
func ValidateShape(width, height, elemSize int) error {
	if width < 1 {
		return validatorErrorf("ValidateShape: width", ErrInvalidArgument)
	}
	if height < 1 {
		return validatorErrorf("ValidateShape: height", ErrInvalidArgument)
	}
	if elemSize < 1 {
		return validatorErrorf("ValidateShape: elemSize", ErrInvalidArgument)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ col < width and 0 ≤ row < height.
// Returns wrapped ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateIndex(col, row, width, height int) error {
	if col < 0 || col >= width {
		return validatorErrorf("ValidateIndex: col", ErrOutOfRange)
	}
	if row < 0 || row >= height {
		return validatorErrorf("ValidateIndex: row", ErrOutOfRange)
	}

	return nil
}

// ValidateNotNil ensures g is non-nil.
// Complexity: O(1).
func ValidateNotNil(g Grid) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrInvalidArgument)
	}

	return nil
}

// ValidateSameElem ensures a and b hold elements of the same size.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameElem(a, b Grid) error {
	if a.ElemSize() != b.ElemSize() {
		return validatorErrorf("ValidateSameElem", ErrDimensionMismatch)
	}

	return nil
}

// Count multiplies two non-negative counts, failing with
// ErrResourceExhausted when the product does not fit in an int.
// Complexity: O(1).
func Count(a, b int) (int, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, validatorErrorf("Count", ErrResourceExhausted)
	}

	return int(lo), nil
}

// Footprint returns slots*elemSize in bytes, failing with
// ErrResourceExhausted when the product overflows or exceeds the
// ceiling configured in o.
// Complexity: O(1).
func Footprint(slots, elemSize int, o Options) (int, error) {
	n, err := Count(slots, elemSize)
	if err != nil {
		return 0, validatorErrorf("Footprint", ErrResourceExhausted)
	}
	if int64(n) > o.maxBytes {
		return 0, validatorErrorf("Footprint: ceiling", ErrResourceExhausted)
	}

	return n, nil
}
