// Package plain provides the non-blocked 2-D array: a row-major layout
// storing width·height fixed-size elements in a single flat.Array.
// Cell (col,row) lives at slot row·width + col, so a row-major walk reads
// memory sequentially while a column-major walk strides by one row.
package plain

import (
	"fmt"

	"github.com/katalvlaran/locality/flat"
	"github.com/katalvlaran/locality/grid"
)

// plainErrorf wraps an underlying error with Array method context.
func plainErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Plain.%s(%d,%d): %w", method, col, row, err)
}

// Array is a row-major 2-D array of fixed-size elements.
// w is columns, h is rows; cells holds w*h slots in row-major order.
type Array struct {
	w, h  int         // number of columns and rows
	cells *flat.Array // flat backing storage, Len() == w*h
}

var _ grid.Grid = (*Array)(nil)

// New creates a width×height row-major array of elemSize-byte elements.
// Stage 1 (Validate): width, height, elemSize ≥ 1.
// Stage 2 (Prepare): count slots without overflow.
// Stage 3 (Finalize): allocate the flat backing store.
// Complexity: O(width·height·elemSize) time and memory.
func New(width, height, elemSize int, opts ...grid.Option) (*Array, error) {
	if err := grid.ValidateShape(width, height, elemSize); err != nil {
		return nil, plainErrorf("New", width, height, err)
	}
	n, err := grid.Count(width, height)
	if err != nil {
		return nil, plainErrorf("New", width, height, err)
	}
	cells, err := flat.New(n, elemSize, opts...)
	if err != nil {
		return nil, plainErrorf("New", width, height, err)
	}

	return &Array{w: width, h: height, cells: cells}, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (a *Array) Width() int {
	return a.w
}

// Height returns the number of rows.
// Complexity: O(1).
func (a *Array) Height() int {
	return a.h
}

// ElemSize returns the element size in bytes.
// Complexity: O(1).
func (a *Array) ElemSize() int {
	return a.cells.ElemSize()
}

// indexOf computes the flat index for (col, row) or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array) indexOf(col, row int) (int, error) {
	if err := grid.ValidateIndex(col, row, a.w, a.h); err != nil {
		return 0, plainErrorf("At", col, row, err)
	}

	return row*a.w + col, nil
}

// At returns a writable view of the element at (col, row).
// Returns ErrOutOfRange outside the grid and ErrFreed after Free.
// Complexity: O(1).
func (a *Array) At(col, row int) ([]byte, error) {
	idx, err := a.indexOf(col, row)
	if err != nil {
		return nil, err
	}
	elem, err := a.cells.At(idx)
	if err != nil {
		return nil, plainErrorf("At", col, row, err)
	}

	return elem, nil
}

// MapRowMajor visits every cell in row-major order (rows increasing, then
// columns increasing), walking the backing store sequentially.
// Stops at the first error from apply.
// Complexity: O(w·h).
func (a *Array) MapRowMajor(apply grid.ApplyFunc) error {
	if apply == nil {
		return plainErrorf("MapRowMajor", a.w, a.h, grid.ErrInvalidArgument)
	}
	n := a.cells.Len()
	for i := 0; i < n; i++ {
		col, row := i%a.w, i/a.w
		elem, err := a.cells.At(i)
		if err != nil {
			return plainErrorf("MapRowMajor", col, row, err)
		}
		if err = apply(col, row, a, elem); err != nil {
			return plainErrorf("MapRowMajor", col, row, err)
		}
	}

	return nil
}

// MapColMajor visits every cell in column-major order (columns increasing,
// then rows increasing), striding w slots between visits.
// Stops at the first error from apply.
// Complexity: O(w·h).
func (a *Array) MapColMajor(apply grid.ApplyFunc) error {
	if apply == nil {
		return plainErrorf("MapColMajor", a.w, a.h, grid.ErrInvalidArgument)
	}
	for col := 0; col < a.w; col++ {
		for row := 0; row < a.h; row++ {
			elem, err := a.cells.At(row*a.w + col)
			if err != nil {
				return plainErrorf("MapColMajor", col, row, err)
			}
			if err = apply(col, row, a, elem); err != nil {
				return plainErrorf("MapColMajor", col, row, err)
			}
		}
	}

	return nil
}

// Free releases the backing store. A second call returns ErrFreed.
// Complexity: O(1).
func (a *Array) Free() error {
	if err := a.cells.Free(); err != nil {
		return plainErrorf("Free", a.w, a.h, err)
	}

	return nil
}

// String implements fmt.Stringer for debugging.
func (a *Array) String() string {
	return fmt.Sprintf("Plain{%dx%d elem=%d}", a.w, a.h, a.cells.ElemSize())
}
