// Package grid: capability set, traversal protocol and map orders.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a logical width×height collection of fixed-size elements
// addressed by (col, row). Implementations differ only in physical layout.
//
// Complexity notes: all methods are expected O(1) except Free.
type Grid interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// ElemSize returns the size of one element in bytes.
	ElemSize() int

	// At returns a writable view of the cell at (col, row).
	// The view has len == cap == ElemSize() and stays valid until Free.
	// Returns ErrOutOfRange unless 0 ≤ col < Width() and 0 ≤ row < Height().
	At(col, row int) ([]byte, error)

	// Free releases the grid's storage. A second call returns ErrFreed.
	Free() error
}

// ApplyFunc is invoked once per visited cell with the cell's logical
// coordinates, the grid being traversed and a writable view of the cell.
// Caller state travels in the closure. A non-nil error stops the traversal.
type ApplyFunc func(col, row int, src Grid, elem []byte) error

// MapFunc visits every cell of g exactly once in an order fixed by the
// implementation, calling apply for each. It returns only after the last
// visit or the first failure.
type MapFunc func(g Grid, apply ApplyFunc) error

// Order names a traversal strategy.
type Order int

const (
	// Default selects the layout's preferred order.
	Default Order = iota
	// RowMajor visits rows in increasing order, columns increasing within a row.
	RowMajor
	// ColMajor visits columns in increasing order, rows increasing within a column.
	ColMajor
	// BlockMajor visits block by block; defined only for blocked layouts.
	BlockMajor
)

// orderNames maps each Order to its canonical flag spelling.
var orderNames = map[Order]string{
	Default:    "default",
	RowMajor:   "row-major",
	ColMajor:   "col-major",
	BlockMajor: "block-major",
}

// String implements fmt.Stringer.
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}

	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder resolves a canonical order name (case-insensitive).
// "column-major" is accepted as an alias of "col-major".
// Returns ErrUnsupported for unknown names.
func ParseOrder(name string) (Order, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "column-major" {
		return ColMajor, nil
	}
	for o, n := range orderNames {
		if n == key {
			return o, nil
		}
	}

	return Default, fmt.Errorf("ParseOrder(%q): %w", name, ErrUnsupported)
}
