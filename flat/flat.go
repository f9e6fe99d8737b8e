// Package flat provides a one-dimensional, fixed-length store of
// fixed-size byte slots. It is the leaf storage of every 2-D layout in
// locality: a plain grid is one flat.Array, a blocked grid is one flat.Array
// per block.
//
// Slots are contiguous: slot i occupies bytes [i*ElemSize, (i+1)*ElemSize)
// of a single backing slice, so walking indices in increasing order walks
// memory sequentially.
package flat

import (
	"fmt"

	"github.com/katalvlaran/locality/grid"
)

// flatErrorf wraps an underlying error with Array method context.
func flatErrorf(method string, i int, err error) error {
	return fmt.Errorf("Flat.%s(%d): %w", method, i, err)
}

// Array is a fixed-length sequence of elemSize-byte slots.
// n is the slot count, size the slot width, data holds n*size bytes.
// data == nil marks a freed array.
type Array struct {
	n, size int    // slot count and slot width in bytes
	data    []byte // flat backing storage, len == n*size
}

// New creates an Array of length zeroed slots, each elemSize bytes.
// Stage 1 (Validate): length ≥ 1 and elemSize ≥ 1, else ErrInvalidArgument.
// Stage 2 (Prepare): bound the footprint, else ErrResourceExhausted.
// Stage 3 (Finalize): allocate the backing slice.
// Complexity: O(length*elemSize) time and memory.
func New(length, elemSize int, opts ...grid.Option) (*Array, error) {
	if length < 1 || elemSize < 1 {
		return nil, flatErrorf("New", length, grid.ErrInvalidArgument)
	}
	o := grid.Gather(opts...)
	bytes, err := grid.Footprint(length, elemSize, o)
	if err != nil {
		return nil, flatErrorf("New", length, err)
	}

	return &Array{n: length, size: elemSize, data: make([]byte, bytes)}, nil
}

// Len returns the number of slots.
// Complexity: O(1).
func (a *Array) Len() int {
	return a.n
}

// ElemSize returns the slot width in bytes.
// Complexity: O(1).
func (a *Array) ElemSize() int {
	return a.size
}

// At returns a writable view of slot i with len == cap == ElemSize().
// Returns ErrFreed after Free and ErrOutOfRange unless 0 ≤ i < Len().
// Complexity: O(1).
func (a *Array) At(i int) ([]byte, error) {
	if a.data == nil {
		return nil, flatErrorf("At", i, grid.ErrFreed)
	}
	if i < 0 || i >= a.n {
		return nil, flatErrorf("At", i, grid.ErrOutOfRange)
	}
	lo := i * a.size
	hi := lo + a.size

	// Full slice expression caps the view so appends cannot spill into i+1.
	return a.data[lo:hi:hi], nil
}

// Free releases the backing storage. A second call returns ErrFreed.
// Complexity: O(1).
func (a *Array) Free() error {
	if a.data == nil {
		return flatErrorf("Free", a.n, grid.ErrFreed)
	}
	a.data = nil

	return nil
}
