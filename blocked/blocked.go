package blocked

import (
	"fmt"

	"github.com/katalvlaran/locality/flat"
	"github.com/katalvlaran/locality/grid"
)

// blockedErrorf wraps an underlying error with Array method context.
func blockedErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Blocked.%s(%d,%d): %w", method, col, row, err)
}

// Array is a blocked 2-D array.
// blocks holds blockRows·blockCols flat arrays in row-major block order;
// freed is set once Free has released them.
type Array struct {
	width, height int // logical dimensions
	size          int // element size in bytes
	blockSize     int // cells per block side (B)

	blockRows, blockCols int           // ceil(height/B), ceil(width/B)
	blocks               []*flat.Array // len == blockRows*blockCols
	freed                bool
}

// compile-time check that *Array satisfies the shared contract.
var _ grid.Grid = (*Array)(nil)

// ceilDiv returns ceil(n/d) for n ≥ 0, d ≥ 1 without overflowing n+d.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 {
		q++
	}

	return q
}

// New creates a width×height blocked array of elemSize-byte elements with
// blockSize cells per block side. Every block is allocated eagerly.
// Stage 1 (Validate): width, height, elemSize, blockSize ≥ 1.
// Stage 2 (Prepare): bound the total footprint of all blocks.
// Stage 3 (Finalize): allocate blockRows·blockCols flat arrays of B² slots.
// Complexity: O(blockRows·blockCols·B²·elemSize) time and memory.
func New(width, height, elemSize, blockSize int, opts ...grid.Option) (*Array, error) {
	if err := grid.ValidateShape(width, height, elemSize); err != nil {
		return nil, blockedErrorf("New", width, height, err)
	}
	if blockSize < 1 {
		return nil, blockedErrorf("New", width, height, grid.ErrInvalidArgument)
	}

	o := grid.Gather(opts...)
	blockRows, blockCols := ceilDiv(height, blockSize), ceilDiv(width, blockSize)
	nBlocks, err := grid.Count(blockRows, blockCols)
	if err != nil {
		return nil, blockedErrorf("New", width, height, err)
	}
	perBlock, err := grid.Count(blockSize, blockSize)
	if err != nil {
		return nil, blockedErrorf("New", width, height, err)
	}
	slots, err := grid.Count(nBlocks, perBlock)
	if err != nil {
		return nil, blockedErrorf("New", width, height, err)
	}
	if _, err = grid.Footprint(slots, elemSize, o); err != nil {
		return nil, blockedErrorf("New", width, height, err)
	}

	blocks := make([]*flat.Array, nBlocks)
	for i := range blocks {
		if blocks[i], err = flat.New(perBlock, elemSize, opts...); err != nil {
			return nil, blockedErrorf("New", width, height, err)
		}
	}

	return &Array{
		width:     width,
		height:    height,
		size:      elemSize,
		blockSize: blockSize,
		blockRows: blockRows,
		blockCols: blockCols,
		blocks:    blocks,
	}, nil
}

// Width returns the number of logical columns.
func (a *Array) Width() int { return a.width }

// Height returns the number of logical rows.
func (a *Array) Height() int { return a.height }

// ElemSize returns the element size in bytes.
func (a *Array) ElemSize() int { return a.size }

// BlockSize returns the number of cells on one side of a block.
func (a *Array) BlockSize() int { return a.blockSize }

// BlockRows returns ceil(Height()/BlockSize()).
func (a *Array) BlockRows() int { return a.blockRows }

// BlockCols returns ceil(Width()/BlockSize()).
func (a *Array) BlockCols() int { return a.blockCols }

// Locate returns the storage coordinates of (col,row): the block index in
// row-major block order and the slot offset inside that block.
// Returns ErrFreed after Free and ErrOutOfRange outside the logical grid.
// Complexity: O(1).
func (a *Array) Locate(col, row int) (block, offset int, err error) {
	if a.freed {
		return 0, 0, blockedErrorf("Locate", col, row, grid.ErrFreed)
	}
	if err = grid.ValidateIndex(col, row, a.width, a.height); err != nil {
		return 0, 0, blockedErrorf("Locate", col, row, err)
	}
	b := a.blockSize
	block = (row/b)*a.blockCols + col/b
	offset = b*(row%b) + col%b

	return block, offset, nil
}

// At returns a writable view of the element at (col,row).
// Returns ErrFreed after Free and ErrOutOfRange outside the logical grid.
// Complexity: O(1).
func (a *Array) At(col, row int) ([]byte, error) {
	block, offset, err := a.Locate(col, row)
	if err != nil {
		return nil, err
	}

	return a.blocks[block].At(offset)
}

// Free releases every block, then the block index.
// A second call returns ErrFreed.
// Complexity: O(blockRows·blockCols).
func (a *Array) Free() error {
	if a.freed {
		return blockedErrorf("Free", a.width, a.height, grid.ErrFreed)
	}
	for _, blk := range a.blocks {
		if err := blk.Free(); err != nil {
			return blockedErrorf("Free", a.width, a.height, err)
		}
	}
	a.blocks = nil
	a.freed = true

	return nil
}

// String implements fmt.Stringer for debugging.
func (a *Array) String() string {
	return fmt.Sprintf("Blocked{%dx%d elem=%d B=%d blocks=%dx%d}",
		a.width, a.height, a.size, a.blockSize, a.blockCols, a.blockRows)
}
