package blocked

import (
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/locality/grid"
)

// CacheLineSize is the cache line width, in bytes, of the build target.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// AutoBlockSize returns the largest B ≥ 0 with B·B·elemSize ≤ target.
// A result of 0 means no positive block fits. Both arguments must be ≥ 1.
// Complexity: O(1).
func AutoBlockSize(elemSize, target int) int {
	if elemSize < 1 || target < 1 {
		return 0
	}
	cells := target / elemSize
	b := int(math.Sqrt(float64(cells)))
	// Correct float rounding in either direction so b = floor(sqrt(cells)).
	for b > 0 && b*b > cells {
		b--
	}
	for (b+1)*(b+1) <= cells {
		b++
	}

	return b
}

// NewAuto creates a width×height blocked array whose block size is the
// largest B such that one block occupies at most the block target
// (64 KiB unless grid.WithBlockTarget says otherwise).
// Returns ErrInvalidArgument when elemSize < 1 or when elemSize alone
// exceeds the target, so no positive B exists.
// Complexity: as New.
func NewAuto(width, height, elemSize int, opts ...grid.Option) (*Array, error) {
	if elemSize < 1 {
		return nil, blockedErrorf("NewAuto", width, height, grid.ErrInvalidArgument)
	}
	o := grid.Gather(opts...)
	b := AutoBlockSize(elemSize, o.BlockTarget())
	if b == 0 {
		return nil, blockedErrorf("NewAuto", width, height, grid.ErrInvalidArgument)
	}

	return New(width, height, elemSize, b, opts...)
}

// LinesPerBlock returns how many cache lines one block's storage spans.
// Complexity: O(1).
func (a *Array) LinesPerBlock() int {
	return ceilDiv(a.blockSize*a.blockSize*a.size, CacheLineSize)
}
