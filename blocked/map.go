package blocked

import "github.com/katalvlaran/locality/grid"

// MapBlockMajor visits every logical cell exactly once, block by block.
//
// Order:
//   - Outer: blocks in row-major block order (block row 0..BlockRows()-1,
//     block column 0..BlockCols()-1 within a block row).
//   - Inner: the block's slots in storage order; slot i maps back to
//     (bc·B + i%B, br·B + i/B). Slots that land outside the logical grid
//     (surplus cells of edge blocks) are skipped.
//
// Consecutive visits inside a block therefore read adjacent slots of one
// contiguous buffer. apply receives a as the source grid.
// Stops at the first error from apply and returns it wrapped.
// Complexity: O(BlockRows()·BlockCols()·B²).
func (a *Array) MapBlockMajor(apply grid.ApplyFunc) error {
	if apply == nil {
		return blockedErrorf("MapBlockMajor", a.width, a.height, grid.ErrInvalidArgument)
	}
	if a.freed {
		return blockedErrorf("MapBlockMajor", a.width, a.height, grid.ErrFreed)
	}

	b := a.blockSize
	for br := 0; br < a.blockRows; br++ {
		for bc := 0; bc < a.blockCols; bc++ {
			blk := a.blocks[br*a.blockCols+bc]
			n := blk.Len()
			for i := 0; i < n; i++ {
				col := bc*b + i%b
				row := br*b + i/b
				if col >= a.width || row >= a.height {
					continue // surplus edge slot
				}
				elem, err := blk.At(i)
				if err != nil {
					return blockedErrorf("MapBlockMajor", col, row, err)
				}
				if err = apply(col, row, a, elem); err != nil {
					return blockedErrorf("MapBlockMajor", col, row, err)
				}
			}
		}
	}

	return nil
}
