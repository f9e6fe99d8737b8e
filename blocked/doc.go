// Package blocked provides a cache-blocked 2-D array of fixed-size byte
// elements.
//
// What:
//
//   - A logical width×height grid addressed by (col,row) is partitioned into
//     ceil(height/B) × ceil(width/B) square blocks of B×B cells.
//   - Each block is one flat.Array of exactly B·B slots, so the cells of a
//     block are contiguous in memory.
//   - Cell (col,row) lives in block (row/B, col/B) at slot B·(row%B) + col%B.
//   - MapBlockMajor walks blocks in row-major block order and, inside each
//     block, walks slots in storage order.
//
// Why:
//
//   - Algorithms whose access pattern is local in two dimensions (rotation,
//     transposition, stencils) touch one block's memory for B² consecutive
//     visits instead of striding across full rows.
//
// Edge blocks:
//
//	When width or height is not a multiple of B, the right and bottom blocks
//	are still allocated at full B·B capacity. The surplus slots are never
//	returned by At and never visited by MapBlockMajor. Keeping every block
//	the same shape keeps addressing O(1).
//
// Complexity:
//
//   - New, NewAuto:  O(blockRows·blockCols·B²·elemSize) time and memory.
//   - At, Locate:    O(1).
//   - MapBlockMajor: O(blockRows·blockCols·B²).
//
// Errors:
//
//   - grid.ErrInvalidArgument: width, height, elemSize or B < 1, or no
//     positive B fits the automatic block target.
//   - grid.ErrOutOfRange: (col,row) outside the logical grid.
//   - grid.ErrResourceExhausted: total block storage overflows or exceeds
//     the ceiling set by grid.WithMaxBytes.
//   - grid.ErrFreed: use after Free.
package blocked
