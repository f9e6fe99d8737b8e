// Package grid defines the contract shared by every 2-D storage layout in
// locality: the Grid capability set, the traversal (apply) protocol, map
// orders, sentinel errors and construction options.
//
// What:
//
//   - Grid: width/height/element-size queries, element access by (col,row)
//     and explicit release.
//   - ApplyFunc / MapFunc: visit every cell exactly once, synchronously,
//     handing the callback the logical coordinates, the source grid and a
//     writable view of the cell bytes.
//   - Order: RowMajor, ColMajor, BlockMajor or the layout's Default.
//   - MapRowMajor / MapColMajor: layout-independent traversals built on At.
//
// Elements are type-erased: a cell is a []byte of exactly ElemSize() bytes
// (len == cap), owned by the grid and valid until Free.
//
// Concurrency:
//
//	Grids are not safe for concurrent use. One call stack owns a grid at a
//	time; an ApplyFunc may call At on the grid being traversed, but must not
//	start another traversal of it.
//
// Errors:
//
//   - ErrInvalidArgument: non-positive dimension, element size or block size.
//   - ErrOutOfRange: element access outside [0,width)×[0,height).
//   - ErrUnsupported: map order or layout not offered by a method suite.
//   - ErrResourceExhausted: allocation would overflow or exceed the ceiling.
//   - ErrFreed: use of a grid after Free.
package grid
