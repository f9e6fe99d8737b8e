// Package locality is a small laboratory for cache locality: fixed-size
// elements stored in 2-D arrays under two layouts, and traversed in the
// order a caller picks independently of the layout.
//
// What is inside?
//
//   - grid/:     the shared contract: Grid, ApplyFunc, MapFunc, Order,
//     sentinel errors, options and validators
//   - flat/:     1-D fixed-length store of byte slots
//   - plain/:    row-major 2-D array over one flat store
//   - blocked/:  2-D array split into B×B blocks, each one flat store
//   - methods/:  method suites binding a layout to its traversals
//   - transform/: rotations, flips and transposition on any suite
//   - pnm/:      PPM reader and writer over any suite
//
// The cmd/ppmtrans command puts them together: it reads a pixmap, applies
// one transform through the chosen layout and order, and can record the CPU
// time of the transform to compare layouts.
//
// Quick example:
//
//	s, mapFn, err := methods.Select("blocked", grid.BlockMajor)
//	if err != nil {
//		log.Fatal(err)
//	}
//	src, _ := s.New(640, 480, pnm.PixelSize)
//	dst, err := transform.Apply(src, s, mapFn, transform.Rotate90)
//
// Elements are opaque: every layout stores elemSize bytes per cell and hands
// out a writable []byte view of exactly that size. Nothing here is safe for
// concurrent mutation; callers serialize access.
package locality
