// Package methods binds storage layouts to a uniform method suite, so an
// algorithm written against grid.Grid and grid.MapFunc runs unchanged over
// the plain (row-major) layout or the blocked layout.
//
// A Suite constructs grids of its layout and hands out map capabilities by
// grid.Order. Layout and order are chosen independently: changing either
// changes performance, never the result.
//
//	suite := methods.Blocked
//	mapFn, err := suite.Map(grid.BlockMajor)  // capability check happens here
//	g, err := suite.New(w, h, elemSize)
//	err = mapFn(g, apply)
//
// Capabilities:
//
//	suite     row-major  col-major  block-major  default
//	plain     yes        yes        no           row-major
//	blocked   yes        yes        yes          block-major
//
// Requesting an order a suite does not implement fails with
// grid.ErrUnsupported before any traversal starts; there is no fallback.
// A map obtained from a suite also refuses, with grid.ErrUnsupported and
// before visiting any cell, a grid whose layout it cannot traverse.
//
// Suites are immutable package-level values; selecting one is an ordinary
// assignment and leaves no global state behind.
package methods
