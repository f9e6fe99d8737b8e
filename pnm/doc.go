// Package pnm reads and writes portable pixmaps (PPM) into grids built by a
// method suite.
//
// Each pixel is stored as a 6-byte record: red, green and blue as
// big-endian uint16 samples (see Pixel, PixelSize). The grid never looks
// inside the record; only this package does.
//
// Formats:
//
//   - Read accepts P3 (plain, ASCII samples) and P6 (raw) with comments,
//     maxval 1..65535, and one or two bytes per raw sample depending on
//     maxval.
//   - Write always emits P6 with the image's maxval.
//
// Errors:
//
//   - ErrFormat: malformed header, truncated raster or sample > maxval.
//   - grid errors from the suite when the raster cannot be allocated.
package pnm
