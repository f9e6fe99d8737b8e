package pnm

import (
	"encoding/binary"
	"errors"

	"github.com/katalvlaran/locality/grid"
	"github.com/katalvlaran/locality/methods"
)

// ErrFormat indicates malformed or unsupported PPM input.
var ErrFormat = errors.New("pnm: malformed input")

// PixelSize is the byte size of one encoded Pixel.
const PixelSize = 6

// MaxMaxval is the largest sample bound the format allows.
const MaxMaxval = 65535

// Pixel is one RGB sample triple, each in [0, maxval].
type Pixel struct {
	R, G, B uint16
}

// Put encodes p into a PixelSize-byte cell.
func (p Pixel) Put(cell []byte) {
	binary.BigEndian.PutUint16(cell[0:2], p.R)
	binary.BigEndian.PutUint16(cell[2:4], p.G)
	binary.BigEndian.PutUint16(cell[4:6], p.B)
}

// PixelOf decodes a PixelSize-byte cell.
func PixelOf(cell []byte) Pixel {
	return Pixel{
		R: binary.BigEndian.Uint16(cell[0:2]),
		G: binary.BigEndian.Uint16(cell[2:4]),
		B: binary.BigEndian.Uint16(cell[4:6]),
	}
}

// Image is a decoded pixmap: a grid of Pixel records plus its sample bound
// and the suite that built the grid.
type Image struct {
	Maxval int
	Pixels grid.Grid
	Suite  methods.Suite
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.Pixels.Width() }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.Pixels.Height() }

// Replace swaps in a new pixel grid, freeing the old one unless it is the
// same grid.
func (img *Image) Replace(g grid.Grid) error {
	if g == img.Pixels {
		return nil
	}
	old := img.Pixels
	img.Pixels = g

	return old.Free()
}

// Free releases the pixel grid.
func (img *Image) Free() error {
	return img.Pixels.Free()
}
