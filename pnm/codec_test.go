package pnm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/locality/grid"
	"github.com/katalvlaran/locality/methods"
	"github.com/katalvlaran/locality/pnm"
)

// pixels returns the image contents as rows of Pixel.
func pixels(t *testing.T, img *pnm.Image) [][]pnm.Pixel {
	t.Helper()
	out := make([][]pnm.Pixel, img.Height())
	for row := range out {
		out[row] = make([]pnm.Pixel, img.Width())
		for col := range out[row] {
			e, err := img.Pixels.At(col, row)
			require.NoError(t, err)
			out[row][col] = pnm.PixelOf(e)
		}
	}

	return out
}

const plainPPM = `P3
# a 3x2 test image
3 2
255
255 0 0   0 255 0   0 0 255
# second row
1 2 3     4 5 6     7 8 9
`

var plainPixels = [][]pnm.Pixel{
	{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}},
	{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
}

// TestReadPlain parses a commented P3 into every layout.
func TestReadPlain(t *testing.T) {
	for _, s := range []methods.Suite{methods.Plain, methods.Blocked} {
		img, err := pnm.Read(strings.NewReader(plainPPM), s)
		require.NoError(t, err, s.Name())
		require.Equal(t, 3, img.Width())
		require.Equal(t, 2, img.Height())
		require.Equal(t, 255, img.Maxval)
		require.Equal(t, pnm.PixelSize, img.Pixels.ElemSize())
		require.Same(t, s, img.Suite)
		if diff := cmp.Diff(plainPixels, pixels(t, img)); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", s.Name(), diff)
		}
		require.NoError(t, img.Free())
	}
}

// TestWriteRaw checks the exact P6 bytes for 8-bit and 16-bit maxval.
func TestWriteRaw(t *testing.T) {
	img, err := pnm.Read(strings.NewReader(plainPPM), methods.Plain)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, pnm.Write(&out, img))
	want := append([]byte("P6\n3 2\n255\n"),
		255, 0, 0, 0, 255, 0, 0, 0, 255,
		1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, want, out.Bytes())

	wide, err := pnm.Read(strings.NewReader("P3 1 1 1000 1000 256 1"), methods.Plain)
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, pnm.Write(&out, wide))
	require.Equal(t, append([]byte("P6\n1 1\n1000\n"), 0x03, 0xE8, 0x01, 0x00, 0x00, 0x01), out.Bytes())
}

// TestRoundTrip writes P6 and reads it back across layouts.
func TestRoundTrip(t *testing.T) {
	for _, maxval := range []int{255, 65535} {
		src, err := methods.Plain.New(5, 4, pnm.PixelSize)
		require.NoError(t, err)
		require.NoError(t, grid.MapRowMajor(src, func(col, row int, _ grid.Grid, elem []byte) error {
			v := uint16((row*5 + col) * 13 % (maxval + 1))
			pnm.Pixel{R: v, G: uint16(maxval) - v, B: uint16(col)}.Put(elem)
			return nil
		}))
		img := &pnm.Image{Maxval: maxval, Pixels: src, Suite: methods.Plain}

		var buf bytes.Buffer
		require.NoError(t, pnm.Write(&buf, img))
		back, err := pnm.Read(&buf, methods.Blocked)
		require.NoError(t, err)
		require.Equal(t, maxval, back.Maxval)
		if diff := cmp.Diff(pixels(t, img), pixels(t, back)); diff != "" {
			t.Fatalf("maxval=%d (-want +got):\n%s", maxval, diff)
		}
		require.NoError(t, img.Free())
		require.NoError(t, back.Free())
	}
}

// TestReadErrors checks malformed inputs are reported as ErrFormat.
func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"Empty":         "",
		"BadMagic":      "P5 1 1 255 0",
		"ZeroWidth":     "P3 0 1 255",
		"NegativeH":     "P3 1 -1 255",
		"BigMaxval":     "P3 1 1 65536 0 0 0",
		"ZeroMaxval":    "P3 1 1 0 0 0 0",
		"NotANumber":    "P3 x 1 255",
		"SampleTooBig":  "P3 1 1 10 11 0 0",
		"TruncatedP3":   "P3 2 1 255 1 2 3 4",
		"TruncatedP6":   "P6 2 1 255\n\x01\x02\x03",
		"RawOverMaxval": "P6 1 1 10\n\x0b\x00\x00",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			img, err := pnm.Read(strings.NewReader(in), methods.Plain)
			require.ErrorIs(t, err, pnm.ErrFormat)
			require.Nil(t, img)
		})
	}

	_, err := pnm.Read(nil, methods.Plain)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
	_, err = pnm.Read(strings.NewReader(plainPPM), nil)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = pnm.Read(strings.NewReader("P3 100 100 255"), methods.NewPlain(grid.WithMaxBytes(100)))
	require.ErrorIs(t, err, grid.ErrResourceExhausted)
}

// TestWriteErrors checks invalid images are refused.
func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, pnm.Write(&buf, nil), grid.ErrInvalidArgument)

	g, err := methods.Plain.New(1, 1, 3)
	require.NoError(t, err)
	require.ErrorIs(t, pnm.Write(&buf, &pnm.Image{Maxval: 255, Pixels: g}), grid.ErrInvalidArgument)

	g, err = methods.Plain.New(1, 1, pnm.PixelSize)
	require.NoError(t, err)
	require.ErrorIs(t, pnm.Write(&buf, &pnm.Image{Maxval: 0, Pixels: g}), grid.ErrInvalidArgument)

	e, err := g.At(0, 0)
	require.NoError(t, err)
	pnm.Pixel{R: 300}.Put(e)
	require.ErrorIs(t, pnm.Write(&buf, &pnm.Image{Maxval: 255, Pixels: g}), grid.ErrInvalidArgument)
}

// TestReplace checks pixel grids are swapped and the old one released.
func TestReplace(t *testing.T) {
	img, err := pnm.Read(strings.NewReader(plainPPM), methods.Plain)
	require.NoError(t, err)
	old := img.Pixels

	require.NoError(t, img.Replace(old)) // same grid: no-op
	_, err = old.At(0, 0)
	require.NoError(t, err)

	next, err := methods.Plain.New(1, 1, pnm.PixelSize)
	require.NoError(t, err)
	require.NoError(t, img.Replace(next))
	_, err = old.At(0, 0)
	require.ErrorIs(t, err, grid.ErrFreed)
	require.Equal(t, 1, img.Width())
}
