package pnm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/locality/grid"
	"github.com/katalvlaran/locality/methods"
)

// formatErrorf wraps ErrFormat with what was being parsed.
func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}

// isSpace reports PPM whitespace.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// readToken skips whitespace and comments, then returns the next run of
// non-space bytes. The single byte terminating the token is consumed.
func readToken(r *bufio.Reader) (string, error) {
	var c byte
	var err error
	for {
		if c, err = r.ReadByte(); err != nil {
			return "", err
		}
		if c == '#' {
			if _, err = r.ReadString('\n'); err != nil {
				return "", err
			}
			continue
		}
		if !isSpace(c) {
			break
		}
	}

	tok := []byte{c}
	for {
		if c, err = r.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				return string(tok), nil
			}
			return "", err
		}
		if isSpace(c) {
			return string(tok), nil
		}
		if c == '#' {
			// Comment directly after a token ends the token.
			if _, err = r.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			return string(tok), nil
		}
		tok = append(tok, c)
	}
}

// readInt reads a decimal token in [lo, hi].
func readInt(r *bufio.Reader, what string, lo, hi int) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, formatErrorf("%s: %v", what, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < lo || n > hi {
		return 0, formatErrorf("%s %q not in [%d,%d]", what, tok, lo, hi)
	}

	return n, nil
}

// header is the parsed PPM header.
type header struct {
	raw           bool
	width, height int
	maxval        int
}

func readHeader(r *bufio.Reader) (header, error) {
	var h header
	magic := make([]byte, 2)
	if _, err := io.ReadFull(r, magic); err != nil {
		return h, formatErrorf("magic: %v", err)
	}
	switch string(magic) {
	case "P3":
	case "P6":
		h.raw = true
	default:
		return h, formatErrorf("magic %q is not P3 or P6", magic)
	}

	var err error
	if h.width, err = readInt(r, "width", 1, int(^uint32(0)>>1)); err != nil {
		return h, err
	}
	if h.height, err = readInt(r, "height", 1, int(^uint32(0)>>1)); err != nil {
		return h, err
	}
	if h.maxval, err = readInt(r, "maxval", 1, MaxMaxval); err != nil {
		return h, err
	}

	return h, nil
}

// sampleReader returns a function yielding the next sample of the raster.
func sampleReader(r *bufio.Reader, h header) func() (uint16, error) {
	if !h.raw {
		return func() (uint16, error) {
			n, err := readInt(r, "sample", 0, h.maxval)
			return uint16(n), err
		}
	}
	wide := h.maxval > 255
	return func() (uint16, error) {
		hi, err := r.ReadByte()
		if err != nil {
			return 0, formatErrorf("raster: %v", err)
		}
		v := uint16(hi)
		if wide {
			lo, err := r.ReadByte()
			if err != nil {
				return 0, formatErrorf("raster: %v", err)
			}
			v = v<<8 | uint16(lo)
		}
		if int(v) > h.maxval {
			return 0, formatErrorf("sample %d exceeds maxval %d", v, h.maxval)
		}

		return v, nil
	}
}

// Read decodes a P3 or P6 pixmap from in into a grid constructed by s.
// The raster is filled in file order (row-major) whatever the layout.
// On failure no image is returned and any allocated grid is freed.
// Complexity: O(W×H).
func Read(in io.Reader, s methods.Suite) (*Image, error) {
	if in == nil || s == nil {
		return nil, fmt.Errorf("pnm.Read: %w", grid.ErrInvalidArgument)
	}
	r := bufio.NewReader(in)
	h, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("pnm.Read: %w", err)
	}

	pixels, err := s.New(h.width, h.height, PixelSize)
	if err != nil {
		return nil, fmt.Errorf("pnm.Read: %w", err)
	}
	next := sampleReader(r, h)
	err = grid.MapRowMajor(pixels, func(_, _ int, _ grid.Grid, elem []byte) error {
		var p Pixel
		var err error
		if p.R, err = next(); err != nil {
			return err
		}
		if p.G, err = next(); err != nil {
			return err
		}
		if p.B, err = next(); err != nil {
			return err
		}
		p.Put(elem)

		return nil
	})
	if err != nil {
		_ = pixels.Free()
		return nil, fmt.Errorf("pnm.Read: %w", err)
	}

	return &Image{Maxval: h.maxval, Pixels: pixels, Suite: s}, nil
}

// Write encodes img as a raw (P6) pixmap, walking the pixels in row-major
// order through the grid so any layout can be written.
// Complexity: O(W×H).
func Write(out io.Writer, img *Image) error {
	if out == nil || img == nil || img.Pixels == nil {
		return fmt.Errorf("pnm.Write: %w", grid.ErrInvalidArgument)
	}
	if img.Maxval < 1 || img.Maxval > MaxMaxval || img.Pixels.ElemSize() != PixelSize {
		return fmt.Errorf("pnm.Write: %w", grid.ErrInvalidArgument)
	}

	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", img.Width(), img.Height(), img.Maxval); err != nil {
		return fmt.Errorf("pnm.Write: %w", err)
	}
	wide := img.Maxval > 255
	buf := make([]byte, 0, PixelSize)
	err := grid.MapRowMajor(img.Pixels, func(_, _ int, _ grid.Grid, elem []byte) error {
		p := PixelOf(elem)
		buf = buf[:0]
		for _, v := range [3]uint16{p.R, p.G, p.B} {
			if int(v) > img.Maxval {
				return fmt.Errorf("sample %d exceeds maxval %d: %w", v, img.Maxval, grid.ErrInvalidArgument)
			}
			if wide {
				buf = append(buf, byte(v>>8))
			}
			buf = append(buf, byte(v))
		}
		_, err := w.Write(buf)

		return err
	})
	if err != nil {
		return fmt.Errorf("pnm.Write: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("pnm.Write: %w", err)
	}

	return nil
}
