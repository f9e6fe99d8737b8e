// Package transform implements the geometric transforms of a grid:
// clockwise rotation by 0/90/180/270 degrees, horizontal and vertical flips,
// and transposition, all on top of the method suite.
//
// Each transform is one pass of the traversal protocol: the chosen map
// visits every source cell once and the callback copies the element to its
// remapped coordinates in a destination grid built by the same suite. The
// algorithm never looks at the layout, so the caller can pick layout and
// traversal order purely for performance.
package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/locality/grid"
	"github.com/katalvlaran/locality/methods"
)

// Op selects a transform.
type Op int

const (
	// Rotate0 is the identity.
	Rotate0 Op = iota
	// Rotate90 rotates clockwise by 90 degrees.
	Rotate90
	// Rotate180 rotates by 180 degrees.
	Rotate180
	// Rotate270 rotates clockwise by 270 degrees.
	Rotate270
	// FlipHorizontal mirrors left-to-right.
	FlipHorizontal
	// FlipVertical mirrors top-to-bottom.
	FlipVertical
	// Transpose mirrors across the main diagonal.
	Transpose
)

var opNames = [...]string{
	Rotate0:        "rotate 0",
	Rotate90:       "rotate 90",
	Rotate180:      "rotate 180",
	Rotate270:      "rotate 270",
	FlipHorizontal: "flip horizontal",
	FlipVertical:   "flip vertical",
	Transpose:      "transpose",
}

// String implements fmt.Stringer.
func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}

	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseRotation maps a clockwise angle to its Op.
// Returns grid.ErrInvalidArgument for anything but 0, 90, 180 or 270.
func ParseRotation(degrees int) (Op, error) {
	switch degrees {
	case 0:
		return Rotate0, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	}

	return Rotate0, fmt.Errorf("ParseRotation(%d): must be 0, 90, 180 or 270: %w", degrees, grid.ErrInvalidArgument)
}

// ParseFlip maps "horizontal" or "vertical" (case-insensitive) to its Op.
// Returns grid.ErrInvalidArgument otherwise.
func ParseFlip(axis string) (Op, error) {
	switch strings.ToLower(axis) {
	case "horizontal":
		return FlipHorizontal, nil
	case "vertical":
		return FlipVertical, nil
	}

	return Rotate0, fmt.Errorf("ParseFlip(%q): must be horizontal or vertical: %w", axis, grid.ErrInvalidArgument)
}

// Dims returns the destination width and height for a w×h source.
func (op Op) Dims(w, h int) (int, int) {
	switch op {
	case Rotate90, Rotate270, Transpose:
		return h, w
	default:
		return w, h
	}
}

// Dest maps source (col,row) of a w×h grid to destination coordinates.
// Complexity: O(1).
func (op Op) Dest(col, row, w, h int) (int, int) {
	switch op {
	case Rotate90:
		return h - 1 - row, col
	case Rotate180:
		return w - 1 - col, h - 1 - row
	case Rotate270:
		return row, w - 1 - col
	case FlipHorizontal:
		return w - 1 - col, row
	case FlipVertical:
		return col, h - 1 - row
	case Transpose:
		return row, col
	default:
		return col, row
	}
}

// valid reports whether op is one of the declared transforms.
func (op Op) valid() bool {
	return op >= Rotate0 && op <= Transpose
}

// Apply transforms src into a new grid built by s, visiting src with mapFn.
//
// Behavior highlights:
//   - Rotate0 returns src itself; no grid is constructed.
//   - Otherwise the destination has Dims(src) and src's element size. src is
//     never modified and stays owned by the caller.
//   - If the traversal fails, the destination is freed and the error returned.
//
// Errors: grid.ErrInvalidArgument for nil arguments or an unknown op,
// construction errors from s, traversal errors from mapFn (including
// grid.ErrUnsupported when mapFn cannot traverse src's layout).
// Complexity: O(W×H) element copies.
func Apply(src grid.Grid, s methods.Suite, mapFn grid.MapFunc, op Op) (grid.Grid, error) {
	if src == nil || s == nil || mapFn == nil || !op.valid() {
		return nil, fmt.Errorf("transform.Apply(%s): %w", op, grid.ErrInvalidArgument)
	}
	if op == Rotate0 {
		return src, nil
	}

	w, h := src.Width(), src.Height()
	dw, dh := op.Dims(w, h)
	dst, err := s.New(dw, dh, src.ElemSize())
	if err != nil {
		return nil, fmt.Errorf("transform.Apply(%s): %w", op, err)
	}
	if err = grid.ValidateSameElem(src, dst); err != nil {
		_ = dst.Free()
		return nil, fmt.Errorf("transform.Apply(%s): %w", op, err)
	}

	err = mapFn(src, func(col, row int, _ grid.Grid, elem []byte) error {
		out, err := dst.At(op.Dest(col, row, w, h))
		if err != nil {
			return err
		}
		copy(out, elem)

		return nil
	})
	if err != nil {
		_ = dst.Free()
		return nil, fmt.Errorf("transform.Apply(%s): %w", op, err)
	}

	return dst, nil
}
