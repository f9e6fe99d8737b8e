package grid

import "fmt"

// traverseErrorf wraps a callback failure with the traversal name and the
// coordinates at which it stopped.
func traverseErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, col, row, err)
}

// ValidateMap checks the arguments common to every MapFunc.
// Returns wrapped ErrInvalidArgument for a nil grid or nil apply.
// Complexity: O(1).
func ValidateMap(g Grid, apply ApplyFunc) error {
	if err := ValidateNotNil(g); err != nil {
		return err
	}
	if apply == nil {
		return validatorErrorf("ValidateMap: apply", ErrInvalidArgument)
	}

	return nil
}

// MapRowMajor visits every cell of g in row-major order: rows increasing,
// and within a row, columns increasing. It works for any layout through At.
// Stops at the first error from At or apply.
// Complexity: O(W×H) calls to At.
func MapRowMajor(g Grid, apply ApplyFunc) error {
	if err := ValidateMap(g, apply); err != nil {
		return err
	}
	w, h := g.Width(), g.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			elem, err := g.At(col, row)
			if err != nil {
				return traverseErrorf("MapRowMajor", col, row, err)
			}
			if err = apply(col, row, g, elem); err != nil {
				return traverseErrorf("MapRowMajor", col, row, err)
			}
		}
	}

	return nil
}

// MapColMajor visits every cell of g in column-major order: columns
// increasing, and within a column, rows increasing.
// Stops at the first error from At or apply.
// Complexity: O(W×H) calls to At.
func MapColMajor(g Grid, apply ApplyFunc) error {
	if err := ValidateMap(g, apply); err != nil {
		return err
	}
	w, h := g.Width(), g.Height()
	for col := 0; col < w; col++ {
		for row := 0; row < h; row++ {
			elem, err := g.At(col, row)
			if err != nil {
				return traverseErrorf("MapColMajor", col, row, err)
			}
			if err = apply(col, row, g, elem); err != nil {
				return traverseErrorf("MapColMajor", col, row, err)
			}
		}
	}

	return nil
}
