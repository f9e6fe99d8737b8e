// Package plain_test contains unit tests for the row-major plain array.
package plain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/locality/grid"
	"github.com/katalvlaran/locality/plain"
)

// TestNewInvalidArgument ensures New rejects non-positive dimensions.
func TestNewInvalidArgument(t *testing.T) {
	_, err := plain.New(0, 5, 1)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = plain.New(5, 0, 1)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = plain.New(5, 5, 0)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
}

// TestNewResourceExhausted ensures the ceiling and overflow checks apply.
func TestNewResourceExhausted(t *testing.T) {
	_, err := plain.New(100, 100, 3, grid.WithMaxBytes(29_999))
	require.ErrorIs(t, err, grid.ErrResourceExhausted)

	_, err = plain.New(1<<40, 1<<40, 1)
	require.ErrorIs(t, err, grid.ErrResourceExhausted)
}

// TestDims verifies the dimension queries.
func TestDims(t *testing.T) {
	a, err := plain.New(4, 3, 6)
	require.NoError(t, err)

	require.Equal(t, 4, a.Width())
	require.Equal(t, 3, a.Height())
	require.Equal(t, 6, a.ElemSize())
	require.Equal(t, "Plain{4x3 elem=6}", a.String())
}

// TestAtOutOfRange ensures At reports ErrOutOfRange on every bound.
func TestAtOutOfRange(t *testing.T) {
	a, err := plain.New(2, 2, 1)
	require.NoError(t, err)

	for _, xy := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		_, err = a.At(xy[0], xy[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange, "At(%d,%d)", xy[0], xy[1])
	}
}

// TestSetGet writes through the view returned by At and reads it back.
func TestSetGet(t *testing.T) {
	a, err := plain.New(3, 2, 2)
	require.NoError(t, err)

	e, err := a.At(2, 1)
	require.NoError(t, err)
	copy(e, []byte{0xAB, 0xCD})

	got, err := a.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD}, got)

	other, err := a.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, other)
}

// collect records the visit order of a traversal.
func collect(t *testing.T, mapFn func(grid.ApplyFunc) error) [][2]int {
	t.Helper()
	var got [][2]int
	require.NoError(t, mapFn(func(col, row int, _ grid.Grid, _ []byte) error {
		got = append(got, [2]int{col, row})

		return nil
	}))

	return got
}

// TestMapOrders checks the exact row-major and column-major orders.
func TestMapOrders(t *testing.T) {
	a, err := plain.New(3, 2, 1)
	require.NoError(t, err)

	require.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, collect(t, a.MapRowMajor))
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}, collect(t, a.MapColMajor))
}

// TestMapErrors checks nil callbacks, early stop and use after free.
func TestMapErrors(t *testing.T) {
	a, err := plain.New(3, 3, 1)
	require.NoError(t, err)

	require.ErrorIs(t, a.MapRowMajor(nil), grid.ErrInvalidArgument)
	require.ErrorIs(t, a.MapColMajor(nil), grid.ErrInvalidArgument)

	boom := errors.New("boom")
	n := 0
	err = a.MapColMajor(func(col, row int, _ grid.Grid, _ []byte) error {
		n++
		if col == 1 {
			return boom
		}

		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 4, n) // column 0 fully, then (1,0)

	require.NoError(t, a.Free())
	require.ErrorIs(t, a.Free(), grid.ErrFreed)
	require.ErrorIs(t, a.MapRowMajor(func(int, int, grid.Grid, []byte) error { return nil }), grid.ErrFreed)
	_, err = a.At(0, 0)
	require.ErrorIs(t, err, grid.ErrFreed)
}
