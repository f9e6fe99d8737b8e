package methods

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/locality/blocked"
	"github.com/katalvlaran/locality/grid"
	"github.com/katalvlaran/locality/plain"
)

// Suite is a bound set of grid operations for one storage layout.
// Element access, dimension queries and release are reached through the
// grid.Grid values the suite constructs.
type Suite interface {
	// Name returns the layout name ("plain", "blocked").
	Name() string

	// New constructs a width×height grid of elemSize-byte elements in the
	// suite's layout. Fails like the underlying layout constructor.
	New(width, height, elemSize int) (grid.Grid, error)

	// Map returns the traversal for order. grid.Default resolves to the
	// suite's preferred order. Returns grid.ErrUnsupported when the suite
	// does not implement order.
	Map(order grid.Order) (grid.MapFunc, error)

	// Supports reports whether Map(order) would succeed.
	Supports(order grid.Order) bool

	// DefaultOrder returns the order grid.Default resolves to.
	DefaultOrder() grid.Order
}

// suite is the table-driven Suite implementation shared by every layout.
type suite struct {
	name  string
	def   grid.Order
	newFn func(width, height, elemSize int) (grid.Grid, error)
	maps  map[grid.Order]grid.MapFunc
}

var _ Suite = (*suite)(nil)

func (s *suite) Name() string { return s.name }

func (s *suite) DefaultOrder() grid.Order { return s.def }

func (s *suite) New(width, height, elemSize int) (grid.Grid, error) {
	g, err := s.newFn(width, height, elemSize)
	if err != nil {
		return nil, fmt.Errorf("Suite(%s).New: %w", s.name, err)
	}

	return g, nil
}

func (s *suite) resolve(order grid.Order) grid.Order {
	if order == grid.Default {
		return s.def
	}

	return order
}

func (s *suite) Supports(order grid.Order) bool {
	_, ok := s.maps[s.resolve(order)]

	return ok
}

func (s *suite) Map(order grid.Order) (grid.MapFunc, error) {
	mapFn, ok := s.maps[s.resolve(order)]
	if !ok {
		return nil, fmt.Errorf("Suite(%s).Map(%s): %w", s.name, order, grid.ErrUnsupported)
	}

	return mapFn, nil
}

// String implements fmt.Stringer.
func (s *suite) String() string { return s.name }

//----------------------------------------------------------------------------//
// Map capabilities
//----------------------------------------------------------------------------//

// mapPlainRowMajor walks a plain grid's backing store directly and any
// other layout through grid.MapRowMajor.
func mapPlainRowMajor(g grid.Grid, apply grid.ApplyFunc) error {
	if err := grid.ValidateMap(g, apply); err != nil {
		return err
	}
	if p, ok := g.(*plain.Array); ok {
		return p.MapRowMajor(apply)
	}

	return grid.MapRowMajor(g, apply)
}

// mapPlainColMajor is the column-major counterpart of mapPlainRowMajor.
func mapPlainColMajor(g grid.Grid, apply grid.ApplyFunc) error {
	if err := grid.ValidateMap(g, apply); err != nil {
		return err
	}
	if p, ok := g.(*plain.Array); ok {
		return p.MapColMajor(apply)
	}

	return grid.MapColMajor(g, apply)
}

// mapBlockMajor traverses blocked grids only; any other layout is refused
// before a single cell is visited.
func mapBlockMajor(g grid.Grid, apply grid.ApplyFunc) error {
	if err := grid.ValidateMap(g, apply); err != nil {
		return err
	}
	b, ok := g.(*blocked.Array)
	if !ok {
		return fmt.Errorf("MapBlockMajor(%T): %w", g, grid.ErrUnsupported)
	}

	return b.MapBlockMajor(apply)
}

//----------------------------------------------------------------------------//
// Suites
//----------------------------------------------------------------------------//

// NewPlain returns the suite for the row-major plain layout. opts apply to
// every grid it constructs.
func NewPlain(opts ...grid.Option) Suite {
	return &suite{
		name: "plain",
		def:  grid.RowMajor,
		newFn: func(w, h, size int) (grid.Grid, error) {
			return plain.New(w, h, size, opts...)
		},
		maps: map[grid.Order]grid.MapFunc{
			grid.RowMajor: mapPlainRowMajor,
			grid.ColMajor: mapPlainColMajor,
		},
	}
}

// blockedMaps is the capability table shared by every blocked suite.
func blockedMaps() map[grid.Order]grid.MapFunc {
	return map[grid.Order]grid.MapFunc{
		grid.RowMajor:   grid.MapRowMajor,
		grid.ColMajor:   grid.MapColMajor,
		grid.BlockMajor: mapBlockMajor,
	}
}

// NewBlocked returns the suite for the blocked layout with automatically
// sized blocks (see blocked.NewAuto). opts apply to every grid it constructs.
func NewBlocked(opts ...grid.Option) Suite {
	return &suite{
		name: "blocked",
		def:  grid.BlockMajor,
		newFn: func(w, h, size int) (grid.Grid, error) {
			return blocked.NewAuto(w, h, size, opts...)
		},
		maps: blockedMaps(),
	}
}

// NewBlockedSize returns a blocked suite with a fixed block size.
// A blockSize < 1 surfaces as grid.ErrInvalidArgument from New.
func NewBlockedSize(blockSize int, opts ...grid.Option) Suite {
	return &suite{
		name: "blocked",
		def:  grid.BlockMajor,
		newFn: func(w, h, size int) (grid.Grid, error) {
			return blocked.New(w, h, size, blockSize, opts...)
		},
		maps: blockedMaps(),
	}
}

var (
	// Plain is the default-configured plain suite.
	Plain = NewPlain()
	// Blocked is the default-configured blocked suite (64 KiB blocks).
	Blocked = NewBlocked()
)

// registry maps suite names to the default-configured suites.
var registry = map[string]Suite{
	"plain":   Plain,
	"blocked": Blocked,
}

// Lookup resolves a suite by name (case-insensitive).
// Returns grid.ErrUnsupported for unknown names.
func Lookup(name string) (Suite, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, grid.ErrUnsupported)
	}

	return s, nil
}

// Names returns the registered suite names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Select resolves a suite and a map capability in one step, reporting an
// unsupported combination before anything is constructed.
func Select(layout string, order grid.Order) (Suite, grid.MapFunc, error) {
	s, err := Lookup(layout)
	if err != nil {
		return nil, nil, err
	}
	mapFn, err := s.Map(order)
	if err != nil {
		return nil, nil, err
	}

	return s, mapFn, nil
}
