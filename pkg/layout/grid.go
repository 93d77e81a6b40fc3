package layout

import (
	"github.com/matzehuels/audiocircuits/pkg/errors"
)

// DefaultGridSize is the default grid pitch in schematic units.
const DefaultGridSize = 3.0

// Row directions. Y increases downward on the schematic.
const (
	Up   = -1.0
	Down = 1.0
)

// Position is a resolved absolute schematic coordinate.
type Position struct {
	SchX float64 `json:"sch_x"`
	SchY float64 `json:"sch_y"`
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{SchX: p.SchX + d.SchX, SchY: p.SchY + d.SchY}
}

// Grid converts grid coordinates into schematic positions around an origin.
// A Grid is immutable once constructed.
type Grid struct {
	originX  float64
	originY  float64
	gridSize float64
}

// NewGrid creates a grid anchored at (originX, originY) with the given
// pitch. It returns an INVALID_GRID error if gridSize is not positive or
// any argument is NaN or infinite.
func NewGrid(originX, originY, gridSize float64) (*Grid, error) {
	if err := errors.ValidateFinite(errors.ErrCodeInvalidGrid, "originX", originX); err != nil {
		return nil, err
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidGrid, "originY", originY); err != nil {
		return nil, err
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidGrid, "gridSize", gridSize); err != nil {
		return nil, err
	}
	if gridSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "grid size must be positive, got %g", gridSize)
	}
	return &Grid{originX: originX, originY: originY, gridSize: gridSize}, nil
}

// DefaultGrid creates a grid at the origin with [DefaultGridSize].
func DefaultGrid(originX, originY float64) (*Grid, error) {
	return NewGrid(originX, originY, DefaultGridSize)
}

// MustGrid is like [NewGrid] but panics on invalid arguments.
// It is intended for fixed declarations whose values are known statically.
func MustGrid(originX, originY, gridSize float64) *Grid {
	g, err := NewGrid(originX, originY, gridSize)
	if err != nil {
		panic(err)
	}
	return g
}

// Origin returns the grid's anchor point.
func (g *Grid) Origin() Position { return Position{SchX: g.originX, SchY: g.originY} }

// Size returns the grid pitch.
func (g *Grid) Size() float64 { return g.gridSize }

// At returns the position of grid cell (col, row).
// Column 0 is the origin, negative columns are to the left.
// Row 0 is the signal path, negative rows are above it.
func (g *Grid) At(col, row float64) Position {
	return Position{
		SchX: g.originX + col*g.gridSize,
		SchY: g.originY + row*g.gridSize,
	}
}

// Signal returns a position on the signal path (row 0).
func (g *Grid) Signal(col float64) Position {
	return g.At(col, 0)
}

// Above returns a position rows grid units above the signal path, where
// supply-side parts such as VCC decoupling go.
func (g *Grid) Above(col, rows float64) Position {
	return g.At(col, Up*rows)
}

// AboveOne is Above(col, 1).
func (g *Grid) AboveOne(col float64) Position {
	return g.Above(col, 1)
}

// Below returns a position rows grid units below the signal path, where
// GND and VEE side parts go.
func (g *Grid) Below(col, rows float64) Position {
	return g.At(col, Down*rows)
}

// BelowOne is Below(col, 1).
func (g *Grid) BelowOne(col float64) Position {
	return g.Below(col, 1)
}
