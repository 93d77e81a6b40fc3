package layout

import (
	"github.com/matzehuels/audiocircuits/pkg/errors"
)

// Arrangement defaults, in grid units.
const (
	DefaultModuleHeight = 8.0
	DefaultModuleWidth  = 12.0
	DefaultGap          = 2.0
)

// MaxModules bounds the module count of one arrangement.
const MaxModules = 1 << 16

// ModuleLayout is one module's origin within a board arrangement.
type ModuleLayout = Position

// Axis selects the direction modules are stacked in.
type Axis string

const (
	AxisColumn Axis = "column" // stacked vertically, centered on Y = 0
	AxisRow    Axis = "row"    // side by side, centered on X = 0
)

// Valid reports whether a is a known axis.
func (a Axis) Valid() bool {
	return a == AxisColumn || a == AxisRow
}

// DefaultSize returns the default module extent along the axis.
func (a Axis) DefaultSize() float64 {
	if a == AxisRow {
		return DefaultModuleWidth
	}
	return DefaultModuleHeight
}

// ColumnLayout returns count module origins stacked vertically. Modules
// are moduleHeight tall with gap between them and the stack is centered
// on Y = 0. All SchX are 0.
//
// count = 0 yields an empty slice. Negative or non-finite arguments, or a
// count above [MaxModules], return an INVALID_ARRANGEMENT error.
func ColumnLayout(count int, moduleHeight, gap float64) ([]ModuleLayout, error) {
	offsets, err := centeredOffsets(count, moduleHeight, gap)
	if err != nil {
		return nil, err
	}
	out := make([]ModuleLayout, count)
	for i, y := range offsets {
		out[i] = ModuleLayout{SchX: 0, SchY: y}
	}
	return out, nil
}

// RowLayout returns count module origins side by side. Modules are
// moduleWidth wide with gap between them and the row is centered on
// X = 0. All SchY are 0.
func RowLayout(count int, moduleWidth, gap float64) ([]ModuleLayout, error) {
	offsets, err := centeredOffsets(count, moduleWidth, gap)
	if err != nil {
		return nil, err
	}
	out := make([]ModuleLayout, count)
	for i, x := range offsets {
		out[i] = ModuleLayout{SchX: x, SchY: 0}
	}
	return out, nil
}

// DefaultColumn is ColumnLayout(count, DefaultModuleHeight, DefaultGap).
func DefaultColumn(count int) ([]ModuleLayout, error) {
	return ColumnLayout(count, DefaultModuleHeight, DefaultGap)
}

// DefaultRow is RowLayout(count, DefaultModuleWidth, DefaultGap).
func DefaultRow(count int) ([]ModuleLayout, error) {
	return RowLayout(count, DefaultModuleWidth, DefaultGap)
}

// Arrange dispatches to [ColumnLayout] or [RowLayout].
func Arrange(axis Axis, count int, size, gap float64) ([]ModuleLayout, error) {
	switch axis {
	case AxisColumn:
		return ColumnLayout(count, size, gap)
	case AxisRow:
		return RowLayout(count, size, gap)
	default:
		return nil, errors.New(errors.ErrCodeInvalidArrangement, "unknown axis %q (must be %q or %q)", axis, AxisColumn, AxisRow)
	}
}

// centeredOffsets computes the module centers along one axis:
//
//	total = count*size + (count-1)*gap
//	start = -total/2 + size/2
//	i-th  = start + i*(size+gap)
func centeredOffsets(count int, size, gap float64) ([]float64, error) {
	if err := validateArrangement(count, size, gap); err != nil {
		return nil, err
	}

	n := float64(count)
	total := n*size + (n-1)*gap
	start := -total/2 + size/2
	step := size + gap

	offsets := make([]float64, count)
	for i := range offsets {
		offsets[i] = start + float64(i)*step
	}
	return offsets, nil
}

func validateArrangement(count int, size, gap float64) error {
	if count < 0 {
		return errors.New(errors.ErrCodeInvalidArrangement, "module count cannot be negative, got %d", count)
	}
	if count > MaxModules {
		return errors.New(errors.ErrCodeInvalidArrangement, "module count %d exceeds the maximum of %d", count, MaxModules)
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidArrangement, "module size", size); err != nil {
		return err
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidArrangement, "gap", gap); err != nil {
		return err
	}
	if size < 0 {
		return errors.New(errors.ErrCodeInvalidArrangement, "module size cannot be negative, got %g", size)
	}
	if gap < 0 {
		return errors.New(errors.ErrCodeInvalidArrangement, "gap cannot be negative, got %g", gap)
	}
	if count > 1 && size+gap == 0 {
		return errors.New(errors.ErrCodeInvalidArrangement, "module size and gap are both zero, %d modules would overlap", count)
	}
	return nil
}
