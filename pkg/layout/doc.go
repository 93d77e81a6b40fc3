// Package layout computes schematic coordinates for circuit modules.
//
// It is the only part of audiocircuits that does arithmetic rather than
// declare data. Everything here is a pure function of its arguments: no
// I/O, no shared state, no logging. Results are bit-identical across calls
// and safe to compute from any number of goroutines.
//
// # Conventions
//
// Signal flows left to right, so X grows to the right. Voltage drops top to
// bottom, so Y grows downward: VCC parts sit above the signal path (smaller
// Y) and GND/VEE parts sit below it (larger Y). The direction constants [Up]
// and [Down] encode that convention.
//
// # Grid
//
// A [Grid] maps (col, row) grid coordinates to absolute positions around a
// module origin:
//
//	g := layout.MustGrid(10, -5, 3)
//	g.Signal(2)    // {SchX: 16, SchY: -5}
//	g.Above(0, 1)  // {SchX: 10, SchY: -8}
//	g.Below(-1, 1.5) // {SchX: 7, SchY: -0.5}
//
// Fractional columns and rows give half-step offsets without changing the
// grid pitch.
//
// # Arrangements
//
// [ColumnLayout] and [RowLayout] compute the origins of N equally sized
// modules stacked along one axis and centered on zero. A board builder
// calls one of them once, then hands element i to module i, which builds
// its own [Grid] at that origin.
package layout
