// Package circuit defines the declaration tree handed to the circuit
// rendering engine.
//
// The engine owns footprint placement, DRC, schematic rendering and netlist
// export. This package only describes what it consumes: named components
// with pin labels and coordinates, named nets, and traces whose endpoints
// are selector strings:
//
//	.BUF1_C_IN > .pin1   a component pin
//	net.BUF1_GND         a named net
//
// [Board.Validate] checks that a tree is self-consistent before it leaves
// the process: names are well formed and unique, and every trace endpoint
// resolves to a declared pin or net. It does not check electrical
// correctness.
package circuit
