// Package preview draws where a board's components sit on the schematic.
//
// # Overview
//
// The preview is a placement check, not a schematic: every component is a
// box pinned at its schematic position, and every module group is a
// cluster. Connectivity is not drawn.
//
// # Usage
//
//	dot := preview.ToDOT(b, preview.Options{})
//	svg, err := preview.RenderSVG(ctx, dot)
//
// # DOT Format
//
// [ToDOT] emits an undirected graph for the neato engine. Node positions
// use the "x,y!" form so neato keeps them fixed. Schematic Y grows
// downward while Graphviz Y grows upward, so Y is negated.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package preview
