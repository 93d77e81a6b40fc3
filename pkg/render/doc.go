// Package render provides format conversion for rendered board previews.
//
// The [preview] subpackage draws a board's schematic placement with
// Graphviz. [ToPDF] and [ToPNG] convert its SVG output using the external
// rsvg-convert tool (from librsvg):
//
//	svg, err := preview.RenderSVG(ctx, preview.ToDOT(b, preview.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [preview]: github.com/matzehuels/audiocircuits/pkg/render/preview
package render
