package preview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/observability"
)

// DefaultScale is inches of drawing per schematic unit.
const DefaultScale = 0.5

// Options configures preview generation.
type Options struct {
	// Scale is inches per schematic unit. 0 uses DefaultScale.
	Scale float64
	// Detailed adds value or footprint and the schematic position to
	// node labels.
	Detailed bool
}

var kindFill = map[circuit.Kind]string{
	circuit.KindChip:      "white",
	circuit.KindCapacitor: "lightyellow",
	circuit.KindResistor:  "lightblue",
}

// ToDOT converts a board to Graphviz DOT with pinned node positions.
// The result can be rendered with [RenderSVG].
func ToDOT(b *circuit.Board, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("graph board {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%s (%s x %s)", b.Name, b.Width, b.Height))
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=10, margin=\"0.05,0.02\"];\n")

	for _, g := range b.Groups {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph %q {\n", "cluster_"+g.Name)
		fmt.Fprintf(&buf, "    label=%q;\n", g.Name)
		buf.WriteString("    style=dashed;\n")
		for _, c := range g.Components {
			attrs := []string{
				fmt.Sprintf("label=%q", fmtLabel(c, opts.Detailed)),
				fmt.Sprintf("pos=\"%s,%s!\"", coord(c.Sch.SchX*scale), coord(-c.Sch.SchY*scale)),
			}
			if fill, ok := kindFill[c.Kind]; ok {
				attrs = append(attrs, "fillcolor="+fill)
			}
			fmt.Fprintf(&buf, "    %q [%s];\n", c.Name, strings.Join(attrs, ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(c circuit.Component, detailed bool) string {
	if !detailed {
		return c.Name
	}
	detail := c.Value
	if detail == "" {
		detail = c.Footprint
	}
	return fmt.Sprintf("%s\n%s\n(%g, %g)", c.Name, detail, c.Sch.SchX, c.Sch.SchY)
}

// coord formats a DOT coordinate without a negative zero.
func coord(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using the neato engine.
func RenderSVG(ctx context.Context, dot string) (svg []byte, err error) {
	start := time.Now()
	defer func() {
		observability.Board().OnRenderComplete(ctx, "svg", len(svg), time.Since(start), err)
	}()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales to its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
