package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
)

type gridOpts struct {
	originX, originY float64
	gridSize         float64
	above, below     bool
	json             bool
}

// gridCommand creates the grid command for resolving grid cells.
func (c *CLI) gridCommand() *cobra.Command {
	opts := gridOpts{gridSize: layout.DefaultGridSize}

	cmd := &cobra.Command{
		Use:   "grid COL [ROW]",
		Short: "Resolve a grid cell to a schematic position",
		Long: `Resolve a grid cell to a schematic position.

COL and ROW are grid offsets from the module origin and may be fractional.
Schematic Y grows downward: with --above, ROW counts cells up from the
signal line; with --below, cells down. Without either flag ROW is used
as-is. Put negative offsets after "--".`,
		Example: `  audiocircuits grid --origin-x 10 --origin-y=-5 -- 2 -1
  audiocircuits grid 1.5 --above
  audiocircuits grid --below --json -- -1 1.5`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.above && opts.below {
				return errors.New(errors.ErrCodeInvalidInput, "--above and --below are mutually exclusive")
			}
			col, row, err := parseCell(args)
			if err != nil {
				return err
			}
			p, err := resolveCell(opts, col, row)
			if err != nil {
				return err
			}
			return writePosition(cmd.OutOrStdout(), p, opts.json)
		},
	}

	cmd.Flags().Float64Var(&opts.originX, "origin-x", 0, "module origin X")
	cmd.Flags().Float64Var(&opts.originY, "origin-y", 0, "module origin Y")
	cmd.Flags().Float64Var(&opts.gridSize, "grid-size", opts.gridSize, "schematic units per grid cell")
	cmd.Flags().BoolVar(&opts.above, "above", false, "ROW counts cells above the signal line (default 1)")
	cmd.Flags().BoolVar(&opts.below, "below", false, "ROW counts cells below the signal line (default 1)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")

	return cmd
}

// parseCell parses COL and the optional ROW. row is nil when omitted.
func parseCell(args []string) (col float64, row *float64, err error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return 0, nil, errors.New(errors.ErrCodeInvalidInput, "invalid grid offset %q", a)
		}
		vals[i] = v
	}
	if len(vals) == 2 {
		row = &vals[1]
	}
	return vals[0], row, nil
}

func resolveCell(opts gridOpts, col float64, row *float64) (layout.Position, error) {
	g, err := layout.NewGrid(opts.originX, opts.originY, opts.gridSize)
	if err != nil {
		return layout.Position{}, err
	}
	switch {
	case opts.above && row != nil:
		return g.Above(col, *row), nil
	case opts.above:
		return g.AboveOne(col), nil
	case opts.below && row != nil:
		return g.Below(col, *row), nil
	case opts.below:
		return g.BelowOne(col), nil
	case row != nil:
		return g.At(col, *row), nil
	default:
		return g.Signal(col), nil
	}
}

func writePosition(w io.Writer, p layout.Position, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(p)
	}
	_, err := fmt.Fprintf(w, "%s %s\n", formatCoord(p.SchX), formatCoord(p.SchY))
	return err
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
