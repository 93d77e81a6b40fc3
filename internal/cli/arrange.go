package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
)

type arrangeOpts struct {
	axis  string
	count int
	size  float64
	gap   float64
	json  bool
}

// arrangeCommand creates the arrange command for printing module origins.
func (c *CLI) arrangeCommand() *cobra.Command {
	opts := arrangeOpts{axis: string(layout.AxisColumn), gap: layout.DefaultGap}

	cmd := &cobra.Command{
		Use:   "arrange",
		Short: "Print module origins for a column or row",
		Long: `Print module origins for a column or row.

Modules are centred on 0 along the axis: the origins of N modules of the
given size, separated by gap, average to 0. The size defaults to 8 for a
column and 12 for a row.`,
		Example: `  audiocircuits arrange --count 2
  audiocircuits arrange --axis row --count 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axis := layout.Axis(opts.axis)
			if !axis.Valid() {
				return errors.New(errors.ErrCodeInvalidArrangement, "unknown axis %q (want column or row)", opts.axis)
			}
			size := opts.size
			if !cmd.Flags().Changed("size") {
				size = axis.DefaultSize()
			}

			loggerFromContext(cmd.Context()).Debug("arranging", "axis", axis, "count", opts.count, "size", size, "gap", opts.gap)
			origins, err := layout.Arrange(axis, opts.count, size, opts.gap)
			if err != nil {
				return err
			}
			return writeOrigins(cmd.OutOrStdout(), origins, opts.json)
		},
	}

	cmd.Flags().StringVar(&opts.axis, "axis", opts.axis, "arrangement axis: column or row")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of modules")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "module height (column) or width (row)")
	cmd.Flags().Float64Var(&opts.gap, "gap", opts.gap, "space between modules")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	_ = cmd.RegisterFlagCompletionFunc("axis", cobra.FixedCompletions(
		[]string{string(layout.AxisColumn), string(layout.AxisRow)}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func writeOrigins(w io.Writer, origins []layout.ModuleLayout, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(origins)
	}

	rows := make([][]string, len(origins))
	for i, o := range origins {
		rows[i] = []string{fmt.Sprint(i), formatCoord(o.SchX), formatCoord(o.SchY)}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "sch_x", "sch_y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
