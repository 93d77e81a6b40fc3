package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/audiocircuits/pkg/io"
)

// buildCommand creates the build command for exporting a board declaration.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		src    boardSource
		output string
	)

	cmd := &cobra.Command{
		Use:   "build [config.toml]",
		Short: "Build a board and export its declaration as JSON",
		Long: `Build a board and export its declaration as JSON.

The board config lists module instances; each gets an origin from the
board's arrangement and is expanded into its components, nets and traces.
The result is validated before it is written.`,
		Example: `  audiocircuits build board.toml -o board.json
  audiocircuits build --builtin dual-buffer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := buildBoard(cmd.Context(), &src, args)
			if err != nil {
				return err
			}

			if output == "" {
				return io.WriteJSON(b, cmd.OutOrStdout())
			}
			if err := io.ExportJSON(b, output); err != nil {
				return err
			}
			printSuccess("Built %s", StyleHighlight.Render(b.Name))
			printStats(len(b.Groups), b.ComponentCount(), b.TraceCount())
			printFile(output)
			printNextStep("Preview placement", fmt.Sprintf("%s preview %s", appName, previewHint(&src, args)))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// previewHint repeats the board source for a suggested follow-up command.
func previewHint(src *boardSource, args []string) string {
	if src.builtin != "" {
		return "--builtin " + src.builtin
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
