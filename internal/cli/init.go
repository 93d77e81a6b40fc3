package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/audiocircuits/pkg/board"
	"github.com/matzehuels/audiocircuits/pkg/errors"
)

// initCommand creates the init command for writing a starter board config.
func (c *CLI) initCommand() *cobra.Command {
	var (
		from  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [board.toml]",
		Short: "Write a starter board config",
		Long: `Write a starter board config.

The config is a copy of a built-in board (dual-buffer by default) that can
be edited and passed to build or preview. Without a path it is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := board.Builtin(from)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return board.WriteConfig(cfg, cmd.OutOrStdout())
			}

			path := args[0]
			if err := errors.ValidatePath(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
			}
			f, err := os.Create(path)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
			}
			defer f.Close()
			if err := board.WriteConfig(cfg, f); err != nil {
				return err
			}

			printSuccess("Wrote %s config", StyleHighlight.Render(cfg.Name))
			printFile(path)
			printNextStep("Build it", appName+" build "+path)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "dual-buffer", "built-in board to start from")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	_ = cmd.RegisterFlagCompletionFunc("from", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return board.BuiltinNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
