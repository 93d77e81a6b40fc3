package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/audiocircuits/pkg/board"
	"github.com/matzehuels/audiocircuits/pkg/buildinfo"
	"github.com/matzehuels/audiocircuits/pkg/cache"
	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "audiocircuits"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger and routes library
// events to it.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	hooks := &logHooks{logger: c.Logger}
	observability.SetBoardHooks(hooks)
	observability.SetCacheHooks(hooks)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "audiocircuits lays out modular audio circuit boards",
		Long:         `audiocircuits places op-amp modules on a schematic grid, stacks them into boards, and exports the board declaration as JSON or a placement preview.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.gridCommand())
	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.partsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// boardSource selects where a board config comes from.
type boardSource struct {
	builtin string
}

func (s *boardSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.builtin, "builtin", "", "use a built-in board instead of a config file")
	_ = cmd.RegisterFlagCompletionFunc("builtin", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return board.BuiltinNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// load returns the config named by args or --builtin. Exactly one of the
// two must be given.
func (s *boardSource) load(args []string) (board.Config, error) {
	switch {
	case s.builtin != "" && len(args) > 0:
		return board.Config{}, errors.New(errors.ErrCodeInvalidInput, "give either a config file or --builtin, not both")
	case s.builtin != "":
		return board.Builtin(s.builtin)
	case len(args) == 1:
		return board.LoadConfig(args[0])
	default:
		return board.Config{}, errors.New(errors.ErrCodeInvalidInput, "a config file or --builtin is required")
	}
}

// buildBoard loads and builds a board, logging progress.
func buildBoard(ctx context.Context, src *boardSource, args []string) (*circuit.Board, error) {
	logger := loggerFromContext(ctx)

	cfg, err := src.load(args)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded board config", "name", cfg.Name, "modules", len(cfg.Modules))

	prog := newProgress(logger)
	b, err := board.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}
	prog.done("Built " + b.Name)
	return b, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/audiocircuits/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
