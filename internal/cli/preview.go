package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/audiocircuits/pkg/buildinfo"
	"github.com/matzehuels/audiocircuits/pkg/cache"
	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/render"
	"github.com/matzehuels/audiocircuits/pkg/render/preview"
)

const (
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
	formatDOT = "dot"

	// previewTTL bounds how long rendered previews are kept.
	previewTTL = 7 * 24 * time.Hour
)

var previewFormats = []string{formatSVG, formatPDF, formatPNG, formatDOT}

type previewOpts struct {
	output   string
	format   string
	scale    float64
	pngScale float64
	detailed bool
	noCache  bool
}

// previewCommand creates the preview command for rendering placement previews.
func (c *CLI) previewCommand() *cobra.Command {
	var src boardSource
	opts := previewOpts{pngScale: 2}

	cmd := &cobra.Command{
		Use:   "preview [config.toml]",
		Short: "Render a placement preview of a board",
		Long: `Render a placement preview of a board.

Each component is drawn as a box at its schematic position, grouped by
module. Connectivity is not drawn. The format follows the output file
extension unless --format is given.

Rendered previews are cached locally; use --no-cache to bypass the cache.`,
		Example: `  audiocircuits preview --builtin dual-buffer -o dual.svg
  audiocircuits preview board.toml --format dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runPreview(cmd, &src, args, opts)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: svg, pdf, png or dot")
	cmd.Flags().Float64Var(&opts.scale, "scale", preview.DefaultScale, "inches per schematic unit")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label components with value and position")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(previewFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, src *boardSource, args []string, opts previewOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	b, err := buildBoard(ctx, src, args)
	if err != nil {
		return err
	}
	dot := preview.ToDOT(b, preview.Options{Scale: opts.scale, Detailed: opts.detailed})

	var data []byte
	if opts.format == formatDOT {
		data = []byte(dot)
	} else {
		var cached bool
		data, cached, err = renderCached(ctx, dot, opts)
		if err != nil {
			return err
		}
		logger.Debug("preview ready", "format", opts.format, "bytes", len(data), "cached", cached)
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	printSuccess("Rendered %s preview of %s", strings.ToUpper(opts.format), StyleHighlight.Render(b.Name))
	printFile(opts.output)
	return nil
}

// renderCached renders dot to the requested format, reusing a cached
// artifact when one exists.
func renderCached(ctx context.Context, dot string, opts previewOpts) ([]byte, bool, error) {
	c, err := newCache(opts.noCache)
	if err != nil {
		return nil, false, err
	}
	defer c.Close()

	keyOpts := cache.PreviewKeyOpts{Format: opts.format}
	if opts.format == formatPNG {
		keyOpts.Scale = opts.pngScale
	}
	key := cache.NewScopedKeyer(nil, buildinfo.CacheScope()).PreviewKey(dot, keyOpts)

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering preview...")
	spinner.Start()
	data, err := renderFormat(ctx, dot, opts)
	spinner.Stop()
	if err != nil {
		return nil, false, err
	}

	if err := c.Set(ctx, key, data, previewTTL); err != nil {
		loggerFromContext(ctx).Warn("could not cache preview", "err", err)
	}
	return data, false, nil
}

func renderFormat(ctx context.Context, dot string, opts previewOpts) ([]byte, error) {
	svg, err := preview.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch opts.format {
	case formatPDF:
		return render.ToPDF(ctx, svg)
	case formatPNG:
		return render.ToPNG(ctx, svg, opts.pngScale)
	default:
		return svg, nil
	}
}

// resolveFormat picks the output format from --format or the output file
// extension, defaulting to SVG.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if ext == "" {
			return formatSVG, nil
		}
		format = ext
	}
	format = strings.ToLower(format)
	if !slices.Contains(previewFormats, format) {
		return "", errors.New(errors.ErrCodeInvalidInput, "unsupported format %q (want %s)", format, strings.Join(previewFormats, ", "))
	}
	return format, nil
}
