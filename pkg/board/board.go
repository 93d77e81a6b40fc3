// Package board composes module instances into a full board declaration.
//
// A board is described by a [Config], usually loaded from TOML. [Build]
// asks the layout core for one origin per module along the configured
// axis, instantiates each module at its origin, and validates the result:
//
//	cfg, err := board.LoadConfig("dual-buffer.toml")
//	if err != nil {
//	    return err
//	}
//	b, err := board.Build(ctx, cfg)
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/layout"
	"github.com/matzehuels/audiocircuits/pkg/modules"
	"github.com/matzehuels/audiocircuits/pkg/observability"
)

// Build validates cfg, arranges its modules and returns the validated
// board declaration.
func Build(ctx context.Context, cfg Config) (*circuit.Board, error) {
	start := time.Now()
	b, err := build(ctx, cfg)

	components := 0
	if b != nil {
		components = b.ComponentCount()
	}
	observability.Board().OnBuildComplete(ctx, cfg.Name, components, time.Since(start), err)
	return b, err
}

func build(ctx context.Context, cfg Config) (*circuit.Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	axis := cfg.Arrangement.AxisOrDefault()
	observability.Board().OnArrange(ctx, string(axis), len(cfg.Modules))

	origins, err := layout.Arrange(axis, len(cfg.Modules), cfg.Arrangement.SizeOrDefault(), cfg.Arrangement.GapOrDefault())
	if err != nil {
		return nil, fmt.Errorf("arrange %s: %w", cfg.Name, err)
	}

	b := &circuit.Board{
		Name:   cfg.Name,
		Width:  cfg.Width,
		Height: cfg.Height,
		Groups: make([]circuit.Group, 0, len(cfg.Modules)),
	}
	for i, m := range cfg.Modules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		builder, err := modules.Lookup(m.Kind)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.Name, err)
		}
		g, err := builder(modules.Instance{
			Name:     m.Name,
			Sch:      origins[i],
			PCB:      circuit.PCBPosition{X: m.PCBX, Y: m.PCBY},
			GridSize: cfg.Arrangement.GridSize,
			Params:   m.Params,
		})
		if err != nil {
			return nil, err
		}
		b.Groups = append(b.Groups, g)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
