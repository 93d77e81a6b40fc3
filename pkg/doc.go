// Package pkg provides the libraries behind audiocircuits.
//
// # Overview
//
// audiocircuits declares modular audio circuit boards. Modules such as an
// op-amp buffer place their parts on a schematic grid relative to a module
// origin, and boards stack several modules in a column or a row. The pkg
// directory is organized by layer:
//
//  1. [layout] - Grid math and module arrangement (pure functions)
//  2. [circuit] - The declaration tree: components, nets, traces, groups
//  3. [parts] and [modules] - The part library and module constructors
//  4. [board] - TOML board configs and board composition
//  5. [io] and [render] - JSON export and placement previews
//
// Supporting packages: [errors] (coded errors), [observability] (hooks),
// [cache] (rendered preview cache), [buildinfo] (version stamping).
//
// # Architecture
//
// The data flow through audiocircuits:
//
//	board.toml
//	     ↓
//	[board] package (validate config, arrange module origins)
//	     ↓
//	[modules] package (expand each instance into a group)
//	     ↓
//	[circuit] package (validated board declaration)
//	     ↓
//	JSON ([io]) or SVG/PDF/PNG preview ([render])
//
// # Quick Start
//
//	cfg, err := board.LoadConfig("board.toml")
//	if err != nil {
//	    return err
//	}
//	b, err := board.Build(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	return io.ExportJSON(b, "board.json")
//
// [layout]: github.com/matzehuels/audiocircuits/pkg/layout
// [circuit]: github.com/matzehuels/audiocircuits/pkg/circuit
// [parts]: github.com/matzehuels/audiocircuits/pkg/parts
// [modules]: github.com/matzehuels/audiocircuits/pkg/modules
// [board]: github.com/matzehuels/audiocircuits/pkg/board
// [io]: github.com/matzehuels/audiocircuits/pkg/io
// [render]: github.com/matzehuels/audiocircuits/pkg/render
// [errors]: github.com/matzehuels/audiocircuits/pkg/errors
// [observability]: github.com/matzehuels/audiocircuits/pkg/observability
// [cache]: github.com/matzehuels/audiocircuits/pkg/cache
// [buildinfo]: github.com/matzehuels/audiocircuits/pkg/buildinfo
package pkg
