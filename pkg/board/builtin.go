package board

import (
	"sort"
	"strings"

	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
	"github.com/matzehuels/audiocircuits/pkg/modules"
)

var builtins = map[string]func() Config{
	"dual-buffer":   DualBuffer,
	"single-buffer": SingleBuffer,
}

// DualBuffer is two op-amp buffers stacked in a column on an 80x50mm board.
func DualBuffer() Config {
	return Config{
		Name:   "dual-buffer",
		Width:  "80mm",
		Height: "50mm",
		Arrangement: Arrangement{
			Axis: string(layout.AxisColumn),
		},
		Modules: []Module{
			{Kind: modules.KindOpampBuffer, Name: "BUF_A", PCBX: -20, PCBY: -10},
			{Kind: modules.KindOpampBuffer, Name: "BUF_B", PCBX: -20, PCBY: 10},
		},
	}
}

// SingleBuffer is one op-amp buffer centred on a 40x30mm board.
func SingleBuffer() Config {
	return Config{
		Name:   "single-buffer",
		Width:  "40mm",
		Height: "30mm",
		Modules: []Module{
			{Kind: modules.KindOpampBuffer, Name: "BUF1"},
		},
	}
}

// Builtin returns the named built-in board config.
func Builtin(name string) (Config, error) {
	fn, ok := builtins[name]
	if !ok {
		return Config{}, errors.New(errors.ErrCodeNotFound, "unknown board %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return fn(), nil
}

// BuiltinNames returns the names of the built-in boards, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
