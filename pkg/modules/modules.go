// Package modules maps module kinds named in board configs to the
// constructors that declare them.
package modules

import (
	"slices"
	"sort"
	"strings"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
	"github.com/matzehuels/audiocircuits/pkg/modules/opampbuffer"
)

// KindOpampBuffer is the unity-gain TL072 buffer.
const KindOpampBuffer = "opamp-buffer"

// Instance is one module placement requested by a board.
type Instance struct {
	Name     string
	Sch      layout.Position
	PCB      circuit.PCBPosition
	GridSize float64 // 0 = layout.DefaultGridSize
	Params   map[string]string
}

// Builder declares a module instance.
type Builder func(Instance) (circuit.Group, error)

var builders = map[string]Builder{
	KindOpampBuffer: buildOpampBuffer,
}

// Lookup returns the builder for a module kind.
func Lookup(kind string) (Builder, error) {
	b, ok := builders[kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeModuleNotFound, "unknown module kind %q (available: %s)", kind, strings.Join(Kinds(), ", "))
	}
	return b, nil
}

// Kinds returns the registered module kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Params accepted by the opamp-buffer module.
var opampBufferParams = []string{"input_cap", "output_cap", "bias_resistor"}

func buildOpampBuffer(in Instance) (circuit.Group, error) {
	props := opampbuffer.Props{
		Name:     in.Name,
		PCBX:     in.PCB.X,
		PCBY:     in.PCB.Y,
		SchX:     in.Sch.SchX,
		SchY:     in.Sch.SchY,
		GridSize: in.GridSize,
	}
	for k, v := range in.Params {
		switch k {
		case "input_cap":
			props.InputCap = v
		case "output_cap":
			props.OutputCap = v
		case "bias_resistor":
			props.BiasResistor = v
		default:
			return circuit.Group{}, errors.New(errors.ErrCodeInvalidConfig,
				"module %s: unknown parameter %q for %s (accepted: %s)", in.Name, k, KindOpampBuffer, strings.Join(opampBufferParams, ", "))
		}
	}
	return opampbuffer.New(props)
}

// AcceptedParams returns the parameter names a module kind understands.
func AcceptedParams(kind string) []string {
	if kind == KindOpampBuffer {
		return slices.Clone(opampBufferParams)
	}
	return nil
}
