// Package parts is the fixed library of chips and connectors used by
// audiocircuits modules.
//
// A [Part] is a lookup table: engine pin ids ("pin1") to labels ("OUTA"),
// a schematic pin arrangement, a default footprint and supplier part
// numbers. Modules turn a part into a placed [circuit.Component] with
// [Part.Chip].
package parts

import (
	"maps"
	"slices"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
)

// Part describes a chip or connector.
type Part struct {
	Name        string
	Description string
	Footprint   string
	PinLabels   map[string]string
	Arrangement circuit.PinArrangement
	Supplier    map[string][]string
}

// Label returns the label of an engine pin id.
func (p Part) Label(pin string) (string, bool) {
	l, ok := p.PinLabels[pin]
	return l, ok
}

// Pin returns the engine pin id carrying label.
func (p Part) Pin(label string) (string, bool) {
	for id, l := range p.PinLabels {
		if l == label {
			return id, true
		}
	}
	return "", false
}

// PinIDs returns the engine pin ids in numeric order.
func (p Part) PinIDs() []string {
	return circuit.PinIDs(p.PinLabels)
}

// Labels returns the pin labels in pin-number order.
func (p Part) Labels() []string {
	ids := p.PinIDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = p.PinLabels[id]
	}
	return out
}

// PinCount returns the number of pins.
func (p Part) PinCount() int { return len(p.PinLabels) }

// ChipOption customizes a component created by [Part.Chip].
type ChipOption func(*circuit.Component)

// WithFootprint overrides the part's default footprint.
func WithFootprint(fp string) ChipOption {
	return func(c *circuit.Component) {
		if fp != "" {
			c.Footprint = fp
		}
	}
}

// Chip declares an instance of p named name. The returned component owns
// copies of the part's tables, so callers may modify them freely.
func (p Part) Chip(name string, opts ...ChipOption) circuit.Component {
	arr := cloneArrangement(p.Arrangement)
	c := circuit.Component{
		Kind:        circuit.KindChip,
		Name:        name,
		Footprint:   p.Footprint,
		PinLabels:   maps.Clone(p.PinLabels),
		Arrangement: &arr,
	}
	if len(p.Supplier) > 0 {
		c.Supplier = make(map[string][]string, len(p.Supplier))
		for k, v := range p.Supplier {
			c.Supplier[k] = slices.Clone(v)
		}
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func cloneArrangement(a circuit.PinArrangement) circuit.PinArrangement {
	clone := func(s *circuit.Side) *circuit.Side {
		if s == nil {
			return nil
		}
		return &circuit.Side{Direction: s.Direction, Pins: slices.Clone(s.Pins)}
	}
	return circuit.PinArrangement{
		LeftSide:   clone(a.LeftSide),
		RightSide:  clone(a.RightSide),
		TopSide:    clone(a.TopSide),
		BottomSide: clone(a.BottomSide),
	}
}

// leftColumn arranges every pin label on the left side, top to bottom, in
// pin order. Connectors use it.
func leftColumn(labels map[string]string) circuit.PinArrangement {
	ids := circuit.PinIDs(labels)
	pins := make([]string, len(ids))
	for i, id := range ids {
		pins[i] = labels[id]
	}
	return circuit.PinArrangement{
		LeftSide: &circuit.Side{Direction: circuit.TopToBottom, Pins: pins},
	}
}
