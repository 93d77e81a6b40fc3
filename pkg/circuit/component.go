package circuit

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/audiocircuits/pkg/layout"
)

// Kind is the element type understood by the rendering engine.
type Kind string

const (
	KindChip      Kind = "chip"
	KindCapacitor Kind = "capacitor"
	KindResistor  Kind = "resistor"
)

// DefaultPassiveFootprint is the SMD package used for capacitors and
// resistors unless a module overrides it.
const DefaultPassiveFootprint = "0805"

// passivePins are the terminals of two-terminal passives.
var passivePins = []string{"pin1", "pin2"}

// Direction is the order pins are listed along one side of a schematic symbol.
type Direction string

const (
	TopToBottom Direction = "top-to-bottom"
	LeftToRight Direction = "left-to-right"
)

// Side lists the pins drawn on one side of a symbol.
type Side struct {
	Direction Direction `json:"direction"`
	Pins      []string  `json:"pins"`
}

// PinArrangement places pin labels on the sides of a schematic symbol.
type PinArrangement struct {
	LeftSide   *Side `json:"leftSide,omitempty"`
	RightSide  *Side `json:"rightSide,omitempty"`
	TopSide    *Side `json:"topSide,omitempty"`
	BottomSide *Side `json:"bottomSide,omitempty"`
}

// Pins returns every pin label mentioned by the arrangement, side by side.
func (a PinArrangement) Pins() []string {
	var out []string
	for _, s := range []*Side{a.LeftSide, a.RightSide, a.TopSide, a.BottomSide} {
		if s != nil {
			out = append(out, s.Pins...)
		}
	}
	return out
}

// PCBPosition is a board coordinate in millimetres.
type PCBPosition struct {
	X float64 `json:"pcb_x"`
	Y float64 `json:"pcb_y"`
}

// Component is one part instance.
type Component struct {
	Kind      Kind
	Name      string
	Value     string // capacitance or resistance for passives
	Footprint string

	// PinLabels maps engine pin ids ("pin1") to labels ("OUTA"). Chips only.
	PinLabels   map[string]string
	Arrangement *PinArrangement
	Supplier    map[string][]string

	Sch layout.Position
	PCB PCBPosition
}

// NewCapacitor declares a capacitor with the default footprint.
func NewCapacitor(name, capacitance string) Component {
	return Component{Kind: KindCapacitor, Name: name, Value: capacitance, Footprint: DefaultPassiveFootprint}
}

// NewResistor declares a resistor with the default footprint.
func NewResistor(name, resistance string) Component {
	return Component{Kind: KindResistor, Name: name, Value: resistance, Footprint: DefaultPassiveFootprint}
}

// At returns a copy of c placed at the given schematic position.
func (c Component) At(p layout.Position) Component {
	c.Sch = p
	return c
}

// OnBoard returns a copy of c placed at the given PCB position.
func (c Component) OnBoard(x, y float64) Component {
	c.PCB = PCBPosition{X: x, Y: y}
	return c
}

// Pins returns the pin names a trace may address on c. Passives expose
// pin1 and pin2. Chips expose both their engine pin ids and their labels,
// ids first in numeric order.
func (c Component) Pins() []string {
	if c.Kind != KindChip {
		return slices.Clone(passivePins)
	}
	ids := PinIDs(c.PinLabels)
	out := make([]string, 0, 2*len(ids))
	out = append(out, ids...)
	for _, id := range ids {
		out = append(out, c.PinLabels[id])
	}
	return out
}

// HasPin reports whether pin names a pin of c.
func (c Component) HasPin(pin string) bool {
	if c.Kind != KindChip {
		return slices.Contains(passivePins, pin)
	}
	if _, ok := c.PinLabels[pin]; ok {
		return true
	}
	for _, label := range c.PinLabels {
		if label == pin {
			return true
		}
	}
	return false
}

// PinIDs returns the keys of a pin-label table ordered by pin number.
// Keys that are not of the form "pinN" sort last, alphabetically.
func PinIDs(labels map[string]string) []string {
	ids := make([]string, 0, len(labels))
	for id := range labels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, oki := pinNumber(ids[i])
		nj, okj := pinNumber(ids[j])
		switch {
		case oki && okj:
			return ni < nj
		case oki != okj:
			return oki
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

func pinNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "pin")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
