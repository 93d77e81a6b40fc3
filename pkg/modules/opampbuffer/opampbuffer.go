// Package opampbuffer declares a single-channel unity-gain buffer built on
// one half of a TL072.
//
// Signal path, left to right: input terminal, DC blocking capacitor, bias
// resistor to ground, op-amp follower (OUTA fed back to INA_N), output DC
// blocking capacitor, output terminal. A 3-position terminal brings in
// +V/GND/-V with a 100nF decoupling capacitor on each rail.
//
// Interface nets (all prefixed with the module name):
//
//	IN   AC coupled input, after C_IN
//	OUT  AC coupled buffered output
//	FB   op-amp output / inverting input
//	VCC  positive supply (+15V typical)
//	VEE  negative supply (-15V typical)
//	GND  ground reference
package opampbuffer

import (
	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
	"github.com/matzehuels/audiocircuits/pkg/parts"
)

// Default component values.
const (
	DefaultInputCap     = "100nF"
	DefaultOutputCap    = "100nF"
	DefaultBiasResistor = "100k"
	DecouplingCap       = "100nF"
)

// Props configures one buffer instance.
type Props struct {
	Name string

	InputCap     string // default 100nF
	OutputCap    string // default 100nF
	BiasResistor string // default 100k

	// PCB origin in millimetres.
	PCBX, PCBY float64

	// Schematic origin and grid pitch. GridSize 0 means layout.DefaultGridSize.
	SchX, SchY float64
	GridSize   float64
}

func (p Props) withDefaults() Props {
	if p.InputCap == "" {
		p.InputCap = DefaultInputCap
	}
	if p.OutputCap == "" {
		p.OutputCap = DefaultOutputCap
	}
	if p.BiasResistor == "" {
		p.BiasResistor = DefaultBiasResistor
	}
	if p.GridSize == 0 {
		p.GridSize = layout.DefaultGridSize
	}
	return p
}

// Part and net suffixes, joined to the module name with "_".
const (
	JackIn    = "J_IN"
	CapIn     = "C_IN"
	BiasRes   = "R_BIAS"
	OpAmp     = "U"
	CapOut    = "C_OUT"
	JackOut   = "J_OUT"
	JackPower = "J_PWR"
	CapVCC    = "C_VCC"
	CapVEE    = "C_VEE"

	NetGND = "GND"
	NetVCC = "VCC"
	NetVEE = "VEE"
	NetIn  = "IN"
	NetFB  = "FB"
	NetOut = "OUT"
)

// placement is where a part goes relative to the module: a PCB offset in
// millimetres and a schematic grid cell.
type placement struct {
	pcbX, pcbY float64
	sch        func(g *layout.Grid) layout.Position
}

var placements = map[string]placement{
	JackIn:    {-25, 0, func(g *layout.Grid) layout.Position { return g.Signal(-3) }},
	CapIn:     {-15, 0, func(g *layout.Grid) layout.Position { return g.Signal(-2) }},
	BiasRes:   {-5, 5, func(g *layout.Grid) layout.Position { return g.BelowOne(-1) }},
	OpAmp:     {5, 0, func(g *layout.Grid) layout.Position { return g.Signal(0.5) }},
	CapOut:    {20, 0, func(g *layout.Grid) layout.Position { return g.Signal(2) }},
	JackOut:   {30, 0, func(g *layout.Grid) layout.Position { return g.Signal(3) }},
	JackPower: {0, 15, func(g *layout.Grid) layout.Position { return g.Below(-3, 2) }},
	CapVCC:    {5, 10, func(g *layout.Grid) layout.Position { return g.AboveOne(1.5) }},
	CapVEE:    {5, -10, func(g *layout.Grid) layout.Position { return g.BelowOne(1.5) }},
}

// New declares a buffer instance. The returned group passes
// [circuit.Group.Validate].
func New(props Props) (circuit.Group, error) {
	p := props.withDefaults()
	if err := errors.ValidateName(p.Name); err != nil {
		return circuit.Group{}, err
	}
	grid, err := layout.NewGrid(p.SchX, p.SchY, p.GridSize)
	if err != nil {
		return circuit.Group{}, errors.Wrap(errors.ErrCodeInvalidGrid, err, "buffer %s", p.Name)
	}

	b := builder{name: p.Name, grid: grid, pcbX: p.PCBX, pcbY: p.PCBY}

	g := circuit.Group{
		Name: p.Name,
		Components: []circuit.Component{
			b.place(JackIn, parts.ScrewTerminal2.Chip(b.ref(JackIn))),
			b.place(CapIn, circuit.NewCapacitor(b.ref(CapIn), p.InputCap)),
			b.place(BiasRes, circuit.NewResistor(b.ref(BiasRes), p.BiasResistor)),
			b.place(OpAmp, parts.TL072.Chip(b.ref(OpAmp))),
			b.place(CapOut, circuit.NewCapacitor(b.ref(CapOut), p.OutputCap)),
			b.place(JackOut, parts.ScrewTerminal2.Chip(b.ref(JackOut))),
			b.place(JackPower, parts.ScrewTerminal3.Chip(b.ref(JackPower))),
			b.place(CapVCC, circuit.NewCapacitor(b.ref(CapVCC), DecouplingCap)),
			b.place(CapVEE, circuit.NewCapacitor(b.ref(CapVEE), DecouplingCap)),
		},
	}
	for _, n := range []string{NetGND, NetVCC, NetVEE, NetIn, NetFB, NetOut} {
		g.Nets = append(g.Nets, circuit.Net{Name: b.ref(n)})
	}
	g.Traces = b.traces()

	if err := g.Validate(); err != nil {
		return circuit.Group{}, errors.Wrap(errors.ErrCodeInternal, err, "buffer %s declaration", p.Name)
	}
	return g, nil
}

type builder struct {
	name       string
	grid       *layout.Grid
	pcbX, pcbY float64
}

func (b builder) ref(suffix string) string { return b.name + "_" + suffix }

func (b builder) port(part, pin string) string { return circuit.Port(b.ref(part), pin) }

func (b builder) net(n string) string { return circuit.NetRef(b.ref(n)) }

func (b builder) place(part string, c circuit.Component) circuit.Component {
	pl := placements[part]
	return c.At(pl.sch(b.grid)).OnBoard(b.pcbX+pl.pcbX, b.pcbY+pl.pcbY)
}

func (b builder) traces() []circuit.Trace {
	c := circuit.Connect
	return []circuit.Trace{
		// Signal input
		c(b.port(JackIn, "P1"), b.port(CapIn, "pin1")),
		c(b.port(CapIn, "pin2"), b.net(NetIn)),
		c(b.port(BiasRes, "pin1"), b.net(NetIn)),
		c(b.port(OpAmp, parts.TL072InAP), b.net(NetIn)),

		// Unity gain feedback
		c(b.port(OpAmp, parts.TL072OutA), b.net(NetFB)),
		c(b.port(OpAmp, parts.TL072InAN), b.net(NetFB)),

		// Output
		c(b.net(NetFB), b.port(CapOut, "pin1")),
		c(b.port(CapOut, "pin2"), b.net(NetOut)),
		c(b.port(JackOut, "P1"), b.net(NetOut)),

		// Supplies
		c(b.port(JackPower, "P1"), b.net(NetVCC)),
		c(b.port(CapVCC, "pin1"), b.net(NetVCC)),
		c(b.port(OpAmp, parts.TL072VCC), b.net(NetVCC)),

		c(b.port(JackPower, "P3"), b.net(NetVEE)),
		c(b.port(CapVEE, "pin1"), b.net(NetVEE)),
		c(b.port(OpAmp, parts.TL072VEE), b.net(NetVEE)),

		// Ground
		c(b.port(JackIn, "P2"), b.net(NetGND)),
		c(b.port(JackOut, "P2"), b.net(NetGND)),
		c(b.port(JackPower, "P2"), b.net(NetGND)),
		c(b.port(BiasRes, "pin2"), b.net(NetGND)),
		c(b.port(CapVCC, "pin2"), b.net(NetGND)),
		c(b.port(CapVEE, "pin2"), b.net(NetGND)),
	}
}
