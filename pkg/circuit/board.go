package circuit

import (
	"fmt"

	"github.com/matzehuels/audiocircuits/pkg/errors"
)

// Net is a named net used for schematic labels and trace targets.
type Net struct {
	Name string
}

// Trace connects two endpoints given as selector strings.
type Trace struct {
	From string
	To   string
}

// Connect returns a trace between two selectors.
func Connect(from, to string) Trace {
	return Trace{From: from, To: to}
}

// Group is one module instance: its parts, nets and traces.
type Group struct {
	Name       string
	Components []Component
	Nets       []Net
	Traces     []Trace
}

// Component returns the component with the given name.
func (g *Group) Component(name string) (Component, bool) {
	for _, c := range g.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

// Validate checks the group in isolation. Traces may only reference
// components and nets declared in the group.
func (g *Group) Validate() error {
	s := newScope()
	if err := s.add(g); err != nil {
		return err
	}
	return s.checkTraces(g)
}

// Board is the root of a declaration tree.
type Board struct {
	Name   string
	Width  string // e.g. "80mm"
	Height string
	Groups []Group
}

// Validate checks the whole board. Component and net names share one
// namespace across groups since engine selectors are global.
func (b *Board) Validate() error {
	s := newScope()
	for i := range b.Groups {
		if err := s.add(&b.Groups[i]); err != nil {
			return err
		}
	}
	for i := range b.Groups {
		if err := s.checkTraces(&b.Groups[i]); err != nil {
			return err
		}
	}
	return nil
}

// Group returns the group with the given name.
func (b *Board) Group(name string) (*Group, bool) {
	for i := range b.Groups {
		if b.Groups[i].Name == name {
			return &b.Groups[i], true
		}
	}
	return nil, false
}

// ComponentCount returns the number of components across all groups.
func (b *Board) ComponentCount() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g.Components)
	}
	return n
}

// TraceCount returns the number of traces across all groups.
func (b *Board) TraceCount() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g.Traces)
	}
	return n
}

// Components returns all components in declaration order.
func (b *Board) Components() []Component {
	out := make([]Component, 0, b.ComponentCount())
	for _, g := range b.Groups {
		out = append(out, g.Components...)
	}
	return out
}

type scope struct {
	components map[string]Component
	nets       map[string]bool
}

func newScope() *scope {
	return &scope{components: make(map[string]Component), nets: make(map[string]bool)}
}

func (s *scope) add(g *Group) error {
	where := groupLabel(g)
	for _, c := range g.Components {
		if err := errors.ValidateName(c.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDeclaration, err, "%s: component", where)
		}
		if _, dup := s.components[c.Name]; dup {
			return errors.New(errors.ErrCodeInvalidDeclaration, "%s: duplicate component %q", where, c.Name)
		}
		if err := validateKind(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDeclaration, err, "%s: component %q", where, c.Name)
		}
		s.components[c.Name] = c
	}
	for _, n := range g.Nets {
		if err := errors.ValidateName(n.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDeclaration, err, "%s: net", where)
		}
		if s.nets[n.Name] {
			return errors.New(errors.ErrCodeInvalidDeclaration, "%s: duplicate net %q", where, n.Name)
		}
		s.nets[n.Name] = true
	}
	return nil
}

func (s *scope) checkTraces(g *Group) error {
	where := groupLabel(g)
	for i, t := range g.Traces {
		for _, sel := range []string{t.From, t.To} {
			if err := s.resolve(sel); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDeclaration, err, "%s: trace %d (%s -> %s)", where, i, t.From, t.To)
			}
		}
	}
	return nil
}

func (s *scope) resolve(sel string) error {
	ep, err := ParseEndpoint(sel)
	if err != nil {
		return err
	}
	if ep.IsNet() {
		if !s.nets[ep.Net] {
			return errors.New(errors.ErrCodeInvalidDeclaration, "undeclared net %q", ep.Net)
		}
		return nil
	}
	c, ok := s.components[ep.Component]
	if !ok {
		return errors.New(errors.ErrCodeInvalidDeclaration, "undeclared component %q", ep.Component)
	}
	if !c.HasPin(ep.Pin) {
		return errors.New(errors.ErrCodeInvalidDeclaration, "component %q has no pin %q", ep.Component, ep.Pin)
	}
	return nil
}

func validateKind(c Component) error {
	switch c.Kind {
	case KindChip:
		if len(c.PinLabels) == 0 {
			return fmt.Errorf("chip has no pin labels")
		}
	case KindCapacitor, KindResistor:
		if c.Value == "" {
			return fmt.Errorf("%s has no value", c.Kind)
		}
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	return nil
}

func groupLabel(g *Group) string {
	if g.Name == "" {
		return "group"
	}
	return "group " + g.Name
}
