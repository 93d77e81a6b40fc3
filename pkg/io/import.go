package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
)

// ReadJSON decodes a board from r and validates it.
//
// ReadJSON returns an INVALID_FORMAT error if the JSON is malformed or
// names an unknown component kind, and the validation error of
// [circuit.Board.Validate] if the declaration is inconsistent.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*circuit.Board, error) {
	var data document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}

	b := &circuit.Board{
		Name:   data.Board.Name,
		Width:  data.Board.Width,
		Height: data.Board.Height,
		Groups: make([]circuit.Group, len(data.Groups)),
	}
	for i, gd := range data.Groups {
		g := circuit.Group{
			Name:       gd.Name,
			Components: make([]circuit.Component, len(gd.Components)),
			Nets:       make([]circuit.Net, len(gd.Nets)),
			Traces:     make([]circuit.Trace, len(gd.Traces)),
		}
		for j, c := range gd.Components {
			kind := circuit.Kind(c.Kind)
			switch kind {
			case circuit.KindChip, circuit.KindCapacitor, circuit.KindResistor:
			default:
				return nil, errors.New(errors.ErrCodeInvalidFormat, "component %s: unknown kind %q", c.Name, c.Kind)
			}
			g.Components[j] = circuit.Component{
				Kind:        kind,
				Name:        c.Name,
				Value:       c.Value,
				Footprint:   c.Footprint,
				PinLabels:   c.PinLabels,
				Arrangement: c.Arrangement,
				Supplier:    c.Supplier,
				Sch:         layout.Position{SchX: c.SchX, SchY: c.SchY},
				PCB:         circuit.PCBPosition{X: c.PCBX, Y: c.PCBY},
			}
		}
		for j, n := range gd.Nets {
			g.Nets[j] = circuit.Net{Name: n.Name}
		}
		for j, t := range gd.Traces {
			g.Traces[j] = circuit.Connect(t.From, t.To)
		}
		b.Groups[i] = g
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ImportJSON reads a JSON file at path and returns the decoded board.
func ImportJSON(path string) (*circuit.Board, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "%s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
