package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
)

type document struct {
	Board  boardHeader `json:"board"`
	Groups []group     `json:"groups"`
}

type boardHeader struct {
	Name   string `json:"name"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

type group struct {
	Name       string      `json:"name"`
	Components []component `json:"components"`
	Nets       []net       `json:"nets"`
	Traces     []trace     `json:"traces"`
}

type component struct {
	Kind        string                  `json:"kind"`
	Name        string                  `json:"name"`
	Value       string                  `json:"value,omitempty"`
	Footprint   string                  `json:"footprint,omitempty"`
	PinLabels   map[string]string       `json:"pin_labels,omitempty"`
	Arrangement *circuit.PinArrangement `json:"sch_pin_arrangement,omitempty"`
	Supplier    map[string][]string     `json:"supplier_part_numbers,omitempty"`
	SchX        float64                 `json:"sch_x"`
	SchY        float64                 `json:"sch_y"`
	PCBX        float64                 `json:"pcb_x"`
	PCBY        float64                 `json:"pcb_y"`
}

type net struct {
	Name string `json:"name"`
}

type trace struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes a board as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(b *circuit.Board, w io.Writer) error {
	out := document{
		Board:  boardHeader{Name: b.Name, Width: b.Width, Height: b.Height},
		Groups: make([]group, len(b.Groups)),
	}

	for i, g := range b.Groups {
		gd := group{
			Name:       g.Name,
			Components: make([]component, len(g.Components)),
			Nets:       make([]net, len(g.Nets)),
			Traces:     make([]trace, len(g.Traces)),
		}
		for j, c := range g.Components {
			gd.Components[j] = component{
				Kind:        string(c.Kind),
				Name:        c.Name,
				Value:       c.Value,
				Footprint:   c.Footprint,
				PinLabels:   c.PinLabels,
				Arrangement: c.Arrangement,
				Supplier:    c.Supplier,
				SchX:        c.Sch.SchX,
				SchY:        c.Sch.SchY,
				PCBX:        c.PCB.X,
				PCBY:        c.PCB.Y,
			}
		}
		for j, n := range g.Nets {
			gd.Nets[j] = net{Name: n.Name}
		}
		for j, t := range g.Traces {
			gd.Traces[j] = trace{From: t.From, To: t.To}
		}
		out.Groups[i] = gd
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a board to a JSON file at path.
func ExportJSON(b *circuit.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(b, f)
}
