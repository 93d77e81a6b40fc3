package parts

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
)

func TestTL072Pinout(t *testing.T) {
	want := []string{"OUTA", "INA_N", "INA_P", "VEE", "INB_P", "INB_N", "OUTB", "VCC"}
	if diff := cmp.Diff(want, TL072.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}

	if pin, ok := TL072.Pin("VCC"); !ok || pin != "pin8" {
		t.Errorf("Pin(VCC) = %q, %v; want pin8", pin, ok)
	}
	if label, ok := TL072.Label("pin4"); !ok || label != "VEE" {
		t.Errorf("Label(pin4) = %q, %v; want VEE", label, ok)
	}
	if _, ok := TL072.Pin("GND"); ok {
		t.Error("Pin(GND) found a pin on TL072")
	}
	if TL072.Footprint != "soic8" {
		t.Errorf("Footprint = %q", TL072.Footprint)
	}
	if diff := cmp.Diff([]string{"C6961"}, TL072.Supplier["jlcpcb"]); diff != "" {
		t.Errorf("Supplier mismatch (-want +got):\n%s", diff)
	}
}

func TestArrangementCoversAllPins(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			arranged := p.Arrangement.Pins()
			labels := p.Labels()
			slices.Sort(arranged)
			slices.Sort(labels)
			if diff := cmp.Diff(labels, arranged); diff != "" {
				t.Errorf("arrangement does not list each label once (-labels +arranged):\n%s", diff)
			}
		})
	}
}

func TestConnectorPinouts(t *testing.T) {
	tests := []struct {
		part      Part
		footprint string
		labels    []string
	}{
		{ScrewTerminal2, "pinrow2", []string{"P1", "P2"}},
		{ScrewTerminal3, "pinrow3", []string{"P1", "P2", "P3"}},
		{ScrewTerminal6, "pinrow6", []string{"P1", "P2", "P3", "P4", "P5", "P6"}},
		{MonoJack, "pinrow2", []string{"TIP", "SLEEVE"}},
		{StereoJack, "pinrow3", []string{"TIP", "RING", "SLEEVE"}},
	}

	for _, tt := range tests {
		t.Run(tt.part.Name, func(t *testing.T) {
			if tt.part.Footprint != tt.footprint {
				t.Errorf("Footprint = %q, want %q", tt.part.Footprint, tt.footprint)
			}
			if diff := cmp.Diff(tt.labels, tt.part.Labels()); diff != "" {
				t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
			}
			left := tt.part.Arrangement.LeftSide
			if left == nil || left.Direction != circuit.TopToBottom {
				t.Fatalf("LeftSide = %+v, want top-to-bottom", left)
			}
			if diff := cmp.Diff(tt.labels, left.Pins); diff != "" {
				t.Errorf("LeftSide pins mismatch (-want +got):\n%s", diff)
			}
			if tt.part.PinCount() != len(tt.labels) {
				t.Errorf("PinCount() = %d", tt.part.PinCount())
			}
		})
	}
}

func TestChip(t *testing.T) {
	c := TL072.Chip("BUF1_U")
	if c.Kind != circuit.KindChip || c.Name != "BUF1_U" || c.Footprint != "soic8" {
		t.Errorf("Chip() = %+v", c)
	}
	if !c.HasPin("INA_P") || !c.HasPin("pin3") {
		t.Error("chip is missing TL072 pins")
	}

	// The component owns its tables.
	c.PinLabels["pin1"] = "CHANGED"
	c.Arrangement.LeftSide.Pins[0] = "CHANGED"
	c.Supplier["jlcpcb"][0] = "CHANGED"
	if TL072.PinLabels["pin1"] != "OUTA" || TL072.Arrangement.LeftSide.Pins[0] != "INA_P" || TL072.Supplier["jlcpcb"][0] != "C6961" {
		t.Error("modifying a chip changed the part library")
	}

	dip := TL072.Chip("U2", WithFootprint("dip8"))
	if dip.Footprint != "dip8" {
		t.Errorf("WithFootprint: Footprint = %q", dip.Footprint)
	}
	if keep := TL072.Chip("U3", WithFootprint("")); keep.Footprint != "soic8" {
		t.Errorf("WithFootprint(\"\"): Footprint = %q", keep.Footprint)
	}

	if j := ScrewTerminal2.Chip("J1"); j.Supplier != nil {
		t.Errorf("Supplier = %v, want nil", j.Supplier)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"TL072", "tl072", "screwterminal3", "StereoJack"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
		}
	}

	_, err := Lookup("NE5532")
	if !errors.Is(err, errors.ErrCodePartNotFound) {
		t.Errorf("Lookup(NE5532) error = %v, want PART_NOT_FOUND", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{"MonoJack", "ScrewTerminal2", "ScrewTerminal3", "ScrewTerminal6", "StereoJack", "TL072"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if len(All()) != len(want) {
		t.Errorf("All() len = %d", len(All()))
	}
}
