package board

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
	"github.com/matzehuels/audiocircuits/pkg/observability"
)

const dualBufferTOML = `
name = "dual-buffer"
width = "80mm"
height = "50mm"

[arrangement]
axis = "column"

[[modules]]
kind = "opamp-buffer"
name = "BUF_A"
pcb_x = -20.0
pcb_y = -10.0

[[modules]]
kind = "opamp-buffer"
name = "BUF_B"
pcb_x = -20.0
pcb_y = 10.0

[modules.params]
input_cap = "1uF"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(dualBufferTOML))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	want := DualBuffer()
	want.Modules[1].Params = map[string]string{"input_cap": "1uF"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"syntax", `name = `, "decode"},
		{"unknown key", "name = \"b\"\nwidth = \"1mm\"\nheight = \"1mm\"\ncolour = \"red\"", "unknown keys: colour"},
		{"missing name", "width = \"1mm\"\nheight = \"1mm\"", "name is a required field"},
		{"bad dimension", "name = \"b\"\nwidth = \"wide\"\nheight = \"1mm\"", "width must be a length"},
		{"bad axis", "name = \"b\"\nwidth = \"1mm\"\nheight = \"1mm\"\n[arrangement]\naxis = \"diagonal\"", "arrangement.axis must be one of"},
		{"negative gap", "name = \"b\"\nwidth = \"1mm\"\nheight = \"1mm\"\n[arrangement]\ngap = -1.0", "arrangement.gap"},
		{"module without kind", "name = \"b\"\nwidth = \"1mm\"\nheight = \"1mm\"\n[[modules]]\nname = \"M\"", "modules[0].kind is a required field"},
		{"bad module name", "name = \"b\"\nwidth = \"1mm\"\nheight = \"1mm\"\n[[modules]]\nkind = \"opamp-buffer\"\nname = \"M 1\"", "modules[0].name must not contain whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDuplicateModuleNames(t *testing.T) {
	cfg := DualBuffer()
	cfg.Modules[1].Name = "BUF_A"
	if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Validate() error = %v, want INVALID_CONFIG", err)
	}
}

func TestValidatorIsShared(t *testing.T) {
	v1, tr1 := configValidator()
	v2, tr2 := configValidator()
	if v1 != v2 || tr1 != tr2 {
		t.Error("configValidator() built a new validator on a second call")
	}

	// Custom rules stay registered across calls.
	for range 2 {
		cfg := DualBuffer()
		cfg.Width = "80"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "must be a length") {
			t.Errorf("Validate() error = %v, want dimension message", err)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir() + "/missing.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	cfg := DualBuffer()
	gap := 0.0
	cfg.Arrangement.Gap = &gap

	var buf bytes.Buffer
	if err := WriteConfig(cfg, &buf); err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}
	got, err := ParseConfig(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseConfig() error = %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestArrangementDefaults(t *testing.T) {
	var a Arrangement
	if a.AxisOrDefault() != layout.AxisColumn {
		t.Errorf("AxisOrDefault() = %v", a.AxisOrDefault())
	}
	if a.SizeOrDefault() != layout.DefaultModuleHeight {
		t.Errorf("SizeOrDefault() = %v", a.SizeOrDefault())
	}
	if a.GapOrDefault() != layout.DefaultGap {
		t.Errorf("GapOrDefault() = %v", a.GapOrDefault())
	}

	row := Arrangement{Axis: "row"}
	if row.SizeOrDefault() != layout.DefaultModuleWidth {
		t.Errorf("row SizeOrDefault() = %v", row.SizeOrDefault())
	}
	zero := 0.0
	if (Arrangement{Gap: &zero}).GapOrDefault() != 0 {
		t.Error("explicit zero gap should be honoured")
	}
}

func TestBuildDualBuffer(t *testing.T) {
	b, err := Build(context.Background(), DualBuffer())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(b.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(b.Groups))
	}
	if b.ComponentCount() != 18 {
		t.Errorf("ComponentCount() = %d, want 18", b.ComponentCount())
	}

	// Module origins come from the column layout: (0,-5) and (0,5). The
	// op-amp sits half a cell right of the origin and 5mm right on the PCB.
	tests := []struct {
		group string
		want  layout.Position
		pcb   circuit.PCBPosition
	}{
		{"BUF_A", layout.Position{SchX: 1.5, SchY: -5}, circuit.PCBPosition{X: -15, Y: -10}},
		{"BUF_B", layout.Position{SchX: 1.5, SchY: 5}, circuit.PCBPosition{X: -15, Y: 10}},
	}
	for _, tt := range tests {
		g, ok := b.Group(tt.group)
		if !ok {
			t.Fatalf("group %s missing", tt.group)
		}
		u, ok := g.Component(tt.group + "_U")
		if !ok {
			t.Fatalf("%s_U missing", tt.group)
		}
		if diff := cmp.Diff(tt.want, u.Sch); diff != "" {
			t.Errorf("%s_U sch mismatch (-want +got):\n%s", tt.group, diff)
		}
		if diff := cmp.Diff(tt.pcb, u.PCB); diff != "" {
			t.Errorf("%s_U pcb mismatch (-want +got):\n%s", tt.group, diff)
		}
	}
}

func TestBuildRow(t *testing.T) {
	cfg := Config{
		Name: "row", Width: "120mm", Height: "40mm",
		Arrangement: Arrangement{Axis: "row"},
		Modules: []Module{
			{Kind: "opamp-buffer", Name: "A"},
			{Kind: "opamp-buffer", Name: "B"},
			{Kind: "opamp-buffer", Name: "C"},
		},
	}
	b, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	wantX := map[string]float64{"A": -14, "B": 0, "C": 14}
	for name, x := range wantX {
		g, _ := b.Group(name)
		u, _ := g.Component(name + "_U")
		if u.Sch.SchX != x+1.5 || u.Sch.SchY != 0 {
			t.Errorf("%s_U sch = %+v, want {%v 0}", name, u.Sch, x+1.5)
		}
	}
}

func TestBuildEmptyBoard(t *testing.T) {
	b, err := Build(context.Background(), Config{Name: "empty", Width: "10mm", Height: "10mm"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(b.Groups) != 0 || b.Groups == nil {
		t.Errorf("Groups = %#v, want empty non-nil", b.Groups)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   errors.Code
	}{
		{"unknown kind", func(c *Config) { c.Modules[0].Kind = "fuzz" }, errors.ErrCodeModuleNotFound},
		{"unknown param", func(c *Config) { c.Modules[0].Params = map[string]string{"gain": "2"} }, errors.ErrCodeInvalidConfig},
		{"invalid config", func(c *Config) { c.Width = "" }, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DualBuffer()
			tt.mutate(&cfg)
			_, err := Build(context.Background(), cfg)
			if errors.GetCode(err) != tt.want {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, DualBuffer()); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestBuildFiresHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	h := &recordingHooks{}
	observability.SetBoardHooks(h)

	if _, err := Build(context.Background(), DualBuffer()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if h.axis != "column" || h.count != 2 {
		t.Errorf("OnArrange got axis=%q count=%d", h.axis, h.count)
	}
	if h.board != "dual-buffer" || h.components != 18 || h.err != nil {
		t.Errorf("OnBuildComplete got %+v", h)
	}
}

func TestBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		cfg, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%s) error = %v", name, err)
		}
		if _, err := Build(context.Background(), cfg); err != nil {
			t.Errorf("Build(%s) error = %v", name, err)
		}
	}
	if _, err := Builtin("nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Builtin(nope) error = %v, want NOT_FOUND", err)
	}
}

type recordingHooks struct {
	observability.NoopBoardHooks
	axis       string
	count      int
	board      string
	components int
	err        error
}

func (h *recordingHooks) OnArrange(_ context.Context, axis string, count int) {
	h.axis, h.count = axis, count
}

func (h *recordingHooks) OnBuildComplete(_ context.Context, board string, components int, _ time.Duration, err error) {
	h.board, h.components, h.err = board, components, err
}
