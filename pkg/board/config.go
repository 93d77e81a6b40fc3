package board

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/layout"
)

// Config describes a board: its outline, how its modules are arranged on
// the schematic, and the modules themselves.
type Config struct {
	Name        string      `toml:"name" validate:"required,declname"`
	Width       string      `toml:"width" validate:"required,dimension"`
	Height      string      `toml:"height" validate:"required,dimension"`
	Arrangement Arrangement `toml:"arrangement"`
	Modules     []Module    `toml:"modules" validate:"unique=Name,dive"`
}

// Arrangement selects the schematic arrangement of the board's modules.
type Arrangement struct {
	// Axis is "column" (default) or "row".
	Axis string `toml:"axis,omitempty" validate:"omitempty,oneof=column row"`
	// Size is the module height (column) or width (row). 0 uses the
	// axis default.
	Size float64 `toml:"size,omitempty" validate:"gte=0"`
	// Gap between modules. Unset uses layout.DefaultGap; 0 is honoured.
	Gap *float64 `toml:"gap,omitempty" validate:"omitempty,gte=0"`
	// GridSize is the schematic grid pitch inside each module.
	GridSize float64 `toml:"grid_size,omitempty" validate:"gte=0"`
}

// Module is one module instance on the board.
type Module struct {
	Kind   string            `toml:"kind" validate:"required"`
	Name   string            `toml:"name" validate:"required,declname"`
	PCBX   float64           `toml:"pcb_x"`
	PCBY   float64           `toml:"pcb_y"`
	Params map[string]string `toml:"params,omitempty"`
}

// AxisOrDefault returns the configured axis, defaulting to column.
func (a Arrangement) AxisOrDefault() layout.Axis {
	if a.Axis == "" {
		return layout.AxisColumn
	}
	return layout.Axis(a.Axis)
}

// SizeOrDefault returns the configured module size or the axis default.
func (a Arrangement) SizeOrDefault() float64 {
	if a.Size == 0 {
		return a.AxisOrDefault().DefaultSize()
	}
	return a.Size
}

// GapOrDefault returns the configured gap or layout.DefaultGap.
func (a Arrangement) GapOrDefault() float64 {
	if a.Gap == nil {
		return layout.DefaultGap
	}
	return *a.Gap
}

// dimensionRe matches board outline sizes such as "80mm" or "2.5in".
var dimensionRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(mm|cm|in|mil)$`)

// LoadConfig reads and validates a TOML board config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "board config %s not found", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a TOML board config. Unknown keys are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(cfg Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}
