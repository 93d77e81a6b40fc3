package parts

import (
	"slices"
	"strings"

	"github.com/matzehuels/audiocircuits/pkg/errors"
)

var registry = map[string]Part{}

func init() {
	for _, p := range []Part{TL072, ScrewTerminal2, ScrewTerminal3, ScrewTerminal6, MonoJack, StereoJack} {
		registry[strings.ToLower(p.Name)] = p
	}
}

// Lookup returns the part with the given name, case-insensitively.
func Lookup(name string) (Part, error) {
	p, ok := registry[strings.ToLower(name)]
	if !ok {
		return Part{}, errors.New(errors.ErrCodePartNotFound, "unknown part %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns the names of all registered parts, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, p := range registry {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return names
}

// All returns every registered part ordered by name.
func All() []Part {
	names := Names()
	out := make([]Part, len(names))
	for i, n := range names {
		out[i] = registry[strings.ToLower(n)]
	}
	return out
}
