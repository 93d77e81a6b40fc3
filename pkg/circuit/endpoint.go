package circuit

import (
	"strings"

	"github.com/matzehuels/audiocircuits/pkg/errors"
)

const (
	netPrefix   = "net."
	portSep     = " > "
	selectorDot = "."
)

// Port returns the selector for a component pin: ".COMP > .PIN".
func Port(component, pin string) string {
	return selectorDot + component + portSep + selectorDot + pin
}

// NetRef returns the selector for a named net: "net.NAME".
func NetRef(net string) string {
	return netPrefix + net
}

// Endpoint is a parsed trace endpoint. Exactly one of Net or Component is
// set. Pin is set together with Component.
type Endpoint struct {
	Component string
	Pin       string
	Net       string
}

// IsNet reports whether e refers to a net.
func (e Endpoint) IsNet() bool { return e.Net != "" }

// String formats e back into selector syntax.
func (e Endpoint) String() string {
	if e.IsNet() {
		return NetRef(e.Net)
	}
	return Port(e.Component, e.Pin)
}

// ParseEndpoint parses a selector produced by [Port] or [NetRef].
func ParseEndpoint(s string) (Endpoint, error) {
	if name, ok := strings.CutPrefix(s, netPrefix); ok {
		if name == "" {
			return Endpoint{}, errors.New(errors.ErrCodeInvalidDeclaration, "empty net name in %q", s)
		}
		return Endpoint{Net: name}, nil
	}

	comp, pin, ok := strings.Cut(s, portSep)
	if !ok {
		return Endpoint{}, errors.New(errors.ErrCodeInvalidDeclaration, "malformed endpoint %q (want %q or %q)", s, ".COMP > .PIN", "net.NAME")
	}
	comp, okc := strings.CutPrefix(comp, selectorDot)
	pin, okp := strings.CutPrefix(pin, selectorDot)
	if !okc || !okp || comp == "" || pin == "" {
		return Endpoint{}, errors.New(errors.ErrCodeInvalidDeclaration, "malformed endpoint %q (want %q)", s, ".COMP > .PIN")
	}
	return Endpoint{Component: comp, Pin: pin}, nil
}
