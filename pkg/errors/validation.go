package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxNameLength bounds component and net identifiers.
const maxNameLength = 128

// ValidateFinite rejects NaN and infinite values. The name is used in the
// message only.
func ValidateFinite(code Code, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidateName validates a component or net identifier.
//
// The rendering engine addresses parts with selectors of the form
// ".NAME > .PIN" and nets as "net.NAME", so names must not contain the
// selector characters '.' and '>'. Validation rules:
//   - No empty names
//   - Maximum length of 128 characters
//   - No whitespace or control characters
//   - No '.' or '>'
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDeclaration, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidDeclaration, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidDeclaration, "name %q contains whitespace or control characters", name)
		}
	}

	if strings.ContainsAny(name, ".>") {
		return New(ErrCodeInvalidDeclaration, "name %q contains selector characters ('.' or '>')", name)
	}

	return nil
}

// ValidatePath validates an output file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
