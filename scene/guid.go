package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidGUID is returned when a GUID string is neither 32 hex digits
// nor the dashed 8-4-4-4-12 form.
var ErrInvalidGUID = errors.New("scene: invalid GUID")

// GUID identifies an asset, such as a lightmap texture.
type GUID struct {
	A, B, C, D uint32
}

// ParseGUID parses 32 hex digits, optionally split by dashes as
// 8-4-4-4-12. The empty string parses to the zero GUID.
func ParseGUID(s string) (GUID, error) {
	if s == "" {
		return GUID{}, nil
	}
	hex := s
	if len(s) == 36 {
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
		}
		hex = strings.ReplaceAll(s, "-", "")
	}
	if len(hex) != 32 {
		return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
	}

	var parts [4]uint32
	for i := range parts {
		v, err := strconv.ParseUint(hex[i*8:(i+1)*8], 16, 32)
		if err != nil {
			return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
		}
		parts[i] = uint32(v)
	}
	return GUID{A: parts[0], B: parts[1], C: parts[2], D: parts[3]}, nil
}

// String returns the GUID as 32 lowercase hex digits.
func (g GUID) String() string {
	return fmt.Sprintf("%08x%08x%08x%08x", g.A, g.B, g.C, g.D)
}

// IsZero reports whether g is the empty GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// MarshalYAML implements yaml.Marshaler.
func (g GUID) MarshalYAML() (any, error) {
	return g.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GUID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a string", ErrInvalidGUID, value.Line)
	}
	parsed, err := ParseGUID(value.Value)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
