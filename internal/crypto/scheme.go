package crypto

import (
	"strings"

	"github.com/mrz1836/rcli/internal/errors"
)

// Scheme identifies a signing algorithm family.
type Scheme uint8

const (
	// SchemeBlake3 is the symmetric keyed-hash scheme (BLAKE3 keyed mode, 32-byte key).
	SchemeBlake3 Scheme = iota + 1

	// SchemeEd25519 is the asymmetric signature scheme (32-byte seed, 64-byte signature).
	SchemeEd25519
)

var schemeNames = map[Scheme]string{ //nolint:gochecknoglobals // Immutable lookup table
	SchemeBlake3:  "blake3",
	SchemeEd25519: "ed25519",
}

// Schemes returns every supported scheme in display order.
func Schemes() []Scheme {
	return []Scheme{SchemeBlake3, SchemeEd25519}
}

// SchemeNames returns the string tags of every supported scheme.
func SchemeNames() []string {
	all := Schemes()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.String())
	}
	return names
}

// ParseScheme converts a user-supplied tag into a Scheme.
// Matching is case-insensitive; unknown tags return ErrInvalidScheme.
func ParseScheme(name string) (Scheme, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for s, n := range schemeNames {
		if n == normalized {
			return s, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidScheme, "%q must be one of %v", name, SchemeNames())
}

// String returns the tag used on the command line and in config files.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the supported schemes.
func (s Scheme) Valid() bool {
	_, ok := schemeNames[s]
	return ok
}

// Asymmetric reports whether the scheme separates signing and verification keys.
func (s Scheme) Asymmetric() bool {
	return s == SchemeEd25519
}

// MarshalText implements encoding.TextMarshaler so schemes render as tags in JSON and YAML.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(errors.ErrUnsupportedScheme, "scheme %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
