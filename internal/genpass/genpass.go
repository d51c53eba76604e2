// Package genpass generates random printable passwords.
// It is also the key source for the keyed-hash signing scheme.
package genpass

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Character classes. Lowercase deliberately omits 'o'.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnpqrstuvwxyz"
	Numbers   = "0123456789"
	Symbols   = "@#$%^&*?"
)

// Options controls which character classes a password draws from.
// The zero value enables every class; Length must be set.
type Options struct {
	Length      int
	NoUppercase bool
	NoLowercase bool
	NoNumbers   bool
	NoSymbols   bool
}

// Charset returns the alphabet selected by the options.
func (o Options) Charset() string {
	var b strings.Builder
	if !o.NoUppercase {
		b.WriteString(Uppercase)
	}
	if !o.NoLowercase {
		b.WriteString(Lowercase)
	}
	if !o.NoNumbers {
		b.WriteString(Numbers)
	}
	if !o.NoSymbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Generate returns a password drawn uniformly from the selected alphabet
// using the process-wide secure random source.
func Generate(opts Options) (string, error) {
	return GenerateFrom(rand.Reader, opts)
}

// GenerateFrom is Generate with an explicit random source.
func GenerateFrom(r io.Reader, opts Options) (string, error) {
	if opts.Length < 1 || opts.Length > constants.MaxPasswordLength {
		return "", errors.Wrapf(errors.ErrValueOutOfRange,
			"length must be between 1 and %d, got %d", constants.MaxPasswordLength, opts.Length)
	}

	charset := opts.Charset()
	if charset == "" {
		return "", errors.ErrEmptyCharset
	}

	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, opts.Length)
	for i := range out {
		idx, err := rand.Int(r, limit)
		if err != nil {
			return "", errors.Wrap(err, "reading random source")
		}
		out[i] = charset[idx.Int64()]
	}
	return string(out), nil
}

// Strength scores a password from 0 (weak) to 4 (strong) with zxcvbn's
// crack-time estimate.
func Strength(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
