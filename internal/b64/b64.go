// Package b64 encodes and decodes base64 in the two alphabets rcli supports.
package b64

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/mrz1836/rcli/internal/errors"
)

// Format selects a base64 alphabet.
type Format string

// Supported formats.
const (
	// Standard is RFC 4648 section 4, padded.
	Standard Format = "standard"
	// URLSafe is RFC 4648 section 5 without padding. Signatures use it.
	URLSafe Format = "url_safe"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{Standard, URLSafe}
}

// ParseFormat parses a format name. "urlsafe" and "url-safe" are accepted for URLSafe.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Standard):
		return Standard, nil
	case string(URLSafe), "urlsafe", "url-safe":
		return URLSafe, nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidBase64Format, "%q (want standard or url_safe)", s)
	}
}

func (f Format) encoding() (*base64.Encoding, error) {
	switch f {
	case Standard:
		return base64.StdEncoding, nil
	case URLSafe:
		return base64.RawURLEncoding, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidBase64Format, "%q", string(f))
	}
}

// EncodeBytes encodes data with format.
func EncodeBytes(data []byte, format Format) (string, error) {
	enc, err := format.encoding()
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(data), nil
}

// DecodeString decodes s with format. Surrounding whitespace is ignored.
func DecodeString(s string, format Format) ([]byte, error) {
	enc, err := format.encoding()
	if err != nil {
		return nil, err
	}
	out, err := enc.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBase64Decode, err)
	}
	return out, nil
}

// Encode reads r fully and returns its encoding.
func Encode(r io.Reader, format Format) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w: %w", errors.ErrIO, err)
	}
	return EncodeBytes(data, format)
}

// Decode reads r fully and returns the decoded bytes.
func Decode(r io.Reader, format Format) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w: %w", errors.ErrIO, err)
	}
	return DecodeString(string(bytes.TrimSpace(data)), format)
}
