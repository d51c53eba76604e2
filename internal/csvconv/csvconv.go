// Package csvconv converts CSV with a header row into JSON, YAML or TOML.
//
// Each data row becomes a record keyed by the header. JSON and YAML keep the
// header's column order; TOML tables are emitted with sorted keys under "records".
package csvconv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/errors"
)

// Format is an output format.
type Format string

// Supported output formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{JSON, YAML, TOML}
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case JSON, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedOutputFormat, "%q (want json, yaml or toml)", s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Options controls a conversion.
type Options struct {
	Format    Format
	Delimiter rune
}

// Field is one column of a record.
type Field struct {
	Key   string
	Value string
}

// Record is one data row in header order.
type Record []Field

// MarshalJSON emits the record as an object in header order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits the record as a mapping in header order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return node, nil
}

func (r Record) asMap() map[string]string {
	m := make(map[string]string, len(r))
	for _, f := range r {
		m[f.Key] = f.Value
	}
	return m
}

// Read parses CSV from r. A leading byte order mark is removed.
func Read(r io.Reader, delimiter rune) ([]Record, error) {
	if err := validateDelimiter(delimiter); err != nil {
		return nil, err
	}

	bom := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, bom))
	cr.Comma = delimiter

	header, err := cr.Read()
	if err == io.EOF {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	records := []Record{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		rec := make(Record, len(header))
		for i, key := range header {
			rec[i] = Field{Key: key, Value: row[i]}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Write encodes records to w in format.
func Write(w io.Writer, records []Record, format Format) error {
	var (
		out []byte
		err error
	)
	switch format {
	case JSON:
		out, err = json.MarshalIndent(records, "", "  ")
		out = append(out, '\n')
	case YAML:
		out, err = yaml.Marshal(records)
	case TOML:
		tables := make([]map[string]string, len(records))
		for i, rec := range records {
			tables[i] = rec.asMap()
		}
		out, err = toml.Marshal(map[string]any{"records": tables})
	default:
		return errors.Wrapf(errors.ErrUnsupportedOutputFormat, "%q", string(format))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing output: %w: %w", errors.ErrIO, err)
	}
	return nil
}

// Convert reads CSV from r and writes it to w as opts.Format.
// It returns the number of records converted.
func Convert(r io.Reader, w io.Writer, opts Options) (int, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return 0, err
	}

	records, err := Read(r, opts.Delimiter)
	if err != nil {
		return 0, err
	}
	if err := Write(w, records, opts.Format); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ParseDelimiter accepts a single character, or "tab" / "\t" for a tab.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Wrapf(errors.ErrInvalidDelimiter, "%q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := validateDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}

func validateDelimiter(r rune) error {
	if r == 0 || r == '"' || r == '\r' || r == '\n' || !utf8.ValidRune(r) || r == utf8.RuneError {
		return errors.Wrapf(errors.ErrInvalidDelimiter, "%q", r)
	}
	return nil
}
