package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
)

// Output formats accepted by NewOutput.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Field is one labeled value in a command result.
type Field struct {
	Label string
	Value string
}

// Output writes command results and messages.
type Output interface {
	Success(msg string)
	Error(err error)
	Warning(msg string)
	Info(msg string)
	// Fields prints labeled values; JSON output ignores it in favor of JSON.
	Fields(title string, fields []Field)
	// JSON writes v as JSON. Text output pretty-prints it as well.
	JSON(v any) error
	// IsJSON reports whether the output is machine-readable.
	IsJSON() bool
}

// NewOutput creates the output for format ("text" or "json").
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}

// TTYOutput writes styled, human-readable output.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a TTYOutput. NO_COLOR is honored.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()
	return &TTYOutput{w: w, styles: NewOutputStyles()}
}

// Success prints a green ✓ line.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error prints a red ✗ line, followed by a suggested action when one is known.
func (o *TTYOutput) Error(err error) {
	_, action := rclierrors.Actionable(err)
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
	if action != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+action))
	}
}

// Warning prints a yellow ⚠ line.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints a blue line.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// Fields prints a box of aligned label/value lines.
func (o *TTYOutput) Fields(title string, fields []Field) {
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, o.styles.Key.Render(padRight(f.Label+":", width+1))+" "+f.Value)
	}
	_, _ = fmt.Fprintln(o.w, NewBoxStyle().Render(StyleBold.Render(title), strings.Join(lines, "\n")))
}

// JSON pretty-prints v.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// IsJSON implements Output.
func (o *TTYOutput) IsJSON() bool { return false }

// JSONOutput writes one JSON object per message.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Success writes {"type":"success","message":...}.
func (o *JSONOutput) Success(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "success", Message: msg})
}

// Error writes the user message, raw error and suggested action.
func (o *JSONOutput) Error(err error) {
	msg, action := rclierrors.Actionable(err)
	out := jsonError{Type: "error", Message: msg, Suggestion: action}
	if msg != err.Error() {
		out.Details = err.Error()
	}
	_ = encodeJSON(o.w, out)
}

// Warning writes {"type":"warning","message":...}.
func (o *JSONOutput) Warning(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "warning", Message: msg})
}

// Info writes {"type":"info","message":...}.
func (o *JSONOutput) Info(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "info", Message: msg})
}

// Fields is a no-op; JSON callers emit a typed result with JSON instead.
func (o *JSONOutput) Fields(string, []Field) {}

// JSON writes v.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// IsJSON implements Output.
func (o *JSONOutput) IsJSON() bool { return true }

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
