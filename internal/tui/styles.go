// Package tui provides terminal output and prompts for rcli.
//
// Colors are AdaptiveColor for light/dark terminal support. Call CheckNoColor
// before styled output to honor NO_COLOR and TERM=dumb.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // styling API
var (
	// ColorPrimary is blue, used for headings and prompts.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for valid signatures and written files.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for errors and invalid signatures.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies faint formatting.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// DefaultBoxWidth is the width of summary boxes.
const DefaultBoxWidth = 65

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Key     lipgloss.Style
}

// NewOutputStyles creates the common output styles.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Dim:     lipgloss.NewStyle().Foreground(ColorMuted),
		Key:     lipgloss.NewStyle().Foreground(ColorMuted).Bold(true),
	}
}

// CheckNoColor switches lipgloss to plain ASCII when colors are unsupported.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns false if NO_COLOR is set (any value, including empty)
// or TERM=dumb. See https://no-color.org/.
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// BoxBorder defines the characters used for box borders.
type BoxBorder struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Top, Bottom, Left, Right                   string
	MiddleLeft, MiddleRight                    string
}

// DefaultBorder uses rounded corners.
//
//nolint:gochecknoglobals // styling API
var DefaultBorder = BoxBorder{
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	MiddleLeft:  "├",
	MiddleRight: "┤",
}

// BoxStyle renders a titled, bordered box.
type BoxStyle struct {
	Width  int
	Border BoxBorder
}

// NewBoxStyle returns a BoxStyle with the default width and border.
func NewBoxStyle() *BoxStyle {
	return &BoxStyle{Width: DefaultBoxWidth, Border: DefaultBorder}
}

// Render renders title above a divider and the (possibly multi-line) content.
func (b *BoxStyle) Render(title, content string) string {
	inner := b.Width - 2
	var sb strings.Builder

	sb.WriteString(b.Border.TopLeft + strings.Repeat(b.Border.Top, inner) + b.Border.TopRight + "\n")
	sb.WriteString(b.Border.Left + " " + padRight(title, inner-1) + b.Border.Right + "\n")
	sb.WriteString(b.Border.MiddleLeft + strings.Repeat(b.Border.Top, inner) + b.Border.MiddleRight + "\n")
	for _, line := range strings.Split(content, "\n") {
		sb.WriteString(b.Border.Left + " " + padRight(line, inner-1) + b.Border.Right + "\n")
	}
	sb.WriteString(b.Border.BottomLeft + strings.Repeat(b.Border.Bottom, inner) + b.Border.BottomRight)
	return sb.String()
}

// padRight pads s to width visible cells. Longer strings are returned unchanged.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
