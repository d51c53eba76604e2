package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
)

func TestHasColorSupport(t *testing.T) {
	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})
}

func TestBoxStyle_Render(t *testing.T) {
	box := &BoxStyle{Width: 20, Border: DefaultBorder}
	out := box.Render("Keys", "a\nbb")
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "╭"+strings.Repeat("─", 18)+"╮", lines[0])
	assert.Equal(t, "│ Keys             │", lines[1])
	assert.Equal(t, "│ bb               │", lines[4])
	for _, l := range lines {
		assert.Equal(t, 20, len([]rune(l)))
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
}

func TestNewOutput(t *testing.T) {
	assert.IsType(t, &JSONOutput{}, NewOutput(&bytes.Buffer{}, "json"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&bytes.Buffer{}, "text"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&bytes.Buffer{}, ""))
}

func TestTTYOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	out.Success("signature is valid")
	out.Warning("careful")
	out.Info("hello")
	out.Error(rclierrors.Wrap(rclierrors.ErrKeyFileExists, "blake3.key"))
	out.Fields("Generated keys", []Field{{Label: "scheme", Value: "ed25519"}, {Label: "private", Value: "ed25519.sk"}})

	s := buf.String()
	assert.Contains(t, s, "✓ signature is valid")
	assert.Contains(t, s, "⚠ careful")
	assert.Contains(t, s, "hello")
	assert.Contains(t, s, "✗ blake3.key: key file already exists")
	assert.Contains(t, s, "▸ Try: Pass --force")
	assert.Contains(t, s, "scheme:  ed25519")
	assert.False(t, out.IsJSON())
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	assert.True(t, out.IsJSON())

	out.Error(rclierrors.Wrap(rclierrors.ErrKeyFileExists, "blake3.key"))
	var e map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	assert.Equal(t, "error", e["type"])
	assert.Equal(t, "Key files already exist in the output directory.", e["message"])
	assert.Contains(t, e["details"], "blake3.key")
	assert.NotEmpty(t, e["suggestion"])

	buf.Reset()
	out.Fields("ignored", []Field{{Label: "a", Value: "b"}})
	assert.Empty(t, buf.String())

	require.NoError(t, out.JSON(map[string]bool{"valid": true}))
	assert.JSONEq(t, `{"valid":true}`, buf.String())

	buf.Reset()
	out.Success("done")
	assert.JSONEq(t, `{"type":"success","message":"done"}`, buf.String())
}
