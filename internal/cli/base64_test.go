package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestBase64Encode(t *testing.T) {
	t.Run("standard from stdin", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "hello", "base64", "encode")
		require.NoError(t, res.err)
		assert.Equal(t, "aGVsbG8=\n", res.stdout)
	})

	t.Run("url safe drops padding and uses - and _", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "\xfb\xff", "base64", "encode", "--format", "url_safe")
		require.NoError(t, res.err)
		assert.Equal(t, "-_8\n", res.stdout)
	})

	t.Run("format from config", func(t *testing.T) {
		newTestEnv(t)
		t.Setenv("RCLI_BASE64_FORMAT", "url_safe")

		res := runCmd(t, "hello", "base64", "encode")
		require.NoError(t, res.err)
		assert.Equal(t, "aGVsbG8\n", res.stdout)
	})

	t.Run("from file as json", func(t *testing.T) {
		dir := newTestEnv(t)
		path := writeFile(t, dir, "in.txt", "hello")

		res := runCmd(t, "", "-o", "json", "base64", "encode", "-i", path)
		require.NoError(t, res.err)

		var got base64Result
		decodeJSON(t, res.stdout, &got)
		assert.Equal(t, base64Result{Format: "standard", Output: "aGVsbG8="}, got)
	})

	t.Run("unknown format", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "hello", "base64", "encode", "--format", "base32")
		require.ErrorIs(t, res.err, errors.ErrInvalidBase64Format)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	})

	t.Run("missing file", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "", "base64", "encode", "-i", "missing.txt")
		require.ErrorIs(t, res.err, errors.ErrFileNotFound)
	})
}

func TestBase64Decode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "aGVsbG8=\n", "base64", "decode")
		require.NoError(t, res.err)
		assert.Equal(t, "hello", res.stdout)
	})

	t.Run("url safe", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "-_8", "base64", "decode", "--format", "url_safe")
		require.NoError(t, res.err)
		assert.Equal(t, "\xfb\xff", res.stdout)
	})

	t.Run("invalid input", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, strings.Repeat("!", 8), "base64", "decode")
		require.ErrorIs(t, res.err, errors.ErrBase64Decode)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	})
}
