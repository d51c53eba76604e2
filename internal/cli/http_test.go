package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestHTTPServe_Errors(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "", "http", "serve", "-p", "70000")
		require.ErrorIs(t, res.err, errors.ErrValueOutOfRange)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	})

	t.Run("directory does not exist", func(t *testing.T) {
		newTestEnv(t)

		res := runCmd(t, "", "http", "serve", "-d", "missing", "-p", "18080")
		require.ErrorIs(t, res.err, errors.ErrNotADirectory)
		assert.Equal(t, ExitError, ExitCodeForError(res.err))
	})

	t.Run("directory from config", func(t *testing.T) {
		newTestEnv(t)
		t.Setenv("RCLI_HTTP_DIR", "also-missing")

		res := runCmd(t, "", "http", "serve", "-p", "18080")
		require.ErrorIs(t, res.err, errors.ErrNotADirectory)
		assert.Contains(t, res.err.Error(), "also-missing")
	})
}
