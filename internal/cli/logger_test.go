package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/logging"
)

func TestSelectLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		verbose  bool
		quiet    bool
		expected zerolog.Level
	}{
		{name: "default", expected: zerolog.InfoLevel},
		{name: "verbose", verbose: true, expected: zerolog.DebugLevel},
		{name: "quiet", quiet: true, expected: zerolog.WarnLevel},
		{name: "verbose wins", verbose: true, quiet: true, expected: zerolog.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, selectLevel(tc.verbose, tc.quiet))
		})
	}
}

func TestInitLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger := InitLoggerWithWriter(false, true, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger = InitLoggerWithWriter(true, false, &buf)
	logger.Debug().Str("scheme", "blake3").Msg("debugging")
	assert.Contains(t, buf.String(), `"scheme":"blake3"`)
	assert.Contains(t, buf.String(), `"time"`)
}

func TestCreateLogFileWriter(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)

	w, err := createLogFileWriter()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	_, err = w.Write([]byte("password=supersecret123\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(home, constants.LogsDir, constants.CLILogFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "supersecret123")
	assert.Contains(t, string(data), logging.RedactedValue)
}

func TestInitLogger_WritesLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)
	t.Cleanup(CloseLogFile)

	logger := InitLogger(false, false)
	logger.Info().Str("command", "rcli genpass").Msg("log file check")
	CloseLogFile()

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, constants.LogsDir, constants.CLILogFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log file check")
}
