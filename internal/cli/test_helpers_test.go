package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/constants"
)

// cmdResult captures one command execution.
type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// newTestEnv isolates a test from the user's home, config and working
// directory, and returns the temporary working directory.
func newTestEnv(t *testing.T) string {
	t.Helper()

	t.Setenv(constants.HomeEnvVar, t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, constants.EnvPrefix+"_") && name != constants.HomeEnvVar {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(CloseLogFile)
	return dir
}

// runCmd executes the root command with args, feeding stdin.
func runCmd(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// decodeJSON unmarshals a command's JSON stdout into v.
func decodeJSON(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), "stdout: %s", out)
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
