package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// lineWith returns the first line of out containing substr.
func lineWith(t *testing.T, out, substr string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	t.Fatalf("no line containing %q in:\n%s", substr, out)
	return ""
}

func TestNewConfigShowCmd(t *testing.T) {
	t.Parallel()

	cmd := newConfigShowCmd(&ConfigShowFlags{})
	assert.Equal(t, "show", cmd.Use)

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "yaml", flag.DefValue)
}

func TestConfigShow_YAMLDefaults(t *testing.T) {
	newTestEnv(t)

	res := runCmd(t, "", "config", "show")
	require.NoError(t, res.err)

	assert.Contains(t, lineWith(t, res.stdout, "format: blake3"), "# default")
	assert.Contains(t, lineWith(t, res.stdout, "read_timeout: 10s"), "# default")

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &cfg))
	assert.Equal(t, config.DefaultConfig().GenPass, cfg.GenPass)
}

func TestConfigShow_Sources(t *testing.T) {
	dir := newTestEnv(t)

	globalPath, err := config.GlobalConfigPath()
	require.NoError(t, err)
	writeFile(t, filepath.Dir(globalPath), constants.ConfigFileName, "genpass:\n  length: 20\nhttp:\n  port: 9000\n")
	writeFile(t, dir, filepath.Join(constants.AppHome, constants.ConfigFileName), "http:\n  port: 9100\n")
	t.Setenv("RCLI_CSV_FORMAT", "yaml")

	res := runCmd(t, "", "config", "show")
	require.NoError(t, res.err)

	assert.Contains(t, lineWith(t, res.stdout, "length: 20"), "# global")
	assert.Contains(t, lineWith(t, res.stdout, "port: 9100"), "# project")
	assert.Contains(t, lineWith(t, res.stdout, "format: yaml"), "# env")
}

func TestConfigShow_JSON(t *testing.T) {
	newTestEnv(t)
	t.Setenv("RCLI_TEXT_FORMAT", "ed25519")

	res := runCmd(t, "", "config", "show", "--output", "json")
	require.NoError(t, res.err)

	var got struct {
		Config  config.Config           `json:"config"`
		Sources map[string]ConfigSource `json:"sources"`
	}
	decodeJSON(t, res.stdout, &got)
	assert.Equal(t, "ed25519", got.Config.Text.Format)
	assert.Equal(t, SourceEnv, got.Sources["text.format"])
	assert.Equal(t, SourceDefault, got.Sources["genpass.length"])
}

func TestConfigShow_UnsupportedFormat(t *testing.T) {
	newTestEnv(t)

	res := runCmd(t, "", "config", "show", "-o", "toml")
	require.ErrorIs(t, res.err, errors.ErrUnsupportedOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestRunConfigShow_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := runConfigShow(ctx, &buf, &ConfigShowFlags{OutputFormat: "yaml"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestWalkScalars(t *testing.T) {
	t.Parallel()

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a:\n  b: 1\n  c:\n    d: x\ne: true\n"), &root))

	var keys []string
	walkScalars(&root, "", func(key string, _ *yaml.Node) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"a.b", "a.c.d", "e"}, keys)
}

func TestLoadConfigKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "text:\n  format: ed25519\n")

	assert.Equal(t, map[string]bool{"text.format": true}, loadConfigKeys(path))
	assert.Nil(t, loadConfigKeys(filepath.Join(dir, "missing.yaml")))
	assert.Nil(t, loadConfigKeys(writeFile(t, dir, "bad.yaml", "::: not yaml [")))
}
