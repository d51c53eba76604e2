package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "blake3", cfg.Text.Format)
	assert.Equal(t, ".", cfg.Text.KeyDir)
	assert.Equal(t, 16, cfg.GenPass.Length)
	assert.True(t, cfg.GenPass.Uppercase && cfg.GenPass.Lowercase && cfg.GenPass.Numbers && cfg.GenPass.Symbols)
	assert.Equal(t, "standard", cfg.Base64.Format)
	assert.Equal(t, "json", cfg.CSV.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)

	require.NoError(t, Validate(cfg), "defaults must validate")
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "read_timeout: 10s")

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)
}
