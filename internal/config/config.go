// Package config provides configuration management for rcli with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by each command when the flag is set)
//  2. Environment variables (RCLI_* prefix, also read from a .env file)
//  3. Project config (.rcli/config.yaml)
//  4. Global config (~/.rcli/config.yaml, or $RCLI_HOME/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for rcli.
type Config struct {
	// Text holds defaults for 'rcli text sign|verify|genkey'.
	Text TextConfig `yaml:"text" json:"text" mapstructure:"text"`

	// GenPass holds defaults for 'rcli genpass'.
	GenPass GenPassConfig `yaml:"genpass" json:"genpass" mapstructure:"genpass"`

	// Base64 holds defaults for 'rcli base64'.
	Base64 Base64Config `yaml:"base64" json:"base64" mapstructure:"base64"`

	// CSV holds defaults for 'rcli csv'.
	CSV CSVConfig `yaml:"csv" json:"csv" mapstructure:"csv"`

	// HTTP holds defaults for 'rcli http serve'.
	HTTP HTTPConfig `yaml:"http" json:"http" mapstructure:"http"`
}

// TextConfig contains signing defaults.
type TextConfig struct {
	// Format is the default signing scheme: "blake3" or "ed25519".
	// Default: "blake3"
	Format string `yaml:"format" json:"format" mapstructure:"format"`

	// KeyDir is where 'rcli text genkey' writes keys when --output-path is not given.
	// Default: "." (current directory)
	KeyDir string `yaml:"key_dir" json:"key_dir" mapstructure:"key_dir"`
}

// GenPassConfig contains password generation defaults.
type GenPassConfig struct {
	// Length is the password length. Default: 16, valid range: 1-1024
	Length int `yaml:"length" json:"length" mapstructure:"length"`

	Uppercase bool `yaml:"uppercase" json:"uppercase" mapstructure:"uppercase"`
	Lowercase bool `yaml:"lowercase" json:"lowercase" mapstructure:"lowercase"`
	Numbers   bool `yaml:"numbers" json:"numbers" mapstructure:"numbers"`
	Symbols   bool `yaml:"symbols" json:"symbols" mapstructure:"symbols"`
}

// Base64Config contains base64 defaults.
type Base64Config struct {
	// Format is "standard" or "url_safe". Default: "standard"
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

// CSVConfig contains CSV conversion defaults.
type CSVConfig struct {
	// Format is the output format: "json", "yaml" or "toml". Default: "json"
	Format string `yaml:"format" json:"format" mapstructure:"format"`

	// Delimiter is a single character, or "tab". Default: ","
	Delimiter string `yaml:"delimiter" json:"delimiter" mapstructure:"delimiter"`
}

// HTTPConfig contains static file server defaults.
type HTTPConfig struct {
	// Dir is the directory to serve. Default: "."
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`

	// Port is the listen port. Default: 8080
	Port int `yaml:"port" json:"port" mapstructure:"port"`

	// ReadTimeout bounds request header reads. Default: 10s
	ReadTimeout time.Duration `yaml:"read_timeout" json:"read_timeout" mapstructure:"read_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 5s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}
