package config

import (
	"slices"
	"unicode/utf8"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

//nolint:gochecknoglobals // lookup tables
var (
	textFormats   = []string{"blake3", "ed25519"}
	base64Formats = []string{"standard", "url_safe"}
	csvFormats    = []string{"json", "yaml", "toml"}
)

// Validate checks the configuration and returns the first failure found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateTextConfig(&cfg.Text); err != nil {
		return err
	}
	if err := validateGenPassConfig(&cfg.GenPass); err != nil {
		return err
	}
	if !slices.Contains(base64Formats, cfg.Base64.Format) {
		return errors.Wrapf(errors.ErrConfigInvalidBase64,
			"base64.format must be one of %v, got %q", base64Formats, cfg.Base64.Format)
	}
	if err := validateCSVConfig(&cfg.CSV); err != nil {
		return err
	}
	return validateHTTPConfig(&cfg.HTTP)
}

func validateTextConfig(cfg *TextConfig) error {
	if !slices.Contains(textFormats, cfg.Format) {
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.format must be one of %v, got %q", textFormats, cfg.Format)
	}
	if cfg.KeyDir == "" {
		return errors.Wrap(errors.ErrConfigInvalidText, "text.key_dir must not be empty")
	}
	return nil
}

func validateGenPassConfig(cfg *GenPassConfig) error {
	if cfg.Length < 1 || cfg.Length > constants.MaxPasswordLength {
		return errors.Wrapf(errors.ErrConfigInvalidGenPass,
			"genpass.length must be between 1 and %d, got %d", constants.MaxPasswordLength, cfg.Length)
	}
	if !cfg.Uppercase && !cfg.Lowercase && !cfg.Numbers && !cfg.Symbols {
		return errors.Wrap(errors.ErrConfigInvalidGenPass, "genpass must enable at least one character class")
	}
	return nil
}

func validateCSVConfig(cfg *CSVConfig) error {
	if !slices.Contains(csvFormats, cfg.Format) {
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.format must be one of %v, got %q", csvFormats, cfg.Format)
	}
	if cfg.Delimiter != "tab" && utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.delimiter must be a single character or \"tab\", got %q", cfg.Delimiter)
	}
	return nil
}

func validateHTTPConfig(cfg *HTTPConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return errors.Wrapf(errors.ErrConfigInvalidHTTP,
			"http.port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.Dir == "" {
		return errors.Wrap(errors.ErrConfigInvalidHTTP, "http.dir must not be empty")
	}
	if cfg.ReadTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidHTTP,
			"http.read_timeout must be positive, got %s", cfg.ReadTimeout)
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidHTTP,
			"http.shutdown_timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	return nil
}
