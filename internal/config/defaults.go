package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/constants"
)

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Format: "blake3",
			KeyDir: ".",
		},
		GenPass: GenPassConfig{
			Length:    constants.DefaultPasswordLength,
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
		},
		Base64: Base64Config{
			Format: "standard",
		},
		CSV: CSVConfig{
			Format:    "json",
			Delimiter: ",",
		},
		HTTP: HTTPConfig{
			Dir:             ".",
			Port:            constants.DefaultHTTPPort,
			ReadTimeout:     constants.DefaultReadHeaderTimeout,
			ShutdownTimeout: constants.DefaultShutdownTimeout,
		},
	}
}

// setDefaults registers every default on v.
// Keys must match the mapstructure tag names.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("text.format", d.Text.Format)
	v.SetDefault("text.key_dir", d.Text.KeyDir)

	v.SetDefault("genpass.length", d.GenPass.Length)
	v.SetDefault("genpass.uppercase", d.GenPass.Uppercase)
	v.SetDefault("genpass.lowercase", d.GenPass.Lowercase)
	v.SetDefault("genpass.numbers", d.GenPass.Numbers)
	v.SetDefault("genpass.symbols", d.GenPass.Symbols)

	v.SetDefault("base64.format", d.Base64.Format)

	v.SetDefault("csv.format", d.CSV.Format)
	v.SetDefault("csv.delimiter", d.CSV.Delimiter)

	v.SetDefault("http.dir", d.HTTP.Dir)
	v.SetDefault("http.port", d.HTTP.Port)
	v.SetDefault("http.read_timeout", d.HTTP.ReadTimeout.String())
	v.SetDefault("http.shutdown_timeout", d.HTTP.ShutdownTimeout.String())
}
