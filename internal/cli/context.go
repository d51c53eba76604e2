package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/tui"
)

// configKey is the context key for the loaded configuration.
type configKey struct{}

// withConfig returns a copy of ctx carrying cfg.
func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the configuration loaded by the root command,
// or the built-in defaults when none was attached.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}

// outputFormat returns the global --output value. Subcommands may shadow
// the flag name locally, so it is read from the root.
func outputFormat(cmd *cobra.Command) string {
	if f := cmd.Root().PersistentFlags().Lookup("output"); f != nil {
		return f.Value.String()
	}
	return OutputText
}

// newOutput creates the tui.Output for the command's stdout.
func newOutput(cmd *cobra.Command) tui.Output {
	return tui.NewOutput(cmd.OutOrStdout(), outputFormat(cmd))
}

// stringFlag returns the flag value when the user set it, else fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// intFlag returns the flag value when the user set it, else fallback.
func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// boolFlag returns the flag value when the user set it, else fallback.
func boolFlag(cmd *cobra.Command, name string, value, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
