// Package cli provides the command-line interface for rcli.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// Prefer zerolog.Ctx(cmd.Context()) inside commands; it carries the run_id.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the rcli CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rcli",
		Short: "rcli - a small toolbox for signing, encoding and serving files",
		Long: `rcli bundles everyday developer utilities behind one binary.

Commands:
  • text      Sign and verify text with BLAKE3 keyed hashes or Ed25519
  • genpass   Generate random passwords
  • base64    Encode and decode base64 (standard or url-safe)
  • csv       Convert CSV files to JSON, YAML or TOML
  • http      Serve a directory over HTTP
  • config    Show the effective configuration`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return errors.NewExitCode2Error(fmt.Errorf("%w: %q must be one of %v",
					errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats()))
			}

			logger := InitLogger(flags.Verbose, flags.Quiet)
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			runLogger := logger.With().
				Str("run_id", uuid.NewString()).
				Str("command", cmd.CommandPath()).
				Logger()
			ctx := runLogger.WithContext(cmd.Context())

			cfg, err := config.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd)
	AddGenPassCommand(cmd)
	AddBase64Command(cmd)
	AddCSVCommand(cmd)
	AddHTTPCommand(cmd)
	AddConfigCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are reported on stderr (or stdout as JSON with --output json)
// and returned so the caller can pick an exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	defer CloseLogFile()

	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, errors.ErrJSONErrorOutput) {
		reportError(cmd, flags.Output, err)
	}
	return err
}

// reportError prints err for the user in the selected output format.
func reportError(cmd *cobra.Command, format string, err error) {
	if format == OutputJSON {
		tui.NewOutput(cmd.OutOrStdout(), tui.FormatJSON).Error(err)
		return
	}
	tui.NewOutput(cmd.ErrOrStderr(), tui.FormatText).Error(err)
}
