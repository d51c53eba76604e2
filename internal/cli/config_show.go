package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/tui"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// OutputFormat specifies the output format (yaml or json).
	OutputFormat string
}

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from global config.
	SourceGlobal ConfigSource = "global"
	// SourceProject indicates the value came from project config.
	SourceProject ConfigSource = "project"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
)

// configShowResult is the JSON form of 'config show'.
type configShowResult struct {
	Config  *config.Config          `json:"config"`
	Sources map[string]ConfigSource `json:"sources"`
}

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect rcli configuration",
	}

	flags := &ConfigShowFlags{}
	cmd.AddCommand(newConfigShowCmd(flags))
	root.AddCommand(cmd)
}

// newConfigShowCmd creates the 'config show' subcommand for displaying configuration.
func newConfigShowCmd(flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective rcli configuration with source annotations.

Each value is annotated with where it comes from:
  - default: Built-in default value
  - global: From ~/.rcli/config.yaml
  - project: From .rcli/config.yaml
  - env: From an RCLI_* environment variable

Examples:
  rcli config show              # YAML with sources as comments
  rcli config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "yaml", "output format (yaml or json)")

	return cmd
}

// runConfigShow executes the config show command.
func runConfigShow(ctx context.Context, w io.Writer, flags *ConfigShowFlags) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	cfg := configFromContext(ctx)
	sources, err := configSources(cfg)
	if err != nil {
		return err
	}

	switch strings.ToLower(flags.OutputFormat) {
	case "json":
		return tui.NewJSONOutput(w).JSON(configShowResult{Config: cfg, Sources: sources})
	case "yaml", "yml":
		return outputAnnotatedYAML(w, cfg, sources)
	default:
		return errors.NewExitCode2Error(fmt.Errorf("%w: %s (use yaml or json)",
			errors.ErrUnsupportedOutputFormat, flags.OutputFormat))
	}
}

// outputAnnotatedYAML writes cfg as YAML with each value's source as a line comment.
func outputAnnotatedYAML(w io.Writer, cfg *config.Config, sources map[string]ConfigSource) error {
	var root yaml.Node
	if err := root.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	walkScalars(&root, "", func(key string, value *yaml.Node) {
		if src, ok := sources[key]; ok {
			value.LineComment = "# " + string(src)
		}
	})

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return fmt.Errorf("writing config: %w: %w", errors.ErrIO, err)
	}
	return enc.Close()
}

// configSources reports the source of every effective config key.
func configSources(cfg *config.Config) (map[string]ConfigSource, error) {
	var root yaml.Node
	if err := root.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	globalKeys := loadGlobalConfigKeys()
	projectKeys := loadConfigKeys(config.ProjectConfigPath())

	sources := make(map[string]ConfigSource)
	walkScalars(&root, "", func(key string, _ *yaml.Node) {
		switch {
		case envSet(key):
			sources[key] = SourceEnv
		case projectKeys[key]:
			sources[key] = SourceProject
		case globalKeys[key]:
			sources[key] = SourceGlobal
		default:
			sources[key] = SourceDefault
		}
	})
	return sources, nil
}

// walkScalars calls fn with the dotted key of every scalar value under n.
func walkScalars(n *yaml.Node, prefix string, fn func(key string, value *yaml.Node)) {
	if n.Kind == yaml.DocumentNode {
		for _, c := range n.Content {
			walkScalars(c, prefix, fn)
		}
		return
	}
	if n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if prefix != "" {
			key = prefix + "." + key
		}
		value := n.Content[i+1]
		if value.Kind == yaml.MappingNode {
			walkScalars(value, key, fn)
			continue
		}
		fn(key, value)
	}
}

// envSet reports whether the RCLI_* variable for key is set.
func envSet(key string) bool {
	name := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	_, ok := os.LookupEnv(name)
	return ok
}

// loadGlobalConfigKeys returns the keys set in the global config file.
func loadGlobalConfigKeys() map[string]bool {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return nil
	}
	return loadConfigKeys(path)
}

// loadConfigKeys returns the dotted keys set in a YAML config file.
// Missing or unreadable files yield no keys.
func loadConfigKeys(path string) map[string]bool {
	data, err := os.ReadFile(path) //nolint:gosec // Config file path
	if err != nil {
		return nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil
	}

	keys := make(map[string]bool)
	walkScalars(&root, "", func(key string, _ *yaml.Node) {
		keys[key] = true
	})
	return keys
}
