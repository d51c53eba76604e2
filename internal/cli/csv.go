package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/csvconv"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/fileutil"
)

// csvFlags holds flags for the csv command.
type csvFlags struct {
	input     string
	output    string
	format    string
	delimiter string
}

// csvResult is the JSON result of 'csv'.
type csvResult struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Format  string `json:"format"`
	Records int    `json:"records"`
}

// AddCSVCommand adds the csv command to the root command.
func AddCSVCommand(root *cobra.Command) {
	flags := &csvFlags{}

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert a CSV file to JSON, YAML or TOML",
		Long: `Convert a CSV file to JSON, YAML or TOML.

The header row names the fields of every record. The output file defaults to
output.<format>. On this command -o/--output names the output file.

Examples:
  rcli csv -i players.csv
  rcli csv -i players.csv -o players.yaml --format yaml
  rcli csv -i data.tsv -d tab --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCSV(cmd.Context(), cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "input CSV file, or - for stdin")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file, defaults to output.<format>")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format (json|yaml|toml), defaults to csv.format")
	cmd.Flags().StringVarP(&flags.delimiter, "delimiter", "d", "", "field delimiter, defaults to csv.delimiter")
	_ = cmd.MarkFlagRequired("input")

	root.AddCommand(cmd)
}

func runCSV(ctx context.Context, cmd *cobra.Command, flags *csvFlags) error {
	cfg := configFromContext(ctx).CSV

	format, err := csvconv.ParseFormat(stringFlag(cmd, "format", flags.format, cfg.Format))
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	delimiter, err := csvconv.ParseDelimiter(stringFlag(cmd, "delimiter", flags.delimiter, cfg.Delimiter))
	if err != nil {
		return errors.NewExitCode2Error(err)
	}

	outPath := flags.output
	if outPath == "" {
		outPath = "output." + format.Ext()
	}

	in, err := fileutil.OpenInput(flags.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	var buf bytes.Buffer
	n, err := csvconv.Convert(in, &buf, csvconv.Options{Format: format, Delimiter: delimiter})
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil { //nolint:gosec // G306: converted data is not secret
		return fmt.Errorf("writing %s: %w: %w", outPath, errors.ErrIO, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("input", flags.input).
		Str("output", outPath).
		Str("format", string(format)).
		Int("records", n).
		Msg("csv converted")

	out := newOutput(cmd)
	if out.IsJSON() {
		return out.JSON(csvResult{Input: flags.input, Output: outPath, Format: string(format), Records: n})
	}
	out.Success(fmt.Sprintf("converted %d records to %s", n, outPath))
	return nil
}
