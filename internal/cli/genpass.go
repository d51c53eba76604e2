package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/genpass"
)

// genPassFlags holds flags for the genpass command.
type genPassFlags struct {
	length      int
	noUppercase bool
	noLowercase bool
	noNumbers   bool
	noSymbols   bool
}

// genPassResult is the JSON result of 'genpass'.
type genPassResult struct {
	Password string `json:"password"`
	Strength int    `json:"strength"`
}

// AddGenPassCommand adds the genpass command to the root command.
func AddGenPassCommand(root *cobra.Command) {
	flags := &genPassFlags{}

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generate a random password from upper case letters, lower case letters,
digits and the symbols @#$%^&*?. The lower case set leaves out 'o'.

Examples:
  rcli genpass
  rcli genpass -l 32 --no-symbols`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenPass(cmd.Context(), cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.length, "length", "l", 0, "password length, defaults to genpass.length")
	cmd.Flags().BoolVar(&flags.noUppercase, "no-uppercase", false, "leave out upper case letters")
	cmd.Flags().BoolVar(&flags.noLowercase, "no-lowercase", false, "leave out lower case letters")
	cmd.Flags().BoolVar(&flags.noNumbers, "no-numbers", false, "leave out digits")
	cmd.Flags().BoolVar(&flags.noSymbols, "no-symbols", false, "leave out symbols")

	root.AddCommand(cmd)
}

func runGenPass(ctx context.Context, cmd *cobra.Command, flags *genPassFlags) error {
	cfg := configFromContext(ctx).GenPass

	opts := genpass.Options{
		Length:      intFlag(cmd, "length", flags.length, cfg.Length),
		NoUppercase: boolFlag(cmd, "no-uppercase", flags.noUppercase, !cfg.Uppercase),
		NoLowercase: boolFlag(cmd, "no-lowercase", flags.noLowercase, !cfg.Lowercase),
		NoNumbers:   boolFlag(cmd, "no-numbers", flags.noNumbers, !cfg.Numbers),
		NoSymbols:   boolFlag(cmd, "no-symbols", flags.noSymbols, !cfg.Symbols),
	}

	password, err := genpass.Generate(opts)
	if err != nil {
		return err
	}

	strength := genpass.Strength(password)
	zerolog.Ctx(ctx).Debug().
		Int("length", len(password)).
		Int("strength", strength).
		Msg("password generated")

	out := newOutput(cmd)
	if out.IsJSON() {
		return out.JSON(genPassResult{Password: password, Strength: strength})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), password)
	return err
}
