package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/b64"
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/fileutil"
	"github.com/mrz1836/rcli/internal/keystore"
	"github.com/mrz1836/rcli/internal/textsign"
	"github.com/mrz1836/rcli/internal/tui"
)

// signatureFormat is the base64 alphabet used for printed signatures.
const signatureFormat = b64.URLSafe

// AddTextCommand adds the text command group to the root command.
func AddTextCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify text",
		Long: `Sign and verify text with a BLAKE3 keyed hash (blake3) or Ed25519 (ed25519).

Signatures are printed as url-safe base64 without padding.

Examples:
  rcli text genkey --format ed25519 --output-path keys
  rcli text sign -i message.txt -k keys/ed25519.sk --format ed25519
  rcli text verify -i message.txt -k keys/ed25519.pk --format ed25519 -s <signature>`,
	}

	cmd.AddCommand(newTextSignCmd(), newTextVerifyCmd(), newTextGenKeyCmd())
	root.AddCommand(cmd)
}

// textFlags holds flags shared by sign and verify.
type textFlags struct {
	input  string
	key    string
	format string
}

func (f *textFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", constants.StdinPath, "input file, or - for stdin")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "key file")
	cmd.Flags().StringVar(&f.format, "format", "", "signing scheme (blake3|ed25519), defaults to text.format")
	_ = cmd.MarkFlagRequired("key")
}

// textSignResult is the JSON result of 'text sign'.
type textSignResult struct {
	Scheme    string `json:"scheme"`
	Signature string `json:"signature"`
}

// textVerifyResult is the JSON result of 'text verify'.
type textVerifyResult struct {
	Scheme string `json:"scheme"`
	Valid  bool   `json:"valid"`
}

// textGenKeyResult is the JSON result of 'text genkey'.
type textGenKeyResult struct {
	Scheme string   `json:"scheme"`
	Files  []string `json:"files"`
}

func newTextSignCmd() *cobra.Command {
	flags := &textFlags{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign input with a key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd.Context(), cmd, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runTextSign(ctx context.Context, cmd *cobra.Command, flags *textFlags) error {
	scheme, err := resolveScheme(ctx, cmd, flags.format)
	if err != nil {
		return err
	}

	input, key, closeAll, err := openSignSources(cmd, flags)
	if err != nil {
		return err
	}
	defer closeAll()

	sig, err := textsign.Sign(ctx, input, key, scheme)
	if err != nil {
		return err
	}

	encoded, err := b64.EncodeBytes(sig, signatureFormat)
	if err != nil {
		return err
	}

	out := newOutput(cmd)
	if out.IsJSON() {
		return out.JSON(textSignResult{Scheme: scheme.String(), Signature: encoded})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return err
}

func newTextVerifyCmd() *cobra.Command {
	flags := &textFlags{}
	var signature string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over input",
		Long: `Verify a signature over input.

The signature is given with -s as the base64 text, a file holding it, or - to
read it from stdin. Only one of -i, -k and -s may read from stdin.
A mismatch is reported as invalid and still exits 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd.Context(), cmd, flags, signature)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&signature, "sig", "s", "", "signature, a file holding it, or - for stdin")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}

func runTextVerify(ctx context.Context, cmd *cobra.Command, flags *textFlags, signature string) error {
	scheme, err := resolveScheme(ctx, cmd, flags.format)
	if err != nil {
		return err
	}

	if err := checkStdinSources(flags.input, flags.key, signature); err != nil {
		return err
	}

	sig, err := readSignature(signature, cmd.InOrStdin())
	if err != nil {
		return err
	}

	input, key, closeAll, err := openSignSources(cmd, flags)
	if err != nil {
		return err
	}
	defer closeAll()

	valid, err := textsign.Verify(ctx, input, key, scheme, sig)
	if err != nil {
		return err
	}

	out := newOutput(cmd)
	if out.IsJSON() {
		return out.JSON(textVerifyResult{Scheme: scheme.String(), Valid: valid})
	}

	styles := tui.NewOutputStyles()
	line := styles.Success.Render("✓ signature valid")
	if !valid {
		line = styles.Error.Render("✗ signature invalid")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}

// readSignature decodes sig. "-" reads it from stdin, and a path to an
// existing file reads that file; anything else is the signature text itself.
func readSignature(sig string, stdin io.Reader) ([]byte, error) {
	text := sig
	if sig == constants.StdinPath || fileExists(sig) {
		r, err := fileutil.OpenInput(sig, stdin)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WrapWith(errors.ErrIO, err, "reading signature "+sig)
		}
		text = string(data)
	}

	decoded, err := b64.DecodeString(strings.TrimSpace(text), signatureFormat)
	if err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	return decoded, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func newTextGenKeyCmd() *cobra.Command {
	var (
		format     string
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a signing key",
		Long: `Generate a signing key.

blake3 writes blake3.key (32 printable characters). ed25519 writes the private
seed to ed25519.sk and the public key to ed25519.pk. Existing files are only
replaced after confirmation, or with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenKey(cmd.Context(), cmd, format, outputPath, force)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "signing scheme (blake3|ed25519), defaults to text.format")
	cmd.Flags().StringVar(&outputPath, "output-path", "", "directory for the key files, defaults to text.key_dir")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing key files without asking")
	return cmd
}

func runTextGenKey(ctx context.Context, cmd *cobra.Command, format, outputPath string, force bool) error {
	logger := zerolog.Ctx(ctx)
	cfg := configFromContext(ctx)

	scheme, err := resolveScheme(ctx, cmd, format)
	if err != nil {
		return err
	}

	store := keystore.New(stringFlag(cmd, "output-path", outputPath, cfg.Text.KeyDir))
	out := newOutput(cmd)

	overwrite := force
	if !overwrite {
		existing, existErr := store.Existing(scheme)
		if existErr != nil {
			return existErr
		}
		if len(existing) > 0 {
			if err := confirmOverwrite(cmd, out, existing); err != nil {
				return err
			}
			overwrite = true
		}
	}

	ks, err := textsign.GenerateKey(ctx, scheme)
	if err != nil {
		return err
	}

	paths, err := store.Write(ctx, ks, overwrite)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("scheme", scheme.String()).
		Strs("files", paths).
		Msg("key files written")

	if out.IsJSON() {
		return out.JSON(textGenKeyResult{Scheme: scheme.String(), Files: paths})
	}

	fields := []tui.Field{{Label: "scheme", Value: scheme.String()}}
	for _, p := range paths {
		fields = append(fields, tui.Field{Label: "file", Value: p})
	}
	out.Fields("Keys", fields)
	out.Success(fmt.Sprintf("%s key written to %s", scheme, store.Dir()))
	return nil
}

// confirmOverwrite asks before replacing existing key files. JSON output and
// non-terminal stdin cannot prompt, so they require --force.
func confirmOverwrite(cmd *cobra.Command, out tui.Output, existing []string) error {
	stdin, ok := cmd.InOrStdin().(*os.File)
	if out.IsJSON() || !ok || !fileutil.IsTerminal(stdin) {
		return fmt.Errorf("%s: %w: %w", strings.Join(existing, ", "), errors.ErrKeyFileExists, errors.ErrNonInteractiveMode)
	}

	out.Warning("existing key files: " + strings.Join(existing, ", "))
	ok, err := tui.Confirm("Overwrite existing key files?", false)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrOperationCanceled, err)
	}
	if !ok {
		return errors.ErrOperationCanceled
	}
	return nil
}

// resolveScheme parses the --format flag, falling back to text.format from config.
func resolveScheme(ctx context.Context, cmd *cobra.Command, format string) (crypto.Scheme, error) {
	name := stringFlag(cmd, "format", format, configFromContext(ctx).Text.Format)
	scheme, err := crypto.ParseScheme(name)
	if err != nil {
		return 0, errors.NewExitCode2Error(err)
	}
	return scheme, nil
}

// checkStdinSources fails when more than one source is "-".
func checkStdinSources(sources ...string) error {
	n := 0
	for _, src := range sources {
		if src == constants.StdinPath {
			n++
		}
	}
	if n > 1 {
		return errors.NewExitCode2Error(errors.ErrStdinConflict)
	}
	return nil
}

// openSignSources opens the input and key, allowing at most one of them on stdin.
func openSignSources(cmd *cobra.Command, flags *textFlags) (io.Reader, io.Reader, func(), error) {
	if err := checkStdinSources(flags.input, flags.key); err != nil {
		return nil, nil, nil, err
	}

	input, err := fileutil.OpenInput(flags.input, cmd.InOrStdin())
	if err != nil {
		return nil, nil, nil, err
	}
	key, err := fileutil.OpenInput(flags.key, cmd.InOrStdin())
	if err != nil {
		_ = input.Close()
		return nil, nil, nil, err
	}

	return input, key, func() {
		_ = input.Close()
		_ = key.Close()
	}, nil
}
