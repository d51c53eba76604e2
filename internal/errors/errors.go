// Package errors provides centralized error handling for rcli.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidKeyLength indicates that a key buffer is shorter than the scheme
	// requires, or not exactly the required length for asymmetric keys.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidKeyEncoding indicates that key bytes do not decode to a valid
	// key for the asymmetric scheme (e.g. not a point on the curve).
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")

	// ErrMalformedSignature indicates that a signature buffer is not the
	// scheme's fixed expected length.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrIO indicates that reading the input or key source failed.
	ErrIO = errors.New("i/o failure")

	// ErrUnsupportedScheme indicates that dispatch reached a scheme tag with no
	// registered implementation. This is a programming error.
	ErrUnsupportedScheme = errors.New("unsupported scheme")

	// ErrInvalidScheme indicates that a scheme name given by the user is not recognized.
	ErrInvalidScheme = errors.New("invalid scheme")

	// ErrInvalidBase64Format indicates an unknown base64 alphabet name.
	ErrInvalidBase64Format = errors.New("invalid base64 format")

	// ErrBase64Decode indicates that input could not be decoded as base64.
	ErrBase64Decode = errors.New("invalid base64 input")

	// ErrEmptyCharset indicates that every character class was disabled for password generation.
	ErrEmptyCharset = errors.New("no character classes enabled")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrUnsupportedOutputFormat indicates that an unsupported output format was specified.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")

	// ErrInvalidDelimiter indicates a CSV delimiter that is not a single character.
	ErrInvalidDelimiter = errors.New("invalid delimiter")

	// ErrInvalidOutputFormat indicates an invalid --output value was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrStdinConflict indicates that more than one source was pointed at standard input.
	ErrStdinConflict = errors.New("only one source can read from stdin")

	// ErrFileNotFound indicates that an input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotADirectory indicates that a path expected to be a directory is not one.
	ErrNotADirectory = errors.New("not a directory")

	// ErrPathTraversal indicates an attempt to escape a served or key directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrKeyFileExists indicates that generating keys would overwrite existing key files.
	ErrKeyFileExists = errors.New("key file already exists")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidText indicates an invalid text signing configuration value.
	ErrConfigInvalidText = errors.New("invalid text configuration")

	// ErrConfigInvalidGenPass indicates an invalid password generation configuration value.
	ErrConfigInvalidGenPass = errors.New("invalid genpass configuration")

	// ErrConfigInvalidBase64 indicates an invalid base64 configuration value.
	ErrConfigInvalidBase64 = errors.New("invalid base64 configuration")

	// ErrConfigInvalidCSV indicates an invalid CSV configuration value.
	ErrConfigInvalidCSV = errors.New("invalid csv configuration")

	// ErrConfigInvalidHTTP indicates an invalid HTTP server configuration value.
	ErrConfigInvalidHTTP = errors.New("invalid http configuration")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrMenuCanceled indicates that the user canceled a prompt.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
