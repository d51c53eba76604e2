package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Keys & signatures
	// ===================
	{
		err: ErrInvalidKeyLength,
		info: ErrorInfo{
			Message: "The key file has the wrong length for the selected scheme.",
			Action:  "Check --format matches the key, or run 'rcli text genkey' to create a new one.",
		},
	},
	{
		err: ErrInvalidKeyEncoding,
		info: ErrorInfo{
			Message: "The public key is not a valid Ed25519 key.",
			Action:  "Use the .pk file produced by 'rcli text genkey --format ed25519'.",
		},
	},
	{
		err: ErrMalformedSignature,
		info: ErrorInfo{
			Message: "The signature has the wrong length for the selected scheme.",
			Action:  "Make sure the signature was produced with the same --format.",
		},
	},
	{
		err: ErrKeyFileExists,
		info: ErrorInfo{
			Message: "Key files already exist in the output directory.",
			Action:  "Pass --force to overwrite them or choose another --output-path.",
		},
	},
	{
		err: ErrUnsupportedScheme,
		info: ErrorInfo{
			Message: "Internal error: no implementation registered for this scheme.",
			Action:  "",
		},
	},
	{
		err: ErrInvalidScheme,
		info: ErrorInfo{
			Message: "Unknown signing scheme.",
			Action:  "Use --format blake3 or --format ed25519.",
		},
	},

	// ===================
	// Input & encoding
	// ===================
	{
		err: ErrIO,
		info: ErrorInfo{
			Message: "Failed to read input.",
			Action:  "Check the file exists and is readable, or pipe data on stdin with '-'.",
		},
	},
	{
		err: ErrStdinConflict,
		info: ErrorInfo{
			Message: "The input and the key cannot both come from stdin.",
			Action:  "Pass the key as a file with -k.",
		},
	},
	{
		err: ErrFileNotFound,
		info: ErrorInfo{
			Message: "Input file not found.",
			Action:  "Check the path, or use '-' to read from stdin.",
		},
	},
	{
		err: ErrNotADirectory,
		info: ErrorInfo{
			Message: "The path is not a directory.",
			Action:  "Pass an existing directory.",
		},
	},
	{
		err: ErrBase64Decode,
		info: ErrorInfo{
			Message: "Input is not valid base64.",
			Action:  "Check --format (standard or url_safe) matches how the data was encoded.",
		},
	},
	{
		err: ErrInvalidBase64Format,
		info: ErrorInfo{
			Message: "Unknown base64 format.",
			Action:  "Use --format standard or --format url_safe.",
		},
	},
	{
		err: ErrUnsupportedOutputFormat,
		info: ErrorInfo{
			Message: "Unsupported output format.",
			Action:  "Use json, yaml or toml.",
		},
	},
	{
		err: ErrEmptyCharset,
		info: ErrorInfo{
			Message: "All character classes are disabled.",
			Action:  "Remove at least one of the --no-* flags.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is missing.",
			Action:  "",
		},
	},
	{
		err: ErrConfigInvalidText,
		info: ErrorInfo{
			Message: "Invalid text signing configuration.",
			Action:  "Check the 'text' section of your config file.",
		},
	},
	{
		err: ErrConfigInvalidHTTP,
		info: ErrorInfo{
			Message: "Invalid HTTP server configuration.",
			Action:  "Check the 'http' section of your config file.",
		},
	},

	// ===================
	// Interaction
	// ===================
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "Confirmation is required but no terminal is attached.",
			Action:  "Re-run with --force.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation canceled.",
			Action:  "",
		},
	},
	{
		err: ErrMenuCanceled,
		info: ErrorInfo{
			Message: "Operation canceled.",
			Action:  "",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid --output value.",
			Action:  "Use --output text or --output json.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
