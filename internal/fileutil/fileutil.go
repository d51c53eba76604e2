// Package fileutil resolves the input and directory arguments taken by rcli commands.
package fileutil

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// OpenInput opens path for reading. "-" selects stdin, which is returned
// with a no-op Close so callers can always defer Close.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == constants.StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	if err := VerifyFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path) // #nosec G304 -- user-selected input file
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %w", path, errors.ErrIO, err)
	}
	return f, nil
}

// VerifyFile returns ErrFileNotFound unless path is "-" or an existing regular file.
func VerifyFile(path string) error {
	if path == constants.StdinPath {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return errors.Wrapf(errors.ErrFileNotFound, "%s", path)
	}
	return nil
}

// VerifyDir returns ErrNotADirectory unless path is an existing directory.
func VerifyDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return errors.Wrapf(errors.ErrNotADirectory, "%s", path)
	}
	return nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int on supported platforms
}
