// Package keystore persists and reads key material produced by the signing schemes.
//
// A keyed-hash key is written as <dir>/blake3.key. An Ed25519 pair is written as
// <dir>/ed25519.sk (seed) and <dir>/ed25519.pk (public key). Files are raw bytes,
// mode 0600, written atomically.
package keystore

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/flock"
)

const lockFileName = ".rcli.lock"

// Store reads and writes key files in one directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Paths returns the file paths for scheme, in the same order as KeySet.Buffers().
func (s *Store) Paths(scheme crypto.Scheme) ([]string, error) {
	name := scheme.String()
	switch scheme {
	case crypto.SchemeBlake3:
		return []string{filepath.Join(s.dir, name+constants.SecretKeyExt)}, nil
	case crypto.SchemeEd25519:
		return []string{
			filepath.Join(s.dir, name+constants.PrivateKeyExt),
			filepath.Join(s.dir, name+constants.PublicKeyExt),
		}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedScheme, "scheme tag %d", uint8(scheme))
	}
}

// Existing returns the key files for scheme that are already present.
func (s *Store) Existing(scheme crypto.Scheme) ([]string, error) {
	paths, err := s.Paths(scheme)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, p := range paths {
		if _, statErr := os.Stat(p); statErr == nil {
			found = append(found, p)
		}
	}
	return found, nil
}

// Write persists ks and returns the written paths. Existing files are only
// replaced when overwrite is true; otherwise ErrKeyFileExists is returned and
// nothing is written.
func (s *Store) Write(ctx context.Context, ks *crypto.KeySet, overwrite bool) ([]string, error) {
	if ks == nil {
		return nil, errors.Wrap(errors.ErrIO, "no key material to write")
	}

	paths, err := s.Paths(ks.Scheme)
	if err != nil {
		return nil, err
	}
	bufs := ks.Buffers()
	if len(bufs) != len(paths) {
		return nil, fmt.Errorf("%s key set has %d buffers, want %d: %w",
			ks.Scheme, len(bufs), len(paths), errors.ErrInvalidKeyLength)
	}

	if err := os.MkdirAll(s.dir, constants.KeyDirPerm); err != nil {
		return nil, fmt.Errorf("creating key directory: %w: %w", errors.ErrIO, err)
	}

	release, err := flock.Acquire(filepath.Join(s.dir, lockFileName))
	if err != nil {
		return nil, fmt.Errorf("locking key directory: %w: %w", errors.ErrIO, err)
	}
	defer release()

	if !overwrite {
		existing, existErr := s.Existing(ks.Scheme)
		if existErr != nil {
			return nil, existErr
		}
		if len(existing) > 0 {
			return existing, errors.Wrapf(errors.ErrKeyFileExists, "%s", existing[0])
		}
	}

	for i, p := range paths {
		if err := writeFileAtomic(p, bufs[i], constants.KeyFilePerm); err != nil {
			return nil, fmt.Errorf("writing %s: %w: %w", filepath.Base(p), errors.ErrIO, err)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", ks.Scheme.String()).
		Str("dir", s.dir).
		Int("files", len(paths)).
		Msg("key files written")

	return paths, nil
}

// ReadKey returns the raw bytes of a key file.
func ReadKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-selected key file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrFileNotFound, "%s", path)
		}
		return nil, fmt.Errorf("reading key %s: %w: %w", path, errors.ErrIO, err)
	}
	return data, nil
}

// writeFileAtomic writes to a temp file in the target directory, syncs it,
// sets perm and renames it over path.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Windows refuses to rename over an existing file.
		_ = os.Remove(path)
		if err2 := os.Rename(tmpPath, path); err2 != nil {
			return fmt.Errorf("rename: %w (after remove: %w)", err, err2)
		}
	}
	return nil
}
