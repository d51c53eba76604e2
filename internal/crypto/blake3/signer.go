// Package blake3 implements the symmetric keyed-hash signing scheme.
//
// Signing computes a BLAKE3 keyed hash of the message. Verification recomputes the
// hash and compares, so anyone holding the key can both sign and verify.
package blake3

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog"
	"lukechampine.com/blake3"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/genpass"
)

// Signer signs and verifies with a 32-byte BLAKE3 key.
type Signer struct {
	key [constants.KeyedHashKeySize]byte
}

// NewSigner builds a Signer from key bytes. Only the first 32 bytes are used;
// shorter buffers return ErrInvalidKeyLength.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) < constants.KeyedHashKeySize {
		return nil, errors.Wrapf(errors.ErrInvalidKeyLength,
			"blake3 key needs at least %d bytes, got %d", constants.KeyedHashKeySize, len(key))
	}
	s := &Signer{}
	copy(s.key[:], key[:constants.KeyedHashKeySize])
	return s, nil
}

// Sign returns the 32-byte keyed hash of message.
func (s *Signer) Sign(_ context.Context, message []byte) ([]byte, error) {
	return s.digest(message), nil
}

// Verify recomputes the keyed hash and compares it with signature.
// A signature of the wrong length is a mismatch, not an error.
func (s *Signer) Verify(_ context.Context, message, signature []byte) (bool, error) {
	if len(signature) != constants.KeyedHashDigestSize {
		return false, nil
	}
	return subtle.ConstantTimeCompare(s.digest(message), signature) == 1, nil
}

func (s *Signer) digest(message []byte) []byte {
	h := blake3.New(constants.KeyedHashDigestSize, s.key[:])
	_, _ = h.Write(message)
	return h.Sum(nil)
}

// Backend is the crypto.Backend for the keyed-hash scheme.
type Backend struct{}

// NewBackend returns the keyed-hash backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Scheme implements crypto.Backend.
func (b *Backend) Scheme() crypto.Scheme {
	return crypto.SchemeBlake3
}

// LoadSigner implements crypto.SignerLoader.
func (b *Backend) LoadSigner(key []byte) (crypto.Signer, error) {
	return NewSigner(key)
}

// LoadVerifier implements crypto.VerifierLoader. The same key signs and verifies.
func (b *Backend) LoadVerifier(key []byte) (crypto.Verifier, error) {
	return NewSigner(key)
}

// GenerateKey derives a 32-character printable key from the password generator,
// drawing from every character class.
func (b *Backend) GenerateKey(ctx context.Context) (*crypto.KeySet, error) {
	password, err := genpass.Generate(genpass.Options{Length: constants.KeyedHashKeySize})
	if err != nil {
		return nil, errors.Wrap(err, "generating blake3 key")
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", crypto.SchemeBlake3.String()).
		Int("key_len", len(password)).
		Msg("generated keyed-hash key")

	return &crypto.KeySet{
		Scheme: crypto.SchemeBlake3,
		Secret: []byte(password),
	}, nil
}
