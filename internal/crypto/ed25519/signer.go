// Package ed25519 implements the asymmetric Ed25519 signing scheme.
package ed25519

import (
	"context"
	"crypto/rand"
	"io"

	"filippo.io/edwards25519"
	eddsa "github.com/cloudflare/circl/sign/ed25519"
	"github.com/rs/zerolog"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
)

// Signer signs with an Ed25519 private key derived from a 32-byte seed.
type Signer struct {
	privKey eddsa.PrivateKey
}

// NewSigner builds a Signer from a 32-byte private seed.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != constants.Ed25519SeedSize {
		return nil, errors.Wrapf(errors.ErrInvalidKeyLength,
			"ed25519 seed must be %d bytes, got %d", constants.Ed25519SeedSize, len(seed))
	}
	return &Signer{privKey: eddsa.NewKeyFromSeed(seed)}, nil
}

// Sign returns the deterministic 64-byte signature of message.
func (s *Signer) Sign(_ context.Context, message []byte) ([]byte, error) {
	return eddsa.Sign(s.privKey, message), nil
}

// PublicKey returns the public key matching the signer's seed.
func (s *Signer) PublicKey() []byte {
	pub, _ := s.privKey.Public().(eddsa.PublicKey)
	return append([]byte(nil), pub...)
}

// Verifier checks Ed25519 signatures against a public key.
type Verifier struct {
	pubKey eddsa.PublicKey
}

// NewVerifier builds a Verifier from a 32-byte public key. Keys of the wrong length
// return ErrInvalidKeyLength; bytes that are not a curve point return ErrInvalidKeyEncoding.
func NewVerifier(pub []byte) (*Verifier, error) {
	if len(pub) != constants.Ed25519PublicKeySize {
		return nil, errors.Wrapf(errors.ErrInvalidKeyLength,
			"ed25519 public key must be %d bytes, got %d", constants.Ed25519PublicKeySize, len(pub))
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKeyEncoding, err.Error())
	}
	return &Verifier{pubKey: eddsa.PublicKey(append([]byte(nil), pub...))}, nil
}

// Verify reports whether signature is a valid signature of message.
// Signatures that are not 64 bytes return ErrMalformedSignature; forged ones return false.
func (v *Verifier) Verify(_ context.Context, message, signature []byte) (bool, error) {
	if len(signature) != constants.Ed25519SignatureSize {
		return false, errors.Wrapf(errors.ErrMalformedSignature,
			"ed25519 signature must be %d bytes, got %d", constants.Ed25519SignatureSize, len(signature))
	}
	return eddsa.Verify(v.pubKey, message, signature), nil
}

// Backend is the crypto.Backend for Ed25519.
type Backend struct {
	rand io.Reader
}

// Option configures a Backend.
type Option func(*Backend)

// WithRand sets the entropy source used by GenerateKey. Defaults to crypto/rand.
func WithRand(r io.Reader) Option {
	return func(b *Backend) {
		b.rand = r
	}
}

// NewBackend returns the Ed25519 backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{rand: rand.Reader}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Scheme implements crypto.Backend.
func (b *Backend) Scheme() crypto.Scheme {
	return crypto.SchemeEd25519
}

// LoadSigner implements crypto.SignerLoader; key is the private seed.
func (b *Backend) LoadSigner(key []byte) (crypto.Signer, error) {
	return NewSigner(key)
}

// LoadVerifier implements crypto.VerifierLoader; key is the public key.
func (b *Backend) LoadVerifier(key []byte) (crypto.Verifier, error) {
	return NewVerifier(key)
}

// GenerateKey samples a fresh seed and returns it with the derived public key.
func (b *Backend) GenerateKey(ctx context.Context) (*crypto.KeySet, error) {
	pub, priv, err := eddsa.GenerateKey(b.rand)
	if err != nil {
		return nil, errors.Wrap(err, "generating ed25519 key")
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", crypto.SchemeEd25519.String()).
		Msg("generated ed25519 key pair")

	return &crypto.KeySet{
		Scheme: crypto.SchemeEd25519,
		Secret: append([]byte(nil), priv.Seed()...),
		Public: append([]byte(nil), pub...),
	}, nil
}
