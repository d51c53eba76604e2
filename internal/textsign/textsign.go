// Package textsign is the entry point for signing, verifying and generating keys.
//
// Callers pass a scheme tag and raw readers; textsign reads the key and payload
// fully into memory, selects the scheme backend and delegates. Nothing is cached
// between calls.
package textsign

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/crypto/blake3"
	"github.com/mrz1836/rcli/internal/crypto/ed25519"
	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
)

// Backend returns the backend for scheme. Tags without a backend return
// ErrUnsupportedScheme.
func Backend(scheme crypto.Scheme) (crypto.Backend, error) {
	switch scheme {
	case crypto.SchemeBlake3:
		return blake3.NewBackend(), nil
	case crypto.SchemeEd25519:
		return ed25519.NewBackend(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedScheme, "scheme tag %d", uint8(scheme))
	}
}

// Sign reads the key and payload and returns the scheme's signature of the payload.
func Sign(ctx context.Context, input, key io.Reader, scheme crypto.Scheme) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	keyBytes, err := readAll(key, "key")
	if err != nil {
		return nil, err
	}
	payload, err := readAll(input, "input")
	if err != nil {
		return nil, err
	}
	return SignBytes(ctx, payload, keyBytes, scheme)
}

// SignBytes signs payload with key under scheme.
func SignBytes(ctx context.Context, payload, key []byte, scheme crypto.Scheme) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	backend, err := Backend(scheme)
	if err != nil {
		return nil, err
	}
	signer, err := backend.LoadSigner(key)
	if err != nil {
		return nil, err
	}

	sig, err := signer.Sign(ctx, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "signing with %s", scheme)
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", scheme.String()).
		Int("payload_len", len(payload)).
		Int("signature_len", len(sig)).
		Msg("payload signed")

	return sig, nil
}

// Verify reads the key and payload and reports whether signature is valid.
// A mismatch is (false, nil); errors are reserved for unreadable sources,
// unusable keys and malformed signatures.
func Verify(ctx context.Context, input, key io.Reader, scheme crypto.Scheme, signature []byte) (bool, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return false, err
	}

	keyBytes, err := readAll(key, "key")
	if err != nil {
		return false, err
	}
	payload, err := readAll(input, "input")
	if err != nil {
		return false, err
	}
	return VerifyBytes(ctx, payload, keyBytes, scheme, signature)
}

// VerifyBytes checks signature over payload with key under scheme.
func VerifyBytes(ctx context.Context, payload, key []byte, scheme crypto.Scheme, signature []byte) (bool, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return false, err
	}

	backend, err := Backend(scheme)
	if err != nil {
		return false, err
	}
	verifier, err := backend.LoadVerifier(key)
	if err != nil {
		return false, err
	}

	ok, err := verifier.Verify(ctx, payload, signature)
	if err != nil {
		return false, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("scheme", scheme.String()).
		Int("payload_len", len(payload)).
		Bool("valid", ok).
		Msg("signature checked")

	return ok, nil
}

// GenerateKey returns fresh key material for scheme.
func GenerateKey(ctx context.Context, scheme crypto.Scheme) (*crypto.KeySet, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	backend, err := Backend(scheme)
	if err != nil {
		return nil, err
	}
	return backend.GenerateKey(ctx)
}

func readAll(r io.Reader, what string) ([]byte, error) {
	if r == nil {
		return nil, errors.Wrapf(errors.ErrIO, "reading %s: no source", what)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWith(errors.ErrIO, err, "reading "+what)
	}
	return data, nil
}
