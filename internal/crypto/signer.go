// Package crypto defines the capability interfaces shared by every signing scheme.
// Concrete schemes live in sub-packages (blake3, ed25519) and are selected by Scheme.
package crypto

import "context"

// Signer provides signing capabilities.
// Implementations must be deterministic: signing the same message twice produces the same signature.
type Signer interface {
	// Sign signs the given message and returns a fixed-size signature.
	Sign(ctx context.Context, message []byte) ([]byte, error)
}

// Verifier provides signature verification capabilities.
//
// A signature that does not match is reported as (false, nil). An error is returned
// only when the signature cannot be checked at all, such as a malformed length for
// schemes with a fixed signature size.
type Verifier interface {
	Verify(ctx context.Context, message, signature []byte) (bool, error)
}

// SignerLoader reconstructs a Signer from persisted key bytes.
// Loaders validate length and encoding only; reading the bytes is the caller's job.
type SignerLoader interface {
	LoadSigner(key []byte) (Signer, error)
}

// VerifierLoader reconstructs a Verifier from persisted key bytes.
type VerifierLoader interface {
	LoadVerifier(key []byte) (Verifier, error)
}

// KeyGenerator produces fresh key material for one scheme.
type KeyGenerator interface {
	GenerateKey(ctx context.Context) (*KeySet, error)
}

// Backend bundles the key lifecycle capabilities of a single scheme.
type Backend interface {
	SignerLoader
	VerifierLoader
	KeyGenerator

	// Scheme returns the tag this backend implements.
	Scheme() Scheme
}
