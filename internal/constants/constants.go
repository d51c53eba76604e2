// Package constants provides centralized constant values used throughout rcli.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by rcli.
const (
	// AppHome is the hidden directory name where rcli stores its config and logs.
	// This directory is created in the user's home directory.
	AppHome = ".rcli"

	// HomeEnvVar overrides the location of AppHome.
	HomeEnvVar = "RCLI_HOME"

	// EnvPrefix is the prefix for environment variable configuration (RCLI_TEXT_FORMAT, ...).
	EnvPrefix = "RCLI"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// StdinPath is the path value that selects standard input.
	StdinPath = "-"
)

// Key sizes in bytes.
const (
	// KeyedHashKeySize is the key length of the BLAKE3 keyed-hash scheme.
	KeyedHashKeySize = 32

	// KeyedHashDigestSize is the digest length produced by the keyed-hash scheme.
	KeyedHashDigestSize = 32

	// Ed25519SeedSize is the length of an Ed25519 private seed.
	Ed25519SeedSize = 32

	// Ed25519PublicKeySize is the length of an Ed25519 public key.
	Ed25519PublicKeySize = 32

	// Ed25519SignatureSize is the length of an Ed25519 signature.
	Ed25519SignatureSize = 64
)

// Key file naming.
const (
	// SecretKeyExt is the extension of a symmetric key file.
	SecretKeyExt = ".key"

	// PrivateKeyExt is the extension of an asymmetric private seed file.
	PrivateKeyExt = ".sk"

	// PublicKeyExt is the extension of an asymmetric public key file.
	PublicKeyExt = ".pk"

	// KeyFilePerm is the permission used for every written key file.
	KeyFilePerm = 0o600

	// KeyDirPerm is the permission used when creating a key directory.
	KeyDirPerm = 0o700
)

// Password generation defaults.
const (
	// DefaultPasswordLength is the length used by 'rcli genpass' when none is given.
	DefaultPasswordLength = 16

	// MaxPasswordLength bounds the genpass length flag.
	MaxPasswordLength = 1024
)

// HTTP server defaults.
const (
	// DefaultHTTPPort is the port used by 'rcli http serve'.
	DefaultHTTPPort = 8080

	// DefaultReadHeaderTimeout bounds how long the server waits for request headers.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultShutdownTimeout bounds graceful server shutdown.
	DefaultShutdownTimeout = 5 * time.Second
)
