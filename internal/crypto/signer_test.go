package crypto

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

// mockBackend is a simple mock implementation for testing the interface contract.
type mockBackend struct {
	signFunc func(ctx context.Context, message []byte) ([]byte, error)
}

func (m *mockBackend) Sign(ctx context.Context, message []byte) ([]byte, error) {
	if m.signFunc != nil {
		return m.signFunc(ctx, message)
	}
	return []byte("mock-signature"), nil
}

func (m *mockBackend) Verify(_ context.Context, _, signature []byte) (bool, error) {
	return string(signature) == "mock-signature", nil
}

func (m *mockBackend) LoadSigner(_ []byte) (Signer, error)     { return m, nil }
func (m *mockBackend) LoadVerifier(_ []byte) (Verifier, error) { return m, nil }
func (m *mockBackend) Scheme() Scheme                          { return SchemeBlake3 }

func (m *mockBackend) GenerateKey(_ context.Context) (*KeySet, error) {
	return &KeySet{Scheme: SchemeBlake3, Secret: []byte("k")}, nil
}

// TestBackendComposition is a compile-time check that a Backend exposes all capabilities.
func TestBackendComposition(_ *testing.T) {
	var b Backend = &mockBackend{}
	var _ SignerLoader = b
	var _ VerifierLoader = b
	var _ KeyGenerator = b
}

func TestBackendContract(t *testing.T) {
	ctx := context.Background()
	b := &mockBackend{}

	signer, err := b.LoadSigner(nil)
	require.NoError(t, err)
	sig, err := signer.Sign(ctx, []byte("hello"))
	require.NoError(t, err)

	verifier, err := b.LoadVerifier(nil)
	require.NoError(t, err)

	ok, err := verifier.Verify(ctx, []byte("hello"), sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifier.Verify(ctx, []byte("hello"), []byte("forged"))
	require.NoError(t, err)
	assert.False(t, ok, "mismatch is a false result, not an error")
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input   string
		want    Scheme
		wantErr bool
	}{
		{"blake3", SchemeBlake3, false},
		{"ed25519", SchemeEd25519, false},
		{"ED25519", SchemeEd25519, false},
		{" blake3 ", SchemeBlake3, false},
		{"rsa", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScheme(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidScheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheme_StringRoundTrip(t *testing.T) {
	for _, s := range Schemes() {
		parsed, err := ParseScheme(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.True(t, s.Valid())
	}

	var zero Scheme
	assert.False(t, zero.Valid())
	assert.Equal(t, "unknown", zero.String())
}

func TestScheme_Asymmetric(t *testing.T) {
	assert.False(t, SchemeBlake3.Asymmetric())
	assert.True(t, SchemeEd25519.Asymmetric())
}

func TestScheme_TextMarshaling(t *testing.T) {
	data, err := json.Marshal(struct {
		Scheme Scheme `json:"scheme"`
	}{SchemeEd25519})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scheme":"ed25519"}`, string(data))

	var decoded struct {
		Scheme Scheme `json:"scheme"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"scheme":"blake3"}`), &decoded))
	assert.Equal(t, SchemeBlake3, decoded.Scheme)

	err = json.Unmarshal([]byte(`{"scheme":"dsa"}`), &decoded)
	require.ErrorIs(t, err, errors.ErrInvalidScheme)

	_, err = Scheme(99).MarshalText()
	require.ErrorIs(t, err, errors.ErrUnsupportedScheme)
}

func TestKeySet_Buffers(t *testing.T) {
	t.Run("symmetric has one buffer", func(t *testing.T) {
		ks := &KeySet{Scheme: SchemeBlake3, Secret: []byte("secret")}
		bufs := ks.Buffers()
		require.Len(t, bufs, 1)
		assert.Equal(t, []byte("secret"), bufs[0])
	})

	t.Run("asymmetric is private then public", func(t *testing.T) {
		ks := &KeySet{Scheme: SchemeEd25519, Secret: []byte("priv"), Public: []byte("pub")}
		bufs := ks.Buffers()
		require.Len(t, bufs, 2)
		assert.Equal(t, []byte("priv"), bufs[0])
		assert.Equal(t, []byte("pub"), bufs[1])
	})

	t.Run("secret never serialized", func(t *testing.T) {
		ks := &KeySet{Scheme: SchemeEd25519, Secret: []byte("priv"), Public: []byte("pub")}
		data, err := json.Marshal(ks)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "cHJpdg") // base64("priv")
		assert.Contains(t, string(data), `"scheme":"ed25519"`)
	})
}
