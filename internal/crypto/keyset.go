package crypto

// KeySet is the key material produced by a KeyGenerator.
//
// For symmetric schemes only Secret is set. For asymmetric schemes Secret holds
// the private seed and Public the matching public key.
type KeySet struct {
	Scheme Scheme `json:"scheme"`
	Secret []byte `json:"-"`
	Public []byte `json:"public,omitempty"`
}

// Buffers returns the key material as an ordered sequence: [secret] for symmetric
// schemes, [private seed, public key] for asymmetric ones. Persistence relies on
// this order (private key written first).
func (k *KeySet) Buffers() [][]byte {
	if k.Public == nil {
		return [][]byte{k.Secret}
	}
	return [][]byte{k.Secret, k.Public}
}
