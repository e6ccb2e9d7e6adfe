package crypto

import "cipherstream/internal/domain"

// Suite packages the production primitives behind domain.CipherSuite.
type Suite struct{}

var _ domain.CipherSuite = Suite{}

func (Suite) GenerateKeyPair() (domain.X25519Private, domain.X25519Public, error) {
	return GenerateX25519()
}

func (Suite) DeriveSessionKey(priv domain.X25519Private, peer domain.X25519Public, conversationID string) ([]byte, error) {
	return DeriveSessionKey(priv, peer, conversationID)
}

func (Suite) Open(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	return Open(key, nonce, aad, ciphertext)
}
