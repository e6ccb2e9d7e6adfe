package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"cipherstream/internal/domain"
	"cipherstream/internal/util/memzero"
)

// Domain-separation constants for the stream protocol. Both ends must use
// the same values or derived keys will not match.
const (
	saltPrefix = "chat-stream-v1:"
	hkdfInfo   = "e2ee-stream/aes-gcm"
)

// SessionSalt hashes the protocol domain string together with the
// conversation id. Deterministic: no random salt beyond the conversation
// binding.
func SessionSalt(conversationID string) []byte {
	sum := sha256.Sum256([]byte(saltPrefix + conversationID))
	return sum[:]
}

// DeriveSessionKey runs X25519 agreement and expands the shared secret via
// HKDF-SHA256 into a 32-byte AES-256-GCM key bound to conversationID.
// X25519 is symmetric, so both peers derive the same key from their own
// private half and the other's public half.
func DeriveSessionKey(priv domain.X25519Private, peer domain.X25519Public, conversationID string) ([]byte, error) {
	shared, err := DH(priv, peer)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(shared[:])

	r := hkdf.New(sha256.New, shared[:], SessionSalt(conversationID), []byte(hkdfInfo))
	key := make([]byte, domain.SessionKeyBytes)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}
