package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"cipherstream/internal/domain"
)

// NonceBytes is the AES-GCM nonce size used on the wire.
const NonceBytes = 12

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != domain.SessionKeyBytes {
		return nil, fmt.Errorf("aead: want %d-byte key, got %d", domain.SessionKeyBytes, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under key with the given nonce and associated
// data. The returned ciphertext includes the authentication tag.
func Seal(key, nonce, aad, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("aead: want %d-byte nonce, got %d", aead.NonceSize(), len(nonce))
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open authenticates and decrypts a sealed frame. A nonce of the wrong size
// is reported as an error rather than the panic crypto/cipher would raise.
func Open(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("aead: want %d-byte nonce, got %d", aead.NonceSize(), len(nonce))
	}
	return aead.Open(nil, nonce, ciphertext, aad)
}
