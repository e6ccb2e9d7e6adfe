package domain

import "net/http"

// CipherSuite is the platform cryptography capability the stream consumer
// runs on. Implementations must never be hard-coded singletons; tests
// substitute fakes.
type CipherSuite interface {
	// GenerateKeyPair returns a fresh ephemeral X25519 key pair.
	GenerateKeyPair() (X25519Private, X25519Public, error)

	// DeriveSessionKey performs X25519 agreement between priv and peer and
	// expands the shared secret into a 32-byte symmetric key bound to the
	// conversation id. Deterministic for fixed inputs.
	DeriveSessionKey(priv X25519Private, peer X25519Public, conversationID string) ([]byte, error)

	// Open authenticates and decrypts one AEAD frame. Any failure
	// (tampering, wrong key, wrong AAD, bad nonce) is returned as an error,
	// never a panic.
	Open(key, nonce, aad, ciphertext []byte) ([]byte, error)
}

// Transport issues the streaming HTTP request. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Sink receives decoded plaintext chunks, synchronously, in arrival order.
type Sink func(text string)
