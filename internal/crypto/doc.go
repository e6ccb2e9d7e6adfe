// Package crypto exposes the minimal primitives used by cipherstream.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519, DH)
//   - HKDF-SHA256 session-key derivation bound to a conversation id
//     (DeriveSessionKey, SessionSalt)
//   - AES-256-GCM seal/open with associated data (Seal, Open)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Fixed-size array types from internal/domain are used for key material to
// avoid accidental reallocations. Callers should treat derived keys as
// sensitive and wipe them with memzero.Zero when done. Suite packages the
// primitives behind domain.CipherSuite so callers never bind to a platform
// singleton.
package crypto
