package domain

import "fmt"

// X25519Private is a Curve25519 private key. It never leaves the process and
// is never serialized.
type X25519Private [32]byte

// X25519Public is a Curve25519 public key, raw-encoded on the wire.
type X25519Public [32]byte

func (k X25519Private) Slice() []byte { return k[:] }
func (k X25519Public) Slice() []byte  { return k[:] }

// SessionKeyBytes is the size of the derived AES-256-GCM session key.
const SessionKeyBytes = 32

func MustX25519Private(b []byte) X25519Private {
	if len(b) != 32 {
		panic(fmt.Errorf("X25519 private: want 32 bytes, got %d", len(b)))
	}
	var out X25519Private
	copy(out[:], b)
	return out
}

func MustX25519Public(b []byte) X25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("X25519 public: want 32 bytes, got %d", len(b)))
	}
	var out X25519Public
	copy(out[:], b)
	return out
}
