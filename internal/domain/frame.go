package domain

import "fmt"

// Frame type discriminators.
const (
	// FrameServerPubKey carries the server's raw public key. It must arrive
	// before any ciphertext frame is usable.
	FrameServerPubKey = "server_pubkey"
	// FrameCiphertext carries one AEAD-sealed chunk of the response.
	FrameCiphertext = "ciphertext"
)

// Request headers. The public-key header is the entire client hello: there is
// no separate handshake round-trip, the server answers with its own key as
// the first stream frame.
const (
	HeaderClientPubKey = "X-Client-PubKey"
	HeaderAPIKey       = "x-api-key"
)

// ContentTypeNDJSON is the media type of the encrypted stream.
const ContentTypeNDJSON = "application/x-ndjson"

// Frame is the wire unit of the encrypted stream, one JSON object per line.
// Fields beyond Type are populated depending on the discriminator.
type Frame struct {
	Type string `json:"type"`

	// server_pubkey: standard base64 of the 32-byte raw public key.
	PubKey string `json:"pubkey,omitempty"`

	// ciphertext: base64 12-byte nonce, base64 ciphertext+tag, sequence
	// number, and an optional explicit associated-data string overriding
	// FrameAAD.
	IV         string `json:"iv,omitempty"`
	Ciphertext string `json:"ciphertext,omitempty"`
	Seq        uint64 `json:"seq,omitempty"`
	AAD        string `json:"aad,omitempty"`
}

// FrameAAD is the default associated data for a ciphertext frame. Binding the
// conversation id and sequence number stops frames from being replayed or
// decrypted under another conversation's context. Both ends must agree on
// this exact format.
func FrameAAD(conversationID string, seq uint64) string {
	return fmt.Sprintf("cid=%s;seq=%d", conversationID, seq)
}
