// Package gateway implements the server half of the encrypted streaming
// transport: the piece that answers a client hello with a server_pubkey
// frame and seals a token stream into ciphertext frames.
//
// It exists for the demo gateway binary and for end-to-end tests of the
// consumer; a production chat backend would embed the same Encryptor and
// StreamWriter in front of its model output.
//
// Tokens are batched before sealing: a frame is flushed once it holds enough
// tokens, enough bytes, or enough time has passed since the last flush, so
// the stream stays realtime without paying AEAD overhead per token.
package gateway
