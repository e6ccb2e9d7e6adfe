// Package main runs the demo encrypted-streaming gateway used by
// cipherstream during development and tests. It performs the server half of
// the handshake and streams the prompt back as encrypted token frames.
//
// HTTP API
//
//	POST /chat
//	    Headers: X-Client-PubKey (base64 raw X25519 public key, required),
//	    x-api-key (ignored by the demo).
//	    Body: {"conversation_id": "...", "prompt": "..."}.
//	    Response: newline-delimited JSON frames — one server_pubkey frame,
//	    then ciphertext frames whose plaintext echoes the prompt.
//
// Behaviour
//
//   - Every request uses a fresh ephemeral server key pair; nothing is
//     persisted and nothing survives the request.
//   - Frames are flushed to the socket as they are sealed, so clients see
//     tokens incrementally.
//   - The default listen address is :8080.
//
// The demo gateway is intended for local use: it exercises the full wire
// protocol without a model backend behind it.
package main
