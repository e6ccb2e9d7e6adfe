// Package stream implements the client side of the end-to-end encrypted
// streaming transport.
//
// # Overview
//
// One Consume call drives one encrypted, server-streamed response to
// completion. The client attaches a fresh ephemeral X25519 public key to the
// request as the entire handshake; the server answers with its own public
// key as the first newline-delimited JSON frame, after which both sides hold
// an AES-256-GCM session key derived via HKDF-SHA256 and bound to the
// conversation id. Every subsequent ciphertext frame is authenticated,
// decrypted and handed to the caller's sink in arrival order.
//
// # Flow
//
//  1. Generate an ephemeral key pair; it exists only for this call.
//  2. POST with the public key in the X-Client-PubKey header.
//  3. Non-2xx or missing body fails fatally with domain.SetupError.
//  4. Read the body line by line; each non-empty line is one JSON frame.
//  5. server_pubkey establishes the session key; ciphertext frames before it
//     are inert and dropped.
//  6. A frame that fails authentication is logged and skipped; the stream
//     continues. A line that is not valid JSON aborts with
//     domain.ParseError.
//
// # Concurrency
//
// A Consumer is stateless and safe for concurrent Consume calls; each call
// owns its session key and line buffer. The sink is never invoked
// concurrently with itself within one call.
package stream
