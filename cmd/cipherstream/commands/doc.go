// Package commands defines the cipherstream CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - chat         Send a prompt and stream the decrypted response
//   - fingerprint  Generate an ephemeral key pair and print its fingerprint
//
// # Implementation
//
// The root command loads the TOML config, layers flags over it, and builds
// the dependency graph (HTTP client, crypto suite, stream consumer) before
// any subcommand runs.
package commands
