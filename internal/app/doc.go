// Package app wires application dependencies for the CLI.
//
// It loads configuration (TOML file layered under flags), builds the HTTP
// transport, cipher suite, logger, and the stream consumer, exposing them
// via the Wire struct for commands to use.
package app
