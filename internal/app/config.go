package app

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	GatewayURL string `toml:"gateway_url"` // streaming endpoint, e.g. http://127.0.0.1:8080/chat
	APIKey     string `toml:"api_key"`     // credential for the x-api-key header; empty = unauthenticated
	Verbose    bool   `toml:"verbose"`     // debug-level logging

	// HeaderTimeoutSeconds bounds the wait for response headers only. The
	// body read is deliberately unbounded: the stream lives as long as the
	// server keeps talking, and callers cancel via context.
	HeaderTimeoutSeconds int `toml:"header_timeout_seconds"`
}

// DefaultConfig returns the baseline used when no file or flags are given.
func DefaultConfig() Config {
	return Config{
		GatewayURL:           "http://127.0.0.1:8080/chat",
		HeaderTimeoutSeconds: 30,
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing path is
// not an error when path is empty; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// HeaderTimeout converts the configured header timeout.
func (c Config) HeaderTimeout() time.Duration {
	return time.Duration(c.HeaderTimeoutSeconds) * time.Second
}
