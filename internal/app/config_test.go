package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherstream/internal/app"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/chat", cfg.GatewayURL)
	assert.Equal(t, 30*time.Second, cfg.HeaderTimeout())
	assert.Empty(t, cfg.APIKey)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cipherstream.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
gateway_url = "https://chat.example.com/stream"
api_key = "sk-test"
header_timeout_seconds = 5
verbose = true
`), 0o600))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.com/stream", cfg.GatewayURL)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.HeaderTimeout())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
