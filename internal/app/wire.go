package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"cipherstream/internal/crypto"
	"cipherstream/internal/protocol/stream"
)

// Wire bundles the transport, crypto suite, logger and consumer for the CLI.
type Wire struct {
	Config   Config
	HTTP     *http.Client
	Log      *logrus.Logger
	Consumer *stream.Consumer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	// No overall client timeout: it would cut streams short. Header arrival
	// is bounded instead.
	httpClient := &http.Client{
		Transport: &http.Transport{
			ResponseHeaderTimeout: cfg.HeaderTimeout(),
		},
	}

	return &Wire{
		Config:   cfg,
		HTTP:     httpClient,
		Log:      log,
		Consumer: stream.New(httpClient, crypto.Suite{}, log),
	}
}
