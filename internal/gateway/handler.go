package gateway

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"cipherstream/internal/crypto"
	"cipherstream/internal/domain"
	"cipherstream/internal/util/memzero"
)

// ChatRequest is the payload the demo gateway expects. A real backend may
// carry arbitrary metadata; only the conversation id matters to the
// transport, since the key derivation and frame AAD are bound to it.
type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Prompt         string `json:"prompt"`
}

// Handler answers chat requests with an encrypted token stream. Respond maps
// a prompt to the tokens streamed back; the default echoes the prompt.
type Handler struct {
	Log     logrus.FieldLogger
	Respond func(prompt string) []string
	Limits  Limits
}

// NewHandler builds a Handler with the echo responder and default limits.
func NewHandler(log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{Log: log, Respond: EchoTokens, Limits: DefaultLimits()}
}

// EchoTokens splits the prompt into word tokens, preserving spacing, so the
// reassembled plaintext equals the prompt.
func EchoTokens(prompt string) []string {
	return strings.SplitAfter(prompt, " ")
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	raw, err := crypto.B64Decode(r.Header.Get(domain.HeaderClientPubKey))
	if err != nil || len(raw) != 32 {
		http.Error(w, "missing or malformed "+domain.HeaderClientPubKey, http.StatusBadRequest)
		return
	}
	clientPub := domain.MustX25519Public(raw)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ConversationID == "" {
		http.Error(w, "conversation_id required", http.StatusBadRequest)
		return
	}

	// Ephemeral server half of the handshake; discarded with the request.
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		http.Error(w, "key generation failed", http.StatusInternalServerError)
		return
	}
	defer memzero.Zero(priv[:])

	key, err := crypto.DeriveSessionKey(priv, clientPub, req.ConversationID)
	if err != nil {
		http.Error(w, "key agreement failed", http.StatusInternalServerError)
		return
	}
	defer memzero.Zero(key)

	log := h.Log.WithField("cid", req.ConversationID)
	log.WithField("client", crypto.Fingerprint(clientPub.Slice())).Info("stream opened")

	w.Header().Set("Content-Type", domain.ContentTypeNDJSON)
	w.WriteHeader(http.StatusOK)

	sw := NewStreamWriter(w, NewEncryptor(key, req.ConversationID), h.Limits)
	if err := sw.writeFrame(domain.Frame{
		Type:   domain.FrameServerPubKey,
		PubKey: crypto.B64(pub.Slice()),
	}); err != nil {
		log.WithError(err).Warn("client went away during handshake")
		return
	}

	for _, tok := range h.Respond(req.Prompt) {
		if err := sw.WriteToken(tok); err != nil {
			log.WithError(err).Warn("stream aborted")
			return
		}
	}
	if err := sw.Close(); err != nil {
		log.WithError(err).Warn("final flush failed")
		return
	}
	log.Info("stream complete")
}
