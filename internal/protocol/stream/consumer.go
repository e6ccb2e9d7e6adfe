package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"cipherstream/internal/crypto"
	"cipherstream/internal/domain"
	"cipherstream/internal/util/memzero"
)

// Consumer drives encrypted response streams. The zero value is not usable;
// construct with New.
type Consumer struct {
	transport domain.Transport
	suite     domain.CipherSuite
	log       logrus.FieldLogger
}

// New builds a Consumer. Nil arguments fall back to http.DefaultClient, the
// production crypto suite, and the standard logger.
func New(transport domain.Transport, suite domain.CipherSuite, log logrus.FieldLogger) *Consumer {
	if transport == nil {
		transport = http.DefaultClient
	}
	if suite == nil {
		suite = crypto.Suite{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Consumer{transport: transport, suite: suite, log: log}
}

// session is the per-call state. Nothing in it survives the call.
type session struct {
	conversationID string
	priv           domain.X25519Private
	key            []byte // nil until the server_pubkey frame arrives
	sink           domain.Sink
	line           int // 1-based count of non-empty lines, for diagnostics
}

// Consume issues one streaming request and decrypts it to completion.
//
// apiKey may be empty for unauthenticated requests. body is forwarded
// verbatim as the JSON request payload. sink is called synchronously, zero
// or more times, once per successfully decrypted frame, in arrival order.
// Consume returns once the server closes the stream, the context is
// cancelled, or a fatal error occurs. Per-frame decryption failures are not
// fatal: they are logged at warning level and the frame is dropped.
func (c *Consumer) Consume(ctx context.Context, url, apiKey, conversationID string, sink domain.Sink, body []byte) error {
	if url == "" {
		return errors.New("stream: url required")
	}
	if conversationID == "" {
		return errors.New("stream: conversation id required")
	}
	if sink == nil {
		return errors.New("stream: sink required")
	}

	priv, pub, err := c.suite.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("stream: generate key pair: %w", err)
	}
	s := &session{conversationID: conversationID, priv: priv, sink: sink}
	defer s.wipe()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("stream: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(domain.HeaderClientPubKey, crypto.B64(pub.Slice()))
	if apiKey != "" {
		req.Header.Set(domain.HeaderAPIKey, apiKey)
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		return fmt.Errorf("stream: request: %w", err)
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}
	if resp.StatusCode/100 != 2 {
		return &domain.SetupError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if resp.Body == nil {
		// Stdlib clients never return a nil body, but custom transports may.
		// An empty 2xx body is NOT a setup failure: it reads as a stream
		// that closed before any frame, which resolves with zero emissions.
		return &domain.SetupError{Err: domain.ErrNoResponseBody}
	}

	return c.readFrames(ctx, s, resp.Body)
}

// readFrames consumes the byte stream line by line. Lines are buffered as
// raw bytes until the newline, so multi-byte UTF-8 sequences split across
// network chunks reassemble before decoding.
func (c *Consumer) readFrames(ctx context.Context, s *session, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := br.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			s.line++
			if ferr := c.handleFrame(s, trimmed); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			// The trailing unterminated line, if any, was handled above.
			return nil
		}
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			return fmt.Errorf("stream: read: %w", err)
		}
	}
}

func (c *Consumer) handleFrame(s *session, line []byte) error {
	var f domain.Frame
	if err := json.Unmarshal(line, &f); err != nil {
		return &domain.ParseError{Line: s.line, Err: err}
	}

	switch f.Type {
	case domain.FrameServerPubKey:
		return c.establishKey(s, f)
	case domain.FrameCiphertext:
		c.openFrame(s, f)
		return nil
	default:
		// Unknown frame types are ignored for forward compatibility.
		return nil
	}
}

// establishKey imports the peer key and derives the session key. Handshake
// failures are fatal: without a correct key, nothing later on the stream is
// recoverable.
func (c *Consumer) establishKey(s *session, f domain.Frame) error {
	if s.key != nil {
		// First key wins. A rekey mid-stream is not part of the protocol,
		// so a repeated frame is dropped rather than silently replacing
		// the session key.
		c.log.WithField("line", s.line).Warn("ignoring repeated server_pubkey frame")
		return nil
	}
	raw, err := crypto.B64Decode(f.PubKey)
	if err != nil {
		return fmt.Errorf("stream: decode server public key: %w", err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("stream: server public key: want 32 bytes, got %d", len(raw))
	}
	key, err := c.suite.DeriveSessionKey(s.priv, domain.MustX25519Public(raw), s.conversationID)
	if err != nil {
		return fmt.Errorf("stream: derive session key: %w", err)
	}
	s.key = key
	return nil
}

// openFrame decrypts one ciphertext frame and emits the plaintext. All
// failures here are per-frame: logged and dropped, the stream continues.
func (c *Consumer) openFrame(s *session, f domain.Frame) {
	if s.key == nil {
		// No session key yet; the frame is inert.
		c.log.WithField("seq", f.Seq).Debug("dropping ciphertext frame before server_pubkey")
		return
	}
	nonce, err := crypto.B64Decode(f.IV)
	if err != nil {
		c.warnDrop(s, f, fmt.Errorf("decode iv: %w", err))
		return
	}
	ct, err := crypto.B64Decode(f.Ciphertext)
	if err != nil {
		c.warnDrop(s, f, fmt.Errorf("decode ciphertext: %w", err))
		return
	}
	aad := f.AAD
	if aad == "" {
		aad = domain.FrameAAD(s.conversationID, f.Seq)
	}
	pt, err := c.suite.Open(s.key, nonce, []byte(aad), ct)
	if err != nil {
		c.warnDrop(s, f, err)
		return
	}
	s.sink(string(pt))
}

func (c *Consumer) warnDrop(s *session, f domain.Frame, err error) {
	c.log.WithFields(logrus.Fields{
		"line": s.line,
		"seq":  f.Seq,
	}).WithError(err).Warn("dropping undecryptable frame")
}

func (s *session) wipe() {
	memzero.Zero(s.priv[:])
	memzero.Zero(s.key)
}
