package gateway

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cipherstream/internal/crypto"
	"cipherstream/internal/domain"
)

// Encryptor seals payloads into ciphertext frames for one conversation.
// Sequence numbers start at 1 and increase per frame; the AAD carries the
// conversation id and sequence number in the shared FrameAAD format.
type Encryptor struct {
	key            []byte
	conversationID string
	seq            uint64
}

// NewEncryptor wraps a derived session key. The key is borrowed, not copied;
// the caller remains responsible for wiping it.
func NewEncryptor(key []byte, conversationID string) *Encryptor {
	return &Encryptor{key: key, conversationID: conversationID}
}

// Seal encrypts one payload into a ciphertext frame with a fresh nonce.
func (e *Encryptor) Seal(payload []byte) (domain.Frame, error) {
	nonce := make([]byte, crypto.NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return domain.Frame{}, fmt.Errorf("gateway: nonce: %w", err)
	}
	e.seq++
	aad := domain.FrameAAD(e.conversationID, e.seq)
	ct, err := crypto.Seal(e.key, nonce, []byte(aad), payload)
	if err != nil {
		return domain.Frame{}, fmt.Errorf("gateway: seal frame %d: %w", e.seq, err)
	}
	return domain.Frame{
		Type:       domain.FrameCiphertext,
		Seq:        e.seq,
		IV:         crypto.B64(nonce),
		Ciphertext: crypto.B64(ct),
		AAD:        aad,
	}, nil
}

// Limits controls token batching. The defaults keep frames small enough to
// feel realtime while amortising AEAD and framing overhead.
type Limits struct {
	MaxTokens int           // flush after this many tokens
	MaxBytes  int           // flush after this many buffered bytes
	MaxDelay  time.Duration // flush when the buffer is older than this
}

// DefaultLimits matches the production gateway tuning.
func DefaultLimits() Limits {
	return Limits{MaxTokens: 20, MaxBytes: 2048, MaxDelay: 40 * time.Millisecond}
}

// StreamWriter accumulates tokens, seals batches into frames, and writes
// them as newline-delimited JSON. Not safe for concurrent use.
type StreamWriter struct {
	w      io.Writer
	flush  func() // http.Flusher hook, may be nil
	enc    *Encryptor
	limits Limits

	buf       []byte
	tokens    int
	lastFlush time.Time
	now       func() time.Time
}

// NewStreamWriter writes frames for enc to w. If w implements http.Flusher
// the response is flushed after every frame so tokens reach the client
// promptly.
func NewStreamWriter(w io.Writer, enc *Encryptor, limits Limits) *StreamWriter {
	sw := &StreamWriter{w: w, enc: enc, limits: limits, now: time.Now}
	if f, ok := w.(interface{ Flush() }); ok {
		sw.flush = f.Flush
	}
	sw.lastFlush = sw.now()
	return sw
}

// WriteToken buffers one token and flushes when a batching limit trips.
func (s *StreamWriter) WriteToken(tok string) error {
	s.buf = append(s.buf, tok...)
	s.tokens++

	switch {
	case s.tokens >= s.limits.MaxTokens, len(s.buf) >= s.limits.MaxBytes:
		return s.Flush()
	case s.limits.MaxDelay > 0 && s.now().Sub(s.lastFlush) >= s.limits.MaxDelay:
		return s.Flush()
	}
	return nil
}

// Flush seals and writes whatever is buffered. A no-op on an empty buffer.
func (s *StreamWriter) Flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	frame, err := s.enc.Seal(s.buf)
	if err != nil {
		return err
	}
	s.buf = s.buf[:0]
	s.tokens = 0
	s.lastFlush = s.now()
	return s.writeFrame(frame)
}

// Close flushes the final partial batch.
func (s *StreamWriter) Close() error { return s.Flush() }

func (s *StreamWriter) writeFrame(f domain.Frame) error {
	line, err := json.Marshal(f)
	if err != nil {
		return err
	}
	if _, err := s.w.Write(append(line, '\n')); err != nil {
		return err
	}
	if s.flush != nil {
		s.flush()
	}
	return nil
}
