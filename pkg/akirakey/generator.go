package akirakey

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

const (
	// Prefix tags every key with the issuing implementation.
	Prefix = "akira_rust_"

	// EntropySize is the number of random bytes behind each key.
	EntropySize = 32

	// BodyLength is the length of the RawURL encoding of EntropySize bytes.
	BodyLength = 43

	// Length is the total key length.
	Length = len(Prefix) + BodyLength
)

// Generator produces keys from an entropy source.
//
// A Generator is safe for concurrent use when its entropy source is.
// The default source, crypto/rand.Reader, is.
type Generator struct {
	entropy io.Reader
	locked  bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropySource replaces crypto/rand.Reader as the source of key bytes.
// Intended for deterministic tests; a nil reader is ignored.
func WithEntropySource(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.entropy = r
		}
	}
}

// WithLockedMemory holds the raw entropy in an mlocked guarded buffer
// for the short time it exists, and destroys the buffer after encoding.
//
// memguard panics when the buffer cannot be allocated or locked. Generate
// recovers that panic and returns ErrLockedMemoryUnavailable instead.
func WithLockedMemory() Option {
	return func(g *Generator) {
		g.locked = true
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{entropy: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate generates a key using crypto/rand.
func Generate() (string, error) {
	return defaultGenerator.Generate()
}

// Generate draws EntropySize bytes and returns Prefix followed by their
// RawURL encoding. A short read is an error, never a short key.
func (g *Generator) Generate() (string, error) {
	if g.locked {
		return g.generateLocked()
	}

	raw := make([]byte, EntropySize)
	defer clear(raw)
	if err := g.fill(raw); err != nil {
		return "", err
	}
	return encode(raw), nil
}

func (g *Generator) generateLocked() (string, error) {
	buf, err := lockedBuffer(EntropySize)
	if err != nil {
		return "", err
	}
	defer buf.Destroy()

	if err := g.fill(buf.Bytes()); err != nil {
		return "", err
	}
	return encode(buf.Bytes()), nil
}

// newLockedBuffer is replaced in tests to simulate an mlock failure.
var newLockedBuffer = memguard.NewBuffer

func lockedBuffer(size int) (buf *memguard.LockedBuffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrLockedMemoryUnavailable, r)
		}
	}()
	return newLockedBuffer(size), nil
}

func (g *Generator) fill(dst []byte) error {
	if _, err := io.ReadFull(g.entropy, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return nil
}

func encode(raw []byte) string {
	buf := make([]byte, len(Prefix)+base64.RawURLEncoding.EncodedLen(len(raw)))
	copy(buf, Prefix)
	base64.RawURLEncoding.Encode(buf[len(Prefix):], raw)
	return string(buf)
}
