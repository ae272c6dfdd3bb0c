// Package passhash hashes and verifies passwords.
//
// [Manager] reproduces the legacy scheme used by existing credential stores:
// SHA-512 over the UTF-16LE bytes of the password, then SHA-512 again over the
// hash combined with a 9-byte salt. New code should prefer [BcryptHasher];
// both implement [Hasher].
package passhash

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"hash"
	"io"
	"sync"

	"github.com/amp-labs/amp-toolkit/errors"
	"github.com/amp-labs/amp-toolkit/hashing"
	"golang.org/x/text/encoding/unicode"
)

// SaltSize is the length of salts produced by GenerateSalt.
const SaltSize = 9

// ErrMalformedHash is returned when an encoded or stored hash can't be decoded.
var ErrMalformedHash = fmt.Errorf("%w: malformed password hash", errors.ErrInvalidArgument)

// Manager implements the legacy salted SHA-512 scheme.
type Manager struct {
	random io.Reader
}

// Option configures a Manager.
type Option func(*Manager)

// WithRandom sets the source of salt bytes. Defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(m *Manager) {
		m.random = r
	}
}

// NewManager creates a Manager drawing salts from crypto/rand.
func NewManager(opts ...Option) *Manager {
	m := &Manager{random: rand.Reader}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

var defaultManager = sync.OnceValue(func() *Manager { //nolint:gochecknoglobals
	return NewManager()
})

// Default returns the shared Manager.
func Default() *Manager {
	return defaultManager()
}

// GenerateSalt returns SaltSize random bytes.
func (m *Manager) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)

	if _, err := io.ReadFull(m.random, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	return salt, nil
}

// Hash returns the SHA-512 digest of the password's UTF-16LE bytes.
func (m *Manager) Hash(password string) ([]byte, error) {
	return hashing.Sum(sha512.New, utf16Password(password))
}

// Encode returns Hash(password) as standard base64, the form a client sends
// to be checked.
func (m *Manager) Encode(password string) (string, error) {
	sum, err := m.Hash(password)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(sum), nil
}

// AddSalt returns the SHA-512 digest of passwordHash combined with salt.
//
// The combination keeps each byte value once, in first-seen order, scanning
// passwordHash and then salt. Stored hashes were produced this way, so it
// must not change.
func (m *Manager) AddSalt(passwordHash, salt []byte) ([]byte, error) {
	return hashing.Sum(sha512.New, hashing.HashableBytes(distinctBytes(passwordHash, salt)))
}

// Check reports whether encodedHash (as produced by Encode), salted with salt,
// matches sourceHash. The comparison runs in constant time.
func (m *Manager) Check(encodedHash string, sourceHash, salt []byte) (bool, error) {
	passwordHash, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	salted, err := m.AddSalt(passwordHash, salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(salted, sourceHash) == 1, nil
}

func distinctBytes(parts ...[]byte) []byte {
	var (
		seen [256]bool
		out  []byte
	)

	for _, part := range parts {
		for _, b := range part {
			if !seen[b] {
				seen[b] = true
				out = append(out, b)
			}
		}
	}

	return out
}

type utf16Password string

func (p utf16Password) UpdateHash(h hash.Hash) error {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(string(p))
	if err != nil {
		return fmt.Errorf("encoding password: %w", err)
	}

	_, err = io.WriteString(h, encoded)

	return err
}
