package passhash

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns passwords into storable hashes and checks them later.
type Hasher interface {
	Hash(password string) ([]byte, error)
	Verify(password string, stored []byte) (bool, error)
}

var (
	_ Hasher = (*SaltedSHA512)(nil)
	_ Hasher = BcryptHasher{}
)

// SaltedSHA512 stores salt followed by Manager.AddSalt(Manager.Hash(password), salt).
type SaltedSHA512 struct {
	Manager *Manager
}

func (s *SaltedSHA512) manager() *Manager {
	if s.Manager == nil {
		return Default()
	}

	return s.Manager
}

func (s *SaltedSHA512) Hash(password string) ([]byte, error) {
	m := s.manager()

	salt, err := m.GenerateSalt()
	if err != nil {
		return nil, err
	}

	sum, err := s.digest(password, salt)
	if err != nil {
		return nil, err
	}

	return append(salt, sum...), nil
}

func (s *SaltedSHA512) Verify(password string, stored []byte) (bool, error) {
	if len(stored) <= SaltSize {
		return false, fmt.Errorf("%w: %d bytes", ErrMalformedHash, len(stored))
	}

	salt, want := stored[:SaltSize], stored[SaltSize:]

	sum, err := s.digest(password, salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(sum, want) == 1, nil
}

func (s *SaltedSHA512) digest(password string, salt []byte) ([]byte, error) {
	m := s.manager()

	passwordHash, err := m.Hash(password)
	if err != nil {
		return nil, err
	}

	return m.AddSalt(passwordHash, salt)
}

// BcryptHasher hashes with bcrypt. A zero Cost means bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (b BcryptHasher) Hash(password string) ([]byte, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

func (b BcryptHasher) Verify(password string, stored []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword(stored, []byte(password))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
