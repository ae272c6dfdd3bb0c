// Package hashing computes digests of values that know how to feed
// themselves into a hash.Hash.
package hashing

import (
	"crypto/md5" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// Md5, Sha256 and Sha512 are HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sum feeds every part into a fresh hash, in order, and returns the digest.
func Sum(newHash func() hash.Hash, parts ...Hashable) ([]byte, error) {
	h := newHash()

	for _, part := range parts {
		if err := part.UpdateHash(h); err != nil {
			return nil, err
		}
	}

	return h.Sum(nil), nil
}

func hexSum(newHash func() hash.Hash, hashable Hashable) (string, error) {
	sum, err := Sum(newHash, hashable)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(sum), nil
}

// Md5 returns the hex-encoded MD5 digest of hashable. Not for anything
// security-sensitive.
func Md5(hashable Hashable) (string, error) {
	return hexSum(md5.New, hashable)
}

// Sha256 returns the hex-encoded SHA-256 digest of hashable.
func Sha256(hashable Hashable) (string, error) {
	return hexSum(sha256.New, hashable)
}

// Sha512 returns the hex-encoded SHA-512 digest of hashable.
func Sha512(hashable Hashable) (string, error) {
	return hexSum(sha512.New, hashable)
}

// HashableString hashes the string's UTF-8 bytes.
type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

// HashableBytes hashes the bytes as they are.
type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}
