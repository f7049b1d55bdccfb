// Package hashing resolves digest algorithms by name and implements the MGF1
// mask generation function both OAEP and PSS are built on.
package hashing

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedHash indicates an unrecognized hash algorithm identifier.
var ErrUnsupportedHash = errors.New("unsupported hash algorithm")

// New returns a fresh hash.Hash for the named algorithm. Names are matched
// case-insensitively.
func New(name string) (hash.Hash, error) {
	switch strings.ToLower(name) {
	case "sha1", "sha-1":
		return sha1.New(), nil
	case "sha256", "sha-256":
		return sha256.New(), nil
	case "sha384", "sha-384":
		return sha512.New384(), nil
	case "sha512", "sha-512":
		return sha512.New(), nil
	case "sha3-256":
		return sha3.New256(), nil
	case "sha3-512":
		return sha3.New512(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
	}
}

// Size returns the digest length in bytes of the named algorithm.
func Size(name string) (int, error) {
	h, err := New(name)
	if err != nil {
		return 0, err
	}
	return h.Size(), nil
}

// Digest hashes data with the named algorithm in one call.
func Digest(name string, data []byte) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// MGF1 produces a maskLen-byte mask from seed per RFC 8017 B.2.1: the named
// hash is applied to seed concatenated with a 32-bit big-endian counter
// starting at zero, and the outputs are concatenated and truncated to
// maskLen. Deterministic for a given (seed, maskLen, name).
func MGF1(seed []byte, maskLen int, name string) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	mask := make([]byte, 0, maskLen)
	var counter [4]byte
	for len(mask) < maskLen {
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		mask = h.Sum(mask)
		incCounter(&counter)
	}
	return mask[:maskLen], nil
}

// XorMGF1 XORs an MGF1 mask derived from seed into dst in place.
func XorMGF1(dst, seed []byte, name string) error {
	mask, err := MGF1(seed, len(dst), name)
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] ^= mask[i]
	}
	return nil
}

func incCounter(c *[4]byte) {
	for i := 3; i >= 0; i-- {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}
