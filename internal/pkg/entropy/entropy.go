// Package entropy provides the process-wide cryptographic random source.
//
// All randomness consumed by key generation and by the probabilistic padding
// schemes flows through this package. It draws exclusively from crypto/rand;
// a failure of the underlying source is fatal and surfaces as ErrEntropy,
// never as silently degraded output.
package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrEntropy indicates the operating system random source is unavailable.
// Argument mistakes are reported as plain errors, never as ErrEntropy.
var ErrEntropy = errors.New("entropy source unavailable")

// Bytes returns n unbiased random bytes. Safe for concurrent use.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative byte count %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return b, nil
}

// IntBelow returns a uniform random integer in [0, bound). The bound must be
// positive.
func IntBelow(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, errors.New("bound must be positive")
	}
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return n, nil
}

// IntRange returns a uniform random integer in [min, max).
func IntRange(min, max *big.Int) (*big.Int, error) {
	if min.Cmp(max) >= 0 {
		return nil, errors.New("empty range")
	}
	width := new(big.Int).Sub(max, min)
	n, err := IntBelow(width)
	if err != nil {
		return nil, err
	}
	return n.Add(n, min), nil
}

// OddInt returns a random integer of exactly the given bit length with both
// the top and bottom bit set, as required by prime candidate search.
func OddInt(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("bit length %d must be at least 2", bits)
	}
	b, err := Bytes((bits + 7) / 8)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(b)
	// Trim excess high bits from the leading byte, then pin the exact
	// bit length and force oddness.
	n.Rsh(n, uint(len(b)*8-bits))
	n.SetBit(n, bits-1, 1)
	n.SetBit(n, 0, 1)
	return n, nil
}
