// Package numeric collects the arbitrary-precision integer helpers the RSA
// engine is built on: byte/hex codecs, modular arithmetic and probabilistic
// primality testing over math/big.
package numeric

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero reports a modular operation with a zero modulus.
var ErrDivisionByZero = errors.New("division by zero modulus")

var one = big.NewInt(1)

// FromBytes interprets b as an unsigned big-endian integer. The empty slice
// decodes to zero, so FromBytes is the exact inverse of MinimalBytes for all
// non-negative integers.
func FromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// MinimalBytes encodes a non-negative integer as its shortest unsigned
// big-endian representation: no leading zero byte, and zero encodes to the
// empty slice.
func MinimalBytes(x *big.Int) []byte {
	return x.Bytes()
}

// FixedBytes encodes a non-negative integer left-padded with zeros to exactly
// size bytes, as required for I2OSP-style wire output. It fails if x does not
// fit.
func FixedBytes(x *big.Int, size int) ([]byte, error) {
	b := x.Bytes()
	if len(b) > size {
		return nil, fmt.Errorf("integer of %d bytes does not fit in %d", len(b), size)
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out, nil
}

// FromHex decodes a hexadecimal string, with or without a 0x prefix, into a
// non-negative integer. The empty string decodes to zero.
func FromHex(s string) (*big.Int, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if s == "" {
		return new(big.Int), nil
	}
	x, ok := new(big.Int).SetString(s, 16)
	if !ok || x.Sign() < 0 {
		return nil, fmt.Errorf("invalid hexadecimal integer %q", s)
	}
	return x, nil
}

// Hex encodes a non-negative integer as a lowercase hexadecimal string with
// no prefix and no leading zeros; zero encodes to "0".
func Hex(x *big.Int) string {
	return x.Text(16)
}

// ModExp computes base^exp mod m by repeated squaring. The modulus must be
// non-zero.
func ModExp(base, exp, m *big.Int) (*big.Int, error) {
	if m.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Int).Exp(base, exp, m), nil
}

// ExtGCD runs the extended Euclidean algorithm, returning g = gcd(a, b) and
// Bézout coefficients x, y with a·x + b·y = g.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int) {
	x = new(big.Int)
	y = new(big.Int)
	g = new(big.Int).GCD(x, y, a, b)
	return g, x, y
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// LCM returns the least common multiple of a and b.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := GCD(a, b)
	l := new(big.Int).Div(a, g)
	return l.Mul(l, b)
}

// ModInverse returns the multiplicative inverse of a modulo m, or an error if
// gcd(a, m) != 1 and no inverse exists.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, fmt.Errorf("no inverse: gcd(%s, m) != 1", a.String())
	}
	return inv, nil
}
