package cryptography

import (
	"fmt"
	"math/big"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
	"github.com/godzivan/ttcrypt/internal/pkg/entropy"
	"github.com/godzivan/ttcrypt/internal/pkg/numeric"
)

// maxKeyPairAttempts bounds the prime pair draws before generation gives up.
const maxKeyPairAttempts = 64

// generateKey implements the RSA key generation algorithm: two independent
// random primes of half the requested strength, screened for closeness and
// for coprimality of p-1 with the fixed public exponent, with the private
// exponent computed modulo the Carmichael function lcm(p-1, q-1).
func generateKey(bitStrength int) (*rsaDomain.Key, error) {
	if bitStrength < rsaDomain.MinBitStrength {
		return nil, fmt.Errorf("%w: bit strength %d below minimum %d",
			rsaDomain.ErrKeyGen, bitStrength, rsaDomain.MinBitStrength)
	}

	e := big.NewInt(rsaDomain.DefaultPublicExponent)
	one := big.NewInt(1)
	pBits := bitStrength / 2
	qBits := bitStrength - pBits

	for attempt := 0; attempt < maxKeyPairAttempts; attempt++ {
		p, err := generatePrime(pBits, e)
		if err != nil {
			return nil, err
		}
		q, err := generatePrime(qBits, e)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		if primesTooClose(p, q, bitStrength) {
			continue
		}

		n := new(big.Int).Mul(p, q)
		lambda := numeric.LCM(
			new(big.Int).Sub(p, one),
			new(big.Int).Sub(q, one),
		)
		d, err := numeric.ModInverse(e, lambda)
		if err != nil {
			// gcd(e, p-1) and gcd(e, q-1) were already screened, so
			// this indicates an unlucky shared factor in lambda.
			continue
		}
		return rsaDomain.NewPrivateKey(n, e, d, p, q), nil
	}
	return nil, fmt.Errorf("%w: no suitable prime pair after %d attempts",
		rsaDomain.ErrKeyGen, maxKeyPairAttempts)
}

// generatePrime searches random odd candidates of exactly bits length until
// one passes the Miller-Rabin test and has p-1 coprime to e.
func generatePrime(bits int, e *big.Int) (*big.Int, error) {
	one := big.NewInt(1)
	pMinus1 := new(big.Int)
	for attempt := 0; attempt < rsaDomain.MaxPrimeSearchAttempts; attempt++ {
		candidate, err := entropy.OddInt(bits)
		if err != nil {
			return nil, err
		}
		pMinus1.Sub(candidate, one)
		if numeric.GCD(e, pMinus1).Cmp(one) != 0 {
			continue
		}
		prime, err := numeric.IsProbablePrime(candidate, rsaDomain.MillerRabinRounds)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: prime search exceeded %d attempts",
		rsaDomain.ErrKeyGen, rsaDomain.MaxPrimeSearchAttempts)
}

// primesTooClose rejects pairs whose difference is small enough to make the
// modulus vulnerable to Fermat factorization: |p-q| must exceed
// 2^(bitStrength/2 - 100).
func primesTooClose(p, q *big.Int, bitStrength int) bool {
	diff := new(big.Int).Sub(p, q)
	diff.Abs(diff)
	threshold := bitStrength/2 - 100
	if threshold < 1 {
		threshold = 1
	}
	return diff.BitLen() <= threshold
}
