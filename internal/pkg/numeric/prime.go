package numeric

import (
	"math/big"

	"github.com/godzivan/ttcrypt/internal/pkg/entropy"
)

// DefaultMillerRabinRounds gives a false-positive probability of at most
// 2^-128 per tested candidate (each round contributes a factor of 1/4).
const DefaultMillerRabinRounds = 64

// smallPrimes screens out candidates with tiny factors before the expensive
// Miller-Rabin rounds run.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149,
	151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251,
}

// IsProbablePrime runs the Miller-Rabin primality test with uniformly random
// bases drawn from the entropy source. A false return is definitive; a true
// return is wrong with probability at most 4^-rounds.
func IsProbablePrime(n *big.Int, rounds int) (bool, error) {
	if rounds <= 0 {
		rounds = DefaultMillerRabinRounds
	}
	if n.Sign() <= 0 || n.Cmp(one) == 0 {
		return false, nil
	}

	rem := new(big.Int)
	for _, p := range smallPrimes {
		sp := big.NewInt(p)
		if n.Cmp(sp) == 0 {
			return true, nil
		}
		if rem.Mod(n, sp).Sign() == 0 {
			return false, nil
		}
	}

	// n-1 = d * 2^s with d odd
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	two := big.NewInt(2)
	for i := 0; i < rounds; i++ {
		a, err := entropy.IntRange(two, nMinus1)
		if err != nil {
			return false, err
		}
		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		witness := true
		for r := 1; r < s; r++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}
	return true, nil
}
