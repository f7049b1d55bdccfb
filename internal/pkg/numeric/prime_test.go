//go:build unit
// +build unit

package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsProbablePrime(t *testing.T) {
	t.Run("SmallPrimes", func(t *testing.T) {
		for _, p := range []int64{2, 3, 5, 7, 97, 101, 257, 65537} {
			ok, err := IsProbablePrime(big.NewInt(p), DefaultMillerRabinRounds)
			require.NoError(t, err)
			assert.True(t, ok, "%d should be prime", p)
		}
	})

	t.Run("SmallComposites", func(t *testing.T) {
		for _, c := range []int64{4, 9, 15, 91, 105, 1001, 65535} {
			ok, err := IsProbablePrime(big.NewInt(c), DefaultMillerRabinRounds)
			require.NoError(t, err)
			assert.False(t, ok, "%d should be composite", c)
		}
	})

	t.Run("CarmichaelNumbers", func(t *testing.T) {
		// Fermat pseudoprimes to every base; Miller-Rabin must still
		// reject them.
		for _, c := range []int64{561, 1105, 1729, 2465, 6601} {
			ok, err := IsProbablePrime(big.NewInt(c), DefaultMillerRabinRounds)
			require.NoError(t, err)
			assert.False(t, ok, "%d should be composite", c)
		}
	})

	t.Run("MersennePrime", func(t *testing.T) {
		// 2^127 - 1
		p := new(big.Int).Lsh(big.NewInt(1), 127)
		p.Sub(p, big.NewInt(1))
		ok, err := IsProbablePrime(p, DefaultMillerRabinRounds)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("LargeComposite", func(t *testing.T) {
		// (2^127 - 1) * (2^61 - 1)
		a := new(big.Int).Lsh(big.NewInt(1), 127)
		a.Sub(a, big.NewInt(1))
		b := new(big.Int).Lsh(big.NewInt(1), 61)
		b.Sub(b, big.NewInt(1))
		ok, err := IsProbablePrime(new(big.Int).Mul(a, b), DefaultMillerRabinRounds)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("EdgeValues", func(t *testing.T) {
		for _, v := range []int64{-7, 0, 1} {
			ok, err := IsProbablePrime(big.NewInt(v), DefaultMillerRabinRounds)
			require.NoError(t, err)
			assert.False(t, ok, "%d is not prime", v)
		}
	})

	t.Run("DefaultRounds", func(t *testing.T) {
		// Non-positive round counts fall back to the default.
		ok, err := IsProbablePrime(big.NewInt(101), 0)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
