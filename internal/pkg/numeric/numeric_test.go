//go:build unit
// +build unit

package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		values := []string{"0", "1", "255", "256", "65537", "340282366920938463463374607431768211455"}
		for _, s := range values {
			x, ok := new(big.Int).SetString(s, 10)
			require.True(t, ok)
			assert.Equal(t, 0, FromBytes(MinimalBytes(x)).Cmp(x), "round trip failed for %s", s)
		}
	})

	t.Run("MinimalHasNoLeadingZero", func(t *testing.T) {
		b := MinimalBytes(big.NewInt(65537))
		assert.Equal(t, []byte{0x01, 0x00, 0x01}, b)
	})

	t.Run("ZeroEncodesEmpty", func(t *testing.T) {
		assert.Empty(t, MinimalBytes(big.NewInt(0)))
	})

	t.Run("FixedBytesPads", func(t *testing.T) {
		b, err := FixedBytes(big.NewInt(65537), 5)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00, 0x01}, b)
	})

	t.Run("FixedBytesOverflow", func(t *testing.T) {
		_, err := FixedBytes(big.NewInt(65537), 2)
		assert.Error(t, err)
	})
}

func TestHexCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		values := []string{"0", "1", "255", "65537", "340282366920938463463374607431768211455"}
		for _, s := range values {
			x, ok := new(big.Int).SetString(s, 10)
			require.True(t, ok)
			decoded, err := FromHex(Hex(x))
			require.NoError(t, err)
			assert.Equal(t, 0, decoded.Cmp(x), "round trip failed for %s", s)
		}
	})

	t.Run("AcceptsPrefix", func(t *testing.T) {
		x, err := FromHex("0xFF")
		require.NoError(t, err)
		assert.Equal(t, int64(255), x.Int64())
	})

	t.Run("EmptyDecodesZero", func(t *testing.T) {
		x, err := FromHex("")
		require.NoError(t, err)
		assert.Equal(t, 0, x.Sign())
	})

	t.Run("ZeroEncodesZeroDigit", func(t *testing.T) {
		assert.Equal(t, "0", Hex(big.NewInt(0)))
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		_, err := FromHex("0xZZ")
		assert.Error(t, err)
		_, err = FromHex("-ff")
		assert.Error(t, err)
	})
}

func TestModExp(t *testing.T) {
	t.Run("TextbookVector", func(t *testing.T) {
		// 65^17 mod 3233 = 2790, the classic RSA example with
		// n = 61*53 and e = 17.
		c, err := ModExp(big.NewInt(65), big.NewInt(17), big.NewInt(3233))
		require.NoError(t, err)
		assert.Equal(t, int64(2790), c.Int64())

		m, err := ModExp(c, big.NewInt(413), big.NewInt(3233))
		require.NoError(t, err)
		assert.Equal(t, int64(65), m.Int64())
	})

	t.Run("ZeroModulus", func(t *testing.T) {
		_, err := ModExp(big.NewInt(2), big.NewInt(10), big.NewInt(0))
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestExtGCD(t *testing.T) {
	a := big.NewInt(240)
	b := big.NewInt(46)
	g, x, y := ExtGCD(a, b)

	assert.Equal(t, int64(2), g.Int64())

	// a*x + b*y = g
	lhs := new(big.Int).Mul(a, x)
	lhs.Add(lhs, new(big.Int).Mul(b, y))
	assert.Equal(t, 0, lhs.Cmp(g))
}

func TestModInverse(t *testing.T) {
	t.Run("TextbookKey", func(t *testing.T) {
		// d = 17^-1 mod lcm(60, 52) = 413
		d, err := ModInverse(big.NewInt(17), big.NewInt(780))
		require.NoError(t, err)
		assert.Equal(t, int64(413), d.Int64())
	})

	t.Run("NoInverse", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(6), big.NewInt(9))
		assert.Error(t, err)
	})

	t.Run("ZeroModulus", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(3), big.NewInt(0))
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestLCM(t *testing.T) {
	assert.Equal(t, int64(780), LCM(big.NewInt(60), big.NewInt(52)).Int64())
	assert.Equal(t, int64(12), LCM(big.NewInt(4), big.NewInt(6)).Int64())
	assert.Equal(t, int64(0), LCM(big.NewInt(0), big.NewInt(6)).Int64())
}
