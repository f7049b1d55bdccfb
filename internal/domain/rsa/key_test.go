//go:build unit
// +build unit

package rsa

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTextbookKey builds the classic example key with p = 61, q = 53, e = 17
// and d = 413 (computed modulo lcm(60, 52) = 780).
func newTextbookKey() *Key {
	return NewPrivateKey(
		big.NewInt(3233),
		big.NewInt(17),
		big.NewInt(413),
		big.NewInt(61),
		big.NewInt(53),
	)
}

func TestFromComponents(t *testing.T) {
	t.Run("PublicKey", func(t *testing.T) {
		key, err := FromComponents(map[string][]byte{
			"n": {0x0c, 0xa1}, // 3233
			"e": {0x11},       // 17
		})
		require.NoError(t, err)
		assert.False(t, key.IsPrivate())
		assert.Equal(t, 12, key.BitLength())
		assert.NoError(t, key.Validate())
	})

	t.Run("PrivateKey", func(t *testing.T) {
		key, err := FromComponents(map[string][]byte{
			"n": {0x0c, 0xa1},
			"e": {0x11},
			"d": {0x01, 0x9d}, // 413
			"p": {0x3d},       // 61
			"q": {0x35},       // 53
		})
		require.NoError(t, err)
		assert.True(t, key.IsPrivate())
		assert.NoError(t, key.Validate())
	})

	t.Run("DerivesModulusFromFactors", func(t *testing.T) {
		key, err := FromComponents(map[string][]byte{
			"e": {0x11},
			"d": {0x01, 0x9d},
			"p": {0x3d},
			"q": {0x35},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3233), key.N().Int64())
	})

	t.Run("UnknownComponent", func(t *testing.T) {
		_, err := FromComponents(map[string][]byte{
			"n": {0x0c, 0xa1},
			"x": {0x01},
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("NilComponentIsAbsent", func(t *testing.T) {
		key, err := FromComponents(map[string][]byte{
			"n": {0x0c, 0xa1},
			"e": {0x11},
			"d": nil,
		})
		require.NoError(t, err)
		assert.False(t, key.IsPrivate())
		assert.Nil(t, key.D())
	})
}

func TestValidate(t *testing.T) {
	t.Run("TextbookKey", func(t *testing.T) {
		assert.NoError(t, newTextbookKey().Validate())
	})

	t.Run("NoModulus", func(t *testing.T) {
		key, err := FromComponents(map[string][]byte{"e": {0x11}})
		require.NoError(t, err)
		assert.ErrorIs(t, key.Validate(), ErrInvalidArgument)
	})

	t.Run("WrongModulus", func(t *testing.T) {
		key := NewPrivateKey(
			big.NewInt(3234), // not 61*53
			big.NewInt(17),
			big.NewInt(413),
			big.NewInt(61),
			big.NewInt(53),
		)
		assert.ErrorIs(t, key.Validate(), ErrInvalidArgument)
	})

	t.Run("CompositeFactor", func(t *testing.T) {
		key := NewPrivateKey(
			big.NewInt(60*53),
			big.NewInt(17),
			big.NewInt(413),
			big.NewInt(60),
			big.NewInt(53),
		)
		assert.ErrorIs(t, key.Validate(), ErrInvalidArgument)
	})

	t.Run("WrongPrivateExponent", func(t *testing.T) {
		key := NewPrivateKey(
			big.NewInt(3233),
			big.NewInt(17),
			big.NewInt(412),
			big.NewInt(61),
			big.NewInt(53),
		)
		assert.ErrorIs(t, key.Validate(), ErrInvalidArgument)
	})

	t.Run("ResultIsCached", func(t *testing.T) {
		key := newTextbookKey()
		require.NoError(t, key.Validate())
		assert.NoError(t, key.Validate())
	})
}

func TestExtractPublic(t *testing.T) {
	key := newTextbookKey()
	pub := key.ExtractPublic()

	assert.False(t, pub.IsPrivate())
	assert.Equal(t, 0, pub.N().Cmp(key.N()))
	assert.Equal(t, 0, pub.E().Cmp(key.E()))
	assert.Nil(t, pub.D())
	assert.Nil(t, pub.P())
	assert.Nil(t, pub.Q())

	// Cached: repeated calls return the same value.
	assert.Same(t, pub, key.ExtractPublic())
}

func TestComponents(t *testing.T) {
	t.Run("PrivateKey", func(t *testing.T) {
		components := newTextbookKey().Components()
		assert.Equal(t, []byte{0x0c, 0xa1}, components["n"])
		assert.Equal(t, []byte{0x11}, components["e"])
		assert.Equal(t, []byte{0x01, 0x9d}, components["d"])
		assert.Equal(t, []byte{0x3d}, components["p"])
		assert.Equal(t, []byte{0x35}, components["q"])
	})

	t.Run("AbsentDistinctFromZero", func(t *testing.T) {
		key, err := FromComponents(map[string][]byte{
			"n": {0x0c, 0xa1},
			"e": {}, // present, zero-valued
		})
		require.NoError(t, err)
		components := key.Components()
		assert.NotNil(t, components["e"])
		assert.Empty(t, components["e"])
		assert.Nil(t, components["d"])
	})
}

// Read-only accessors only populate idempotent caches, so hammering them
// from many goroutines on one key must stay race-free (run with -race) and
// must observe a single cached public view.
func TestConcurrentAccessors(t *testing.T) {
	const goroutines = 16

	key := newTextbookKey()
	pubs := make([]*Key, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				pubs[g] = key.ExtractPublic()
				if err := key.Validate(); err != nil {
					t.Errorf("Validate: %v", err)
					return
				}
				if got := key.BitLength(); got != 12 {
					t.Errorf("BitLength = %d, want 12", got)
					return
				}
				components := key.Components()
				if len(components[ComponentN]) == 0 {
					t.Error("Components returned no modulus")
					return
				}
			}
		}(g)
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		assert.Same(t, pubs[0], pubs[g])
	}
}

func TestKeyImmutability(t *testing.T) {
	n := big.NewInt(3233)
	key := NewPublicKey(n, big.NewInt(17))
	n.SetInt64(9999)
	assert.Equal(t, int64(3233), key.N().Int64())

	// Accessor results are copies too.
	key.N().SetInt64(1)
	assert.Equal(t, int64(3233), key.N().Int64())
}
