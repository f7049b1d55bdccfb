//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSSEncode(t *testing.T) {
	salt := make([]byte, 20)
	for i := range salt {
		salt[i] = byte(i)
	}

	em, err := pssEncode([]byte("message"), salt, 511, "sha1")
	require.NoError(t, err)

	assert.Len(t, em, 64)
	assert.Equal(t, byte(0xBC), em[63], "trailer byte")
	assert.Equal(t, byte(0), em[0]>>7, "leftmost bit cleared for emBits = 511")

	// Deterministic for a fixed salt.
	again, err := pssEncode([]byte("message"), salt, 511, "sha1")
	require.NoError(t, err)
	assert.Equal(t, em, again)

	// A different salt moves the whole masked data block.
	salt[0] ^= 0xFF
	other, err := pssEncode([]byte("message"), salt, 511, "sha1")
	require.NoError(t, err)
	assert.NotEqual(t, em, other)
}
