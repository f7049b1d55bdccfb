package cryptography

import (
	"crypto/subtle"
	"fmt"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
	"github.com/godzivan/ttcrypt/internal/pkg/entropy"
	"github.com/godzivan/ttcrypt/internal/pkg/hashing"
	"github.com/godzivan/ttcrypt/internal/pkg/numeric"
)

// oaepEncrypt implements RSAES-OAEP encryption (RFC 8017 7.1.1) with an
// empty label: EM = 0x00 || maskedSeed || maskedDB, where DB carries the
// label hash, zero padding, a 0x01 separator and the message.
func oaepEncrypt(message []byte, key *rsaDomain.Key, hashName string) ([]byte, error) {
	hLen, err := hashing.Size(hashName)
	if err != nil {
		return nil, err
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}

	k := key.Size()
	if len(message) > k-2*hLen-2 {
		return nil, fmt.Errorf("%w: %d bytes exceed OAEP capacity %d",
			rsaDomain.ErrMessageTooLong, len(message), k-2*hLen-2)
	}

	em := make([]byte, k)
	seed := em[1 : 1+hLen]
	db := em[1+hLen:]

	lHash, err := hashing.Digest(hashName, nil)
	if err != nil {
		return nil, err
	}
	copy(db, lHash)
	db[len(db)-len(message)-1] = 0x01
	copy(db[len(db)-len(message):], message)

	seedBytes, err := entropy.Bytes(hLen)
	if err != nil {
		return nil, err
	}
	copy(seed, seedBytes)

	if err := hashing.XorMGF1(db, seed, hashName); err != nil {
		return nil, err
	}
	if err := hashing.XorMGF1(seed, db, hashName); err != nil {
		return nil, err
	}

	// The leading zero byte keeps m below the modulus.
	m := numeric.FromBytes(em)
	c, err := numeric.ModExp(m, key.E(), key.N())
	if err != nil {
		return nil, err
	}
	return numeric.FixedBytes(c, k)
}

// oaepDecrypt implements RSAES-OAEP decryption. Every decoding failure maps
// to the single rsa.ErrDecrypt so the error cannot act as a padding oracle,
// and the padding checks themselves run in constant time.
func oaepDecrypt(ciphertext []byte, key *rsaDomain.Key, hashName string) ([]byte, error) {
	hLen, err := hashing.Size(hashName)
	if err != nil {
		return nil, err
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if !key.IsPrivate() {
		return nil, rsaDomain.ErrNotPrivateKey
	}

	k := key.Size()
	if len(ciphertext) != k || k < 2*hLen+2 {
		return nil, rsaDomain.ErrDecrypt
	}

	n := key.N()
	c := numeric.FromBytes(ciphertext)
	if c.Cmp(n) >= 0 {
		return nil, rsaDomain.ErrDecrypt
	}
	m, err := numeric.ModExp(c, key.D(), n)
	if err != nil {
		return nil, rsaDomain.ErrDecrypt
	}
	em, err := numeric.FixedBytes(m, k)
	if err != nil {
		return nil, rsaDomain.ErrDecrypt
	}

	seed := em[1 : 1+hLen]
	db := em[1+hLen:]
	if err := hashing.XorMGF1(seed, db, hashName); err != nil {
		return nil, rsaDomain.ErrDecrypt
	}
	if err := hashing.XorMGF1(db, seed, hashName); err != nil {
		return nil, rsaDomain.ErrDecrypt
	}

	lHash, err := hashing.Digest(hashName, nil)
	if err != nil {
		return nil, rsaDomain.ErrDecrypt
	}
	firstByteOK := subtle.ConstantTimeByteEq(em[0], 0x00)
	lHashOK := subtle.ConstantTimeCompare(db[:hLen], lHash)

	// Scan for the 0x01 separator without branching on secret data: any
	// non-zero byte before the separator invalidates the padding.
	rest := db[hLen:]
	lookingFor := 1
	index := 0
	invalid := 0
	for i := 0; i < len(rest); i++ {
		isOne := subtle.ConstantTimeByteEq(rest[i], 0x01)
		isZero := subtle.ConstantTimeByteEq(rest[i], 0x00)
		index = subtle.ConstantTimeSelect(lookingFor&isOne, i, index)
		lookingFor = subtle.ConstantTimeSelect(isOne, 0, lookingFor)
		invalid = subtle.ConstantTimeSelect(lookingFor&^isZero, 1, invalid)
	}

	if firstByteOK&lHashOK&^invalid&^lookingFor != 1 {
		return nil, rsaDomain.ErrDecrypt
	}
	return rest[index+1:], nil
}
