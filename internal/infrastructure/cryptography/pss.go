package cryptography

import (
	"bytes"
	"fmt"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
	"github.com/godzivan/ttcrypt/internal/pkg/entropy"
	"github.com/godzivan/ttcrypt/internal/pkg/hashing"
	"github.com/godzivan/ttcrypt/internal/pkg/numeric"
)

// pssSign implements RSASSA-PSS signing (RFC 8017 8.1.1) with the salt
// length fixed to the hash output length. The encoded message spans
// emBits = modBits - 1 bits, so its leftmost bit is always cleared.
func pssSign(message []byte, key *rsaDomain.Key, hashName string) ([]byte, error) {
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

	emBits := key.BitLength() - 1
	emLen := (emBits + 7) / 8
	sLen := hLen
	if emLen < hLen+sLen+2 {
		return nil, fmt.Errorf("%w: modulus too small for %s with %d-byte salt",
			rsaDomain.ErrEncoding, hashName, sLen)
	}

	salt, err := entropy.Bytes(sLen)
	if err != nil {
		return nil, err
	}
	em, err := pssEncode(message, salt, emBits, hashName)
	if err != nil {
		return nil, err
	}

	k := key.Size()
	m := numeric.FromBytes(em)
	s, err := numeric.ModExp(m, key.D(), key.N())
	if err != nil {
		return nil, err
	}
	return numeric.FixedBytes(s, k)
}

// pssEncode builds EM = maskedDB || H || 0xBC per EMSA-PSS-ENCODE, where
// H = hash(0x00*8 || mHash || salt) and DB = PS || 0x01 || salt.
func pssEncode(message, salt []byte, emBits int, hashName string) ([]byte, error) {
	hLen, err := hashing.Size(hashName)
	if err != nil {
		return nil, err
	}
	emLen := (emBits + 7) / 8

	mHash, err := hashing.Digest(hashName, message)
	if err != nil {
		return nil, err
	}
	mPrime := make([]byte, 0, 8+hLen+len(salt))
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, mHash...)
	mPrime = append(mPrime, salt...)
	h, err := hashing.Digest(hashName, mPrime)
	if err != nil {
		return nil, err
	}

	em := make([]byte, emLen)
	db := em[:emLen-hLen-1]
	db[len(db)-len(salt)-1] = 0x01
	copy(db[len(db)-len(salt):], salt)

	if err := hashing.XorMGF1(db, h, hashName); err != nil {
		return nil, err
	}
	// Clear the bits that fall outside emBits.
	em[0] &= 0xFF >> (8*emLen - emBits)

	copy(em[emLen-hLen-1:], h)
	em[emLen-1] = 0xBC
	return em, nil
}

// pssVerify implements RSASSA-PSS verification (RFC 8017 8.1.2). It is a
// pure predicate: every structural mismatch in the signature yields
// (false, nil), and only malformed inputs produce an error.
func pssVerify(message, signature []byte, key *rsaDomain.Key, hashName string) (bool, error) {
	hLen, err := hashing.Size(hashName)
	if err != nil {
		return false, err
	}
	if err := key.Validate(); err != nil {
		return false, err
	}

	k := key.Size()
	if len(signature) != k {
		return false, nil
	}
	n := key.N()
	s := numeric.FromBytes(signature)
	if s.Cmp(n) >= 0 {
		return false, nil
	}
	m, err := numeric.ModExp(s, key.E(), n)
	if err != nil {
		return false, err
	}

	emBits := key.BitLength() - 1
	emLen := (emBits + 7) / 8
	sLen := hLen
	if emLen < hLen+sLen+2 {
		return false, nil
	}
	em, err := numeric.FixedBytes(m, emLen)
	if err != nil {
		return false, nil
	}

	if em[emLen-1] != 0xBC {
		return false, nil
	}
	db := make([]byte, emLen-hLen-1)
	copy(db, em[:emLen-hLen-1])
	h := em[emLen-hLen-1 : emLen-1]

	// The leftmost 8*emLen-emBits bits must be zero.
	if em[0]&^(0xFF>>(8*emLen-emBits)) != 0 {
		return false, nil
	}

	if err := hashing.XorMGF1(db, h, hashName); err != nil {
		return false, err
	}
	db[0] &= 0xFF >> (8*emLen - emBits)

	// DB must be PS zeros, a 0x01 separator, then the salt.
	psLen := emLen - hLen - sLen - 2
	for _, b := range db[:psLen] {
		if b != 0 {
			return false, nil
		}
	}
	if db[psLen] != 0x01 {
		return false, nil
	}
	salt := db[psLen+1:]

	mHash, err := hashing.Digest(hashName, message)
	if err != nil {
		return false, err
	}
	mPrime := make([]byte, 0, 8+hLen+sLen)
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, mHash...)
	mPrime = append(mPrime, salt...)
	hPrime, err := hashing.Digest(hashName, mPrime)
	if err != nil {
		return false, err
	}
	return bytes.Equal(h, hPrime), nil
}
