package rsa

import "errors"

// ErrInvalidArgument indicates an unknown key component name or a malformed
// component encoding.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrKeyGen indicates the requested bit strength is unachievable or prime
// search exceeded its retry bound.
var ErrKeyGen = errors.New("key generation failed")

// ErrNotPrivateKey indicates decrypt or sign was attempted on a public-only
// key.
var ErrNotPrivateKey = errors.New("operation requires a private key")

// ErrMessageTooLong indicates the plaintext exceeds the OAEP capacity for the
// key size and hash.
var ErrMessageTooLong = errors.New("message too long for key size")

// ErrEncoding indicates the PSS parameters do not fit the modulus size.
var ErrEncoding = errors.New("encoding error")

// ErrDecrypt is the single undifferentiated OAEP decoding failure. The cause
// is deliberately not exposed so the error cannot serve as a padding oracle.
var ErrDecrypt = errors.New("decryption error")
