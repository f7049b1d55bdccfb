package rsa

// Processor handles RSA asymmetric cryptographic operations: key generation,
// RSAES-OAEP encryption and RSASSA-PSS signatures. All operations are plain
// blocking calls with no internal threading; callers that must not stall a
// scheduler are responsible for running the long ones (key generation and
// large-key private operations) on a worker of their own.
type Processor interface {
	// GenerateKey produces a fresh private key of the requested bit
	// strength using random prime search. Strengths below MinBitStrength
	// fail with ErrKeyGen.
	GenerateKey(bitStrength int) (*Key, error)

	// Encrypt applies RSAES-OAEP with the named hash and returns the
	// ciphertext as a modulus-sized byte string. Plaintexts above the OAEP
	// capacity fail with ErrMessageTooLong.
	Encrypt(message []byte, key *Key, hashName string) ([]byte, error)

	// Decrypt reverses Encrypt. It requires a private key and reports any
	// padding failure as the single ErrDecrypt.
	Decrypt(ciphertext []byte, key *Key, hashName string) ([]byte, error)

	// Sign produces an RSASSA-PSS signature over message with the named
	// hash; the salt length equals the hash output length.
	Sign(message []byte, key *Key, hashName string) ([]byte, error)

	// Verify checks an RSASSA-PSS signature. Malformed signatures yield
	// (false, nil); only malformed inputs (wrong key type, unknown hash)
	// yield an error.
	Verify(message, signature []byte, key *Key, hashName string) (bool, error)
}
