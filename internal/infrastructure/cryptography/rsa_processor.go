package cryptography

import (
	"fmt"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
	"github.com/godzivan/ttcrypt/internal/pkg/logger"
)

// rsaProcessor struct that implements the rsa.Processor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (rsaDomain.Processor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKey produces a fresh private key of the requested bit strength.
// Generation is CPU-bound and may take seconds for large strengths; callers
// on a cooperative scheduler should run it on a worker of their own.
func (r *rsaProcessor) GenerateKey(bitStrength int) (*rsaDomain.Key, error) {
	key, err := generateKey(bitStrength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %w", err)
	}
	r.logger.Info("Generated RSA key pair of ", bitStrength, " bits")
	return key, nil
}

// Encrypt encrypts a message using RSAES-OAEP with the named hash.
// NOTE: RSA can only encrypt small amounts of data (< key size - padding).
func (r *rsaProcessor) Encrypt(message []byte, key *rsaDomain.Key, hashName string) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: key cannot be nil", rsaDomain.ErrInvalidArgument)
	}
	ciphertext, err := oaepEncrypt(message, key, hashName)
	if err != nil {
		return nil, err
	}
	r.logger.Info("RSA-OAEP encryption succeeded")
	return ciphertext, nil
}

// Decrypt decrypts RSAES-OAEP ciphertext using the private key. Any padding
// failure surfaces as the single rsa.ErrDecrypt.
func (r *rsaProcessor) Decrypt(ciphertext []byte, key *rsaDomain.Key, hashName string) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: key cannot be nil", rsaDomain.ErrInvalidArgument)
	}
	message, err := oaepDecrypt(ciphertext, key, hashName)
	if err != nil {
		return nil, err
	}
	r.logger.Info("RSA-OAEP decryption succeeded")
	return message, nil
}

// Sign creates an RSASSA-PSS signature with the private key and the named
// hash. The salt length equals the hash output length.
func (r *rsaProcessor) Sign(message []byte, key *rsaDomain.Key, hashName string) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: key cannot be nil", rsaDomain.ErrInvalidArgument)
	}
	signature, err := pssSign(message, key, hashName)
	if err != nil {
		return nil, err
	}
	r.logger.Info("RSA-PSS signing succeeded")
	return signature, nil
}

// Verify verifies an RSASSA-PSS signature using the public components of the
// key. A malformed signature yields (false, nil), never an error.
func (r *rsaProcessor) Verify(message, signature []byte, key *rsaDomain.Key, hashName string) (bool, error) {
	if key == nil {
		return false, fmt.Errorf("%w: key cannot be nil", rsaDomain.ErrInvalidArgument)
	}
	valid, err := pssVerify(message, signature, key, hashName)
	if err != nil {
		return false, err
	}
	if valid {
		r.logger.Info("RSA-PSS signature verified successfully")
	}
	return valid, nil
}
