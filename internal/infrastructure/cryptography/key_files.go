package cryptography

import (
	stdrsa "crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
)

// SavePrivateKeyToFile saves a private key to a PEM-encoded file (PKCS#1
// format).
func SavePrivateKeyToFile(key *rsaDomain.Key, filename string) error {
	stdKey, err := toStdPrivateKey(key)
	if err != nil {
		return err
	}
	privKeyPem := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(stdKey),
	}

	file, err := os.Create(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to create private key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if err := pem.Encode(file, privKeyPem); err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}
	return nil
}

// SavePublicKeyToFile saves the public components of a key to a PEM-encoded
// file (PKIX format).
func SavePublicKeyToFile(key *rsaDomain.Key, filename string) error {
	stdKey, err := toStdPublicKey(key)
	if err != nil {
		return err
	}
	pubKeyBytes, err := x509.MarshalPKIXPublicKey(stdKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}
	pubKeyPem := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubKeyBytes,
	}

	file, err := os.Create(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to create public key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if err := pem.Encode(file, pubKeyPem); err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}
	return nil
}

// ReadPrivateKey reads a private key from a PEM-encoded file in PKCS#1 or
// PKCS#8 format.
func ReadPrivateKey(privateKeyPath string) (*rsaDomain.Key, error) {
	privKeyPEM, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	block, _ := pem.Decode(privKeyPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the private key")
	}

	if stdKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return fromStdPrivateKey(stdKey)
	}

	keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in either PKCS#1 or PKCS#8 format: %w", err)
	}
	stdKey, ok := keyInterface.(*stdrsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not of type RSA")
	}
	return fromStdPrivateKey(stdKey)
}

// ReadPublicKey reads a public key from a PEM-encoded file in PKCS#1 or PKIX
// format.
func ReadPublicKey(publicKeyPath string) (*rsaDomain.Key, error) {
	pubKeyPEM, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	block, _ := pem.Decode(pubKeyPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the public key")
	}

	if stdKey, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return fromStdPublicKey(stdKey), nil
	}

	pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in either PKCS#1 or PKIX format: %w", err)
	}
	stdKey, ok := pubKeyInterface.(*stdrsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not of type RSA")
	}
	return fromStdPublicKey(stdKey), nil
}

func toStdPrivateKey(key *rsaDomain.Key) (*stdrsa.PrivateKey, error) {
	if !key.IsPrivate() {
		return nil, rsaDomain.ErrNotPrivateKey
	}
	e := key.E()
	if !e.IsInt64() || e.Int64() > int64(^uint32(0)>>1) {
		return nil, fmt.Errorf("%w: public exponent too large for PEM encoding",
			rsaDomain.ErrInvalidArgument)
	}
	stdKey := &stdrsa.PrivateKey{
		PublicKey: stdrsa.PublicKey{
			N: key.N(),
			E: int(e.Int64()),
		},
		D:      key.D(),
		Primes: []*big.Int{key.P(), key.Q()},
	}
	stdKey.Precompute()
	return stdKey, nil
}

func toStdPublicKey(key *rsaDomain.Key) (*stdrsa.PublicKey, error) {
	n := key.N()
	e := key.E()
	if n == nil || e == nil {
		return nil, fmt.Errorf("%w: key has no public components",
			rsaDomain.ErrInvalidArgument)
	}
	if !e.IsInt64() || e.Int64() > int64(^uint32(0)>>1) {
		return nil, fmt.Errorf("%w: public exponent too large for PEM encoding",
			rsaDomain.ErrInvalidArgument)
	}
	return &stdrsa.PublicKey{N: n, E: int(e.Int64())}, nil
}

func fromStdPrivateKey(stdKey *stdrsa.PrivateKey) (*rsaDomain.Key, error) {
	if len(stdKey.Primes) != 2 {
		return nil, fmt.Errorf("%w: expected a two-prime RSA key",
			rsaDomain.ErrInvalidArgument)
	}
	return rsaDomain.NewPrivateKey(
		stdKey.N,
		big.NewInt(int64(stdKey.E)),
		stdKey.D,
		stdKey.Primes[0],
		stdKey.Primes[1],
	), nil
}

func fromStdPublicKey(stdKey *stdrsa.PublicKey) *rsaDomain.Key {
	return rsaDomain.NewPublicKey(stdKey.N, big.NewInt(int64(stdKey.E)))
}
