package rsa

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/godzivan/ttcrypt/internal/pkg/numeric"
)

// Key holds the components of an RSA key: the public pair (n, e) and, for
// private keys, the secret components (d, p, q). A Key is immutable once
// constructed; the cached public view and the algebraic validation result are
// populated idempotently, so read-only accessors are safe to call
// concurrently.
type Key struct {
	n, e, d, p, q *big.Int

	pubOnce sync.Once
	pub     *Key

	checkOnce sync.Once
	checkErr  error
}

// NewPrivateKey builds a private key from its five components. The values are
// copied, so later mutation by the caller does not affect the key. Algebraic
// invariants are checked lazily at first cryptographic use.
func NewPrivateKey(n, e, d, p, q *big.Int) *Key {
	return &Key{
		n: cloneInt(n),
		e: cloneInt(e),
		d: cloneInt(d),
		p: cloneInt(p),
		q: cloneInt(q),
	}
}

// NewPublicKey builds a public-only key from the modulus and public exponent.
func NewPublicKey(n, e *big.Int) *Key {
	return &Key{n: cloneInt(n), e: cloneInt(e)}
}

// FromComponents builds a key from named byte-string components in unsigned
// big-endian form. Recognized names are "n", "e", "d", "p" and "q"; any other
// name fails with ErrInvalidArgument. A nil byte string marks the component
// absent, which is distinct from a zero-valued one. When p and q are supplied
// without n, the modulus is derived as their product.
func FromComponents(components map[string][]byte) (*Key, error) {
	key := &Key{}
	for name, value := range components {
		if value == nil {
			continue
		}
		v := numeric.FromBytes(value)
		switch name {
		case ComponentN:
			key.n = v
		case ComponentE:
			key.e = v
		case ComponentD:
			key.d = v
		case ComponentP:
			key.p = v
		case ComponentQ:
			key.q = v
		default:
			return nil, fmt.Errorf("%w: unknown key component %q", ErrInvalidArgument, name)
		}
	}
	if key.n == nil && key.p != nil && key.q != nil {
		key.n = new(big.Int).Mul(key.p, key.q)
	}
	return key, nil
}

// IsPrivate reports whether all secret components (d, p, q) are present.
func (k *Key) IsPrivate() bool {
	return k.d != nil && k.p != nil && k.q != nil
}

// BitLength returns the bit length of the modulus, or 0 when no modulus is
// set.
func (k *Key) BitLength() int {
	if k.n == nil {
		return 0
	}
	return k.n.BitLen()
}

// ExtractPublic returns a new key holding only the public components (n, e).
// The result shares no mutable state with the receiver and is cached, so
// repeated calls return the same value.
func (k *Key) ExtractPublic() *Key {
	k.pubOnce.Do(func() {
		k.pub = NewPublicKey(k.n, k.e)
	})
	return k.pub
}

// Components reports all five named components as minimal unsigned big-endian
// byte strings. Absent components map to nil; a present zero-valued component
// maps to an empty, non-nil slice.
func (k *Key) Components() map[string][]byte {
	return map[string][]byte{
		ComponentN: componentBytes(k.n),
		ComponentE: componentBytes(k.e),
		ComponentD: componentBytes(k.d),
		ComponentP: componentBytes(k.p),
		ComponentQ: componentBytes(k.q),
	}
}

// Validate checks the algebraic key invariants: for a private key, p and q
// prime, n = p*q and e*d = 1 mod lcm(p-1, q-1); for a public-only key, the
// presence of n and e. The check runs once and its result is cached.
func (k *Key) Validate() error {
	k.checkOnce.Do(func() {
		k.checkErr = k.validate()
	})
	return k.checkErr
}

func (k *Key) validate() error {
	if k.n == nil || k.n.Sign() == 0 {
		return fmt.Errorf("%w: key has no modulus", ErrInvalidArgument)
	}
	if k.e == nil || k.e.Sign() == 0 {
		return fmt.Errorf("%w: key has no public exponent", ErrInvalidArgument)
	}
	if !k.IsPrivate() {
		return nil
	}

	if new(big.Int).Mul(k.p, k.q).Cmp(k.n) != 0 {
		return fmt.Errorf("%w: n does not equal p*q", ErrInvalidArgument)
	}
	for _, prime := range []*big.Int{k.p, k.q} {
		ok, err := numeric.IsProbablePrime(prime, MillerRabinRounds)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: key factor is composite", ErrInvalidArgument)
		}
	}

	one := big.NewInt(1)
	lambda := numeric.LCM(
		new(big.Int).Sub(k.p, one),
		new(big.Int).Sub(k.q, one),
	)
	if numeric.GCD(k.e, lambda).Cmp(one) != 0 {
		return fmt.Errorf("%w: e is not coprime to lambda(n)", ErrInvalidArgument)
	}
	ed := new(big.Int).Mul(k.e, k.d)
	if ed.Mod(ed, lambda).Cmp(one) != 0 {
		return fmt.Errorf("%w: e*d != 1 mod lambda(n)", ErrInvalidArgument)
	}
	return nil
}

// N returns a copy of the modulus, or nil when absent.
func (k *Key) N() *big.Int { return cloneInt(k.n) }

// E returns a copy of the public exponent, or nil when absent.
func (k *Key) E() *big.Int { return cloneInt(k.e) }

// D returns a copy of the private exponent, or nil when absent.
func (k *Key) D() *big.Int { return cloneInt(k.d) }

// P returns a copy of the first prime factor, or nil when absent.
func (k *Key) P() *big.Int { return cloneInt(k.p) }

// Q returns a copy of the second prime factor, or nil when absent.
func (k *Key) Q() *big.Int { return cloneInt(k.q) }

// Size returns the modulus length in bytes.
func (k *Key) Size() int {
	return (k.BitLength() + 7) / 8
}

func cloneInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}

func componentBytes(x *big.Int) []byte {
	if x == nil {
		return nil
	}
	return numeric.MinimalBytes(x)
}
