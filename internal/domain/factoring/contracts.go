package factoring

import (
	"errors"
	"math/big"
)

// ErrInvalidInput indicates factorization was requested for a number with no
// defined factorization (anything below 2).
var ErrInvalidInput = errors.New("no factorization defined")

// Factorizer decomposes composites into prime factors. Factorization is
// CPU-bound and potentially long-running; it is exposed as a plain blocking
// call, with any offloading left to the caller.
type Factorizer interface {
	// Factorize returns the prime factors of composite with multiplicity,
	// ordered ascending, such that their product equals composite.
	// Inputs below 2 fail with ErrInvalidInput.
	Factorize(composite *big.Int) ([]*big.Int, error)
}
