package cryptography

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/godzivan/ttcrypt/internal/domain/factoring"
	"github.com/godzivan/ttcrypt/internal/pkg/entropy"
	"github.com/godzivan/ttcrypt/internal/pkg/logger"
	"github.com/godzivan/ttcrypt/internal/pkg/numeric"
)

// trialDivisionBound caps the small-factor sweep run before Pollard's rho
// takes over.
const trialDivisionBound = 10000

// maxRhoRestarts bounds the fresh-constant restarts per composite before the
// factorizer surfaces an error.
const maxRhoRestarts = 100

// rhoFactorizer struct that implements the factoring.Factorizer interface
type rhoFactorizer struct {
	logger logger.Logger
}

// NewRhoFactorizer creates and returns a new instance of rhoFactorizer
func NewRhoFactorizer(logger logger.Logger) (factoring.Factorizer, error) {
	return &rhoFactorizer{
		logger: logger,
	}, nil
}

// Factorize decomposes composite into its prime factors with multiplicity,
// ordered ascending. Small factors come out of a trial division sweep;
// remaining cofactors are split with Brent's variant of Pollard's rho,
// restarting with a fresh random constant whenever an attempt cycles.
func (f *rhoFactorizer) Factorize(composite *big.Int) ([]*big.Int, error) {
	if composite == nil || composite.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("%w: factorization requires an integer above 1",
			factoring.ErrInvalidInput)
	}

	remaining := new(big.Int).Set(composite)
	factors := trialDivide(remaining)

	var pending []*big.Int
	if remaining.Cmp(big.NewInt(1)) > 0 {
		pending = append(pending, remaining)
	}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		prime, err := numeric.IsProbablePrime(n, numeric.DefaultMillerRabinRounds)
		if err != nil {
			return nil, err
		}
		if prime {
			factors = append(factors, n)
			continue
		}

		divisor, err := f.findDivisor(n)
		if err != nil {
			return nil, err
		}
		pending = append(pending, divisor, new(big.Int).Div(n, divisor))
	}

	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Cmp(factors[j]) < 0
	})
	f.logger.Info("Factorized into ", len(factors), " prime factors")
	return factors, nil
}

// trialDivide strips all prime factors below trialDivisionBound out of n in
// place and returns them.
func trialDivide(n *big.Int) []*big.Int {
	var factors []*big.Int
	rem := new(big.Int)
	quo := new(big.Int)
	for d := int64(2); d < trialDivisionBound; d++ {
		div := big.NewInt(d)
		if div.Cmp(n) > 0 {
			break
		}
		for {
			quo.QuoRem(n, div, rem)
			if rem.Sign() != 0 {
				break
			}
			n.Set(quo)
			factors = append(factors, new(big.Int).Set(div))
		}
	}
	return factors
}

// findDivisor runs Brent's cycle detection on x <- x^2 + c mod n until a
// non-trivial divisor of n falls out, drawing a new starting point and
// constant for every restart. n must be odd, composite and free of factors
// below trialDivisionBound.
func (f *rhoFactorizer) findDivisor(n *big.Int) (*big.Int, error) {
	one := big.NewInt(1)
	for restart := 0; restart < maxRhoRestarts; restart++ {
		c, err := entropy.IntRange(one, n)
		if err != nil {
			return nil, err
		}
		y, err := entropy.IntBelow(n)
		if err != nil {
			return nil, err
		}
		g := brent(n, y, c)
		if g.Cmp(one) > 0 && g.Cmp(n) < 0 {
			return g, nil
		}
	}
	return nil, fmt.Errorf("pollard rho found no divisor of %s after %d restarts",
		n.String(), maxRhoRestarts)
}

// brent is Brent's improvement of Floyd's cycle detection: the tortoise is
// pinned at positions that double in distance while |x-y| products are
// accumulated and checked against n in batches. The result is a divisor of
// n, possibly the trivial n itself when the attempt cycles through.
func brent(n, y0, c *big.Int) *big.Int {
	const batch = 128

	one := big.NewInt(1)
	y := new(big.Int).Set(y0)
	x := new(big.Int)
	ys := new(big.Int)
	q := new(big.Int).Set(one)
	g := new(big.Int).Set(one)
	diff := new(big.Int)

	step := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, c)
		v.Mod(v, n)
	}

	r := 1
	for g.Cmp(one) == 0 {
		x.Set(y)
		for i := 0; i < r; i++ {
			step(y)
		}
		for k := 0; k < r && g.Cmp(one) == 0; k += batch {
			ys.Set(y)
			limit := batch
			if r-k < limit {
				limit = r - k
			}
			for i := 0; i < limit; i++ {
				step(y)
				diff.Sub(x, y)
				diff.Abs(diff)
				q.Mul(q, diff)
				q.Mod(q, n)
			}
			g.GCD(nil, nil, q, n)
		}
		r *= 2
	}

	if g.Cmp(n) == 0 {
		// The batch overshot; backtrack one step at a time.
		for {
			step(ys)
			diff.Sub(x, ys)
			diff.Abs(diff)
			g.GCD(nil, nil, diff, n)
			if g.Cmp(one) > 0 {
				break
			}
		}
	}
	return g
}
