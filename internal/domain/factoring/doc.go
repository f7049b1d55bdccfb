// Package factoring defines the contract for general-purpose integer
// factorization, independent of the RSA key model.
package factoring
