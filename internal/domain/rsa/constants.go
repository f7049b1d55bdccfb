package rsa

// DefaultPublicExponent is the fixed public exponent used by key generation.
const DefaultPublicExponent = 65537

// MinBitStrength is the smallest key size generation accepts.
const MinBitStrength = 512

// MillerRabinRounds bounds the prime false-positive probability of generated
// keys by 4^-64 = 2^-128.
const MillerRabinRounds = 64

// MaxPrimeSearchAttempts bounds the candidate draws per prime before key
// generation gives up.
const MaxPrimeSearchAttempts = 100000

// DefaultHash is the digest used when a caller does not name one.
const DefaultHash = "sha1"

// Component names accepted by FromComponents and reported by Components.
const (
	ComponentN = "n"
	ComponentE = "e"
	ComponentD = "d"
	ComponentP = "p"
	ComponentQ = "q"
)
