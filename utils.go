package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"runtime"
)

// HashFunction defines the interface for hash functions used in the library
type HashFunction interface {
	hash.Hash
}

// DefaultHashFunction returns SHA-256 as the default hash function
func DefaultHashFunction() HashFunction {
	return sha256.New()
}

// ScalarPowers returns the ladder [x^0, x^1, ..., x^(n-1)].
// x = 0 yields [1, 0, 0, ...]; n <= 0 yields an empty slice.
func ScalarPowers(curve Curve, x Scalar, n int) []Scalar {
	if n <= 0 {
		return []Scalar{}
	}

	result := make([]Scalar, n)
	current := curve.ScalarOne()
	for i := 0; i < n; i++ {
		result[i] = current
		current = current.Mul(x)
	}
	return result
}

// ScalarFromInt64 maps a signed integer into the scalar field, negative
// values landing on r - |v|
func ScalarFromInt64(curve Curve, v int64) Scalar {
	if v >= 0 {
		return curve.ScalarFromUint64(uint64(v))
	}
	// -v overflows for MinInt64, uint64 conversion of the two's complement does not
	return curve.ScalarFromUint64(uint64(-(v + 1)) + 1).Negate()
}

// HashToScalar hashes data to a scalar value using uniform distribution
func HashToScalar(curve Curve, data ...[]byte) (Scalar, error) {
	// Two domain-separated SHA-256 blocks give 64 bytes for wide reduction
	wide := make([]byte, 0, 2*sha256.Size)
	for counter := uint32(0); counter < 2; counter++ {
		hasher := DefaultHashFunction()
		hasher.Write([]byte("KZG_HASH_TO_SCALAR"))
		hasher.Write([]byte(curve.Name()))

		counterBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(counterBytes, counter)
		hasher.Write(counterBytes)

		for _, d := range data {
			// Length prefix to avoid ambiguity between concatenations
			lengthBytes := make([]byte, 4)
			binary.BigEndian.PutUint32(lengthBytes, uint32(len(d)))
			hasher.Write(lengthBytes)
			hasher.Write(d)
		}
		wide = hasher.Sum(wide)
	}

	return curve.ScalarFromUniformBytes(wide)
}

// defaultWorkers is the worker count used when none is configured
func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
