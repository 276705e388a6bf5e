package kzg

import (
	"testing"
)

// allCurves returns one instance of every built-in backend
func allCurves() []Curve {
	return []Curve{
		NewBLS12381Curve(),
		NewBN254Curve(),
		NewBN256KyberCurve(),
	}
}

// ints builds a polynomial from small signed integer coefficients
func ints(t *testing.T, curve Curve, coeffs ...int64) *Polynomial {
	t.Helper()

	scalars := make([]Scalar, len(coeffs))
	for i, c := range coeffs {
		scalars[i] = ScalarFromInt64(curve, c)
	}
	p, err := NewPolynomial(curve, scalars)
	if err != nil {
		t.Fatalf("Failed to build polynomial: %v", err)
	}
	return p
}

// seededParams runs a reproducible setup so failures can be replayed
func seededParams(t *testing.T, curve Curve, n int) *PublicParams {
	t.Helper()

	source, err := NewDeterministicSource([]byte("kzg test seed"), SHA256_HKDF)
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}
	pp, err := Setup(curve, n, source)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	return pp
}

func assertPolyEqual(t *testing.T, got, want *Polynomial) {
	t.Helper()

	if got.Len() != want.Len() {
		t.Fatalf("length mismatch: got %d, want %d", got.Len(), want.Len())
	}
	for i := 0; i < want.Len(); i++ {
		if !got.Coefficient(i).Equal(want.Coefficient(i)) {
			t.Fatalf("coefficient %d: got %s, want %s", i, got.Coefficient(i), want.Coefficient(i))
		}
	}
}
