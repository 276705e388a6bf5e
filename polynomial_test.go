package kzg

import (
	"errors"
	"testing"
)

func TestPolynomialDegree(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			testCases := []struct {
				coeffs []int64
				degree int
				ok     bool
			}{
				{[]int64{1, 1, 1}, 2, true},
				{[]int64{1, 1, 0}, 1, true},
				{[]int64{1, 0, 0}, 0, true},
				{[]int64{0, 0, 0}, 0, false},
				{[]int64{}, 0, false},
				{[]int64{0, 0, 0, 0, 0, 7, 0}, 5, true},
			}

			for _, tc := range testCases {
				degree, ok := ints(t, curve, tc.coeffs...).Degree()
				if ok != tc.ok {
					t.Fatalf("%v: expected ok=%t, got %t", tc.coeffs, tc.ok, ok)
				}
				if ok && degree != tc.degree {
					t.Fatalf("%v: expected degree %d, got %d", tc.coeffs, tc.degree, degree)
				}
			}
		})
	}
}

func TestZeroPolynomialHasNoDegree(t *testing.T) {
	curve := NewBLS12381Curve()

	for _, length := range []int{0, 1, 3, 16} {
		p := NewZeroPolynomial(curve, length)
		if _, ok := p.Degree(); ok {
			t.Fatalf("zero polynomial of length %d reported a degree", length)
		}
		if !p.IsZero() {
			t.Fatalf("zero polynomial of length %d not reported as zero", length)
		}
		if p.Len() != length {
			t.Fatalf("expected length %d, got %d", length, p.Len())
		}
	}
}

func TestPolynomialConstruction(t *testing.T) {
	curve := NewBLS12381Curve()

	t.Run("CopiesInput", func(t *testing.T) {
		coeffs := []Scalar{curve.ScalarOne(), curve.ScalarOne()}
		p, err := NewPolynomial(curve, coeffs)
		if err != nil {
			t.Fatalf("NewPolynomial failed: %v", err)
		}
		coeffs[0] = curve.ScalarZero()
		if !p.Coefficient(0).Equal(curve.ScalarOne()) {
			t.Fatalf("polynomial aliases the caller's slice")
		}
	})

	t.Run("RejectsNilCoefficient", func(t *testing.T) {
		_, err := NewPolynomial(curve, []Scalar{curve.ScalarOne(), nil})
		if !errors.Is(err, ErrInvalidPolynomial) {
			t.Fatalf("expected ErrInvalidPolynomial, got %v", err)
		}
	})

	t.Run("TrailingZerosAreSignificant", func(t *testing.T) {
		short := ints(t, curve, 1, 2)
		long := ints(t, curve, 1, 2, 0)
		if short.Equal(long) {
			t.Fatalf("polynomials of different lengths compared equal")
		}
	})

	t.Run("WithCoefficientDoesNotMutate", func(t *testing.T) {
		p := ints(t, curve, 1, 2, 3)
		q, err := p.WithCoefficient(1, ScalarFromInt64(curve, 9))
		if err != nil {
			t.Fatalf("WithCoefficient failed: %v", err)
		}
		assertPolyEqual(t, p, ints(t, curve, 1, 2, 3))
		assertPolyEqual(t, q, ints(t, curve, 1, 9, 3))

		if _, err := p.WithCoefficient(3, curve.ScalarOne()); !errors.Is(err, ErrInvalidPolynomial) {
			t.Fatalf("expected out-of-range error, got %v", err)
		}
	})

	t.Run("CoefficientPastEndIsZero", func(t *testing.T) {
		p := ints(t, curve, 1)
		if !p.Coefficient(5).IsZero() || !p.Coefficient(-1).IsZero() {
			t.Fatalf("out-of-range coefficients should read as zero")
		}
	})
}

func TestPolynomialEvaluate(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			// 3 + 2x + x^2
			p := ints(t, curve, 3, 2, 1)

			testCases := []struct {
				z, want int64
			}{
				{0, 3},
				{1, 6},
				{2, 11},
				{-1, 2},
				{10, 123},
			}
			for _, tc := range testCases {
				got := p.Evaluate(ScalarFromInt64(curve, tc.z))
				if !got.Equal(ScalarFromInt64(curve, tc.want)) {
					t.Fatalf("p(%d): got %s, want %d", tc.z, got, tc.want)
				}
			}

			if !NewZeroPolynomial(curve, 4).Evaluate(ScalarFromInt64(curve, 5)).IsZero() {
				t.Fatalf("zero polynomial should evaluate to zero")
			}
		})
	}
}

func TestPolynomialMultiplyIsCapped(t *testing.T) {
	curve := NewBLS12381Curve()

	t.Run("LastSlotAndOverflowDropped", func(t *testing.T) {
		// (1 + x + x^2)^2 = 1 + 2x + 3x^2 + 2x^3 + x^4 in general, but only the
		// first two slots of each operand take part and the output keeps 3 slots
		p := ints(t, curve, 1, 1, 1)
		assertPolyEqual(t, p.Multiply(p), ints(t, curve, 1, 2, 1))
	})

	t.Run("FitsWhenBufferIsLargeEnough", func(t *testing.T) {
		// (1 + x)(2 + x) = 2 + 3x + x^2
		a := ints(t, curve, 1, 1, 0, 0)
		b := ints(t, curve, 2, 1, 0)
		assertPolyEqual(t, a.Multiply(b), ints(t, curve, 2, 3, 1, 0))
	})

	t.Run("OutputLengthFollowsReceiver", func(t *testing.T) {
		a := ints(t, curve, 1, 1)
		b := ints(t, curve, 1, 1, 1, 1, 1)
		if got := a.Multiply(b).Len(); got != 2 {
			t.Fatalf("expected length 2, got %d", got)
		}
	})

	t.Run("ReceiverUnchanged", func(t *testing.T) {
		a := ints(t, curve, 1, 2, 0)
		_ = a.Multiply(ints(t, curve, 3, 4, 0))
		assertPolyEqual(t, a, ints(t, curve, 1, 2, 0))
	})
}

func TestPolynomialAddSubtract(t *testing.T) {
	curve := NewBN254Curve()

	a := ints(t, curve, 1, 2, 3)
	b := ints(t, curve, 5, 5)

	assertPolyEqual(t, a.Subtract(b), ints(t, curve, -4, -3, 3))
	assertPolyEqual(t, b.Subtract(a), ints(t, curve, 4, 3, -3))
	assertPolyEqual(t, a.Add(b), ints(t, curve, 6, 7, 3))
	assertPolyEqual(t, a.Subtract(a), NewZeroPolynomial(curve, 3))
}

func TestPolynomialDivide(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			half, err := ScalarFromInt64(curve, 2).Invert()
			if err != nil {
				t.Fatalf("Failed to invert 2: %v", err)
			}
			halfX, err := NewZeroPolynomial(curve, 3).WithCoefficient(1, half)
			if err != nil {
				t.Fatalf("WithCoefficient failed: %v", err)
			}

			testCases := []struct {
				name      string
				dividend  *Polynomial
				divisor   *Polynomial
				quotient  *Polynomial
				remainder *Polynomial
			}{
				{
					// x^3 - 2x^2 - 4 = (x - 3)(x^2 + x + 3) + 5
					name:      "WithRemainder",
					dividend:  ints(t, curve, -4, 0, -2, 1),
					divisor:   ints(t, curve, -3, 1, 0, 0),
					quotient:  ints(t, curve, 3, 1, 1, 0),
					remainder: ints(t, curve, 5, 0, 0, 0),
				},
				{
					// x^2 + 3x + 2 = (x + 1)(x + 2)
					name:      "NoRemainder",
					dividend:  ints(t, curve, 2, 3, 1),
					divisor:   ints(t, curve, 1, 1, 0),
					quotient:  ints(t, curve, 2, 1, 0),
					remainder: ints(t, curve, 0, 0, 0),
				},
				{
					// x^2 - 4 = (x - 2)(x + 2)
					name:      "DifferenceOfSquares",
					dividend:  ints(t, curve, -4, 0, 1),
					divisor:   ints(t, curve, -2, 1, 0),
					quotient:  ints(t, curve, 2, 1, 0),
					remainder: ints(t, curve, 0, 0, 0),
				},
				{
					// x^2 + x = (2x + 2)(x / 2)
					name:      "NonMonicDivisor",
					dividend:  ints(t, curve, 0, 1, 1),
					divisor:   ints(t, curve, 2, 2, 0),
					quotient:  halfX,
					remainder: ints(t, curve, 0, 0, 0),
				},
				{
					name:      "ZeroDividend",
					dividend:  NewZeroPolynomial(curve, 4),
					divisor:   ints(t, curve, -3, 1, 0, 0),
					quotient:  NewZeroPolynomial(curve, 4),
					remainder: NewZeroPolynomial(curve, 4),
				},
				{
					name:      "DividendDegreeBelowDivisor",
					dividend:  ints(t, curve, 7, 0, 0),
					divisor:   ints(t, curve, -3, 1, 0),
					quotient:  NewZeroPolynomial(curve, 3),
					remainder: ints(t, curve, 7, 0, 0),
				},
			}

			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					q, r, err := tc.dividend.Divide(tc.divisor)
					if err != nil {
						t.Fatalf("Divide failed: %v", err)
					}
					assertPolyEqual(t, q, tc.quotient)
					assertPolyEqual(t, r, tc.remainder)

					// quotient * divisor + remainder, with the divisor as receiver
					// so the capped product has room for every term
					assertPolyEqual(t, tc.divisor.Multiply(q).Add(r), tc.dividend)
				})
			}
		})
	}
}

func TestPolynomialDivideErrors(t *testing.T) {
	curve := NewBLS12381Curve()
	dividend := ints(t, curve, 1, 2, 3)

	t.Run("NilDivisor", func(t *testing.T) {
		if _, _, err := dividend.Divide(nil); !errors.Is(err, ErrInvalidPolynomial) {
			t.Fatalf("expected ErrInvalidPolynomial, got %v", err)
		}
	})

	t.Run("ZeroDivisor", func(t *testing.T) {
		_, _, err := dividend.Divide(NewZeroPolynomial(curve, 3))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("expected ErrDivisionByZero, got %v", err)
		}
		if errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("division by zero must be distinguishable from a length mismatch")
		}
	})

	t.Run("NonLinearDivisor", func(t *testing.T) {
		_, _, err := dividend.Divide(ints(t, curve, 1, 1, 1))
		if !errors.Is(err, ErrUnsupportedDivisor) {
			t.Fatalf("expected ErrUnsupportedDivisor, got %v", err)
		}
		if _, _, err := dividend.Divide(ints(t, curve, 5, 0, 0)); !errors.Is(err, ErrUnsupportedDivisor) {
			t.Fatalf("expected ErrUnsupportedDivisor for a constant divisor, got %v", err)
		}
	})

	t.Run("DivisorTooShort", func(t *testing.T) {
		// x^2 / (x - 3) needs the divisor buffer to reach x^2
		_, _, err := ints(t, curve, 0, 0, 1).Divide(ints(t, curve, -3, 1))
		if !errors.Is(err, ErrDivisorCapacity) {
			t.Fatalf("expected ErrDivisorCapacity, got %v", err)
		}
	})
}

func TestPolynomialLongDivide(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			t.Run("QuadraticDivisor", func(t *testing.T) {
				// x^3 - 1 = (x^2 + x + 1)(x - 1)
				q, r, err := ints(t, curve, -1, 0, 0, 1).LongDivide(ints(t, curve, 1, 1, 1))
				if err != nil {
					t.Fatalf("LongDivide failed: %v", err)
				}
				assertPolyEqual(t, q, ints(t, curve, -1, 1, 0, 0))
				assertPolyEqual(t, r, NewZeroPolynomial(curve, 4))
			})

			t.Run("QuadraticDivisorWithRemainder", func(t *testing.T) {
				// x^4 + 2 = (x^2 + 1)(x^2 - 1) + 3
				q, r, err := ints(t, curve, 2, 0, 0, 0, 1).LongDivide(ints(t, curve, 1, 0, 1))
				if err != nil {
					t.Fatalf("LongDivide failed: %v", err)
				}
				assertPolyEqual(t, q, ints(t, curve, -1, 0, 1, 0, 0))
				assertPolyEqual(t, r, ints(t, curve, 3, 0, 0, 0, 0))
			})

			t.Run("AgreesWithDivideOnLinearDivisors", func(t *testing.T) {
				dividend := ints(t, curve, -4, 0, -2, 1)
				divisor := ints(t, curve, -3, 1, 0, 0)

				q1, r1, err := dividend.Divide(divisor)
				if err != nil {
					t.Fatalf("Divide failed: %v", err)
				}
				q2, r2, err := dividend.LongDivide(divisor)
				if err != nil {
					t.Fatalf("LongDivide failed: %v", err)
				}
				assertPolyEqual(t, q2, q1)
				assertPolyEqual(t, r2, r1)
			})

			t.Run("ZeroDivisor", func(t *testing.T) {
				_, _, err := ints(t, curve, 1, 2).LongDivide(NewZeroPolynomial(curve, 2))
				if !errors.Is(err, ErrDivisionByZero) {
					t.Fatalf("expected ErrDivisionByZero, got %v", err)
				}
			})
		})
	}
}

func TestRandomPolynomialDivisionByRoot(t *testing.T) {
	curve := NewBLS12381Curve()
	const length = 16

	p, err := NewRandomPolynomial(curve, length, nil)
	if err != nil {
		t.Fatalf("NewRandomPolynomial failed: %v", err)
	}
	z, err := curve.ScalarRandom(nil)
	if err != nil {
		t.Fatalf("ScalarRandom failed: %v", err)
	}

	numerator, err := p.WithCoefficient(0, p.Coefficient(0).Sub(p.Evaluate(z)))
	if err != nil {
		t.Fatalf("WithCoefficient failed: %v", err)
	}
	divisor := NewZeroPolynomial(curve, length+1)
	divisor, _ = divisor.WithCoefficient(0, z.Negate())
	divisor, _ = divisor.WithCoefficient(1, curve.ScalarOne())

	q, r, err := numerator.Divide(divisor)
	if err != nil {
		t.Fatalf("Divide failed: %v", err)
	}
	if !r.IsZero() {
		t.Fatalf("dividing by a root left a remainder")
	}

	// q(w) * (w - z) == p(w) - p(z) at an unrelated point
	w := ScalarFromInt64(curve, 12345)
	lhs := q.Evaluate(w).Mul(w.Sub(z))
	rhs := p.Evaluate(w).Sub(p.Evaluate(z))
	if !lhs.Equal(rhs) {
		t.Fatalf("quotient does not satisfy q(w)(w - z) = p(w) - p(z)")
	}

	t.Log("✅ Random polynomial divided cleanly by (x - z)")
}
