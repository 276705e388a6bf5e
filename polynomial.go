package kzg

import (
	"fmt"
	"io"
)

// Polynomial represents a polynomial over a scalar field. Index i holds the
// coefficient of x^i. The length is fixed at construction and never trimmed,
// so trailing zero coefficients are significant. Every operation returns a new
// Polynomial; the receiver is never modified.
type Polynomial struct {
	curve        Curve
	coefficients []Scalar
}

// NewPolynomial creates a polynomial from the given coefficients, lowest degree first
func NewPolynomial(curve Curve, coefficients []Scalar) (*Polynomial, error) {
	if curve == nil {
		return nil, fmt.Errorf("curve cannot be nil")
	}

	coeffs := make([]Scalar, len(coefficients))
	for i, c := range coefficients {
		if c == nil {
			return nil, ErrInvalidPolynomial.WithDetails("coefficient %d is nil", i)
		}
		if !scalarOnCurve(curve, c) {
			return nil, ErrInvalidPolynomial.WithCause(ErrCurveMismatch).WithContext("coefficient", i)
		}
		coeffs[i] = c
	}

	return &Polynomial{
		curve:        curve,
		coefficients: coeffs,
	}, nil
}

// NewZeroPolynomial creates the all-zero polynomial with the given length
func NewZeroPolynomial(curve Curve, length int) *Polynomial {
	if length < 0 {
		length = 0
	}

	coeffs := make([]Scalar, length)
	for i := range coeffs {
		coeffs[i] = curve.ScalarZero()
	}

	return &Polynomial{
		curve:        curve,
		coefficients: coeffs,
	}
}

// NewRandomPolynomial creates a polynomial of the given length with
// coefficients sampled from source (crypto/rand when nil)
func NewRandomPolynomial(curve Curve, length int, source io.Reader) (*Polynomial, error) {
	if length < 0 {
		return nil, fmt.Errorf("length must be non-negative")
	}

	coeffs := make([]Scalar, length)
	for i := range coeffs {
		coeff, err := curve.ScalarRandom(source)
		if err != nil {
			return nil, fmt.Errorf("failed to generate coefficient %d: %w", i, err)
		}
		coeffs[i] = coeff
	}

	return &Polynomial{
		curve:        curve,
		coefficients: coeffs,
	}, nil
}

// Len returns the number of coefficient slots
func (p *Polynomial) Len() int {
	return len(p.coefficients)
}

// Curve returns the curve whose scalar field the coefficients live in
func (p *Polynomial) Curve() Curve {
	return p.curve
}

// Coefficient returns the coefficient of x^i, zero past the end
func (p *Polynomial) Coefficient(i int) Scalar {
	if i < 0 || i >= len(p.coefficients) {
		return p.curve.ScalarZero()
	}
	return p.coefficients[i]
}

// Coefficients returns a copy of the coefficient slice
func (p *Polynomial) Coefficients() []Scalar {
	result := make([]Scalar, len(p.coefficients))
	copy(result, p.coefficients)
	return result
}

// WithCoefficient returns a copy of p with slot i replaced by value
func (p *Polynomial) WithCoefficient(i int, value Scalar) (*Polynomial, error) {
	if i < 0 || i >= len(p.coefficients) {
		return nil, ErrInvalidPolynomial.WithDetails("coefficient index %d out of range [0, %d)", i, len(p.coefficients))
	}
	if !scalarOnCurve(p.curve, value) {
		return nil, ErrInvalidPolynomial.WithCause(ErrCurveMismatch).WithContext("coefficient", i)
	}

	coeffs := p.Coefficients()
	coeffs[i] = value
	return &Polynomial{curve: p.curve, coefficients: coeffs}, nil
}

// IsZero reports whether every coefficient is zero
func (p *Polynomial) IsZero() bool {
	_, ok := p.Degree()
	return !ok
}

// Equal reports whether both polynomials have the same length and coefficients
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil || len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i, c := range p.coefficients {
		if !c.Equal(other.coefficients[i]) {
			return false
		}
	}
	return true
}

// Degree returns the highest index holding a nonzero coefficient. ok is false
// for the zero polynomial, which has no degree.
func (p *Polynomial) Degree() (degree int, ok bool) {
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		if !p.coefficients[i].IsZero() {
			return i, true
		}
	}
	return 0, false
}

// Evaluate computes sum(c_i * z^i). The power ladder is built one entry
// longer than the coefficient count.
func (p *Polynomial) Evaluate(z Scalar) Scalar {
	result := p.curve.ScalarZero()
	powers := ScalarPowers(p.curve, z, len(p.coefficients)+1)
	for i, coeff := range p.coefficients {
		result = result.Add(coeff.Mul(powers[i]))
	}
	return result
}

// Multiply is a bounded-buffer convolution, not a general product. The result
// has p.Len() slots; the last slot of either operand never contributes and
// products landing at index p.Len() or beyond are dropped. Callers size their
// buffers so that the terms they need fit.
func (p *Polynomial) Multiply(other *Polynomial) *Polynomial {
	result := NewZeroPolynomial(p.curve, len(p.coefficients))

	for i := 0; i < len(p.coefficients)-1; i++ {
		if p.coefficients[i].IsZero() {
			continue
		}
		for j := 0; j < len(other.coefficients)-1; j++ {
			if i+j >= len(result.coefficients) || other.coefficients[j].IsZero() {
				continue
			}
			term := p.coefficients[i].Mul(other.coefficients[j])
			result.coefficients[i+j] = result.coefficients[i+j].Add(term)
		}
	}
	return result
}

// Subtract returns p - other over the longer of the two lengths
func (p *Polynomial) Subtract(other *Polynomial) *Polynomial {
	length := max(len(p.coefficients), len(other.coefficients))
	coeffs := make([]Scalar, length)
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i).Sub(other.Coefficient(i))
	}
	return &Polynomial{curve: p.curve, coefficients: coeffs}
}

// Add returns p + other over the longer of the two lengths
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	length := max(len(p.coefficients), len(other.coefficients))
	coeffs := make([]Scalar, length)
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return &Polynomial{curve: p.curve, coefficients: coeffs}
}

// Divide performs long division by a linear divisor and returns the quotient
// and remainder. The quotient has p.Len() slots.
//
// Each step writes the new quotient term into slot deg-1, which matches
// deg - deg(divisor) only for divisors of degree 1; other divisors are
// rejected with ErrUnsupportedDivisor (see LongDivide). The product of the
// quotient term and the divisor goes through the capped Multiply with the
// divisor as receiver, so the divisor needs at least one slot past both its
// own degree and the dividend's degree. When it does not, the leading term
// cannot cancel and ErrDivisorCapacity is returned.
func (p *Polynomial) Divide(divisor *Polynomial) (quotient, remainder *Polynomial, err error) {
	if divisor == nil {
		return nil, nil, ErrInvalidPolynomial.WithDetails("divisor is nil")
	}

	divisorDegree, ok := divisor.Degree()
	if !ok {
		return nil, nil, ErrDivisionByZero.WithDetails("divisor is the zero polynomial")
	}
	if divisorDegree != 1 {
		return nil, nil, ErrUnsupportedDivisor.WithContext("divisor_degree", divisorDegree)
	}

	leadInverse, err := divisor.coefficients[divisorDegree].Invert()
	if err != nil {
		return nil, nil, ErrDivisionByZero.WithCause(err)
	}

	return p.divide(divisor, divisorDegree, leadInverse, nil)
}

// divide is one step of Divide; acc carries the quotient built so far
func (p *Polynomial) divide(divisor *Polynomial, divisorDegree int, leadInverse Scalar, acc *Polynomial) (*Polynomial, *Polynomial, error) {
	if acc == nil {
		acc = NewZeroPolynomial(p.curve, len(p.coefficients))
	}

	degree, ok := p.Degree()
	if !ok {
		return acc, NewZeroPolynomial(p.curve, len(p.coefficients)), nil
	}
	if degree < divisorDegree {
		return acc, p, nil
	}

	slot := degree - 1
	if slot >= acc.Len() {
		return nil, nil, ErrDivisorCapacity.WithContext("dividend_degree", degree)
	}

	term := p.coefficients[degree].Mul(leadInverse)
	acc, err := acc.WithCoefficient(slot, term)
	if err != nil {
		return nil, nil, err
	}

	multiplier, err := NewZeroPolynomial(p.curve, len(p.coefficients)).WithCoefficient(slot, term)
	if err != nil {
		return nil, nil, err
	}

	remainder := p.Subtract(divisor.Multiply(multiplier))

	// The leading term must cancel, otherwise the recursion would not shrink
	if next, ok := remainder.Degree(); ok && next >= degree {
		return nil, nil, ErrDivisorCapacity.
			WithContext("dividend_degree", degree).
			WithContext("divisor_length", divisor.Len())
	}

	return remainder.divide(divisor, divisorDegree, leadInverse, acc)
}

// LongDivide is textbook long division for a divisor of any degree. Quotient
// terms go into slot deg - deg(divisor) and products are computed without the
// Multiply cap. The quotient and remainder both have p.Len() slots.
func (p *Polynomial) LongDivide(divisor *Polynomial) (quotient, remainder *Polynomial, err error) {
	if divisor == nil {
		return nil, nil, ErrInvalidPolynomial.WithDetails("divisor is nil")
	}

	divisorDegree, ok := divisor.Degree()
	if !ok {
		return nil, nil, ErrDivisionByZero.WithDetails("divisor is the zero polynomial")
	}

	leadInverse, err := divisor.coefficients[divisorDegree].Invert()
	if err != nil {
		return nil, nil, ErrDivisionByZero.WithCause(err)
	}

	q := NewZeroPolynomial(p.curve, len(p.coefficients)).Coefficients()
	r := p.Coefficients()

	for {
		degree := -1
		for i := len(r) - 1; i >= 0; i-- {
			if !r[i].IsZero() {
				degree = i
				break
			}
		}
		if degree < divisorDegree {
			break
		}

		shift := degree - divisorDegree
		term := r[degree].Mul(leadInverse)
		q[shift] = q[shift].Add(term)

		for j := 0; j <= divisorDegree; j++ {
			r[shift+j] = r[shift+j].Sub(term.Mul(divisor.coefficients[j]))
		}
	}

	return &Polynomial{curve: p.curve, coefficients: q}, &Polynomial{curve: p.curve, coefficients: r}, nil
}

