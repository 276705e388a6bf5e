package kzg

// Commit returns the commitment sum(c_i·g1Powers[i]). The polynomial must
// have exactly pp.N() coefficient slots.
func Commit(pp *PublicParams, poly *Polynomial) (*Commitment, error) {
	return commit(pp, poly, defaultWorkers())
}

// CreateWitness opens poly at z. It evaluates y = poly(z), divides
// poly(x) - y by (x - z) and commits to the quotient. A nonzero remainder
// means the evaluation and the division disagree and is reported as
// ErrIntegrityViolation.
func CreateWitness(pp *PublicParams, poly *Polynomial, z Scalar) (*Witness, error) {
	return createWitness(pp, poly, z, defaultWorkers())
}

// Verify checks e(π, [s]_2 - [z]_2) == e(C - [y]_1, [1]_2). A proof that does
// not satisfy the equation yields false with a nil error; errors are reserved
// for malformed input and parameters too short to hold [s]_2.
func Verify(pp *PublicParams, witness *Witness, commitment *Commitment) (bool, error) {
	if err := checkParams(pp); err != nil {
		return false, err
	}
	if pp.n < 2 {
		return false, ErrInvalidParameters.WithDetails("verification needs n >= 2, got %d", pp.n)
	}
	curve := pp.curve

	if err := witness.validate(curve); err != nil {
		return false, err
	}
	if commitment == nil || commitment.point == nil {
		return false, ErrInvalidCommitment.WithDetails("commitment is nil")
	}
	if !pointOnCurve(curve, commitment.point) {
		return false, ErrInvalidCommitment.WithCause(ErrCurveMismatch)
	}
	if commitment.point.Group() != GroupG1 {
		return false, ErrInvalidCommitment.WithCause(ErrWrongGroup)
	}

	// [s - z]_2
	shiftedSecret := pp.g2Powers[1].Sub(pp.gen2.Mul(witness.Z))
	// C - [y]_1
	shiftedCommitment := commitment.point.Sub(pp.gen1.Mul(witness.Y))

	lhs, err := curve.Pair(witness.Point, shiftedSecret)
	if err != nil {
		return false, ErrPairingFailed.WithCause(err)
	}
	rhs, err := curve.Pair(shiftedCommitment, pp.gen2)
	if err != nil {
		return false, ErrPairingFailed.WithCause(err)
	}

	return lhs.Equal(rhs), nil
}

func checkParams(pp *PublicParams) error {
	if pp == nil || pp.curve == nil {
		return ErrNotInitialized.WithDetails("public parameters are nil")
	}
	return nil
}

func checkPolynomial(pp *PublicParams, poly *Polynomial) error {
	if poly == nil {
		return ErrInvalidPolynomial.WithDetails("polynomial is nil")
	}
	if poly.curve == nil || poly.curve.Name() != pp.curve.Name() {
		return ErrInvalidPolynomial.WithCause(ErrCurveMismatch)
	}
	if poly.Len() != pp.n {
		return ErrLengthMismatch.
			WithContext("poly_length", poly.Len()).
			WithContext("params_bound", pp.n)
	}
	return nil
}

func commit(pp *PublicParams, poly *Polynomial, workers int) (*Commitment, error) {
	if err := checkParams(pp); err != nil {
		return nil, err
	}
	if err := checkPolynomial(pp, poly); err != nil {
		return nil, err
	}

	point, err := msm(pp.curve.G1Identity(), pp.g1Powers, poly.coefficients, workers)
	if err != nil {
		return nil, err
	}
	return &Commitment{curve: pp.curve, point: point}, nil
}

func createWitness(pp *PublicParams, poly *Polynomial, z Scalar, workers int) (*Witness, error) {
	if err := checkParams(pp); err != nil {
		return nil, err
	}
	if err := checkPolynomial(pp, poly); err != nil {
		return nil, err
	}
	if z == nil {
		return nil, ErrInvalidWitness.WithDetails("evaluation point is nil")
	}
	if !scalarOnCurve(pp.curve, z) {
		return nil, ErrInvalidWitness.WithCause(ErrCurveMismatch)
	}

	curve := pp.curve
	y := poly.Evaluate(z)

	numerator, err := poly.WithCoefficient(0, poly.Coefficient(0).Sub(y))
	if err != nil {
		return nil, err
	}

	// x - z, with one spare slot past the numerator for the capped product
	divisor := NewZeroPolynomial(curve, pp.n+1)
	divisor.coefficients[0] = z.Negate()
	divisor.coefficients[1] = curve.ScalarOne()

	quotient, remainder, err := numerator.Divide(divisor)
	if err != nil {
		return nil, err
	}
	if !remainder.IsZero() {
		return nil, ErrIntegrityViolation.WithContext("z", z.String())
	}

	point, err := msm(curve.G1Identity(), pp.g1Powers, quotient.coefficients, workers)
	if err != nil {
		return nil, err
	}

	return &Witness{Point: point, Z: z, Y: y}, nil
}
