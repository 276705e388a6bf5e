package kzg

import (
	"io"

	"golang.org/x/sync/errgroup"
)

// Setup runs a single-party trusted setup for polynomials with at most n
// coefficients. The secret s is sampled from source (crypto/rand when nil),
// used to build both power ladders and then zeroized.
//
// Whoever runs Setup learns s and can forge openings. It is a simulation for
// tests and local development, not a ceremony.
func Setup(curve Curve, n int, source io.Reader) (*PublicParams, error) {
	return setup(curve, n, source, defaultWorkers())
}

func setup(curve Curve, n int, source io.Reader, workers int) (*PublicParams, error) {
	if curve == nil {
		return nil, ErrInvalidCurve.WithDetails("curve cannot be nil")
	}
	if n < 1 {
		return nil, ErrInvalidParameters.WithDetails("n must be at least 1, got %d", n)
	}

	secret, err := curve.ScalarRandom(source)
	if err != nil {
		return nil, ErrRandomnessGeneration.WithCause(err)
	}
	defer secret.Zeroize()

	return setupFromSecret(curve, n, secret, workers)
}

// SetupFromSecret builds public parameters from a caller-provided secret.
// The caller keeps ownership of secret; the intermediate powers are zeroized.
func SetupFromSecret(curve Curve, n int, secret Scalar) (*PublicParams, error) {
	if curve == nil {
		return nil, ErrInvalidCurve.WithDetails("curve cannot be nil")
	}
	if n < 1 {
		return nil, ErrInvalidParameters.WithDetails("n must be at least 1, got %d", n)
	}
	if secret == nil {
		return nil, ErrInvalidParameters.WithDetails("secret cannot be nil")
	}
	return setupFromSecret(curve, n, secret, defaultWorkers())
}

func setupFromSecret(curve Curve, n int, secret Scalar, workers int) (*PublicParams, error) {
	powers := ScalarPowers(curve, secret, n)
	defer func() {
		for _, p := range powers {
			p.Zeroize()
		}
	}()

	gen1 := curve.G1Generator()
	gen2 := curve.G2Generator()

	g1Powers, err := scaleAll(gen1, powers, workers)
	if err != nil {
		return nil, err
	}
	g2Powers, err := scaleAll(gen2, powers, workers)
	if err != nil {
		return nil, err
	}

	return &PublicParams{
		curve:    curve,
		n:        n,
		gen1:     gen1,
		gen2:     gen2,
		g1Powers: g1Powers,
		g2Powers: g2Powers,
	}, nil
}

// scaleAll returns [base·scalars[0], ..., base·scalars[k-1]] computed in
// contiguous chunks, one goroutine per chunk.
func scaleAll(base Point, scalars []Scalar, workers int) ([]Point, error) {
	out := make([]Point, len(scalars))

	var g errgroup.Group
	g.SetLimit(workerCount(workers, len(scalars)))
	for _, r := range partition(len(scalars), workerCount(workers, len(scalars))) {
		g.Go(func() error {
			for i := r.start; i < r.end; i++ {
				out[i] = base.Mul(scalars[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
