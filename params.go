package kzg

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// PublicParams holds the structured reference string produced by a trusted
// setup: g1Powers[i] = gen1·s^i and g2Powers[i] = gen2·s^i for i in [0, n).
// The value is immutable after construction and safe for concurrent use.
type PublicParams struct {
	curve    Curve
	n        int
	gen1     Point
	gen2     Point
	g1Powers []Point
	g2Powers []Point
}

// NewPublicParams wraps externally produced powers, e.g. a ceremony transcript.
// The slices are copied.
func NewPublicParams(curve Curve, gen1, gen2 Point, g1Powers, g2Powers []Point) (*PublicParams, error) {
	if curve == nil {
		return nil, ErrInvalidParameters.WithDetails("curve cannot be nil")
	}

	pp := &PublicParams{
		curve:    curve,
		n:        len(g1Powers),
		gen1:     gen1,
		gen2:     gen2,
		g1Powers: append([]Point(nil), g1Powers...),
		g2Powers: append([]Point(nil), g2Powers...),
	}

	if err := pp.Validate(); err != nil {
		return nil, err
	}
	return pp, nil
}

// N returns the maximum number of coefficients a committed polynomial may have
func (pp *PublicParams) N() int { return pp.n }

// Curve returns the curve the parameters were generated on
func (pp *PublicParams) Curve() Curve { return pp.curve }

// G1Generator returns the G1 generator
func (pp *PublicParams) G1Generator() Point { return pp.gen1 }

// G2Generator returns the G2 generator
func (pp *PublicParams) G2Generator() Point { return pp.gen2 }

// G1Powers returns a copy of [gen1·s^0, ..., gen1·s^(n-1)]
func (pp *PublicParams) G1Powers() []Point {
	return append([]Point(nil), pp.g1Powers...)
}

// G2Powers returns a copy of [gen2·s^0, ..., gen2·s^(n-1)]
func (pp *PublicParams) G2Powers() []Point {
	return append([]Point(nil), pp.g2Powers...)
}

// G1Power returns gen1·s^i
func (pp *PublicParams) G1Power(i int) (Point, error) {
	if i < 0 || i >= pp.n {
		return nil, ErrInvalidParameters.WithDetails("G1 power index %d out of range [0, %d)", i, pp.n)
	}
	return pp.g1Powers[i], nil
}

// G2Power returns gen2·s^i
func (pp *PublicParams) G2Power(i int) (Point, error) {
	if i < 0 || i >= pp.n {
		return nil, ErrInvalidParameters.WithDetails("G2 power index %d out of range [0, %d)", i, pp.n)
	}
	return pp.g2Powers[i], nil
}

// Validate checks the shape of the parameters: n >= 1, both ladders of length
// n, generators in the right groups and the ladders starting at them.
func (pp *PublicParams) Validate() error {
	if pp == nil || pp.curve == nil {
		return ErrInvalidParameters.WithDetails("parameters are not initialized")
	}
	if pp.n < 1 {
		return ErrInvalidParameters.WithDetails("n must be at least 1, got %d", pp.n)
	}
	if len(pp.g1Powers) != pp.n || len(pp.g2Powers) != pp.n {
		return ErrInvalidParameters.
			WithDetails("power ladders must both have length %d", pp.n).
			WithContext("g1_powers", len(pp.g1Powers)).
			WithContext("g2_powers", len(pp.g2Powers))
	}
	if pp.gen1 == nil || pp.gen1.Group() != GroupG1 {
		return ErrInvalidParameters.WithDetails("G1 generator missing or in the wrong group")
	}
	if pp.gen2 == nil || pp.gen2.Group() != GroupG2 {
		return ErrInvalidParameters.WithDetails("G2 generator missing or in the wrong group")
	}
	if !pointOnCurve(pp.curve, pp.gen1) || !pointOnCurve(pp.curve, pp.gen2) {
		return ErrInvalidParameters.WithCause(ErrCurveMismatch).WithDetails("generators must belong to %s", pp.curve.Name())
	}

	for i := 0; i < pp.n; i++ {
		if (pp.g1Powers[i] != nil && !pointOnCurve(pp.curve, pp.g1Powers[i])) ||
			(pp.g2Powers[i] != nil && !pointOnCurve(pp.curve, pp.g2Powers[i])) {
			return ErrInvalidParameters.WithCause(ErrCurveMismatch).WithContext("power", i)
		}
		if pp.g1Powers[i] == nil || pp.g1Powers[i].Group() != GroupG1 {
			return ErrInvalidParameters.WithDetails("G1 power %d missing or in the wrong group", i)
		}
		if pp.g2Powers[i] == nil || pp.g2Powers[i].Group() != GroupG2 {
			return ErrInvalidParameters.WithDetails("G2 power %d missing or in the wrong group", i)
		}
	}

	if !pp.g1Powers[0].Equal(pp.gen1) || !pp.g2Powers[0].Equal(pp.gen2) {
		return ErrInvalidParameters.WithDetails("power ladders must start at the generators")
	}
	return nil
}

// Digest returns a BLAKE2b-256 fingerprint over the curve name and every
// point's canonical encoding. Equal parameter sets have equal digests.
func (pp *PublicParams) Digest() [32]byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte("KZG_PUBLIC_PARAMS_v1"))
	h.Write([]byte(pp.curve.Name()))

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, uint64(pp.n))
	h.Write(n)

	h.Write(pp.gen1.Bytes())
	h.Write(pp.gen2.Bytes())
	for _, p := range pp.g1Powers {
		h.Write(p.Bytes())
	}
	for _, p := range pp.g2Powers {
		h.Write(p.Bytes())
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (pp *PublicParams) String() string {
	digest := pp.Digest()
	return fmt.Sprintf("PublicParams{curve: %s, n: %d, digest: %x}", pp.curve.Name(), pp.n, digest[:8])
}
