package kzg

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Curve defines the pairing-friendly algebra the commitment scheme runs on.
// Implementations wrap a concrete library; the scheme never looks past this
// interface.
type Curve interface {
	// Metadata
	Name() string
	ScalarSize() int

	// Scalar field
	ScalarFromBytes([]byte) (Scalar, error)
	ScalarFromUniformBytes([]byte) (Scalar, error)
	ScalarFromUint64(uint64) Scalar
	ScalarRandom(io.Reader) (Scalar, error)
	ScalarZero() Scalar
	ScalarOne() Scalar

	// Source groups
	G1Generator() Point
	G2Generator() Point
	G1Identity() Point
	G2Identity() Point

	// Pair maps one element of G1 and one of G2 into the target group
	Pair(g1 Point, g2 Point) (GTElement, error)
}

// Scalar represents an element of the prime scalar field
type Scalar interface {
	// CurveName names the curve that produced the scalar
	CurveName() string

	// Serialization
	Bytes() []byte
	String() string

	// Arithmetic operations
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Negate() Scalar
	Invert() (Scalar, error)

	// Comparison
	Equal(Scalar) bool
	IsZero() bool

	// Security
	Zeroize()
}

// Group identifies which pairing source group a point belongs to
type Group int

const (
	GroupG1 Group = iota + 1
	GroupG2
)

func (g Group) String() string {
	switch g {
	case GroupG1:
		return "G1"
	case GroupG2:
		return "G2"
	default:
		return "unknown"
	}
}

// Point represents an element of one of the two pairing source groups.
// Arithmetic is additive and never mutates the receiver.
type Point interface {
	// CurveName names the curve that produced the point
	CurveName() string

	// Serialization (canonical compressed affine encoding)
	Bytes() []byte
	String() string

	// Arithmetic operations
	Add(Point) Point
	Sub(Point) Point
	Mul(Scalar) Point
	Negate() Point

	// Comparison
	Equal(Point) bool
	IsIdentity() bool

	Group() Group
}

// GTElement is an element of the pairing target group
type GTElement interface {
	Bytes() []byte
	Equal(GTElement) bool
}

// CurveType represents supported curve types
type CurveType string

const (
	BLS12381   CurveType = "bls12-381"
	BN254      CurveType = "bn254"
	BN256Kyber CurveType = "bn256-kyber"
)

// NewCurve creates a new curve instance
func NewCurve(curveType CurveType) (Curve, error) {
	switch curveType {
	case BLS12381:
		return NewBLS12381Curve(), nil
	case BN254:
		return NewBN254Curve(), nil
	case BN256Kyber:
		return NewBN256KyberCurve(), nil
	default:
		return nil, fmt.Errorf("unsupported curve type: %s", curveType)
	}
}

// Common errors
var (
	ErrInvalidScalarLength = errors.New("invalid scalar length")
	ErrInvalidPointLength  = errors.New("invalid point length")
	ErrInvalidScalar       = errors.New("invalid scalar value")
	ErrInvalidPoint        = errors.New("invalid point")
	ErrWrongGroup          = errors.New("point belongs to the wrong group")
	ErrScalarZero          = errors.New("scalar is zero")
	ErrCurveMismatch       = errors.New("value belongs to a different curve")
)

// scalarOnCurve reports whether s was produced by curve
func scalarOnCurve(curve Curve, s Scalar) bool {
	return s != nil && s.CurveName() == curve.Name()
}

// pointOnCurve reports whether p was produced by curve
func pointOnCurve(curve Curve, p Point) bool {
	return p != nil && p.CurveName() == curve.Name()
}

// uniformBytesSize is the number of random bytes drawn per sampled scalar.
// Twice the field size keeps the modular bias negligible.
const uniformBytesSize = 64

// readUniformBytes draws uniformBytesSize bytes from source, defaulting to crypto/rand
func readUniformBytes(source io.Reader) ([]byte, error) {
	if source == nil {
		source = rand.Reader
	}
	buf := make([]byte, uniformBytesSize)
	if _, err := io.ReadFull(source, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

