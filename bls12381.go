package kzg

import (
	"encoding/hex"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BLS12381Curve implements the Curve interface for BLS12-381 using gnark-crypto
type BLS12381Curve struct {
	g1Gen bls12381.G1Jac
	g2Gen bls12381.G2Jac
}

// NewBLS12381Curve creates a new BLS12-381 curve instance
func NewBLS12381Curve() *BLS12381Curve {
	g1, g2, _, _ := bls12381.Generators()
	return &BLS12381Curve{g1Gen: g1, g2Gen: g2}
}

func (c *BLS12381Curve) Name() string    { return string(BLS12381) }
func (c *BLS12381Curve) ScalarSize() int { return fr.Bytes }

func (c *BLS12381Curve) ScalarFromBytes(data []byte) (Scalar, error) {
	if len(data) != fr.Bytes {
		return nil, ErrInvalidScalarLength
	}

	value := new(big.Int).SetBytes(data)
	if value.Cmp(fr.Modulus()) >= 0 {
		return nil, ErrInvalidScalar
	}

	s := &BLS12381Scalar{}
	s.inner.SetBigInt(value)
	return s, nil
}

func (c *BLS12381Curve) ScalarFromUniformBytes(data []byte) (Scalar, error) {
	if len(data) < fr.Bytes {
		return nil, ErrInvalidScalarLength
	}

	value := new(big.Int).SetBytes(data)
	value.Mod(value, fr.Modulus())

	s := &BLS12381Scalar{}
	s.inner.SetBigInt(value)
	return s, nil
}

func (c *BLS12381Curve) ScalarFromUint64(v uint64) Scalar {
	s := &BLS12381Scalar{}
	s.inner.SetUint64(v)
	return s
}

func (c *BLS12381Curve) ScalarRandom(source io.Reader) (Scalar, error) {
	buf, err := readUniformBytes(source)
	if err != nil {
		return nil, err
	}
	defer clear(buf)

	return c.ScalarFromUniformBytes(buf)
}

func (c *BLS12381Curve) ScalarZero() Scalar {
	return &BLS12381Scalar{}
}

func (c *BLS12381Curve) ScalarOne() Scalar {
	s := &BLS12381Scalar{}
	s.inner.SetOne()
	return s
}

func (c *BLS12381Curve) G1Generator() Point {
	return &BLS12381G1Point{inner: c.g1Gen}
}

func (c *BLS12381Curve) G2Generator() Point {
	return &BLS12381G2Point{inner: c.g2Gen}
}

func (c *BLS12381Curve) G1Identity() Point {
	p := &BLS12381G1Point{}
	p.inner.FromAffine(&bls12381.G1Affine{})
	return p
}

func (c *BLS12381Curve) G2Identity() Point {
	p := &BLS12381G2Point{}
	p.inner.FromAffine(&bls12381.G2Affine{})
	return p
}

func (c *BLS12381Curve) Pair(g1 Point, g2 Point) (GTElement, error) {
	p, ok := g1.(*BLS12381G1Point)
	if !ok {
		return nil, ErrWrongGroup
	}
	q, ok := g2.(*BLS12381G2Point)
	if !ok {
		return nil, ErrWrongGroup
	}

	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	var b bls12381.G2Affine
	b.FromJacobian(&q.inner)

	gt, err := bls12381.Pair([]bls12381.G1Affine{a}, []bls12381.G2Affine{b})
	if err != nil {
		return nil, err
	}
	return &BLS12381GT{inner: gt}, nil
}

// BLS12381Scalar implements the Scalar interface
type BLS12381Scalar struct {
	inner fr.Element
}

func (s *BLS12381Scalar) CurveName() string { return string(BLS12381) }

func (s *BLS12381Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *BLS12381Scalar) String() string {
	return hex.EncodeToString(s.Bytes())
}

func (s *BLS12381Scalar) Add(other Scalar) Scalar {
	r := &BLS12381Scalar{}
	r.inner.Add(&s.inner, &other.(*BLS12381Scalar).inner)
	return r
}

func (s *BLS12381Scalar) Sub(other Scalar) Scalar {
	r := &BLS12381Scalar{}
	r.inner.Sub(&s.inner, &other.(*BLS12381Scalar).inner)
	return r
}

func (s *BLS12381Scalar) Mul(other Scalar) Scalar {
	r := &BLS12381Scalar{}
	r.inner.Mul(&s.inner, &other.(*BLS12381Scalar).inner)
	return r
}

func (s *BLS12381Scalar) Negate() Scalar {
	r := &BLS12381Scalar{}
	r.inner.Neg(&s.inner)
	return r
}

func (s *BLS12381Scalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return nil, ErrScalarZero
	}

	r := &BLS12381Scalar{}
	r.inner.Inverse(&s.inner)
	return r, nil
}

func (s *BLS12381Scalar) Equal(other Scalar) bool {
	return s.inner.Equal(&other.(*BLS12381Scalar).inner)
}

func (s *BLS12381Scalar) IsZero() bool {
	return s.inner.IsZero()
}

func (s *BLS12381Scalar) Zeroize() {
	s.inner.SetZero()
}

func (s *BLS12381Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// BLS12381G1Point implements the Point interface for G1
type BLS12381G1Point struct {
	inner bls12381.G1Jac
}

func (p *BLS12381G1Point) CurveName() string { return string(BLS12381) }

func (p *BLS12381G1Point) Bytes() []byte {
	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

func (p *BLS12381G1Point) String() string {
	return hex.EncodeToString(p.Bytes())
}

func (p *BLS12381G1Point) Add(other Point) Point {
	r := &BLS12381G1Point{inner: p.inner}
	r.inner.AddAssign(&other.(*BLS12381G1Point).inner)
	return r
}

func (p *BLS12381G1Point) Sub(other Point) Point {
	r := &BLS12381G1Point{inner: p.inner}
	r.inner.SubAssign(&other.(*BLS12381G1Point).inner)
	return r
}

func (p *BLS12381G1Point) Mul(scalar Scalar) Point {
	r := &BLS12381G1Point{}
	r.inner.ScalarMultiplication(&p.inner, scalar.(*BLS12381Scalar).bigInt())
	return r
}

func (p *BLS12381G1Point) Negate() Point {
	r := &BLS12381G1Point{}
	r.inner.Neg(&p.inner)
	return r
}

func (p *BLS12381G1Point) Equal(other Point) bool {
	o, ok := other.(*BLS12381G1Point)
	if !ok {
		return false
	}
	return p.inner.Equal(&o.inner)
}

func (p *BLS12381G1Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

func (p *BLS12381G1Point) Group() Group { return GroupG1 }

// BLS12381G2Point implements the Point interface for G2
type BLS12381G2Point struct {
	inner bls12381.G2Jac
}

func (p *BLS12381G2Point) CurveName() string { return string(BLS12381) }

func (p *BLS12381G2Point) Bytes() []byte {
	var a bls12381.G2Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

func (p *BLS12381G2Point) String() string {
	return hex.EncodeToString(p.Bytes())
}

func (p *BLS12381G2Point) Add(other Point) Point {
	r := &BLS12381G2Point{inner: p.inner}
	r.inner.AddAssign(&other.(*BLS12381G2Point).inner)
	return r
}

func (p *BLS12381G2Point) Sub(other Point) Point {
	r := &BLS12381G2Point{inner: p.inner}
	r.inner.SubAssign(&other.(*BLS12381G2Point).inner)
	return r
}

func (p *BLS12381G2Point) Mul(scalar Scalar) Point {
	r := &BLS12381G2Point{}
	r.inner.ScalarMultiplication(&p.inner, scalar.(*BLS12381Scalar).bigInt())
	return r
}

func (p *BLS12381G2Point) Negate() Point {
	r := &BLS12381G2Point{}
	r.inner.Neg(&p.inner)
	return r
}

func (p *BLS12381G2Point) Equal(other Point) bool {
	o, ok := other.(*BLS12381G2Point)
	if !ok {
		return false
	}
	return p.inner.Equal(&o.inner)
}

func (p *BLS12381G2Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

func (p *BLS12381G2Point) Group() Group { return GroupG2 }

// BLS12381GT implements the GTElement interface
type BLS12381GT struct {
	inner bls12381.GT
}

func (g *BLS12381GT) Bytes() []byte {
	b := g.inner.Bytes()
	return b[:]
}

func (g *BLS12381GT) Equal(other GTElement) bool {
	o, ok := other.(*BLS12381GT)
	if !ok {
		return false
	}
	return g.inner.Equal(&o.inner)
}
