package kzg

import (
	"encoding/hex"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254Curve implements the Curve interface for BN254 using gnark-crypto
type BN254Curve struct {
	g1Gen bn254.G1Jac
	g2Gen bn254.G2Jac
}

// NewBN254Curve creates a new BN254 curve instance
func NewBN254Curve() *BN254Curve {
	g1, g2, _, _ := bn254.Generators()
	return &BN254Curve{g1Gen: g1, g2Gen: g2}
}

func (c *BN254Curve) Name() string    { return string(BN254) }
func (c *BN254Curve) ScalarSize() int { return fr.Bytes }

func (c *BN254Curve) ScalarFromBytes(data []byte) (Scalar, error) {
	if len(data) != fr.Bytes {
		return nil, ErrInvalidScalarLength
	}

	value := new(big.Int).SetBytes(data)
	if value.Cmp(fr.Modulus()) >= 0 {
		return nil, ErrInvalidScalar
	}

	s := &BN254Scalar{}
	s.inner.SetBigInt(value)
	return s, nil
}

func (c *BN254Curve) ScalarFromUniformBytes(data []byte) (Scalar, error) {
	if len(data) < fr.Bytes {
		return nil, ErrInvalidScalarLength
	}

	value := new(big.Int).SetBytes(data)
	value.Mod(value, fr.Modulus())

	s := &BN254Scalar{}
	s.inner.SetBigInt(value)
	return s, nil
}

func (c *BN254Curve) ScalarFromUint64(v uint64) Scalar {
	s := &BN254Scalar{}
	s.inner.SetUint64(v)
	return s
}

func (c *BN254Curve) ScalarRandom(source io.Reader) (Scalar, error) {
	buf, err := readUniformBytes(source)
	if err != nil {
		return nil, err
	}
	defer clear(buf)

	return c.ScalarFromUniformBytes(buf)
}

func (c *BN254Curve) ScalarZero() Scalar {
	return &BN254Scalar{}
}

func (c *BN254Curve) ScalarOne() Scalar {
	s := &BN254Scalar{}
	s.inner.SetOne()
	return s
}

func (c *BN254Curve) G1Generator() Point {
	return &BN254G1Point{inner: c.g1Gen}
}

func (c *BN254Curve) G2Generator() Point {
	return &BN254G2Point{inner: c.g2Gen}
}

func (c *BN254Curve) G1Identity() Point {
	p := &BN254G1Point{}
	p.inner.FromAffine(&bn254.G1Affine{})
	return p
}

func (c *BN254Curve) G2Identity() Point {
	p := &BN254G2Point{}
	p.inner.FromAffine(&bn254.G2Affine{})
	return p
}

func (c *BN254Curve) Pair(g1 Point, g2 Point) (GTElement, error) {
	p, ok := g1.(*BN254G1Point)
	if !ok {
		return nil, ErrWrongGroup
	}
	q, ok := g2.(*BN254G2Point)
	if !ok {
		return nil, ErrWrongGroup
	}

	var a bn254.G1Affine
	a.FromJacobian(&p.inner)
	var b bn254.G2Affine
	b.FromJacobian(&q.inner)

	gt, err := bn254.Pair([]bn254.G1Affine{a}, []bn254.G2Affine{b})
	if err != nil {
		return nil, err
	}
	return &BN254GT{inner: gt}, nil
}

// BN254Scalar implements the Scalar interface
type BN254Scalar struct {
	inner fr.Element
}

func (s *BN254Scalar) CurveName() string { return string(BN254) }

func (s *BN254Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *BN254Scalar) String() string {
	return hex.EncodeToString(s.Bytes())
}

func (s *BN254Scalar) Add(other Scalar) Scalar {
	r := &BN254Scalar{}
	r.inner.Add(&s.inner, &other.(*BN254Scalar).inner)
	return r
}

func (s *BN254Scalar) Sub(other Scalar) Scalar {
	r := &BN254Scalar{}
	r.inner.Sub(&s.inner, &other.(*BN254Scalar).inner)
	return r
}

func (s *BN254Scalar) Mul(other Scalar) Scalar {
	r := &BN254Scalar{}
	r.inner.Mul(&s.inner, &other.(*BN254Scalar).inner)
	return r
}

func (s *BN254Scalar) Negate() Scalar {
	r := &BN254Scalar{}
	r.inner.Neg(&s.inner)
	return r
}

func (s *BN254Scalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return nil, ErrScalarZero
	}

	r := &BN254Scalar{}
	r.inner.Inverse(&s.inner)
	return r, nil
}

func (s *BN254Scalar) Equal(other Scalar) bool {
	return s.inner.Equal(&other.(*BN254Scalar).inner)
}

func (s *BN254Scalar) IsZero() bool {
	return s.inner.IsZero()
}

func (s *BN254Scalar) Zeroize() {
	s.inner.SetZero()
}

func (s *BN254Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// BN254G1Point implements the Point interface for G1
type BN254G1Point struct {
	inner bn254.G1Jac
}

func (p *BN254G1Point) CurveName() string { return string(BN254) }

func (p *BN254G1Point) Bytes() []byte {
	var a bn254.G1Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

func (p *BN254G1Point) String() string {
	return hex.EncodeToString(p.Bytes())
}

func (p *BN254G1Point) Add(other Point) Point {
	r := &BN254G1Point{inner: p.inner}
	r.inner.AddAssign(&other.(*BN254G1Point).inner)
	return r
}

func (p *BN254G1Point) Sub(other Point) Point {
	r := &BN254G1Point{inner: p.inner}
	r.inner.SubAssign(&other.(*BN254G1Point).inner)
	return r
}

func (p *BN254G1Point) Mul(scalar Scalar) Point {
	r := &BN254G1Point{}
	r.inner.ScalarMultiplication(&p.inner, scalar.(*BN254Scalar).bigInt())
	return r
}

func (p *BN254G1Point) Negate() Point {
	r := &BN254G1Point{}
	r.inner.Neg(&p.inner)
	return r
}

func (p *BN254G1Point) Equal(other Point) bool {
	o, ok := other.(*BN254G1Point)
	if !ok {
		return false
	}
	return p.inner.Equal(&o.inner)
}

func (p *BN254G1Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

func (p *BN254G1Point) Group() Group { return GroupG1 }

// BN254G2Point implements the Point interface for G2
type BN254G2Point struct {
	inner bn254.G2Jac
}

func (p *BN254G2Point) CurveName() string { return string(BN254) }

func (p *BN254G2Point) Bytes() []byte {
	var a bn254.G2Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

func (p *BN254G2Point) String() string {
	return hex.EncodeToString(p.Bytes())
}

func (p *BN254G2Point) Add(other Point) Point {
	r := &BN254G2Point{inner: p.inner}
	r.inner.AddAssign(&other.(*BN254G2Point).inner)
	return r
}

func (p *BN254G2Point) Sub(other Point) Point {
	r := &BN254G2Point{inner: p.inner}
	r.inner.SubAssign(&other.(*BN254G2Point).inner)
	return r
}

func (p *BN254G2Point) Mul(scalar Scalar) Point {
	r := &BN254G2Point{}
	r.inner.ScalarMultiplication(&p.inner, scalar.(*BN254Scalar).bigInt())
	return r
}

func (p *BN254G2Point) Negate() Point {
	r := &BN254G2Point{}
	r.inner.Neg(&p.inner)
	return r
}

func (p *BN254G2Point) Equal(other Point) bool {
	o, ok := other.(*BN254G2Point)
	if !ok {
		return false
	}
	return p.inner.Equal(&o.inner)
}

func (p *BN254G2Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

func (p *BN254G2Point) Group() Group { return GroupG2 }

// BN254GT implements the GTElement interface
type BN254GT struct {
	inner bn254.GT
}

func (g *BN254GT) Bytes() []byte {
	b := g.inner.Bytes()
	return b[:]
}

func (g *BN254GT) Equal(other GTElement) bool {
	o, ok := other.(*BN254GT)
	if !ok {
		return false
	}
	return g.inner.Equal(&o.inner)
}
