package kzg

import (
	"encoding/hex"
	"io"
	"math/big"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing/bn256"
)

// BN256KyberCurve implements the Curve interface on the DEDIS kyber BN256 pairing suite
type BN256KyberCurve struct {
	suite *bn256.Suite
}

// NewBN256KyberCurve creates a new kyber-backed BN256 curve instance
func NewBN256KyberCurve() *BN256KyberCurve {
	return &BN256KyberCurve{suite: bn256.NewSuite()}
}

func (c *BN256KyberCurve) Name() string    { return string(BN256Kyber) }
func (c *BN256KyberCurve) ScalarSize() int { return c.suite.G1().ScalarLen() }

func (c *BN256KyberCurve) ScalarFromBytes(data []byte) (Scalar, error) {
	if len(data) != c.ScalarSize() {
		return nil, ErrInvalidScalarLength
	}

	value := new(big.Int).SetBytes(data)
	if value.Cmp(bn256.Order) >= 0 {
		return nil, ErrInvalidScalar
	}

	return &BN256KyberScalar{inner: c.suite.G1().Scalar().SetBytes(data)}, nil
}

func (c *BN256KyberCurve) ScalarFromUniformBytes(data []byte) (Scalar, error) {
	if len(data) < c.ScalarSize() {
		return nil, ErrInvalidScalarLength
	}

	value := new(big.Int).SetBytes(data)
	value.Mod(value, bn256.Order)

	buf := value.FillBytes(make([]byte, c.ScalarSize()))
	return &BN256KyberScalar{inner: c.suite.G1().Scalar().SetBytes(buf)}, nil
}

func (c *BN256KyberCurve) ScalarFromUint64(v uint64) Scalar {
	buf := new(big.Int).SetUint64(v).FillBytes(make([]byte, c.ScalarSize()))
	return &BN256KyberScalar{inner: c.suite.G1().Scalar().SetBytes(buf)}
}

func (c *BN256KyberCurve) ScalarRandom(source io.Reader) (Scalar, error) {
	buf, err := readUniformBytes(source)
	if err != nil {
		return nil, err
	}
	defer clear(buf)

	return c.ScalarFromUniformBytes(buf)
}

func (c *BN256KyberCurve) ScalarZero() Scalar {
	return &BN256KyberScalar{inner: c.suite.G1().Scalar().Zero()}
}

func (c *BN256KyberCurve) ScalarOne() Scalar {
	return &BN256KyberScalar{inner: c.suite.G1().Scalar().One()}
}

func (c *BN256KyberCurve) G1Generator() Point {
	return &BN256KyberPoint{inner: c.suite.G1().Point().Base(), group: GroupG1}
}

func (c *BN256KyberCurve) G2Generator() Point {
	return &BN256KyberPoint{inner: c.suite.G2().Point().Base(), group: GroupG2}
}

func (c *BN256KyberCurve) G1Identity() Point {
	return &BN256KyberPoint{inner: c.suite.G1().Point().Null(), group: GroupG1}
}

func (c *BN256KyberCurve) G2Identity() Point {
	return &BN256KyberPoint{inner: c.suite.G2().Point().Null(), group: GroupG2}
}

func (c *BN256KyberCurve) Pair(g1 Point, g2 Point) (GTElement, error) {
	p, ok := g1.(*BN256KyberPoint)
	if !ok || p.group != GroupG1 {
		return nil, ErrWrongGroup
	}
	q, ok := g2.(*BN256KyberPoint)
	if !ok || q.group != GroupG2 {
		return nil, ErrWrongGroup
	}

	// The suite's Miller loop does not special-case a G1 point at infinity,
	// so the degenerate pairing is answered directly.
	if p.IsIdentity() || q.IsIdentity() {
		return &BN256KyberGT{inner: c.suite.GT().Point().Null()}, nil
	}

	return &BN256KyberGT{inner: c.suite.Pair(p.inner, q.inner)}, nil
}

// BN256KyberScalar implements the Scalar interface
type BN256KyberScalar struct {
	inner kyber.Scalar
}

func (s *BN256KyberScalar) CurveName() string { return string(BN256Kyber) }

func (s *BN256KyberScalar) Bytes() []byte {
	b, err := s.inner.MarshalBinary()
	if err != nil {
		return nil
	}
	return b
}

func (s *BN256KyberScalar) String() string {
	return hex.EncodeToString(s.Bytes())
}

func (s *BN256KyberScalar) Add(other Scalar) Scalar {
	return &BN256KyberScalar{inner: s.inner.Clone().Add(s.inner, other.(*BN256KyberScalar).inner)}
}

func (s *BN256KyberScalar) Sub(other Scalar) Scalar {
	return &BN256KyberScalar{inner: s.inner.Clone().Sub(s.inner, other.(*BN256KyberScalar).inner)}
}

func (s *BN256KyberScalar) Mul(other Scalar) Scalar {
	return &BN256KyberScalar{inner: s.inner.Clone().Mul(s.inner, other.(*BN256KyberScalar).inner)}
}

func (s *BN256KyberScalar) Negate() Scalar {
	return &BN256KyberScalar{inner: s.inner.Clone().Neg(s.inner)}
}

func (s *BN256KyberScalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return nil, ErrScalarZero
	}
	return &BN256KyberScalar{inner: s.inner.Clone().Inv(s.inner)}, nil
}

func (s *BN256KyberScalar) Equal(other Scalar) bool {
	return s.inner.Equal(other.(*BN256KyberScalar).inner)
}

func (s *BN256KyberScalar) IsZero() bool {
	return s.inner.Equal(s.inner.Clone().Zero())
}

func (s *BN256KyberScalar) Zeroize() {
	s.inner.Zero()
}

// BN256KyberPoint implements the Point interface for both source groups.
// The kyber suite hands out G1 and G2 points behind the same interface, so the
// group is tracked alongside.
type BN256KyberPoint struct {
	inner kyber.Point
	group Group
}

func (p *BN256KyberPoint) CurveName() string { return string(BN256Kyber) }

func (p *BN256KyberPoint) Bytes() []byte {
	b, err := p.inner.MarshalBinary()
	if err != nil {
		return nil
	}
	return b
}

func (p *BN256KyberPoint) String() string {
	return hex.EncodeToString(p.Bytes())
}

func (p *BN256KyberPoint) Add(other Point) Point {
	return &BN256KyberPoint{inner: p.inner.Clone().Add(p.inner, other.(*BN256KyberPoint).inner), group: p.group}
}

func (p *BN256KyberPoint) Sub(other Point) Point {
	return &BN256KyberPoint{inner: p.inner.Clone().Sub(p.inner, other.(*BN256KyberPoint).inner), group: p.group}
}

func (p *BN256KyberPoint) Mul(scalar Scalar) Point {
	return &BN256KyberPoint{inner: p.inner.Clone().Mul(scalar.(*BN256KyberScalar).inner, p.inner), group: p.group}
}

func (p *BN256KyberPoint) Negate() Point {
	return &BN256KyberPoint{inner: p.inner.Clone().Neg(p.inner), group: p.group}
}

func (p *BN256KyberPoint) Equal(other Point) bool {
	o, ok := other.(*BN256KyberPoint)
	if !ok || o.group != p.group {
		return false
	}
	return p.inner.Equal(o.inner)
}

func (p *BN256KyberPoint) IsIdentity() bool {
	return p.inner.Equal(p.inner.Clone().Null())
}

func (p *BN256KyberPoint) Group() Group { return p.group }

// BN256KyberGT implements the GTElement interface
type BN256KyberGT struct {
	inner kyber.Point
}

func (g *BN256KyberGT) Bytes() []byte {
	b, err := g.inner.MarshalBinary()
	if err != nil {
		return nil
	}
	return b
}

func (g *BN256KyberGT) Equal(other GTElement) bool {
	o, ok := other.(*BN256KyberGT)
	if !ok {
		return false
	}
	return g.inner.Equal(o.inner)
}
