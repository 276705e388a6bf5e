package kzg

import (
	"fmt"
)

// Witness is an opening proof: the claim that the committed polynomial
// evaluates to Y at Z, with Point the commitment to (p(x) - Y) / (x - Z).
type Witness struct {
	Point Point
	Z     Scalar
	Y     Scalar
}

// Bytes returns point || z || y
func (w *Witness) Bytes() []byte {
	if w == nil || w.Point == nil || w.Z == nil || w.Y == nil {
		return nil
	}

	p, z, y := w.Point.Bytes(), w.Z.Bytes(), w.Y.Bytes()
	out := make([]byte, 0, len(p)+len(z)+len(y))
	out = append(out, p...)
	out = append(out, z...)
	return append(out, y...)
}

func (w *Witness) String() string {
	if w == nil || w.Point == nil || w.Z == nil || w.Y == nil {
		return "Witness{}"
	}
	return fmt.Sprintf("Witness{point: %s, z: %s, y: %s}", w.Point, w.Z, w.Y)
}

func (w *Witness) validate(curve Curve) error {
	if w == nil {
		return ErrInvalidWitness.WithDetails("witness is nil")
	}
	if w.Point == nil || w.Z == nil || w.Y == nil {
		return ErrInvalidWitness.WithDetails("witness has nil fields")
	}
	if !pointOnCurve(curve, w.Point) || !scalarOnCurve(curve, w.Z) || !scalarOnCurve(curve, w.Y) {
		return ErrInvalidWitness.WithCause(ErrCurveMismatch)
	}
	if w.Point.Group() != GroupG1 {
		return ErrInvalidWitness.WithCause(ErrWrongGroup)
	}
	return nil
}
