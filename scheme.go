package kzg

import (
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// Scheme is a configured KZG instance holding its public parameters. It is
// safe for concurrent use once constructed.
type Scheme struct {
	curve   Curve
	params  *PublicParams
	workers int
	audit   AuditEventHandler
}

// NewScheme validates cfg, runs the trusted setup and returns a ready scheme
func NewScheme(cfg SchemeConfig) (*Scheme, error) {
	audit := cfg.AuditHandler
	if audit == nil {
		audit = &NullAuditHandler{}
	}

	validation := NewDefaultConfigurationValidator().ValidateCompleteConfiguration(cfg)
	if !validation.Valid {
		reason := strings.Join(validation.Errors, "; ")
		audit.OnValidationFailure(
			NewAuditEventBuilder(AuditEventValidationFailure, ReasonValidationError).
				WithCurve(string(cfg.CurveType)).
				WithBound(cfg.MaxLength).
				WithError(ErrInvalidConfiguration).
				BuildValidationFailure("configuration", reason, map[string]interface{}{
					"curve_type": string(cfg.CurveType),
					"max_length": cfg.MaxLength,
					"workers":    cfg.Workers,
				}),
		)
		return nil, ErrInvalidConfiguration.WithDetails("%s", reason)
	}

	curve := cfg.Curve
	if curve == nil {
		var err error
		if curve, err = NewCurve(cfg.CurveType); err != nil {
			return nil, ErrInvalidCurve.WithCause(err)
		}
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = defaultWorkers()
	}

	_, deterministic := cfg.Source.(*DeterministicSource)
	start := time.Now()
	params, err := setup(curve, cfg.MaxLength, cfg.Source, workers)
	if err != nil {
		audit.OnError(
			NewAuditEventBuilder(AuditEventSetup, ReasonInitialization).
				WithCurve(curve.Name()).
				WithBound(cfg.MaxLength).
				WithError(err).
				Build(),
		)
		return nil, err
	}

	digest := params.Digest()
	audit.OnSetup(
		NewAuditEventBuilder(AuditEventSetup, ReasonInitialization).
			WithCurve(curve.Name()).
			WithBound(params.N()).
			WithMetadata("security_level", string(validation.SecurityLevel)).
			WithMetadata("warnings", validation.Warnings).
			BuildSetup(deterministic, time.Since(start), hex.EncodeToString(digest[:])),
	)

	return &Scheme{
		curve:   curve,
		params:  params,
		workers: workers,
		audit:   audit,
	}, nil
}

// NewSchemeFromParams wraps existing public parameters, e.g. loaded from a
// ceremony transcript. Only Workers and AuditHandler are read from cfg.
func NewSchemeFromParams(params *PublicParams, cfg SchemeConfig) (*Scheme, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	audit := cfg.AuditHandler
	if audit == nil {
		audit = &NullAuditHandler{}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}

	return &Scheme{
		curve:   params.curve,
		params:  params,
		workers: workers,
		audit:   audit,
	}, nil
}

// Params returns the scheme's public parameters
func (s *Scheme) Params() *PublicParams {
	return s.params
}

// Curve returns the scheme's curve
func (s *Scheme) Curve() Curve {
	return s.curve
}

// NewPolynomial builds a polynomial sized to the scheme's bound. Missing
// trailing coefficients are zero-filled.
func (s *Scheme) NewPolynomial(coefficients []Scalar) (*Polynomial, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if len(coefficients) > s.params.n {
		return nil, ErrLengthMismatch.
			WithContext("poly_length", len(coefficients)).
			WithContext("params_bound", s.params.n)
	}

	padded := NewZeroPolynomial(s.curve, s.params.n).Coefficients()
	copy(padded, coefficients)
	return NewPolynomial(s.curve, padded)
}

// Commit commits to poly
func (s *Scheme) Commit(poly *Polynomial) (*Commitment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	c, err := commit(s.params, poly, s.workers)
	builder := s.event(AuditEventCommitment, poly)
	if err != nil {
		s.reportFailure(builder, err)
		return nil, err
	}

	s.audit.OnCommitment(builder.WithMetadata("commitment", hex.EncodeToString(c.Bytes())).Build())
	return c, nil
}

// CreateWitness opens poly at z
func (s *Scheme) CreateWitness(poly *Polynomial, z Scalar) (*Witness, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	w, err := createWitness(s.params, poly, z, s.workers)
	builder := s.event(AuditEventWitnessCreation, poly)
	if err != nil {
		s.reportFailure(builder, err)
		return nil, err
	}

	s.audit.OnWitnessCreation(builder.WithMetadata("point", w.Z.String()).Build())
	return w, nil
}

// Verify checks witness against commitment
func (s *Scheme) Verify(witness *Witness, commitment *Commitment) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}

	ok, err := Verify(s.params, witness, commitment)
	builder := s.event(AuditEventVerification, nil)
	if err != nil {
		s.reportFailure(builder, err)
		return false, err
	}

	point := ""
	if witness.Z != nil {
		point = witness.Z.String()
	}
	s.audit.OnVerification(builder.BuildVerification(ok, point))
	return ok, nil
}

func (s *Scheme) ready() error {
	if s == nil || s.params == nil || s.curve == nil {
		return ErrNotInitialized
	}
	return nil
}

func (s *Scheme) event(eventType AuditEventType, poly *Polynomial) *AuditEventBuilder {
	b := NewAuditEventBuilder(eventType, ReasonRequest).
		WithCurve(s.curve.Name()).
		WithBound(s.params.n)
	if poly != nil {
		b.WithPolynomialLength(poly.Len())
	}
	return b
}

// reportFailure routes validation-category errors to OnValidationFailure and
// everything else to OnError
func (s *Scheme) reportFailure(b *AuditEventBuilder, err error) {
	b.WithError(err)
	if IsErrorCategory(err, ErrorCategoryValidation) {
		s.audit.OnValidationFailure(b.BuildValidationFailure(validationType(err), err.Error(), GetErrorContext(err)))
		return
	}
	if IsErrorCategory(err, ErrorCategoryIntegrity) {
		b.event.Reason = ReasonIntegrityError
	}
	s.audit.OnError(b.Build())
}

// validationType names the input a validation error rejected
func validationType(err error) string {
	switch {
	case errors.Is(err, ErrLengthMismatch):
		return "length"
	case errors.Is(err, ErrInvalidPolynomial):
		return "polynomial"
	case errors.Is(err, ErrInvalidWitness):
		return "witness"
	case errors.Is(err, ErrInvalidCommitment):
		return "commitment"
	default:
		return "input"
	}
}
