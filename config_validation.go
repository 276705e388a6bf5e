package kzg

import (
	"fmt"
	"io"
)

// Configuration validation constants
const (
	DefaultMaxLength    = 4096
	MaxSupportedLength  = 1 << 20
	MinVerifiableLength = 2
	DefaultMaxWorkers   = 256
)

// SchemeConfig configures a Scheme
type SchemeConfig struct {
	// CurveType selects a built-in backend when Curve is nil
	CurveType CurveType
	// Curve overrides CurveType with a caller-provided implementation
	Curve Curve
	// MaxLength is the parameter bound n: committed polynomials have exactly
	// this many coefficient slots
	MaxLength int
	// Workers bounds the goroutines used by setup and MSMs (GOMAXPROCS when 0)
	Workers int
	// Source supplies the setup secret (crypto/rand when nil)
	Source io.Reader
	// AuditHandler receives audit events (NullAuditHandler when nil)
	AuditHandler AuditEventHandler
}

// DefaultSchemeConfig returns a BLS12-381 configuration with secure defaults
func DefaultSchemeConfig() SchemeConfig {
	return SchemeConfig{
		CurveType: BLS12381,
		MaxLength: DefaultMaxLength,
	}
}

// ConfigurationValidator provides validation for scheme configuration
type ConfigurationValidator struct {
	// Supported curves
	supportedCurves map[string]bool

	maxLength  int
	maxWorkers int
}

// NewDefaultConfigurationValidator creates a validator with secure defaults
func NewDefaultConfigurationValidator() *ConfigurationValidator {
	return &ConfigurationValidator{
		supportedCurves: map[string]bool{
			string(BLS12381):   true,
			string(BN254):      true,
			string(BN256Kyber): true,
		},
		maxLength:  MaxSupportedLength,
		maxWorkers: DefaultMaxWorkers,
	}
}

// ValidateCurve validates that a curve is supported and properly configured
func (cv *ConfigurationValidator) ValidateCurve(curve Curve) *ValidationResult {
	result := newValidationResult()

	if curve == nil {
		result.Valid = false
		result.Errors = append(result.Errors, "curve cannot be nil")
		return result
	}

	curveName := curve.Name()
	if curveName == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "curve name cannot be empty")
		return result
	}

	if !cv.supportedCurves[curveName] {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("unsupported curve: %s", curveName))
		result.Recommendations = append(result.Recommendations, "use a supported curve: bls12-381, bn254, or bn256-kyber")
		return result
	}

	switch CurveType(curveName) {
	case BLS12381:
		result.SecurityLevel = SecurityLevelHigh
		result.Recommendations = append(result.Recommendations, "bls12-381 targets roughly 128-bit security")
	case BN254, BN256Kyber:
		result.SecurityLevel = SecurityLevelMedium
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s offers roughly 100-bit security after recent tower NFS improvements", curveName))
		result.Recommendations = append(result.Recommendations, "prefer bls12-381 unless compatibility with existing bn254 tooling is required")
	}

	return result
}

// ValidateMaxLength validates the parameter bound n
func (cv *ConfigurationValidator) ValidateMaxLength(n int) *ValidationResult {
	result := newValidationResult()

	if n < 1 {
		result.Valid = false
		result.SecurityLevel = SecurityLevelLow
		result.Errors = append(result.Errors, fmt.Sprintf("max length must be at least 1, got %d", n))
		return result
	}
	if n > cv.maxLength {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max length %d exceeds maximum %d", n, cv.maxLength))
		return result
	}
	if n < MinVerifiableLength {
		result.Warnings = append(result.Warnings, "max length below 2 leaves no [s]_2 element; witnesses cannot be verified")
	}

	result.SecurityLevel = SecurityLevelHigh
	return result
}

// ValidateWorkers validates the configured worker count
func (cv *ConfigurationValidator) ValidateWorkers(workers int) *ValidationResult {
	result := newValidationResult()

	if workers < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "worker count cannot be negative")
		return result
	}
	if workers > cv.maxWorkers {
		result.Warnings = append(result.Warnings, fmt.Sprintf("worker count %d exceeds %d, extra goroutines only add scheduling overhead", workers, cv.maxWorkers))
	}

	result.SecurityLevel = SecurityLevelHigh
	return result
}

// ValidateSource flags randomness sources that make the setup secret reproducible
func (cv *ConfigurationValidator) ValidateSource(source io.Reader) *ValidationResult {
	result := newValidationResult()
	result.SecurityLevel = SecurityLevelHigh

	if _, ok := source.(*DeterministicSource); ok {
		result.SecurityLevel = SecurityLevelLow
		result.Warnings = append(result.Warnings, "deterministic randomness source: anyone holding the seed can recover the setup secret")
		result.Recommendations = append(result.Recommendations, "use a nil source (crypto/rand) outside tests")
	}
	return result
}

// ValidateCompleteConfiguration validates a complete scheme configuration
func (cv *ConfigurationValidator) ValidateCompleteConfiguration(cfg SchemeConfig) *ValidationResult {
	result := newValidationResult()
	result.SecurityLevel = SecurityLevelHigh

	curve := cfg.Curve
	if curve == nil {
		var err error
		curve, err = NewCurve(cfg.CurveType)
		if err != nil {
			result.Valid = false
			result.SecurityLevel = SecurityLevelLow
			result.Errors = append(result.Errors, err.Error())
			return result
		}
	}

	results := []*ValidationResult{
		cv.ValidateCurve(curve),
		cv.ValidateMaxLength(cfg.MaxLength),
		cv.ValidateWorkers(cfg.Workers),
		cv.ValidateSource(cfg.Source),
	}

	levels := make([]SecurityLevel, 0, len(results))
	for _, r := range results {
		result.merge(r)
		levels = append(levels, r.SecurityLevel)
	}
	result.SecurityLevel = getMinimumSecurityLevel(levels)

	// Add overall recommendations
	if result.Valid && result.SecurityLevel == SecurityLevelHigh {
		result.Recommendations = append(result.Recommendations, "configuration meets high security standards")
	} else if result.Valid && result.SecurityLevel == SecurityLevelMedium {
		result.Recommendations = append(result.Recommendations, "configuration is acceptable but could be improved")
	}

	return result
}

// getMinimumSecurityLevel returns the minimum security level from a slice
func getMinimumSecurityLevel(levels []SecurityLevel) SecurityLevel {
	if len(levels) == 0 {
		return SecurityLevelMedium
	}

	minLevel := SecurityLevelHigh
	for _, level := range levels {
		minLevel = minSecurityLevel(minLevel, level)
	}
	return minLevel
}
