package kzg

import (
	"fmt"
)

// SecurityLevel represents the assessed security level of a configuration
type SecurityLevel string

const (
	SecurityLevelLow    SecurityLevel = "low"
	SecurityLevelMedium SecurityLevel = "medium"
	SecurityLevelHigh   SecurityLevel = "high"
)

// ValidationResult contains the result of parameter validation
type ValidationResult struct {
	Valid           bool          `json:"valid"`
	SecurityLevel   SecurityLevel `json:"security_level"`
	Warnings        []string      `json:"warnings,omitempty"`
	Errors          []string      `json:"errors,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{
		Valid:           true,
		SecurityLevel:   SecurityLevelMedium,
		Warnings:        []string{},
		Errors:          []string{},
		Recommendations: []string{},
	}
}

// merge folds other's findings into r; the security level is left to the caller
func (r *ValidationResult) merge(other *ValidationResult) {
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Recommendations = append(r.Recommendations, other.Recommendations...)
}

// ParamsValidator checks public parameters beyond their shape
type ParamsValidator struct {
	// SampleSize bounds how many ladder steps are checked with pairings;
	// zero checks every step
	SampleSize int
}

// NewDefaultParamsValidator checks the first 16 ladder steps
func NewDefaultParamsValidator() *ParamsValidator {
	return &ParamsValidator{SampleSize: 16}
}

// ValidatePublicParams checks the shape and the ladder consistency of pp.
// Consecutive powers must satisfy e(g1[i+1], g2[0]) == e(g1[i], g2[1]) and
// both ladders must agree via e(g1[i], g2[0]) == e(g1[0], g2[i]). A transcript
// that passes was built from a single secret.
func (pv *ParamsValidator) ValidatePublicParams(pp *PublicParams) *ValidationResult {
	result := newValidationResult()

	if err := pp.Validate(); err != nil {
		result.Valid = false
		result.SecurityLevel = SecurityLevelLow
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if pp.n < MinVerifiableLength {
		result.Warnings = append(result.Warnings, "parameters hold no [s]_2 element; witnesses cannot be verified")
		return result
	}

	if pp.g1Powers[1].IsIdentity() || pp.g1Powers[1].Equal(pp.gen1) {
		result.Valid = false
		result.SecurityLevel = SecurityLevelLow
		result.Errors = append(result.Errors, "secret is 0 or 1, commitments are trivially forgeable")
		return result
	}

	steps := pp.n - 1
	if pv.SampleSize > 0 && pv.SampleSize < steps {
		steps = pv.SampleSize
		result.Warnings = append(result.Warnings, fmt.Sprintf("only the first %d of %d ladder steps were checked", steps, pp.n-1))
	}

	curve := pp.curve
	for i := 0; i < steps; i++ {
		lhs, err := curve.Pair(pp.g1Powers[i+1], pp.gen2)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			return result
		}
		rhs, err := curve.Pair(pp.g1Powers[i], pp.g2Powers[1])
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			return result
		}
		if !lhs.Equal(rhs) {
			result.Valid = false
			result.SecurityLevel = SecurityLevelLow
			result.Errors = append(result.Errors, fmt.Sprintf("G1 ladder breaks at power %d", i+1))
			return result
		}

		cross, err := curve.Pair(pp.gen1, pp.g2Powers[i+1])
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			return result
		}
		if !lhs.Equal(cross) {
			result.Valid = false
			result.SecurityLevel = SecurityLevelLow
			result.Errors = append(result.Errors, fmt.Sprintf("G1 and G2 ladders disagree at power %d", i+1))
			return result
		}
	}

	// The ladder is sound; the curve bounds what it can offer
	curveResult := NewDefaultConfigurationValidator().ValidateCurve(curve)
	result.Warnings = append(result.Warnings, curveResult.Warnings...)
	result.SecurityLevel = minSecurityLevel(SecurityLevelHigh, curveResult.SecurityLevel)
	return result
}

// minSecurityLevel returns the minimum security level between two SecurityLevel values
func minSecurityLevel(level1, level2 SecurityLevel) SecurityLevel {
	levelRanking := map[SecurityLevel]int{
		SecurityLevelLow:    1,
		SecurityLevelMedium: 2,
		SecurityLevelHigh:   3,
	}

	rank1, exists1 := levelRanking[level1]
	if !exists1 {
		rank1 = 2 // Default to medium if unknown
	}

	rank2, exists2 := levelRanking[level2]
	if !exists2 {
		rank2 = 2 // Default to medium if unknown
	}

	if rank1 <= rank2 {
		return level1
	}
	return level2
}
