package kzg

import (
	"fmt"
)

// ErrorCategory represents the category of a KZG error
type ErrorCategory string

const (
	ErrorCategoryValidation    ErrorCategory = "validation"
	ErrorCategoryParameters    ErrorCategory = "parameters"
	ErrorCategoryArithmetic    ErrorCategory = "arithmetic"
	ErrorCategoryIntegrity     ErrorCategory = "integrity"
	ErrorCategoryCryptographic ErrorCategory = "cryptographic"
	ErrorCategoryConfiguration ErrorCategory = "configuration"
	ErrorCategoryInternal      ErrorCategory = "internal"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	ErrorSeverityLow      ErrorSeverity = "low"      // Non-critical, operation can continue
	ErrorSeverityMedium   ErrorSeverity = "medium"   // Input rejected, caller may retry with other input
	ErrorSeverityHigh     ErrorSeverity = "high"     // Operation aborted
	ErrorSeverityCritical ErrorSeverity = "critical" // System-level failure
)

// KZGError represents a structured error in the KZG library
type KZGError struct {
	Category    ErrorCategory          `json:"category"`
	Severity    ErrorSeverity          `json:"severity"`
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	Cause       error                  `json:"-"` // Original error, not serialized
	Context     map[string]interface{} `json:"context,omitempty"`
	Recoverable bool                   `json:"recoverable"`
}

// Error implements the error interface
func (e *KZGError) Error() string {
	msg := fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *KZGError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a KZGError with the same code, so the package
// sentinels keep matching after WithContext/WithCause/WithDetails copies.
func (e *KZGError) Is(target error) bool {
	t, ok := target.(*KZGError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *KZGError) clone() *KZGError {
	newError := &KZGError{
		Category:    e.Category,
		Severity:    e.Severity,
		Code:        e.Code,
		Message:     e.Message,
		Details:     e.Details,
		Recoverable: e.Recoverable,
		Cause:       e.Cause,
		Context:     make(map[string]interface{}, len(e.Context)),
	}
	for k, v := range e.Context {
		newError.Context[k] = v
	}
	return newError
}

// WithContext adds context information to the error
func (e *KZGError) WithContext(key string, value interface{}) *KZGError {
	// Copy so the package-level sentinels are never mutated
	newError := e.clone()
	newError.Context[key] = value
	return newError
}

// WithCause sets the underlying cause of the error
func (e *KZGError) WithCause(cause error) *KZGError {
	newError := e.clone()
	newError.Cause = cause
	return newError
}

// WithDetails attaches a formatted detail string
func (e *KZGError) WithDetails(format string, args ...interface{}) *KZGError {
	newError := e.clone()
	newError.Details = fmt.Sprintf(format, args...)
	return newError
}

// IsRecoverable returns whether the error is recoverable
func (e *KZGError) IsRecoverable() bool {
	return e.Recoverable
}

// NewKZGError creates a new KZG error
func NewKZGError(category ErrorCategory, severity ErrorSeverity, code, message string) *KZGError {
	return &KZGError{
		Category:    category,
		Severity:    severity,
		Code:        code,
		Message:     message,
		Context:     make(map[string]interface{}),
		Recoverable: severity != ErrorSeverityCritical,
	}
}

// Validation Errors
var (
	ErrLengthMismatch = NewKZGError(
		ErrorCategoryValidation, ErrorSeverityMedium, "LENGTH_MISMATCH",
		"polynomial length does not match the parameter bound")

	ErrInvalidWitness = NewKZGError(
		ErrorCategoryValidation, ErrorSeverityMedium, "INVALID_WITNESS",
		"witness is missing or malformed")

	ErrInvalidCommitment = NewKZGError(
		ErrorCategoryValidation, ErrorSeverityMedium, "INVALID_COMMITMENT",
		"commitment is missing or malformed")

	ErrInvalidPolynomial = NewKZGError(
		ErrorCategoryValidation, ErrorSeverityMedium, "INVALID_POLYNOMIAL",
		"polynomial is missing or malformed")
)

// Parameter Errors
var (
	ErrInvalidParameters = NewKZGError(
		ErrorCategoryParameters, ErrorSeverityHigh, "INVALID_PARAMETERS",
		"public parameters are invalid")
)

// Arithmetic Errors
var (
	ErrDivisionByZero = NewKZGError(
		ErrorCategoryArithmetic, ErrorSeverityMedium, "DIVISION_BY_ZERO",
		"divisor leading coefficient is zero")

	ErrUnsupportedDivisor = NewKZGError(
		ErrorCategoryArithmetic, ErrorSeverityMedium, "UNSUPPORTED_DIVISOR",
		"divisor must be linear")

	ErrDivisorCapacity = NewKZGError(
		ErrorCategoryArithmetic, ErrorSeverityMedium, "DIVISOR_CAPACITY",
		"divisor buffer too short to cancel the leading term")
)

// Integrity Errors
var (
	ErrIntegrityViolation = NewKZGError(
		ErrorCategoryIntegrity, ErrorSeverityHigh, "INTEGRITY_VIOLATION",
		"witness quotient left a nonzero remainder")
)

// Cryptographic Errors
var (
	ErrRandomnessGeneration = NewKZGError(
		ErrorCategoryCryptographic, ErrorSeverityCritical, "RANDOMNESS_GENERATION_FAILED",
		"failed to generate setup randomness")

	ErrPairingFailed = NewKZGError(
		ErrorCategoryCryptographic, ErrorSeverityHigh, "PAIRING_FAILED",
		"pairing computation failed")
)

// Configuration Errors
var (
	ErrInvalidConfiguration = NewKZGError(
		ErrorCategoryConfiguration, ErrorSeverityHigh, "INVALID_CONFIGURATION",
		"scheme configuration is invalid")

	ErrInvalidCurve = NewKZGError(
		ErrorCategoryConfiguration, ErrorSeverityHigh, "INVALID_CURVE",
		"curve is invalid or unsupported")
)

// Internal Errors
var (
	ErrNotInitialized = NewKZGError(
		ErrorCategoryInternal, ErrorSeverityHigh, "NOT_INITIALIZED",
		"scheme not properly initialized")
)

// Error helper functions

// WrapError wraps an existing error with KZG error context
func WrapError(err error, category ErrorCategory, severity ErrorSeverity, code, message string) *KZGError {
	return NewKZGError(category, severity, code, message).WithCause(err)
}

// IsErrorCategory checks if an error belongs to a specific category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if kzgErr, ok := err.(*KZGError); ok {
		return kzgErr.Category == category
	}
	return false
}

// IsErrorSeverity checks if an error has a specific severity
func IsErrorSeverity(err error, severity ErrorSeverity) bool {
	if kzgErr, ok := err.(*KZGError); ok {
		return kzgErr.Severity == severity
	}
	return false
}

// IsRecoverableError checks if an error is recoverable
func IsRecoverableError(err error) bool {
	if kzgErr, ok := err.(*KZGError); ok {
		return kzgErr.IsRecoverable()
	}
	return true // Non-KZG errors are assumed recoverable
}

// GetErrorContext extracts context from a KZG error
func GetErrorContext(err error) map[string]interface{} {
	if kzgErr, ok := err.(*KZGError); ok {
		return kzgErr.Context
	}
	return nil
}
