package kzg

import (
	"crypto/rand"
	"fmt"
	"time"
)

// AuditEventType represents the type of audit event
type AuditEventType string

const (
	// Setup events
	AuditEventSetup AuditEventType = "setup"

	// Protocol events
	AuditEventCommitment      AuditEventType = "commitment"
	AuditEventWitnessCreation AuditEventType = "witness_creation"
	AuditEventVerification    AuditEventType = "verification"

	// Error events
	AuditEventValidationFailure AuditEventType = "validation_failure"
)

// AuditEventReason represents why an event occurred
type AuditEventReason string

const (
	ReasonInitialization  AuditEventReason = "initialization"
	ReasonRequest         AuditEventReason = "request"
	ReasonValidationError AuditEventReason = "validation_error"
	ReasonIntegrityError  AuditEventReason = "integrity_error"
)

// AuditEvent represents a single audit event in the KZG library
type AuditEvent struct {
	// Event metadata
	EventID   string           `json:"event_id"`
	Timestamp time.Time        `json:"timestamp"`
	EventType AuditEventType   `json:"event_type"`
	Reason    AuditEventReason `json:"reason"`

	// Context information
	CurveName   string `json:"curve_name,omitempty"`
	ParamsBound int    `json:"params_bound,omitempty"`
	PolyLength  int    `json:"poly_length,omitempty"`

	// Success/failure information
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Additional context
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// SetupEvent contains details about a trusted setup run
type SetupEvent struct {
	AuditEvent

	Deterministic bool          `json:"deterministic"`
	Duration      time.Duration `json:"duration"`
	ParamsDigest  string        `json:"params_digest,omitempty"`
}

// VerificationEvent contains the outcome of an opening check
type VerificationEvent struct {
	AuditEvent

	Accepted bool   `json:"accepted"`
	Point    string `json:"point,omitempty"`
}

// ValidationFailureEvent contains details about validation failures
type ValidationFailureEvent struct {
	AuditEvent

	// Validation-specific fields
	ValidationType string                 `json:"validation_type"` // "configuration", "length", "witness"
	FailureReason  string                 `json:"failure_reason"`
	InputValues    map[string]interface{} `json:"input_values,omitempty"`
}

// AuditEventHandler defines the interface for handling audit events
// Applications implement this interface to record events according to their needs
type AuditEventHandler interface {
	// OnSetup is called when public parameters are generated
	OnSetup(event *SetupEvent)

	// OnCommitment is called after a polynomial is committed
	OnCommitment(event *AuditEvent)

	// OnWitnessCreation is called after an opening proof is produced
	OnWitnessCreation(event *AuditEvent)

	// OnVerification is called with the outcome of every verification
	OnVerification(event *VerificationEvent)

	// OnValidationFailure is called when input or configuration validation fails
	OnValidationFailure(event *ValidationFailureEvent)

	// OnError is called for general error events
	OnError(event *AuditEvent)
}

// NullAuditHandler is a no-op implementation of AuditEventHandler
// Used when no audit handling is needed
type NullAuditHandler struct{}

func (n *NullAuditHandler) OnSetup(event *SetupEvent) {}
func (n *NullAuditHandler) OnCommitment(event *AuditEvent) {}
func (n *NullAuditHandler) OnWitnessCreation(event *AuditEvent) {}
func (n *NullAuditHandler) OnVerification(event *VerificationEvent) {}
func (n *NullAuditHandler) OnValidationFailure(event *ValidationFailureEvent) {}
func (n *NullAuditHandler) OnError(event *AuditEvent) {}

// AuditEventBuilder helps construct audit events with proper defaults
type AuditEventBuilder struct {
	event *AuditEvent
}

// NewAuditEventBuilder creates a new audit event builder
func NewAuditEventBuilder(eventType AuditEventType, reason AuditEventReason) *AuditEventBuilder {
	return &AuditEventBuilder{
		event: &AuditEvent{
			EventID:   generateEventID(),
			Timestamp: time.Now(),
			EventType: eventType,
			Reason:    reason,
			Success:   true, // Default to success, can be overridden
			Metadata:  make(map[string]interface{}),
		},
	}
}

// WithCurve sets the curve name for the event
func (b *AuditEventBuilder) WithCurve(curveName string) *AuditEventBuilder {
	b.event.CurveName = curveName
	return b
}

// WithBound sets the parameter bound n
func (b *AuditEventBuilder) WithBound(n int) *AuditEventBuilder {
	b.event.ParamsBound = n
	return b
}

// WithPolynomialLength sets the length of the polynomial involved
func (b *AuditEventBuilder) WithPolynomialLength(length int) *AuditEventBuilder {
	b.event.PolyLength = length
	return b
}

// WithError marks the event as failed and sets error information
func (b *AuditEventBuilder) WithError(err error) *AuditEventBuilder {
	b.event.Success = false
	if err != nil {
		b.event.Error = err.Error()
	}
	return b
}

// WithMetadata adds metadata to the event
func (b *AuditEventBuilder) WithMetadata(key string, value interface{}) *AuditEventBuilder {
	b.event.Metadata[key] = value
	return b
}

// Build returns the constructed audit event
func (b *AuditEventBuilder) Build() *AuditEvent {
	return b.event
}

// BuildSetup returns a SetupEvent
func (b *AuditEventBuilder) BuildSetup(deterministic bool, duration time.Duration, digest string) *SetupEvent {
	return &SetupEvent{
		AuditEvent:    *b.event,
		Deterministic: deterministic,
		Duration:      duration,
		ParamsDigest:  digest,
	}
}

// BuildVerification returns a VerificationEvent
func (b *AuditEventBuilder) BuildVerification(accepted bool, point string) *VerificationEvent {
	return &VerificationEvent{
		AuditEvent: *b.event,
		Accepted:   accepted,
		Point:      point,
	}
}

// BuildValidationFailure returns a ValidationFailureEvent
func (b *AuditEventBuilder) BuildValidationFailure(validationType, failureReason string, inputValues map[string]interface{}) *ValidationFailureEvent {
	return &ValidationFailureEvent{
		AuditEvent:     *b.event,
		ValidationType: validationType,
		FailureReason:  failureReason,
		InputValues:    inputValues,
	}
}

// generateEventID generates a unique event ID
// Uses a combination of timestamp and random bytes to ensure uniqueness
func generateEventID() string {
	timestamp := time.Now().Format("20060102150405.000000")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s.%d", timestamp, time.Now().UnixNano()%10000)
	}

	return fmt.Sprintf("%s.%x", timestamp, randomBytes)
}
