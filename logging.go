package kzg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAuditHandler writes every audit event as a structured log line.
// Failures are logged at warn level, everything else at debug.
type ZapAuditHandler struct {
	logger *zap.Logger
}

// NewZapAuditHandler creates a handler logging to logger (a no-op logger when nil)
func NewZapAuditHandler(logger *zap.Logger) *ZapAuditHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAuditHandler{logger: logger.Named("kzg")}
}

func (h *ZapAuditHandler) OnSetup(event *SetupEvent) {
	h.log(&event.AuditEvent, "public parameters generated",
		zap.Bool("deterministic", event.Deterministic),
		zap.Duration("duration", event.Duration),
		zap.String("params_digest", event.ParamsDigest),
	)
}

func (h *ZapAuditHandler) OnCommitment(event *AuditEvent) {
	h.log(event, "polynomial committed")
}

func (h *ZapAuditHandler) OnWitnessCreation(event *AuditEvent) {
	h.log(event, "witness created")
}

func (h *ZapAuditHandler) OnVerification(event *VerificationEvent) {
	h.log(&event.AuditEvent, "opening verified",
		zap.Bool("accepted", event.Accepted),
		zap.String("point", event.Point),
	)
}

func (h *ZapAuditHandler) OnValidationFailure(event *ValidationFailureEvent) {
	h.log(&event.AuditEvent, "validation failed",
		zap.String("validation_type", event.ValidationType),
		zap.String("failure_reason", event.FailureReason),
		zap.Any("input_values", event.InputValues),
	)
}

func (h *ZapAuditHandler) OnError(event *AuditEvent) {
	h.log(event, "operation failed")
}

func (h *ZapAuditHandler) log(event *AuditEvent, msg string, extra ...zap.Field) {
	level := zapcore.DebugLevel
	if !event.Success {
		level = zapcore.WarnLevel
	}

	ce := h.logger.Check(level, msg)
	if ce == nil {
		return
	}

	fields := []zap.Field{
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.EventType)),
		zap.String("reason", string(event.Reason)),
		zap.String("curve", event.CurveName),
		zap.Bool("success", event.Success),
	}
	if event.ParamsBound != 0 {
		fields = append(fields, zap.Int("params_bound", event.ParamsBound))
	}
	if event.PolyLength != 0 {
		fields = append(fields, zap.Int("poly_length", event.PolyLength))
	}
	if event.Error != "" {
		fields = append(fields, zap.String("error", event.Error))
	}
	if len(event.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", event.Metadata))
	}
	ce.Write(append(fields, extra...)...)
}
