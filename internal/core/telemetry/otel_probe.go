package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

const tracerName = "todoapi"

// MetricsRecorder receives per-operation counters.
type MetricsRecorder interface {
	RecordServiceOperation(ctx context.Context, service, operation, outcome string, duration time.Duration)
	RecordDatabaseOperation(ctx context.Context, operation, table string, duration time.Duration, err error)
}

// OTELProbe implements Telemetry using OpenTelemetry
type OTELProbe struct {
	logger  *otelzap.Logger
	metrics MetricsRecorder
}

func NewOTELProbe(logger *otelzap.Logger, metrics MetricsRecorder) port.Telemetry {
	return &OTELProbe{
		logger:  logger,
		metrics: metrics,
	}
}

func (p *OTELProbe) StartServiceSpan(ctx context.Context, service string, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	spanName := fmt.Sprintf("service.%s.%s", service, operation)

	standardAttrs := append([]attribute.KeyValue{
		attribute.String("service.name", service),
		attribute.String("service.operation", operation),
		attribute.String("component", "service"),
	}, attrs...)

	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(standardAttrs...))
}

func (p *OTELProbe) RecordServiceOperation(ctx context.Context, service string, operation string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)
	outcome := Outcome(err)

	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int64("duration_ns", duration.Nanoseconds()),
	)

	if p.metrics != nil {
		p.metrics.RecordServiceOperation(ctx, service, operation, outcome, duration)
	}

	// Client-side outcomes are expected traffic and are not span errors.
	if outcome != "error" {
		span.SetStatus(codes.Ok, "")
		return
	}

	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)

	p.logger.Ctx(ctx).Error("Service operation failed",
		zap.String("service", service),
		zap.String("operation", operation),
		zap.Duration("duration", duration),
		zap.Error(err))
}

func (p *OTELProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	spanName := fmt.Sprintf("repository.%s.%s", entity, operation)

	standardAttrs := append([]attribute.KeyValue{
		attribute.String("repository.entity", entity),
		attribute.String("repository.operation", operation),
		attribute.String("component", "repository"),
	}, attrs...)

	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(standardAttrs...))
}

func (p *OTELProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)

	span.SetAttributes(
		attribute.Int64("duration_ns", duration.Nanoseconds()),
		attribute.Bool("has_error", err != nil),
	)

	if p.metrics != nil {
		p.metrics.RecordDatabaseOperation(ctx, operation, entity, duration, err)
	}

	if err == nil || errors.Is(err, domain.ErrNotFound) {
		span.SetStatus(codes.Ok, "")
		return
	}

	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)

	p.logger.Ctx(ctx).Error("Repository operation failed",
		zap.String("operation", operation),
		zap.String("entity", entity),
		zap.Duration("duration", duration),
		zap.Error(err))
}

func (p *OTELProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string) {
	trace.SpanFromContext(ctx).AddEvent(event, trace.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("entity_id", entityID),
	))

	p.logger.Ctx(ctx).Info("Business event recorded",
		zap.String("event", event),
		zap.String("entity", entity),
		zap.String("entity_id", entityID))
}

// Outcome classifies an operation result for metrics labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case domain.IsValidationError(err):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNoRowsAffected):
		return "no_rows"
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return "unauthenticated"
	default:
		return "error"
	}
}
