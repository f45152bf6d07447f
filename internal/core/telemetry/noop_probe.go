package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"todoapi/internal/core/port"
)

var noopTracer = noop.NewTracerProvider().Tracer("")

// NoOpProbe is a probe that does nothing - useful for testing or when telemetry is disabled
type NoOpProbe struct{}

func NewNoOpProbe() port.Telemetry {
	return &NoOpProbe{}
}

func (p *NoOpProbe) StartServiceSpan(ctx context.Context, service string, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return noopTracer.Start(ctx, operation)
}

func (p *NoOpProbe) RecordServiceOperation(ctx context.Context, service string, operation string, duration time.Duration, err error) {
}

func (p *NoOpProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return noopTracer.Start(ctx, operation)
}

func (p *NoOpProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
}

func (p *NoOpProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string) {
}

// Operation measures one repository or service call.
type Operation struct {
	probe     port.Telemetry
	ctx       context.Context
	span      trace.Span
	startTime time.Time
	operation string
	entity    string
	service   bool
}

// StartRepositoryOperation opens a repository span and starts the clock.
func StartRepositoryOperation(ctx context.Context, probe port.Telemetry, operation, entity string, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	ctx, span := probe.StartRepositorySpan(ctx, operation, entity, attrs...)

	return ctx, &Operation{probe: probe, ctx: ctx, span: span, startTime: time.Now(), operation: operation, entity: entity}
}

// StartServiceOperation opens a service span and starts the clock.
func StartServiceOperation(ctx context.Context, probe port.Telemetry, service, operation string, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	ctx, span := probe.StartServiceSpan(ctx, service, operation, attrs...)

	return ctx, &Operation{probe: probe, ctx: ctx, span: span, startTime: time.Now(), operation: operation, entity: service, service: true}
}

// End records the outcome and closes the span.
func (op *Operation) End(err error) {
	duration := time.Since(op.startTime)

	if op.service {
		op.probe.RecordServiceOperation(op.ctx, op.entity, op.operation, duration, err)
	} else {
		op.probe.RecordRepositoryOperation(op.ctx, op.operation, op.entity, duration, err)
	}

	op.span.End()
}
