package port

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry lets services and repositories emit spans and metrics without
// knowing the backend.
type Telemetry interface {
	StartServiceSpan(ctx context.Context, service string, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span)
	RecordServiceOperation(ctx context.Context, service string, operation string, duration time.Duration, err error)

	StartRepositorySpan(ctx context.Context, operation string, entity string, attrs ...attribute.KeyValue) (context.Context, trace.Span)
	RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error)

	RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string)
}
