package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for accordion hosts.
const defaultTracerName = "accordion"

// Tracer creates spans for live events.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer using the global OpenTelemetry provider, or
// tp when non-nil.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		return &Tracer{tracer: otel.Tracer(defaultTracerName)}
	}
	return &Tracer{tracer: tp.Tracer(defaultTracerName)}
}

// StartEvent starts a span named "accordion.<kind>" for one live event.
// Finish it with EndEvent.
func (t *Tracer) StartEvent(ctx context.Context, kind, session string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("accordion.event", kind),
		attribute.String("accordion.session_id", session),
	)
	return t.tracer.Start(ctx, "accordion."+kind,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrs...),
	)
}

// EndEvent records err, if any, and ends span.
func EndEvent(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
