// Package telemetry adapts the Tracer port onto OpenTelemetry. Each poll
// cycle becomes a span; a span processor or exporter can be attached by the
// embedding environment without touching the core.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/ecswatch/internal/core/ports"
)

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer implements ports.Tracer using the OpenTelemetry SDK.
type OTelTracer struct {
	tracer trace.Tracer
	tp     *sdktrace.TracerProvider
}

// NewOTelTracer creates a tracer provider, registers it globally, and
// returns a Tracer scoped to name. Without an exporter attached the spans
// are dropped at negligible cost.
func NewOTelTracer(name string) *OTelTracer {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	return &OTelTracer{
		tracer: tp.Tracer(name),
		tp:     tp,
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

// Shutdown flushes and stops the tracer provider.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.tp.Shutdown(ctx)
}

// otelSpan adapts trace.Span to ports.Span.
type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) End() {
	s.span.End()
}

func (s *otelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

func (s *otelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
