package telemetry

import (
	"context"

	"go.trai.ch/ecswatch/internal/core/ports"
)

var _ ports.Tracer = (*Noop)(nil)

// Noop is a Tracer that records nothing.
type Noop struct{}

// NewNoop creates a no-op tracer.
func NewNoop() *Noop {
	return &Noop{}
}

// Start returns the context unchanged and a span that does nothing.
func (n *Noop) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
