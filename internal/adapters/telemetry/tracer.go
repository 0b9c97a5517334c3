package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/stencil/internal/core/ports"
)

// InstrumentationName identifies the spans emitted by stencil.
const InstrumentationName = "go.trai.ch/stencil"

const (
	attrTemplate = "stencil.template"
	attrCached   = "stencil.cached"
)

var _ ports.Telemetry = (*Tracer)(nil)

// Tracer implements ports.Telemetry with OpenTelemetry spans.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer emitting spans through tracer.
func NewTracer(tracer trace.Tracer) *Tracer {
	return &Tracer{tracer: tracer}
}

// Record starts a span named name.
func (t *Tracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attribute.String(attrTemplate, name)))
	return ctx, &spanVertex{span: span}
}

// Close does nothing; span export is owned by the tracer provider.
func (t *Tracer) Close() error {
	return nil
}

type spanVertex struct {
	span trace.Span
}

func (v *spanVertex) Cached() {
	v.span.SetAttributes(attribute.Bool(attrCached, true))
}

func (v *spanVertex) Complete(err error) {
	if err != nil {
		v.span.RecordError(err)
		v.span.SetStatus(codes.Error, err.Error())
	} else {
		v.span.SetStatus(codes.Ok, "")
	}
	v.span.End()
}
