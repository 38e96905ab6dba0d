// Package telemetry implements the Telemetry port with OpenTelemetry spans.
package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
)

// InstrumentationName is the tracer name used for every span.
const InstrumentationName = "go.trai.ch/mart"

// CachedAttribute marks spans whose work was already done.
const CachedAttribute = attribute.Key("mart.cached")

// Tracer implements ports.Telemetry with one span per recorded vertex.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewTracer creates a Tracer backed by provider.
func NewTracer(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
	}
}

// NewProvider creates a tracer provider that reports finished spans to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
}

// Record starts a span named name as a child of any span in ctx.
func (t *Tracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Close flushes and shuts down the provider.
func (t *Tracer) Close() error {
	return t.provider.Shutdown(context.Background())
}

// Span implements ports.Vertex on top of a trace.Span.
type Span struct {
	span trace.Span
}

// Stdout returns a writer that records each write as a span event.
func (s *Span) Stdout() io.Writer {
	return spanWriter{span: s.span}
}

// Log records msg as a span event.
func (s *Span) Log(level domain.LogLevel, msg string) {
	s.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
}

// Complete ends the span, recording err if present.
func (s *Span) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

// Cached flags the span as satisfied from the inventory and ends it.
func (s *Span) Cached() {
	s.span.SetAttributes(CachedAttribute.Bool(true))
	s.span.End()
}

type spanWriter struct {
	span trace.Span
}

func (w spanWriter) Write(p []byte) (int, error) {
	w.span.AddEvent("output", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
