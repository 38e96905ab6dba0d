package telemetry

import (
	"context"
	"io"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that discards everything.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noOpVertex{}
}

// Close does nothing.
func (NoOp) Close() error {
	return nil
}

type noOpVertex struct{}

func (noOpVertex) Stdout() io.Writer           { return io.Discard }
func (noOpVertex) Log(domain.LogLevel, string) {}
func (noOpVertex) Complete(error)              {}
func (noOpVertex) Cached()                     {}
