package telemetry

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
)

// Tee fans every vertex out to several telemetry backends.
type Tee struct {
	backends []ports.Telemetry
}

// NewTee combines backends. The context returned by Record is the one of the last backend.
func NewTee(backends ...ports.Telemetry) *Tee {
	return &Tee{backends: backends}
}

// Record starts a vertex on every backend.
func (t *Tee) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertices := make(teeVertex, 0, len(t.backends))
	for _, b := range t.backends {
		var v ports.Vertex
		ctx, v = b.Record(ctx, name)
		vertices = append(vertices, v)
	}
	return ctx, vertices
}

// Close closes every backend and joins their errors.
func (t *Tee) Close() error {
	var errs []error
	for _, b := range t.backends {
		errs = append(errs, b.Close())
	}
	return errors.Join(errs...)
}

type teeVertex []ports.Vertex

func (v teeVertex) Stdout() io.Writer {
	writers := make([]io.Writer, 0, len(v))
	for _, vertex := range v {
		writers = append(writers, vertex.Stdout())
	}
	return io.MultiWriter(writers...)
}

func (v teeVertex) Log(level domain.LogLevel, msg string) {
	for _, vertex := range v {
		vertex.Log(level, msg)
	}
}

func (v teeVertex) Complete(err error) {
	for _, vertex := range v {
		vertex.Complete(err)
	}
}

func (v teeVertex) Cached() {
	for _, vertex := range v {
		vertex.Cached()
	}
}
