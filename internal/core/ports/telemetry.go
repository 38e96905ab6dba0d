package ports

import (
	"context"
	"io"

	"go.trai.ch/mart/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work for progress reporting.
type Telemetry interface {
	// Record starts a new vertex named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's output stream.
	Stdout() io.Writer

	// Log records a message associated with the vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, successfully if err is nil.
	Complete(err error)

	// Cached marks the vertex as satisfied without doing any work and finishes it.
	// A vertex is finished either by Complete or by Cached, never both.
	Cached()
}
