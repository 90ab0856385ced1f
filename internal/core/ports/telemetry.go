package ports

import (
	"context"
	"io"

	"go.trai.ch/recomp/internal/core/domain"
)

// Telemetry records the steps of a run as vertices.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex named after the step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded step.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	Log(level domain.LogLevel, msg string)
	// Complete finishes the vertex, failed when err is non-nil.
	Complete(err error)
	// Cached finishes the vertex as satisfied without doing work.
	Cached()
}
