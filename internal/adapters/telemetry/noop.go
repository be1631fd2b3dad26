package telemetry

import (
	"context"

	"github.com/wesleykendall/footing/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a no-op telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Log(string)     {}
func (noopVertex) Cached()        {}
func (noopVertex) Complete(error) {}
