// Package telemetry provides the progrock implementation of the telemetry
// adapter, plus a no-op used when no recorder is attached.
package telemetry

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/wesleykendall/footing/internal/core/ports"
)

// Recorder implements ports.Telemetry using a progrock recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder over the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	return ctx, &vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// vertex wraps *progrock.VertexRecorder as a ports.Vertex.
type vertex struct {
	vertex *progrock.VertexRecorder
}

func (v *vertex) Log(msg string) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
}

func (v *vertex) Cached() {
	v.vertex.Cached()
}

func (v *vertex) Complete(err error) {
	v.vertex.Done(err)
}
