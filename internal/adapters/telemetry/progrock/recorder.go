// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/stencil/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Updates go to a tape and to every subscribed stream.
type Recorder struct {
	broadcast *Broadcast
	rec       *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	b := NewBroadcast(w)
	return &Recorder{
		broadcast: b,
		rec:       progrock.NewRecorder(b),
	}
}

// Record starts recording a new vertex. Vertices are identified by name, so recording the same
// template again in a later pass updates its vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Subscribe returns a stream receiving every update recorded from now on.
func (r *Recorder) Subscribe() *Stream {
	return r.broadcast.Subscribe()
}

// Close flushes and closes the recording session and every subscribed stream.
func (r *Recorder) Close() error {
	return r.broadcast.Close()
}
