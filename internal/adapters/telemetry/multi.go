package telemetry

import (
	"context"
	"errors"

	"go.trai.ch/stencil/internal/core/ports"
)

var _ ports.Telemetry = (*Multi)(nil)

// Multi fans every record out to several telemetry backends.
type Multi struct {
	backends []ports.Telemetry
}

// NewMulti creates a Multi over backends.
func NewMulti(backends ...ports.Telemetry) *Multi {
	return &Multi{backends: backends}
}

// Record starts a vertex on every backend. Each backend sees the context returned by the previous
// one, so span parents propagate.
func (m *Multi) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertices := make(multiVertex, 0, len(m.backends))
	for _, b := range m.backends {
		var v ports.Vertex
		ctx, v = b.Record(ctx, name)
		vertices = append(vertices, v)
	}
	return ctx, vertices
}

// Close closes every backend and joins their errors.
func (m *Multi) Close() error {
	var errs []error
	for _, b := range m.backends {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type multiVertex []ports.Vertex

func (m multiVertex) Cached() {
	for _, v := range m {
		v.Cached()
	}
}

func (m multiVertex) Complete(err error) {
	for _, v := range m {
		v.Complete(err)
	}
}
