package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a pass.
type Telemetry interface {
	// Record starts a vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex represents one unit of work, typically one template.
type Vertex interface {
	// Cached marks the vertex as served from cache.
	Cached()
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}
