package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

var _ sdktrace.SpanExporter = (*JSONExporter)(nil)

// SpanRecord is one line written by JSONExporter.
type SpanRecord struct {
	Name       string            `json:"name"`
	TraceID    string            `json:"trace_id"`
	SpanID     string            `json:"span_id"`
	ParentID   string            `json:"parent_id,omitempty"`
	Start      time.Time         `json:"start"`
	End        time.Time         `json:"end"`
	Status     string            `json:"status"`
	Error      string            `json:"error,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// JSONExporter writes finished spans as JSON lines.
type JSONExporter struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closer io.Closer
}

// NewJSONExporter creates an exporter writing to w. If w is an io.Closer it is closed on Shutdown.
func NewJSONExporter(w io.Writer) *JSONExporter {
	e := &JSONExporter{enc: json.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		e.closer = c
	}
	return e
}

// ExportSpans writes spans in the order given.
func (e *JSONExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, s := range spans {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.enc.Encode(toRecord(s)); err != nil {
			return zerr.Wrap(err, "failed to export span")
		}
	}
	return nil
}

// Shutdown closes the underlying writer.
func (e *JSONExporter) Shutdown(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closer == nil {
		return nil
	}
	err := e.closer.Close()
	e.closer = nil
	return err
}

func toRecord(s sdktrace.ReadOnlySpan) SpanRecord {
	rec := SpanRecord{
		Name:    s.Name(),
		TraceID: s.SpanContext().TraceID().String(),
		SpanID:  s.SpanContext().SpanID().String(),
		Start:   s.StartTime(),
		End:     s.EndTime(),
		Status:  s.Status().Code.String(),
		Error:   s.Status().Description,
	}
	if parent := s.Parent(); parent.IsValid() {
		rec.ParentID = parent.SpanID().String()
	}
	if attrs := s.Attributes(); len(attrs) > 0 {
		rec.Attributes = make(map[string]string, len(attrs))
		for _, kv := range attrs {
			rec.Attributes[string(kv.Key)] = kv.Value.Emit()
		}
	}
	return rec
}
