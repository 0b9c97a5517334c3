package progrock_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/stencil/internal/adapters/telemetry/progrock"
)

func drain(t *testing.T, s *progrock.Stream) []*vprogrock.Vertex {
	t.Helper()
	var vertices []*vprogrock.Vertex
	for {
		update, err := s.Read()
		if errors.Is(err, io.EOF) {
			return vertices
		}
		require.NoError(t, err)
		vertices = append(vertices, update.Vertexes...)
	}
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	require.NoError(t, recorder.Close())
}

func TestRecorder_Subscribe(t *testing.T) {
	recorder := progrock.New()
	stream := recorder.Subscribe()

	_, cached := recorder.Record(context.Background(), "views/index.tmpl")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(context.Background(), "views/bad.tmpl")
	failed.Complete(errors.New("unterminated template"))

	require.NoError(t, recorder.Close())

	vertices := drain(t, stream)
	require.NotEmpty(t, vertices)

	last := make(map[string]*vprogrock.Vertex)
	for _, v := range vertices {
		last[v.Name] = v
	}
	require.Contains(t, last, "views/index.tmpl")
	require.Contains(t, last, "views/bad.tmpl")
	assert.True(t, last["views/index.tmpl"].Cached)
	assert.NotNil(t, last["views/bad.tmpl"].Completed)
	require.NotNil(t, last["views/bad.tmpl"].Error)
	assert.Contains(t, *last["views/bad.tmpl"].Error, "unterminated template")
}

func TestStream_Close(t *testing.T) {
	recorder := progrock.New()
	stream := recorder.Subscribe()

	_, v := recorder.Record(context.Background(), "a.tmpl")
	require.NoError(t, stream.Close())

	// Updates after unsubscribing are not delivered.
	v.Complete(nil)
	vertices := drain(t, stream)
	for _, vertex := range vertices {
		assert.Nil(t, vertex.Completed)
	}

	require.NoError(t, recorder.Close())
}

func TestBroadcast_SubscribeAfterClose(t *testing.T) {
	recorder := progrock.New()
	require.NoError(t, recorder.Close())

	_, err := recorder.Subscribe().Read()
	assert.ErrorIs(t, err, io.EOF)
}
