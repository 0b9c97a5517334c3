package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stencil/internal/core/ports"
)

// NodeID is the unique identifier for the precompilation cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.PrecompilationCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PrecompilationCache, error) {
			return NewMemory(), nil
		},
	})
}
