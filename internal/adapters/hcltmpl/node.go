package hcltmpl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stencil/internal/core/ports"
)

// SyntaxBuilderNodeID is the unique identifier for the syntax tree builder Graft node.
const SyntaxBuilderNodeID graft.ID = "adapter.hcltmpl.syntax"

func init() {
	graft.Register(graft.Node[ports.SyntaxTreeBuilder]{
		ID:        SyntaxBuilderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SyntaxTreeBuilder, error) {
			return NewSyntaxBuilder(), nil
		},
	})
}
