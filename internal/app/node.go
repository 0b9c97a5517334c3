package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stencil/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/gocompiler"         //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/hcltmpl"            //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cache.NodeID,
			hcltmpl.SyntaxBuilderNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			gocompiler.NodeID,
			cas.NodeID,
			telemetry.NodeID,
			progrock.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	c, err := graft.Dep[ports.PrecompilationCache](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.SyntaxTreeBuilder](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.ContentHasher](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*fs.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*progrock.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(Dependencies{
		ConfigLoader: loader,
		Logger:       log,
		Cache:        c,
		Builder:      builder,
		Hasher:       hasher,
		Compiler:     compiler,
		Store:        store,
		Verifier:     verifier,
		Telemetry:    tel,
		Recorder:     recorder,
		Watcher:      w,
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
