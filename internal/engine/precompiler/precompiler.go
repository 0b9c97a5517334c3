// Package precompiler implements the template precompilation pass: discovery, cached
// bounded-parallel compilation and all-or-nothing artifact assembly.
package precompiler

import (
	"context"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline groups the adapters a pass runs on.
type Pipeline struct {
	Provider  ports.FileProvider
	Walker    ports.TemplateWalker
	Hierarchy ports.ImportsHierarchy
	Generator ports.CodeGenerator
	Builder   ports.SyntaxTreeBuilder
	Hasher    ports.ContentHasher
	Compiler  ports.Compiler
}

// Precompiler runs precompilation passes against one template tree.
// The cache outlives a pass; entries stay valid until a trigger fires for their file or for an
// imports file above it.
type Precompiler struct {
	pipeline  Pipeline
	cache     ports.PrecompilationCache
	telemetry ports.Telemetry
	settings  domain.Settings
}

// New creates a Precompiler.
func New(
	pipeline Pipeline,
	cache ports.PrecompilationCache,
	telemetry ports.Telemetry,
	settings domain.Settings,
) *Precompiler {
	return &Precompiler{
		pipeline:  pipeline,
		cache:     cache,
		telemetry: telemetry,
		settings:  settings,
	}
}

// CompileTemplates runs one pass and registers its output on host.
// It returns nil when no template was found or when the pass failed; in the latter case every
// diagnostic has been recorded on host.
func (p *Precompiler) CompileTemplates(ctx context.Context, host ports.HostContext) (*domain.ArtifactManifest, error) {
	manifest, _, err := p.Run(ctx, host)
	return manifest, err
}

// Run is CompileTemplates that also returns the per template outcome of the pass.
// The result is nil when no template was found.
func (p *Precompiler) Run(
	ctx context.Context,
	host ports.HostContext,
) (*domain.ArtifactManifest, *domain.PassResult, error) {
	files, err := p.Discover()
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, nil
	}

	result, err := p.CompileAll(ctx, files)
	if err != nil {
		return nil, result, err
	}

	if result.Failed() {
		host.AddDiagnostics(result.Diagnostics()...)
		return nil, result, nil
	}

	manifest, err := p.Assemble(ctx, host, result.Units(), result.Records())
	if err != nil {
		return nil, result, err
	}
	return manifest, result, nil
}

// Discover walks the template tree from the provider root.
func (p *Precompiler) Discover() ([]domain.SourceFile, error) {
	files, err := p.pipeline.Walker.Walk("")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to discover templates")
	}
	return files, nil
}
