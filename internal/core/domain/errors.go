package domain

import "go.trai.ch/zerr"

var (
	// ErrPrecompilationFailed is returned when a pass produced diagnostics and no artifact.
	ErrPrecompilationFailed = zerr.New("precompilation failed")

	// ErrTemplateFailed marks the telemetry vertex of a template that produced diagnostics.
	ErrTemplateFailed = zerr.New("template has errors")
	// ErrCompilationPanicked is reported when compiling a single template panicked.
	ErrCompilationPanicked = zerr.New("template compilation panicked")
	// ErrUnsupportedHashVersion is returned when a hash algorithm version is unknown.
	ErrUnsupportedHashVersion = zerr.New("unsupported hash algorithm version")

	// ErrManifestNotFound is returned when no artifact manifest has been stored yet.
	ErrManifestNotFound = zerr.New("artifact manifest not found")

	// ErrTemplateNotFound is returned when a template requested by path does not exist.
	ErrTemplateNotFound = zerr.New("template not found")

	// ErrStaleTemplates is returned by verification when any record no longer matches its source.
	ErrStaleTemplates = zerr.New("precompiled templates are stale")
)
