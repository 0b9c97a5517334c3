package domain

import "io"

// Reference is a compile-time dependency handed to the compiler.
type Reference struct {
	Name       string `json:"name"`
	ImportPath string `json:"import_path"`
}

// Resource is an opaque named blob embedded in the host build output.
type Resource struct {
	Name   string
	Public bool
	// Open returns the resource content. The stream is owned by the consumer and is never closed
	// by the component that registered it.
	Open func() io.Reader
}

// CompileRequest is a single invocation of the general-purpose compiler.
type CompileRequest struct {
	// Name is the artifact name, used as the archive root.
	Name string
	// PackageName is the Go package every unit must declare.
	PackageName string
	Units       []GeneratedUnit
	References  []Reference
	EmitSymbols bool
}

// CompileResult is the outcome of a compile request.
type CompileResult struct {
	Success     bool
	Binary      io.ReadSeeker
	Debug       io.ReadSeeker
	Diagnostics []Diagnostic
}
