// Package host provides the in-memory host compilation context a pass registers its output on.
package host

import (
	"slices"
	"sync"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
)

var (
	_ ports.HostContext = (*Context)(nil)
	_ ports.HostOutput  = (*Context)(nil)
)

// Context implements ports.HostContext and exposes what was registered through ports.HostOutput.
type Context struct {
	mu          sync.Mutex
	assembly    string
	reference   domain.Reference
	references  []domain.Reference
	units       []domain.GeneratedUnit
	resources   []domain.Resource
	diagnostics []domain.Diagnostic
}

// New creates a host context named assembly. reference is the host's own output; references are
// the packages the host compiles against.
func New(assembly string, reference domain.Reference, references ...domain.Reference) *Context {
	return &Context{
		assembly:   assembly,
		reference:  reference,
		references: references,
	}
}

// AssemblyName returns the host build name.
func (c *Context) AssemblyName() string {
	return c.assembly
}

// Reference returns the host's own output reference.
func (c *Context) Reference() domain.Reference {
	return c.reference
}

// References returns a copy of the host references.
func (c *Context) References() []domain.Reference {
	return slices.Clone(c.references)
}

// AddGeneratedUnits appends units to the host compilation.
func (c *Context) AddGeneratedUnits(units ...domain.GeneratedUnit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.units = append(c.units, units...)
}

// AddResource embeds res in the host output.
func (c *Context) AddResource(res domain.Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, res)
}

// AddDiagnostics records diags on the host.
func (c *Context) AddDiagnostics(diags ...domain.Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, diags...)
}

// GeneratedUnits returns the units added so far.
func (c *Context) GeneratedUnits() []domain.GeneratedUnit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.units)
}

// Resources returns the resources added so far.
func (c *Context) Resources() []domain.Resource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.resources)
}

// Diagnostics returns the diagnostics recorded so far.
func (c *Context) Diagnostics() []domain.Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.diagnostics)
}

// HasErrors reports whether any recorded diagnostic is an error.
func (c *Context) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.ContainsFunc(c.diagnostics, domain.Diagnostic.IsError)
}
