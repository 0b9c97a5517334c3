package ports

import "go.trai.ch/stencil/internal/core/domain"

// HostContext is the build that requested precompilation.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostContext interface {
	// AssemblyName returns the host build name.
	AssemblyName() string
	// Reference returns a compile-time reference to the host's own output.
	Reference() domain.Reference
	// References returns the references the host itself compiles against.
	References() []domain.Reference
	// AddGeneratedUnits adds code units to the host compilation.
	AddGeneratedUnits(units ...domain.GeneratedUnit)
	// AddResource embeds an opaque resource in the host output.
	AddResource(res domain.Resource)
	// AddDiagnostics records diagnostics on the host.
	AddDiagnostics(diags ...domain.Diagnostic)
}
