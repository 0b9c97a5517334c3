package ports

import (
	"context"

	"go.trai.ch/stencil/internal/core/domain"
)

// Compiler compiles generated units into a single binary artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile compiles every unit of req as one package.
	// Compilation failures are reported through CompileResult; the error return is reserved for
	// faults of the compiler itself.
	Compile(ctx context.Context, req domain.CompileRequest) (*domain.CompileResult, error)

	// SupportsSymbols reports whether the current platform can produce debug symbols.
	SupportsSymbols() bool
}
