package ports

import (
	"go/ast"
	"io"

	"go.trai.ch/stencil/internal/core/domain"
)

// Generation is the result of generating code for one template.
type Generation struct {
	// Success reports whether the template parsed cleanly.
	Success bool
	// Code is the generated Go source. Only set on success.
	Code []byte
	// TypeName is the type the generator intended to declare. Empty for templates that declare
	// nothing, such as imports files.
	TypeName string
	// PackageName is the Go package declared by Code.
	PackageName string
	// Errors holds the template errors on failure.
	Errors []domain.Diagnostic
}

// CodeGenerator turns a template into Go source.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type CodeGenerator interface {
	// Generate reads the template content from r and generates code for relativePath.
	// Template errors are reported through Generation.Errors; the error return is reserved for
	// I/O faults.
	Generate(relativePath string, r io.Reader) (*Generation, error)

	// MainTypeName returns the fully qualified name of the primary type declared in tree,
	// or an empty string if there is none.
	MainTypeName(gen *Generation, tree *ast.File) string
}

// SyntaxTreeBuilder parses generated code into a syntax tree.
type SyntaxTreeBuilder interface {
	// Build parses code, reporting positions against path.
	Build(code []byte, path string) (*ast.File, error)
}
