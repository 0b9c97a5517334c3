package hcltmpl

import (
	"go/ast"
	"go/parser"
	"go/token"

	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SyntaxTreeBuilder = (*SyntaxBuilder)(nil)

// SyntaxBuilder parses generated Go code.
type SyntaxBuilder struct{}

// NewSyntaxBuilder creates a new SyntaxBuilder.
func NewSyntaxBuilder() *SyntaxBuilder {
	return &SyntaxBuilder{}
}

// Build parses code, reporting positions against path.
func (b *SyntaxBuilder) Build(code []byte, path string) (*ast.File, error) {
	tree, err := parser.ParseFile(token.NewFileSet(), path, code, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse generated code"), "path", path)
	}
	return tree, nil
}
