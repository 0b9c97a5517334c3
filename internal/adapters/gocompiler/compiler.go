// Package gocompiler compiles generated template units as one Go package.
package gocompiler

import (
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"runtime"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler type-checks generated units and packages them into an archive.
type Compiler struct {
	goos string
}

// New creates a Compiler for the running platform.
func New() *Compiler {
	return NewForPlatform(runtime.GOOS)
}

// NewForPlatform creates a Compiler that reports symbol support for goos.
func NewForPlatform(goos string) *Compiler {
	return &Compiler{goos: goos}
}

// SupportsSymbols reports whether debug symbols can be produced. Sandboxed targets cannot host
// them.
func (c *Compiler) SupportsSymbols() bool {
	switch c.goos {
	case "js", "wasip1":
		return false
	default:
		return true
	}
}

// Compile parses and type-checks every unit of req as one package. On success the binary stream
// holds a gzip compressed tar archive of the formatted sources and, when requested, the debug
// stream holds the package symbol table.
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest) (*domain.CompileResult, error) {
	fset := token.NewFileSet()
	files := make([]*ast.File, 0, len(req.Units))
	var diags []domain.Diagnostic

	for _, unit := range req.Units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		file, err := parser.ParseFile(fset, unit.Path, unit.Source, parser.ParseComments)
		if err != nil {
			diags = append(diags, parseDiagnostics(unit.Path, err)...)
			continue
		}
		files = append(files, file)
	}
	if len(diags) > 0 {
		return &domain.CompileResult{Diagnostics: diags}, nil
	}

	conf := types.Config{
		Importer: newReferenceImporter(req.References),
		Error: func(err error) {
			var typeErr types.Error
			if errors.As(err, &typeErr) {
				diags = append(diags, positionDiagnostic(typeErr.Fset.Position(typeErr.Pos), typeErr.Msg))
				return
			}
			diags = append(diags, domain.Diagnostic{Message: err.Error(), Severity: domain.SeverityError})
		},
	}

	pkg, _ := conf.Check(req.Name, fset, files, nil)
	if len(diags) > 0 {
		return &domain.CompileResult{Diagnostics: diags}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	binary, err := writeArchive(fset, files)
	if err != nil {
		return nil, zerr.With(err, "assembly", req.Name)
	}

	result := &domain.CompileResult{
		Success: true,
		Binary:  binary,
	}
	if req.EmitSymbols {
		debug, err := writeSymbols(fset, pkg)
		if err != nil {
			return nil, zerr.With(err, "assembly", req.Name)
		}
		result.Debug = debug
	}
	return result, nil
}

func parseDiagnostics(path string, err error) []domain.Diagnostic {
	var list scanner.ErrorList
	if errors.As(err, &list) {
		diags := make([]domain.Diagnostic, 0, len(list))
		for _, e := range list {
			diags = append(diags, positionDiagnostic(e.Pos, e.Msg))
		}
		return diags
	}
	return []domain.Diagnostic{{
		SourcePath: path,
		Message:    err.Error(),
		Severity:   domain.SeverityError,
		Location:   domain.Location{Path: path},
	}}
}

func positionDiagnostic(pos token.Position, msg string) domain.Diagnostic {
	return domain.Diagnostic{
		SourcePath: pos.Filename,
		Message:    msg,
		Severity:   domain.SeverityError,
		Location: domain.Location{
			Path:   pos.Filename,
			Line:   pos.Line,
			Column: pos.Column,
		},
	}
}
