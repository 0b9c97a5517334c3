package hcltmpl

import (
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

// RenderError carries the diagnostics of a failed render.
type RenderError struct {
	Diagnostics []domain.Diagnostic
}

func (e *RenderError) Error() string {
	msgs := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return strings.Join(msgs, "\n")
}

// Renderer evaluates templates directly from the content tree.
type Renderer struct {
	provider ports.FileProvider
	imports  *Imports
}

// NewRenderer creates a Renderer reading templates from provider.
func NewRenderer(provider ports.FileProvider, imports *Imports) *Renderer {
	return &Renderer{
		provider: provider,
		imports:  imports,
	}
}

// Functions returns the functions available to templates.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"chomp":     stdlib.ChompFunc,
		"coalesce":  stdlib.CoalesceFunc,
		"format":    stdlib.FormatFunc,
		"indent":    stdlib.IndentFunc,
		"join":      stdlib.JoinFunc,
		"length":    stdlib.LengthFunc,
		"lower":     stdlib.LowerFunc,
		"replace":   stdlib.ReplaceFunc,
		"split":     stdlib.SplitFunc,
		"strlen":    stdlib.StrlenFunc,
		"substr":    stdlib.SubstrFunc,
		"title":     stdlib.TitleFunc,
		"trimspace": stdlib.TrimSpaceFunc,
		"upper":     stdlib.UpperFunc,
	}
}

// Render evaluates the template at relativePath. Values in vars override the imports defaults.
func (r *Renderer) Render(relativePath string, vars map[string]string) (string, error) {
	rel := domain.NormalizePath(relativePath)

	file, err := r.provider.GetFileInfo(rel)
	if err != nil {
		return "", err
	}
	if !file.Exists() || file.IsDir() {
		return "", zerr.With(domain.ErrTemplateNotFound, "path", rel)
	}

	stream, err := file.Open()
	if err != nil {
		return "", err
	}
	defer stream.Close() //nolint:errcheck // Best effort close in defer

	src, err := io.ReadAll(stream)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read template"), "path", rel)
	}

	scope, err := r.imports.Resolve(rel)
	if err != nil {
		return "", err
	}

	values := make(map[string]cty.Value, len(scope.Defaults)+len(vars))
	for name, v := range scope.Defaults {
		values[name] = cty.StringVal(v)
	}
	for name, v := range vars {
		values[name] = cty.StringVal(v)
	}

	expr, diags := hclsyntax.ParseTemplate(src, rel, hcl.InitialPos)
	if diags.HasErrors() {
		return "", &RenderError{Diagnostics: convertDiagnostics(rel, onlyErrors(diags))}
	}

	val, diags := expr.Value(&hcl.EvalContext{
		Variables: values,
		Functions: Functions(),
	})
	if diags.HasErrors() {
		return "", &RenderError{Diagnostics: convertDiagnostics(rel, onlyErrors(diags))}
	}

	out, err := convert.Convert(val, cty.String)
	if err != nil || out.IsNull() || !out.IsKnown() {
		return "", zerr.With(zerr.New("template did not produce a string"), "path", rel)
	}
	return out.AsString(), nil
}
