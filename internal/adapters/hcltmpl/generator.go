package hcltmpl

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"io"
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CodeGenerator = (*Generator)(nil)

// Generator turns HCL templates into Go source declaring one type per template.
type Generator struct {
	imports        *Imports
	defaultPackage string
}

// NewGenerator creates a Generator. Templates not covered by an imports package attribute are
// generated into defaultPackage.
func NewGenerator(imports *Imports, defaultPackage string) *Generator {
	return &Generator{
		imports:        imports,
		defaultPackage: defaultPackage,
	}
}

// Generate parses the template read from r and generates its Go source.
func (g *Generator) Generate(relativePath string, r io.Reader) (*ports.Generation, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read template"), "path", relativePath)
	}

	if g.imports.IsImportsFile(relativePath) {
		return g.generateImports(relativePath, src)
	}

	scope, err := g.imports.Resolve(relativePath)
	if err != nil {
		return nil, err
	}
	pkg := g.packageName(scope)

	expr, diags := hclsyntax.ParseTemplate(src, relativePath, hcl.InitialPos)
	if diags.HasErrors() {
		return failed(relativePath, pkg, diags), nil
	}

	typeName := TypeName(relativePath)
	if typeName == "" {
		return failed(relativePath, pkg, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid template name",
			Detail:   "No Go type name can be derived from " + strconv.Quote(relativePath) + ".",
		}}), nil
	}

	code, err := renderSource(sourceData{
		Package:   pkg,
		TypeName:  typeName,
		Path:      relativePath,
		Source:    string(src),
		Variables: variableNames(expr),
		Defaults:  scope.Defaults,
	})
	if err != nil {
		return nil, zerr.With(err, "path", relativePath)
	}

	return &ports.Generation{
		Success:     true,
		Code:        code,
		TypeName:    typeName,
		PackageName: pkg,
	}, nil
}

// MainTypeName returns "package.Type" when tree declares the type the generation intended.
func (g *Generator) MainTypeName(gen *ports.Generation, tree *ast.File) string {
	if gen == nil || tree == nil || gen.TypeName == "" {
		return ""
	}
	for _, decl := range tree.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if ok && ts.Name.Name == gen.TypeName {
				return tree.Name.Name + "." + ts.Name.Name
			}
		}
	}
	return ""
}

// generateImports validates an imports file. It declares no type, so it contributes nothing to
// the artifact.
func (g *Generator) generateImports(relativePath string, src []byte) (*ports.Generation, error) {
	attrs, diags := parseImports(src, relativePath, isRootImports(relativePath))
	pkg := g.defaultPackage
	if p, ok := attrs[PackageAttribute]; ok {
		pkg = p
	}

	if errs := onlyErrors(diags); len(errs) > 0 {
		return failed(relativePath, pkg, errs), nil
	}

	code, err := format.Source([]byte(header(relativePath) + "package " + pkg + "\n"))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to format generated code"), "path", relativePath)
	}
	return &ports.Generation{
		Success:     true,
		Code:        code,
		PackageName: pkg,
	}, nil
}

func (g *Generator) packageName(scope Scope) string {
	if scope.Package != "" {
		return scope.Package
	}
	return g.defaultPackage
}

func failed(relativePath, pkg string, diags hcl.Diagnostics) *ports.Generation {
	return &ports.Generation{
		PackageName: pkg,
		Errors:      convertDiagnostics(relativePath, onlyErrors(diags)),
	}
}

// variableNames returns the root names referenced by the template in sorted order.
func variableNames(expr hclsyntax.Expression) []string {
	seen := make(map[string]struct{})
	for _, traversal := range expr.Variables() {
		seen[traversal.RootName()] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type sourceData struct {
	Package   string
	TypeName  string
	Path      string
	Source    string
	Variables []string
	Defaults  map[string]string
}

func header(relativePath string) string {
	return "// Code generated by stencil. DO NOT EDIT.\n// Source: " + relativePath + "\n\n"
}

func renderSource(d sourceData) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(header(d.Path))
	fmt.Fprintf(&b, "package %s\n\n", d.Package)
	fmt.Fprintf(&b, "// %s is the precompiled template %s.\n", d.TypeName, d.Path)
	fmt.Fprintf(&b, "type %s struct{}\n\n", d.TypeName)

	fmt.Fprintf(&b, "// Path returns the template path relative to the content root.\n")
	fmt.Fprintf(&b, "func (%s) Path() string { return %s }\n\n", d.TypeName, strconv.Quote(d.Path))

	fmt.Fprintf(&b, "// Source returns the template text.\n")
	fmt.Fprintf(&b, "func (%s) Source() string { return %s }\n\n", d.TypeName, strconv.Quote(d.Source))

	fmt.Fprintf(&b, "// Variables returns the variables referenced by the template.\n")
	fmt.Fprintf(&b, "func (%s) Variables() []string {\n\treturn []string{", d.TypeName)
	for i, v := range d.Variables {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(v))
	}
	b.WriteString("}\n}\n\n")

	fmt.Fprintf(&b, "// Defaults returns the default variable values from the imports hierarchy.\n")
	fmt.Fprintf(&b, "func (%s) Defaults() map[string]string {\n\treturn map[string]string{", d.TypeName)
	scope := Scope{Defaults: d.Defaults}
	if names := scope.DefaultNames(); len(names) > 0 {
		b.WriteString("\n")
		for _, name := range names {
			fmt.Fprintf(&b, "\t\t%s: %s,\n", strconv.Quote(name), strconv.Quote(d.Defaults[name]))
		}
		b.WriteString("\t")
	}
	b.WriteString("}\n}\n")

	code, err := format.Source(b.Bytes())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to format generated code")
	}
	return code, nil
}
