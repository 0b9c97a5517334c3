package hcltmpl

import (
	"io"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

// PackageAttribute is the imports attribute naming the Go package of generated code.
const PackageAttribute = "package"

// Scope is the merged effect of every imports file applying to a template.
type Scope struct {
	Package  string
	Defaults map[string]string
}

// DefaultNames returns the default variable names in sorted order.
func (s Scope) DefaultNames() []string {
	names := make([]string, 0, len(s.Defaults))
	for name := range s.Defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Imports resolves the imports files that apply to a template.
type Imports struct {
	provider  ports.FileProvider
	hierarchy ports.ImportsHierarchy
	fileName  string
}

// NewImports creates an Imports resolver for imports files named fileName.
func NewImports(provider ports.FileProvider, hierarchy ports.ImportsHierarchy, fileName string) *Imports {
	return &Imports{
		provider:  provider,
		hierarchy: hierarchy,
		fileName:  fileName,
	}
}

// IsImportsFile reports whether relativePath names an imports file.
func (i *Imports) IsImportsFile(relativePath string) bool {
	return strings.EqualFold(path.Base(relativePath), i.fileName)
}

// Resolve merges the imports files applying to relativePath. Nearer files override farther ones.
// The package is only taken from the root imports file. Attributes that fail to parse or evaluate
// are ignored here; they are reported when the imports file itself is compiled.
func (i *Imports) Resolve(relativePath string) (Scope, error) {
	scope := Scope{Defaults: make(map[string]string)}

	locations := i.hierarchy.ImportsLocations(relativePath)
	for idx := len(locations) - 1; idx >= 0; idx-- {
		attrs, err := i.load(locations[idx])
		if err != nil {
			return Scope{}, err
		}
		for name, value := range attrs {
			if name == PackageAttribute {
				scope.Package = value
				continue
			}
			scope.Defaults[name] = value
		}
	}
	return scope, nil
}

func (i *Imports) load(location string) (map[string]string, error) {
	file, err := i.provider.GetFileInfo(location)
	if err != nil {
		return nil, err
	}
	if !file.Exists() || file.IsDir() {
		return nil, nil
	}

	r, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read imports file"), "path", location)
	}

	attrs, _ := parseImports(src, location, isRootImports(location))
	return attrs, nil
}

// isRootImports reports whether the imports file at relativePath sits at the template root.
func isRootImports(relativePath string) bool {
	return path.Dir(relativePath) == "."
}

// parseImports evaluates an imports body. Every attribute must evaluate to a value convertible to
// a string without variables; attributes that do not are left out of the result and reported.
// Generated code forms one package, so the package attribute is only accepted when allowPackage
// is set.
func parseImports(src []byte, filename string, allowPackage bool) (map[string]string, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, attrDiags := file.Body.JustAttributes()
	diags = append(diags, attrDiags...)

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].NameRange.Start.Byte < ordered[j].NameRange.Start.Byte
	})

	values := make(map[string]string, len(attrs))
	for _, attr := range ordered {
		name := attr.Name
		if name == PackageAttribute && !allowPackage {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Package outside root imports",
				Detail:   "The package attribute may only be set in the imports file at the template root.",
				Subject:  attr.NameRange.Ptr(),
			})
			continue
		}
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}

		str, err := convert.Convert(val, cty.String)
		if err != nil || str.IsNull() || !str.IsKnown() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid imports value",
				Detail:   "The attribute " + name + " must be a string, number or bool.",
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}

		if name == PackageAttribute && !isIdentifier(str.AsString()) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid package name",
				Detail:   "The package attribute must be a valid Go identifier.",
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		values[name] = str.AsString()
	}
	return values, diags
}
