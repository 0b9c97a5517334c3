package precompiler

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/zerr"
)

// CollectionUnitPath is the file name of the generated collection unit.
const CollectionUnitPath = "precompiled_collection.go"

// collectionIdentifiers are declared by the collection unit next to the template types.
var collectionIdentifiers = []string{
	"PrecompiledBinaryResource",
	"PrecompiledDebugResource",
	"PrecompiledView",
	"PrecompiledTemplate",
	"PrecompiledTemplates",
}

// renderCollection generates the unit enumerating every precompiled template of the manifest.
// Referencing each type makes the compiler verify that every recorded type exists.
func renderCollection(pkg string, manifest *domain.ArtifactManifest) (domain.GeneratedUnit, error) {
	var b bytes.Buffer

	b.WriteString("// Code generated by stencil. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	b.WriteString("// PrecompiledBinaryResource names the embedded archive of precompiled templates.\n")
	fmt.Fprintf(&b, "const PrecompiledBinaryResource = %s\n\n", strconv.Quote(manifest.BinaryResourceName))
	b.WriteString("// PrecompiledDebugResource names the embedded symbol table. Empty without symbols.\n")
	fmt.Fprintf(&b, "const PrecompiledDebugResource = %s\n\n", strconv.Quote(manifest.DebugResourceName))

	b.WriteString(`// PrecompiledView is implemented by every precompiled template type.
type PrecompiledView interface {
	Path() string
	Source() string
	Variables() []string
	Defaults() map[string]string
}

// PrecompiledTemplate describes one precompiled template and the source it was built from.
type PrecompiledTemplate struct {
	Path                 string
	TypeName             string
	Length               int64
	LastModified         string
	Hash                 string
	HashAlgorithmVersion int
	View                 PrecompiledView
}

// PrecompiledTemplates returns every precompiled template in discovery order.
func PrecompiledTemplates() []PrecompiledTemplate {
	return []PrecompiledTemplate{
`)
	for _, rec := range manifest.Files {
		typeName := localTypeName(rec.FullTypeName)
		lastModified := ""
		if !rec.LastModified.IsZero() {
			lastModified = rec.LastModified.UTC().Format(time.RFC3339)
		}
		b.WriteString("{\n")
		fmt.Fprintf(&b, "Path: %s,\n", strconv.Quote(rec.RelativePath))
		fmt.Fprintf(&b, "TypeName: %s,\n", strconv.Quote(rec.FullTypeName))
		fmt.Fprintf(&b, "Length: %d,\n", rec.Length)
		fmt.Fprintf(&b, "LastModified: %s,\n", strconv.Quote(lastModified))
		fmt.Fprintf(&b, "Hash: %s,\n", strconv.Quote(rec.Hash))
		fmt.Fprintf(&b, "HashAlgorithmVersion: %d,\n", rec.HashAlgorithmVersion)
		fmt.Fprintf(&b, "View: %s{},\n", typeName)
		b.WriteString("},\n")
	}
	b.WriteString("}\n}\n")

	code, err := format.Source(b.Bytes())
	if err != nil {
		return domain.GeneratedUnit{}, zerr.Wrap(err, "failed to format collection unit")
	}
	return domain.GeneratedUnit{Path: CollectionUnitPath, Source: code}, nil
}

func localTypeName(fullTypeName string) string {
	if i := strings.LastIndexByte(fullTypeName, '.'); i >= 0 {
		return fullTypeName[i+1:]
	}
	return fullTypeName
}
