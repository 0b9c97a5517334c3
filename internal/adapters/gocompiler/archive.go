package gocompiler

import (
	"archive/tar"
	"bytes"
	"encoding/json"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"sort"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/zerr"
)

// archiveModTime is stamped on every archive entry so identical inputs produce identical archives.
var archiveModTime = time.Unix(0, 0).UTC()

func writeArchive(fset *token.FileSet, files []*ast.File) (*bytes.Reader, error) {
	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create gzip writer")
	}
	tw := tar.NewWriter(gz)

	for _, file := range files {
		var src bytes.Buffer
		if err := format.Node(&src, fset, file); err != nil {
			return nil, zerr.Wrap(err, "failed to format unit")
		}

		name := fset.Position(file.Package).Filename
		hdr := &tar.Header{
			Name:    name,
			Mode:    0o644,
			Size:    int64(src.Len()),
			ModTime: archiveModTime,
			Format:  tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to write archive header"), "unit", name)
		}
		if _, err := tw.Write(src.Bytes()); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to write archive entry"), "unit", name)
		}
	}

	if err := tw.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to close archive")
	}
	if err := gz.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to close gzip writer")
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// Symbol describes one package level declaration in the debug stream.
type Symbol struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Type   string `json:"type"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// SymbolTable is the debug stream document.
type SymbolTable struct {
	Package string   `json:"package"`
	Symbols []Symbol `json:"symbols"`
}

func writeSymbols(fset *token.FileSet, pkg *types.Package) (*bytes.Reader, error) {
	table := SymbolTable{Package: pkg.Name()}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		pos := fset.Position(obj.Pos())
		table.Symbols = append(table.Symbols, Symbol{
			Name:   name,
			Kind:   objectKind(obj),
			Type:   types.TypeString(obj.Type(), types.RelativeTo(pkg)),
			File:   pos.Filename,
			Line:   pos.Line,
			Column: pos.Column,
		})
	}
	sort.SliceStable(table.Symbols, func(i, j int) bool {
		return table.Symbols[i].Name < table.Symbols[j].Name
	})

	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode symbol table")
	}
	return bytes.NewReader(data), nil
}

func objectKind(obj types.Object) string {
	switch obj.(type) {
	case *types.TypeName:
		return "type"
	case *types.Func:
		return "func"
	case *types.Var:
		return "var"
	case *types.Const:
		return "const"
	default:
		return "other"
	}
}
