package precompiler

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"io"
	"slices"
	"strings"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	binaryExtension = ".tar.gz"
	debugExtension  = ".symbols.json"
	randomBytes     = 10
)

// Assemble compiles units together with a generated collection unit into one artifact and
// registers the result on host. It must only be called for a pass without diagnostics.
// It returns nil when there is nothing to emit or when the compiler reported diagnostics, which
// are then recorded on host.
func (p *Precompiler) Assemble(
	ctx context.Context,
	host ports.HostContext,
	units []domain.GeneratedUnit,
	records []domain.FileRecord,
) (*domain.ArtifactManifest, error) {
	if len(records) == 0 {
		return nil, nil
	}

	prefix, err := resourcePrefix(host.AssemblyName())
	if err != nil {
		return nil, err
	}

	compiler := p.pipeline.Compiler
	emitSymbols := p.settings.GenerateSymbols && compiler.SupportsSymbols()

	manifest := &domain.ArtifactManifest{
		BinaryResourceName: prefix + binaryExtension,
		Files:              records,
	}
	if emitSymbols {
		manifest.DebugResourceName = prefix + debugExtension
	}

	pkg := collectionPackage(records, p.settings.PackageName)
	collection, err := renderCollection(pkg, manifest)
	if err != nil {
		return nil, err
	}

	references := append(host.References(), host.Reference())
	result, err := compiler.Compile(ctx, domain.CompileRequest{
		Name:        host.AssemblyName(),
		PackageName: pkg,
		Units:       append(slices.Clone(units), collection),
		References:  references,
		EmitSymbols: emitSymbols,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to compile precompiled templates"), "assembly", host.AssemblyName())
	}

	if !result.Success {
		diags := result.Diagnostics
		if len(diags) == 0 {
			diags = []domain.Diagnostic{{
				SourcePath: collection.Path,
				Message:    "compilation of precompiled templates failed",
				Severity:   domain.SeverityError,
			}}
		}
		host.AddDiagnostics(diags...)
		return nil, nil
	}

	if err := registerStream(host, manifest.BinaryResourceName, result.Binary); err != nil {
		return nil, err
	}
	if emitSymbols {
		if err := registerStream(host, manifest.DebugResourceName, result.Debug); err != nil {
			return nil, err
		}
	}

	host.AddGeneratedUnits(collection)
	return manifest, nil
}

// registerStream rewinds stream and embeds it as a public resource. The stream stays open; the
// consumer of the resource owns it.
func registerStream(host ports.HostContext, name string, stream io.ReadSeeker) error {
	if stream == nil {
		return zerr.With(zerr.New("compiler returned no stream"), "resource", name)
	}
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rewind compiler output"), "resource", name)
	}
	host.AddResource(domain.Resource{
		Name:   name,
		Public: true,
		Open:   func() io.Reader { return stream },
	})
	return nil
}

// resourcePrefix returns "<assembly>.Precompiler.<random>". The random part keeps resource names
// of separate passes from colliding inside one host.
func resourcePrefix(assembly string) (string, error) {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", zerr.Wrap(err, "failed to generate resource name")
	}
	suffix := strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf))
	return assembly + ".Precompiler." + suffix, nil
}

// collectionPackage returns the package declared by the compiled units.
func collectionPackage(records []domain.FileRecord, fallback string) string {
	for _, rec := range records {
		if pkg, _, ok := strings.Cut(rec.FullTypeName, "."); ok && pkg != "" {
			return pkg
		}
	}
	return fallback
}
