package precompiler

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CompileAll compiles every file with at most Settings.Workers files in flight.
// Every file runs even when others fail. Once ctx is canceled no further file is dispatched and
// the cancellation is returned after in-flight files finished.
func (p *Precompiler) CompileAll(ctx context.Context, files []domain.SourceFile) (*domain.PassResult, error) {
	result := domain.NewPassResult(files)

	// A plain group: one failing template must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(p.workers())

	for i, file := range files {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			p.compileFile(ctx, result, i, file)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return result, zerr.Wrap(err, "precompilation canceled")
	}
	reportTypeCollisions(result)
	return result, nil
}

// reportTypeCollisions fails every compiled file whose type name is declared by another file of
// the pass or by the collection unit. All units share one package, so either would abort the
// artifact with a redeclaration.
func reportTypeCollisions(result *domain.PassResult) {
	owners := make(map[string][]int)
	var order []string
	for i, entry := range result.Entries {
		if !entry.Success() {
			continue
		}
		name := localTypeName(entry.Unit.Record.FullTypeName)
		if _, seen := owners[name]; !seen {
			order = append(order, name)
		}
		owners[name] = append(owners[name], i)
	}

	for _, name := range order {
		indexes := owners[name]
		if slices.Contains(collectionIdentifiers, name) {
			for _, i := range indexes {
				failCollision(result, i, fmt.Sprintf("type name %s is reserved for the generated collection", name))
			}
			continue
		}
		if len(indexes) < 2 {
			continue
		}
		for _, i := range indexes {
			var others []string
			for _, j := range indexes {
				if j != i {
					others = append(others, result.Files[j].RelativePath)
				}
			}
			failCollision(result, i, fmt.Sprintf("type name %s is also derived from %s", name, strings.Join(others, ", ")))
		}
	}
}

func failCollision(result *domain.PassResult, i int, msg string) {
	result.Statuses[i] = domain.TemplateStatusFailed
	result.AddDiagnostics(i, fileDiagnostic(result.Files[i], msg))
}

func (p *Precompiler) workers() int {
	if p.settings.Workers > 0 {
		return p.settings.Workers
	}
	return runtime.NumCPU()
}

// compileFile fills slot i of result. It never panics.
func (p *Precompiler) compileFile(ctx context.Context, result *domain.PassResult, i int, file domain.SourceFile) {
	_, vertex := p.telemetry.Record(ctx, file.RelativePath)
	completed := false
	complete := func(err error) {
		completed = true
		vertex.Complete(err)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		result.Entries[i] = nil
		result.Statuses[i] = domain.TemplateStatusFailed
		result.AddDiagnostics(i, fileDiagnostic(file, fmt.Sprintf("internal error while compiling template: %v", r)))
		if !completed {
			complete(zerr.With(domain.ErrCompilationPanicked, "panic", fmt.Sprint(r)))
		}
	}()

	entry, cached, err := p.lookupOrCompute(file, func() (*domain.CacheEntry, error) {
		return p.compute(file)
	})
	if err != nil {
		// Faults are not cached, so the next pass retries the file.
		result.Statuses[i] = domain.TemplateStatusFailed
		result.AddDiagnostics(i, fileDiagnostic(file, err.Error()))
		complete(err)
		return
	}

	result.Entries[i] = entry
	if cached {
		vertex.Cached()
	}

	switch {
	case entry.Failed():
		result.Statuses[i] = domain.TemplateStatusFailed
		result.AddDiagnostics(i, entry.Diagnostics...)
		complete(zerr.With(domain.ErrTemplateFailed, "diagnostics", len(entry.Diagnostics)))
	case cached:
		result.Statuses[i] = domain.TemplateStatusCached
		complete(nil)
	case entry == nil:
		result.Statuses[i] = domain.TemplateStatusSkipped
		complete(nil)
	default:
		result.Statuses[i] = domain.TemplateStatusCompiled
		complete(nil)
	}
}

// compute generates, parses and hashes one template. Template errors are returned as a failure
// entry; the error return is reserved for I/O faults.
func (p *Precompiler) compute(file domain.SourceFile) (*domain.CacheEntry, error) {
	stream, err := file.File.Open()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open template"), "path", file.RelativePath)
	}
	defer stream.Close() //nolint:errcheck // Best effort close in defer

	gen, err := p.pipeline.Generator.Generate(file.RelativePath, stream)
	if err != nil {
		return nil, err
	}
	if !gen.Success {
		if len(gen.Errors) == 0 {
			return domain.NewFailureEntry([]domain.Diagnostic{fileDiagnostic(file, "template could not be generated")}), nil
		}
		return domain.NewFailureEntry(relocate(file, gen.Errors)), nil
	}

	tree, err := p.pipeline.Builder.Build(gen.Code, file.Location())
	if err != nil {
		return domain.NewFailureEntry([]domain.Diagnostic{fileDiagnostic(file, err.Error())}), nil
	}

	typeName := p.pipeline.Generator.MainTypeName(gen, tree)
	if typeName == "" {
		return nil, nil
	}

	version := p.hashVersion()
	hash, err := p.pipeline.Hasher.Hash(file.File, version)
	if err != nil {
		return nil, zerr.With(err, "path", file.RelativePath)
	}

	return domain.NewSuccessEntry(&domain.CompiledUnit{
		Unit: domain.GeneratedUnit{
			Path:   file.RelativePath + ".go",
			Source: gen.Code,
		},
		Record: domain.FileRecord{
			RelativePath:         file.RelativePath,
			LastModified:         domain.LastModifiedUTC(file.File),
			Length:               file.File.Length(),
			FullTypeName:         typeName,
			Hash:                 hash,
			HashAlgorithmVersion: version,
		},
	}), nil
}

func (p *Precompiler) hashVersion() int {
	if p.settings.HashAlgorithmVersion == 0 {
		return domain.DefaultHashAlgorithmVersion
	}
	return p.settings.HashAlgorithmVersion
}

// relocate points generator diagnostics at the file's physical location.
func relocate(file domain.SourceFile, diags []domain.Diagnostic) []domain.Diagnostic {
	location := file.Location()
	out := make([]domain.Diagnostic, len(diags))
	for i, d := range diags {
		d.SourcePath = location
		if d.Location.Path == "" || d.Location.Path == file.RelativePath {
			d.Location.Path = location
		}
		out[i] = d
	}
	return out
}

func fileDiagnostic(file domain.SourceFile, msg string) domain.Diagnostic {
	return domain.Diagnostic{
		SourcePath: file.Location(),
		Message:    msg,
		Severity:   domain.SeverityError,
		Location:   domain.Location{Path: file.Location()},
	}
}
