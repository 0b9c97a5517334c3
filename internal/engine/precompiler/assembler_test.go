package precompiler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stencil/internal/adapters/fs"
	"go.trai.ch/stencil/internal/adapters/host"
	"go.trai.ch/stencil/internal/adapters/telemetry"
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports/mocks"
	"go.trai.ch/stencil/internal/engine/precompiler"
	"go.uber.org/mock/gomock"
)

var hostReference = domain.Reference{Name: "site", ImportPath: "example.com/site"}

func newAssembler(compiler *mocks.MockCompiler, symbols bool) *precompiler.Precompiler {
	return precompiler.New(precompiler.Pipeline{Compiler: compiler}, nil, telemetry.NewNoOp(), domain.Settings{
		PackageName:     "templates",
		GenerateSymbols: symbols,
	})
}

func sampleUnits() ([]domain.GeneratedUnit, []domain.FileRecord) {
	units := []domain.GeneratedUnit{{Path: "index.tmpl.go", Source: []byte("package views\n\ntype Index struct{}\n")}}
	records := []domain.FileRecord{{RelativePath: "index.tmpl", FullTypeName: "views.Index", Hash: "h", HashAlgorithmVersion: 1}}
	return units, records
}

// drained returns a stream positioned at its end, as a compiler leaves it after writing.
func drained(content string) io.ReadSeeker {
	r := bytes.NewReader([]byte(content))
	_, _ = r.Seek(0, io.SeekEnd)
	return r
}

func TestAssemble_NothingToEmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	h := host.New("site", hostReference)

	manifest, err := newAssembler(compiler, false).Assemble(context.Background(), h, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, manifest)
	assert.Empty(t, h.GeneratedUnits())
}

func TestAssemble_RegistersStreamsAndCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	dependency := domain.Reference{Name: "fmt", ImportPath: "fmt"}
	h := host.New("site", hostReference, dependency)
	units, records := sampleUnits()

	compiler.EXPECT().SupportsSymbols().Return(true)
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.CompileRequest) (*domain.CompileResult, error) {
			assert.Equal(t, "site", req.Name)
			assert.Equal(t, "views", req.PackageName)
			assert.True(t, req.EmitSymbols)
			assert.Equal(t, []domain.Reference{dependency, hostReference}, req.References)
			require.Len(t, req.Units, 2)
			assert.Equal(t, "index.tmpl.go", req.Units[0].Path)
			assert.Equal(t, precompiler.CollectionUnitPath, req.Units[1].Path)
			return &domain.CompileResult{
				Success: true,
				Binary:  drained("archive"),
				Debug:   drained("symbols"),
			}, nil
		})

	manifest, err := newAssembler(compiler, true).Assemble(context.Background(), h, units, records)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Equal(t, records, manifest.Files)

	resources := h.Resources()
	require.Len(t, resources, 2)
	assert.Equal(t, manifest.BinaryResourceName, resources[0].Name)
	assert.Equal(t, manifest.DebugResourceName, resources[1].Name)

	content, err := io.ReadAll(resources[0].Open())
	require.NoError(t, err)
	assert.Equal(t, "archive", string(content))
	content, err = io.ReadAll(resources[1].Open())
	require.NoError(t, err)
	assert.Equal(t, "symbols", string(content))

	generated := h.GeneratedUnits()
	require.Len(t, generated, 1)
	assert.Contains(t, string(generated[0].Source), manifest.BinaryResourceName)
	assert.Contains(t, string(generated[0].Source), manifest.DebugResourceName)
}

func TestAssemble_SymbolsRequireCompilerSupport(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	h := host.New("site", hostReference)
	units, records := sampleUnits()

	compiler.EXPECT().SupportsSymbols().Return(false)
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.CompileRequest) (*domain.CompileResult, error) {
			assert.False(t, req.EmitSymbols)
			return &domain.CompileResult{Success: true, Binary: drained("archive")}, nil
		})

	manifest, err := newAssembler(compiler, true).Assemble(context.Background(), h, units, records)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Empty(t, manifest.DebugResourceName)
	assert.Len(t, h.Resources(), 1)
}

func TestAssemble_CompilerDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	hostCtx := mocks.NewMockHostContext(ctrl)
	units, records := sampleUnits()
	diag := domain.Diagnostic{SourcePath: "index.tmpl.go", Message: "undefined: missing", Severity: domain.SeverityError}

	hostCtx.EXPECT().AssemblyName().Return("site").AnyTimes()
	hostCtx.EXPECT().References().Return(nil)
	hostCtx.EXPECT().Reference().Return(hostReference)
	hostCtx.EXPECT().AddDiagnostics(diag)
	compiler.EXPECT().SupportsSymbols().Return(true)
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(&domain.CompileResult{
		Diagnostics: []domain.Diagnostic{diag},
	}, nil)

	manifest, err := newAssembler(compiler, false).Assemble(context.Background(), hostCtx, units, records)
	require.NoError(t, err)
	assert.Nil(t, manifest)
}

func TestAssemble_CompilerFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	h := host.New("site", hostReference)
	units, records := sampleUnits()

	compiler.EXPECT().SupportsSymbols().Return(true)
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil, errors.New("out of memory"))

	manifest, err := newAssembler(compiler, false).Assemble(context.Background(), h, units, records)
	require.ErrorContains(t, err, "out of memory")
	assert.Nil(t, manifest)
	assert.Empty(t, h.Resources())
	assert.Empty(t, h.GeneratedUnits())
}

func TestResourcePrefix(t *testing.T) {
	pattern := regexp.MustCompile(`^site\.Precompiler\.[a-z2-7]{16}$`)

	first, err := precompiler.ResourcePrefix("site")
	require.NoError(t, err)
	second, err := precompiler.ResourcePrefix("site")
	require.NoError(t, err)

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestRenderCollection_Golden(t *testing.T) {
	manifest := &domain.ArtifactManifest{
		BinaryResourceName: "site.Precompiler.abc.tar.gz",
		Files: []domain.FileRecord{
			{
				RelativePath:         "views/home/index.tmpl",
				LastModified:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				Length:               15,
				FullTypeName:         "views.ViewsHomeIndex",
				Hash:                 "ef46db3751d8e999",
				HashAlgorithmVersion: 1,
			},
			{
				RelativePath:         "views/about.tmpl",
				Length:               5,
				FullTypeName:         "views.ViewsAbout",
				Hash:                 "abc",
				HashAlgorithmVersion: 2,
			},
		},
	}

	unit, err := precompiler.RenderCollection("views", manifest)
	require.NoError(t, err)
	assert.Equal(t, precompiler.CollectionUnitPath, unit.Path)

	g := goldie.New(t)
	g.Assert(t, "collection", unit.Source)
}

func TestCompileTemplates_DiscoveryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	walker := mocks.NewMockTemplateWalker(ctrl)
	walker.EXPECT().Walk("").Return(nil, errors.New("listing failed"))

	p := precompiler.New(precompiler.Pipeline{
		Provider: fs.NewProvider(nil, ""),
		Walker:   walker,
	}, nil, telemetry.NewNoOp(), domain.Settings{})

	manifest, err := p.CompileTemplates(context.Background(), host.New("site", hostReference))
	require.ErrorContains(t, err, "listing failed")
	assert.Nil(t, manifest)
}
