package precompiler_test

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stencil/internal/adapters/cache"
	"go.trai.ch/stencil/internal/adapters/fs"
	"go.trai.ch/stencil/internal/adapters/gocompiler"
	"go.trai.ch/stencil/internal/adapters/hcltmpl"
	"go.trai.ch/stencil/internal/adapters/host"
	"go.trai.ch/stencil/internal/adapters/telemetry"
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/stencil/internal/core/ports/mocks"
	"go.trai.ch/stencil/internal/engine/precompiler"
	"go.uber.org/mock/gomock"
)

var modTime = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

// countingGenerator records how often each template was generated.
type countingGenerator struct {
	ports.CodeGenerator

	mu    sync.Mutex
	calls map[string]int
}

func (g *countingGenerator) Generate(relativePath string, r io.Reader) (*ports.Generation, error) {
	g.mu.Lock()
	g.calls[relativePath]++
	g.mu.Unlock()
	return g.CodeGenerator.Generate(relativePath, r)
}

func (g *countingGenerator) count(relativePath string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[relativePath]
}

type fixture struct {
	tree      fstest.MapFS
	provider  *fs.Provider
	cache     *cache.Memory
	generator *countingGenerator
	compiler  ports.Compiler
	settings  domain.Settings
}

func newFixture(tree fstest.MapFS) *fixture {
	settings := domain.Settings{
		Extension:            ".tmpl",
		ImportsName:          "_imports",
		PackageName:          "templates",
		AssemblyName:         "site",
		Workers:              2,
		HashAlgorithmVersion: domain.HashAlgorithmVersion1,
		Ignore:               fs.DefaultIgnores,
	}
	provider := fs.NewProvider(tree, "")
	hierarchy := fs.NewHierarchy(settings.ImportsFileName())
	imports := hcltmpl.NewImports(provider, hierarchy, settings.ImportsFileName())

	return &fixture{
		tree:     tree,
		provider: provider,
		cache:    cache.NewMemory(),
		generator: &countingGenerator{
			CodeGenerator: hcltmpl.NewGenerator(imports, settings.PackageName),
			calls:         make(map[string]int),
		},
		compiler: gocompiler.New(),
		settings: settings,
	}
}

func (f *fixture) precompiler() *precompiler.Precompiler {
	return precompiler.New(precompiler.Pipeline{
		Provider:  f.provider,
		Walker:    fs.NewWalker(f.provider, f.settings.Extension, f.settings.Ignore),
		Hierarchy: fs.NewHierarchy(f.settings.ImportsFileName()),
		Generator: f.generator,
		Builder:   hcltmpl.NewSyntaxBuilder(),
		Hasher:    fs.NewHasher(),
		Compiler:  f.compiler,
	}, f.cache, telemetry.NewNoOp(), f.settings)
}

func (f *fixture) pass(t *testing.T) (*domain.ArtifactManifest, *domain.PassResult, *host.Context) {
	t.Helper()
	h := host.New(f.settings.AssemblyName, domain.Reference{Name: "site", ImportPath: "example.com/site"})
	manifest, result, err := f.precompiler().Run(context.Background(), h)
	require.NoError(t, err)
	return manifest, result, h
}

func siteTree() fstest.MapFS {
	return fstest.MapFS{
		"_imports.tmpl":         {Data: []byte(`package = "views"`), ModTime: modTime},
		"views/about.tmpl":      {Data: []byte("About ${company}"), ModTime: modTime},
		"views/home/index.tmpl": {Data: []byte("Hello ${name}"), ModTime: modTime},
		"views/home/notes.txt":  {Data: []byte("not a template"), ModTime: modTime},
	}
}

func TestCompileTemplates_Manifest(t *testing.T) {
	f := newFixture(siteTree())

	manifest, result, h := f.pass(t)
	require.NotNil(t, manifest)
	assert.Empty(t, h.Diagnostics())

	assert.True(t, strings.HasPrefix(manifest.BinaryResourceName, "site.Precompiler."))
	assert.True(t, strings.HasSuffix(manifest.BinaryResourceName, ".tar.gz"))
	assert.Empty(t, manifest.DebugResourceName)

	require.Len(t, manifest.Files, 2)
	about, index := manifest.Files[0], manifest.Files[1]

	wantHash, err := fs.NewHasher().HashBytes([]byte("Hello ${name}"), domain.HashAlgorithmVersion1)
	require.NoError(t, err)

	assert.Equal(t, "views/about.tmpl", about.RelativePath)
	assert.Equal(t, "views.ViewsAbout", about.FullTypeName)
	assert.Equal(t, "views/home/index.tmpl", index.RelativePath)
	assert.Equal(t, "views.ViewsHomeIndex", index.FullTypeName)
	assert.Equal(t, wantHash, index.Hash)
	assert.Equal(t, domain.HashAlgorithmVersion1, index.HashAlgorithmVersion)
	assert.Equal(t, int64(len("Hello ${name}")), index.Length)
	assert.Equal(t, modTime, index.LastModified)

	resources := h.Resources()
	require.Len(t, resources, 1)
	assert.Equal(t, manifest.BinaryResourceName, resources[0].Name)
	assert.True(t, resources[0].Public)

	magic := make([]byte, 2)
	_, err = io.ReadFull(resources[0].Open(), magic)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, magic)

	units := h.GeneratedUnits()
	require.Len(t, units, 1)
	assert.Equal(t, precompiler.CollectionUnitPath, units[0].Path)
	assert.Contains(t, string(units[0].Source), "View:                 ViewsHomeIndex{},")

	assert.Equal(t, domain.PassStats{Compiled: 2, Skipped: 1}, result.Stats())
}

func TestCompileTemplates_Symbols(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		resources int
		debug     bool
	}{
		{name: "supported platform", goos: "linux", resources: 2, debug: true},
		{name: "sandboxed platform", goos: "js", resources: 1, debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(siteTree())
			f.settings.GenerateSymbols = true
			f.compiler = gocompiler.NewForPlatform(tt.goos)

			manifest, _, h := f.pass(t)
			require.NotNil(t, manifest)
			assert.Len(t, h.Resources(), tt.resources)
			if tt.debug {
				assert.True(t, strings.HasSuffix(manifest.DebugResourceName, ".symbols.json"))
				prefix := strings.TrimSuffix(manifest.BinaryResourceName, ".tar.gz")
				assert.Equal(t, prefix+".symbols.json", manifest.DebugResourceName)
			} else {
				assert.Empty(t, manifest.DebugResourceName)
			}
		})
	}
}

func TestCompileTemplates_BadTemplateFailsPass(t *testing.T) {
	f := newFixture(fstest.MapFS{
		"views/home/index.tmpl": {Data: []byte("Hello ${name}"), ModTime: modTime},
		"views/home/bad.tmpl":   {Data: []byte("Hello ${"), ModTime: modTime},
	})

	manifest, result, h := f.pass(t)
	assert.Nil(t, manifest)

	diags := h.Diagnostics()
	require.NotEmpty(t, diags)
	for _, d := range diags {
		assert.Equal(t, "views/home/bad.tmpl", d.SourcePath)
		assert.True(t, d.IsError())
	}
	assert.Empty(t, h.Resources())
	assert.Empty(t, h.GeneratedUnits())
	assert.Equal(t, domain.PassStats{Compiled: 1, Failed: 1}, result.Stats())
}

func TestCompileTemplates_CollectsEveryDiagnosticInDiscoveryOrder(t *testing.T) {
	f := newFixture(fstest.MapFS{
		"a.tmpl": {Data: []byte("${"), ModTime: modTime},
		"b.tmpl": {Data: []byte("fine"), ModTime: modTime},
		"c.tmpl": {Data: []byte("%{ if }"), ModTime: modTime},
	})

	manifest, result, h := f.pass(t)
	assert.Nil(t, manifest)

	var paths []string
	for _, d := range h.Diagnostics() {
		if len(paths) == 0 || paths[len(paths)-1] != d.SourcePath {
			paths = append(paths, d.SourcePath)
		}
	}
	assert.Equal(t, []string{"a.tmpl", "c.tmpl"}, paths)
	assert.Equal(t, result.Diagnostics(), h.Diagnostics())
}

func TestCompileTemplates_EmptyTree(t *testing.T) {
	f := newFixture(fstest.MapFS{
		"README.md": {Data: []byte("no templates here")},
	})

	manifest, result, h := f.pass(t)
	assert.Nil(t, manifest)
	assert.Nil(t, result)
	assert.Empty(t, h.Diagnostics())
	assert.Empty(t, h.Resources())
}

func TestCompileTemplates_NothingToEmit(t *testing.T) {
	f := newFixture(fstest.MapFS{
		"_imports.tmpl": {Data: []byte(`package = "views"`), ModTime: modTime},
	})

	manifest, result, h := f.pass(t)
	assert.Nil(t, manifest)
	require.NotNil(t, result)
	assert.Equal(t, domain.PassStats{Skipped: 1}, result.Stats())
	assert.Empty(t, h.Resources())
	assert.Empty(t, h.GeneratedUnits())
}

func TestCompileTemplates_CompilerDiagnosticsAbortArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	f := newFixture(fstest.MapFS{
		"a.tmpl": {Data: []byte("a"), ModTime: modTime},
	})
	f.compiler = compiler

	compiler.EXPECT().SupportsSymbols().Return(true).AnyTimes()
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(&domain.CompileResult{
		Diagnostics: []domain.Diagnostic{{
			SourcePath: "a.tmpl.go",
			Message:    "undefined: Missing",
			Severity:   domain.SeverityError,
		}},
	}, nil)

	manifest, result, h := f.pass(t)
	assert.Nil(t, manifest)
	assert.False(t, result.Failed())
	require.Len(t, h.Diagnostics(), 1)
	assert.Equal(t, "undefined: Missing", h.Diagnostics()[0].Message)
	assert.True(t, h.HasErrors())
	assert.Empty(t, h.Resources())
	assert.Empty(t, h.GeneratedUnits())
}

func TestCompileTemplates_PackageOnlyFromRootImports(t *testing.T) {
	f := newFixture(fstest.MapFS{
		"_imports.tmpl":       {Data: []byte(`package = "site"`), ModTime: modTime},
		"admin/_imports.tmpl": {Data: []byte(`package = "admin"`), ModTime: modTime},
		"admin/users.tmpl":    {Data: []byte("users"), ModTime: modTime},
		"public/home.tmpl":    {Data: []byte("home"), ModTime: modTime},
	})

	manifest, result, h := f.pass(t)
	assert.Nil(t, manifest)
	assert.Empty(t, h.Resources())

	diags := h.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "admin/_imports.tmpl", diags[0].SourcePath)
	assert.Contains(t, diags[0].Message, "Package outside root imports")
	assert.Equal(t, domain.PassStats{Compiled: 2, Skipped: 1, Failed: 1}, result.Stats())

	// Without the nested package every template compiles into the root package.
	f.tree["admin/_imports.tmpl"] = &fstest.MapFile{Data: []byte(`title = "Admin"`), ModTime: modTime}
	f.provider.Notifier().Notify("admin/_imports.tmpl")

	manifest, _, h = f.pass(t)
	require.NotNil(t, manifest)
	assert.Empty(t, h.Diagnostics())
	require.Len(t, manifest.Files, 2)
	assert.Equal(t, "site.AdminUsers", manifest.Files[0].FullTypeName)
	assert.Equal(t, "site.PublicHome", manifest.Files[1].FullTypeName)
}

func TestCompileTemplates_TypeNameCollisions(t *testing.T) {
	t.Run("two templates", func(t *testing.T) {
		f := newFixture(fstest.MapFS{
			"views/about.tmpl":      {Data: []byte("about"), ModTime: modTime},
			"views/home/index.tmpl": {Data: []byte("nested"), ModTime: modTime},
			"views/home_index.tmpl": {Data: []byte("flat"), ModTime: modTime},
		})

		manifest, result, h := f.pass(t)
		assert.Nil(t, manifest)
		assert.Empty(t, h.Resources())

		diags := h.Diagnostics()
		require.Len(t, diags, 2)
		assert.Equal(t, "views/home/index.tmpl", diags[0].SourcePath)
		assert.Contains(t, diags[0].Message, "ViewsHomeIndex")
		assert.Contains(t, diags[0].Message, "views/home_index.tmpl")
		assert.Equal(t, "views/home_index.tmpl", diags[1].SourcePath)
		assert.Contains(t, diags[1].Message, "views/home/index.tmpl")
		assert.Equal(t, domain.PassStats{Compiled: 1, Failed: 2}, result.Stats())

		// Renaming one side resolves the collision without recompiling the other.
		delete(f.tree, "views/home_index.tmpl")
		f.tree["views/home_start.tmpl"] = &fstest.MapFile{Data: []byte("flat"), ModTime: modTime}

		manifest, _, h = f.pass(t)
		require.NotNil(t, manifest)
		assert.Empty(t, h.Diagnostics())
		assert.Len(t, manifest.Files, 3)
		assert.Equal(t, 1, f.generator.count("views/home/index.tmpl"))
	})

	t.Run("collection identifier", func(t *testing.T) {
		f := newFixture(fstest.MapFS{
			"precompiled_view.tmpl": {Data: []byte("view"), ModTime: modTime},
		})

		manifest, _, h := f.pass(t)
		assert.Nil(t, manifest)

		diags := h.Diagnostics()
		require.Len(t, diags, 1)
		assert.Equal(t, "precompiled_view.tmpl", diags[0].SourcePath)
		assert.Contains(t, diags[0].Message, "PrecompiledView is reserved")
	})
}

func TestCompileTemplates_WarmCacheIsIdempotent(t *testing.T) {
	f := newFixture(siteTree())

	first, _, _ := f.pass(t)
	second, result, h := f.pass(t)
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, first.Files, second.Files)
	assert.NotEqual(t, first.BinaryResourceName, second.BinaryResourceName)
	assert.Len(t, h.Resources(), 1)

	for _, p := range []string{"_imports.tmpl", "views/about.tmpl", "views/home/index.tmpl"} {
		assert.Equal(t, 1, f.generator.count(p), p)
	}
	assert.Equal(t, domain.PassStats{Cached: 3}, result.Stats())
}

func TestCompileTemplates_FileTriggerRecompilesOnlyThatFile(t *testing.T) {
	f := newFixture(siteTree())
	f.pass(t)

	f.tree["views/about.tmpl"] = &fstest.MapFile{Data: []byte("About us, ${company}"), ModTime: modTime.Add(time.Minute)}
	assert.Equal(t, 1, f.provider.Notifier().Notify("views/about.tmpl"))

	manifest, result, _ := f.pass(t)
	require.NotNil(t, manifest)

	assert.Equal(t, 2, f.generator.count("views/about.tmpl"))
	assert.Equal(t, 1, f.generator.count("views/home/index.tmpl"))
	assert.Equal(t, 1, f.generator.count("_imports.tmpl"))
	assert.Equal(t, domain.PassStats{Compiled: 1, Cached: 2}, result.Stats())

	about, ok := manifest.Lookup("views/about.tmpl")
	require.True(t, ok)
	assert.Equal(t, int64(len("About us, ${company}")), about.Length)
	assert.Equal(t, modTime.Add(time.Minute), about.LastModified)
}

func TestCompileTemplates_ImportsTriggerRecompilesTemplatesBelow(t *testing.T) {
	f := newFixture(siteTree())
	f.pass(t)

	// No imports file exists in views/home yet; creating one must still invalidate index.tmpl.
	f.tree["views/home/_imports.tmpl"] = &fstest.MapFile{Data: []byte(`greeting = "hi"`), ModTime: modTime}
	f.provider.Notifier().Notify("views/home/_imports.tmpl")

	_, result, _ := f.pass(t)
	assert.Equal(t, 2, f.generator.count("views/home/index.tmpl"))
	assert.Equal(t, 1, f.generator.count("views/about.tmpl"))
	assert.Equal(t, 1, f.generator.count("views/home/_imports.tmpl"))
	assert.Equal(t, 2, result.Stats().Cached)

	f.provider.Notifier().Notify("_imports.tmpl")
	f.pass(t)
	assert.Equal(t, 3, f.generator.count("views/home/index.tmpl"))
	assert.Equal(t, 2, f.generator.count("views/about.tmpl"))
	assert.Equal(t, 2, f.generator.count("_imports.tmpl"))
}

func TestCompileTemplates_FixingTemplateRecoversPass(t *testing.T) {
	f := newFixture(fstest.MapFS{
		"views/home/bad.tmpl": {Data: []byte("Hello ${"), ModTime: modTime},
	})

	manifest, _, _ := f.pass(t)
	require.Nil(t, manifest)

	// Failures are cached like successes until the file changes.
	manifest, _, h := f.pass(t)
	require.Nil(t, manifest)
	assert.NotEmpty(t, h.Diagnostics())
	assert.Equal(t, 1, f.generator.count("views/home/bad.tmpl"))

	f.tree["views/home/bad.tmpl"] = &fstest.MapFile{Data: []byte("Hello ${name}"), ModTime: modTime}
	f.provider.Notifier().Notify("views/home/bad.tmpl")

	manifest, _, h = f.pass(t)
	require.NotNil(t, manifest)
	assert.Empty(t, h.Diagnostics())
	assert.Equal(t, "templates.ViewsHomeBad", manifest.Files[0].FullTypeName)
}
