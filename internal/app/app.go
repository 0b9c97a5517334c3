// Package app implements the application layer for stencil.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/stencil/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/detector"           //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/hcltmpl"            //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/host"               //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/stencil/internal/engine/precompiler"
	"go.trai.ch/stencil/internal/tui"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// Dependencies groups the process-wide services the App runs on.
type Dependencies struct {
	ConfigLoader ports.ConfigLoader
	Logger       ports.Logger
	Cache        ports.PrecompilationCache
	Builder      ports.SyntaxTreeBuilder
	Hasher       ports.ContentHasher
	Compiler     ports.Compiler
	Store        ports.ArtifactStore
	Verifier     *fs.Verifier
	Telemetry    ports.Telemetry
	Recorder     *progrock.Recorder
	Watcher      ports.Watcher
}

// App represents the main application logic.
type App struct {
	deps       Dependencies
	stderr     io.Writer
	teaOptions []tea.ProgramOption

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new App instance.
func New(deps Dependencies) *App {
	return &App{
		deps:     deps,
		stderr:   os.Stderr,
		sessions: make(map[string]*session),
	}
}

// WithOutput redirects the reports and the progress view of the App.
func (a *App) WithOutput(stderr io.Writer) *App {
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// ConfigOptions selects the configuration file and the values overriding it.
type ConfigOptions struct {
	// Path is the configuration file. Empty means stencil.yaml in the working directory.
	Path    string
	Symbols bool
	// Workers overrides the configured worker count when positive.
	Workers int
	// Output overrides the configured output directory when set.
	Output string
}

// PrecompileOptions configuration for the Precompile method.
type PrecompileOptions struct {
	Config ConfigOptions
	// Progress is one of auto, tty or plain.
	Progress string
	// Trace is a file receiving one JSON line per finished span. Empty disables tracing.
	Trace string
}

// Precompile runs one pass and saves its artifact. It returns domain.ErrPrecompilationFailed
// after reporting every diagnostic when the pass failed.
func (a *App) Precompile(ctx context.Context, opts PrecompileOptions) (*domain.ArtifactManifest, error) {
	s, err := a.session(opts.Config)
	if err != nil {
		return nil, err
	}

	if opts.Trace != "" {
		shutdown, err := setupTracing(opts.Trace)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				a.deps.Logger.Error(zerr.Wrap(err, "failed to flush trace"))
			}
		}()
	}

	var out outcome
	err = a.withProgress(ctx, opts.Progress, func(ctx context.Context) error {
		var err error
		out, err = a.pass(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a.conclude(s, out)
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Config ConfigOptions
}

// Watch runs a pass, then reruns one after every batch of template changes until ctx is done.
// The cache survives between passes, so only changed templates and the templates below a changed
// imports file are recompiled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	s, err := a.session(opts.Config)
	if err != nil {
		return err
	}

	run := func(ctx context.Context) {
		out, err := a.pass(ctx, s)
		if err == nil {
			_, err = a.conclude(s, out)
		}
		if err != nil && ctx.Err() == nil {
			a.deps.Logger.Error(err)
		}
	}
	run(ctx)

	if err := a.deps.Watcher.Start(ctx, s.settings.Root, watchIgnores(s.settings)); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.deps.Watcher.Stop()
	}()
	a.deps.Logger.Info("watching templates", "root", s.settings.Root)

	g, ctx := errgroup.WithContext(ctx)
	changes := make(chan []string)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		case <-ctx.Done():
		}
	})

	g.Go(func() error {
		for event := range a.deps.Watcher.Events() {
			if relevant(s.settings, event) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-changes:
				fired := 0
				for _, p := range paths {
					fired += s.provider.Notifier().NotifyTree(p)
				}
				a.deps.Logger.Info("templates changed", "paths", len(paths), "invalidated", fired)
				run(ctx)
				if c, ok := s.cache.(*cache.Memory); ok {
					st := c.Stats()
					a.deps.Logger.Info("cache usage", "entries", st.Entries, "hits", st.Hits, "misses", st.Misses)
				}
			}
		}
	})

	return g.Wait()
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	Config ConfigOptions
	// Paths restricts the check to these templates. Empty checks the whole manifest.
	Paths []string
}

// Verify checks the saved manifest against the template tree and returns
// domain.ErrStaleTemplates when any record no longer matches its source file.
// A requested path missing from the manifest yields domain.ErrTemplateNotFound.
func (a *App) Verify(_ context.Context, opts VerifyOptions) ([]domain.FileRecord, error) {
	s, err := a.session(opts.Config)
	if err != nil {
		return nil, err
	}

	manifest, err := a.deps.Store.LoadManifest(s.settings.Output)
	if err != nil {
		return nil, err
	}

	if len(opts.Paths) > 0 {
		selected := &domain.ArtifactManifest{
			BinaryResourceName: manifest.BinaryResourceName,
			DebugResourceName:  manifest.DebugResourceName,
		}
		for _, p := range opts.Paths {
			rec, ok := manifest.Lookup(p)
			if !ok {
				return nil, zerr.With(zerr.Wrap(domain.ErrTemplateNotFound, "template is not precompiled"), "path", p)
			}
			selected.Files = append(selected.Files, rec)
		}
		manifest = selected
	}

	stale, err := a.deps.Verifier.VerifyManifest(s.provider, manifest)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to verify manifest")
	}

	tui.NewReport(a.stderr, termOptions(a.stderr)...).Stale(stale)
	if len(stale) > 0 {
		return stale, zerr.With(zerr.Wrap(domain.ErrStaleTemplates, "verification failed"), "count", len(stale))
	}
	return nil, nil
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	Config ConfigOptions
	// Path is the template to render, relative to the template root.
	Path string
	// Vars override the imports defaults.
	Vars map[string]string
}

// Render evaluates one template from the tree without compiling it.
func (a *App) Render(_ context.Context, opts RenderOptions) (string, error) {
	s, err := a.session(opts.Config)
	if err != nil {
		return "", err
	}
	return hcltmpl.NewRenderer(s.provider, s.imports).Render(opts.Path, opts.Vars)
}

// session is the per tree state of the App. The provider and its notifier outlive a pass so that
// cached entries stay valid until their triggers fire.
type session struct {
	settings    domain.Settings
	cache       ports.PrecompilationCache
	provider    *fs.Provider
	imports     *hcltmpl.Imports
	precompiler *precompiler.Precompiler
}

func (a *App) session(opts ConfigOptions) (*session, error) {
	settings, err := a.settings(opts)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%+v", settings)

	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.sessions[key]; ok {
		return s, nil
	}

	provider, err := fs.NewDirProvider(settings.Root)
	if err != nil {
		return nil, err
	}

	// Cache keys are relative to the root, so only the first tree shares the process cache.
	c := a.deps.Cache
	if len(a.sessions) > 0 {
		c = cache.NewMemory()
	}

	hierarchy := fs.NewHierarchy(settings.ImportsFileName())
	imports := hcltmpl.NewImports(provider, hierarchy, settings.ImportsFileName())
	s := &session{
		settings: settings,
		cache:    c,
		provider: provider,
		imports:  imports,
		precompiler: precompiler.New(precompiler.Pipeline{
			Provider:  provider,
			Walker:    fs.NewWalker(provider, settings.Extension, settings.Ignore),
			Hierarchy: hierarchy,
			Generator: hcltmpl.NewGenerator(imports, settings.PackageName),
			Builder:   a.deps.Builder,
			Hasher:    a.deps.Hasher,
			Compiler:  a.deps.Compiler,
		}, c, a.deps.Telemetry, settings),
	}
	a.sessions[key] = s
	return s, nil
}

func (a *App) settings(opts ConfigOptions) (domain.Settings, error) {
	file := opts.Path
	if file == "" {
		file = config.DefaultFilename
	}

	settings, err := a.deps.ConfigLoader.Load(file)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Symbols {
		settings.GenerateSymbols = true
	}
	if opts.Workers > 0 {
		settings.Workers = opts.Workers
	}
	if opts.Output != "" {
		out, err := filepath.Abs(opts.Output)
		if err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to resolve output directory"), "path", opts.Output)
		}
		settings.Output = out
	}
	return settings, nil
}

// outcome is what a pass left on its host.
type outcome struct {
	manifest *domain.ArtifactManifest
	result   *domain.PassResult
	host     *host.Context
}

func (a *App) pass(ctx context.Context, s *session) (outcome, error) {
	h := host.New(s.settings.AssemblyName, domain.Reference{
		Name:       s.settings.PackageName,
		ImportPath: path.Join(s.settings.AssemblyName, s.settings.PackageName),
	})

	manifest, result, err := s.precompiler.Run(ctx, h)
	if err != nil {
		return outcome{}, zerr.Wrap(err, "precompilation pass failed")
	}
	return outcome{manifest: manifest, result: result, host: h}, nil
}

// conclude reports a finished pass and saves its artifact.
func (a *App) conclude(s *session, out outcome) (*domain.ArtifactManifest, error) {
	if out.result == nil {
		a.deps.Logger.Warn("no templates found", "root", s.settings.Root, "extension", s.settings.Extension)
		return nil, nil
	}

	diags := out.host.Diagnostics()
	failed := out.manifest == nil && out.host.HasErrors()

	report := tui.NewReport(a.stderr, termOptions(a.stderr)...)
	report.Diagnostics(diags)
	report.Summary(out.result.Stats(), failed)

	if failed {
		return nil, zerr.With(zerr.Wrap(domain.ErrPrecompilationFailed, "pass failed"), "diagnostics", len(diags))
	}
	if out.manifest == nil {
		a.deps.Logger.Info("no template declares a type, nothing to emit", "root", s.settings.Root)
		return nil, nil
	}

	if err := a.deps.Store.Save(s.settings.Output, out.host, out.manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to save artifact")
	}
	a.deps.Logger.Info("artifact saved",
		"output", s.settings.Output,
		"resource", out.manifest.BinaryResourceName,
		"templates", len(out.manifest.Files))
	return out.manifest, nil
}

// withProgress runs fn while the interactive view follows the recorder, when the output mode
// asks for it.
func (a *App) withProgress(ctx context.Context, mode string, fn func(context.Context) error) error {
	f, _ := a.stderr.(*os.File)
	if detector.ResolveMode(detector.DetectEnvironment(f), mode) != detector.ModeTTY {
		return fn(ctx)
	}

	stream := a.deps.Recorder.Subscribe()
	opts := append([]tea.ProgramOption{tea.WithOutput(a.stderr)}, a.teaOptions...)
	renderer := tui.NewRenderer(tui.NewModel(stream), opts...)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		// Ending the stream lets the view drain the last updates and quit.
		defer func() {
			_ = stream.Close()
		}()
		return fn(ctx)
	})

	return g.Wait()
}

// setupTracing installs a tracer provider exporting spans to file as JSON lines.
func setupTracing(file string) (func(context.Context) error, error) {
	f, err := os.Create(file) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create trace file"), "path", file)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(telemetry.NewJSONExporter(f)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// termOptions colors reports written to a terminal and keeps everything else plain.
func termOptions(w io.Writer) []termenv.OutputOption {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return []termenv.OutputOption{termenv.WithProfile(tui.ColorProfile())}
	}
	return []termenv.OutputOption{termenv.WithProfile(termenv.Ascii)}
}

// watchIgnores adds the output directory to the ignored names when it lives below the root.
func watchIgnores(s domain.Settings) []string {
	ignores := slices.Clone(s.Ignore)
	rel, err := filepath.Rel(s.Root, s.Output)
	if err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		ignores = append(ignores, strings.Split(filepath.ToSlash(rel), "/")[0])
	}
	return ignores
}

// relevant reports whether event can change the outcome of a pass. Removals and renames may hit
// directories, so they always count.
func relevant(s domain.Settings, event ports.WatchEvent) bool {
	if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
		return true
	}
	return strings.EqualFold(path.Ext(event.Path), s.Extension)
}
