package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stencil/internal/adapters/cache"
	"go.trai.ch/stencil/internal/adapters/cas"
	"go.trai.ch/stencil/internal/adapters/fs"
	"go.trai.ch/stencil/internal/adapters/gocompiler"
	"go.trai.ch/stencil/internal/adapters/hcltmpl"
	"go.trai.ch/stencil/internal/adapters/telemetry"
	"go.trai.ch/stencil/internal/app"
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/stencil/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newApplication(loader ports.ConfigLoader, log ports.Logger) *app.App {
	hasher := fs.NewHasher()
	return app.New(app.Dependencies{
		ConfigLoader: loader,
		Logger:       log,
		Cache:        cache.NewMemory(),
		Builder:      hcltmpl.NewSyntaxBuilder(),
		Hasher:       hasher,
		Compiler:     gocompiler.New(),
		Store:        cas.NewStore(),
		Verifier:     fs.NewVerifier(hasher),
		Telemetry:    telemetry.NewNoOp(),
	})
}

func providerFor(a *app.App, log ports.Logger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:       a,
			Logger:    log,
			Telemetry: telemetry.NewNoOp(),
		}, func() {}, nil
	}
}

func settingsFor(dir string) domain.Settings {
	return domain.Settings{
		Root:                 dir,
		Extension:            ".tmpl",
		ImportsName:          "_imports",
		Output:               filepath.Join(dir, ".stencil"),
		AssemblyName:         "site",
		PackageName:          "templates",
		HashAlgorithmVersion: domain.HashAlgorithmVersion1,
		Ignore:               fs.DefaultIgnores,
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr,
		providerFor(newApplication(mocks.NewMockConfigLoader(ctrl), mockLogger), mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "stencil version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLoader.EXPECT().Load("stencil.yaml").Return(domain.Settings{}, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"precompile", "--progress", "plain"}, new(bytes.Buffer), new(bytes.Buffer),
		providerFor(newApplication(mockLoader, mockLogger), mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_PrecompilationFailed verifies that reported diagnostics are not logged again.
func TestRun_PrecompilationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.tmpl"), []byte("Hello ${"), 0o600))

	mockLoader.EXPECT().Load("site.yaml").Return(settingsFor(dir), nil)
	mockLogger.EXPECT().Error(gomock.Any()).Times(0)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"precompile", "-c", "site.yaml", "--progress", "plain"}, new(bytes.Buffer), stderr,
		providerFor(newApplication(mockLoader, mockLogger), mockLogger))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "bad.tmpl")
}

// TestRun_Precompile verifies a successful pass prints the resource name.
func TestRun_Precompile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.tmpl"), []byte("Hello ${name}"), 0o600))

	mockLoader.EXPECT().Load("stencil.yaml").Return(settingsFor(dir), nil)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"precompile", "--progress", "plain"}, stdout, new(bytes.Buffer),
		providerFor(newApplication(mockLoader, mockLogger), mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "site.Precompiler.")
	assert.FileExists(t, filepath.Join(dir, ".stencil", cas.ManifestFile))
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	blockCh := make(chan struct{})

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (domain.Settings, error) {
		select {
		case <-blockCh:
			return domain.Settings{}, context.Canceled
		case <-time.After(5 * time.Second):
			return domain.Settings{}, errors.New("timeout in mock")
		}
	})

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"precompile"}, new(bytes.Buffer), new(bytes.Buffer),
			providerFor(newApplication(mockLoader, mockLogger), mockLogger))
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
