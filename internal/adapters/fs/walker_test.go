package fs_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stencil/internal/adapters/fs"
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
)

func relativePaths(files []domain.SourceFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.RelativePath)
	}
	return paths
}

func TestWalker_Walk(t *testing.T) {
	provider := fs.NewProvider(testTree(), "")
	walker := fs.NewWalker(provider, ".tmpl", fs.DefaultIgnores)

	files, err := walker.Walk("")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"_imports.tmpl",
		"views/_imports.tmpl",
		"views/home/About.TMPL",
		"views/home/index.tmpl",
		"views/shared/nav.tmpl",
	}, relativePaths(files))

	for _, f := range files {
		assert.True(t, f.File.Exists())
	}
}

func TestWalker_Walk_Subtree(t *testing.T) {
	provider := fs.NewProvider(testTree(), "")
	walker := fs.NewWalker(provider, ".tmpl", fs.DefaultIgnores)

	files, err := walker.Walk("/views/shared")
	require.NoError(t, err)
	assert.Equal(t, []string{"views/shared/nav.tmpl"}, relativePaths(files))
}

func TestWalker_Walk_EmptyTree(t *testing.T) {
	provider := fs.NewProvider(fstest.MapFS{}, "")
	walker := fs.NewWalker(provider, ".tmpl", nil)

	files, err := walker.Walk("")
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestWalker_Walk_NoIgnores(t *testing.T) {
	provider := fs.NewProvider(testTree(), "")
	walker := fs.NewWalker(provider, ".tmpl", nil)

	files, err := walker.Walk("")
	require.NoError(t, err)
	assert.Contains(t, relativePaths(files), ".git/hooks/commit.tmpl")
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	provider := fs.NewProvider(testTree(), "")
	walker := fs.NewWalker(provider, ".tmpl", fs.DefaultIgnores)

	var seen []string
	for file, err := range walker.WalkFiles("") {
		require.NoError(t, err)
		seen = append(seen, file.RelativePath)
		if len(seen) == 2 {
			break
		}
	}
	assert.Len(t, seen, 2)
}

type failingProvider struct {
	ports.FileProvider
}

func (failingProvider) GetDirectoryContents(string) ([]domain.FileHandle, error) {
	return nil, errors.New("permission denied")
}

func TestWalker_Walk_ListingError(t *testing.T) {
	walker := fs.NewWalker(failingProvider{}, ".tmpl", nil)

	files, err := walker.Walk("")
	require.Error(t, err)
	assert.Nil(t, files)
}
