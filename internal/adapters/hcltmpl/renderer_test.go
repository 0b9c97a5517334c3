package hcltmpl_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stencil/internal/adapters/fs"
	"go.trai.ch/stencil/internal/adapters/hcltmpl"
	"go.trai.ch/stencil/internal/core/domain"
)

func newRenderer(tree fstest.MapFS) *hcltmpl.Renderer {
	provider := fs.NewProvider(tree, "")
	imports := hcltmpl.NewImports(provider, fs.NewHierarchy("_imports.tmpl"), "_imports.tmpl")
	return hcltmpl.NewRenderer(provider, imports)
}

func TestRenderer_Render(t *testing.T) {
	r := newRenderer(fstest.MapFS{
		"_imports.tmpl":         {Data: []byte(`greeting = "Hello"`)},
		"views/home/index.tmpl": {Data: []byte(`${greeting}, ${upper(name)}!%{ if name == "ada" } Welcome back.%{ endif }`)},
	})

	out, err := r.Render("views/home/index.tmpl", map[string]string{"name": "ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, ADA! Welcome back.", out)

	out, err = r.Render("/views/home/index.tmpl", map[string]string{"name": "bob", "greeting": "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "Hi, BOB!", out)
}

func TestRenderer_Render_MissingVariable(t *testing.T) {
	r := newRenderer(fstest.MapFS{
		"index.tmpl": {Data: []byte("Hello ${name}")},
	})

	_, err := r.Render("index.tmpl", nil)
	require.Error(t, err)

	var renderErr *hcltmpl.RenderError
	require.True(t, errors.As(err, &renderErr))
	require.NotEmpty(t, renderErr.Diagnostics)
	assert.Equal(t, "index.tmpl", renderErr.Diagnostics[0].SourcePath)
}

func TestRenderer_Render_NotFound(t *testing.T) {
	r := newRenderer(fstest.MapFS{})

	_, err := r.Render("missing.tmpl", nil)
	require.ErrorContains(t, err, domain.ErrTemplateNotFound.Error())
}
