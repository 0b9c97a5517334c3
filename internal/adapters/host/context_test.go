package host_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stencil/internal/adapters/host"
	"go.trai.ch/stencil/internal/core/domain"
)

func TestContext(t *testing.T) {
	ref := domain.Reference{Name: "site", ImportPath: "example.com/site"}
	dep := domain.Reference{Name: "runtime", ImportPath: "example.com/runtime"}
	h := host.New("site", ref, dep)

	assert.Equal(t, "site", h.AssemblyName())
	assert.Equal(t, ref, h.Reference())
	assert.Equal(t, []domain.Reference{dep}, h.References())
	assert.False(t, h.HasErrors())

	h.AddGeneratedUnits(domain.GeneratedUnit{Path: "a.go"}, domain.GeneratedUnit{Path: "b.go"})
	h.AddResource(domain.Resource{
		Name:   "site.Precompiler.x.tar.gz",
		Public: true,
		Open:   func() io.Reader { return bytes.NewReader([]byte("data")) },
	})
	h.AddDiagnostics(domain.Diagnostic{Message: "heads up", Severity: domain.SeverityWarning})

	require.Len(t, h.GeneratedUnits(), 2)
	require.Len(t, h.Resources(), 1)
	assert.Equal(t, "site.Precompiler.x.tar.gz", h.Resources()[0].Name)
	assert.False(t, h.HasErrors())

	h.AddDiagnostics(domain.Diagnostic{Message: "broken", Severity: domain.SeverityError})
	assert.True(t, h.HasErrors())
	assert.Len(t, h.Diagnostics(), 2)
}

func TestContext_ReturnsCopies(t *testing.T) {
	h := host.New("site", domain.Reference{})
	h.AddGeneratedUnits(domain.GeneratedUnit{Path: "a.go"})

	units := h.GeneratedUnits()
	units[0].Path = "changed.go"

	assert.Equal(t, "a.go", h.GeneratedUnits()[0].Path)
}
