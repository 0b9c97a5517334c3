package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stencil/internal/adapters/fs"
)

func TestHierarchy_ImportsLocations(t *testing.T) {
	h := fs.NewHierarchy("_imports.tmpl")

	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "nested template",
			path: "views/home/index.tmpl",
			want: []string{"views/home/_imports.tmpl", "views/_imports.tmpl", "_imports.tmpl"},
		},
		{
			name: "root template",
			path: "index.tmpl",
			want: []string{"_imports.tmpl"},
		},
		{
			name: "backslash separators",
			path: `views\index.tmpl`,
			want: []string{"views/_imports.tmpl", "_imports.tmpl"},
		},
		{
			name: "imports file excludes itself",
			path: "views/_Imports.tmpl",
			want: []string{"_imports.tmpl"},
		},
		{
			name: "root imports file",
			path: "_imports.tmpl",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.ImportsLocations(tt.path))
		})
	}
}

