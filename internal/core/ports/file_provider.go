// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/stencil/internal/core/domain"

// FileProvider exposes a virtual file tree rooted at a content directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=file_provider.go -destination=mocks/mock_file_provider.go -package=mocks
type FileProvider interface {
	// GetDirectoryContents lists the entries of a directory relative to the root.
	// A missing directory yields an empty listing, not an error.
	GetDirectoryContents(path string) ([]domain.FileHandle, error)

	// GetFileInfo returns a handle for the file at path. Missing files yield a handle whose
	// Exists method returns false.
	GetFileInfo(path string) (domain.FileHandle, error)

	// Watch returns a trigger that fires once the file at path changes, is created or is removed.
	Watch(path string) Trigger
}

// Trigger is a one-shot change notification.
type Trigger interface {
	// HasChanged reports whether the trigger has fired.
	HasChanged() bool
	// OnChange registers fn to run when the trigger fires. If it already fired, fn runs immediately.
	OnChange(fn func())
}

// TemplateWalker discovers the templates of a file provider.
type TemplateWalker interface {
	// Walk returns every template below root in depth-first discovery order.
	// An empty tree yields an empty slice, not an error.
	Walk(root string) ([]domain.SourceFile, error)
}
