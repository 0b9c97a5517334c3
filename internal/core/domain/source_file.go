// Package domain contains the core types of the precompilation pipeline.
package domain

import (
	"io"
	"path"
	"strings"
	"time"
)

// FileHandle is a read-only snapshot of a file or directory exposed by a file provider.
type FileHandle interface {
	// Name returns the base name of the entry.
	Name() string
	// Exists reports whether the entry exists. Handles for missing files are valid values.
	Exists() bool
	// IsDir reports whether the entry is a directory.
	IsDir() bool
	// Length returns the size in bytes.
	Length() int64
	// LastModified returns the modification time.
	LastModified() time.Time
	// PhysicalPath returns the location used in diagnostics. It may be empty for virtual files.
	PhysicalPath() string
	// Open returns a new stream over the file content. Callers close it.
	Open() (io.ReadCloser, error)
}

// SourceFile is a template discovered during a pass.
type SourceFile struct {
	RelativePath string
	File         FileHandle
}

// NewSourceFile creates a SourceFile with a normalized relative path.
func NewSourceFile(relativePath string, file FileHandle) SourceFile {
	return SourceFile{
		RelativePath: NormalizePath(relativePath),
		File:         file,
	}
}

// Key returns the cache identity of the file. Relative paths compare case-insensitively.
func (f SourceFile) Key() InternedString {
	return PathKey(f.RelativePath)
}

// Location returns the path reported in diagnostics for this file.
func (f SourceFile) Location() string {
	if f.File != nil {
		if p := f.File.PhysicalPath(); p != "" {
			return p
		}
	}
	return f.RelativePath
}

// NormalizePath converts a provider path to the slash separated, root relative form.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

// PathKey returns the interned, case-insensitive identity of a relative path.
func PathKey(p string) InternedString {
	return NewInternedString(strings.ToLower(NormalizePath(p)))
}

// LastModifiedUTC truncates a handle timestamp to the precision persisted in FileRecords.
func LastModifiedUTC(f FileHandle) time.Time {
	return f.LastModified().UTC().Truncate(time.Second)
}
