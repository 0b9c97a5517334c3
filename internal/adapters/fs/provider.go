// Package fs provides file system adapters for discovering, watching and hashing templates.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileProvider = (*Provider)(nil)

// Provider implements ports.FileProvider over an io/fs.FS.
type Provider struct {
	fsys     iofs.FS
	root     string
	notifier *Notifier
}

// NewProvider creates a Provider serving fsys. root is the physical location of fsys and is only
// used to build paths for diagnostics; it may be empty for virtual trees.
func NewProvider(fsys iofs.FS, root string) *Provider {
	return &Provider{
		fsys:     fsys,
		root:     root,
		notifier: NewNotifier(),
	}
}

// NewDirProvider creates a Provider serving the directory root of the host file system.
func NewDirProvider(root string) (*Provider, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve content root"), "root", root)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat content root"), "root", abs)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.New("content root is not a directory"), "root", abs)
	}
	return NewProvider(os.DirFS(abs), abs), nil
}

// Root returns the physical root of the provider.
func (p *Provider) Root() string {
	return p.root
}

// Notifier returns the notifier that fires the provider's triggers.
func (p *Provider) Notifier() *Notifier {
	return p.notifier
}

// GetDirectoryContents lists the entries of the directory at dir in name order.
func (p *Provider) GetDirectoryContents(dir string) ([]domain.FileHandle, error) {
	name := fsPath(dir)
	entries, err := iofs.ReadDir(p.fsys, name)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	handles := make([]domain.FileHandle, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// The entry vanished between listing and stat.
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat directory entry"), "path", path.Join(name, entry.Name()))
		}
		handles = append(handles, p.newHandle(path.Join(name, entry.Name()), info))
	}
	return handles, nil
}

// GetFileInfo returns a handle for the file at file.
func (p *Provider) GetFileInfo(file string) (domain.FileHandle, error) {
	name := fsPath(file)
	info, err := iofs.Stat(p.fsys, name)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return &fileHandle{fsys: p.fsys, name: name, physical: p.physicalPath(name)}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", file)
	}
	return p.newHandle(name, info), nil
}

// Watch returns a trigger fired by the provider's notifier for file.
func (p *Provider) Watch(file string) ports.Trigger {
	return p.notifier.Watch(file)
}

func (p *Provider) newHandle(name string, info iofs.FileInfo) *fileHandle {
	return &fileHandle{
		fsys:     p.fsys,
		name:     name,
		info:     info,
		physical: p.physicalPath(name),
		exists:   true,
	}
}

func (p *Provider) physicalPath(name string) string {
	if p.root == "" {
		return ""
	}
	return filepath.Join(p.root, filepath.FromSlash(name))
}

// fsPath converts a root relative provider path to an io/fs path.
func fsPath(p string) string {
	p = domain.NormalizePath(p)
	if p == "" {
		return "."
	}
	return p
}

// fileHandle implements domain.FileHandle for entries of an io/fs.FS.
type fileHandle struct {
	fsys     iofs.FS
	name     string
	info     iofs.FileInfo
	physical string
	exists   bool
}

func (h *fileHandle) Name() string {
	return path.Base(h.name)
}

func (h *fileHandle) Exists() bool {
	return h.exists
}

func (h *fileHandle) IsDir() bool {
	return h.exists && h.info.IsDir()
}

func (h *fileHandle) Length() int64 {
	if !h.exists {
		return -1
	}
	return h.info.Size()
}

func (h *fileHandle) LastModified() time.Time {
	if !h.exists {
		return time.Time{}
	}
	return h.info.ModTime()
}

func (h *fileHandle) PhysicalPath() string {
	return h.physical
}

func (h *fileHandle) Open() (io.ReadCloser, error) {
	if !h.exists {
		return nil, zerr.With(zerr.Wrap(iofs.ErrNotExist, "failed to open file"), "path", h.name)
	}
	if h.info.IsDir() {
		return nil, zerr.With(zerr.New("cannot open a directory as a file"), "path", h.name)
	}
	f, err := h.fsys.Open(h.name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", h.name)
	}
	return f, nil
}
