package fs

import (
	"iter"
	"path"
	"strings"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
)

var _ ports.TemplateWalker = (*Walker)(nil)

// DefaultIgnores are the directory names the walker skips when no ignore list is configured.
var DefaultIgnores = []string{".git", ".jj"}

// Walker discovers template files in a file provider.
type Walker struct {
	provider  ports.FileProvider
	extension string
	ignores   []string
}

// NewWalker creates a Walker selecting files whose extension equals extension, compared
// case-insensitively. Directories whose name matches one of ignores are not entered.
func NewWalker(provider ports.FileProvider, extension string, ignores []string) *Walker {
	return &Walker{
		provider:  provider,
		extension: extension,
		ignores:   ignores,
	}
}

// Walk returns every template below root in depth-first discovery order.
// An empty tree yields an empty slice.
func (w *Walker) Walk(root string) ([]domain.SourceFile, error) {
	files := make([]domain.SourceFile, 0)
	for file, err := range w.WalkFiles(root) {
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// WalkFiles yields every template below root in depth-first discovery order.
// A listing error is yielded once and ends the iteration.
func (w *Walker) WalkFiles(root string) iter.Seq2[domain.SourceFile, error] {
	return func(yield func(domain.SourceFile, error) bool) {
		w.walkDir(domain.NormalizePath(root), yield)
	}
}

// walkDir returns false once the consumer stopped or an error was yielded.
func (w *Walker) walkDir(dir string, yield func(domain.SourceFile, error) bool) bool {
	entries, err := w.provider.GetDirectoryContents(dir)
	if err != nil {
		yield(domain.SourceFile{}, err)
		return false
	}

	for _, entry := range entries {
		rel := path.Join(dir, entry.Name())

		if entry.IsDir() {
			if w.shouldSkipDir(entry.Name()) {
				continue
			}
			if !w.walkDir(rel, yield) {
				return false
			}
			continue
		}

		if !w.matches(entry.Name()) {
			continue
		}
		if !yield(domain.NewSourceFile(rel, entry), nil) {
			return false
		}
	}
	return true
}

func (w *Walker) matches(name string) bool {
	return strings.EqualFold(path.Ext(name), w.extension)
}

// shouldSkipDir checks if a directory should be skipped based on ignore patterns.
func (w *Walker) shouldSkipDir(name string) bool {
	for _, ignore := range w.ignores {
		if matched, _ := path.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
