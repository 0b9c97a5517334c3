package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements template tree watching using fsnotify.
type Watcher struct {
	logger ports.Logger

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	root      string
	ignores   []string
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher. The underlying inotify handle is only
// acquired by Start.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Start begins watching the given root directory recursively. A stopped watcher can be started
// again; each Start opens a new event stream.
func (w *Watcher) Start(ctx context.Context, root string, ignores []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(zerr.New("watcher already started"), "root", w.root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve watch root")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}

	w.fsWatcher = fsWatcher
	w.root = abs
	w.ignores = ignores
	events := make(chan ports.WatchEvent, eventChannelBuffer)

	for dir := range w.watchRecursively(abs) {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			w.fsWatcher = nil
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	w.events = events
	go w.processEvents(ctx, fsWatcher, events)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	return err
}

// Events returns an iterator over the events of the current Start. It ends once the watcher
// stops, and is empty before the first Start.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	w.mu.Lock()
	events := w.events
	w.mu.Unlock()

	return func(yield func(ports.WatchEvent) bool) {
		if events == nil {
			return
		}
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				// Continue walking even if there's an error accessing a directory.
				return nil //nolint:nilerr // Problematic directories are skipped
			}
			if d.IsDir() {
				if p != root && w.shouldSkip(d.Name()) {
					return fs.SkipDir
				}
				if !yield(p) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

func (w *Watcher) shouldSkip(name string) bool {
	for _, ignore := range w.ignores {
		if matched, _ := path.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

// ignored reports whether any segment of the relative path is ignored.
func (w *Watcher) ignored(rel string) bool {
	for _, segment := range strings.Split(rel, "/") {
		if w.shouldSkip(segment) {
			return true
		}
	}
	return false
}

// processEvents converts raw fsnotify events into ports.WatchEvent values.
//
//nolint:cyclop // One branch per fsnotify channel and event kind
func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher, events chan<- ports.WatchEvent) {
	defer close(events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := w.convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case events <- *watchEvent:
			case <-ctx.Done():
				return
			}

			// New directories are watched as well so templates created inside them are seen.
			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.shouldSkip(info.Name()) {
					for dir := range w.watchRecursively(event.Name) {
						_ = fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent relative to the root.
// Events outside the root or below an ignored directory yield nil.
func (w *Watcher) convertEvent(event fsnotify.Event) *ports.WatchEvent {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || w.ignored(rel) {
		return nil
	}

	switch {
	case event.Has(fsnotify.Write):
		return &ports.WatchEvent{Path: rel, Operation: ports.OpWrite}
	case event.Has(fsnotify.Create):
		return &ports.WatchEvent{Path: rel, Operation: ports.OpCreate}
	case event.Has(fsnotify.Remove):
		return &ports.WatchEvent{Path: rel, Operation: ports.OpRemove}
	case event.Has(fsnotify.Rename):
		return &ports.WatchEvent{Path: rel, Operation: ports.OpRename}
	default:
		return nil
	}
}
