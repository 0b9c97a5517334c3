// export_test.go exports private functions for white-box testing.
package watcher

import (
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stencil/internal/core/ports"
)

// NewRootedWatcher returns a watcher with root and ignores set, without starting it.
func NewRootedWatcher(root string, ignores []string) *Watcher {
	return &Watcher{root: root, ignores: ignores}
}

// ConvertEvent exposes convertEvent for testing.
func (w *Watcher) ConvertEvent(event fsnotify.Event) *ports.WatchEvent {
	return w.convertEvent(event)
}
