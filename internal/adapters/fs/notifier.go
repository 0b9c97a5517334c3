package fs

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
)

var _ ports.Trigger = (*Trigger)(nil)

// Trigger is a one-shot change notification handed out by a Notifier.
type Trigger struct {
	mu        sync.Mutex
	fired     bool
	callbacks []func()

	notifier *Notifier
	key      domain.InternedString
}

// HasChanged reports whether the trigger has fired.
func (t *Trigger) HasChanged() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// OnChange registers fn to run when the trigger fires. If it already fired, fn runs immediately.
func (t *Trigger) OnChange(fn func()) {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		fn()
		return
	}
	t.callbacks = append(t.callbacks, fn)
	t.mu.Unlock()
}

// Release unregisters a trigger that is no longer needed. It will not fire afterwards.
func (t *Trigger) Release() {
	if t.notifier != nil {
		t.notifier.release(t)
	}
}

func (t *Trigger) fire() {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	callbacks := t.callbacks
	t.callbacks = nil
	t.mu.Unlock()

	// Callbacks run outside the lock so they may register on other triggers.
	for _, fn := range callbacks {
		fn()
	}
}

// Notifier hands out triggers keyed by case-insensitive relative path and fires them on change.
type Notifier struct {
	mu       sync.Mutex
	triggers map[domain.InternedString][]*Trigger
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		triggers: make(map[domain.InternedString][]*Trigger),
	}
}

// Watch returns a new trigger for path.
func (n *Notifier) Watch(path string) ports.Trigger {
	key := domain.PathKey(path)
	t := &Trigger{notifier: n, key: key}

	n.mu.Lock()
	n.triggers[key] = append(n.triggers[key], t)
	n.mu.Unlock()

	return t
}

// Notify fires every trigger registered for the given paths and returns how many fired.
func (n *Notifier) Notify(paths ...string) int {
	var fired []*Trigger

	n.mu.Lock()
	for _, p := range paths {
		key := domain.PathKey(p)
		fired = append(fired, n.triggers[key]...)
		delete(n.triggers, key)
	}
	n.mu.Unlock()

	for _, t := range fired {
		t.fire()
	}
	return len(fired)
}

// NotifyTree fires every trigger registered for dir or any path below it.
// It is used when a directory is removed or renamed.
func (n *Notifier) NotifyTree(dir string) int {
	prefix := domain.PathKey(dir).String()
	var fired []*Trigger

	n.mu.Lock()
	for key, triggers := range n.triggers {
		k := key.String()
		if prefix == "" || k == prefix || strings.HasPrefix(k, prefix+"/") {
			fired = append(fired, triggers...)
			delete(n.triggers, key)
		}
	}
	n.mu.Unlock()

	for _, t := range fired {
		t.fire()
	}
	return len(fired)
}

// Pending returns the number of triggers that have not fired yet.
func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	count := 0
	for _, triggers := range n.triggers {
		count += len(triggers)
	}
	return count
}

func (n *Notifier) release(t *Trigger) {
	n.mu.Lock()
	defer n.mu.Unlock()

	remaining := slices.DeleteFunc(n.triggers[t.key], func(other *Trigger) bool { return other == t })
	if len(remaining) == 0 {
		delete(n.triggers, t.key)
		return
	}
	n.triggers[t.key] = remaining
}
