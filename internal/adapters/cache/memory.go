// Package cache provides the in-process store of per-template precompilation outcomes.
package cache

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
)

var _ ports.PrecompilationCache = (*Memory)(nil)

// Stats is a snapshot of cache usage.
type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// Memory implements ports.PrecompilationCache with trigger based eviction.
type Memory struct {
	mu         sync.RWMutex
	entries    map[domain.InternedString]*slot
	generation uint64
	hits       atomic.Int64
	misses     atomic.Int64
}

// slot holds a stored entry. generation identifies the Set call that created it so triggers
// registered for a replaced entry cannot evict its successor.
type slot struct {
	entry      *domain.CacheEntry
	generation uint64
	triggers   []ports.Trigger
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[domain.InternedString]*slot),
	}
}

// Get returns the entry stored under key. An entry whose trigger already fired is evicted and
// reported as a miss.
func (m *Memory) Get(key domain.InternedString) (*domain.CacheEntry, bool) {
	m.mu.RLock()
	s, ok := m.entries[key]
	m.mu.RUnlock()

	if ok && s.expired() {
		m.evict(key, s.generation)
		ok = false
	}
	if !ok {
		m.misses.Add(1)
		return nil, false
	}
	m.hits.Add(1)
	return s.entry, true
}

// Set stores entry under key, replacing any previous entry. The entry is evicted once any of
// triggers fires.
func (m *Memory) Set(key domain.InternedString, entry *domain.CacheEntry, triggers ...ports.Trigger) {
	m.mu.Lock()
	m.generation++
	generation := m.generation
	m.entries[key] = &slot{
		entry:      entry,
		generation: generation,
		triggers:   triggers,
	}
	m.mu.Unlock()

	// Registered after unlocking: a trigger that already fired runs the callback immediately.
	for _, t := range triggers {
		t.OnChange(func() {
			m.evict(key, generation)
		})
	}
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Stats returns the current usage counters.
func (m *Memory) Stats() Stats {
	return Stats{
		Entries: m.Len(),
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
	}
}

func (m *Memory) evict(key domain.InternedString, generation uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.entries[key]; ok && s.generation == generation {
		delete(m.entries, key)
	}
}

func (s *slot) expired() bool {
	for _, t := range s.triggers {
		if t.HasChanged() {
			return true
		}
	}
	return false
}
