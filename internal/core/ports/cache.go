package ports

import "go.trai.ch/stencil/internal/core/domain"

// PrecompilationCache stores per-template outcomes across passes.
// Implementations must be safe for concurrent use with disjoint keys.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type PrecompilationCache interface {
	// Get returns the stored entry for key. ok is false on a miss. A nil entry with ok true is a
	// valid stored value.
	Get(key domain.InternedString) (entry *domain.CacheEntry, ok bool)

	// Set stores entry under key. When any trigger fires, the entry is evicted.
	Set(key domain.InternedString, entry *domain.CacheEntry, triggers ...Trigger)
}
