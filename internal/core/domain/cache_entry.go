package domain

// CacheEntry is the memoized outcome of compiling one template.
//
// A nil *CacheEntry stored in the cache is a valid entry meaning the template compiled without
// diagnostics but contributes nothing to the artifact. It is not a cache miss.
type CacheEntry struct {
	Unit        *CompiledUnit
	Diagnostics []Diagnostic
}

// NewSuccessEntry creates an entry holding a compiled unit.
func NewSuccessEntry(unit *CompiledUnit) *CacheEntry {
	return &CacheEntry{Unit: unit}
}

// NewFailureEntry creates an entry holding the diagnostics of a failed template.
func NewFailureEntry(diagnostics []Diagnostic) *CacheEntry {
	return &CacheEntry{Diagnostics: diagnostics}
}

// Success reports whether the entry holds a compiled unit.
func (e *CacheEntry) Success() bool {
	return e != nil && e.Unit != nil
}

// Failed reports whether the entry carries diagnostics.
func (e *CacheEntry) Failed() bool {
	return e != nil && len(e.Diagnostics) > 0
}
