package domain

import "sync"

// PassResult holds the discovered files zipped 1:1 with their outcomes.
// Entries[i] and Statuses[i] belong to Files[i] and are written by exactly one worker, so they
// need no lock. A nil entry means the file contributes nothing. Diagnostics are merged through
// AddDiagnostics, the only synchronized state of a pass.
type PassResult struct {
	Files    []SourceFile
	Entries  []*CacheEntry
	Statuses []TemplateStatus

	mu          sync.Mutex
	diagnostics [][]Diagnostic
}

// NewPassResult allocates index-aligned slots for files.
func NewPassResult(files []SourceFile) *PassResult {
	statuses := make([]TemplateStatus, len(files))
	for i := range statuses {
		statuses[i] = TemplateStatusPending
	}
	return &PassResult{
		Files:       files,
		Entries:     make([]*CacheEntry, len(files)),
		Statuses:    statuses,
		diagnostics: make([][]Diagnostic, len(files)),
	}
}

// AddDiagnostics appends diagnostics to the bucket of Files[index]. Safe for concurrent use.
func (r *PassResult) AddDiagnostics(index int, diags ...Diagnostic) {
	if len(diags) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics[index] = append(r.diagnostics[index], diags...)
}

// Failed reports whether any file produced diagnostics.
func (r *PassResult) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, bucket := range r.diagnostics {
		if len(bucket) > 0 {
			return true
		}
	}
	return false
}

// Diagnostics returns every diagnostic of the pass in discovery order, regardless of the order
// in which workers finished.
func (r *PassResult) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	var diags []Diagnostic
	for _, bucket := range r.diagnostics {
		diags = append(diags, bucket...)
	}
	return diags
}

// Units returns the compiled units of successful files in discovery order.
func (r *PassResult) Units() []GeneratedUnit {
	units := make([]GeneratedUnit, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Success() {
			units = append(units, e.Unit.Unit)
		}
	}
	return units
}

// Records returns the FileRecords of successful files in discovery order.
func (r *PassResult) Records() []FileRecord {
	records := make([]FileRecord, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Success() {
			records = append(records, e.Unit.Record)
		}
	}
	return records
}

// Stats counts the template statuses of the pass.
func (r *PassResult) Stats() PassStats {
	var stats PassStats
	for _, s := range r.Statuses {
		stats.Add(s)
	}
	return stats
}
