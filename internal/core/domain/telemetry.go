package domain

import (
	"fmt"
	"strings"
)

// TemplateStatus is the outcome of one template within a pass.
type TemplateStatus string

const (
	// TemplateStatusPending indicates the template has not been dispatched yet.
	TemplateStatusPending TemplateStatus = "pending"
	// TemplateStatusCompiled indicates the template was compiled during this pass.
	TemplateStatusCompiled TemplateStatus = "compiled"
	// TemplateStatusCached indicates the outcome was served from the precompilation cache.
	TemplateStatusCached TemplateStatus = "cached"
	// TemplateStatusFailed indicates the template produced diagnostics.
	TemplateStatusFailed TemplateStatus = "failed"
	// TemplateStatusSkipped indicates the template declared no usable type.
	TemplateStatusSkipped TemplateStatus = "skipped"
)

// IsTerminal reports whether the status is final for the pass.
func (s TemplateStatus) IsTerminal() bool {
	return s != TemplateStatusPending && s != ""
}

// NormalizeTemplateStatus converts a string to a TemplateStatus, defaulting to pending.
func NormalizeTemplateStatus(s string) TemplateStatus {
	switch st := TemplateStatus(strings.ToLower(s)); st {
	case TemplateStatusCompiled, TemplateStatusCached, TemplateStatusFailed, TemplateStatusSkipped:
		return st
	default:
		return TemplateStatusPending
	}
}

// PassStats summarizes the template outcomes of a pass.
type PassStats struct {
	Compiled int
	Cached   int
	Failed   int
	Skipped  int
}

// Add counts one template outcome.
func (p *PassStats) Add(status TemplateStatus) {
	switch status {
	case TemplateStatusCompiled:
		p.Compiled++
	case TemplateStatusCached:
		p.Cached++
	case TemplateStatusFailed:
		p.Failed++
	case TemplateStatusSkipped:
		p.Skipped++
	}
}

// Total returns the number of counted templates.
func (p PassStats) Total() int {
	return p.Compiled + p.Cached + p.Failed + p.Skipped
}

// String renders the stats for log output.
func (p PassStats) String() string {
	return fmt.Sprintf("%d templates: %d compiled, %d cached, %d failed, %d skipped",
		p.Total(), p.Compiled, p.Cached, p.Failed, p.Skipped)
}
