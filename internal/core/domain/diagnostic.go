package domain

import (
	"fmt"
	"strings"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	// SeverityError marks a diagnostic that fails the pass.
	SeverityError Severity = iota
	// SeverityWarning marks a finding that does not stop the template from compiling.
	SeverityWarning
	// SeverityInfo marks an informational diagnostic.
	SeverityInfo
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		*s = SeverityError
	}
	return nil
}

// Location is a position inside a source file. Line and Column are 1-based, 0 means unknown.
type Location struct {
	Path   string `json:"path,omitzero"`
	Line   int    `json:"line,omitzero"`
	Column int    `json:"column,omitzero"`
}

// String renders the location as path:line:col.
func (l Location) String() string {
	switch {
	case l.Line == 0:
		return l.Path
	case l.Column == 0:
		return fmt.Sprintf("%s:%d", l.Path, l.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
	}
}

// Diagnostic is a problem found while compiling a template or the aggregated artifact.
type Diagnostic struct {
	SourcePath string   `json:"source_path"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	Location   Location `json:"location,omitzero"`
}

// String renders the diagnostic in the conventional compiler format.
func (d Diagnostic) String() string {
	loc := d.Location
	if loc.Path == "" {
		loc.Path = d.SourcePath
	}
	return fmt.Sprintf("%s: %s: %s", loc, d.Severity, d.Message)
}

// IsError reports whether the diagnostic fails the pass.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
