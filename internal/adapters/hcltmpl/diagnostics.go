// Package hcltmpl implements template code generation and rendering on HCL native templates.
package hcltmpl

import (
	"github.com/hashicorp/hcl/v2"
	"go.trai.ch/stencil/internal/core/domain"
)

// convertDiagnostics maps HCL diagnostics onto domain diagnostics attributed to path.
func convertDiagnostics(path string, diags hcl.Diagnostics) []domain.Diagnostic {
	out := make([]domain.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, convertDiagnostic(path, d))
	}
	return out
}

func convertDiagnostic(path string, d *hcl.Diagnostic) domain.Diagnostic {
	msg := d.Summary
	if d.Detail != "" {
		msg += ": " + d.Detail
	}

	severity := domain.SeverityError
	if d.Severity == hcl.DiagWarning {
		severity = domain.SeverityWarning
	}

	loc := domain.Location{Path: path}
	if d.Subject != nil {
		loc.Line = d.Subject.Start.Line
		loc.Column = d.Subject.Start.Column
	}

	return domain.Diagnostic{
		SourcePath: path,
		Message:    msg,
		Severity:   severity,
		Location:   loc,
	}
}

// onlyErrors drops warnings.
func onlyErrors(diags hcl.Diagnostics) hcl.Diagnostics {
	var out hcl.Diagnostics
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			out = append(out, d)
		}
	}
	return out
}
