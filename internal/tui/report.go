package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/stencil/internal/core/domain"
)

// ColorProfile returns the color profile of the environment, honoring NO_COLOR.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Report prints the outcome of a pass for humans.
type Report struct {
	w      io.Writer
	styles styles
}

// NewReport creates a Report writing to w. Options configure the color output of w.
func NewReport(w io.Writer, opts ...termenv.OutputOption) *Report {
	return &Report{
		w:      w,
		styles: newStyles(lipgloss.NewRenderer(w, opts...)),
	}
}

// Diagnostics prints one line per diagnostic, in the order given.
func (r *Report) Diagnostics(diags []domain.Diagnostic) {
	for _, d := range diags {
		var icon string
		switch d.Severity {
		case domain.SeverityWarning:
			icon = r.styles.warning.Render("!")
		case domain.SeverityInfo:
			icon = r.styles.muted.Render("i")
		default:
			icon = r.styles.failed.Render("✗")
		}
		_, _ = fmt.Fprintf(r.w, "%s %s\n", icon, d.String())
	}
}

// Summary prints the template counts of a pass and whether it produced an artifact.
func (r *Report) Summary(stats domain.PassStats, failed bool) {
	outcome := r.styles.compiled.Render("✓ precompiled")
	if failed {
		outcome = r.styles.failed.Render("✗ precompilation failed")
	}
	_, _ = fmt.Fprintf(r.w, "%s %s\n", outcome, r.styles.muted.Render(stats.String()))
}

// Stale prints the records that no longer match their source files.
func (r *Report) Stale(records []domain.FileRecord) {
	if len(records) == 0 {
		_, _ = fmt.Fprintf(r.w, "%s\n", r.styles.compiled.Render("✓ precompiled templates are up to date"))
		return
	}
	for _, rec := range records {
		_, _ = fmt.Fprintf(r.w, "%s %s %s\n",
			r.styles.failed.Render("✗"), rec.RelativePath, r.styles.muted.Render(rec.FullTypeName))
	}
}
