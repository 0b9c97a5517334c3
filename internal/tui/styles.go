package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")
	colorGreen = lipgloss.Color("42")
	colorRed   = lipgloss.Color("196")
	colorAmber = lipgloss.Color("214")
)

// styles is bound to one lipgloss renderer so that the report honors the color profile of its
// writer rather than the one of stdout.
type styles struct {
	pending  lipgloss.Style
	running  lipgloss.Style
	compiled lipgloss.Style
	cached   lipgloss.Style
	failed   lipgloss.Style
	warning  lipgloss.Style
	muted    lipgloss.Style
	title    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		pending:  r.NewStyle().Foreground(colorSlate),
		running:  r.NewStyle().Foreground(colorIris).Bold(true),
		compiled: r.NewStyle().Foreground(colorGreen),
		cached:   r.NewStyle().Foreground(colorSlate).Faint(true),
		failed:   r.NewStyle().Foreground(colorRed),
		warning:  r.NewStyle().Foreground(colorAmber),
		muted:    r.NewStyle().Foreground(colorSlate),
		title: r.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite),
	}
}
