package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/stencil/internal/core/domain"
)

// chromeLines is the number of lines taken by the header and the footer.
const chromeLines = 2

// TemplateState is the last known state of one template vertex.
type TemplateState struct {
	ID     string
	Name   string
	Status domain.TemplateStatus
}

// Model is the Bubble Tea model listing every template of a pass.
type Model struct {
	tape      TapeSource
	templates []TemplateState
	index     map[string]int
	width     int
	height    int
	spinner   spinner.Model
	styles    styles
	done      bool
}

// NewModel creates a new progress model reading from tape.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorIris)

	return &Model{
		tape:    tape,
		index:   make(map[string]int),
		spinner: s,
		styles:  newStyles(lipgloss.DefaultRenderer()),
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// Templates returns the known templates in the order they were first seen.
func (m *Model) Templates() []TemplateState {
	return m.templates
}

// Stats counts the terminal statuses of the known templates.
func (m *Model) Stats() domain.PassStats {
	var stats domain.PassStats
	for _, t := range m.templates {
		stats.Add(t.Status)
	}
	return stats
}

func (m *Model) apply(update *progrock.StatusUpdate) {
	if update == nil {
		return
	}
	for _, v := range update.Vertexes {
		status := vertexStatus(v)
		if i, ok := m.index[v.Id]; ok {
			// A later pass records the same template again and resets its status.
			m.templates[i].Status = status
			continue
		}
		m.index[v.Id] = len(m.templates)
		m.templates = append(m.templates, TemplateState{
			ID:     v.Id,
			Name:   v.Name,
			Status: status,
		})
	}
}

func vertexStatus(v *progrock.Vertex) domain.TemplateStatus {
	switch {
	case v.Completed == nil:
		return domain.TemplateStatusPending
	case v.Error != nil:
		return domain.TemplateStatusFailed
	case v.Cached:
		return domain.TemplateStatusCached
	default:
		return domain.TemplateStatusCompiled
	}
}

// View renders the header, the most recent templates that fit the window and a summary footer.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.styles.title.Render("stencil"))
	s.WriteString(" precompiling templates\n")

	start := 0
	if rows := m.height - chromeLines; m.height > 0 && len(m.templates) > rows {
		start = len(m.templates) - max(rows, 0)
	}

	for _, t := range m.templates[start:] {
		icon, style := m.icon(t.Status)
		fmt.Fprintf(&s, "%s %s\n", style.Render(icon), t.Name)
	}

	if m.done {
		s.WriteString(m.styles.muted.Render(m.Stats().String()))
	} else {
		fmt.Fprintf(&s, "%s %d templates", m.spinner.View(), len(m.templates))
	}
	s.WriteString("\n")
	return s.String()
}

func (m *Model) icon(status domain.TemplateStatus) (string, lipgloss.Style) {
	switch status {
	case domain.TemplateStatusCompiled:
		return "✓", m.styles.compiled
	case domain.TemplateStatusCached:
		return "⚡", m.styles.cached
	case domain.TemplateStatusFailed:
		return "✗", m.styles.failed
	case domain.TemplateStatusSkipped:
		return "○", m.styles.pending
	default:
		return m.spinner.View(), m.styles.running
	}
}
