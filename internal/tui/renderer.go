package tui

import (
	"context"

	"github.com/charmbracelet/bubbletea"
)

// Renderer runs the progress model as a Bubble Tea program.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

// NewRenderer creates a Renderer for model.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := r.program.Run()
		r.errCh <- err
	}()
	go func() {
		select {
		case <-ctx.Done():
			r.program.Quit()
		case <-done:
		}
	}()
	return nil
}

// Stop signals the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}
