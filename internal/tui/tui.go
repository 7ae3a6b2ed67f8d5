// Package tui implements the interactive results browser: a BubbleTea
// app with tabbed views over a completed analysis run.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/plexus/internal/analysis"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program browsing the given result.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(res *analysis.Result, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(NewModel(res), allOpts...)
}

// Run creates and runs a browser over the result, blocking until it
// exits.
func Run(res *analysis.Result) error {
	if _, err := NewProgram(res).Run(); err != nil {
		return fmt.Errorf("results browser: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the
// given writer. Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
