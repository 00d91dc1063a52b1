package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a board program over q using the alternate screen.
func NewProgram(ctx context.Context, q Quest, km KeyMap, opts ...tea.ProgramOption) *Program {
	model := NewBoardModel(ctx, q)
	model.Keys = km

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(model, allOpts...)
}

// Run runs the board until the user quits. A read-only board cannot
// record events or save.
func Run(ctx context.Context, q Quest, readOnly bool) error {
	km := DefaultKeyMap()
	if readOnly {
		km = ReadOnlyKeyMap()
	}
	_, err := NewProgram(ctx, q, km).Run()
	return err
}
