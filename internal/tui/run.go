package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/the-truth-is-out-there/internal/common"
	"github.com/Veraticus/the-truth-is-out-there/internal/dataset"
)

// Run shows the dashboard until the user quits or ctx is cancelled.
func Run(ctx context.Context, store *dataset.Store, opts ...Option) error {
	if store.Len() == 0 {
		return common.NewUserError("Nothing to show. Run `truth import` first.", common.ErrNoRecords)
	}

	m, err := New(store, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
