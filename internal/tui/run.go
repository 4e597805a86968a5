package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BartekS5/osmeac/internal/debounce"
	"github.com/BartekS5/osmeac/internal/store"
	"github.com/BartekS5/osmeac/pkg/models"
)

// Run starts the editor and blocks until the user quits. It returns the
// order as last edited.
func Run(ctx context.Context, st store.Store, table models.FieldTable, d *debounce.Debouncer) (models.Order, error) {
	m := New(ctx, st, table, d)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.SetSender(p.Send)

	if _, err := p.Run(); err != nil {
		return m.Order(), err
	}
	return m.Order(), nil
}
