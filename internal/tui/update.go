package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.preview.Width = msg.Width/2 - 2
		m.preview.Height = msg.Height - 6
		if m.preview.Width < 20 {
			m.preview.Width = 20
		}
		if m.preview.Height < 5 {
			m.preview.Height = 5
		}
		return m, nil

	case previewMsg:
		m.preview.SetContent(msg.text)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.debounce != nil {
				m.debounce.Stop()
			}
			return m, tea.Quit
		case "tab", "down", "enter":
			m.moveField(1)
			return m, nil
		case "shift+tab", "up":
			m.moveField(-1)
			return m, nil
		case "ctrl+right", "pgdown":
			m.moveSection(1)
			return m, nil
		case "ctrl+left", "pgup":
			m.moveSection(-1)
			return m, nil
		case "ctrl+n":
			if err := m.store.ClearCurrent(m.ctx); err != nil {
				logger.Warnf("Failed to clear current order: %v", err)
			}
			m.reset(models.EmptyOrder())
			m.status = "started a new order"
			return m, nil
		case "ctrl+o":
			m.reset(models.ExampleOrder())
			if err := m.store.SaveCurrent(m.ctx, m.order); err != nil {
				logger.Warnf("Failed to persist current order: %v", err)
			}
			m.status = "loaded example order"
			return m, nil
		case "ctrl+f":
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(tea.KeyMsg{Type: tea.KeyPgDown})
			return m, cmd
		case "ctrl+b":
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(tea.KeyMsg{Type: tea.KeyPgUp})
			return m, cmd
		}
	}

	s := m.current()
	if s == nil || len(s.inputs) == 0 {
		return m, nil
	}
	before := s.inputs[m.focus].Value()
	var cmd tea.Cmd
	s.inputs[m.focus], cmd = s.inputs[m.focus].Update(msg)
	if after := s.inputs[m.focus].Value(); after != before {
		m.edit(s.fields[m.focus].Field, after)
	}
	return m, cmd
}
