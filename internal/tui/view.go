package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BartekS5/osmeac/internal/fields"
	"github.com/BartekS5/osmeac/internal/render"
	"github.com/BartekS5/osmeac/pkg/models"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	missionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("110"))
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const dataMarker = "●"

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	form := m.form()
	preview := paneStyle.Render(m.preview.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", preview))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab/↓ next · shift+tab/↑ prev · pgup/pgdn section · ctrl+f/b scroll · ctrl+n new · ctrl+o example · esc quit"))
	return b.String()
}

func (m *Model) tabs() string {
	parts := make([]string, 0, len(m.sections))
	for i, s := range m.sections {
		label := s.title
		if fields.HasData(&m.order, s.id) {
			label += " " + dataMarker
		}
		if i == m.active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) form() string {
	s := m.current()
	if s == nil {
		return "no fields"
	}

	var b strings.Builder
	for i, fp := range s.fields {
		label := labelStyle.Render(fp.Field)
		if i == m.focus {
			label = focusStyle.Render("› " + fp.Field)
		}
		fmt.Fprintf(&b, "%s\n%s\n", label, s.inputs[i].View())
	}
	if s.id == models.SectionMission {
		b.WriteString("\n")
		b.WriteString(missionStyle.Render(render.MissionInline(m.order.Mission)))
		b.WriteString("\n")
	}
	return b.String()
}
