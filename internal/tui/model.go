// Package tui is the interactive order editor: one tab per section, one
// input per field, and a plain-text preview that follows the edits.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BartekS5/osmeac/internal/debounce"
	"github.com/BartekS5/osmeac/internal/fields"
	"github.com/BartekS5/osmeac/internal/render"
	"github.com/BartekS5/osmeac/internal/store"
	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

// previewMsg carries a rendered document back into the update loop.
type previewMsg struct {
	text string
}

type section struct {
	id     string
	title  string
	fields models.FieldTable
	inputs []textinput.Model
}

// Model is the editor state. The order being edited belongs to the model;
// edits go through the mapper and are persisted as they happen.
type Model struct {
	ctx    context.Context
	store  store.Store
	mapper *fields.Mapper

	order    models.Order
	sections []section
	active   int // section index
	focus    int // input index inside the active section

	preview  viewport.Model
	debounce *debounce.Debouncer
	send     func(tea.Msg)

	status string
	width  int
	height int
}

// New builds an editor over the store's current order. Fields are grouped
// into tabs by the first segment of their path.
func New(ctx context.Context, st store.Store, table models.FieldTable, d *debounce.Debouncer) *Model {
	m := &Model{
		ctx:      ctx,
		store:    st,
		mapper:   fields.NewMapper(table),
		order:    st.LoadCurrent(ctx),
		preview:  viewport.New(60, 20),
		debounce: d,
	}
	m.sections = buildSections(table)

	form := m.mapper.Fields(&m.order)
	for si := range m.sections {
		s := &m.sections[si]
		for _, fp := range s.fields {
			in := textinput.New()
			in.Prompt = ""
			in.Placeholder = fp.Field
			in.CharLimit = 0
			in.Width = 40
			in.SetValue(form[fp.Field])
			s.inputs = append(s.inputs, in)
		}
	}
	m.focusInput()
	m.preview.SetContent(render.Text(m.order))
	return m
}

func buildSections(table models.FieldTable) []section {
	byID := make(map[string]*section)
	var order []string
	for _, fp := range table {
		id := strings.SplitN(fp.Path, ".", 2)[0]
		s, ok := byID[id]
		if !ok {
			title := models.SectionTitles[id]
			if title == "" {
				title = id
			}
			s = &section{id: id, title: title}
			byID[id] = s
			order = append(order, id)
		}
		s.fields = append(s.fields, fp)
	}

	var out []section
	for _, id := range models.Sections {
		if s, ok := byID[id]; ok {
			out = append(out, *s)
		}
	}
	for _, id := range order {
		if !isKnownSection(id) {
			out = append(out, *byID[id])
		}
	}
	return out
}

func isKnownSection(id string) bool {
	for _, s := range models.Sections {
		if s == id {
			return true
		}
	}
	return false
}

// SetSender wires debounced previews into a running program, normally
// tea.Program.Send.
func (m *Model) SetSender(send func(tea.Msg)) { m.send = send }

// Order returns a copy of the order being edited.
func (m *Model) Order() models.Order { return m.order }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) current() *section {
	if len(m.sections) == 0 {
		return nil
	}
	return &m.sections[m.active]
}

func (m *Model) focusInput() {
	for si := range m.sections {
		for i := range m.sections[si].inputs {
			if si == m.active && i == m.focus {
				m.sections[si].inputs[i].Focus()
			} else {
				m.sections[si].inputs[i].Blur()
			}
		}
	}
}

func (m *Model) moveField(delta int) {
	s := m.current()
	if s == nil || len(s.inputs) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(s.inputs)) % len(s.inputs)
	m.focusInput()
}

func (m *Model) moveSection(delta int) {
	if len(m.sections) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.sections)) % len(m.sections)
	m.focus = 0
	m.focusInput()
}

// edit writes one field into the order, persists it and schedules a
// preview refresh.
func (m *Model) edit(field, value string) {
	if err := m.mapper.Set(&m.order, field, value); err != nil {
		logger.Warnf("Edit of %s rejected: %v", field, err)
		m.status = err.Error()
		return
	}
	if err := m.store.SaveCurrent(m.ctx, m.order); err != nil {
		logger.Warnf("Failed to persist current order: %v", err)
		m.status = "not saved: " + err.Error()
	} else {
		m.status = ""
	}
	m.schedulePreview()
}

func (m *Model) schedulePreview() {
	snapshot := m.order
	send := m.send
	if m.debounce == nil || send == nil {
		m.preview.SetContent(render.Text(snapshot))
		return
	}
	m.debounce.Schedule(func() {
		send(previewMsg{text: render.Text(snapshot)})
	})
}

// reset replaces the order and refreshes every input from it.
func (m *Model) reset(o models.Order) {
	m.order = o
	form := m.mapper.Fields(&m.order)
	for si := range m.sections {
		for i, fp := range m.sections[si].fields {
			m.sections[si].inputs[i].SetValue(form[fp.Field])
		}
	}
	m.schedulePreview()
}
