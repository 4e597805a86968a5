package render

import (
	"fmt"

	"github.com/BartekS5/osmeac/internal/fields"
	"github.com/BartekS5/osmeac/pkg/models"
)

// Placeholder selects how empty mission slots are shown.
type Placeholder int

const (
	// Blank fills empty slots with underscores, as in a finished document.
	Blank Placeholder = iota
	// Bracketed fills empty slots with [WHO], [WHAT]... as a fill-in prompt.
	Bracketed
)

// MissionPrompt is shown by the editor while every mission field is empty.
const MissionPrompt = "Complete the fields above to generate your mission statement."

// MissionStatement derives "{who} {what} {where} {when} IOT {why}." from m.
// WhatCustom wins over What. The statement always has all five slots.
func MissionStatement(m models.Mission, p Placeholder) string {
	slot := func(v, name string) string {
		if fields.IsSet(v) {
			return v
		}
		if p == Bracketed {
			return "[" + name + "]"
		}
		return blankSlot
	}

	what := m.What
	if fields.IsSet(m.WhatCustom) {
		what = m.WhatCustom
	}
	return fmt.Sprintf("%s %s %s %s IOT %s.",
		slot(m.Who, "WHO"),
		slot(what, "WHAT"),
		slot(m.Where, "WHERE"),
		slot(m.When, "WHEN"),
		slot(m.Why, "WHY"),
	)
}

// MissionInline is the editor's inline preview: the quoted bracketed
// statement, or MissionPrompt when nothing has been entered.
func MissionInline(m models.Mission) string {
	for _, v := range []string{m.Who, m.What, m.WhatCustom, m.Where, m.When, m.Why} {
		if fields.IsSet(v) {
			return `"` + MissionStatement(m, Bracketed) + `"`
		}
	}
	return MissionPrompt
}
