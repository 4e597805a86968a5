package render

import (
	"html"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/osmeac/internal/fields"
	"github.com/BartekS5/osmeac/pkg/models"
	"github.com/BartekS5/osmeac/pkg/utils"
)

var htmlLineRe = regexp.MustCompile(`^<div class="([^"]*)">(.*)</div>$`)

// htmlLines returns the unescaped text of every single-line div except the
// document header.
func htmlLines(t *testing.T, o models.Order) []string {
	t.Helper()
	out, err := HTML(o)
	require.NoError(t, err)

	var lines []string
	for _, l := range strings.Split(out, "\n") {
		m := htmlLineRe.FindStringSubmatch(l)
		if m == nil || m[1] == "order-header" {
			continue
		}
		lines = append(lines, html.UnescapeString(m[2]))
	}
	return lines
}

// textLines returns the trimmed content lines of the text document,
// dropping blank, banner and rule lines.
func textLines(o models.Order) []string {
	var lines []string
	for _, l := range strings.Split(Text(o), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || l == banner || l == rule || l == strings.TrimSpace(titleLine) || l == strings.TrimSpace(footerLine) {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func TestTextEmptyOrder(t *testing.T) {
	out := Text(models.EmptyOrder())
	lines := strings.Split(out, "\n")

	assert.Equal(t, banner, lines[0])
	assert.Equal(t, "5-PARAGRAPH ORDER", strings.TrimSpace(lines[1]))
	assert.Equal(t, "END OF ORDER", strings.TrimSpace(lines[len(lines)-2]))
	assert.Equal(t, banner, lines[len(lines)-1])

	assert.Contains(t, out, `    "Are there any questions on the orientation?"`)
	assert.Contains(t, out, `    "Are there any questions?"`)
	assert.Contains(t, out, "    ___ ___ ___ ___ IOT ___.")
	assert.Contains(t, out, "    TIME HACK: ________")
	for _, h := range []string{"ORIENTATION", "I. SITUATION", "II. MISSION", "III. EXECUTION", "IV. ADMINISTRATION & LOGISTICS", "V. COMMAND & SIGNAL"} {
		assert.Contains(t, lines, h)
	}

	lettered := regexp.MustCompile(`^\s+([a-e]\.|\(\d+\)|-) `)
	for _, l := range lines {
		assert.False(t, lettered.MatchString(l), "unexpected optional line %q", l)
	}
}

func TestTextHeadingsAreFollowedByRule(t *testing.T) {
	lines := strings.Split(Text(models.ExampleOrder()), "\n")
	headings := 0
	for i, l := range lines {
		switch l {
		case "ORIENTATION", "I. SITUATION", "II. MISSION", "III. EXECUTION", "IV. ADMINISTRATION & LOGISTICS", "V. COMMAND & SIGNAL":
			headings++
			require.Less(t, i+1, len(lines))
			assert.Equal(t, rule, lines[i+1])
		}
	}
	assert.Equal(t, 6, headings)
}

func TestHTMLEmptyOrderKeepsEveryLine(t *testing.T) {
	out, err := HTML(models.EmptyOrder())
	require.NoError(t, err)

	assert.Contains(t, out, "a. Present Location: Grid ________")
	assert.Contains(t, out, "b. Direction of Attack: ___° magnetic, ___ meters")
	assert.Contains(t, out, "(1) Key Terrain: ________")
	assert.Contains(t, out, "- Rally Point: ________")
	assert.Contains(t, out, "TIME HACK: ________")
	assert.Contains(t, out, "___ ___ ___ ___ IOT ___.")
	assert.NotContains(t, out, "[WHO]")
}

func TestFullOrderLinesMatch(t *testing.T) {
	o := models.ExampleOrder()
	assert.Equal(t, textLines(o), htmlLines(t, o))
}

func TestTextPrunesOnlyEmptyLines(t *testing.T) {
	o := models.EmptyOrder()
	o.Orientation.Kocoa.Cover = "Stone walls"
	o.Orientation.DirectionAzimuth = "045"

	text := Text(o)
	assert.Contains(t, text, "    b. Direction of Attack: 045° magnetic, ___ meters")
	assert.Contains(t, text, "    d. Terrain (KOCOA):")
	assert.Contains(t, text, "       (3) Cover & Concealment: Stone walls")
	assert.NotContains(t, text, "Key Terrain")
	assert.NotContains(t, text, "Present Location")
	assert.NotContains(t, text, "Enemy Forces")

	preview := strings.Join(htmlLines(t, o), "\n")
	assert.Contains(t, preview, "(1) Key Terrain: ________")
	assert.Contains(t, preview, "(3) Cover & Concealment: Stone walls")
	assert.Contains(t, preview, "a. Enemy Forces:")
}

func TestContentParity(t *testing.T) {
	o := models.EmptyOrder()
	var set []string
	for i, p := range utils.LeafPaths(o) {
		if i%3 != 0 || p == "mission.what" {
			continue
		}
		v := "value-" + strings.ReplaceAll(p, ".", "-")
		require.NoError(t, fields.SetByPath(&o, p, v))
		set = append(set, v)
	}

	text := Text(o)
	preview := strings.Join(htmlLines(t, o), "\n")
	for _, v := range set {
		assert.Contains(t, text, v)
		assert.Contains(t, preview, v)
	}

	// Reading order agrees: every text line appears in the preview, in order.
	previewLines := htmlLines(t, o)
	j := 0
	for _, l := range textLines(o) {
		for j < len(previewLines) && previewLines[j] != l {
			j++
		}
		require.Less(t, j, len(previewLines), "text line %q missing from preview order", l)
	}
}

func TestPathsCoverRecord(t *testing.T) {
	assert.ElementsMatch(t, utils.LeafPaths(models.Order{}), Paths())
}

func TestHTMLEscapesValues(t *testing.T) {
	o := models.EmptyOrder()
	o.Orientation.Weather = `<script>alert("x")</script>`

	out, err := HTML(o)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestMissionPrecedence(t *testing.T) {
	m := models.Mission{Who: "1st Squad", What: "attacks to seize", WhatCustom: "breaches and clears", Where: "Building 4", When: "NLT 0600", Why: "open the MSR"}
	assert.Equal(t, "1st Squad breaches and clears Building 4 NLT 0600 IOT open the MSR.", MissionStatement(m, Blank))

	m.WhatCustom = ""
	assert.Equal(t, "1st Squad attacks to seize Building 4 NLT 0600 IOT open the MSR.", MissionStatement(m, Bracketed))

	m.What = ""
	assert.Contains(t, MissionStatement(m, Bracketed), " [WHAT] ")
	assert.Contains(t, MissionStatement(m, Blank), "1st Squad ___ Building 4")

	o := models.EmptyOrder()
	o.Mission = m
	assert.Contains(t, Text(o), "1st Squad ___ Building 4 NLT 0600 IOT open the MSR.")
}

func TestMissionStatementHasFiveSlots(t *testing.T) {
	assert.Equal(t, "[WHO] [WHAT] [WHERE] [WHEN] IOT [WHY].", MissionStatement(models.Mission{}, Bracketed))
	assert.Equal(t, "___ ___ ___ ___ IOT ___.", MissionStatement(models.Mission{}, Blank))
}

func TestMissionInline(t *testing.T) {
	assert.Equal(t, MissionPrompt, MissionInline(models.Mission{}))
	assert.Equal(t, `"[WHO] [WHAT] [WHERE] NLT 0600 IOT [WHY]."`, MissionInline(models.Mission{When: "NLT 0600"}))
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "osmeac-order-2024-03-09.txt", ExportFilename(ts))
}

func TestPage(t *testing.T) {
	out, err := Page(models.ExampleOrder(), "Raid <1>")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Raid &lt;1&gt;</title>")
	assert.Contains(t, out, `<div class="section-heading">V. COMMAND &amp; SIGNAL</div>`)
}
