package render

import (
	"bytes"
	"html/template"

	"github.com/BartekS5/osmeac/pkg/models"
)

const fragmentTemplate = `<div class="order-header">5-PARAGRAPH ORDER</div>
{{range .}}
<div class="order-section">
<div class="section-heading">{{.Heading}}</div>
{{range .Lines}}<div class="{{.Class}}">{{.Text}}</div>
{{end}}</div>
{{end}}`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Courier New", monospace; margin: 2em; }
.order-header { text-align: center; font-weight: bold; font-size: 1.3em; margin-bottom: 1em; }
.order-section { margin-bottom: 1.5em; }
.section-heading { font-weight: bold; border-bottom: 1px solid #000; margin-bottom: 6px; }
.subsection { margin-left: 24px; }
.sub-subsection { margin-left: 48px; }
.sub-subsection.dash { margin-left: 72px; }
.question { margin-top: 12px; font-style: italic; }
.mission-statement, .time-hack { font-weight: bold; }
.time-hack { margin-top: 12px; }
</style>
</head>
<body>
<div class="order-document">
{{.Body}}
</div>
</body>
</html>
`

var (
	fragmentTmpl = template.Must(template.New("fragment").Parse(fragmentTemplate))
	pageTmpl     = template.Must(template.New("page").Parse(pageTemplate))
)

type htmlLine struct {
	Class string
	Text  string
}

type htmlSection struct {
	Heading string
	Lines   []htmlLine
}

// HTML renders the live-preview fragment. Unlike Text it never drops a
// line: every empty value shows as an underscore placeholder.
func HTML(o models.Order) (string, error) {
	sections := build(&o, false)
	view := make([]htmlSection, 0, len(sections))
	for _, s := range sections {
		hs := htmlSection{Heading: s.heading}
		for _, l := range s.lines {
			hs.Lines = append(hs.Lines, htmlLine{Class: lineClass(l), Text: l.text})
		}
		view = append(view, hs)
	}

	var buf bytes.Buffer
	if err := fragmentTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Page wraps the preview fragment into a standalone printable document.
func Page(o models.Order, title string) (string, error) {
	body, err := HTML(o)
	if err != nil {
		return "", err
	}
	if title == "" {
		title = "5-Paragraph Order"
	}

	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func lineClass(l docLine) string {
	switch l.kind {
	case kindMission:
		return "subsection mission-statement"
	case kindQuestion:
		return "subsection question"
	case kindTimeHack:
		return "subsection time-hack"
	}
	switch l.level {
	case levelSub:
		return "sub-subsection"
	case levelDash:
		return "sub-subsection dash"
	default:
		return "subsection"
	}
}
