package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/BartekS5/osmeac/pkg/models"
)

var (
	banner = strings.Repeat("═", 60)
	rule   = strings.Repeat("─", 40)
)

const (
	titleLine  = "                    5-PARAGRAPH ORDER"
	footerLine = "                    END OF ORDER"
)

// Text renders the canonical plain-text document. Lines whose values are
// all empty are left out; headings, the mission statement, both question
// lines and the time hack are always present.
func Text(o models.Order) string {
	var lines []string
	lines = append(lines, banner, titleLine, banner, "")

	sections := build(&o, true)
	for i, s := range sections {
		lines = append(lines, s.heading, rule, "")

		first := true
		for _, l := range s.lines {
			switch l.kind {
			case kindQuestion, kindTimeHack:
				lines = append(lines, "")
			case kindEntry:
				if l.level == levelItem && !first {
					lines = append(lines, "")
				}
			}
			first = false
			lines = append(lines, indent(l.level)+l.text)
		}

		if i < len(sections)-1 {
			lines = append(lines, "", "")
		}
	}

	lines = append(lines, "", banner, footerLine, banner)
	return strings.Join(lines, "\n")
}

// ExportFilename is the default name for a text export made at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("osmeac-order-%s.txt", t.Format("2006-01-02"))
}
