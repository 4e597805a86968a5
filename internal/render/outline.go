// Package render turns an order record into the live HTML preview and the
// canonical plain-text document. Both are produced from the same outline so
// they carry the same lines, numbering and reading order.
package render

import (
	"fmt"
	"strings"

	"github.com/BartekS5/osmeac/internal/fields"
	"github.com/BartekS5/osmeac/pkg/models"
)

const (
	blankValue = "________"
	blankSlot  = "___"
)

type level int

const (
	levelItem level = iota + 1 // a.
	levelSub                   // (1)
	levelDash                  // -
)

// entry is one outline line. An entry without paths is a group heading
// whose children are the deeper entries that follow it.
type entry struct {
	level  level
	label  string
	prefix string
	paths  []string
	format func(vals []string) string
}

type outlineSection struct {
	heading  string
	entries  []entry
	mission  bool
	question string
	timeHack bool
}

func leaf(lv level, label, path string) entry {
	return entry{level: lv, label: label, paths: []string{path}}
}

func grid(lv level, label, path string) entry {
	return entry{level: lv, label: label, prefix: "Grid ", paths: []string{path}}
}

func group(lv level, label string) entry {
	return entry{level: lv, label: label}
}

var outline = []outlineSection{
	{
		heading: "ORIENTATION",
		entries: []entry{
			grid(levelItem, "a. Present Location", "orientation.presentLocation"),
			{
				level: levelItem,
				label: "b. Direction of Attack",
				paths: []string{"orientation.directionAzimuth", "orientation.directionDistance"},
				format: func(v []string) string {
					return fmt.Sprintf("%s° magnetic, %s meters", v[0], v[1])
				},
			},
			grid(levelItem, "c. Objective Location", "orientation.objectiveLocation"),
			group(levelItem, "d. Terrain (KOCOA)"),
			leaf(levelSub, "(1) Key Terrain", "orientation.kocoa.keyTerrain"),
			leaf(levelSub, "(2) Observation & Fields of Fire", "orientation.kocoa.observation"),
			leaf(levelSub, "(3) Cover & Concealment", "orientation.kocoa.cover"),
			leaf(levelSub, "(4) Obstacles", "orientation.kocoa.obstacles"),
			leaf(levelSub, "(5) Avenues of Approach", "orientation.kocoa.avenues"),
			leaf(levelItem, "e. Weather", "orientation.weather"),
		},
		question: `"Are there any questions on the orientation?"`,
	},
	{
		heading: "I. SITUATION",
		entries: []entry{
			group(levelItem, "a. Enemy Forces"),
			group(levelSub, "(1) Composition, Disposition, Strength (SALUTE)"),
			leaf(levelDash, "- Size", "situation.salute.size"),
			leaf(levelDash, "- Activity", "situation.salute.activity"),
			leaf(levelDash, "- Location", "situation.salute.location"),
			leaf(levelDash, "- Unit/Uniform", "situation.salute.unit"),
			leaf(levelDash, "- Time", "situation.salute.time"),
			leaf(levelDash, "- Equipment", "situation.salute.equipment"),
			group(levelSub, "(2) Capabilities (DRAW-D)"),
			leaf(levelDash, "- Defend", "situation.drawd.defend"),
			leaf(levelDash, "- Reinforce", "situation.drawd.reinforce"),
			leaf(levelDash, "- Attack", "situation.drawd.attack"),
			leaf(levelDash, "- Withdraw", "situation.drawd.withdraw"),
			leaf(levelDash, "- Delay", "situation.drawd.delay"),
			leaf(levelSub, "(3) EMLCOA", "situation.emlcoa"),
			leaf(levelSub, "(4) EMDCOA", "situation.emdcoa"),
			group(levelItem, "b. Friendly Forces"),
			leaf(levelSub, "(1) Higher's Mission", "situation.friendly.higherMission"),
			leaf(levelSub, "(2) Higher's Intent", "situation.friendly.higherIntent"),
			group(levelSub, "(3) Adjacent Units"),
			leaf(levelDash, "- North", "situation.friendly.adjacentNorth"),
			leaf(levelDash, "- South", "situation.friendly.adjacentSouth"),
			leaf(levelDash, "- East", "situation.friendly.adjacentEast"),
			leaf(levelDash, "- West", "situation.friendly.adjacentWest"),
			leaf(levelSub, "(4) Supporting Units", "situation.friendly.supportingUnits"),
			leaf(levelItem, "c. Attachments/Detachments", "situation.attachments"),
		},
	},
	{
		heading: "II. MISSION",
		mission: true,
	},
	{
		heading: "III. EXECUTION",
		entries: []entry{
			group(levelItem, "a. Commander's Intent"),
			leaf(levelSub, "(1) Purpose", "execution.intent.purpose"),
			leaf(levelSub, "(2) Method", "execution.intent.method"),
			group(levelSub, "(3) End State"),
			leaf(levelDash, "- Friendly", "execution.intent.endstateFriendly"),
			leaf(levelDash, "- Enemy", "execution.intent.endstateEnemy"),
			leaf(levelDash, "- Terrain", "execution.intent.endstateTerrain"),
			group(levelItem, "b. Concept of Operations"),
			leaf(levelSub, "(1) Scheme of Maneuver", "execution.concept.schemeManeuver"),
			leaf(levelSub, "(2) Fire Support Plan", "execution.concept.fireSupport"),
			group(levelItem, "c. Tasks to Subordinate Units"),
			leaf(levelSub, "(1) 1st Fire Team", "execution.tasks.team1"),
			leaf(levelSub, "(2) 2nd Fire Team", "execution.tasks.team2"),
			leaf(levelSub, "(3) 3rd Fire Team", "execution.tasks.team3"),
			leaf(levelSub, "(4) Attachments", "execution.tasks.attachments"),
			group(levelItem, "d. Coordinating Instructions"),
			leaf(levelSub, "(1) Timeline", "execution.coordinating.timeline"),
			leaf(levelSub, "(2) Priority of Fires", "execution.coordinating.priorityFires"),
			leaf(levelSub, "(3) ROE", "execution.coordinating.roe"),
			leaf(levelSub, "(4) MOPP Level", "execution.coordinating.mopp"),
			leaf(levelSub, "(5) Actions on Contact", "execution.coordinating.contact"),
			leaf(levelSub, "(6) Actions at Objective", "execution.coordinating.objective"),
			leaf(levelSub, "(7) Consolidation/Reorganization", "execution.coordinating.consolidation"),
			leaf(levelSub, "(8) Movement Formation", "execution.coordinating.formation"),
			leaf(levelSub, "(9) Movement Technique", "execution.coordinating.technique"),
			leaf(levelSub, "(10) Departure/Reentry of Lines", "execution.coordinating.departure"),
		},
	},
	{
		heading: "IV. ADMINISTRATION & LOGISTICS",
		entries: []entry{
			group(levelItem, "a. Administration"),
			leaf(levelSub, "(1) EPW Handling", "admin.administration.epw"),
			leaf(levelSub, "(2) Captured Material", "admin.administration.captured"),
			group(levelItem, "b. Logistics"),
			leaf(levelSub, "(1) Ammunition", "admin.logistics.ammo"),
			leaf(levelSub, "(2) Rations", "admin.logistics.rations"),
			leaf(levelSub, "(3) Water", "admin.logistics.water"),
			leaf(levelSub, "(4) Special Equipment", "admin.logistics.equipment"),
			grid(levelSub, "(5) Resupply Point", "admin.logistics.resupply"),
			group(levelItem, "c. CASEVAC"),
			grid(levelSub, "(1) Collection Point", "admin.casevac.collection"),
			leaf(levelSub, "(2) Route", "admin.casevac.route"),
			leaf(levelSub, "(3) Medical Support", "admin.casevac.medical"),
		},
	},
	{
		heading: "V. COMMAND & SIGNAL",
		entries: []entry{
			group(levelItem, "a. Command"),
			leaf(levelSub, "(1) Location of Commander", "command.command.location"),
			leaf(levelSub, "(2) Succession of Command", "command.command.succession"),
			grid(levelSub, "(3) CP Location", "command.command.cp"),
			group(levelItem, "b. Signal"),
			group(levelSub, "(1) Frequencies"),
			leaf(levelDash, "- Primary", "command.frequencies.primary"),
			leaf(levelDash, "- Alternate", "command.frequencies.alternate"),
			leaf(levelDash, "- Contingency", "command.frequencies.contingency"),
			leaf(levelDash, "- Emergency", "command.frequencies.emergency"),
			group(levelSub, "(2) Call Signs"),
			leaf(levelDash, "- Higher", "command.callsigns.higher"),
			leaf(levelDash, "- This Unit", "command.callsigns.thisUnit"),
			leaf(levelDash, "- Subordinates", "command.callsigns.subordinates"),
			group(levelSub, "(3) Signals"),
			leaf(levelDash, "- Shift Fire", "command.signals.shiftFire"),
			leaf(levelDash, "- Cease Fire", "command.signals.ceaseFire"),
			leaf(levelDash, "- Assault", "command.signals.assault"),
			leaf(levelDash, "- Rally Point", "command.signals.rally"),
			leaf(levelSub, "(4) Pyrotechnics", "command.pyrotechnics"),
			leaf(levelSub, "(5) Challenge/Password", "command.challengePassword"),
			leaf(levelSub, "(6) Running Password", "command.runningPassword"),
			leaf(levelSub, "(7) Number Combination", "command.numberCombo"),
		},
		question: `"Are there any questions?"`,
		timeHack: true,
	},
}

type lineKind int

const (
	kindEntry lineKind = iota
	kindMission
	kindQuestion
	kindTimeHack
)

// docLine is one rendered outline line shared by both outputs.
type docLine struct {
	level level
	kind  lineKind
	text  string
}

type docSection struct {
	heading string
	lines   []docLine
}

// build walks the outline. With prune set, entries whose governing leaves
// are all empty are dropped, as are group headings with no set descendant.
func build(o *models.Order, prune bool) []docSection {
	sections := make([]docSection, 0, len(outline))
	for _, s := range outline {
		ds := docSection{heading: s.heading}
		for i, e := range s.entries {
			if prune && !entrySet(o, s.entries, i) {
				continue
			}
			ds.lines = append(ds.lines, docLine{level: e.level, kind: kindEntry, text: entryText(o, e)})
		}
		if s.mission {
			ds.lines = append(ds.lines, docLine{level: levelItem, kind: kindMission, text: MissionStatement(o.Mission, Blank)})
		}
		if s.question != "" {
			ds.lines = append(ds.lines, docLine{level: levelItem, kind: kindQuestion, text: s.question})
		}
		if s.timeHack {
			ds.lines = append(ds.lines, docLine{level: levelItem, kind: kindTimeHack, text: "TIME HACK: " + orBlank(o.Command.TimeHack, blankValue)})
		}
		sections = append(sections, ds)
	}
	return sections
}

// entrySet reports whether entries[i] has a set leaf, or for a group,
// whether any entry nested under it does.
func entrySet(o *models.Order, entries []entry, i int) bool {
	e := entries[i]
	if len(e.paths) > 0 {
		for _, p := range e.paths {
			if fields.IsSet(fields.GetByPath(o, p)) {
				return true
			}
		}
		return false
	}
	for j := i + 1; j < len(entries) && entries[j].level > e.level; j++ {
		if len(entries[j].paths) > 0 && entrySet(o, entries, j) {
			return true
		}
	}
	return false
}

func entryText(o *models.Order, e entry) string {
	if len(e.paths) == 0 {
		return e.label + ":"
	}
	if e.format != nil {
		vals := make([]string, len(e.paths))
		for i, p := range e.paths {
			vals[i] = orBlank(fields.GetByPath(o, p), blankSlot)
		}
		return e.label + ": " + e.format(vals)
	}
	return e.label + ": " + e.prefix + orBlank(fields.GetByPath(o, e.paths[0]), blankValue)
}

func orBlank(v, placeholder string) string {
	if fields.IsSet(v) {
		return v
	}
	return placeholder
}

// Paths lists every record path the documents display, in reading order.
func Paths() []string {
	var out []string
	for _, s := range outline {
		for _, e := range s.entries {
			out = append(out, e.paths...)
		}
		if s.mission {
			out = append(out, "mission.who", "mission.what", "mission.whatCustom", "mission.where", "mission.when", "mission.why")
		}
		if s.timeHack {
			out = append(out, "command.timeHack")
		}
	}
	return out
}

func indent(lv level) string {
	switch lv {
	case levelSub:
		return strings.Repeat(" ", 7)
	case levelDash:
		return strings.Repeat(" ", 11)
	default:
		return strings.Repeat(" ", 4)
	}
}
