package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FieldPath wires one external form field to a dotted leaf path in Order.
type FieldPath struct {
	Field string `json:"field"`
	Path  string `json:"path"`
}

// FieldTable is an ordered list of field-path entries. The same table is
// used to read a record into fields and to write fields back into it.
type FieldTable []FieldPath

// Section identifiers, in document order.
const (
	SectionOrientation = "orientation"
	SectionSituation   = "situation"
	SectionMission     = "mission"
	SectionExecution   = "execution"
	SectionAdmin       = "admin"
	SectionCommand     = "command"
)

// Sections lists every section identifier in document order.
var Sections = []string{
	SectionOrientation,
	SectionSituation,
	SectionMission,
	SectionExecution,
	SectionAdmin,
	SectionCommand,
}

// SectionTitles are the tab labels used by the editor.
var SectionTitles = map[string]string{
	SectionOrientation: "Orientation",
	SectionSituation:   "Situation",
	SectionMission:     "Mission",
	SectionExecution:   "Execution",
	SectionAdmin:       "Admin & Logistics",
	SectionCommand:     "Command & Signal",
}

var sectionFields = map[string]FieldTable{
	SectionOrientation: {
		{"present-location", "orientation.presentLocation"},
		{"direction-azimuth", "orientation.directionAzimuth"},
		{"direction-distance", "orientation.directionDistance"},
		{"objective-location", "orientation.objectiveLocation"},
		{"kocoa-key-terrain", "orientation.kocoa.keyTerrain"},
		{"kocoa-observation", "orientation.kocoa.observation"},
		{"kocoa-cover", "orientation.kocoa.cover"},
		{"kocoa-obstacles", "orientation.kocoa.obstacles"},
		{"kocoa-avenues", "orientation.kocoa.avenues"},
		{"weather", "orientation.weather"},
	},
	SectionSituation: {
		{"salute-size", "situation.salute.size"},
		{"salute-activity", "situation.salute.activity"},
		{"salute-location", "situation.salute.location"},
		{"salute-unit", "situation.salute.unit"},
		{"salute-time", "situation.salute.time"},
		{"salute-equipment", "situation.salute.equipment"},
		{"drawd-defend", "situation.drawd.defend"},
		{"drawd-reinforce", "situation.drawd.reinforce"},
		{"drawd-attack", "situation.drawd.attack"},
		{"drawd-withdraw", "situation.drawd.withdraw"},
		{"drawd-delay", "situation.drawd.delay"},
		{"emlcoa", "situation.emlcoa"},
		{"emdcoa", "situation.emdcoa"},
		{"higher-mission", "situation.friendly.higherMission"},
		{"higher-intent", "situation.friendly.higherIntent"},
		{"adjacent-north", "situation.friendly.adjacentNorth"},
		{"adjacent-south", "situation.friendly.adjacentSouth"},
		{"adjacent-east", "situation.friendly.adjacentEast"},
		{"adjacent-west", "situation.friendly.adjacentWest"},
		{"supporting-units", "situation.friendly.supportingUnits"},
		{"attachments", "situation.attachments"},
	},
	SectionMission: {
		{"mission-who", "mission.who"},
		{"mission-what", "mission.what"},
		{"mission-what-custom", "mission.whatCustom"},
		{"mission-where", "mission.where"},
		{"mission-when", "mission.when"},
		{"mission-why", "mission.why"},
	},
	SectionExecution: {
		{"intent-purpose", "execution.intent.purpose"},
		{"intent-method", "execution.intent.method"},
		{"intent-endstate-friendly", "execution.intent.endstateFriendly"},
		{"intent-endstate-enemy", "execution.intent.endstateEnemy"},
		{"intent-endstate-terrain", "execution.intent.endstateTerrain"},
		{"scheme-maneuver", "execution.concept.schemeManeuver"},
		{"fire-support", "execution.concept.fireSupport"},
		{"task-team1", "execution.tasks.team1"},
		{"task-team2", "execution.tasks.team2"},
		{"task-team3", "execution.tasks.team3"},
		{"task-attachments", "execution.tasks.attachments"},
		{"coord-timeline", "execution.coordinating.timeline"},
		{"coord-priority-fires", "execution.coordinating.priorityFires"},
		{"coord-roe", "execution.coordinating.roe"},
		{"coord-mopp", "execution.coordinating.mopp"},
		{"coord-contact", "execution.coordinating.contact"},
		{"coord-objective", "execution.coordinating.objective"},
		{"coord-consolidation", "execution.coordinating.consolidation"},
		{"coord-formation", "execution.coordinating.formation"},
		{"coord-technique", "execution.coordinating.technique"},
		{"coord-departure", "execution.coordinating.departure"},
	},
	SectionAdmin: {
		{"admin-epw", "admin.administration.epw"},
		{"admin-captured", "admin.administration.captured"},
		{"log-ammo", "admin.logistics.ammo"},
		{"log-rations", "admin.logistics.rations"},
		{"log-water", "admin.logistics.water"},
		{"log-equipment", "admin.logistics.equipment"},
		{"log-resupply", "admin.logistics.resupply"},
		{"casevac-collection", "admin.casevac.collection"},
		{"casevac-route", "admin.casevac.route"},
		{"casevac-medical", "admin.casevac.medical"},
	},
	SectionCommand: {
		{"cmd-location", "command.command.location"},
		{"cmd-succession", "command.command.succession"},
		{"cmd-cp", "command.command.cp"},
		{"freq-primary", "command.frequencies.primary"},
		{"freq-alternate", "command.frequencies.alternate"},
		{"freq-contingency", "command.frequencies.contingency"},
		{"freq-emergency", "command.frequencies.emergency"},
		{"callsign-higher", "command.callsigns.higher"},
		{"callsign-this", "command.callsigns.thisUnit"},
		{"callsign-subordinates", "command.callsigns.subordinates"},
		{"signal-shiftfire", "command.signals.shiftFire"},
		{"signal-ceasefire", "command.signals.ceaseFire"},
		{"signal-assault", "command.signals.assault"},
		{"signal-rally", "command.signals.rally"},
		{"pyrotechnics", "command.pyrotechnics"},
		{"challenge-password", "command.challengePassword"},
		{"running-password", "command.runningPassword"},
		{"number-combo", "command.numberCombo"},
		{"time-hack", "command.timeHack"},
	},
}

// SectionFields returns a copy of the default table for one section, or
// nil for an unknown section.
func SectionFields(section string) FieldTable {
	t, ok := sectionFields[section]
	if !ok {
		return nil
	}
	return append(FieldTable(nil), t...)
}

// DefaultFields returns the default tables of all sections concatenated
// in document order.
func DefaultFields() FieldTable {
	var all FieldTable
	for _, s := range Sections {
		all = append(all, sectionFields[s]...)
	}
	return all
}

// Lookup returns the path wired to field.
func (t FieldTable) Lookup(field string) (string, bool) {
	for _, fp := range t {
		if fp.Field == field {
			return fp.Path, true
		}
	}
	return "", false
}

// LoadMapping parses a custom field table. Two layouts are accepted: a flat
// object {"field": "path"} or one grouped by section
// {"orientation": {"field": "path"}}. Grouped sections keep document order;
// fields inside an object are sorted by id since JSON objects are unordered.
func LoadMapping(data []byte) (FieldTable, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	flat := make(map[string]string)
	grouped := make(map[string]map[string]string)
	for key, msg := range raw {
		var path string
		if err := json.Unmarshal(msg, &path); err == nil {
			flat[key] = path
			continue
		}
		var group map[string]string
		if err := json.Unmarshal(msg, &group); err != nil {
			return nil, fmt.Errorf("mapping entry %q: expected a path or an object of paths", key)
		}
		grouped[key] = group
	}

	var table FieldTable
	for _, s := range Sections {
		if g, ok := grouped[s]; ok {
			table = append(table, sortedEntries(g)...)
			delete(grouped, s)
		}
	}
	extra := make([]string, 0, len(grouped))
	for s := range grouped {
		extra = append(extra, s)
	}
	sort.Strings(extra)
	for _, s := range extra {
		table = append(table, sortedEntries(grouped[s])...)
	}
	table = append(table, sortedEntries(flat)...)
	return table, nil
}

func sortedEntries(m map[string]string) FieldTable {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(FieldTable, 0, len(keys))
	for _, k := range keys {
		out = append(out, FieldPath{Field: k, Path: m[k]})
	}
	return out
}
