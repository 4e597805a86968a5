package models

// TaskGroup is a named list of tactical tasks offered for the mission
// "what" field.
type TaskGroup struct {
	Name  string
	Tasks []string
}

// TacticalTasks returns the reference tasks grouped by category.
func TacticalTasks() []TaskGroup {
	return []TaskGroup{
		{Name: "Offensive Tasks", Tasks: []string{
			"attacks to seize",
			"attacks to destroy",
			"attacks to neutralize",
			"attacks to secure",
			"attacks to clear",
			"conducts a raid on",
			"conducts an ambush at",
			"infiltrates to",
			"breaches",
			"bypasses",
			"envelops",
			"penetrates",
			"turns",
		}},
		{Name: "Defensive Tasks", Tasks: []string{
			"defends",
			"delays",
			"withdraws to",
			"retrogrades to",
			"blocks",
			"contains",
			"disrupts",
		}},
		{Name: "Security Tasks", Tasks: []string{
			"screens",
			"guards",
			"covers",
			"conducts area security of",
		}},
		{Name: "Other Tasks", Tasks: []string{
			"reconnoiters",
			"occupies",
			"secures",
			"seizes",
			"holds",
			"supports by fire",
			"provides overwatch of",
			"establishes a blocking position at",
		}},
	}
}

// AllTacticalTasks flattens TacticalTasks.
func AllTacticalTasks() []string {
	var all []string
	for _, g := range TacticalTasks() {
		all = append(all, g.Tasks...)
	}
	return all
}
