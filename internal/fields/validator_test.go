package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BartekS5/osmeac/pkg/models"
)

func TestValidateDefaultTable(t *testing.T) {
	assert.NoError(t, Validate(models.DefaultFields()))
}

func TestValidateRejectsBadTables(t *testing.T) {
	err := Validate(models.FieldTable{
		{Field: "a", Path: "mission.who"},
		{Field: "a", Path: "mission.why"},
		{Field: "b", Path: "mission"},
		{Field: "", Path: "mission.when"},
	})
	assert.ErrorContains(t, err, `duplicate field id "a"`)
	assert.ErrorContains(t, err, `field "b"`)
	assert.ErrorContains(t, err, "no field id")
}

func TestIsSet(t *testing.T) {
	assert.False(t, IsSet(""))
	assert.False(t, IsSet("  \t\n"))
	assert.True(t, IsSet(" x "))
}

func TestHasData(t *testing.T) {
	o := models.EmptyOrder()
	for _, s := range models.Sections {
		assert.False(t, HasData(&o, s), s)
	}

	o.Admin.Casevac.Route = "South along treeline"
	o.Mission.Why = "   "
	assert.True(t, HasData(&o, models.SectionAdmin))
	assert.False(t, HasData(&o, models.SectionMission), "whitespace is not data")
	assert.False(t, HasData(&o, models.SectionCommand))
}
