package fields

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/osmeac/pkg/models"
)

func TestGetByPath(t *testing.T) {
	o := models.ExampleOrder()

	assert.Equal(t, "1st Squad", GetByPath(&o, "mission.who"))
	assert.Equal(t, "Traveling Overwatch", GetByPath(&o, "execution.coordinating.technique"))
	assert.Equal(t, "", GetByPath(&o, "mission"))
	assert.Equal(t, "", GetByPath(&o, "no.such.path"))
	assert.Equal(t, "", GetByPath(&o, ""))
	assert.Equal(t, "", GetByPath(nil, "mission.who"))
}

func TestSetByPath(t *testing.T) {
	o := models.EmptyOrder()

	require.NoError(t, SetByPath(&o, "command.signals.rally", "ORP"))
	assert.Equal(t, "ORP", o.Command.Signals.Rally)

	before := o
	err := SetByPath(&o, "command.signals", "x")
	assert.True(t, errors.Is(err, ErrUnknownPath))
	assert.Equal(t, before, o)

	assert.Error(t, SetByPath(nil, "mission.who", "x"))
}

func TestRoundTripFullTable(t *testing.T) {
	original := models.ExampleOrder()
	original.Mission.WhatCustom = "breaches and clears"
	table := models.DefaultFields()

	form := Form{}
	ApplyRecordToFields(&original, table, form)
	assert.Len(t, form, len(table))

	restored := models.EmptyOrder()
	require.NoError(t, ApplyFieldsToRecord(table, form, &restored))

	if diff := cmp.Diff(original, restored); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripPartialTable(t *testing.T) {
	original := models.ExampleOrder()
	table := models.SectionFields(models.SectionMission)

	form := Form{}
	ApplyRecordToFields(&original, table, form)
	restored := models.EmptyOrder()
	require.NoError(t, ApplyFieldsToRecord(table, form, &restored))

	want := models.EmptyOrder()
	want.Mission = original.Mission
	if diff := cmp.Diff(want, restored); diff != "" {
		t.Errorf("restricted round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFieldsToRecordSkipsMissingFields(t *testing.T) {
	o := models.ExampleOrder()
	form := Form{"mission-who": "2nd Squad"}

	require.NoError(t, ApplyFieldsToRecord(models.DefaultFields(), form, &o))
	assert.Equal(t, "2nd Squad", o.Mission.Who)
	assert.Equal(t, "attacks to seize", o.Mission.What)
}

func TestApplyFieldsToRecordReportsBadPaths(t *testing.T) {
	table := models.FieldTable{
		{Field: "good", Path: "mission.who"},
		{Field: "bad", Path: "mission.nope"},
	}
	o := models.EmptyOrder()
	err := ApplyFieldsToRecord(table, Form{"good": "A", "bad": "B"}, &o)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPath))
	assert.Equal(t, "A", o.Mission.Who)
}

func TestMapper(t *testing.T) {
	m := NewMapper(models.DefaultFields())
	o := models.EmptyOrder()

	require.NoError(t, m.Set(&o, "time-hack", "0530"))
	v, err := m.Get(&o, "time-hack")
	require.NoError(t, err)
	assert.Equal(t, "0530", v)
	assert.Equal(t, "0530", m.Fields(&o)["time-hack"])

	assert.Error(t, m.Set(&o, "unknown", "x"))
	_, err = m.Get(&o, "unknown")
	assert.Error(t, err)
}
