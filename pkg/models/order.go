// Package models holds the five-paragraph order record, the saved-order
// envelope used by the stores, and the field-path tables that wire form
// fields to record leaves.
package models

import "time"

// Order is the full tactical order. Every leaf is a string and an empty
// string means "not filled in"; the shape never varies between instances.
type Order struct {
	Orientation Orientation `json:"orientation"`
	Situation   Situation   `json:"situation"`
	Mission     Mission     `json:"mission"`
	Execution   Execution   `json:"execution"`
	Admin       Admin       `json:"admin"`
	Command     Command     `json:"command"`
}

type Orientation struct {
	PresentLocation   string `json:"presentLocation"`
	DirectionAzimuth  string `json:"directionAzimuth"`
	DirectionDistance string `json:"directionDistance"`
	ObjectiveLocation string `json:"objectiveLocation"`
	Kocoa             Kocoa  `json:"kocoa"`
	Weather           string `json:"weather"`
}

// Kocoa is the terrain analysis: key terrain, observation, cover,
// obstacles and avenues of approach.
type Kocoa struct {
	KeyTerrain  string `json:"keyTerrain"`
	Observation string `json:"observation"`
	Cover       string `json:"cover"`
	Obstacles   string `json:"obstacles"`
	Avenues     string `json:"avenues"`
}

type Situation struct {
	Salute      Salute   `json:"salute"`
	Drawd       Drawd    `json:"drawd"`
	Emlcoa      string   `json:"emlcoa"`
	Emdcoa      string   `json:"emdcoa"`
	Friendly    Friendly `json:"friendly"`
	Attachments string   `json:"attachments"`
}

type Salute struct {
	Size      string `json:"size"`
	Activity  string `json:"activity"`
	Location  string `json:"location"`
	Unit      string `json:"unit"`
	Time      string `json:"time"`
	Equipment string `json:"equipment"`
}

// Drawd lists enemy capabilities: defend, reinforce, attack, withdraw, delay.
type Drawd struct {
	Defend    string `json:"defend"`
	Reinforce string `json:"reinforce"`
	Attack    string `json:"attack"`
	Withdraw  string `json:"withdraw"`
	Delay     string `json:"delay"`
}

type Friendly struct {
	HigherMission   string `json:"higherMission"`
	HigherIntent    string `json:"higherIntent"`
	AdjacentNorth   string `json:"adjacentNorth"`
	AdjacentSouth   string `json:"adjacentSouth"`
	AdjacentEast    string `json:"adjacentEast"`
	AdjacentWest    string `json:"adjacentWest"`
	SupportingUnits string `json:"supportingUnits"`
}

// Mission holds the five W's. WhatCustom overrides What when set.
type Mission struct {
	Who        string `json:"who"`
	What       string `json:"what"`
	WhatCustom string `json:"whatCustom"`
	Where      string `json:"where"`
	When       string `json:"when"`
	Why        string `json:"why"`
}

type Execution struct {
	Intent       Intent       `json:"intent"`
	Concept      Concept      `json:"concept"`
	Tasks        Tasks        `json:"tasks"`
	Coordinating Coordinating `json:"coordinating"`
}

type Intent struct {
	Purpose          string `json:"purpose"`
	Method           string `json:"method"`
	EndstateFriendly string `json:"endstateFriendly"`
	EndstateEnemy    string `json:"endstateEnemy"`
	EndstateTerrain  string `json:"endstateTerrain"`
}

type Concept struct {
	SchemeManeuver string `json:"schemeManeuver"`
	FireSupport    string `json:"fireSupport"`
}

type Tasks struct {
	Team1       string `json:"team1"`
	Team2       string `json:"team2"`
	Team3       string `json:"team3"`
	Attachments string `json:"attachments"`
}

type Coordinating struct {
	Timeline      string `json:"timeline"`
	PriorityFires string `json:"priorityFires"`
	ROE           string `json:"roe"`
	MOPP          string `json:"mopp"`
	Contact       string `json:"contact"`
	Objective     string `json:"objective"`
	Consolidation string `json:"consolidation"`
	Formation     string `json:"formation"`
	Technique     string `json:"technique"`
	Departure     string `json:"departure"`
}

type Admin struct {
	Administration Administration `json:"administration"`
	Logistics      Logistics      `json:"logistics"`
	Casevac        Casevac        `json:"casevac"`
}

type Administration struct {
	EPW      string `json:"epw"`
	Captured string `json:"captured"`
}

type Logistics struct {
	Ammo      string `json:"ammo"`
	Rations   string `json:"rations"`
	Water     string `json:"water"`
	Equipment string `json:"equipment"`
	Resupply  string `json:"resupply"`
}

type Casevac struct {
	Collection string `json:"collection"`
	Route      string `json:"route"`
	Medical    string `json:"medical"`
}

type Command struct {
	Command           CommandPost `json:"command"`
	Frequencies       Frequencies `json:"frequencies"`
	Callsigns         Callsigns   `json:"callsigns"`
	Signals           Signals     `json:"signals"`
	Pyrotechnics      string      `json:"pyrotechnics"`
	ChallengePassword string      `json:"challengePassword"`
	RunningPassword   string      `json:"runningPassword"`
	NumberCombo       string      `json:"numberCombo"`
	TimeHack          string      `json:"timeHack"`
}

// CommandPost is the "a. Command" block of paragraph V.
type CommandPost struct {
	Location   string `json:"location"`
	Succession string `json:"succession"`
	CP         string `json:"cp"`
}

type Frequencies struct {
	Primary     string `json:"primary"`
	Alternate   string `json:"alternate"`
	Contingency string `json:"contingency"`
	Emergency   string `json:"emergency"`
}

type Callsigns struct {
	Higher       string `json:"higher"`
	ThisUnit     string `json:"thisUnit"`
	Subordinates string `json:"subordinates"`
}

type Signals struct {
	ShiftFire string `json:"shiftFire"`
	CeaseFire string `json:"ceaseFire"`
	Assault   string `json:"assault"`
	Rally     string `json:"rally"`
}

// EmptyOrder returns a new record with every leaf empty. Order is a pure
// value tree, so each call yields an independent instance.
func EmptyOrder() Order {
	return Order{}
}

// SavedOrder is a named snapshot kept by a store.
type SavedOrder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Data      Order     `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderSummary is the listing view of a SavedOrder.
type OrderSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary returns the listing view of s.
func (s SavedOrder) Summary() OrderSummary {
	return OrderSummary{ID: s.ID, Name: s.Name, UpdatedAt: s.UpdatedAt}
}
