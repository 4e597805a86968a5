// Package store keeps the working order and the library of named orders.
// Backends: a JSON file directory, SQL (sqlite or SQL Server) and MongoDB.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BartekS5/osmeac/pkg/models"
)

var (
	// ErrNotFound is returned when a saved order id does not exist.
	ErrNotFound = errors.New("saved order not found")
	// ErrEmptyName is returned when saving an order without a name.
	ErrEmptyName = errors.New("order name must not be empty")
)

// Store persists the current working order and named snapshots.
//
// Reads never fail: a missing or unreadable current order loads as an empty
// record and an unreadable library lists as empty. A failed write leaves
// the caller's record untouched.
type Store interface {
	LoadCurrent(ctx context.Context) models.Order
	SaveCurrent(ctx context.Context, o models.Order) error
	ClearCurrent(ctx context.Context) error

	// ListSaved returns summaries, most recently updated first.
	ListSaved(ctx context.Context) []models.OrderSummary
	SaveNamed(ctx context.Context, name string, o models.Order) (models.SavedOrder, error)
	UpdateNamed(ctx context.Context, id string, o models.Order) error
	LoadNamed(ctx context.Context, id string) (models.SavedOrder, bool)
	DeleteNamed(ctx context.Context, id string) error
	// PutNamed writes s as is, inserting or replacing by id. Transfers use
	// it to keep ids and timestamps.
	PutNamed(ctx context.Context, s models.SavedOrder) error

	Close() error
}

// Overridden in tests.
var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
)

// timeLayout matches JavaScript's toISOString so SQL columns sort
// lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func newSaved(name string, o models.Order) (models.SavedOrder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedOrder{}, ErrEmptyName
	}
	ts := now()
	return models.SavedOrder{ID: newID(), Name: name, Data: o, CreatedAt: ts, UpdatedAt: ts}, nil
}

func sortSummaries(s []models.OrderSummary) {
	sort.SliceStable(s, func(i, j int) bool {
		if !s[i].UpdatedAt.Equal(s[j].UpdatedAt) {
			return s[i].UpdatedAt.After(s[j].UpdatedAt)
		}
		return s[i].ID < s[j].ID
	})
}
