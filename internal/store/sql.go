package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

// currentSlot is the single row holding the working order.
const currentSlot = 1

// Dialect captures what differs between the supported SQL servers.
type Dialect struct {
	Name   string
	Schema []string
	// Numbered placeholders (@p1, @p2, ...) instead of '?'.
	Numbered bool
}

var (
	// SQLite is the dialect of modernc.org/sqlite.
	SQLite = Dialect{
		Name: "sqlite",
		Schema: []string{
			`CREATE TABLE IF NOT EXISTS current_order (slot INTEGER PRIMARY KEY, data TEXT NOT NULL, updated_at TEXT NOT NULL)`,
			`CREATE TABLE IF NOT EXISTS saved_orders (id TEXT PRIMARY KEY, name TEXT NOT NULL, data TEXT NOT NULL, created_at TEXT NOT NULL, updated_at TEXT NOT NULL)`,
		},
	}
	// SQLServer is the T-SQL dialect of github.com/microsoft/go-mssqldb.
	SQLServer = Dialect{
		Name: "sqlserver",
		Schema: []string{
			`IF OBJECT_ID(N'current_order', N'U') IS NULL CREATE TABLE current_order (slot INT PRIMARY KEY, data NVARCHAR(MAX) NOT NULL, updated_at NVARCHAR(40) NOT NULL)`,
			`IF OBJECT_ID(N'saved_orders', N'U') IS NULL CREATE TABLE saved_orders (id NVARCHAR(36) PRIMARY KEY, name NVARCHAR(400) NOT NULL, data NVARCHAR(MAX) NOT NULL, created_at NVARCHAR(40) NOT NULL, updated_at NVARCHAR(40) NOT NULL)`,
		},
		Numbered: true,
	}
)

// DialectFor returns the dialect registered under a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.Name:
		return SQLite, nil
	case SQLServer.Name:
		return SQLServer, nil
	}
	return Dialect{}, fmt.Errorf("unsupported SQL dialect %q", driver)
}

// Rebind rewrites '?' placeholders for the dialect.
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("@p")
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLStore keeps orders in two tables: current_order and saved_orders.
// Order data is stored as JSON text.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQL wraps db and creates the tables when missing.
func NewSQL(ctx context.Context, db *sql.DB, d Dialect) (*SQLStore, error) {
	s := &SQLStore{db: db, dialect: d}
	if err := s.Migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Migrate creates the tables when missing.
func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.Schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create %s schema: %w", s.dialect.Name, err)
		}
	}
	return nil
}

func (s *SQLStore) q(query string) string { return s.dialect.Rebind(query) }

func (s *SQLStore) LoadCurrent(ctx context.Context) models.Order {
	var data string
	err := s.db.QueryRowContext(ctx, s.q(`SELECT data FROM current_order WHERE slot = ?`), currentSlot).Scan(&data)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Warnf("Ignoring unreadable current order: %v", err)
		}
		return models.EmptyOrder()
	}

	var o models.Order
	if err := json.Unmarshal([]byte(data), &o); err != nil {
		logger.Warnf("Ignoring corrupt current order: %v", err)
		return models.EmptyOrder()
	}
	return o
}

func (s *SQLStore) SaveCurrent(ctx context.Context, o models.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode current order: %w", err)
	}
	ts := now().Format(timeLayout)

	var exists int
	err = s.db.QueryRowContext(ctx, s.q(`SELECT 1 FROM current_order WHERE slot = ?`), currentSlot).Scan(&exists)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.ExecContext(ctx, s.q(`INSERT INTO current_order (slot, data, updated_at) VALUES (?, ?, ?)`),
			currentSlot, string(data), ts)
	case err == nil:
		_, err = s.db.ExecContext(ctx, s.q(`UPDATE current_order SET data = ?, updated_at = ? WHERE slot = ?`),
			string(data), ts, currentSlot)
	default:
		return fmt.Errorf("error checking current order: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to save current order: %w", err)
	}
	return nil
}

func (s *SQLStore) ClearCurrent(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM current_order WHERE slot = ?`), currentSlot); err != nil {
		return fmt.Errorf("failed to clear current order: %w", err)
	}
	return nil
}

func (s *SQLStore) ListSaved(ctx context.Context) []models.OrderSummary {
	out := []models.OrderSummary{}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, updated_at FROM saved_orders ORDER BY updated_at DESC, id`)
	if err != nil {
		logger.Warnf("Failed to list saved orders: %v", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sum     models.OrderSummary
			updated string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &updated); err != nil {
			logger.Warnf("Failed to list saved orders: %v", err)
			return []models.OrderSummary{}
		}
		sum.UpdatedAt = parseTime(updated)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		logger.Warnf("Failed to list saved orders: %v", err)
		return []models.OrderSummary{}
	}
	sortSummaries(out)
	return out
}

func (s *SQLStore) SaveNamed(ctx context.Context, name string, o models.Order) (models.SavedOrder, error) {
	saved, err := newSaved(name, o)
	if err != nil {
		return models.SavedOrder{}, err
	}
	if err := s.insert(ctx, saved); err != nil {
		return models.SavedOrder{}, err
	}
	return saved, nil
}

func (s *SQLStore) UpdateNamed(ctx context.Context, id string, o models.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	res, err := s.db.ExecContext(ctx, s.q(`UPDATE saved_orders SET data = ?, updated_at = ? WHERE id = ?`),
		string(data), now().Format(timeLayout), id)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) LoadNamed(ctx context.Context, id string) (models.SavedOrder, bool) {
	var (
		saved            models.SavedOrder
		data             string
		created, updated string
	)
	err := s.db.QueryRowContext(ctx, s.q(`SELECT id, name, data, created_at, updated_at FROM saved_orders WHERE id = ?`), id).
		Scan(&saved.ID, &saved.Name, &data, &created, &updated)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Warnf("Failed to load order %s: %v", id, err)
		}
		return models.SavedOrder{}, false
	}
	if err := json.Unmarshal([]byte(data), &saved.Data); err != nil {
		logger.Warnf("Ignoring corrupt order %s: %v", id, err)
		return models.SavedOrder{}, false
	}
	saved.CreatedAt = parseTime(created)
	saved.UpdatedAt = parseTime(updated)
	return saved, true
}

func (s *SQLStore) DeleteNamed(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM saved_orders WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}

func (s *SQLStore) PutNamed(ctx context.Context, saved models.SavedOrder) error {
	var exists int
	err := s.db.QueryRowContext(ctx, s.q(`SELECT 1 FROM saved_orders WHERE id = ?`), saved.ID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return s.insert(ctx, saved)
	}
	if err != nil {
		return fmt.Errorf("error checking order %s: %w", saved.ID, err)
	}

	data, err := json.Marshal(saved.Data)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	_, err = s.db.ExecContext(ctx, s.q(`UPDATE saved_orders SET name = ?, data = ?, created_at = ?, updated_at = ? WHERE id = ?`),
		saved.Name, string(data), saved.CreatedAt.UTC().Format(timeLayout), saved.UpdatedAt.UTC().Format(timeLayout), saved.ID)
	if err != nil {
		return fmt.Errorf("failed to replace order %s: %w", saved.ID, err)
	}
	return nil
}

func (s *SQLStore) Close() error { return s.db.Close() }

func (s *SQLStore) insert(ctx context.Context, saved models.SavedOrder) error {
	data, err := json.Marshal(saved.Data)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	_, err = s.db.ExecContext(ctx, s.q(`INSERT INTO saved_orders (id, name, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`),
		saved.ID, saved.Name, string(data), saved.CreatedAt.UTC().Format(timeLayout), saved.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", saved.ID, err)
	}
	return nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
