package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

const (
	currentFile = "current.json"
	ordersFile  = "orders.json"
)

// FileStore keeps current.json and orders.json in one directory. Every
// write replaces the whole file through a rename.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates dir if needed and returns a store rooted there.
func NewFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory '%s': %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) LoadCurrent(ctx context.Context) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var o models.Order
	if err := s.read(currentFile, &o); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("Ignoring unreadable current order: %v", err)
		}
		return models.EmptyOrder()
	}
	return o
}

func (s *FileStore) SaveCurrent(ctx context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(currentFile, o)
}

func (s *FileStore) ClearCurrent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, currentFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear current order: %w", err)
	}
	return nil
}

func (s *FileStore) ListSaved(ctx context.Context) []models.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders()
	if err != nil {
		logger.Warnf("Ignoring unreadable order library: %v", err)
		return []models.OrderSummary{}
	}
	out := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Summary())
	}
	sortSummaries(out)
	return out
}

func (s *FileStore) SaveNamed(ctx context.Context, name string, o models.Order) (models.SavedOrder, error) {
	saved, err := newSaved(name, o)
	if err != nil {
		return models.SavedOrder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders()
	if err != nil {
		return models.SavedOrder{}, err
	}
	if err := s.write(ordersFile, append(orders, saved)); err != nil {
		return models.SavedOrder{}, err
	}
	return saved, nil
}

func (s *FileStore) UpdateNamed(ctx context.Context, id string, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Data = o
			orders[i].UpdatedAt = now()
			return s.write(ordersFile, orders)
		}
	}
	return ErrNotFound
}

func (s *FileStore) LoadNamed(ctx context.Context, id string) (models.SavedOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders()
	if err != nil {
		logger.Warnf("Ignoring unreadable order library: %v", err)
		return models.SavedOrder{}, false
	}
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.SavedOrder{}, false
}

func (s *FileStore) DeleteNamed(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders()
	if err != nil {
		return err
	}
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return nil
	}
	return s.write(ordersFile, kept)
}

func (s *FileStore) PutNamed(ctx context.Context, saved models.SavedOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == saved.ID {
			orders[i] = saved
			return s.write(ordersFile, orders)
		}
	}
	return s.write(ordersFile, append(orders, saved))
}

func (s *FileStore) Close() error { return nil }

// orders reads the library. A missing file is an empty library; a corrupt
// one is an error so that writers never overwrite it.
func (s *FileStore) orders() ([]models.SavedOrder, error) {
	var orders []models.SavedOrder
	if err := s.read(ordersFile, &orders); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return orders, nil
}

func (s *FileStore) read(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse '%s': %w", name, err)
	}
	return nil
}

func (s *FileStore) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode '%s': %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write '%s': %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write '%s': %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace '%s': %w", name, err)
	}
	return nil
}
