package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/BartekS5/osmeac/internal/store"
	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

// DefaultBatchSize is used when a pipeline is built with a non-positive
// batch size.
const DefaultBatchSize = 50

// Pipeline moves saved orders from an Extractor to a Loader one batch at a
// time. With DryRun set nothing is loaded.
type Pipeline struct {
	Extractor Extractor
	Loader    Loader
	BatchSize int
	DryRun    bool
}

// Stats summarises a run.
type Stats struct {
	Read     int
	Written  int
	Duration time.Duration
}

// NewPipeline creates a pipeline with dry-run support.
func NewPipeline(ext Extractor, loader Loader, batchSize int, dryRun bool) *Pipeline {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Pipeline{
		Extractor: ext,
		Loader:    loader,
		BatchSize: batchSize,
		DryRun:    dryRun,
	}
}

// Run extracts and loads batches until the extractor is exhausted or ctx is
// cancelled.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	logger.Infof("Starting transfer. Batch Size: %d, DryRun: %v", p.BatchSize, p.DryRun)

	var stats Stats
	offset := 0
	startTime := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		batch, next, err := p.Extractor.Extract(ctx, p.BatchSize, offset)
		if err != nil {
			logger.Errorf("Extraction failed at offset %d: %v", offset, err)
			return stats, fmt.Errorf("extract at offset %d: %w", offset, err)
		}
		if len(batch) == 0 {
			break
		}
		stats.Read += len(batch)

		if !p.DryRun {
			if err := p.Loader.Load(ctx, batch); err != nil {
				logger.Errorf("Loading failed at offset %d: %v", offset, err)
				return stats, fmt.Errorf("load at offset %d: %w", offset, err)
			}
			stats.Written += len(batch)
		} else {
			for _, s := range batch {
				logger.Infof("[DRY RUN] Would copy %s (%s)", s.Name, s.ID)
			}
		}

		offset = next
		logger.Infof("Batch done. Total: %d. Next Offset: %d", stats.Read, offset)
	}

	stats.Duration = time.Since(startTime)
	logger.Infof("Transfer finished: %d read, %d written in %s", stats.Read, stats.Written, stats.Duration)
	return stats, nil
}

// StoreExtractor pages through a store's saved orders. The id list is
// taken on the first call so that writes during the run do not shift
// offsets.
type StoreExtractor struct {
	Store store.Store
	ids   []string
	ready bool
}

func (e *StoreExtractor) Extract(ctx context.Context, batchSize, offset int) ([]models.SavedOrder, int, error) {
	if !e.ready {
		for _, s := range e.Store.ListSaved(ctx) {
			e.ids = append(e.ids, s.ID)
		}
		e.ready = true
	}
	if offset >= len(e.ids) {
		return nil, offset, nil
	}

	end := offset + batchSize
	if end > len(e.ids) {
		end = len(e.ids)
	}

	batch := make([]models.SavedOrder, 0, end-offset)
	for _, id := range e.ids[offset:end] {
		s, ok := e.Store.LoadNamed(ctx, id)
		if !ok {
			logger.Warnf("Skipping order %s: no longer readable", id)
			continue
		}
		batch = append(batch, s)
	}
	// A batch whose orders all vanished must not end the run early.
	if len(batch) == 0 && end < len(e.ids) {
		return e.Extract(ctx, batchSize, end)
	}
	return batch, end, nil
}

// StoreLoader writes batches with PutNamed, keeping ids and timestamps.
type StoreLoader struct {
	Store store.Store
}

func (l *StoreLoader) Load(ctx context.Context, batch []models.SavedOrder) error {
	for _, s := range batch {
		if err := l.Store.PutNamed(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Copy transfers every saved order from src to dst. With includeCurrent
// the working order is copied too.
func Copy(ctx context.Context, src, dst store.Store, batchSize int, dryRun, includeCurrent bool) (Stats, error) {
	p := NewPipeline(&StoreExtractor{Store: src}, &StoreLoader{Store: dst}, batchSize, dryRun)
	stats, err := p.Run(ctx)
	if err != nil {
		return stats, err
	}

	if includeCurrent {
		if dryRun {
			logger.Infof("[DRY RUN] Would copy the current order")
		} else if err := dst.SaveCurrent(ctx, src.LoadCurrent(ctx)); err != nil {
			return stats, fmt.Errorf("copy current order: %w", err)
		}
	}
	return stats, nil
}
