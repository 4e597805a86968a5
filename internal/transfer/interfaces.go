// Package transfer copies saved orders between stores in batches, for
// backups and for moving to another backend.
package transfer

import (
	"context"

	"github.com/BartekS5/osmeac/pkg/models"
)

// Extractor yields saved orders starting at offset and returns the offset
// of the next batch. An empty batch ends the run.
type Extractor interface {
	Extract(ctx context.Context, batchSize, offset int) ([]models.SavedOrder, int, error)
}

// Loader writes a batch of saved orders.
type Loader interface {
	Load(ctx context.Context, batch []models.SavedOrder) error
}
