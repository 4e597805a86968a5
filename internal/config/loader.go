package config

import (
	"fmt"
	"os"

	"github.com/BartekS5/osmeac/internal/fields"
	"github.com/BartekS5/osmeac/pkg/models"
)

// LoadMapping reads a custom field-path table from filePath. An empty path
// yields the default table. Every entry must address a leaf of the record.
func LoadMapping(filePath string) (models.FieldTable, error) {
	if filePath == "" {
		return models.DefaultFields(), nil
	}

	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file '%s': %w", filePath, err)
	}

	table, err := models.LoadMapping(bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping file '%s': %w", filePath, err)
	}
	if err := fields.Validate(table); err != nil {
		return nil, fmt.Errorf("invalid mapping file '%s': %w", filePath, err)
	}
	return table, nil
}
