package fields

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BartekS5/osmeac/pkg/models"
	"github.com/BartekS5/osmeac/pkg/utils"
)

// Validate checks that every entry addresses a record leaf and that no
// field id appears twice.
func Validate(table models.FieldTable) error {
	var errs []error
	seen := make(map[string]bool, len(table))
	for _, fp := range table {
		if fp.Field == "" {
			errs = append(errs, fmt.Errorf("entry for %q has no field id", fp.Path))
			continue
		}
		if seen[fp.Field] {
			errs = append(errs, fmt.Errorf("duplicate field id %q", fp.Field))
		}
		seen[fp.Field] = true
		if !utils.IsLeafPath(models.Order{}, fp.Path) {
			errs = append(errs, fmt.Errorf("field %q: %q: %w", fp.Field, fp.Path, ErrUnknownPath))
		}
	}
	return errors.Join(errs...)
}

// IsSet is the single presence test used throughout: non-empty after trim.
func IsSet(v string) bool {
	return strings.TrimSpace(v) != ""
}

// HasData reports whether any leaf of the named section is set.
func HasData(o *models.Order, section string) bool {
	prefix := section + "."
	for _, path := range utils.LeafPaths(o) {
		if strings.HasPrefix(path, prefix) && IsSet(GetByPath(o, path)) {
			return true
		}
	}
	return false
}
