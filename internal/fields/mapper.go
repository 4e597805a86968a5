// Package fields moves values between external form fields and the order
// record, driven by a field-path table.
package fields

import (
	"errors"
	"fmt"

	"github.com/BartekS5/osmeac/pkg/models"
	"github.com/BartekS5/osmeac/pkg/utils"
)

// ErrUnknownPath is returned when a path does not address a record leaf.
var ErrUnknownPath = errors.New("unknown record path")

// GetByPath returns the leaf at path, or "" when the path is unknown.
func GetByPath(o *models.Order, path string) string {
	if o == nil {
		return ""
	}
	p, ok := utils.StringAt(o, path)
	if !ok {
		return ""
	}
	return *p
}

// SetByPath assigns value to the leaf at path. The record is left untouched
// when the path is unknown.
func SetByPath(o *models.Order, path, value string) error {
	if o == nil {
		return fmt.Errorf("set %s: nil record", path)
	}
	p, ok := utils.StringAt(o, path)
	if !ok {
		return fmt.Errorf("set %s: %w", path, ErrUnknownPath)
	}
	*p = value
	return nil
}

// ApplyRecordToFields pushes the value of every table entry into sink.
func ApplyRecordToFields(o *models.Order, table models.FieldTable, sink Sink) {
	for _, fp := range table {
		sink.SetField(fp.Field, GetByPath(o, fp.Path))
	}
}

// ApplyFieldsToRecord writes every field present in source into the record.
// Fields the source does not know are skipped. Entries with unknown paths
// are collected into the returned error; the remaining entries still apply.
func ApplyFieldsToRecord(table models.FieldTable, source Source, o *models.Order) error {
	var errs []error
	for _, fp := range table {
		v, ok := source.Field(fp.Field)
		if !ok {
			continue
		}
		if err := SetByPath(o, fp.Path, v); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", fp.Field, err))
		}
	}
	return errors.Join(errs...)
}

// Mapper binds a field table for repeated use by an editing session.
type Mapper struct {
	Table models.FieldTable
}

// NewMapper returns a Mapper over table.
func NewMapper(table models.FieldTable) *Mapper {
	return &Mapper{Table: table}
}

// Fields reads o into a fresh Form.
func (m *Mapper) Fields(o *models.Order) Form {
	form := make(Form, len(m.Table))
	ApplyRecordToFields(o, m.Table, form)
	return form
}

// Get returns the value of one field.
func (m *Mapper) Get(o *models.Order, field string) (string, error) {
	path, ok := m.Table.Lookup(field)
	if !ok {
		return "", fmt.Errorf("unknown field %q", field)
	}
	return GetByPath(o, path), nil
}

// Set writes one field into o.
func (m *Mapper) Set(o *models.Order, field, value string) error {
	path, ok := m.Table.Lookup(field)
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	return SetByPath(o, path, value)
}
