package fields

// Sink receives field values pushed out of a record.
type Sink interface {
	SetField(id, value string)
}

// Source supplies field values to be written into a record. ok is false
// when the source has no such field.
type Source interface {
	Field(id string) (value string, ok bool)
}

// Form is an in-memory set of field values. It is both a Sink and a Source.
type Form map[string]string

func (f Form) SetField(id, value string) { f[id] = value }

func (f Form) Field(id string) (string, bool) {
	v, ok := f[id]
	return v, ok
}
