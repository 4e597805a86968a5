package utils

import (
	"reflect"
	"strings"
	"sync"
)

// pathIndex maps every dotted string-leaf path of a struct type to the
// field index sequence that reaches it.
type pathIndex struct {
	order  []string
	fields map[string][]int
}

var indexCache sync.Map // reflect.Type -> *pathIndex

// LeafPaths returns the dotted paths of every string leaf of the struct v
// (or *v), in declaration order. Path segments are json tag names.
func LeafPaths(v interface{}) []string {
	t := structType(reflect.TypeOf(v))
	if t == nil {
		return nil
	}
	idx := indexFor(t)
	return append([]string(nil), idx.order...)
}

// StringAt returns a pointer to the string leaf at path inside the struct
// that v points to. It reports false when v is not a non-nil struct pointer
// or the path does not address a string leaf.
func StringAt(v interface{}, path string) (*string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, false
	}
	idx := indexFor(rv.Elem().Type())
	fieldIdx, ok := idx.fields[path]
	if !ok {
		return nil, false
	}
	leaf := rv.Elem().FieldByIndex(fieldIdx)
	return leaf.Addr().Interface().(*string), true
}

// IsLeafPath reports whether path addresses a string leaf of v's type.
func IsLeafPath(v interface{}, path string) bool {
	t := structType(reflect.TypeOf(v))
	if t == nil {
		return false
	}
	_, ok := indexFor(t).fields[path]
	return ok
}

func structType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

func indexFor(t reflect.Type) *pathIndex {
	if cached, ok := indexCache.Load(t); ok {
		return cached.(*pathIndex)
	}
	idx := &pathIndex{fields: make(map[string][]int)}
	walk(t, "", nil, idx)
	actual, _ := indexCache.LoadOrStore(t, idx)
	return actual.(*pathIndex)
}

func walk(t reflect.Type, prefix string, parent []int, idx *pathIndex) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		fieldIdx := append(append([]int(nil), parent...), i)

		switch f.Type.Kind() {
		case reflect.String:
			idx.order = append(idx.order, path)
			idx.fields[path] = fieldIdx
		case reflect.Struct:
			walk(f.Type, path, fieldIdx, idx)
		}
	}
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}
