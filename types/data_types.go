package types

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ColumnKind tags a column with the template it was built from.
type ColumnKind string

const (
	Identifier ColumnKind = "identifier"
	Text       ColumnKind = "text"
	Enumerated ColumnKind = "enumerated"
	Timestamp  ColumnKind = "timestamp"
	Action     ColumnKind = "action"
	// Generic is assigned to columns built from an unknown column type
	Generic ColumnKind = "generic"
)

// Kinds lists every kind that has a built-in template
var Kinds = []ColumnKind{Identifier, Text, Enumerated, Timestamp, Action}

func (k ColumnKind) String() string {
	return string(k)
}

// Record is a single row of the table. The engine only ever reads from it.
type Record map[string]any

// Value returns the raw value of field; JSON null is reported as absent.
func (r Record) Value(field string) (any, bool) {
	value, ok := r[field]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Stringify returns the string form of a field used for exact matching,
// substring search and filter choices.
func (r Record) Stringify(field string) (string, bool) {
	value, ok := r.Value(field)
	if !ok {
		return "", false
	}
	return StringifyValue(value), true
}

// StringifyValue renders scalars with %v and nested values as JSON
func StringifyValue(value any) string {
	switch value.(type) {
	case struct{}, map[string]interface{}, []interface{}:
		s, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(s)
	default:
		return fmt.Sprintf("%v", value)
	}
}
