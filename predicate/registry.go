package predicate

import (
	"time"

	"github.com/datazip-inc/olake-tableview/types"
)

// Meta is what a matcher constructor may close over besides the field.
type Meta struct {
	Tree     []*types.DateTreeNode
	Location *time.Location
}

// Constructor builds the matcher of one column.
type Constructor func(field string, meta Meta) types.Matcher

// Registry maps a column kind to the matcher it filters with.
type Registry struct {
	constructors map[types.ColumnKind]Constructor
}

// NewRegistry returns a registry with the built-in matchers:
// enumerated columns match exactly, text columns by substring and
// timestamp columns by date selection.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[types.ColumnKind]Constructor)}
	r.Register(types.Enumerated, func(field string, _ Meta) types.Matcher {
		return Exact(field)
	})
	r.Register(types.Text, func(field string, _ Meta) types.Matcher {
		return Substring(field)
	})
	r.Register(types.Timestamp, func(field string, meta Meta) types.Matcher {
		return Date(field, meta.Tree, meta.Location)
	})
	return r
}

// Register sets or replaces the constructor of kind
func (r *Registry) Register(kind types.ColumnKind, constructor Constructor) {
	r.constructors[kind] = constructor
}

// Lookup returns the constructor of kind
func (r *Registry) Lookup(kind types.ColumnKind) (Constructor, bool) {
	constructor, ok := r.constructors[kind]
	return constructor, ok
}

// Matcher builds the matcher for a column, nil when kind is not filterable.
func (r *Registry) Matcher(kind types.ColumnKind, field string, meta Meta) types.Matcher {
	constructor, ok := r.Lookup(kind)
	if !ok || field == "" {
		return nil
	}
	return constructor(field, meta)
}
