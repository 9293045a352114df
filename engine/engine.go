// Package engine derives the visible rows of a table from its records, columns,
// filters and sorter. Everything here is pure: inputs are never mutated.
package engine

import (
	"slices"

	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/logger"
)

// Apply filters records and then sorts the survivors. The result is a new
// slice; records keeps its order.
func Apply(records []types.Record, specs []types.ColumnSpec, filters types.FilterState, sorter types.SortState) []types.Record {
	rows := Filter(records, specs, filters)
	sortStable(rows, specs, sorter)
	logger.Debugf("query kept %d of %d records, sorter %+v", len(rows), len(records), sorter.Normalize())
	return rows
}

type check struct {
	match  types.Matcher
	tokens []string
}

// Filter keeps the records every active column filter passes. Columns without
// a matcher or without tokens do not take part.
func Filter(records []types.Record, specs []types.ColumnSpec, filters types.FilterState) []types.Record {
	var checks []check
	for _, spec := range specs {
		if !spec.Filterable() {
			continue
		}
		if tokens := filters.Active(spec.Field); tokens != nil {
			checks = append(checks, check{match: spec.Matcher, tokens: tokens})
		}
	}

	filtered := make([]types.Record, 0, len(records))
	for _, record := range records {
		if passes(record, checks) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func passes(record types.Record, checks []check) bool {
	for _, c := range checks {
		if !c.match(c.tokens, record) {
			return false
		}
	}
	return true
}

// Sort returns a stably sorted copy of rows.
func Sort(rows []types.Record, specs []types.ColumnSpec, sorter types.SortState) []types.Record {
	sorted := slices.Clone(rows)
	if sorted == nil {
		sorted = []types.Record{}
	}
	sortStable(sorted, specs, sorter)
	return sorted
}

func sortStable(rows []types.Record, specs []types.ColumnSpec, sorter types.SortState) {
	cmp, ok := comparatorFor(specs, sorter)
	if !ok {
		return
	}
	slices.SortStableFunc(rows, cmp)
}

// comparatorFor resolves the comparator of the sorted column, reversed for
// descending order. Sorting on a field no column shows, or on a column that
// is not sortable, is ignored.
func comparatorFor(specs []types.ColumnSpec, sorter types.SortState) (types.Comparator, bool) {
	sorter = sorter.Normalize()
	if !sorter.Active() {
		return nil, false
	}

	idx := slices.IndexFunc(specs, func(spec types.ColumnSpec) bool { return spec.Field == sorter.Field })
	if idx < 0 {
		logger.Warnf("sort on unknown field %q ignored", sorter.Field)
		return nil, false
	}

	if !specs[idx].Sortable() {
		logger.Warnf("sort on non-sortable column %q ignored", sorter.Field)
		return nil, false
	}

	cmp := specs[idx].Comparator
	if sorter.Direction == types.Descend {
		ascending := cmp
		cmp = func(a, b types.Record) int { return ascending(b, a) }
	}
	return cmp, true
}

// Page returns the rows of the current page. Pages past the end are empty.
func Page(rows []types.Record, pagination types.Pagination) []types.Record {
	if pagination.PageSize <= 0 || pagination.Current < 1 {
		return []types.Record{}
	}
	start := pagination.Start()
	if start >= len(rows) {
		return []types.Record{}
	}
	end := min(start+pagination.PageSize, len(rows))
	return slices.Clip(rows[start:end])
}
