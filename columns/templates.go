package columns

import (
	"time"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/typeutils"
)

// aliases resolves a column type name to its kind. Both the posts table
// field names and the kind names are accepted.
var aliases = map[string]types.ColumnKind{
	"id":         types.Identifier,
	"identifier": types.Identifier,
	"title":      types.Text,
	"text":       types.Text,
	"status":     types.Enumerated,
	"enumerated": types.Enumerated,
	"createdAt":  types.Timestamp,
	"timestamp":  types.Timestamp,
	"actions":    types.Action,
	"action":     types.Action,
}

// KindOf resolves a column type name
func KindOf(columnType string) (types.ColumnKind, bool) {
	kind, ok := aliases[columnType]
	return kind, ok
}

// template holds the static part of a column and how to derive the parts
// that depend on the final field.
type template struct {
	spec       func(locale string) types.ColumnSpec
	comparator func(field string, loc *time.Location) types.Comparator
	format     func(layout, locale string, loc *time.Location) types.Formatter
	// choices computes filter choices from observed values
	choices bool
	// tree attaches a date hierarchy of the field
	tree bool
}

var templates = map[types.ColumnKind]template{
	types.Identifier: {
		spec: func(locale string) types.ColumnSpec {
			return types.ColumnSpec{
				Field: constants.DefaultIDField,
				Label: labelsFor(locale).columns[types.Identifier],
				Width: 80,
			}
		},
		comparator: genericComparator,
	},
	types.Text: {
		spec: func(locale string) types.ColumnSpec {
			return types.ColumnSpec{
				Field:    constants.DefaultTitleField,
				Label:    labelsFor(locale).columns[types.Text],
				Ellipsis: true,
			}
		},
		comparator: genericComparator,
	},
	types.Enumerated: {
		spec: func(locale string) types.ColumnSpec {
			return types.ColumnSpec{
				Field:          constants.DefaultStatusField,
				Label:          labelsFor(locale).columns[types.Enumerated],
				FilterMultiple: true,
				FilterSearch:   true,
			}
		},
		comparator: genericComparator,
		format:     statusFormatter,
		choices:    true,
	},
	types.Timestamp: {
		spec: func(locale string) types.ColumnSpec {
			return types.ColumnSpec{
				Field: constants.DefaultDateField,
				Label: labelsFor(locale).columns[types.Timestamp],
				Width: 120,
				Align: types.AlignCenter,
			}
		},
		comparator: timestampComparator,
		format:     dateFormatter,
		choices:    true,
		tree:       true,
	},
	types.Action: {
		spec: func(locale string) types.ColumnSpec {
			return types.ColumnSpec{
				Key:     constants.DefaultActionsKey,
				Label:   labelsFor(locale).columns[types.Action],
				Width:   200,
				Actions: []string{"edit", "delete"},
			}
		},
	},
}

func genericComparator(field string, _ *time.Location) types.Comparator {
	return func(a, b types.Record) int {
		left, _ := a.Value(field)
		right, _ := b.Value(field)
		return typeutils.Compare(left, right)
	}
}

// timestampComparator orders by instant; unparseable values order like missing ones
func timestampComparator(field string, loc *time.Location) types.Comparator {
	instant := func(record types.Record) any {
		value, ok := record.Value(field)
		if !ok {
			return nil
		}
		t, err := typeutils.ParseTimestamp(value, loc)
		if err != nil {
			return nil
		}
		return t
	}
	return func(a, b types.Record) int {
		return typeutils.Compare(instant(a), instant(b))
	}
}

func statusFormatter(_ string, locale string, _ *time.Location) types.Formatter {
	return func(value any) string {
		if value == nil {
			return types.EmptyCell
		}
		return StatusLabel(locale, types.StringifyValue(value))
	}
}

func dateFormatter(layout string, _ string, loc *time.Location) types.Formatter {
	return func(value any) string {
		if value == nil {
			return types.EmptyCell
		}
		t, err := typeutils.ParseTimestamp(value, loc)
		if err != nil {
			return types.StringifyValue(value)
		}
		return t.Format(layout)
	}
}
