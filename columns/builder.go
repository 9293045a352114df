// Package columns builds column descriptors from a column type, overrides and
// the current records.
package columns

import (
	"fmt"
	"time"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/datetree"
	"github.com/datazip-inc/olake-tableview/predicate"
	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/logger"
)

var defaultRegistry = predicate.NewRegistry()

// Options carries what every column of a table shares.
type Options struct {
	Location   *time.Location
	Locale     string
	DateLayout string
	Registry   *predicate.Registry
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func (o Options) registry() *predicate.Registry {
	if o.Registry == nil {
		return defaultRegistry
	}
	return o.Registry
}

// Build returns the column of columnType with overrides merged on top.
// Enumerated and timestamp columns get filter choices from the distinct values
// in records unless the overrides bring their own; timestamp columns also get
// the date tree of their field. Unknown types yield a plain column that can
// neither filter nor sort.
func Build(columnType string, overrides types.ColumnOverrides, records []types.Record, opts Options) types.ColumnSpec {
	kind, ok := KindOf(columnType)
	if !ok {
		logger.Warnf("%s: %q, using a plain column", types.ErrUnknownColumnType, columnType)
		spec := types.ColumnSpec{Field: columnType, Key: columnType, Label: columnType, Kind: types.Generic}
		return merge(spec, overrides)
	}

	tmpl := templates[kind]
	spec := merge(tmpl.spec(opts.Locale), overrides)
	spec.Kind = kind
	if spec.Key == "" {
		spec.Key = spec.Field
	}
	if spec.Field == "" {
		// action-like columns only carry a key
		return spec
	}

	loc := opts.location()
	layout := firstNonEmpty(overrides.Layout, opts.DateLayout, constants.DefaultDateTimeLayout)

	if spec.Format == nil && tmpl.format != nil {
		spec.Format = tmpl.format(layout, opts.Locale, loc)
	}
	if spec.Comparator == nil && tmpl.comparator != nil {
		spec.Comparator = tmpl.comparator(spec.Field, loc)
	}
	if tmpl.tree {
		spec.DateTree = datetree.Build(records, spec.Field, datetree.Options{Location: loc, Locale: opts.Locale})
	}
	if tmpl.choices && len(overrides.FilterChoices) == 0 {
		spec.FilterChoices = DistinctChoices(records, spec.Field, spec.Format)
	}
	if spec.Matcher == nil {
		spec.Matcher = opts.registry().Matcher(kind, spec.Field, predicate.Meta{Tree: spec.DateTree, Location: loc})
	}
	return spec
}

// BuildAll builds the columns of defs in order
func BuildAll(defs []types.ColumnDef, records []types.Record, opts Options) []types.ColumnSpec {
	specs := make([]types.ColumnSpec, 0, len(defs))
	for _, def := range defs {
		specs = append(specs, Build(def.Type, def.Overrides(), records, opts))
	}
	logger.Debugf("built %d columns over %d records", len(specs), len(records))
	return specs
}

// DistinctChoices lists the distinct non-null values of field in first-seen
// order. text renders the label of a value; nil uses the value itself.
func DistinctChoices(records []types.Record, field string, text types.Formatter) []types.FilterChoice {
	seen := make(map[string]struct{})
	choices := []types.FilterChoice{}
	for _, record := range records {
		raw, ok := record.Value(field)
		if !ok {
			continue
		}
		value := types.StringifyValue(raw)
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		label := value
		if text != nil {
			label = text(raw)
		}
		choices = append(choices, types.FilterChoice{Text: label, Value: value})
	}
	return choices
}

// Find returns the column filtering or sorting on field
func Find(specs []types.ColumnSpec, field string) (types.ColumnSpec, error) {
	for _, spec := range specs {
		if spec.Field == field && field != "" {
			return spec, nil
		}
	}
	return types.ColumnSpec{}, fmt.Errorf("no column for field %q", field)
}

func merge(spec types.ColumnSpec, o types.ColumnOverrides) types.ColumnSpec {
	if o.Field != "" {
		spec.Field = o.Field
	}
	if o.Key != "" {
		spec.Key = o.Key
	}
	if o.Label != "" {
		spec.Label = o.Label
	}
	if o.Width != 0 {
		spec.Width = o.Width
	}
	if o.Align != "" {
		spec.Align = o.Align
	}
	if o.Ellipsis != nil {
		spec.Ellipsis = *o.Ellipsis
	}
	if o.Matcher != nil {
		spec.Matcher = o.Matcher
	}
	if o.Comparator != nil {
		spec.Comparator = o.Comparator
	}
	if o.Format != nil {
		spec.Format = o.Format
	}
	if len(o.FilterChoices) > 0 {
		spec.FilterChoices = append([]types.FilterChoice(nil), o.FilterChoices...)
	}
	if len(o.Actions) > 0 {
		spec.Actions = append([]string(nil), o.Actions...)
	}
	return spec
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
