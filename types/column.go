package types

// Matcher decides whether one record satisfies the active tokens of one column.
// An empty token list must let every record through.
type Matcher func(tokens []string, record Record) bool

// Comparator orders two records by one column, returning -1, 0 or 1.
type Comparator func(a, b Record) int

// Formatter turns a raw field value into the string a renderer draws.
type Formatter func(value any) string

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// FilterChoice is one selectable value offered by a column's filter affordance
type FilterChoice struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// ColumnSpec describes a column: how to label it, filter it, sort it and render it.
type ColumnSpec struct {
	Field    string     `json:"field,omitempty"`
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Width    int        `json:"width,omitempty"`
	Align    Align      `json:"align,omitempty"`
	Ellipsis bool       `json:"ellipsis,omitempty"`
	Kind     ColumnKind `json:"kind"`

	Matcher    Matcher    `json:"-"`
	Comparator Comparator `json:"-"`
	Format     Formatter  `json:"-"`

	FilterChoices  []FilterChoice  `json:"filter_choices,omitempty"`
	FilterMultiple bool            `json:"filter_multiple,omitempty"`
	FilterSearch   bool            `json:"filter_search,omitempty"`
	DateTree       []*DateTreeNode `json:"date_tree,omitempty"`
	Actions        []string        `json:"actions,omitempty"`
}

// Filterable reports whether the column takes part in filtering
func (c ColumnSpec) Filterable() bool {
	return c.Matcher != nil && c.Field != ""
}

// Sortable reports whether the column can be the active sort field
func (c ColumnSpec) Sortable() bool {
	return c.Comparator != nil && c.Field != ""
}

// Render returns the display value of the column for record.
func (c ColumnSpec) Render(record Record) string {
	if c.Field == "" {
		return ""
	}
	value, ok := record.Value(c.Field)
	if c.Format != nil {
		return c.Format(value)
	}
	if !ok {
		return EmptyCell
	}
	return StringifyValue(value)
}

// EmptyCell is rendered for missing values
const EmptyCell = "—"

// ColumnOverrides are merged on top of a column template. Every non-zero field wins.
type ColumnOverrides struct {
	Field         string
	Key           string
	Label         string
	Width         int
	Align         Align
	Ellipsis      *bool
	Layout        string
	Matcher       Matcher
	Comparator    Comparator
	Format        Formatter
	FilterChoices []FilterChoice
	Actions       []string
}

// ColumnDef is the config representation of a column: a column type plus the
// overrides that can be expressed in a config file.
type ColumnDef struct {
	Type   string `json:"type" mapstructure:"type" validate:"required"`
	Field  string `json:"field,omitempty" mapstructure:"field"`
	Label  string `json:"label,omitempty" mapstructure:"label"`
	Width  int    `json:"width,omitempty" mapstructure:"width" validate:"gte=0"`
	Align  Align  `json:"align,omitempty" mapstructure:"align" validate:"omitempty,oneof=left center right"`
	Layout string `json:"layout,omitempty" mapstructure:"layout"`
}

// Overrides converts the definition into builder overrides
func (d ColumnDef) Overrides() ColumnOverrides {
	return ColumnOverrides{
		Field:  d.Field,
		Label:  d.Label,
		Width:  d.Width,
		Align:  d.Align,
		Layout: d.Layout,
	}
}

// DefaultColumns mirrors the stock posts table: id, title, status, createdAt, actions.
func DefaultColumns() []ColumnDef {
	return []ColumnDef{
		{Type: "id"},
		{Type: "title", Width: 300},
		{Type: "status", Width: 50},
		{Type: "createdAt"},
		{Type: "actions"},
	}
}
