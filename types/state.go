package types

import (
	"fmt"
	"math"
)

type SortDirection string

const (
	Ascend  SortDirection = "ascend"
	Descend SortDirection = "descend"
	// NoSort is the zero value: no active sort
	NoSort SortDirection = ""
)

// FilterState maps a field to its ordered filter tokens.
// An absent or empty entry means the field is not filtered.
type FilterState map[string][]string

// Active returns the tokens of field, nil when not filtered
func (f FilterState) Active(field string) []string {
	if f == nil {
		return nil
	}
	tokens := f[field]
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Normalize returns a copy without empty entries.
func (f FilterState) Normalize() FilterState {
	out := make(FilterState, len(f))
	for field, tokens := range f {
		if len(tokens) == 0 {
			continue
		}
		out[field] = append([]string(nil), tokens...)
	}
	return out
}

// Merge applies changes per field: a non-empty list replaces the field's
// tokens and an empty list removes the field.
func (f FilterState) Merge(changes FilterState) FilterState {
	out := f.Normalize()
	for field, tokens := range changes {
		if len(tokens) == 0 {
			delete(out, field)
			continue
		}
		out[field] = append([]string(nil), tokens...)
	}
	return out
}

// Equal reports whether both states filter the same fields with the same tokens
func (f FilterState) Equal(other FilterState) bool {
	a, b := f.Normalize(), other.Normalize()
	if len(a) != len(b) {
		return false
	}
	for field, tokens := range a {
		otherTokens, ok := b[field]
		if !ok || len(otherTokens) != len(tokens) {
			return false
		}
		for i := range tokens {
			if tokens[i] != otherTokens[i] {
				return false
			}
		}
	}
	return true
}

// SortState is the single active sort column.
type SortState struct {
	Field     string        `json:"field,omitempty"`
	Direction SortDirection `json:"order,omitempty"`
}

// Active reports whether the sorter orders anything
func (s SortState) Active() bool {
	return s.Field != "" && (s.Direction == Ascend || s.Direction == Descend)
}

// Normalize clears the field when there is no direction
func (s SortState) Normalize() SortState {
	if !s.Active() {
		return SortState{}
	}
	return s
}

// Pagination is the page window over the filtered rows. Total always counts
// the rows left after filtering.
type Pagination struct {
	Current  int `json:"current" validate:"gte=1"`
	PageSize int `json:"page_size" validate:"gt=0"`
	Total    int `json:"total" validate:"gte=0"`
}

// Start is the zero based offset of the first row of the current page
func (p Pagination) Start() int {
	return (p.Current - 1) * p.PageSize
}

// TotalPages returns the number of pages needed for Total rows
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PageSize)))
}

// Range returns the 1-based [from, to] rows shown on the current page, or
// (0, 0) when the page is empty.
func (p Pagination) Range() (int, int) {
	start := p.Start()
	if p.Total == 0 || start >= p.Total || start < 0 {
		return 0, 0
	}
	end := start + p.PageSize
	if end > p.Total {
		end = p.Total
	}
	return start + 1, end
}

// Summary formats the range and total, e.g. "11-20 of 42"
func (p Pagination) Summary(template string) string {
	if template == "" {
		template = "%d-%d of %d"
	}
	from, to := p.Range()
	return fmt.Sprintf(template, from, to, p.Total)
}

// TableState is everything the controller owns.
type TableState struct {
	Pagination Pagination  `json:"pagination"`
	Filters    FilterState `json:"filters"`
	Sorter     SortState   `json:"sorter"`
}

// PageChange is the pagination part of a change event. Zero fields are left unchanged.
type PageChange struct {
	Current  int `json:"current,omitempty" validate:"gte=0"`
	PageSize int `json:"page_size,omitempty" validate:"gte=0"`
}

// ChangeEvent is a single user action. Nil parts did not change.
type ChangeEvent struct {
	Pagination *PageChange `json:"pagination,omitempty"`
	Filters    FilterState `json:"filters,omitempty"`
	Sorter     *SortState  `json:"sorter,omitempty"`
}

// View is what the presentation layer draws after every change.
type View struct {
	Rows       []Record   `json:"rows"`
	Pagination Pagination `json:"pagination"`
	Loading    bool       `json:"loading"`
	Err        error      `json:"-"`
}
