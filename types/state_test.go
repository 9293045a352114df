package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterState_Merge(t *testing.T) {
	current := FilterState{"status": {"draft"}, "title": {"hello"}}

	tests := []struct {
		name     string
		changes  FilterState
		expected FilterState
	}{
		{"nil changes keep state", nil, FilterState{"status": {"draft"}, "title": {"hello"}}},
		{"replace field", FilterState{"status": {"published", "draft"}}, FilterState{"status": {"published", "draft"}, "title": {"hello"}}},
		{"add field", FilterState{"createdAt": {"year-2024"}}, FilterState{"status": {"draft"}, "title": {"hello"}, "createdAt": {"year-2024"}}},
		{"empty list removes field", FilterState{"title": {}}, FilterState{"status": {"draft"}}},
		{"nil list removes field", FilterState{"title": nil, "status": nil}, FilterState{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, current.Merge(tc.changes))
		})
	}
	assert.Equal(t, FilterState{"status": {"draft"}, "title": {"hello"}}, current, "merge never mutates the receiver")
}

func TestFilterState_ActiveAndEqual(t *testing.T) {
	var empty FilterState
	assert.Nil(t, empty.Active("status"))
	assert.Nil(t, FilterState{"status": {}}.Active("status"))
	assert.Equal(t, []string{"a"}, FilterState{"status": {"a"}}.Active("status"))

	assert.True(t, FilterState{"a": {"1"}, "b": {}}.Equal(FilterState{"a": {"1"}}))
	assert.True(t, empty.Equal(FilterState{}))
	assert.False(t, FilterState{"a": {"1", "2"}}.Equal(FilterState{"a": {"2", "1"}}))
	assert.False(t, FilterState{"a": {"1"}}.Equal(FilterState{"b": {"1"}}))
}

func TestSortState_Normalize(t *testing.T) {
	assert.Equal(t, SortState{}, SortState{Field: "id"}.Normalize())
	assert.Equal(t, SortState{}, SortState{Field: "id", Direction: "sideways"}.Normalize())
	assert.Equal(t, SortState{}, SortState{Direction: Ascend}.Normalize())
	assert.Equal(t, SortState{Field: "id", Direction: Descend}, SortState{Field: "id", Direction: Descend}.Normalize())
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		pagination Pagination
		from, to   int
		pages      int
		summary    string
	}{
		{"first page", Pagination{Current: 1, PageSize: 10, Total: 42}, 1, 10, 5, "1-10 of 42"},
		{"middle page", Pagination{Current: 2, PageSize: 10, Total: 42}, 11, 20, 5, "11-20 of 42"},
		{"last partial page", Pagination{Current: 5, PageSize: 10, Total: 42}, 41, 42, 5, "41-42 of 42"},
		{"past the end", Pagination{Current: 6, PageSize: 10, Total: 42}, 0, 0, 5, "0-0 of 42"},
		{"empty", Pagination{Current: 1, PageSize: 10, Total: 0}, 0, 0, 0, "0-0 of 0"},
		{"exact fit", Pagination{Current: 2, PageSize: 5, Total: 10}, 6, 10, 2, "6-10 of 10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to := tc.pagination.Range()
			assert.Equal(t, tc.from, from)
			assert.Equal(t, tc.to, to)
			assert.Equal(t, tc.pages, tc.pagination.TotalPages())
			assert.Equal(t, tc.summary, tc.pagination.Summary(""))
		})
	}

	assert.Equal(t, "11-20 из 42", Pagination{Current: 2, PageSize: 10, Total: 42}.Summary("%d-%d из %d"))
}
