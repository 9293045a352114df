package columns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/olake-tableview/types"
)

func posts() []types.Record {
	return []types.Record{
		{"id": 1.0, "title": "First", "status": "published", "createdAt": "2024-03-01T10:00:00Z", "updatedAt": "2024-05-01"},
		{"id": 2.0, "title": "Second", "status": "draft", "createdAt": "2024-03-01T23:00:00Z"},
		{"id": 3.0, "title": "Third", "status": "published", "createdAt": "2023-12-24T08:00:00Z"},
		{"id": 4.0, "title": "Fourth", "status": nil, "createdAt": "not a date"},
		{"id": 5.0, "title": "Fifth", "status": "unknown-status"},
	}
}

func TestBuild_Templates(t *testing.T) {
	records := posts()

	tests := []struct {
		columnType string
		kind       types.ColumnKind
		field      string
		key        string
		label      string
		width      int
		filterable bool
		sortable   bool
	}{
		{"id", types.Identifier, "id", "id", "ID", 80, false, true},
		{"identifier", types.Identifier, "id", "id", "ID", 80, false, true},
		{"title", types.Text, "title", "title", "Title", 0, true, true},
		{"status", types.Enumerated, "status", "status", "Status", 0, true, true},
		{"createdAt", types.Timestamp, "createdAt", "createdAt", "Created at", 120, true, true},
		{"actions", types.Action, "", "actions", "Actions", 200, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.columnType, func(t *testing.T) {
			spec := Build(tc.columnType, types.ColumnOverrides{}, records, Options{})
			assert.Equal(t, tc.kind, spec.Kind)
			assert.Equal(t, tc.field, spec.Field)
			assert.Equal(t, tc.key, spec.Key)
			assert.Equal(t, tc.label, spec.Label)
			assert.Equal(t, tc.width, spec.Width)
			assert.Equal(t, tc.filterable, spec.Filterable())
			assert.Equal(t, tc.sortable, spec.Sortable())
		})
	}
}

func TestBuild_UnknownTypeFallsBack(t *testing.T) {
	spec := Build("views", types.ColumnOverrides{}, posts(), Options{})
	assert.Equal(t, types.Generic, spec.Kind)
	assert.Equal(t, "views", spec.Field)
	assert.Equal(t, "views", spec.Label)
	assert.False(t, spec.Filterable())
	assert.False(t, spec.Sortable())
	assert.Equal(t, types.EmptyCell, spec.Render(types.Record{}))
	assert.Equal(t, "12", spec.Render(types.Record{"views": 12}))
}

func TestBuild_OverridesWin(t *testing.T) {
	ellipsis := false
	spec := Build("title", types.ColumnOverrides{
		Label:    "Headline",
		Width:    300,
		Ellipsis: &ellipsis,
		Align:    types.AlignRight,
	}, posts(), Options{})

	assert.Equal(t, "Headline", spec.Label)
	assert.Equal(t, 300, spec.Width)
	assert.False(t, spec.Ellipsis)
	assert.Equal(t, types.AlignRight, spec.Align)
	assert.True(t, spec.Filterable(), "overrides keep the template matcher")
}

func TestBuild_StatusChoices(t *testing.T) {
	spec := Build("status", types.ColumnOverrides{}, posts(), Options{})
	assert.Equal(t, []types.FilterChoice{
		{Text: "Published", Value: "published"},
		{Text: "Draft", Value: "draft"},
		{Text: "unknown-status", Value: "unknown-status"},
	}, spec.FilterChoices)
	assert.True(t, spec.FilterMultiple)

	ru := Build("status", types.ColumnOverrides{}, posts(), Options{Locale: "ru"})
	assert.Equal(t, "Статус", ru.Label)
	assert.Equal(t, "Опубликован", ru.FilterChoices[0].Text)
	assert.Equal(t, "Черновик", ru.Render(types.Record{"status": "draft"}))
}

func TestBuild_ChoicesFromOverrides(t *testing.T) {
	choices := []types.FilterChoice{{Text: "Live", Value: "published"}}
	spec := Build("status", types.ColumnOverrides{FilterChoices: choices}, posts(), Options{})
	assert.Equal(t, choices, spec.FilterChoices)
}

func TestBuild_TimestampColumn(t *testing.T) {
	spec := Build("createdAt", types.ColumnOverrides{}, posts(), Options{})

	require.Len(t, spec.DateTree, 2)
	assert.Equal(t, "year-2024", spec.DateTree[0].Key)
	assert.Equal(t, 2, spec.DateTree[0].Count)
	assert.Equal(t, 1, spec.DateTree[1].Count)

	assert.Equal(t, "01.03.2024 10:00", spec.Render(posts()[0]))
	assert.Equal(t, types.EmptyCell, spec.Render(posts()[4]))
	assert.Equal(t, "not a date", spec.Render(posts()[3]))
	assert.Len(t, spec.FilterChoices, 4)

	matched := 0
	for _, record := range posts() {
		if spec.Matcher([]string{"month-2024-03"}, record) {
			matched++
		}
	}
	assert.Equal(t, 2, matched)
}

func TestBuild_TimestampFieldOverride(t *testing.T) {
	spec := Build("createdAt", types.ColumnOverrides{Field: "updatedAt", Layout: "2006-01-02"}, posts(), Options{})
	assert.Equal(t, "updatedAt", spec.Field)
	assert.Equal(t, []string{"date-2024-05-01"}, leafKeys(spec.DateTree))
	assert.Equal(t, "2024-05-01", spec.Render(posts()[0]))
}

func TestBuild_TimestampLocation(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	spec := Build("createdAt", types.ColumnOverrides{}, posts(), Options{Location: msk})
	assert.Equal(t, "02.03.2024 02:00", spec.Render(posts()[1]))
}

func TestBuild_TimestampComparator(t *testing.T) {
	spec := Build("createdAt", types.ColumnOverrides{}, nil, Options{})
	early := types.Record{"createdAt": "2024-03-01T10:00:00+03:00"}
	late := types.Record{"createdAt": "2024-03-01T09:00:00Z"}
	broken := types.Record{"createdAt": "???"}

	assert.Equal(t, -1, spec.Comparator(early, late), "instants compare across offsets")
	assert.Equal(t, 1, spec.Comparator(late, early))
	assert.Equal(t, -1, spec.Comparator(broken, early), "unparseable dates order first")
	assert.Equal(t, 0, spec.Comparator(broken, types.Record{}))
}

func TestBuildAll(t *testing.T) {
	specs := BuildAll(types.DefaultColumns(), posts(), Options{})
	require.Len(t, specs, 5)

	keys := make([]string, 0, len(specs))
	for _, spec := range specs {
		keys = append(keys, spec.Key)
	}
	assert.Equal(t, []string{"id", "title", "status", "createdAt", "actions"}, keys)
	assert.Equal(t, 300, specs[1].Width)

	found, err := Find(specs, "status")
	require.NoError(t, err)
	assert.Equal(t, types.Enumerated, found.Kind)

	_, err = Find(specs, "missing")
	assert.Error(t, err)
}

func TestDistinctChoices(t *testing.T) {
	records := []types.Record{
		{"n": 2.0}, {"n": 1.0}, {"n": 2.0}, {"n": nil}, {}, {"n": "1"},
	}
	assert.Equal(t, []types.FilterChoice{
		{Text: "2", Value: "2"},
		{Text: "1", Value: "1"},
	}, DistinctChoices(records, "n", nil))
	assert.Empty(t, DistinctChoices(nil, "n", nil))
}

func leafKeys(tree []*types.DateTreeNode) []string {
	var keys []string
	for _, year := range tree {
		for _, month := range year.Children {
			for _, day := range month.Children {
				keys = append(keys, day.Key)
			}
		}
	}
	return keys
}
