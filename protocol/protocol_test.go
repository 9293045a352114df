package protocol

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/olake-tableview/columns"
	"github.com/datazip-inc/olake-tableview/datetree"
	"github.com/datazip-inc/olake-tableview/types"
)

const recordsJSON = `[
  {"id": 1, "title": "Hello world", "status": "published", "createdAt": "2024-03-01T10:00:00Z"},
  {"id": 2, "title": "Second", "status": "draft", "createdAt": "2024-03-02T10:00:00Z"},
  {"id": 3, "title": "Third", "status": "draft", "createdAt": "2024-04-05T10:00:00Z"}
]`

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{"status=draft", "status=published", "createdAt=range:2024-03-01|2024-03-02", "title="})
	require.NoError(t, err)
	assert.Equal(t, types.FilterState{
		"status":    {"draft", "published"},
		"createdAt": {"range:2024-03-01|2024-03-02"},
		"title":     {""},
	}, filters)

	for _, invalid := range []string{"status", "=draft", " =x"} {
		_, err := parseFilters([]string{invalid})
		assert.Error(t, err, invalid)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		value    string
		expected types.SortState
		wantErr  bool
	}{
		{"id", types.SortState{Field: "id", Direction: types.Ascend}, false},
		{"id:ascend", types.SortState{Field: "id", Direction: types.Ascend}, false},
		{"createdAt:descend", types.SortState{Field: "createdAt", Direction: types.Descend}, false},
		{"title:DESC", types.SortState{Field: "title", Direction: types.Descend}, false},
		{"title:sideways", types.SortState{}, true},
		{":ascend", types.SortState{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			sorter, err := parseSort(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sorter)
		})
	}
}

func TestBuildEvent(t *testing.T) {
	event, err := buildEvent(nil, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, types.ChangeEvent{}, event)

	event, err = buildEvent([]string{"status=draft"}, "id:descend", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, types.FilterState{"status": {"draft"}}, event.Filters)
	assert.Equal(t, &types.SortState{Field: "id", Direction: types.Descend}, event.Sorter)
	assert.Equal(t, &types.PageChange{Current: 2, PageSize: 5}, event.Pagination)

	_, err = buildEvent([]string{"nope"}, "", 0, 0)
	assert.Error(t, err)
}

func TestDecodeEvents(t *testing.T) {
	input := `{"filters": {"status": ["draft"]}}
{"pagination": {"current": 2}}
{"sorter": {"field": "id", "order": "descend"}}
{"filters": {"status": []}, "pagination": {"page_size": 20}}
`
	events, err := decodeEvents(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, types.FilterState{"status": {"draft"}}, events[0].Filters)
	assert.Equal(t, 2, events[1].Pagination.Current)
	assert.Equal(t, types.Descend, events[2].Sorter.Direction)
	assert.Equal(t, []string{}, events[3].Filters["status"])
	assert.Equal(t, 20, events[3].Pagination.PageSize)

	_, err = decodeEvents(strings.NewReader(`{"filter": {}}`))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = decodeEvents(strings.NewReader(`{"filters": `))
	assert.Error(t, err)

	events, err = decodeEvents(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRenderPage(t *testing.T) {
	var records []types.Record
	require.NoError(t, json.Unmarshal([]byte(recordsJSON), &records))
	specs := columns.BuildAll(types.DefaultColumns(), records, columns.Options{})

	view := types.View{Rows: records[:2], Pagination: types.Pagination{Current: 1, PageSize: 2, Total: 3}}
	page := renderPage(specs, view, "en", "%d-%d of %d")

	assert.Equal(t, []string{"id", "title", "status", "createdAt", "actions"}, page.Columns)
	assert.Equal(t, "1-2 of 3", page.Summary)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, map[string]string{
		"id":        "2",
		"title":     "Second",
		"status":    "Draft",
		"createdAt": "02.03.2024 10:00",
		"actions":   "Edit | Delete",
	}, page.Rows[1])

	var out bytes.Buffer
	require.NoError(t, writePage(&out, specs, page))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Created at")
	assert.Contains(t, lines[1], "Hello world")
	assert.Equal(t, "1-2 of 3 (page 1 of 2)", lines[3])
}

func TestWriteTree(t *testing.T) {
	var records []types.Record
	require.NoError(t, json.Unmarshal([]byte(recordsJSON), &records))
	tree := datetree.Build(records, "createdAt", datetree.Options{})

	var out bytes.Buffer
	require.NoError(t, writeTree(&out, tree))
	assert.Equal(t, `2024 (3)  year-2024
  March (2)  month-2024-03
    1 March (1)  date-2024-03-01
    2 March (1)  date-2024-03-02
  April (1)  month-2024-04
    5 April (1)  date-2024-04-05
`, out.String())
}

func TestQueryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(recordsJSON), 0o600))

	root := CreateRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"query", "--records", path, "--filter", "status=draft", "--sort", "id:descend", "--json"})
	require.NoError(t, root.Execute())

	var page pageOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	assert.Equal(t, types.Pagination{Current: 1, PageSize: 10, Total: 2}, page.Pagination)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "3", page.Rows[0]["id"])
	assert.Equal(t, "2", page.Rows[1]["id"])
	require.NotNil(t, page.State)
	assert.Equal(t, types.FilterState{"status": {"draft"}}, page.State.Filters)
}
