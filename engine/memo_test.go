package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/olake-tableview/types"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(types.FilterState{"title": {"x"}, "status": {"draft"}, "createdAt": {}}, types.SortState{Field: "id", Direction: types.Ascend})
	require.NoError(t, err)
	b, err := Fingerprint(types.FilterState{"status": {"draft"}, "title": {"x"}}, types.SortState{Field: "id", Direction: types.Ascend})
	require.NoError(t, err)
	assert.Equal(t, a, b, "key order and empty entries do not matter")

	c, err := Fingerprint(types.FilterState{"status": {"draft"}, "title": {"y"}}, types.SortState{Field: "id", Direction: types.Ascend})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	noSort, err := Fingerprint(nil, types.SortState{Field: "id"})
	require.NoError(t, err)
	empty, err := Fingerprint(types.FilterState{}, types.SortState{})
	require.NoError(t, err)
	assert.Equal(t, empty, noSort, "a sorter without direction is no sorter")
}

func TestMemo(t *testing.T) {
	records, specs := fixture()
	filters := types.FilterState{"status": {"published"}}
	sorter := types.SortState{Field: "id", Direction: types.Descend}
	gen := Generation{Records: 1, Columns: 1}

	var memo Memo
	first := memo.Apply(gen, records, specs, filters, sorter)
	assert.Equal(t, []float64{5, 3, 2}, ids(first))
	assert.Equal(t, 1, memo.Misses())

	again := memo.Apply(gen, records, specs, types.FilterState{"status": {"published"}}, sorter)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, memo.Misses(), "same query is served from the memo")

	memo.Apply(gen, records, specs, filters, types.SortState{Field: "id", Direction: types.Ascend})
	assert.Equal(t, 2, memo.Misses(), "sorter change recomputes")

	memo.Apply(Generation{Records: 2, Columns: 1}, records, specs, filters, types.SortState{Field: "id", Direction: types.Ascend})
	assert.Equal(t, 3, memo.Misses(), "new records recompute")

	memo.Invalidate()
	memo.Apply(Generation{Records: 2, Columns: 1}, records, specs, filters, types.SortState{Field: "id", Direction: types.Ascend})
	assert.Equal(t, 4, memo.Misses())
}
