package engine

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/logger"
)

// Generation identifies one version of the records and one version of the
// columns built over them. Callers bump the counters whenever either changes.
type Generation struct {
	Records uint64
	Columns uint64
}

// Memo remembers the last derived view so that page changes reuse it.
type Memo struct {
	mu     sync.Mutex
	key    string
	rows   []types.Record
	misses int
}

// Apply returns the cached rows when generation, filters and sorter are the
// same as in the previous call and recomputes them otherwise.
func (m *Memo) Apply(gen Generation, records []types.Record, specs []types.ColumnSpec, filters types.FilterState, sorter types.SortState) []types.Record {
	key, err := memoKey(gen, filters, sorter)
	if err != nil {
		logger.Warnf("failed to fingerprint query, recomputing: %s", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil && m.rows != nil && key == m.key {
		return m.rows
	}

	m.misses++
	m.rows = Apply(records, specs, filters, sorter)
	m.key = key
	return m.rows
}

// Misses counts how many times Apply had to recompute
func (m *Memo) Misses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}

// Invalidate drops the cached rows
func (m *Memo) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = ""
	m.rows = nil
}

// Fingerprint encodes the normalized filters and sorter. Map keys are
// encoded in sorted order, so equal states give equal fingerprints.
func Fingerprint(filters types.FilterState, sorter types.SortState) (string, error) {
	raw, err := json.Marshal(struct {
		Filters types.FilterState `json:"filters"`
		Sorter  types.SortState   `json:"sorter"`
	}{filters.Normalize(), sorter.Normalize()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal query: %s", err)
	}
	return string(raw), nil
}

func memoKey(gen Generation, filters types.FilterState, sorter types.SortState) (string, error) {
	fingerprint, err := Fingerprint(filters, sorter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d/%d/%s", gen.Records, gen.Columns, fingerprint), nil
}
