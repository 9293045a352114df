// Package source loads the records a table shows, either from an HTTP endpoint
// returning a JSON array or from a local JSON/YAML file.
package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/logger"
)

// Fetcher returns the full record collection
type Fetcher interface {
	Fetch(ctx context.Context) ([]types.Record, error)
}

// Result is what a fetch hands to the table: the records, whether they are
// still loading and the fetch error, if any.
type Result struct {
	Records []types.Record
	Loading bool
	Err     error
}

// Load runs f and wraps its outcome. A failed fetch keeps no records.
func Load(ctx context.Context, f Fetcher) Result {
	start := time.Now()
	records, err := f.Fetch(ctx)
	if err != nil {
		logger.Errorf("failed to load records: %s", err)
		return Result{Err: err}
	}
	logger.Infof("loaded %d records in %s", len(records), time.Since(start).Round(time.Millisecond))
	return Result{Records: records}
}

// New picks an HTTP fetcher for http(s) locations and a file fetcher otherwise
func New(location string, timeout time.Duration) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTP{URL: location, Timeout: timeout}
	}
	return &File{Path: location}
}

// decodeRecords decodes a JSON array of objects. Numbers stay float64, the
// way a browser would see them.
func decodeRecords(raw []byte) ([]types.Record, error) {
	var records []types.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %s", err)
	}
	if records == nil {
		records = []types.Record{}
	}
	return records, nil
}
