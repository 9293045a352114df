// Package controller owns the table state: pagination, filters and sorter. It
// applies user change events, keeps the total in step with the filtered rows
// and hands out the current page.
package controller

import (
	"sync"
	"time"

	"github.com/datazip-inc/olake-tableview/columns"
	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/engine"
	"github.com/datazip-inc/olake-tableview/predicate"
	"github.com/datazip-inc/olake-tableview/source"
	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils"
	"github.com/datazip-inc/olake-tableview/utils/logger"
)

type Options struct {
	PageSize      int
	Locale        string
	Location      *time.Location
	DateLayout    string
	TotalTemplate string
	Columns       []types.ColumnDef
	Registry      *predicate.Registry
}

// OptionsFromConfig maps a validated config onto controller options
func OptionsFromConfig(cfg *types.Config) Options {
	return Options{
		PageSize:      cfg.PageSize,
		Locale:        cfg.Locale,
		Location:      cfg.Location(),
		DateLayout:    cfg.DateLayout,
		TotalTemplate: cfg.TotalTemplate,
		Columns:       cfg.Columns,
	}
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = constants.DefaultPageSize
	}
	if o.Locale == "" {
		o.Locale = constants.DefaultLocale
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.DateLayout == "" {
		o.DateLayout = constants.DefaultDateTimeLayout
	}
	if o.TotalTemplate == "" {
		o.TotalTemplate = constants.DefaultTotalTemplate
	}
	if o.Columns == nil {
		o.Columns = types.DefaultColumns()
	}
	if o.Registry == nil {
		o.Registry = predicate.NewRegistry()
	}
	return o
}

// Controller is safe for concurrent use; state transitions are applied one at a time.
type Controller struct {
	mu   sync.Mutex
	opts Options

	records []types.Record
	specs   []types.ColumnSpec
	gen     engine.Generation
	memo    engine.Memo

	state   types.TableState
	loading bool
	err     error
}

func New(opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		opts:  opts,
		state: initialState(opts.PageSize),
	}
	c.rebuild(nil)
	return c
}

func initialState(pageSize int) types.TableState {
	return types.TableState{
		Pagination: types.Pagination{Current: 1, PageSize: pageSize},
		Filters:    types.FilterState{},
	}
}

// SetRecords replaces the record collection, rebuilding columns and the date
// tree. Filters, sorter and page are kept.
func (c *Controller) SetRecords(records []types.Record) types.TableState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebuild(records)
	return c.snapshot()
}

// SetResult is SetRecords for a fetch outcome; loading and error are passed
// through to the view untouched.
func (c *Controller) SetResult(result source.Result) types.TableState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = result.Loading
	c.err = result.Err
	c.rebuild(result.Records)
	return c.snapshot()
}

func (c *Controller) rebuild(records []types.Record) {
	c.records = records
	c.specs = columns.BuildAll(c.opts.Columns, records, columns.Options{
		Location:   c.opts.Location,
		Locale:     c.opts.Locale,
		DateLayout: c.opts.DateLayout,
		Registry:   c.opts.Registry,
	})
	c.gen.Records++
	c.gen.Columns++
	c.refresh()
}

// OnChange applies one user action and returns the resulting state.
//
// A page size change moves back to the first page. Filters merge per field
// and an empty token list removes the field. A sorter replaces the current
// one; a sorter without direction clears sorting. Afterwards the total is
// recounted and a page that starts past the end falls back to the first.
func (c *Controller) OnChange(event types.ChangeEvent) types.TableState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if page := event.Pagination; page != nil {
		if err := utils.Validate(page); err != nil {
			logger.Warnf("ignoring pagination change %+v: %s", *page, err)
		} else {
			c.paginate(*page)
		}
	}
	if event.Filters != nil {
		c.state.Filters = c.state.Filters.Merge(event.Filters)
	}
	if event.Sorter != nil {
		c.state.Sorter = event.Sorter.Normalize()
	}

	c.refresh()
	logger.Debugf("table change applied: page %d/%d, %d rows, filters %v, sorter %+v",
		c.state.Pagination.Current, c.state.Pagination.PageSize, c.state.Pagination.Total, c.state.Filters, c.state.Sorter)
	return c.snapshot()
}

// OnTableChange adapts the three argument table callback of the UI.
func (c *Controller) OnTableChange(pagination *types.PageChange, filters types.FilterState, sorter *types.SortState) types.TableState {
	return c.OnChange(types.ChangeEvent{Pagination: pagination, Filters: filters, Sorter: sorter})
}

func (c *Controller) paginate(page types.PageChange) {
	if page.PageSize > 0 && page.PageSize != c.state.Pagination.PageSize {
		c.state.Pagination.PageSize = page.PageSize
		c.state.Pagination.Current = 1
		return
	}
	if page.Current > 0 {
		c.state.Pagination.Current = page.Current
	}
}

// refresh recounts the total and pulls the page back into range
func (c *Controller) refresh() {
	rows := c.derive()
	c.state.Pagination.Total = len(rows)
	if c.state.Pagination.Current > 1 && c.state.Pagination.Start() >= len(rows) {
		c.state.Pagination.Current = 1
	}
}

func (c *Controller) derive() []types.Record {
	return c.memo.Apply(c.gen, c.records, c.specs, c.state.Filters, c.state.Sorter)
}

// Reset clears filters and sorter and returns to the first page of the
// initial page size.
func (c *Controller) Reset() types.TableState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = initialState(c.opts.PageSize)
	c.refresh()
	return c.snapshot()
}

// Columns returns the column descriptors built over the current records
func (c *Controller) Columns() []types.ColumnSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.ColumnSpec(nil), c.specs...)
}

// State returns a copy of the current state
func (c *Controller) State() types.TableState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Rows returns every filtered and sorted row, not just the current page
func (c *Controller) Rows() []types.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.Record(nil), c.derive()...)
}

// View returns what the table draws: the current page and its pagination.
func (c *Controller) View() types.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return types.View{
		Rows:       engine.Page(c.derive(), c.state.Pagination),
		Pagination: c.state.Pagination,
		Loading:    c.loading,
		Err:        c.err,
	}
}

// Summary renders the "from-to of total" line under the table
func (c *Controller) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Pagination.Summary(c.opts.TotalTemplate)
}

// Computations counts how often the rows were derived from scratch
func (c *Controller) Computations() int {
	return c.memo.Misses()
}

func (c *Controller) snapshot() types.TableState {
	return types.TableState{
		Pagination: c.state.Pagination,
		Filters:    c.state.Filters.Normalize(),
		Sorter:     c.state.Sorter,
	}
}
