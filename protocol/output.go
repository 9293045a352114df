package protocol

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/datazip-inc/olake-tableview/columns"
	"github.com/datazip-inc/olake-tableview/types"
)

// pageOutput is the json shape of one rendered page
type pageOutput struct {
	Columns    []string            `json:"columns"`
	Rows       []map[string]string `json:"rows"`
	Pagination types.Pagination    `json:"pagination"`
	Summary    string              `json:"summary"`
	State      *types.TableState   `json:"state,omitempty"`
}

func writeJSON(w io.Writer, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %s", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

// cell renders one column of record the way the table draws it
func cell(spec types.ColumnSpec, record types.Record, locale string) string {
	if spec.Kind == types.Action {
		labels := make([]string, 0, len(spec.Actions))
		for _, action := range spec.Actions {
			labels = append(labels, columns.ActionLabel(locale, action))
		}
		return strings.Join(labels, " | ")
	}
	return spec.Render(record)
}

func renderPage(specs []types.ColumnSpec, view types.View, locale, summaryTemplate string) pageOutput {
	out := pageOutput{
		Columns:    make([]string, 0, len(specs)),
		Rows:       make([]map[string]string, 0, len(view.Rows)),
		Pagination: view.Pagination,
		Summary:    view.Pagination.Summary(summaryTemplate),
	}
	for _, spec := range specs {
		out.Columns = append(out.Columns, spec.Key)
	}
	for _, record := range view.Rows {
		row := make(map[string]string, len(specs))
		for _, spec := range specs {
			row[spec.Key] = cell(spec, record, locale)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func writePage(w io.Writer, specs []types.ColumnSpec, page pageOutput) error {
	if asJSON {
		return writeJSON(w, page)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, 0, len(specs))
	for _, spec := range specs {
		headers = append(headers, spec.Label)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range page.Rows {
		cells := make([]string, 0, len(page.Columns))
		for _, key := range page.Columns {
			cells = append(cells, row[key])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s (page %d of %d)\n", page.Summary, page.Pagination.Current, max(page.Pagination.TotalPages(), 1))
	return err
}
