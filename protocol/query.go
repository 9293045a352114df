package protocol

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datazip-inc/olake-tableview/types"
)

var (
	filterFlags []string
	sortFlag    string
	pageFlag    int
	pageSize    int
)

// queryCmd applies one change event to a fresh table and prints the page
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "filter, sort and page the records",
	Example: `  tableview query --filter status=draft --filter title=hello --sort createdAt:descend
  tableview query --filter createdAt=date-2024-03-01 --filter createdAt=month-2024-04
  tableview query --filter "createdAt=range:2024-03-01|2024-03-31" --page 2 --page-size 5`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if pageFlag < 0 || pageSize < 0 {
			return fmt.Errorf("--page and --page-size must not be negative")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		event, err := buildEvent(filterFlags, sortFlag, pageFlag, pageSize)
		if err != nil {
			return err
		}

		ctrl, err := loadController(cmd.Context())
		if err != nil {
			return err
		}
		// page size first, it moves back to page one
		if event.Pagination != nil && event.Pagination.PageSize > 0 {
			ctrl.OnChange(types.ChangeEvent{Pagination: &types.PageChange{PageSize: event.Pagination.PageSize}})
		}
		state := ctrl.OnChange(event)

		specs := ctrl.Columns()
		page := renderPage(specs, ctrl.View(), config.Locale, config.TotalTemplate)
		page.State = &state
		return writePage(cmd.OutOrStdout(), specs, page)
	},
}

// buildEvent turns the query flags into one change event
func buildEvent(filters []string, sorter string, current, size int) (types.ChangeEvent, error) {
	event := types.ChangeEvent{}

	parsed, err := parseFilters(filters)
	if err != nil {
		return event, err
	}
	if len(parsed) > 0 {
		event.Filters = parsed
	}

	if sorter != "" {
		sort, err := parseSort(sorter)
		if err != nil {
			return event, err
		}
		event.Sorter = &sort
	}

	if current > 0 || size > 0 {
		event.Pagination = &types.PageChange{Current: current, PageSize: size}
	}
	return event, nil
}

// parseFilters reads field=token pairs; repeating a field adds tokens to it
func parseFilters(values []string) (types.FilterState, error) {
	filters := types.FilterState{}
	for _, value := range values {
		field, token, found := strings.Cut(value, "=")
		field = strings.TrimSpace(field)
		if !found || field == "" {
			return nil, fmt.Errorf("invalid filter %q, expected field=token", value)
		}
		filters[field] = append(filters[field], token)
	}
	return filters, nil
}

// parseSort reads field[:ascend|descend], ascending by default
func parseSort(value string) (types.SortState, error) {
	field, direction, _ := strings.Cut(value, ":")
	field = strings.TrimSpace(field)
	if field == "" {
		return types.SortState{}, fmt.Errorf("invalid sort %q, expected field[:ascend|descend]", value)
	}

	switch types.SortDirection(strings.ToLower(direction)) {
	case "", types.Ascend, "asc":
		return types.SortState{Field: field, Direction: types.Ascend}, nil
	case types.Descend, "desc":
		return types.SortState{Field: field, Direction: types.Descend}, nil
	default:
		return types.SortState{}, fmt.Errorf("invalid sort direction %q, expected ascend or descend", direction)
	}
}

func init() {
	queryCmd.Flags().StringArrayVarP(&filterFlags, "filter", "f", nil, "(Optional) Filter as field=token, repeatable")
	queryCmd.Flags().StringVarP(&sortFlag, "sort", "s", "", "(Optional) Sort as field[:ascend|descend]")
	queryCmd.Flags().IntVarP(&pageFlag, "page", "p", 0, "(Optional) Page number, starting at 1")
	queryCmd.Flags().IntVarP(&pageSize, "page-size", "", 0, "(Optional) Rows per page")
}
