package protocol

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/datazip-inc/olake-tableview/types"
)

// columnsCmd prints the column descriptors built over the current records
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "list columns with their filter choices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctrl, err := loadController(cmd.Context())
		if err != nil {
			return err
		}
		specs := ctrl.Columns()
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), specs)
		}
		return writeColumns(cmd, specs)
	},
}

func writeColumns(cmd *cobra.Command, specs []types.ColumnSpec) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tFIELD\tLABEL\tKIND\tWIDTH\tFILTER\tSORT\tCHOICES")
	for _, spec := range specs {
		choices := make([]string, 0, len(spec.FilterChoices))
		for _, choice := range spec.FilterChoices {
			choices = append(choices, choice.Text)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%t\t%t\t%s\n",
			spec.Key, spec.Field, spec.Label, spec.Kind, spec.Width, spec.Filterable(), spec.Sortable(), strings.Join(choices, ", "))
	}
	return tw.Flush()
}
