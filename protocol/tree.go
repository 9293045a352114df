package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/datetree"
	"github.com/datazip-inc/olake-tableview/types"
)

var treeField string

// treeCmd prints the year/month/day hierarchy of a date field
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "print the date hierarchy of a date field with record counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctrl, err := loadController(cmd.Context())
		if err != nil {
			return err
		}

		tree := datetree.Build(ctrl.Rows(), treeField, datetree.Options{
			Location: config.Location(),
			Locale:   config.Locale,
		})
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), tree)
		}
		return writeTree(cmd.OutOrStdout(), tree)
	},
}

var indent = map[types.DateLevel]int{
	types.YearLevel:  0,
	types.MonthLevel: 1,
	types.DayLevel:   2,
}

func writeTree(w io.Writer, tree []*types.DateTreeNode) error {
	var err error
	datetree.Walk(tree, func(node *types.DateTreeNode) bool {
		_, err = fmt.Fprintf(w, "%s%s (%d)  %s\n", strings.Repeat("  ", indent[node.Level]), node.Label, node.Count, node.Key)
		return err == nil
	})
	return err
}

func init() {
	treeCmd.Flags().StringVarP(&treeField, "field", "", constants.DefaultDateField, "(Optional) Date field to group by")
}
