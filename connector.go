package tableview

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/datazip-inc/olake-tableview/protocol"
	"github.com/datazip-inc/olake-tableview/utils/logger"
	"github.com/datazip-inc/olake-tableview/utils/safego"
)

// Run executes the tableview command line and exits
func Run() {
	root := protocol.CreateRootCommand()
	defer safego.Recovery(commandPath(root, os.Args[1:]), true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute the root command
	err := root.ExecuteContext(ctx)
	if err != nil {
		logger.Fatal(err)
	}

	stop()
	os.Exit(0)
}

// commandPath names the command args resolve to, "tableview query" for
// "query --records posts.json". Unresolvable args name the root.
func commandPath(root *cobra.Command, args []string) string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == nil {
		return root.Name()
	}
	return cmd.CommandPath()
}
