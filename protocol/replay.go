package protocol

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/logger"
)

var eventsPath string

// replayCmd feeds recorded change events through the controller one by one
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replay a file of json change events and print the view after each",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if eventsPath == "" {
			return fmt.Errorf("--events not passed")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, err := os.Open(eventsPath)
		if err != nil {
			return fmt.Errorf("failed to open events file: %s", err)
		}
		defer file.Close()

		events, err := decodeEvents(file)
		if err != nil {
			return err
		}

		ctrl, err := loadController(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		specs := ctrl.Columns()
		for idx, event := range events {
			state := ctrl.OnChange(event)
			logger.Debugf("event %d applied, %d computations so far", idx+1, ctrl.Computations())

			page := renderPage(specs, ctrl.View(), config.Locale, config.TotalTemplate)
			page.State = &state
			if !asJSON {
				if _, err := fmt.Fprintf(out, "# event %d\n", idx+1); err != nil {
					return err
				}
			}
			if err := writePage(out, specs, page); err != nil {
				return err
			}
		}
		logger.Infof("replayed %d events with %d computations", len(events), ctrl.Computations())
		return nil
	},
}

// decodeEvents reads a stream of json change events, one per line or simply
// concatenated.
func decodeEvents(r io.Reader) ([]types.ChangeEvent, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var events []types.ChangeEvent
	for {
		var event types.ChangeEvent
		err := decoder.Decode(&event)
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode event %d: %s", len(events)+1, err)
		}
		events = append(events, event)
	}
}

func init() {
	replayCmd.Flags().StringVarP(&eventsPath, "events", "e", "", "(Required) File of json change events")
}
