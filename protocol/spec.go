package protocol

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/datazip-inc/olake-tableview/types"
)

// specCmd prints the effective configuration after defaults, file, env and flags
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), types.Message{Type: types.SpecMessage, Spec: config})
		}

		// yaml goes through the json tags so keys match the config file
		raw, err := yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %s", err)
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}
