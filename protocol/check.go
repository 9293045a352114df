/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package protocol

import (
	"github.com/spf13/cobra"

	"github.com/datazip-inc/olake-tableview/source"
	"github.com/datazip-inc/olake-tableview/types"
)

// checkCmd reports whether the configured records can be loaded
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check that the records source is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		result := source.Load(cmd.Context(), source.New(config.Records, config.HTTPTimeout))

		message := types.Message{
			Type: types.ConnectionStatusMessage,
			ConnectionStatus: &types.StatusRow{
				Status:  types.ConnectionSucceed,
				Records: len(result.Records),
			},
		}
		if result.Err != nil {
			message.ConnectionStatus.Message = result.Err.Error()
			message.ConnectionStatus.Status = types.ConnectionFailed
		}
		return writeJSON(cmd.OutOrStdout(), message)
	},
}
