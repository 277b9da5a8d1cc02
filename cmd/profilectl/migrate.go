/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
)

func init() {
	rootCmd.AddCommand(newMigrateCmd())
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Short:   "Install the database schema",
		Example: `  profilectl migrate --profileHome /opt/profile-service`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbClient, err := provider.NewDBProvider().GetDBClient()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer dbClient.Close()
			if err := dbClient.InitDatabase(); err != nil {
				return fmt.Errorf("failed to install schema: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema installed (%s).\n", dbClient.Dialect())
			return nil
		},
	}
}
