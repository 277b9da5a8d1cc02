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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wso2/identity-user-profile-service/internal/permission/provider"
)

func init() {
	rootCmd.AddCommand(newPermissionsCmd())
}

func newPermissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "permissions",
		Short: "List the generated permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			permissions, err := provider.NewPermissionProvider().GetPermissionService().GetPermissions(adminContext())
			if err != nil {
				return fmt.Errorf("failed to list permissions: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			if _, err := fmt.Fprintln(w, "PERMISSION\tTITLE\tRESTRICTED"); err != nil {
				return fmt.Errorf("failed to write header: %w", err)
			}
			for _, permission := range permissions {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%t\n", permission.Name, permission.Title, permission.RestrictAccess); err != nil {
					return fmt.Errorf("failed to write permission: %w", err)
				}
			}
			return w.Flush()
		},
	}
}
