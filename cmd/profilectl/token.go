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
	"time"

	"github.com/spf13/cobra"

	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
)

func init() {
	rootCmd.AddCommand(newTokenCmd())
}

func newTokenCmd() *cobra.Command {
	var (
		uid         int64
		username    string
		roles       []string
		permissions []string
		ttl         time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with the configured secret",
		Example: `  profilectl token --uid 2 --username jane \
    --permission "create customer profile" --permission "edit own customer profile"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if uid <= 0 {
				return fmt.Errorf("--uid must be a positive user id")
			}
			token, err := authn.IssueToken(authn.Principal{
				UserId:      uid,
				Username:    username,
				Roles:       roles,
				Permissions: permissions,
			}, config.GetProfileRuntime().Config.AuthServer, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&uid, "uid", 0, "user id placed in the subject claim")
	cmd.Flags().StringVar(&username, "username", "", "display name of the user")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "role granted to the user (repeatable)")
	cmd.Flags().StringArrayVar(&permissions, "permission", nil, "permission granted to the user (repeatable)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
