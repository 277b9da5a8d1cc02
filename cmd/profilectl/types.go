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
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	"github.com/wso2/identity-user-profile-service/internal/profile_type/provider"
)

func init() {
	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "Manage profile types",
	}
	typesCmd.AddCommand(newTypesImportCmd())
	rootCmd.AddCommand(typesCmd)
}

func newTypesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create or update profile types from a YAML file",
		Example: `  profilectl types import profile_types.yaml

  # profile_types.yaml
  profile_types:
    - id: customer
      label: Customer
      multiple: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			var file model.ProfileTypeFile
			if err := yaml.UnmarshalStrict(content, &file); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			if len(file.ProfileTypes) == 0 {
				return fmt.Errorf("%s declares no profile types", args[0])
			}
			service := provider.NewProfileTypeProvider().GetProfileTypeService()
			created, updated, err := service.ImportProfileTypes(adminContext(), file.ProfileTypes)
			if err != nil {
				return fmt.Errorf("import stopped after %d created and %d updated: %w", created, updated, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported profile types: %d created, %d updated.\n", created, updated)
			return nil
		},
	}
}
