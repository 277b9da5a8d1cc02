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
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
	sysContext "github.com/wso2/identity-user-profile-service/internal/system/context"
	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

var (
	profileHome string
	configFile  string
	verbose     bool
)

// bootstrap prepares the runtime before a command runs. Tests replace it.
var bootstrap = loadRuntime

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "profilectl",
	Short: "Administration tool for the user profile service",
	Long: `profilectl runs maintenance tasks against the user profile service
database: installing the schema, importing profile types and listing the
generated permissions.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return bootstrap()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	_ = provider.CloseDB()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileHome, "profileHome", "", "service home directory (default is the working directory)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "/repository/conf/deployment.yaml", "deployment file relative to the home directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func loadRuntime() error {

	home := profileHome
	if home == "" {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		home = dir
	}
	if envFiles, _ := filepath.Glob(filepath.Join(home, "config", "*.env")); len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}
	cfg, err := config.LoadConfig(home, configFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.LogLevel = "DEBUG"
	}
	if err := config.InitializeProfileRuntime(home, cfg); err != nil {
		return err
	}
	return log.Init(cfg.Log.LogLevel)
}

// adminContext acts as the configured administrator.
func adminContext() context.Context {

	authConfig := config.GetProfileRuntime().Config.AuthServer
	return sysContext.WithPrincipal(context.Background(), &authn.Principal{
		UserId:   authConfig.AdminUserId,
		Username: authConfig.AdminUsername,
		Admin:    true,
	})
}
