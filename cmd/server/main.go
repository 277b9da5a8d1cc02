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
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/wso2/identity-user-profile-service/internal/system/config"
	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/managers"
)

const configFile = "/repository/conf/deployment.yaml"

const shutdownTimeout = 10 * time.Second

func main() {

	profileHome := getProfileHome()

	envFiles, err := filepath.Glob(filepath.Join(profileHome, "config", "*.env"))
	if err != nil || len(envFiles) == 0 {
		log.GetLogger().Warn("No .env files found in config directory")
	} else {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file
	profileConfig, err := config.LoadConfig(profileHome, configFile)
	if err != nil {
		log.GetLogger().Fatal("Failed to load configuration", log.Error(err))
	}

	// Initialize runtime configurations.
	if err := config.InitializeProfileRuntime(profileHome, profileConfig); err != nil {
		log.GetLogger().Fatal("Failed to initialize runtime", log.Error(err))
	}

	if err := log.Init(profileConfig.Log.LogLevel); err != nil {
		log.GetLogger().Fatal("Failed to initialize logger", log.Error(err))
	}
	logger := log.GetLogger()

	if err := initDatabase(); err != nil {
		logger.Fatal("Failed to initialize database", log.Error(err))
	}
	defer func() {
		_ = provider.CloseDB()
	}()

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)
	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", profileConfig.Addr.Host, profileConfig.Addr.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           serviceManager.Handler(*profileConfig),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("User profile service starting", log.String("address", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("User profile service shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("Server stopped with error", log.Error(err))
		os.Exit(1)
	}
}

// initDatabase opens the shared pool and installs the schema.
func initDatabase() error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return err
	}
	defer dbClient.Close()
	return dbClient.InitDatabase()
}

func getProfileHome() string {

	// Parse project directory from command line arguments.
	projectHomeFlag := flag.String("profileHome", "", "Path to user profile service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag
	}
	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		log.GetLogger().Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}
