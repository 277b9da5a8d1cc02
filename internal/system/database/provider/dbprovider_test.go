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

package provider

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
)

func TestGetDBConfigPostgres(t *testing.T) {
	cfg := config.Config{DataSource: config.DataSourceConfig{
		Type: "postgres", Hostname: "db", Port: 5432, Username: "u", Password: "p", Name: "profiles", SSLMode: "disable",
		MaxOpen: 8,
	}}
	dbConfig, err := getDBConfig("", cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dbConfig.driverName)
	assert.Equal(t, 8, dbConfig.maxOpen)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=profiles sslmode=disable", dbConfig.dsn)
}

func TestGetDBConfigSQLite(t *testing.T) {
	cfg := config.Config{DataSource: config.DataSourceConfig{Type: "sqlite", Path: "data/profiles.db"}}
	dbConfig, err := getDBConfig("/opt/profile", cfg)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", dbConfig.driverName)
	assert.Equal(t, 1, dbConfig.maxOpen)
	assert.Contains(t, dbConfig.dsn, "file:"+filepath.Join("/opt/profile", "data/profiles.db")+"?")
	assert.Contains(t, dbConfig.dsn, "_pragma=foreign_keys(1)")

	cfg.DataSource.Path = ""
	dbConfig, err = getDBConfig("", cfg)
	require.NoError(t, err)
	assert.Contains(t, dbConfig.dsn, "file::memory:")
}

func TestGetDBConfigUnsupported(t *testing.T) {
	_, err := getDBConfig("", config.Config{DataSource: config.DataSourceConfig{Type: "mongodb"}})
	assert.Error(t, err)
}
