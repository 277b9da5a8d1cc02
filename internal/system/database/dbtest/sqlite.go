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

// Package dbtest provides an in-memory SQLite database for store and service tests.
package dbtest

import (
	"database/sql"
	"testing"

	"github.com/wso2/identity-user-profile-service/internal/system/config"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/database/client"
	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
	_ "modernc.org/sqlite"
)

// TestConfig is installed as the runtime configuration by Setup.
var TestConfig = config.Config{
	Log:        config.LogConfig{LogLevel: "DEBUG"},
	DataSource: config.DataSourceConfig{Type: constants.DialectSQLite},
	Language:   config.LanguageConfig{DefaultLangcode: constants.DefaultLangcode},
	AuthServer: config.AuthServerConfig{
		Issuer:        "profile-test",
		Audience:      "user-profile-service",
		SigningSecret: "test-secret",
		AdminUsername: "admin",
		AdminPassword: "admin",
		AdminUserId:   1,
	},
}

// Setup opens a fresh in-memory database with the schema installed and makes
// it the shared pool for the duration of the test.
func Setup(t testing.TB) *sql.DB {
	t.Helper()

	_ = config.InitializeProfileRuntime("", &TestConfig)

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	if err := client.NewDBClient(db, constants.DialectSQLite).InitDatabase(); err != nil {
		t.Fatalf("install schema: %v", err)
	}
	provider.SetTestDB(db, constants.DialectSQLite)
	t.Cleanup(func() {
		_ = provider.CloseDB()
	})
	return db
}
