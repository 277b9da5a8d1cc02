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
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"

	_ "github.com/lib/pq"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/database/client"
	_ "modernc.org/sqlite"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
	dialect    string
	maxOpen    int
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct{}

var (
	poolMu     sync.Mutex
	sharedDB   *sql.DB
	sharedType string
)

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider() DBProviderInterface {

	return &DBProvider{}
}

// GetDBClient returns a client over the process wide pool, opening it on first use.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	poolMu.Lock()
	defer poolMu.Unlock()

	if sharedDB == nil {
		runtimeConfig := config.GetProfileRuntime()
		dbConfig, err := getDBConfig(runtimeConfig.ProfileHome, runtimeConfig.Config)
		if err != nil {
			return nil, err
		}

		db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}
		if dbConfig.maxOpen > 0 {
			db.SetMaxOpenConns(dbConfig.maxOpen)
		}

		// Test the database connection.
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %v", err)
		}
		sharedDB = db
		sharedType = dbConfig.dialect
	}

	return client.NewDBClient(sharedDB, sharedType), nil
}

// SetTestDB installs an already opened pool, replacing any existing one.
func SetTestDB(db *sql.DB, dialect string) {

	poolMu.Lock()
	defer poolMu.Unlock()
	sharedDB = db
	sharedType = dialect
}

// CloseDB closes the shared pool.
func CloseDB() error {

	poolMu.Lock()
	defer poolMu.Unlock()
	if sharedDB == nil {
		return nil
	}
	err := sharedDB.Close()
	sharedDB = nil
	return err
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(profileHome string, cfg config.Config) (DBConfig, error) {

	dataSource := cfg.DataSource
	switch dataSource.Type {
	case constants.DialectPostgres:
		return DBConfig{
			driverName: "postgres",
			dialect:    constants.DialectPostgres,
			maxOpen:    dataSource.MaxOpen,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case constants.DialectSQLite:
		return DBConfig{
			driverName: "sqlite",
			dialect:    constants.DialectSQLite,
			// SQLite allows a single writer; one connection keeps transactions serialized.
			maxOpen: 1,
			dsn:     sqliteDSN(profileHome, dataSource.Path),
		}, nil
	}
	return DBConfig{}, fmt.Errorf("unsupported datasource type %q", dataSource.Type)
}

func sqliteDSN(profileHome, path string) string {
	const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path == "" || path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	if !filepath.IsAbs(path) && profileHome != "" {
		path = filepath.Join(profileHome, path)
	}
	return "file:" + filepath.Clean(path) + "?" + pragmas + "&_pragma=journal_mode(WAL)"
}
