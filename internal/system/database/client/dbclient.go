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

package client

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/database/scripts"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	ExecuteQuery(query string, args ...interface{}) ([]map[string]interface{}, error)
	Execute(query string, args ...interface{}) (int64, error)
	BeginTx() (*sql.Tx, error)
	Dialect() string
	Close() error
	InitDatabase() error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db      *sql.DB
	dialect string
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
func NewDBClient(db *sql.DB, dialect string) DBClientInterface {

	return &DBClient{
		db:      db,
		dialect: dialect,
	}
}

// InitDatabase installs the schema of the client's dialect. The scripts are idempotent.
func (client *DBClient) InitDatabase() error {

	schema, err := scripts.Schema(client.dialect)
	if err != nil {
		return err
	}
	for _, statement := range splitStatements(schema) {
		if _, err := client.db.Exec(statement); err != nil {
			return fmt.Errorf("failed to execute schema: %w", err)
		}
	}
	log.GetLogger().Info("Database schema created successfully", log.String("dialect", client.dialect))
	return nil
}

// ExecuteQuery executes a SELECT query and returns the result as a slice of maps.
func (client *DBClient) ExecuteQuery(query string, args ...interface{}) ([]map[string]interface{}, error) {

	rows, err := client.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

// Execute runs a statement and returns the number of affected rows.
func (client *DBClient) Execute(query string, args ...interface{}) (int64, error) {

	result, err := client.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// BeginTx starts a new database transaction.
func (client *DBClient) BeginTx() (*sql.Tx, error) {

	return client.db.Begin()
}

func (client *DBClient) Dialect() string {
	return client.dialect
}

// Close releases the client. The underlying pool is shared across the process
// and is closed by provider.CloseDB on shutdown.
func (client *DBClient) Close() error {
	return nil
}

// QueryTx executes a SELECT query inside tx.
func QueryTx(tx *sql.Tx, query string, args ...interface{}) ([]map[string]interface{}, error) {

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

// InsertTx executes an INSERT inside tx and returns the generated key. Postgres
// statements carry a RETURNING clause; SQLite reports the last row id.
func InsertTx(tx *sql.Tx, dialect, query string, args ...interface{}) (int64, error) {

	if dialect == constants.DialectPostgres {
		var id int64
		if err := tx.QueryRow(query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func scanRows(rows *sql.Rows) ([]map[string]interface{}, error) {

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	for rows.Next() {
		row := make([]interface{}, len(columns))
		rowPointers := make([]interface{}, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := map[string]interface{}{}
		for i, col := range columns {
			// Normalize column names to lowercase for consistency.
			result[strings.ToLower(col)] = row[i]
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// splitStatements splits a schema script on statement terminators, dropping
// comment-only fragments.
func splitStatements(script string) []string {
	var statements []string
	for _, part := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		statement := strings.TrimSpace(strings.Join(lines, "\n"))
		if statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
