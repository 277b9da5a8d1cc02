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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInitDatabaseAndQuery(t *testing.T) {
	dbClient := NewDBClient(openSQLite(t), constants.DialectSQLite)
	require.NoError(t, dbClient.InitDatabase())
	// Idempotent.
	require.NoError(t, dbClient.InitDatabase())

	affected, err := dbClient.Execute(`INSERT INTO users (name, mail, roles, created_at) VALUES (?1, ?2, ?3, ?4)`,
		"jane", "jane@example.com", "[]", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	rows, err := dbClient.ExecuteQuery(`SELECT UID, name FROM users WHERE name = ?1`, "jane")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "jane", rows[0]["name"])
	assert.Contains(t, rows[0], "uid")
}

func TestInsertTxReturnsKey(t *testing.T) {
	dbClient := NewDBClient(openSQLite(t), constants.DialectSQLite)
	require.NoError(t, dbClient.InitDatabase())

	tx, err := dbClient.BeginTx()
	require.NoError(t, err)
	first, err := InsertTx(tx, dbClient.Dialect(),
		`INSERT INTO users (name, created_at) VALUES (?1, ?2)`, "a", 1)
	require.NoError(t, err)
	second, err := InsertTx(tx, dbClient.Dialect(),
		`INSERT INTO users (name, created_at) VALUES (?1, ?2)`, "b", 1)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)

	rows, err := QueryTx(tx, `SELECT name FROM users ORDER BY uid`)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	require.NoError(t, tx.Commit())
}

func TestSplitStatements(t *testing.T) {
	statements := splitStatements(`
-- leading comment
CREATE TABLE a (id INT);

-- second
CREATE INDEX b ON a (id);
`)
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX b ON a (id)"}, statements)
}
