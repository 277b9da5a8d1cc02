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

package scripts

import (
	"regexp"
	"strconv"
)

var pgPlaceholder = regexp.MustCompile(`\$(\d+)`)

// dialectQuery keys a Postgres statement by dialect. SQLite receives the same
// statement with numbered "?N" parameters.
func dialectQuery(postgres string) map[string]string {
	return map[string]string{
		"postgres": postgres,
		"sqlite":   pgPlaceholder.ReplaceAllString(postgres, `?$1`),
	}
}

// Placeholder returns the n-th (1 based) bind parameter for a dialect.
func Placeholder(dialect string, n int) string {
	if dialect == "sqlite" {
		return "?" + strconv.Itoa(n)
	}
	return "$" + strconv.Itoa(n)
}

// Users

const userColumns = `uid, name, mail, roles, created_at`

var InsertUser = map[string]string{
	"postgres": `INSERT INTO users (name, mail, roles, created_at) VALUES ($1, $2, $3, $4) RETURNING uid`,
	"sqlite":   `INSERT INTO users (name, mail, roles, created_at) VALUES (?1, ?2, ?3, ?4)`,
}

var GetUserById = dialectQuery(`SELECT ` + userColumns + ` FROM users WHERE uid = $1`)

var GetUserByName = dialectQuery(`SELECT ` + userColumns + ` FROM users WHERE name = $1`)

var GetUsers = dialectQuery(`SELECT ` + userColumns + ` FROM users WHERE uid > $1 ORDER BY uid LIMIT $2`)

var DeleteUser = dialectQuery(`DELETE FROM users WHERE uid = $1`)

var DeleteProfileRevisionsByOwner = dialectQuery(
	`DELETE FROM profile_revision WHERE profile_id IN (SELECT profile_id FROM profile WHERE uid = $1)`)

var DeleteProfilesByOwner = dialectQuery(`DELETE FROM profile WHERE uid = $1`)

// Profile types

const profileTypeColumns = `id, label, display_label, multiple, registration, roles, use_revisions,
    publish_label, unpublish_label, activate_label, deactivate_label, weight`

var InsertProfileType = dialectQuery(`INSERT INTO profile_type (` + profileTypeColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)

var UpdateProfileType = dialectQuery(`UPDATE profile_type SET label = $1, display_label = $2, multiple = $3,
    registration = $4, roles = $5, use_revisions = $6, publish_label = $7, unpublish_label = $8,
    activate_label = $9, deactivate_label = $10, weight = $11 WHERE id = $12`)

var GetProfileTypeById = dialectQuery(`SELECT ` + profileTypeColumns + ` FROM profile_type WHERE id = $1`)

var GetProfileTypes = dialectQuery(`SELECT ` + profileTypeColumns + ` FROM profile_type ORDER BY weight, label`)

var DeleteProfileType = dialectQuery(`DELETE FROM profile_type WHERE id = $1`)

var CountProfilesByType = dialectQuery(`SELECT COUNT(*) AS total FROM profile WHERE type = $1`)

// Profiles

const ProfileColumns = `profile_id, revision_id, type, uid, status, is_default, langcode, data, created_at, updated_at`

var InsertProfile = map[string]string{
	"postgres": `INSERT INTO profile (type, uid, status, is_default, langcode, data, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING profile_id`,
	"sqlite": `INSERT INTO profile (type, uid, status, is_default, langcode, data, created_at, updated_at)
    VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8)`,
}

var UpdateProfile = dialectQuery(`UPDATE profile SET revision_id = $1, status = $2, is_default = $3,
    langcode = $4, data = $5, updated_at = $6 WHERE profile_id = $7`)

var SetProfileRevision = dialectQuery(`UPDATE profile SET revision_id = $1 WHERE profile_id = $2`)

var SetProfileDefault = dialectQuery(`UPDATE profile SET is_default = $1, updated_at = $2 WHERE profile_id = $3`)

var SetCurrentRevisionDefault = dialectQuery(`UPDATE profile_revision SET is_default = $1
    WHERE revision_id = (SELECT revision_id FROM profile WHERE profile_id = $2)`)

var GetProfileById = dialectQuery(`SELECT ` + ProfileColumns + ` FROM profile WHERE profile_id = $1`)

var GetProfilesByIds = dialectQuery(`SELECT ` + ProfileColumns + ` FROM profile WHERE profile_id IN (%s) ORDER BY profile_id`)

// GetSiblingProfiles locks nothing; callers run it inside the save transaction.
var GetSiblingProfiles = dialectQuery(`SELECT ` + ProfileColumns + ` FROM profile
    WHERE uid = $1 AND type = $2 AND profile_id <> $3 ORDER BY profile_id`)

var GetProfilesByOwnerAndType = dialectQuery(`SELECT ` + ProfileColumns + ` FROM profile
    WHERE uid = $1 AND type = $2 ORDER BY profile_id`)

var GetDefaultProfileByOwnerAndType = dialectQuery(`SELECT ` + ProfileColumns + ` FROM profile
    WHERE uid = $1 AND type = $2 AND is_default = $3 ORDER BY profile_id LIMIT 1`)

var CountProfilesByOwnerAndType = dialectQuery(`SELECT COUNT(*) AS total FROM profile WHERE uid = $1 AND type = $2`)

var ListProfilesBase = dialectQuery(`SELECT ` + ProfileColumns + ` FROM profile WHERE profile_id > $1`)

var DeleteProfile = dialectQuery(`DELETE FROM profile WHERE profile_id = $1`)

// Revisions

const revisionColumns = `revision_id, profile_id, status, is_default, langcode, data,
    revision_created, revision_user, revision_log`

var InsertProfileRevision = map[string]string{
	"postgres": `INSERT INTO profile_revision (profile_id, status, is_default, langcode, data,
    revision_created, revision_user, revision_log) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING revision_id`,
	"sqlite": `INSERT INTO profile_revision (profile_id, status, is_default, langcode, data,
    revision_created, revision_user, revision_log) VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8)`,
}

var UpdateProfileRevision = dialectQuery(`UPDATE profile_revision SET status = $1, is_default = $2, langcode = $3,
    data = $4, revision_created = $5, revision_user = $6, revision_log = $7 WHERE revision_id = $8`)

var GetProfileRevisions = dialectQuery(`SELECT ` + revisionColumns + ` FROM profile_revision
    WHERE profile_id = $1 ORDER BY revision_id`)

var DeleteProfileRevisions = dialectQuery(`DELETE FROM profile_revision WHERE profile_id = $1`)

var SchemaProbe = dialectQuery(`SELECT (SELECT COUNT(*) FROM profile_type) AS profile_types,
    (SELECT COUNT(*) FROM profile) AS profiles`)
