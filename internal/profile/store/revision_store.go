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

package store

import (
	"database/sql"
	"fmt"

	"github.com/wso2/identity-user-profile-service/internal/profile/model"
	"github.com/wso2/identity-user-profile-service/internal/system/database/client"
	"github.com/wso2/identity-user-profile-service/internal/system/database/scripts"
	errors2 "github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// saveRevisionTx writes a new revision row, or refreshes the current one in place,
// and points the profile at it. It returns the revision id in effect.
func saveRevisionTx(tx *sql.Tx, dialect string, profile model.Profile, data string, newRevision bool,
	options model.SaveOptions, timestamp int64) (int64, error) {

	if !newRevision && profile.RevisionId != 0 {
		_, err := tx.Exec(scripts.UpdateProfileRevision[dialect], profile.Status, profile.IsDefault, profile.Langcode,
			data, timestamp, options.RevisionUser, options.RevisionLog, profile.RevisionId)
		return profile.RevisionId, err
	}

	revisionId, err := client.InsertTx(tx, dialect, scripts.InsertProfileRevision[dialect], profile.Id, profile.Status,
		profile.IsDefault, profile.Langcode, data, timestamp, options.RevisionUser, options.RevisionLog)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(scripts.SetProfileRevision[dialect], revisionId, profile.Id); err != nil {
		return 0, err
	}
	return revisionId, nil
}

// GetRevisions returns the revision history of a profile, oldest first.
func GetRevisions(profileId int64) ([]model.Revision, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE_REVISIONS,
		fmt.Sprintf("Failed to get db client for fetching revisions of profile: %d", profileId))
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetProfileRevisions[dbClient.Dialect()], profileId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch revisions of profile: %d", profileId)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE_REVISIONS, errorMsg, err)
	}

	revisions := make([]model.Revision, 0, len(results))
	for _, row := range results {
		data, err := utils.AsJSONMap(row["data"])
		if err != nil {
			return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE_REVISIONS, "Failed to decode revision data.", err)
		}
		revisions = append(revisions, model.Revision{
			RevisionId:      utils.AsInt64(row["revision_id"]),
			ProfileId:       utils.AsInt64(row["profile_id"]),
			Status:          utils.AsBool(row["status"]),
			IsDefault:       utils.AsBool(row["is_default"]),
			Langcode:        utils.AsString(row["langcode"]),
			Data:            data,
			RevisionCreated: utils.AsInt64(row["revision_created"]),
			RevisionUser:    utils.AsInt64(row["revision_user"]),
			RevisionLog:     utils.AsString(row["revision_log"]),
		})
	}
	return revisions, nil
}
