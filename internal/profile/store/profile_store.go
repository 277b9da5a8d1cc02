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
	"strings"
	"time"

	"github.com/wso2/identity-user-profile-service/internal/profile/model"
	"github.com/wso2/identity-user-profile-service/internal/system/database/client"
	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/database/scripts"
	errors2 "github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// now is swapped by tests that need distinct timestamps.
var now = func() int64 { return time.Now().Unix() }

func getDBClient(msg errors2.ErrorMessage, description string) (client.DBClientInterface, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		log.GetLogger().Debug(description, log.Error(err))
		return nil, errors2.NewServerErrorFrom(msg, description, err)
	}
	return dbClient, nil
}

func txError(tx *sql.Tx, msg errors2.ErrorMessage, description string, err error) error {
	_ = tx.Rollback()
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerErrorFrom(msg, description, err)
}

// SaveProfile inserts or updates a profile and applies the default bookkeeping
// to its siblings in the same transaction. profile.IsDefault is the flag the
// caller asks for; the stored flag may differ, see PlanDefaults.
func SaveProfile(profile model.Profile, options model.SaveOptions) (*model.SaveResult, error) {

	errMsg := errors2.UPDATE_PROFILE
	if profile.IsNew() {
		errMsg = errors2.ADD_PROFILE
	}
	dbClient, err := getDBClient(errMsg, fmt.Sprintf("Failed to get db client for saving profile: %d", profile.Id))
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()
	dialect := dbClient.Dialect()

	data, err := utils.ToJSONText(profile.Data)
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errMsg, "Failed to encode profile data.", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errMsg, "Failed to begin transaction for saving profile.", err)
	}

	wasDefault := false
	if !profile.IsNew() {
		current, err := getProfileTx(tx, dialect, profile.Id)
		if err != nil {
			return nil, txError(tx, errMsg, fmt.Sprintf("Failed to load profile: %d", profile.Id), err)
		}
		if current == nil {
			_ = tx.Rollback()
			return nil, nil
		}
		wasDefault = current.IsDefault
		profile.CreatedAt = current.CreatedAt
		profile.RevisionId = current.RevisionId
	}

	siblings, err := getSiblingsTx(tx, dialect, profile.OwnerId, profile.Type, profile.Id)
	if err != nil {
		return nil, txError(tx, errMsg, "Failed to load sibling profiles.", err)
	}
	plan := PlanDefaults(Candidate{Id: profile.Id, Active: profile.Status, IsDefault: wasDefault},
		wasDefault, profile.IsDefault, toCandidates(siblings))

	timestamp := now()
	// Clear before writing so the partial unique index never sees two defaults.
	for _, id := range plan.Clear {
		if err := setDefaultTx(tx, dialect, id, false, timestamp); err != nil {
			return nil, txError(tx, errMsg, fmt.Sprintf("Failed to clear default flag of profile: %d", id), err)
		}
	}

	profile.IsDefault = plan.IsDefault
	profile.UpdatedAt = timestamp
	created := profile.IsNew()
	if created {
		profile.CreatedAt = timestamp
		id, err := client.InsertTx(tx, dialect, scripts.InsertProfile[dialect], profile.Type, profile.OwnerId,
			profile.Status, profile.IsDefault, profile.Langcode, data, profile.CreatedAt, profile.UpdatedAt)
		if err != nil {
			return nil, txError(tx, errMsg, "Failed to insert profile.", err)
		}
		profile.Id = id
	} else {
		if _, err := tx.Exec(scripts.UpdateProfile[dialect], profile.RevisionId, profile.Status, profile.IsDefault,
			profile.Langcode, data, profile.UpdatedAt, profile.Id); err != nil {
			return nil, txError(tx, errMsg, fmt.Sprintf("Failed to update profile: %d", profile.Id), err)
		}
	}

	if plan.Promote != 0 {
		if err := setDefaultTx(tx, dialect, plan.Promote, true, timestamp); err != nil {
			return nil, txError(tx, errMsg, fmt.Sprintf("Failed to promote profile: %d", plan.Promote), err)
		}
	}

	revisionId, err := saveRevisionTx(tx, dialect, profile, data, created || options.NewRevision, options, timestamp)
	if err != nil {
		return nil, txError(tx, errMsg, fmt.Sprintf("Failed to write revision of profile: %d", profile.Id), err)
	}
	profile.RevisionId = revisionId

	if err := tx.Commit(); err != nil {
		return nil, errors2.NewServerErrorFrom(errMsg, "Failed to commit profile save.", err)
	}

	return &model.SaveResult{
		Profile:  &profile,
		Created:  created,
		Cleared:  plan.Clear,
		Promoted: plan.Promote,
	}, nil
}

// GetProfile returns the profile with the given id, or nil when it does not exist.
func GetProfile(id int64) (*model.Profile, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE, fmt.Sprintf("Failed to get db client for fetching profile: %d", id))
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetProfileById[dbClient.Dialect()], id)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch profile: %d", id)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, errorMsg, err)
	}
	profiles, err := mapProfiles(results)
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to read profile row.", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

// GetProfiles returns the existing profiles among ids, ordered by id.
func GetProfiles(ids []int64) ([]model.Profile, error) {

	if len(ids) == 0 {
		return []model.Profile{}, nil
	}
	dbClient, err := getDBClient(errors2.GET_PROFILE, "Failed to get db client for fetching profiles")
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	dialect := dbClient.Dialect()
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = scripts.Placeholder(dialect, i+1)
		args[i] = id
	}
	query := fmt.Sprintf(scripts.GetProfilesByIds[dialect], strings.Join(placeholders, ", "))
	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		log.GetLogger().Debug("Failed to fetch profiles by id", log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to fetch profiles.", err)
	}
	profiles, err := mapProfiles(results)
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to read profile rows.", err)
	}
	return profiles, nil
}

// GetProfilesByOwnerAndType returns every profile of the owner and type, oldest first.
func GetProfilesByOwnerAndType(ownerId int64, profileType string) ([]model.Profile, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE,
		fmt.Sprintf("Failed to get db client for fetching %s profiles of user: %d", profileType, ownerId))
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetProfilesByOwnerAndType[dbClient.Dialect()], ownerId, profileType)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch %s profiles of user: %d", profileType, ownerId)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, errorMsg, err)
	}
	profiles, err := mapProfiles(results)
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to read profile rows.", err)
	}
	return profiles, nil
}

// LoadDefaultByUser returns the default profile of the owner and type, or nil.
func LoadDefaultByUser(ownerId int64, profileType string) (*model.Profile, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE,
		fmt.Sprintf("Failed to get db client for fetching default %s profile of user: %d", profileType, ownerId))
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetDefaultProfileByOwnerAndType[dbClient.Dialect()],
		ownerId, profileType, true)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch default %s profile of user: %d", profileType, ownerId)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, errorMsg, err)
	}
	profiles, err := mapProfiles(results)
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to read profile row.", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

// CountProfilesByOwnerAndType returns how many profiles of a type the owner has.
func CountProfilesByOwnerAndType(ownerId int64, profileType string) (int64, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE, "Failed to get db client for counting profiles")
	if err != nil {
		return 0, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.CountProfilesByOwnerAndType[dbClient.Dialect()], ownerId, profileType)
	if err != nil {
		log.GetLogger().Debug("Failed to count profiles", log.Error(err))
		return 0, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to count profiles.", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return utils.AsInt64(results[0]["total"]), nil
}

// ListProfiles returns a keyset page of profiles matching filter, ordered by id.
func ListProfiles(filter model.ListFilter) ([]model.Profile, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE, "Failed to get db client for listing profiles")
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	dialect := dbClient.Dialect()
	var query strings.Builder
	query.WriteString(scripts.ListProfilesBase[dialect])
	args := []interface{}{filter.AfterId}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query.WriteString(" AND type = " + scripts.Placeholder(dialect, len(args)))
	}
	if filter.OwnerId != 0 {
		args = append(args, filter.OwnerId)
		query.WriteString(" AND uid = " + scripts.Placeholder(dialect, len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query.WriteString(" AND status = " + scripts.Placeholder(dialect, len(args)))
	}
	args = append(args, filter.Limit)
	query.WriteString(" ORDER BY profile_id LIMIT " + scripts.Placeholder(dialect, len(args)))

	results, err := dbClient.ExecuteQuery(query.String(), args...)
	if err != nil {
		log.GetLogger().Debug("Failed to list profiles", log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to list profiles.", err)
	}
	profiles, err := mapProfiles(results)
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE, "Failed to read profile rows.", err)
	}
	return profiles, nil
}

// DeleteProfile removes a profile and its revisions. When it was the default,
// the oldest active sibling is promoted. It returns the promoted id, or 0.
func DeleteProfile(id int64) (int64, error) {

	dbClient, err := getDBClient(errors2.DELETE_PROFILE, fmt.Sprintf("Failed to get db client for deleting profile: %d", id))
	if err != nil {
		return 0, err
	}
	defer dbClient.Close()
	dialect := dbClient.Dialect()

	tx, err := dbClient.BeginTx()
	if err != nil {
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_PROFILE, "Failed to begin transaction for deleting profile.", err)
	}
	current, err := getProfileTx(tx, dialect, id)
	if err != nil {
		return 0, txError(tx, errors2.DELETE_PROFILE, fmt.Sprintf("Failed to load profile: %d", id), err)
	}
	if current == nil {
		_ = tx.Rollback()
		return 0, nil
	}
	if _, err := tx.Exec(scripts.DeleteProfileRevisions[dialect], id); err != nil {
		return 0, txError(tx, errors2.DELETE_PROFILE, fmt.Sprintf("Failed to delete revisions of profile: %d", id), err)
	}
	if _, err := tx.Exec(scripts.DeleteProfile[dialect], id); err != nil {
		return 0, txError(tx, errors2.DELETE_PROFILE, fmt.Sprintf("Failed to delete profile: %d", id), err)
	}

	var promoted int64
	if current.IsDefault {
		siblings, err := getSiblingsTx(tx, dialect, current.OwnerId, current.Type, id)
		if err != nil {
			return 0, txError(tx, errors2.DELETE_PROFILE, "Failed to load sibling profiles.", err)
		}
		promoted = PlanAfterDelete(toCandidates(siblings))
		if promoted != 0 {
			if err := setDefaultTx(tx, dialect, promoted, true, now()); err != nil {
				return 0, txError(tx, errors2.DELETE_PROFILE, fmt.Sprintf("Failed to promote profile: %d", promoted), err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_PROFILE, "Failed to commit profile deletion.", err)
	}
	return promoted, nil
}

// setDefaultTx moves the default flag of a sibling on the entity and on its
// current revision.
func setDefaultTx(tx *sql.Tx, dialect string, id int64, isDefault bool, timestamp int64) error {
	if _, err := tx.Exec(scripts.SetProfileDefault[dialect], isDefault, timestamp, id); err != nil {
		return err
	}
	_, err := tx.Exec(scripts.SetCurrentRevisionDefault[dialect], isDefault, id)
	return err
}

func getProfileTx(tx *sql.Tx, dialect string, id int64) (*model.Profile, error) {
	results, err := client.QueryTx(tx, scripts.GetProfileById[dialect], id)
	if err != nil {
		return nil, err
	}
	profiles, err := mapProfiles(results)
	if err != nil || len(profiles) == 0 {
		return nil, err
	}
	return &profiles[0], nil
}

func getSiblingsTx(tx *sql.Tx, dialect string, ownerId int64, profileType string, id int64) ([]model.Profile, error) {
	results, err := client.QueryTx(tx, scripts.GetSiblingProfiles[dialect], ownerId, profileType, id)
	if err != nil {
		return nil, err
	}
	return mapProfiles(results)
}

func toCandidates(profiles []model.Profile) []Candidate {
	candidates := make([]Candidate, len(profiles))
	for i, p := range profiles {
		candidates[i] = Candidate{Id: p.Id, Active: p.Status, IsDefault: p.IsDefault}
	}
	return candidates
}

func mapProfiles(results []map[string]interface{}) ([]model.Profile, error) {
	profiles := make([]model.Profile, 0, len(results))
	for _, row := range results {
		data, err := utils.AsJSONMap(row["data"])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, model.Profile{
			Id:         utils.AsInt64(row["profile_id"]),
			RevisionId: utils.AsInt64(row["revision_id"]),
			Type:       utils.AsString(row["type"]),
			OwnerId:    utils.AsInt64(row["uid"]),
			Status:     utils.AsBool(row["status"]),
			IsDefault:  utils.AsBool(row["is_default"]),
			Langcode:   utils.AsString(row["langcode"]),
			Data:       data,
			CreatedAt:  utils.AsInt64(row["created_at"]),
			UpdatedAt:  utils.AsInt64(row["updated_at"]),
		})
	}
	return profiles, nil
}
