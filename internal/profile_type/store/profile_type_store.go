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
	"fmt"

	"github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	"github.com/wso2/identity-user-profile-service/internal/system/database/client"
	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/database/scripts"
	errors2 "github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

func getDBClient(msg errors2.ErrorMessage, description string) (client.DBClientInterface, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		log.GetLogger().Debug(description, log.Error(err))
		return nil, errors2.NewServerErrorFrom(msg, description, err)
	}
	return dbClient, nil
}

// AddProfileType inserts a new profile type.
func AddProfileType(profileType model.ProfileType) error {

	dbClient, err := getDBClient(errors2.ADD_PROFILE_TYPE,
		fmt.Sprintf("Failed to get db client for adding profile type: %s", profileType.Id))
	if err != nil {
		return err
	}
	defer dbClient.Close()

	roles, err := utils.ToJSONText(rolesOf(profileType))
	if err != nil {
		return errors2.NewServerErrorFrom(errors2.ADD_PROFILE_TYPE, "Failed to encode profile type roles.", err)
	}
	_, err = dbClient.Execute(scripts.InsertProfileType[dbClient.Dialect()],
		profileType.Id, profileType.Label, profileType.DisplayLabel, profileType.Multiple, profileType.Registration,
		roles, profileType.UseRevisions, profileType.PublishLabel, profileType.UnpublishLabel,
		profileType.ActivateLabel, profileType.DeactivateLabel, profileType.Weight)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to insert profile type: %s", profileType.Id)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return errors2.NewServerErrorFrom(errors2.ADD_PROFILE_TYPE, errorMsg, err)
	}
	return nil
}

// UpdateProfileType replaces the stored settings of a profile type.
func UpdateProfileType(profileType model.ProfileType) error {

	dbClient, err := getDBClient(errors2.UPDATE_PROFILE_TYPE,
		fmt.Sprintf("Failed to get db client for updating profile type: %s", profileType.Id))
	if err != nil {
		return err
	}
	defer dbClient.Close()

	roles, err := utils.ToJSONText(rolesOf(profileType))
	if err != nil {
		return errors2.NewServerErrorFrom(errors2.UPDATE_PROFILE_TYPE, "Failed to encode profile type roles.", err)
	}
	_, err = dbClient.Execute(scripts.UpdateProfileType[dbClient.Dialect()],
		profileType.Label, profileType.DisplayLabel, profileType.Multiple, profileType.Registration, roles,
		profileType.UseRevisions, profileType.PublishLabel, profileType.UnpublishLabel,
		profileType.ActivateLabel, profileType.DeactivateLabel, profileType.Weight, profileType.Id)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update profile type: %s", profileType.Id)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return errors2.NewServerErrorFrom(errors2.UPDATE_PROFILE_TYPE, errorMsg, err)
	}
	return nil
}

// GetProfileType returns the profile type, or nil when it does not exist.
func GetProfileType(id string) (*model.ProfileType, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE_TYPE,
		fmt.Sprintf("Failed to get db client for fetching profile type: %s", id))
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetProfileTypeById[dbClient.Dialect()], id)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch profile type: %s", id)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE_TYPE, errorMsg, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	profileType, err := mapProfileType(results[0])
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE_TYPE, "Failed to read profile type row.", err)
	}
	return profileType, nil
}

// GetProfileTypes returns all profile types ordered by weight and label.
func GetProfileTypes() ([]model.ProfileType, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE_TYPE, "Failed to get db client for listing profile types")
	if err != nil {
		return nil, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetProfileTypes[dbClient.Dialect()])
	if err != nil {
		log.GetLogger().Debug("Failed to list profile types", log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE_TYPE, "Failed to list profile types.", err)
	}
	profileTypes := make([]model.ProfileType, 0, len(results))
	for _, row := range results {
		profileType, err := mapProfileType(row)
		if err != nil {
			return nil, errors2.NewServerErrorFrom(errors2.GET_PROFILE_TYPE, "Failed to read profile type row.", err)
		}
		profileTypes = append(profileTypes, *profileType)
	}
	return profileTypes, nil
}

// CountProfiles returns the number of profiles of the given type.
func CountProfiles(id string) (int64, error) {

	dbClient, err := getDBClient(errors2.GET_PROFILE_TYPE,
		fmt.Sprintf("Failed to get db client for counting profiles of type: %s", id))
	if err != nil {
		return 0, err
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.CountProfilesByType[dbClient.Dialect()], id)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to count profiles of type: %s", id)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerErrorFrom(errors2.GET_PROFILE_TYPE, errorMsg, err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return utils.AsInt64(results[0]["total"]), nil
}

// DeleteProfileType removes a profile type.
func DeleteProfileType(id string) error {

	dbClient, err := getDBClient(errors2.DELETE_PROFILE_TYPE,
		fmt.Sprintf("Failed to get db client for deleting profile type: %s", id))
	if err != nil {
		return err
	}
	defer dbClient.Close()

	if _, err := dbClient.Execute(scripts.DeleteProfileType[dbClient.Dialect()], id); err != nil {
		errorMsg := fmt.Sprintf("Failed to delete profile type: %s", id)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return errors2.NewServerErrorFrom(errors2.DELETE_PROFILE_TYPE, errorMsg, err)
	}
	return nil
}

func mapProfileType(row map[string]interface{}) (*model.ProfileType, error) {
	roles, err := utils.AsStringSlice(row["roles"])
	if err != nil {
		return nil, err
	}
	return &model.ProfileType{
		Id:              utils.AsString(row["id"]),
		Label:           utils.AsString(row["label"]),
		DisplayLabel:    utils.AsString(row["display_label"]),
		Multiple:        utils.AsBool(row["multiple"]),
		Registration:    utils.AsBool(row["registration"]),
		Roles:           roles,
		UseRevisions:    utils.AsBool(row["use_revisions"]),
		PublishLabel:    utils.AsString(row["publish_label"]),
		UnpublishLabel:  utils.AsString(row["unpublish_label"]),
		ActivateLabel:   utils.AsString(row["activate_label"]),
		DeactivateLabel: utils.AsString(row["deactivate_label"]),
		Weight:          int(utils.AsInt64(row["weight"])),
	}, nil
}

func rolesOf(profileType model.ProfileType) []string {
	if profileType.Roles == nil {
		return []string{}
	}
	return profileType.Roles
}
