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
	"time"

	"github.com/wso2/identity-user-profile-service/internal/system/database/client"
	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/database/scripts"
	errors2 "github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
	"github.com/wso2/identity-user-profile-service/internal/user/model"
)

// AddUser inserts a user and returns it with its generated uid.
func AddUser(user model.User) (*model.User, error) {

	logger := log.GetLogger()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding user: %s", user.Name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.ADD_USER, errorMsg, err)
	}
	defer dbClient.Close()

	roles, err := utils.ToJSONText(nonNilRoles(user.Roles))
	if err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.ADD_USER, "Failed to encode user roles.", err)
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for adding user: %s", user.Name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.ADD_USER, errorMsg, err)
	}
	uid, err := client.InsertTx(tx, dbClient.Dialect(), scripts.InsertUser[dbClient.Dialect()],
		user.Name, user.Mail, roles, user.CreatedAt)
	if err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to insert user: %s", user.Name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.ADD_USER, errorMsg, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, errors2.NewServerErrorFrom(errors2.ADD_USER, "Failed to commit user insert.", err)
	}

	user.Id = uid
	user.Roles = nonNilRoles(user.Roles)
	return &user, nil
}

// GetUser returns the user with the given uid, or nil when it does not exist.
func GetUser(uid int64) (*model.User, error) {
	return getUserBy(scripts.GetUserById, fmt.Sprint(uid), uid)
}

// GetUserByName returns the user with the given name, or nil when it does not exist.
func GetUserByName(name string) (*model.User, error) {
	return getUserBy(scripts.GetUserByName, name, name)
}

func getUserBy(query map[string]string, key string, arg interface{}) (*model.User, error) {

	logger := log.GetLogger()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching user: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_USER, errorMsg, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query[dbClient.Dialect()], arg)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch user: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_USER, errorMsg, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return mapUser(results[0])
}

// ListUsers returns up to limit users with a uid greater than afterId.
func ListUsers(afterId int64, limit int) ([]model.User, error) {

	logger := log.GetLogger()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		logger.Debug("Failed to get db client for listing users", log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_USER, "Failed to list users.", err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetUsers[dbClient.Dialect()], afterId, limit)
	if err != nil {
		logger.Debug("Failed to execute query for listing users", log.Error(err))
		return nil, errors2.NewServerErrorFrom(errors2.GET_USER, "Failed to list users.", err)
	}
	users := make([]model.User, 0, len(results))
	for _, row := range results {
		user, err := mapUser(row)
		if err != nil {
			return nil, errors2.NewServerErrorFrom(errors2.GET_USER, "Failed to read user row.", err)
		}
		users = append(users, *user)
	}
	return users, nil
}

// DeleteUser removes a user together with every profile and profile revision
// they own, in one transaction. It returns the number of deleted profiles.
func DeleteUser(uid int64) (int64, error) {

	logger := log.GetLogger()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deleting user: %d", uid)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_USER, errorMsg, err)
	}
	defer dbClient.Close()

	dialect := dbClient.Dialect()
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for deleting user: %d", uid)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_USER, errorMsg, err)
	}

	if _, err := tx.Exec(scripts.DeleteProfileRevisionsByOwner[dialect], uid); err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to delete profile revisions of user: %d", uid)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_USER, errorMsg, err)
	}
	result, err := tx.Exec(scripts.DeleteProfilesByOwner[dialect], uid)
	if err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to delete profiles of user: %d", uid)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_USER, errorMsg, err)
	}
	deletedProfiles, _ := result.RowsAffected()
	if _, err := tx.Exec(scripts.DeleteUser[dialect], uid); err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to delete user: %d", uid)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_USER, errorMsg, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, errors2.NewServerErrorFrom(errors2.DELETE_USER, "Failed to commit user deletion.", err)
	}
	return deletedProfiles, nil
}

func mapUser(row map[string]interface{}) (*model.User, error) {
	roles, err := utils.AsStringSlice(row["roles"])
	if err != nil {
		return nil, err
	}
	return &model.User{
		Id:        utils.AsInt64(row["uid"]),
		Name:      utils.AsString(row["name"]),
		Mail:      utils.AsString(row["mail"]),
		Roles:     roles,
		CreatedAt: utils.AsInt64(row["created_at"]),
	}, nil
}

func nonNilRoles(roles []string) []string {
	if roles == nil {
		return []string{}
	}
	return roles
}
