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

package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/wso2/identity-user-profile-service/internal/system/audit"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/pagination"
	"github.com/wso2/identity-user-profile-service/internal/user/model"
	"github.com/wso2/identity-user-profile-service/internal/user/store"
)

// UserServiceInterface defines the service interface.
type UserServiceInterface interface {
	AddUser(ctx context.Context, request model.UserRequest) (*model.User, error)
	GetUser(ctx context.Context, uid int64) (*model.User, error)
	ListUsers(ctx context.Context, page pagination.Page) ([]model.User, pagination.Pagination, error)
	DeleteUser(ctx context.Context, uid int64) (*model.DeletedUser, error)
}

// UserService is the default implementation.
type UserService struct{}

// GetUserService returns a new instance.
func GetUserService() UserServiceInterface {
	return &UserService{}
}

func (s *UserService) AddUser(ctx context.Context, request model.UserRequest) (*model.User, error) {

	request.Name = strings.TrimSpace(request.Name)
	request.Mail = strings.TrimSpace(request.Mail)
	if request.Name == "" {
		return nil, errors.NewClientErrorFrom(errors.USER_VALIDATION, "User name is required.", http.StatusBadRequest)
	}
	if request.Mail != "" && !strings.Contains(request.Mail, "@") {
		return nil, errors.NewClientErrorFrom(errors.USER_VALIDATION,
			fmt.Sprintf("'%s' is not a valid e-mail address.", request.Mail), http.StatusBadRequest)
	}

	existing, err := store.GetUserByName(request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewClientErrorFrom(errors.USER_ALREADY_EXISTS,
			fmt.Sprintf("A user named '%s' already exists.", request.Name), http.StatusConflict)
	}

	user, err := store.AddUser(model.User{Name: request.Name, Mail: request.Mail, Roles: request.Roles})
	if err != nil {
		return nil, err
	}
	audit.Record(ctx, log.ActionAddUser, log.TargetTypeUser, strconv.FormatInt(user.Id, 10), nil)
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, uid int64) (*model.User, error) {

	user, err := store.GetUser(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewClientErrorFrom(errors.USER_NOT_FOUND,
			fmt.Sprintf("User %d does not exist.", uid), http.StatusNotFound)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, page pagination.Page) ([]model.User, pagination.Pagination, error) {

	users, err := store.ListUsers(page.AfterId, page.Limit+1)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}
	hasMore := len(users) > page.Limit
	if hasMore {
		users = users[:page.Limit]
	}
	var lastId int64
	if len(users) > 0 {
		lastId = users[len(users)-1].Id
	}
	return users, pagination.Build(len(users), page.Limit, lastId, hasMore), nil
}

// DeleteUser deletes the user and cascades to all of their profiles.
func (s *UserService) DeleteUser(ctx context.Context, uid int64) (*model.DeletedUser, error) {

	if _, err := s.GetUser(ctx, uid); err != nil {
		return nil, err
	}
	deleted, err := store.DeleteUser(uid)
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Info("Deleted user and owned profiles",
		log.Int64("uid", uid), log.Int64("profiles", deleted))
	audit.Record(ctx, log.ActionDeleteUser, log.TargetTypeUser, strconv.FormatInt(uid, 10),
		map[string]int64{"deleted_profiles": deleted})
	return &model.DeletedUser{Id: uid, DeletedProfiles: deleted}, nil
}
