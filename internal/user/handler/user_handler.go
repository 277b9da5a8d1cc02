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

package handler

import (
	"net/http"
	"strconv"

	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/pagination"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
	"github.com/wso2/identity-user-profile-service/internal/system/security"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
	"github.com/wso2/identity-user-profile-service/internal/user/model"
	"github.com/wso2/identity-user-profile-service/internal/user/provider"
)

// UserHandler serves the owner entity endpoints.
type UserHandler struct {
	provider provider.UserProviderInterface
}

// NewUserHandler returns a new UserHandler instance.
func NewUserHandler() *UserHandler {
	return &UserHandler{provider: provider.NewUserProvider()}
}

// AddUser handles POST /users
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePermission(r, constants.PermissionAdministerUsers); err != nil {
		utils.HandleError(w, err)
		return
	}
	var request model.UserRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	user, err := h.provider.GetUserService().AddUser(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if location, err := routing.URL(routing.UserCanonical, routing.Params{"user": strconv.FormatInt(user.Id, 10)}, nil); err == nil {
		w.Header().Set("Location", location)
	}
	utils.WriteJSON(w, http.StatusCreated, user)
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePermission(r, constants.PermissionAdministerUsers); err != nil {
		utils.HandleError(w, err)
		return
	}
	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	users, pageInfo, err := h.provider.GetUserService().ListUsers(r.Context(), page)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, model.UserListResponse{Users: users, Pagination: pageInfo})
}

// GetUser handles GET /users/{user}. Users may read their own record.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {

	principal, err := security.RequirePrincipal(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	uid, err := utils.PathInt64(r, "user")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if principal.UserId != uid && !principal.HasPermission(constants.PermissionAdministerUsers) {
		utils.HandleError(w, errors.NewClientError(errors.FORBIDDEN, http.StatusForbidden))
		return
	}
	user, err := h.provider.GetUserService().GetUser(r.Context(), uid)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{user}; the user's profiles are deleted with them.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePermission(r, constants.PermissionAdministerUsers); err != nil {
		utils.HandleError(w, err)
		return
	}
	uid, err := utils.PathInt64(r, "user")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	deleted, err := h.provider.GetUserService().DeleteUser(r.Context(), uid)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, deleted)
}
