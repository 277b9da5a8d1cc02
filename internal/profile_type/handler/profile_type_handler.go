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

	"github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	"github.com/wso2/identity-user-profile-service/internal/profile_type/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
	"github.com/wso2/identity-user-profile-service/internal/system/security"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// ProfileTypeHandler serves the profile bundle endpoints.
type ProfileTypeHandler struct {
	provider provider.ProfileTypeProviderInterface
}

// NewProfileTypeHandler returns a new ProfileTypeHandler instance.
func NewProfileTypeHandler() *ProfileTypeHandler {
	return &ProfileTypeHandler{provider: provider.NewProfileTypeProvider()}
}

// GetProfileTypes handles GET /profile-types
func (h *ProfileTypeHandler) GetProfileTypes(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePrincipal(r); err != nil {
		utils.HandleError(w, err)
		return
	}
	profileTypes, err := h.provider.GetProfileTypeService().GetProfileTypes(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profileTypes)
}

// GetProfileType handles GET /profile-types/{profile_type}
func (h *ProfileTypeHandler) GetProfileType(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePrincipal(r); err != nil {
		utils.HandleError(w, err)
		return
	}
	profileType, err := h.provider.GetProfileTypeService().GetProfileType(r.Context(), r.PathValue("profile_type"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profileType)
}

// AddProfileType handles POST /profile-types
func (h *ProfileTypeHandler) AddProfileType(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePermission(r, constants.PermissionAdministerProfileTypes); err != nil {
		utils.HandleError(w, err)
		return
	}
	var request model.ProfileType
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	profileType, err := h.provider.GetProfileTypeService().AddProfileType(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if location, err := routing.URL(routing.ProfileTypeCanonical, routing.Params{"profile_type": profileType.Id}, nil); err == nil {
		w.Header().Set("Location", location)
	}
	utils.WriteJSON(w, http.StatusCreated, profileType)
}

// UpdateProfileType handles PUT /profile-types/{profile_type}
func (h *ProfileTypeHandler) UpdateProfileType(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePermission(r, constants.PermissionAdministerProfileTypes); err != nil {
		utils.HandleError(w, err)
		return
	}
	var request model.ProfileType
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	profileType, err := h.provider.GetProfileTypeService().UpdateProfileType(r.Context(), r.PathValue("profile_type"), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profileType)
}

// DeleteProfileType handles DELETE /profile-types/{profile_type}
func (h *ProfileTypeHandler) DeleteProfileType(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePermission(r, constants.PermissionAdministerProfileTypes); err != nil {
		utils.HandleError(w, err)
		return
	}
	if err := h.provider.GetProfileTypeService().DeleteProfileType(r.Context(), r.PathValue("profile_type")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
