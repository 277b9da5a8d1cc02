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
	"strings"

	"github.com/wso2/identity-user-profile-service/internal/profile/model"
	"github.com/wso2/identity-user-profile-service/internal/profile/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/pagination"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// ProfileHandler serves the profile entity endpoints.
type ProfileHandler struct {
	provider provider.ProfileProviderInterface
}

// NewProfileHandler returns a new ProfileHandler instance.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{provider: provider.NewProfileProvider()}
}

// GetProfiles handles GET /profiles
func (h *ProfileHandler) GetProfiles(w http.ResponseWriter, r *http.Request) {

	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	filter, err := listFilter(r, page)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	list, err := h.provider.GetProfileService().ListProfiles(r.Context(), filter, r.URL.RequestURI())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// AddProfile handles POST /profiles
func (h *ProfileHandler) AddProfile(w http.ResponseWriter, r *http.Request) {

	var request model.ProfileRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	h.create(w, r, request)
}

// AddUserProfile handles POST /users/{user}/profiles/{profile_type}
func (h *ProfileHandler) AddUserProfile(w http.ResponseWriter, r *http.Request) {

	uid, err := utils.PathInt64(r, "user")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	var request model.ProfileRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	request.OwnerId = uid
	request.Type = r.PathValue("profile_type")
	h.create(w, r, request)
}

func (h *ProfileHandler) create(w http.ResponseWriter, r *http.Request, request model.ProfileRequest) {
	response, err := h.provider.GetProfileService().CreateProfile(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	location, _ := routing.URL(routing.ProfileCanonical,
		routing.Params{"profile": strconv.FormatInt(response.Profile.Id, 10)}, nil)
	w.Header().Set("Location", location)
	utils.WriteJSON(w, http.StatusCreated, response)
}

// GetProfile handles GET /profiles/{profile}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	profile, err := h.provider.GetProfileService().GetProfile(r.Context(), id)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profiles/{profile}
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	var request model.ProfileRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	response, err := h.provider.GetProfileService().UpdateProfile(r.Context(), id, request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

// DeleteProfile handles DELETE /profiles/{profile}
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if err := h.provider.GetProfileService().DeleteProfile(r.Context(), id); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEditForm handles GET /profiles/{profile}/form
func (h *ProfileHandler) GetEditForm(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	form, err := h.provider.GetProfileService().GetEditForm(r.Context(), id)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, form)
}

// GetUserProfileForm handles GET /users/{user}/profiles/{profile_type}/form
func (h *ProfileHandler) GetUserProfileForm(w http.ResponseWriter, r *http.Request) {

	uid, err := utils.PathInt64(r, "user")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	form, err := h.provider.GetProfileService().GetAddForm(r.Context(), uid, r.PathValue("profile_type"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, form)
}

// GetUserDefaultProfile handles GET /users/{user}/profiles/{profile_type}/default
func (h *ProfileHandler) GetUserDefaultProfile(w http.ResponseWriter, r *http.Request) {

	uid, err := utils.PathInt64(r, "user")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	profile, err := h.provider.GetProfileService().LoadDefaultByUser(r.Context(), uid, r.PathValue("profile_type"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

// GetOperations handles GET /profiles/{profile}/operations
func (h *ProfileHandler) GetOperations(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	operations, err := h.provider.GetProfileService().GetOperations(r.Context(), id, destination(r, ""))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, operations)
}

// GetRevisions handles GET /profiles/{profile}/revisions
func (h *ProfileHandler) GetRevisions(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	revisions, err := h.provider.GetProfileService().GetRevisions(r.Context(), id)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, revisions)
}

// GetPublishForm handles GET /profiles/{profile}/publish
func (h *ProfileHandler) GetPublishForm(w http.ResponseWriter, r *http.Request) {
	h.confirmForm(w, r, constants.OperationPublish)
}

// GetUnpublishForm handles GET /profiles/{profile}/unpublish
func (h *ProfileHandler) GetUnpublishForm(w http.ResponseWriter, r *http.Request) {
	h.confirmForm(w, r, constants.OperationUnpublish)
}

// GetDeleteForm handles GET /profiles/{profile}/delete
func (h *ProfileHandler) GetDeleteForm(w http.ResponseWriter, r *http.Request) {
	h.confirmForm(w, r, constants.OperationDelete)
}

func (h *ProfileHandler) confirmForm(w http.ResponseWriter, r *http.Request, kind string) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	form, err := h.provider.GetProfileService().GetConfirmForm(r.Context(), id, kind, destination(r, ""))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, form)
}

// Publish handles POST /profiles/{profile}/publish
func (h *ProfileHandler) Publish(w http.ResponseWriter, r *http.Request) {

	id, dest, err := confirmed(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.respond(w)(h.provider.GetProfileService().Publish(r.Context(), id, dest))
}

// Unpublish handles POST /profiles/{profile}/unpublish
func (h *ProfileHandler) Unpublish(w http.ResponseWriter, r *http.Request) {

	id, dest, err := confirmed(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.respond(w)(h.provider.GetProfileService().Unpublish(r.Context(), id, dest))
}

// ConfirmDelete handles POST /profiles/{profile}/delete
func (h *ProfileHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {

	id, dest, err := confirmed(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.respond(w)(h.provider.GetProfileService().ConfirmDelete(r.Context(), id, dest))
}

// Activate handles POST /profiles/{profile}/activate
func (h *ProfileHandler) Activate(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.respond(w)(h.provider.GetProfileService().Activate(r.Context(), id))
}

// Deactivate handles POST /profiles/{profile}/deactivate
func (h *ProfileHandler) Deactivate(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.respond(w)(h.provider.GetProfileService().Deactivate(r.Context(), id))
}

// SetDefault handles POST /profiles/{profile}/set-default
func (h *ProfileHandler) SetDefault(w http.ResponseWriter, r *http.Request) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.respond(w)(h.provider.GetProfileService().SetDefault(r.Context(), id))
}

// ExecuteAction handles POST /profile-actions/{action}
func (h *ProfileHandler) ExecuteAction(w http.ResponseWriter, r *http.Request) {

	var request model.ActionRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.HandleError(w, err)
		return
	}
	response, err := h.provider.GetProfileService().ExecuteAction(r.Context(), r.PathValue("action"), request.ProfileIds)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *ProfileHandler) respond(w http.ResponseWriter) func(*model.ProfileResponse, error) {
	return func(response *model.ProfileResponse, err error) {
		if err != nil {
			utils.HandleError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, response)
	}
}

// confirmed reads the profile id and the confirmation body of a confirm form submission.
func confirmed(r *http.Request) (int64, string, error) {

	id, err := utils.PathInt64(r, "profile")
	if err != nil {
		return 0, "", err
	}
	var request model.ConfirmRequest
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		return 0, "", err
	}
	if !request.Confirm {
		return 0, "", errors.NewClientError(errors.CONFIRMATION_REQUIRED, http.StatusBadRequest)
	}
	return id, destination(r, request.Destination), nil
}

// destination returns the local redirect target of a request: the body value
// when set, else the destination query parameter. Absolute URLs are ignored.
func destination(r *http.Request, fromBody string) string {
	dest := fromBody
	if dest == "" {
		dest = r.URL.Query().Get("destination")
	}
	if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		return ""
	}
	return dest
}

func listFilter(r *http.Request, page pagination.Page) (model.ListFilter, error) {

	query := r.URL.Query()
	filter := model.ListFilter{Type: query.Get("type"), AfterId: page.AfterId, Limit: page.Limit}
	if raw := query.Get("uid"); raw != "" {
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.NewClientErrorFrom(errors.BAD_REQUEST,
				"Query parameter 'uid' must be an integer.", http.StatusBadRequest)
		}
		filter.OwnerId = uid
	}
	if raw := query.Get("status"); raw != "" {
		status, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.NewClientErrorFrom(errors.BAD_REQUEST,
				"Query parameter 'status' must be a boolean.", http.StatusBadRequest)
		}
		filter.Status = &status
	}
	return filter, nil
}
