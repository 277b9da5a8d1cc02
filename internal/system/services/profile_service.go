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

package services

import (
	"net/http"

	"github.com/wso2/identity-user-profile-service/internal/profile/handler"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
)

type ProfileService struct {
	profileHandler *handler.ProfileHandler
}

func NewProfileService(mux *http.ServeMux) *ProfileService {

	instance := &ProfileService{
		profileHandler: handler.NewProfileHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

func (s *ProfileService) RegisterRoutes(mux *http.ServeMux) {

	h := s.profileHandler
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileCollection), h.GetProfiles)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileCollection), h.AddProfile)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileAction), h.ExecuteAction)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileCanonical), h.GetProfile)
	mux.HandleFunc(routing.Pattern(http.MethodPut, routing.ProfileCanonical), h.UpdateProfile)
	mux.HandleFunc(routing.Pattern(http.MethodDelete, routing.ProfileCanonical), h.DeleteProfile)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileEditForm), h.GetEditForm)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileDeleteForm), h.GetDeleteForm)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileDeleteForm), h.ConfirmDelete)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfilePublish), h.GetPublishForm)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfilePublish), h.Publish)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileUnpublish), h.GetUnpublishForm)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileUnpublish), h.Unpublish)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileActivate), h.Activate)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileDeactivate), h.Deactivate)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileSetDefault), h.SetDefault)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileOperations), h.GetOperations)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileRevisions), h.GetRevisions)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.UserProfileForm), h.GetUserProfileForm)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.UserProfiles), h.AddUserProfile)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.UserDefaultProfile), h.GetUserDefaultProfile)
}
