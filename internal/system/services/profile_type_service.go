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

	"github.com/wso2/identity-user-profile-service/internal/profile_type/handler"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
)

type ProfileTypeService struct {
	profileTypeHandler *handler.ProfileTypeHandler
}

func NewProfileTypeService(mux *http.ServeMux) *ProfileTypeService {

	instance := &ProfileTypeService{
		profileTypeHandler: handler.NewProfileTypeHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

func (s *ProfileTypeService) RegisterRoutes(mux *http.ServeMux) {

	h := s.profileTypeHandler
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileTypeCollection), h.GetProfileTypes)
	mux.HandleFunc(routing.Pattern(http.MethodPost, routing.ProfileTypeCollection), h.AddProfileType)
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.ProfileTypeCanonical), h.GetProfileType)
	mux.HandleFunc(routing.Pattern(http.MethodPut, routing.ProfileTypeCanonical), h.UpdateProfileType)
	mux.HandleFunc(routing.Pattern(http.MethodDelete, routing.ProfileTypeCanonical), h.DeleteProfileType)
}
