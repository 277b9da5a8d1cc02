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

package managers

import (
	"net/http"

	"github.com/wso2/identity-user-profile-service/internal/system/config"
	"github.com/wso2/identity-user-profile-service/internal/system/i18n"
	"github.com/wso2/identity-user-profile-service/internal/system/security"
	"github.com/wso2/identity-user-profile-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices() error
	Handler(cfg config.Config) http.Handler
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices registers the routes of every module on the mux.
func (sm *ServiceManager) RegisterServices() error {

	services.NewHealthService(sm.mux)
	services.NewUserService(sm.mux)
	services.NewProfileTypeService(sm.mux)
	services.NewProfileService(sm.mux)
	services.NewPermissionService(sm.mux)
	return nil
}

// Handler wraps the mux with CORS, authentication and language negotiation.
func (sm *ServiceManager) Handler(cfg config.Config) http.Handler {
	return security.CORS(cfg.Auth.CORSAllowedOrigins, security.Middleware(i18n.Middleware(sm.mux)))
}
