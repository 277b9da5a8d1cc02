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

	"github.com/wso2/identity-user-profile-service/internal/health_check/model"
	"github.com/wso2/identity-user-profile-service/internal/health_check/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// HealthHandler implements health and readiness endpoints.
type HealthHandler struct {
	provider provider.HealthCheckProviderInterface
}

// NewHealthHandler creates a new instance of HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{provider: provider.NewHealthCheckProvider()}
}

// HandleHealth responds to /health requests. It never touches the database.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, model.Readiness{Status: model.StatusHealthy})
}

// HandleReadiness responds to /ready requests.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	readiness, err := h.provider.GetHealthCheckService().CheckReadiness()
	if err != nil {
		log.FromContext(r.Context()).Warn("Readiness check failed", log.Error(err))
		utils.WriteJSON(w, http.StatusServiceUnavailable, model.Readiness{
			Status: model.StatusNotReady,
			Error:  err.Error(),
		})
		return
	}
	utils.WriteJSON(w, http.StatusOK, readiness)
}
