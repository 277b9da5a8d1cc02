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

	"github.com/wso2/identity-user-profile-service/internal/permission/model"
	"github.com/wso2/identity-user-profile-service/internal/permission/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/security"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// PermissionHandler lists the generated permissions.
type PermissionHandler struct {
	provider provider.PermissionProviderInterface
}

// NewPermissionHandler returns a new PermissionHandler instance.
func NewPermissionHandler() *PermissionHandler {
	return &PermissionHandler{provider: provider.NewPermissionProvider()}
}

// GetPermissions handles GET /permissions
func (h *PermissionHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {

	if _, err := security.RequirePermission(r, constants.PermissionAdministerUsers); err != nil {
		utils.HandleError(w, err)
		return
	}
	permissions, err := h.provider.GetPermissionService().GetPermissions(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, model.PermissionListResponse{Permissions: permissions})
}
