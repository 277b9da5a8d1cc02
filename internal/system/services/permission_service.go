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

	"github.com/wso2/identity-user-profile-service/internal/permission/handler"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
)

type PermissionService struct {
	permissionHandler *handler.PermissionHandler
}

func NewPermissionService(mux *http.ServeMux) *PermissionService {

	instance := &PermissionService{
		permissionHandler: handler.NewPermissionHandler(),
	}
	mux.HandleFunc(routing.Pattern(http.MethodGet, routing.PermissionCollection), instance.permissionHandler.GetPermissions)

	return instance
}
