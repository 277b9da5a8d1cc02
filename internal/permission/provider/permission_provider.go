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

package provider

import "github.com/wso2/identity-user-profile-service/internal/permission/service"

// PermissionProviderInterface defines the interface for the permission provider.
type PermissionProviderInterface interface {
	GetPermissionService() service.PermissionServiceInterface
}

// PermissionProvider is the default implementation of the PermissionProviderInterface.
type PermissionProvider struct{}

// NewPermissionProvider creates a new instance of PermissionProvider.
func NewPermissionProvider() PermissionProviderInterface {
	return &PermissionProvider{}
}

// GetPermissionService returns the permission service instance.
func (pp *PermissionProvider) GetPermissionService() service.PermissionServiceInterface {
	return service.GetPermissionService()
}
