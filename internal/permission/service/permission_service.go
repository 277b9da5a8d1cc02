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

package service

import (
	"context"

	"github.com/wso2/identity-user-profile-service/internal/permission/model"
	typemodel "github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	typeservice "github.com/wso2/identity-user-profile-service/internal/profile_type/service"
	"github.com/wso2/identity-user-profile-service/internal/system/authz"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/i18n"
)

// scopedOperations are the bundle operations granted per own/any scope.
var scopedOperations = []string{
	constants.OperationView,
	constants.OperationEdit,
	constants.OperationDelete,
	constants.OperationPublish,
	constants.OperationUnpublish,
	constants.OperationActivateDeactivate,
}

// globalPermissions are listed after the bundle permissions.
var globalPermissions = []struct {
	name     string
	titleKey string
	restrict bool
}{
	{constants.PermissionAdministerProfiles, i18n.PermissionAdministerProfiles, true},
	{constants.PermissionAdministerProfileTypes, i18n.PermissionAdministerProfileTypes, true},
	{constants.PermissionBypassProfileAccess, i18n.PermissionBypassProfileAccess, true},
	{constants.PermissionAdministerUsers, i18n.PermissionAdministerUsers, true},
}

// PermissionServiceInterface defines the service interface.
type PermissionServiceInterface interface {
	GetPermissions(ctx context.Context) ([]model.Permission, error)
}

// PermissionService is the default implementation.
type PermissionService struct {
	profileTypes typeservice.ProfileTypeServiceInterface
}

// GetPermissionService returns a new instance.
func GetPermissionService() PermissionServiceInterface {
	return &PermissionService{profileTypes: typeservice.GetProfileTypeService()}
}

// GetPermissions returns the permissions of every profile type followed by
// the global ones.
func (s *PermissionService) GetPermissions(ctx context.Context) ([]model.Permission, error) {

	profileTypes, err := s.profileTypes.GetProfileTypes(ctx)
	if err != nil {
		return nil, err
	}
	permissions := make([]model.Permission, 0, len(profileTypes)*(1+2*len(scopedOperations))+len(globalPermissions))
	for _, profileType := range profileTypes {
		permissions = append(permissions, BundlePermissions(ctx, profileType)...)
	}
	for _, global := range globalPermissions {
		permissions = append(permissions, model.Permission{
			Name:           global.name,
			Title:          i18n.T(ctx, global.titleKey),
			RestrictAccess: global.restrict,
		})
	}
	return permissions, nil
}

// BundlePermissions returns the create permission and the any/own variants of
// every operation for one profile type.
func BundlePermissions(ctx context.Context, profileType typemodel.ProfileType) []model.Permission {

	bundle := profileType.Id
	permissions := []model.Permission{{
		Name:   authz.CreatePermission(bundle),
		Title:  i18n.T(ctx, i18n.PermissionTitleKey(constants.OperationCreate, ""), profileType.Label, constants.EntitySingularLabel),
		Bundle: bundle,
	}}
	for _, operation := range scopedOperations {
		for _, scope := range []string{constants.AnyScope, constants.OwnScope} {
			permissions = append(permissions, model.Permission{
				Name:   authz.EntityPermission(operation, scope, bundle),
				Title:  i18n.T(ctx, i18n.PermissionTitleKey(operation, scope), profileType.Label, constants.EntitySingularLabel),
				Bundle: bundle,
			})
		}
	}
	return permissions
}
