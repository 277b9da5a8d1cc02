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

package authz

import (
	"fmt"

	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

// EntityPermission returns the bundle permission for an operation and scope,
// e.g. "publish own customer profile".
func EntityPermission(operation, scope, bundle string) string {
	return fmt.Sprintf("%s %s %s %s", operation, scope, bundle, constants.EntityTypeId)
}

// CreatePermission returns the permission to create profiles of a bundle.
func CreatePermission(bundle string) string {
	return fmt.Sprintf("%s %s %s", constants.OperationCreate, bundle, constants.EntityTypeId)
}

// HasAnyPermission reports whether the principal holds one of perms.
func HasAnyPermission(principal *authn.Principal, perms ...string) bool {
	for _, perm := range perms {
		if principal.HasPermission(perm) {
			return true
		}
	}
	return false
}

// CanAccessProfile checks an entity operation on a profile of the given bundle
// owned by ownerId. "any" grants always apply; "own" grants apply only when
// the principal owns the profile.
func CanAccessProfile(principal *authn.Principal, operation, bundle string, ownerId int64) bool {

	if principal == nil {
		return false
	}
	if principal.HasPermission(constants.PermissionBypassProfileAccess) {
		return true
	}
	if operation == constants.OperationCreate {
		return principal.HasPermission(CreatePermission(bundle))
	}
	if principal.HasPermission(EntityPermission(operation, constants.AnyScope, bundle)) {
		return true
	}
	allowed := principal.UserId == ownerId &&
		principal.HasPermission(EntityPermission(operation, constants.OwnScope, bundle))
	if !allowed {
		log.GetLogger().Debug("Profile access denied",
			log.String("operation", operation), log.String("bundle", bundle),
			log.Int64("owner", ownerId), log.Int64("principal", principal.UserId))
	}
	return allowed
}

// CanAccessCollection gates the administrative profile list.
func CanAccessCollection(principal *authn.Principal) bool {
	return HasAnyPermission(principal, constants.PermissionAdministerProfiles, constants.PermissionBypassProfileAccess)
}
