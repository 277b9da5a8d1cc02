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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wso2/identity-user-profile-service/internal/system/authn"
)

func TestEntityPermissionNames(t *testing.T) {
	assert.Equal(t, "publish own customer profile", EntityPermission("publish", "own", "customer"))
	assert.Equal(t, "activate/deactivate any customer profile", EntityPermission("activate/deactivate", "any", "customer"))
	assert.Equal(t, "create customer profile", CreatePermission("customer"))
}

func TestCanAccessProfile(t *testing.T) {
	owner := &authn.Principal{UserId: 10, Permissions: []string{"publish own customer profile"}}
	other := &authn.Principal{UserId: 11, Permissions: []string{"publish own customer profile"}}
	anyGrant := &authn.Principal{UserId: 12, Permissions: []string{"publish any customer profile"}}
	bypass := &authn.Principal{UserId: 13, Permissions: []string{"bypass profile access"}}
	admin := &authn.Principal{UserId: 1, Admin: true}

	assert.True(t, CanAccessProfile(owner, "publish", "customer", 10))
	assert.False(t, CanAccessProfile(other, "publish", "customer", 10))
	assert.True(t, CanAccessProfile(anyGrant, "publish", "customer", 10))
	assert.False(t, CanAccessProfile(anyGrant, "publish", "billing", 10))
	assert.False(t, CanAccessProfile(owner, "unpublish", "customer", 10))
	assert.True(t, CanAccessProfile(bypass, "delete", "billing", 99))
	assert.True(t, CanAccessProfile(admin, "edit", "customer", 10))
	assert.False(t, CanAccessProfile(nil, "view", "customer", 10))
}

func TestCanAccessProfileCreate(t *testing.T) {
	creator := &authn.Principal{UserId: 5, Permissions: []string{"create customer profile"}}
	assert.True(t, CanAccessProfile(creator, "create", "customer", 9))
	assert.False(t, CanAccessProfile(creator, "create", "billing", 5))
}

func TestCanAccessCollection(t *testing.T) {
	assert.True(t, CanAccessCollection(&authn.Principal{Permissions: []string{"administer profiles"}}))
	assert.True(t, CanAccessCollection(&authn.Principal{Permissions: []string{"bypass profile access"}}))
	assert.False(t, CanAccessCollection(&authn.Principal{Permissions: []string{"view any customer profile"}}))
	assert.False(t, CanAccessCollection(nil))
}
