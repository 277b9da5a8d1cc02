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

package authn

import "slices"

// Principal is the authenticated caller of a request. Admin is set for the
// configured administrator, who holds every permission.
type Principal struct {
	UserId      int64
	Username    string
	Roles       []string
	Permissions []string
	Admin       bool
}

// HasPermission reports whether the principal was granted perm.
func (p *Principal) HasPermission(perm string) bool {
	if p == nil {
		return false
	}
	if p.Admin {
		return true
	}
	return slices.Contains(p.Permissions, perm)
}

// HasRole reports whether the principal carries one of the given roles.
func (p *Principal) HasRole(roles ...string) bool {
	if p == nil {
		return false
	}
	for _, role := range roles {
		if slices.Contains(p.Roles, role) {
			return true
		}
	}
	return false
}
