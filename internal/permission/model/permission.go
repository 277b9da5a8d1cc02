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

package model

// Permission is one grantable permission. Bundle is empty for global permissions.
type Permission struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	Bundle         string `json:"bundle,omitempty"`
	RestrictAccess bool   `json:"restrict_access,omitempty"`
}

type PermissionListResponse struct {
	Permissions []Permission `json:"permissions"`
}
