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

type User struct {
	Id        int64    `json:"uid"`
	Name      string   `json:"name"`
	Mail      string   `json:"mail,omitempty"`
	Roles     []string `json:"roles"`
	CreatedAt int64    `json:"created_at"`
}

type UserRequest struct {
	Name  string   `json:"name"`
	Mail  string   `json:"mail,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

type UserListResponse struct {
	Users      []User      `json:"users"`
	Pagination interface{} `json:"pagination"`
}

// DeletedUser reports what a cascading user deletion removed.
type DeletedUser struct {
	Id              int64 `json:"uid"`
	DeletedProfiles int64 `json:"deleted_profiles"`
}
