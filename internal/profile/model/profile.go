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

// Profile is a typed record owned by a user. Per owner and type at most one
// profile is the default, and only active profiles hold that flag.
type Profile struct {
	Id         int64                  `json:"profile_id"`
	RevisionId int64                  `json:"revision_id"`
	Type       string                 `json:"type"`
	OwnerId    int64                  `json:"uid"`
	Status     bool                   `json:"status"`
	IsDefault  bool                   `json:"is_default"`
	Langcode   string                 `json:"langcode"`
	Data       map[string]interface{} `json:"data"`
	CreatedAt  int64                  `json:"created_at"`
	UpdatedAt  int64                  `json:"updated_at"`
	Label      string                 `json:"label,omitempty"`
}

func (p *Profile) IsActive() bool {
	return p.Status
}

func (p *Profile) IsNew() bool {
	return p.Id == 0
}

// SaveOptions control revision handling of a save.
type SaveOptions struct {
	NewRevision  bool
	RevisionLog  string
	RevisionUser int64
}

// SaveResult reports the default flag changes a save applied to siblings.
type SaveResult struct {
	Profile  *Profile
	Created  bool
	Cleared  []int64
	Promoted int64
}

// ListFilter narrows the profile collection.
type ListFilter struct {
	Type    string
	OwnerId int64
	Status  *bool
	AfterId int64
	Limit   int
}
