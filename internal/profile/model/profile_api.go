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

import "github.com/wso2/identity-user-profile-service/internal/system/messenger"

// ProfileRequest is the body of the profile submit endpoints. Op selects the
// form button: submit, set_default, activate or deactivate.
type ProfileRequest struct {
	Type        string                 `json:"type,omitempty"`
	OwnerId     int64                  `json:"uid,omitempty"`
	Status      *bool                  `json:"status,omitempty"`
	IsDefault   *bool                  `json:"is_default,omitempty"`
	Langcode    string                 `json:"langcode,omitempty"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Op          string                 `json:"op,omitempty"`
	NewRevision bool                   `json:"new_revision,omitempty"`
	RevisionLog string                 `json:"revision_log,omitempty"`
}

// ProfileResponse carries the saved profile, user facing messages and the
// location the caller should continue at.
type ProfileResponse struct {
	Profile  *Profile           `json:"profile"`
	Messages messenger.Messages `json:"messages"`
	Redirect string             `json:"redirect,omitempty"`
}

// ConfirmRequest is the body of the confirmation form endpoints.
type ConfirmRequest struct {
	Confirm     bool   `json:"confirm"`
	Destination string `json:"destination,omitempty"`
}

// ConfirmForm describes a confirmation step before a state change.
type ConfirmForm struct {
	ProfileId   int64  `json:"profile_id"`
	Question    string `json:"question"`
	ConfirmText string `json:"confirm_text"`
	CancelText  string `json:"cancel_text"`
	CancelURL   string `json:"cancel_url"`
	SubmitURL   string `json:"submit_url,omitempty"`

	Messages messenger.Messages `json:"messages,omitempty"`
}

// FormAction is a submit button of the profile form.
type FormAction struct {
	Op     string `json:"op"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
	Method string `json:"method"`
	URL    string `json:"url"`
}

// ProfileForm describes the add or edit form of a profile.
type ProfileForm struct {
	Profile *Profile     `json:"profile"`
	Type    string       `json:"type"`
	IsNew   bool         `json:"is_new"`
	Actions []FormAction `json:"actions"`
}

// Operation is an entry of a profile's operations menu.
type Operation struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Weight int    `json:"weight"`
	URL    string `json:"url"`
}

// Link is a titled URL.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ListColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type ListRow struct {
	ProfileId      int64             `json:"profile_id"`
	URL            string            `json:"url"`
	Cells          map[string]string `json:"cells"`
	Operations     []Operation       `json:"operations"`
	StatusLink     *Link             `json:"status_link,omitempty"`
	ActivationLink *Link             `json:"activation_link,omitempty"`
}

type ListResponse struct {
	Header     []ListColumn `json:"header"`
	Rows       []ListRow    `json:"rows"`
	Empty      string       `json:"empty,omitempty"`
	Pagination interface{}  `json:"pagination"`
}

// ActionRequest is the body of a bulk action.
type ActionRequest struct {
	ProfileIds []int64 `json:"profile_ids"`
}

// Bulk action outcomes per profile.
const (
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
	OutcomeDenied    = "denied"
	OutcomeNotFound  = "not_found"
)

type ActionItemResult struct {
	ProfileId int64  `json:"profile_id"`
	Outcome   string `json:"outcome"`
}

type ActionResponse struct {
	Action   string             `json:"action"`
	Results  []ActionItemResult `json:"results"`
	Messages messenger.Messages `json:"messages"`
}

type RevisionListResponse struct {
	ProfileId int64      `json:"profile_id"`
	Revisions []Revision `json:"revisions"`
}
