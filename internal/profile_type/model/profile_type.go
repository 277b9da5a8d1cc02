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

import "github.com/wso2/identity-user-profile-service/internal/system/constants"

// ProfileType is a profile bundle.
type ProfileType struct {
	Id              string   `json:"id" yaml:"id"`
	Label           string   `json:"label" yaml:"label"`
	DisplayLabel    string   `json:"display_label,omitempty" yaml:"display_label"`
	Multiple        bool     `json:"multiple" yaml:"multiple"`
	Registration    bool     `json:"registration" yaml:"registration"`
	Roles           []string `json:"roles" yaml:"roles"`
	UseRevisions    bool     `json:"use_revisions" yaml:"use_revisions"`
	PublishLabel    string   `json:"publish_label,omitempty" yaml:"publish_label"`
	UnpublishLabel  string   `json:"unpublish_label,omitempty" yaml:"unpublish_label"`
	ActivateLabel   string   `json:"activate_label,omitempty" yaml:"activate_label"`
	DeactivateLabel string   `json:"deactivate_label,omitempty" yaml:"deactivate_label"`
	Weight          int      `json:"weight" yaml:"weight"`
}

// ProfileTypeFile is the document accepted by the type import command.
type ProfileTypeFile struct {
	ProfileTypes []ProfileType `yaml:"profile_types"`
}

func (t ProfileType) GetPublishLabel() string {
	return labelOr(t.PublishLabel, constants.DefaultPublishLabel)
}

func (t ProfileType) GetUnpublishLabel() string {
	return labelOr(t.UnpublishLabel, constants.DefaultUnpublishLabel)
}

func (t ProfileType) GetActivateLabel() string {
	return labelOr(t.ActivateLabel, constants.DefaultActivateLabel)
}

func (t ProfileType) GetDeactivateLabel() string {
	return labelOr(t.DeactivateLabel, constants.DefaultDeactivateLabel)
}

// GetDisplayLabel is the label shown to end users; it falls back to Label.
func (t ProfileType) GetDisplayLabel() string {
	return labelOr(t.DisplayLabel, t.Label)
}

// AllowsRoles reports whether a user with the given roles may own profiles of
// this type. A type without roles allows everyone.
func (t ProfileType) AllowsRoles(roles []string) bool {
	if len(t.Roles) == 0 {
		return true
	}
	for _, allowed := range t.Roles {
		for _, role := range roles {
			if role == allowed {
				return true
			}
		}
	}
	return false
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
