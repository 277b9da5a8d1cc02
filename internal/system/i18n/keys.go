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

package i18n

// Catalog keys.
const (
	ProfileLabel              = "profile.label"
	ProfileCreated            = "profile.created"
	ProfileUpdated            = "profile.updated"
	ProfileActivated          = "profile.activated"
	ProfileDeactivated        = "profile.deactivated"
	ProfileDeleted            = "profile.deleted"
	ProfileDeleteQuestion     = "profile.delete.question"
	ProfilePublishQuestion    = "profile.publish.question"
	ProfilePublishAlready     = "profile.publish.already"
	ProfilePublishDone        = "profile.publish.done"
	ProfileUnpublishQuestion  = "profile.unpublish.question"
	ProfileUnpublishAlready   = "profile.unpublish.already"
	ProfileUnpublishDone      = "profile.unpublish.done"
	ProfileActivateAlready    = "profile.activate.already"
	ProfileDeactivateAlready  = "profile.deactivate.already"
	ProfileDefaultAlready     = "profile.default.already"
	ProfileDefaultDone        = "profile.default.done"
	ProfileActionNone         = "profile.action.none"
	ProfileActionDone         = "profile.action.done"
	FormSave                  = "form.save"
	FormSaveDefault           = "form.save_default"
	FormDelete                = "form.delete"
	FormCancel                = "form.cancel"
	LabelPublish              = "label.publish"
	LabelUnpublish            = "label.unpublish"
	LabelActivate             = "label.activate"
	LabelDeactivate           = "label.deactivate"
	OpEdit                    = "op.edit"
	OpDelete                  = "op.delete"
	OpSetDefault              = "op.set_default"
	ListLabel                 = "list.label"
	ListType                  = "list.type"
	ListOwner                 = "list.owner"
	ListStatus                = "list.status"
	ListDefault               = "list.default"
	ListChanged               = "list.changed"
	ListLanguage              = "list.language"
	ListActive                = "list.active"
	ListInactive              = "list.inactive"
	ListIsDefault             = "list.is_default"
	ListNotDefault            = "list.not_default"
	ListOperations            = "list.operations"
	ListEmpty                 = "list.empty"
	LanguageNotSpecified      = "language.und"
	LanguageNotApplicable     = "language.zxx"
)

const (
	PermissionAdministerProfiles     = "permission.administer_profiles"
	PermissionAdministerProfileTypes = "permission.administer_profile_types"
	PermissionBypassProfileAccess    = "permission.bypass_profile_access"
	PermissionAdministerUsers        = "permission.administer_users"
)

// PermissionTitleKey returns the catalog key titling a bundle permission,
// e.g. ("publish", "any") -> "permission.publish_any".
func PermissionTitleKey(operation, scope string) string {
	if operation == "activate/deactivate" {
		operation = "activate"
	}
	if scope == "" {
		return "permission." + operation
	}
	return "permission." + operation + "_" + scope
}
