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

package constants

const ApiBasePath = "/api/v1"

// EntityTypeId is the machine name of the profile entity type. It is the last
// word of every generated bundle permission.
const EntityTypeId = "profile"

const (
	EntitySingularLabel   = "profile"
	DefaultLangcode       = "en"
	LangcodeNotSpecified  = "und"
	LangcodeNotApplicable = "zxx"
)

type contextKey string

const (
	TraceIDContextKey   contextKey = "trace_id"
	PrincipalContextKey contextKey = "principal"
)

const TraceIDHeader = "X-Trace-Id"

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Entity operations checked against per bundle permissions.
const (
	OperationCreate             = "create"
	OperationView               = "view"
	OperationEdit               = "edit"
	OperationDelete             = "delete"
	OperationPublish            = "publish"
	OperationUnpublish          = "unpublish"
	OperationActivateDeactivate = "activate/deactivate"
)

const (
	OwnScope = "own"
	AnyScope = "any"
)

// Global permissions.
const (
	PermissionAdministerProfiles     = "administer profiles"
	PermissionAdministerProfileTypes = "administer profile types"
	PermissionBypassProfileAccess    = "bypass profile access"
	PermissionAdministerUsers        = "administer users"
)

// Bulk action plugin ids.
const (
	ActionActivateProfile   = "profile_activate_action"
	ActionDeactivateProfile = "profile_deactivate_action"
	ActionPublishProfile    = "profile_publish_action"
	ActionUnpublishProfile  = "profile_unpublish_action"
)

// MaxActionProfiles bounds the ids of one bulk action request.
const MaxActionProfiles = 500

// Form submit operations.
const (
	FormOpSubmit     = "submit"
	FormOpSetDefault = "set_default"
	FormOpActivate   = "activate"
	FormOpDeactivate = "deactivate"
	FormOpDelete     = "delete"
)

// Default labels used when a profile type leaves them empty.
const (
	DefaultPublishLabel    = "Publish"
	DefaultUnpublishLabel  = "Unpublish"
	DefaultActivateLabel   = "Activate"
	DefaultDeactivateLabel = "Deactivate"
)

// ShortDateFormat mirrors the "short" date format of the admin list.
const ShortDateFormat = "01/02/2006 - 15:04"

const ProfileTypeCacheTTLSeconds = 300

var AllowedDialects = map[string]bool{
	DialectPostgres: true,
	DialectSQLite:   true,
}
