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

package routing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wso2/identity-user-profile-service/internal/system/constants"
)

// Route names.
const (
	ProfileCollection     = "entity.profile.collection"
	ProfileCanonical      = "entity.profile.canonical"
	ProfileEditForm       = "entity.profile.edit_form"
	ProfileDeleteForm     = "entity.profile.delete_form"
	ProfileSetDefault     = "entity.profile.set_default"
	ProfilePublish        = "entity.profile.publish"
	ProfileUnpublish      = "entity.profile.unpublish"
	ProfileActivate       = "entity.profile.activate"
	ProfileDeactivate     = "entity.profile.deactivate"
	ProfileOperations     = "entity.profile.operations"
	ProfileRevisions      = "entity.profile.revisions"
	ProfileAction         = "entity.profile.action"
	UserProfileForm       = "entity.profile.type.user_profile_form"
	UserProfiles          = "entity.profile.type.user_profiles"
	UserDefaultProfile    = "entity.profile.type.user_default_profile"
	UserCanonical         = "entity.user.canonical"
	UserCollection        = "entity.user.collection"
	ProfileTypeCollection = "entity.profile_type.collection"
	ProfileTypeCanonical  = "entity.profile_type.canonical"
	PermissionCollection  = "user.admin_permissions"
	HealthCheck           = "system.health"
	Readiness             = "system.ready"
)

// patterns maps route names to path templates relative to the api base path.
var patterns = map[string]string{
	ProfileCollection:     "/profiles",
	ProfileCanonical:      "/profiles/{profile}",
	ProfileEditForm:       "/profiles/{profile}/form",
	ProfileDeleteForm:     "/profiles/{profile}/delete",
	ProfileSetDefault:     "/profiles/{profile}/set-default",
	ProfilePublish:        "/profiles/{profile}/publish",
	ProfileUnpublish:      "/profiles/{profile}/unpublish",
	ProfileActivate:       "/profiles/{profile}/activate",
	ProfileDeactivate:     "/profiles/{profile}/deactivate",
	ProfileOperations:     "/profiles/{profile}/operations",
	ProfileRevisions:      "/profiles/{profile}/revisions",
	ProfileAction:         "/profile-actions/{action}",
	UserProfileForm:       "/users/{user}/profiles/{profile_type}/form",
	UserProfiles:          "/users/{user}/profiles/{profile_type}",
	UserDefaultProfile:    "/users/{user}/profiles/{profile_type}/default",
	UserCanonical:         "/users/{user}",
	UserCollection:        "/users",
	ProfileTypeCollection: "/profile-types",
	ProfileTypeCanonical:  "/profile-types/{profile_type}",
	PermissionCollection:  "/permissions",
	HealthCheck:           "/health",
	Readiness:             "/ready",
}

// Pattern returns the mux pattern of a named route, prefixed with method.
// Path parameters keep their names so handlers read them with PathValue.
func Pattern(method, name string) string {
	path, ok := patterns[name]
	if !ok {
		panic(fmt.Sprintf("unknown route %q", name))
	}
	return method + " " + constants.ApiBasePath + path
}

// Params holds route parameter values keyed by parameter name.
type Params map[string]string

// URL builds the path of a named route. query may be nil.
func URL(name string, params Params, query url.Values) (string, error) {
	path, ok := patterns[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}
	for key, value := range params {
		path = strings.ReplaceAll(path, "{"+key+"}", url.PathEscape(value))
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("missing parameters for route %q: %s", name, path)
	}
	path = constants.ApiBasePath + path
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

// WithDestination returns the query carrying a redirect-back destination.
func WithDestination(destination string) url.Values {
	if destination == "" {
		return nil
	}
	return url.Values{"destination": []string{destination}}
}
