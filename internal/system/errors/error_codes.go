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

package errors

const errorPrefix = "UPS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while initializing the database client.",
	}

	SCHEMA_INIT = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while installing the database schema.",
	}

	ADD_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Profile addition failed.",
	}

	UPDATE_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Profile update failed.",
	}

	GET_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Fetching profile(s) failed.",
	}

	DELETE_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Profile deletion failed.",
	}

	GET_PROFILE_REVISIONS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Fetching profile revisions failed.",
	}

	ADD_PROFILE_TYPE = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Profile type addition failed.",
	}

	UPDATE_PROFILE_TYPE = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Profile type update failed.",
	}

	GET_PROFILE_TYPE = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Fetching profile type(s) failed.",
	}

	DELETE_PROFILE_TYPE = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Profile type deletion failed.",
	}

	ADD_USER = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "User addition failed.",
	}

	GET_USER = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Fetching user failed.",
	}

	DELETE_USER = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "User deletion failed.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while parsing the token.",
	}

	BUILD_URL = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while building a route URL.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Bad request.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "10002",
		Message:     "Unauthorized",
		Description: "You are not authorized to access this resource.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "10003",
		Message:     "Forbidden",
		Description: "You do not have permission to access this resource.",
	}

	PROFILE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "10004",
		Message:     "Profile not found.",
		Description: "No profile record found for the given profile_id.",
	}

	PROFILE_TYPE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "10005",
		Message:     "Profile type not found.",
		Description: "No profile type found for the given id.",
	}

	USER_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "10006",
		Message:     "User not found.",
		Description: "No user found for the given uid.",
	}

	PROFILE_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "10007",
		Message: "Profile validation failed.",
	}

	PROFILE_TYPE_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "10008",
		Message: "Profile type validation failed.",
	}

	PROFILE_TYPE_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "10009",
		Message: "Profile type already exists.",
	}

	PROFILE_TYPE_IN_USE = ErrorMessage{
		Code:    errorPrefix + "10010",
		Message: "Profile type is in use.",
	}

	PROFILE_LIMIT_REACHED = ErrorMessage{
		Code:    errorPrefix + "10011",
		Message: "Profile limit reached.",
	}

	INACTIVE_PROFILE_DEFAULT = ErrorMessage{
		Code:        errorPrefix + "10012",
		Message:     "Inactive profile cannot be default.",
		Description: "Activate the profile before marking it as default.",
	}

	CONFIRMATION_REQUIRED = ErrorMessage{
		Code:        errorPrefix + "10013",
		Message:     "Confirmation required.",
		Description: "Submit the form with confirm set to true.",
	}

	INVALID_ACTION = ErrorMessage{
		Code:    errorPrefix + "10014",
		Message: "Invalid action.",
	}

	INVALID_CURSOR = ErrorMessage{
		Code:    errorPrefix + "10015",
		Message: "Invalid pagination parameters.",
	}

	USER_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "10016",
		Message: "User validation failed.",
	}

	USER_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "10017",
		Message: "User already exists.",
	}

	ROLE_NOT_ALLOWED = ErrorMessage{
		Code:    errorPrefix + "10018",
		Message: "Profile type not available for the user.",
	}
)
