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

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
	errors2 "github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

// Claims is the token body issued to profile service callers.
type Claims struct {
	Name        string   `json:"name,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// ValidateToken verifies an HS256 bearer token and returns the principal it names.
func ValidateToken(token string, authConfig config.AuthServerConfig) (*Principal, error) {

	logger := log.GetLogger()
	if authConfig.SigningSecret == "" {
		logger.Debug("Token signing secret is not configured; rejecting bearer token.")
		return nil, unauthorizedError()
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if authConfig.Issuer != "" {
		options = append(options, jwt.WithIssuer(authConfig.Issuer))
	}
	if authConfig.Audience != "" {
		options = append(options, jwt.WithAudience(authConfig.Audience))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(authConfig.SigningSecret), nil
	}, options...)
	if err != nil {
		logger.Debug("Bearer token validation failed.", log.Error(err))
		return nil, unauthorizedError()
	}

	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || uid <= 0 {
		logger.Debug("Token subject is not a user id.", log.String("sub", claims.Subject))
		return nil, unauthorizedError()
	}

	return &Principal{
		UserId:      uid,
		Username:    claims.Name,
		Roles:       claims.Roles,
		Permissions: claims.Permissions,
	}, nil
}

// IssueToken signs a token for the given principal. Used by the admin CLI and tests.
func IssueToken(principal Principal, authConfig config.AuthServerConfig, ttl time.Duration) (string, error) {

	if authConfig.SigningSecret == "" {
		return "", fmt.Errorf("token signing secret is not configured")
	}
	now := time.Now()
	claims := Claims{
		Name:        principal.Username,
		Roles:       principal.Roles,
		Permissions: principal.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(principal.UserId, 10),
			Issuer:    authConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if authConfig.Audience != "" {
		claims.Audience = jwt.ClaimStrings{authConfig.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(authConfig.SigningSecret))
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: errors2.UN_AUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
