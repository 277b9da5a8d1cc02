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

package security

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"slices"
	"strings"

	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	sysContext "github.com/wso2/identity-user-profile-service/internal/system/context"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// Middleware binds a trace id and the authenticated principal to every request.
// Requests without credentials continue anonymously; invalid credentials are
// rejected with 401.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := sysContext.TraceIDFromRequest(r)
		ctx := sysContext.WithTraceID(r.Context(), traceID)
		w.Header().Set(constants.TraceIDHeader, traceID)

		principal, err := authenticate(r)
		if err != nil {
			log.FromContext(ctx).Audit(log.AuditEvent{
				InitiatorID:   "anonymous",
				InitiatorType: log.InitiatorTypeUser,
				TargetID:      r.URL.Path,
				TargetType:    "request",
				ActionID:      log.ActionAuthenticationFailure,
				TraceID:       traceID,
			})
			utils.HandleError(w, err)
			return
		}
		if principal != nil {
			ctx = sysContext.WithPrincipal(ctx, principal)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticate(r *http.Request) (*authn.Principal, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	authConfig := config.GetProfileRuntime().Config.AuthServer
	switch {
	case strings.HasPrefix(authHeader, "Bearer "):
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		return authn.ValidateToken(token, authConfig)
	case strings.HasPrefix(authHeader, "Basic "):
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Basic "))
		if !validateAdminCredentials(token, authConfig) {
			return nil, unauthorized("Invalid admin credentials")
		}
		log.GetLogger().Debug("Admin credentials validated successfully.")
		return &authn.Principal{
			UserId:   authConfig.AdminUserId,
			Username: authConfig.AdminUsername,
			Admin:    true,
		}, nil
	}
	return nil, unauthorized("Missing or invalid Authorization header")
}

func validateAdminCredentials(token string, authServerConfig config.AuthServerConfig) bool {

	username := strings.TrimSpace(authServerConfig.AdminUsername)
	password := strings.TrimSpace(authServerConfig.AdminPassword)
	if username == "" || password == "" || token == "" {
		return false
	}

	expected := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

// RequirePrincipal returns the caller of r, or a 401 client error for anonymous requests.
func RequirePrincipal(r *http.Request) (*authn.Principal, error) {
	principal := sysContext.GetPrincipal(r.Context())
	if principal == nil {
		return nil, unauthorized("Authentication is required")
	}
	return principal, nil
}

// RequirePermission returns the caller of r when it holds one of perms.
func RequirePermission(r *http.Request, perms ...string) (*authn.Principal, error) {
	principal, err := RequirePrincipal(r)
	if err != nil {
		return nil, err
	}
	for _, perm := range perms {
		if principal.HasPermission(perm) {
			return principal, nil
		}
	}
	return nil, errors.NewClientError(errors.FORBIDDEN, http.StatusForbidden)
}

// CORS answers preflight requests and sets the allow headers for configured origins.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, "+constants.TraceIDHeader)
			w.Header().Set("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(description string) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.UN_AUTHORIZED.Code,
		Message:     errors.UN_AUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
