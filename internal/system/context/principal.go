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

package context

import (
	"context"

	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
)

// WithPrincipal binds the authenticated principal to the request context.
func WithPrincipal(ctx context.Context, principal *authn.Principal) context.Context {
	return context.WithValue(ctx, constants.PrincipalContextKey, principal)
}

// GetPrincipal returns the principal bound to ctx, or nil for anonymous requests.
func GetPrincipal(ctx context.Context) *authn.Principal {
	if ctx == nil {
		return nil
	}
	principal, _ := ctx.Value(constants.PrincipalContextKey).(*authn.Principal)
	return principal
}
