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
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
)

var testAuthConfig = config.AuthServerConfig{
	Issuer:        "profile-test",
	Audience:      "user-profile-service",
	SigningSecret: "s3cr3t",
}

func TestIssueAndValidateToken(t *testing.T) {
	token, err := IssueToken(Principal{
		UserId:      42,
		Username:    "jane",
		Roles:       []string{"editor"},
		Permissions: []string{"view own customer profile"},
	}, testAuthConfig, time.Minute)
	require.NoError(t, err)

	principal, err := ValidateToken(token, testAuthConfig)
	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.UserId)
	assert.Equal(t, "jane", principal.Username)
	assert.True(t, principal.HasPermission("view own customer profile"))
	assert.False(t, principal.HasPermission("view any customer profile"))
	assert.True(t, principal.HasRole("editor"))
	assert.False(t, principal.Admin)
}

func TestValidateTokenRejects(t *testing.T) {
	expired, err := IssueToken(Principal{UserId: 1}, testAuthConfig, -time.Minute)
	require.NoError(t, err)

	otherAudience := testAuthConfig
	otherAudience.Audience = "someone-else"
	wrongAudience, err := IssueToken(Principal{UserId: 1}, otherAudience, time.Minute)
	require.NoError(t, err)

	otherSecret := testAuthConfig
	otherSecret.SigningSecret = "another"
	wrongSecret, err := IssueToken(Principal{UserId: 1}, otherSecret, time.Minute)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "jane",
		Issuer:    testAuthConfig.Issuer,
		Audience:  jwt.ClaimStrings{testAuthConfig.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(testAuthConfig.SigningSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"expired":        expired,
		"wrong audience": wrongAudience,
		"wrong secret":   wrongSecret,
		"bad subject":    badSubject,
		"garbage":        "not-a-token",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateToken(token, testAuthConfig)
			assert.Error(t, err)
		})
	}
}

func TestValidateTokenWithoutSecret(t *testing.T) {
	token, err := IssueToken(Principal{UserId: 1}, testAuthConfig, time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, config.AuthServerConfig{})
	assert.Error(t, err)
}

func TestAdminPrincipalHoldsEveryPermission(t *testing.T) {
	admin := &Principal{UserId: 1, Admin: true}
	assert.True(t, admin.HasPermission("bypass profile access"))

	var nobody *Principal
	assert.False(t, nobody.HasPermission("administer profiles"))
	assert.False(t, nobody.HasRole("editor"))
}
