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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	typeservice "github.com/wso2/identity-user-profile-service/internal/profile_type/service"
	"github.com/wso2/identity-user-profile-service/internal/profile_type/store"
	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/database/dbtest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dbtest.Setup(t)
	typeservice.ResetCache()
	bootstrap = func() error { return nil }

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile_types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTypesImport(t *testing.T) {
	path := writeFile(t, `profile_types:
  - id: customer
    label: Customer
    multiple: true
  - id: billing
    label: Billing
    use_revisions: true
    publish_label: Enable
`)
	out, err := run(t, "types", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 created, 0 updated")

	billing, err := store.GetProfileType("billing")
	require.NoError(t, err)
	require.NotNil(t, billing)
	assert.True(t, billing.UseRevisions)
	assert.Equal(t, "Enable", billing.GetPublishLabel())
}

func TestTypesImportRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, `profile_types:
  - id: customer
    label: Customer
    colour: blue
`)
	_, err := run(t, "types", "import", path)
	assert.Error(t, err)
}

func TestTypesImportRejectsEmptyFile(t *testing.T) {
	_, err := run(t, "types", "import", writeFile(t, "profile_types: []\n"))
	assert.Error(t, err)
}

func TestPermissionsCommand(t *testing.T) {
	out, err := run(t, "permissions")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus the global permissions; no types exist yet.
	assert.Len(t, lines, 5)
	assert.Contains(t, out, "bypass profile access")
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--uid", "7", "--permission", "view own customer profile")
	require.NoError(t, err)

	principal, err := authn.ValidateToken(strings.TrimSpace(out), dbtest.TestConfig.AuthServer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), principal.UserId)
	assert.True(t, principal.HasPermission("view own customer profile"))
}

func TestTokenCommandRequiresUid(t *testing.T) {
	_, err := run(t, "token", "--uid", "0")
	assert.Error(t, err)
}
