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

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-user-profile-service/internal/system/database/dbtest"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/pagination"
	"github.com/wso2/identity-user-profile-service/internal/user/model"
)

func requireClientError(t *testing.T, err error, status int) {
	t.Helper()
	var clientError *errors.ClientError
	require.ErrorAs(t, err, &clientError)
	assert.Equal(t, status, clientError.StatusCode)
}

func TestAddAndGetUser(t *testing.T) {
	dbtest.Setup(t)
	svc := GetUserService()
	ctx := context.Background()

	user, err := svc.AddUser(ctx, model.UserRequest{Name: " jane ", Mail: "jane@example.com", Roles: []string{"editor"}})
	require.NoError(t, err)
	assert.Positive(t, user.Id)
	assert.Equal(t, "jane", user.Name)

	fetched, err := svc.GetUser(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"editor"}, fetched.Roles)
	assert.Equal(t, "jane@example.com", fetched.Mail)
}

func TestAddUserValidation(t *testing.T) {
	dbtest.Setup(t)
	svc := GetUserService()
	ctx := context.Background()

	_, err := svc.AddUser(ctx, model.UserRequest{})
	requireClientError(t, err, http.StatusBadRequest)

	_, err = svc.AddUser(ctx, model.UserRequest{Name: "x", Mail: "not-an-address"})
	requireClientError(t, err, http.StatusBadRequest)

	_, err = svc.AddUser(ctx, model.UserRequest{Name: "x"})
	require.NoError(t, err)
	_, err = svc.AddUser(ctx, model.UserRequest{Name: "x"})
	requireClientError(t, err, http.StatusConflict)
}

func TestGetUserNotFound(t *testing.T) {
	dbtest.Setup(t)
	_, err := GetUserService().GetUser(context.Background(), 404)
	requireClientError(t, err, http.StatusNotFound)
}

func TestListUsersPaginates(t *testing.T) {
	dbtest.Setup(t)
	svc := GetUserService()
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.AddUser(ctx, model.UserRequest{Name: name})
		require.NoError(t, err)
	}

	users, page, err := svc.ListUsers(ctx, pagination.Page{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	require.NotEmpty(t, page.NextCursor)

	afterId, err := pagination.DecodeCursor(page.NextCursor)
	require.NoError(t, err)
	users, page, err = svc.ListUsers(ctx, pagination.Page{Limit: 2, AfterId: afterId})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "c", users[0].Name)
	assert.Empty(t, page.NextCursor)
}

func TestDeleteUser(t *testing.T) {
	dbtest.Setup(t)
	svc := GetUserService()
	ctx := context.Background()

	user, err := svc.AddUser(ctx, model.UserRequest{Name: "gone"})
	require.NoError(t, err)

	deleted, err := svc.DeleteUser(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted.DeletedProfiles)

	_, err = svc.GetUser(ctx, user.Id)
	requireClientError(t, err, http.StatusNotFound)

	_, err = svc.DeleteUser(ctx, user.Id)
	requireClientError(t, err, http.StatusNotFound)
}
