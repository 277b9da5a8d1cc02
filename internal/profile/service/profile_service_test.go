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
	"fmt"
	"math/rand"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-user-profile-service/internal/profile/model"
	"github.com/wso2/identity-user-profile-service/internal/profile/store"
	typemodel "github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	typeservice "github.com/wso2/identity-user-profile-service/internal/profile_type/service"
	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	sysContext "github.com/wso2/identity-user-profile-service/internal/system/context"
	"github.com/wso2/identity-user-profile-service/internal/system/database/dbtest"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/messenger"
	"github.com/wso2/identity-user-profile-service/internal/system/pagination"
	usermodel "github.com/wso2/identity-user-profile-service/internal/user/model"
	userservice "github.com/wso2/identity-user-profile-service/internal/user/service"
)

type fixture struct {
	svc   ProfileServiceInterface
	admin context.Context
	jane  int64
	john  int64
}

func setup(t *testing.T, types ...typemodel.ProfileType) *fixture {
	t.Helper()
	dbtest.Setup(t)
	typeservice.ResetCache()

	f := &fixture{svc: GetProfileService()}
	f.admin = as(&authn.Principal{UserId: 1, Username: "admin", Admin: true})
	users := userservice.GetUserService()
	for _, name := range []string{"admin", "jane", "john"} {
		user, err := users.AddUser(f.admin, usermodel.UserRequest{Name: name, Roles: []string{"buyer"}})
		require.NoError(t, err)
		switch name {
		case "jane":
			f.jane = user.Id
		case "john":
			f.john = user.Id
		}
	}
	if len(types) == 0 {
		types = []typemodel.ProfileType{{Id: "customer", Label: "Customer", Multiple: true}}
	}
	for _, profileType := range types {
		_, err := typeservice.GetProfileTypeService().AddProfileType(f.admin, profileType)
		require.NoError(t, err)
	}
	return f
}

func as(principal *authn.Principal) context.Context {
	return sysContext.WithPrincipal(context.Background(), principal)
}

// user returns a context for uid holding the "own" permissions of bundle plus extra.
func user(uid int64, bundle string, extra ...string) context.Context {
	perms := []string{fmt.Sprintf("create %s profile", bundle)}
	for _, op := range []string{"view", "edit", "delete", "publish", "unpublish", "activate/deactivate"} {
		perms = append(perms, fmt.Sprintf("%s own %s profile", op, bundle))
	}
	return as(&authn.Principal{UserId: uid, Permissions: append(perms, extra...)})
}

func (f *fixture) create(t *testing.T, ctx context.Context, request model.ProfileRequest) *model.Profile {
	t.Helper()
	if request.Type == "" {
		request.Type = "customer"
	}
	response, err := f.svc.CreateProfile(ctx, request)
	require.NoError(t, err)
	return response.Profile
}

func (f *fixture) reload(t *testing.T, id int64) *model.Profile {
	t.Helper()
	profile, err := f.svc.GetProfile(f.admin, id)
	require.NoError(t, err)
	return profile
}

func requireClientError(t *testing.T, err error, status int) {
	t.Helper()
	var clientError *errors.ClientError
	require.ErrorAs(t, err, &clientError)
	assert.Equal(t, status, clientError.StatusCode)
}

func countDefaults(t *testing.T, owner int64, bundle string) int {
	t.Helper()
	profiles, err := store.GetProfilesByOwnerAndType(owner, bundle)
	require.NoError(t, err)
	defaults := 0
	for _, profile := range profiles {
		if profile.IsDefault {
			defaults++
			assert.True(t, profile.Status, "inactive profile %d holds default", profile.Id)
		}
	}
	return defaults
}

func boolPtr(b bool) *bool {
	return &b
}

func TestCreateFirstProfileIsDefault(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")

	response, err := f.svc.CreateProfile(ctx, model.ProfileRequest{Type: "customer", Data: map[string]interface{}{"city": "Colombo"}})
	require.NoError(t, err)
	first := response.Profile
	assert.True(t, first.IsDefault)
	assert.True(t, first.Status)
	assert.Equal(t, f.jane, first.OwnerId)
	assert.Equal(t, constants.DefaultLangcode, first.Langcode)
	assert.Equal(t, fmt.Sprintf("Customer profile #%d", first.Id), first.Label)
	assert.Equal(t, messenger.Messages{{Type: messenger.TypeStatus,
		Text: fmt.Sprintf("Customer profile #%d has been created.", first.Id)}}, response.Messages)
	assert.Equal(t, fmt.Sprintf("/api/v1/users/%d", f.jane), response.Redirect)

	second := f.create(t, ctx, model.ProfileRequest{})
	assert.False(t, second.IsDefault)
	assert.Equal(t, 1, countDefaults(t, f.jane, "customer"))
}

func TestCreateProfileValidation(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")

	_, err := f.svc.CreateProfile(ctx, model.ProfileRequest{})
	requireClientError(t, err, http.StatusBadRequest)

	_, err = f.svc.CreateProfile(ctx, model.ProfileRequest{Type: "missing"})
	requireClientError(t, err, http.StatusNotFound)

	_, err = f.svc.CreateProfile(ctx, model.ProfileRequest{Type: "customer", Langcode: "not a tag!"})
	requireClientError(t, err, http.StatusBadRequest)

	_, err = f.svc.CreateProfile(ctx, model.ProfileRequest{Type: "customer", Op: "explode"})
	requireClientError(t, err, http.StatusBadRequest)

	_, err = f.svc.CreateProfile(context.Background(), model.ProfileRequest{Type: "customer"})
	requireClientError(t, err, http.StatusUnauthorized)

	// Own permissions do not extend to other users.
	_, err = f.svc.CreateProfile(ctx, model.ProfileRequest{Type: "customer", OwnerId: f.john})
	requireClientError(t, err, http.StatusForbidden)

	_, err = f.svc.CreateProfile(f.admin, model.ProfileRequest{Type: "customer", OwnerId: 4040})
	requireClientError(t, err, http.StatusNotFound)
}

func TestSetDefaultMovesFlag(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	a := f.create(t, ctx, model.ProfileRequest{})
	b := f.create(t, ctx, model.ProfileRequest{})

	response, err := f.svc.SetDefault(ctx, b.Id)
	require.NoError(t, err)
	assert.True(t, response.Profile.IsDefault)
	assert.False(t, response.Messages.HasType(messenger.TypeWarning))
	assert.False(t, f.reload(t, a.Id).IsDefault)
	assert.True(t, f.reload(t, b.Id).IsDefault)

	response, err = f.svc.SetDefault(ctx, b.Id)
	require.NoError(t, err)
	assert.True(t, response.Messages.HasType(messenger.TypeWarning))
}

func TestSaveAndMakeDefault(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	a := f.create(t, ctx, model.ProfileRequest{})
	b := f.create(t, ctx, model.ProfileRequest{Op: constants.FormOpSetDefault})

	assert.True(t, b.IsDefault)
	assert.False(t, f.reload(t, a.Id).IsDefault)

	response, err := f.svc.UpdateProfile(ctx, a.Id, model.ProfileRequest{Op: constants.FormOpSetDefault})
	require.NoError(t, err)
	assert.True(t, response.Profile.IsDefault)
	assert.Equal(t, fmt.Sprintf("Customer profile #%d has been updated.", a.Id), response.Messages[0].Text)
	assert.False(t, f.reload(t, b.Id).IsDefault)
}

func TestSetDefaultRejectsInactiveProfile(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	f.create(t, ctx, model.ProfileRequest{})
	inactive := f.create(t, ctx, model.ProfileRequest{Status: boolPtr(false)})

	_, err := f.svc.SetDefault(ctx, inactive.Id)
	requireClientError(t, err, http.StatusBadRequest)
}

func TestDeactivatingDefaultPromotesAnother(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	a := f.create(t, ctx, model.ProfileRequest{})
	b := f.create(t, ctx, model.ProfileRequest{})
	require.True(t, a.IsDefault)

	response, err := f.svc.UpdateProfile(ctx, a.Id, model.ProfileRequest{Op: constants.FormOpDeactivate})
	require.NoError(t, err)
	assert.False(t, response.Profile.IsDefault)
	assert.False(t, response.Profile.Status)
	assert.Equal(t, fmt.Sprintf("The Customer profile #%d profile has been deactivated.", a.Id), response.Messages[0].Text)
	assert.True(t, f.reload(t, b.Id).IsDefault)
	assert.Equal(t, 1, countDefaults(t, f.jane, "customer"))
}

func TestDeactivatingOnlyProfileLeavesNoDefault(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	a := f.create(t, ctx, model.ProfileRequest{})

	response, err := f.svc.Deactivate(ctx, a.Id)
	require.NoError(t, err)
	assert.False(t, response.Profile.IsDefault)
	assert.Equal(t, 0, countDefaults(t, f.jane, "customer"))

	response, err = f.svc.Activate(ctx, a.Id)
	require.NoError(t, err)
	assert.True(t, response.Profile.IsDefault)

	response, err = f.svc.Activate(ctx, a.Id)
	require.NoError(t, err)
	assert.True(t, response.Messages.HasType(messenger.TypeWarning))
}

func TestPublishIsIdempotent(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	profile := f.create(t, ctx, model.ProfileRequest{})
	before := f.reload(t, profile.Id)

	response, err := f.svc.Publish(ctx, profile.Id, "")
	require.NoError(t, err)
	assert.Equal(t, messenger.Messages{{Type: messenger.TypeWarning,
		Text: fmt.Sprintf("The profile Customer profile #%d is already published.", profile.Id)}}, response.Messages)
	assert.Equal(t, before, f.reload(t, profile.Id))

	response, err = f.svc.Unpublish(ctx, profile.Id, "/api/v1/profiles")
	require.NoError(t, err)
	assert.False(t, response.Profile.Status)
	assert.Equal(t, messenger.TypeStatus, response.Messages[0].Type)
	assert.Equal(t, "/api/v1/profiles", response.Redirect)

	after := f.reload(t, profile.Id)
	response, err = f.svc.Unpublish(ctx, profile.Id, "")
	require.NoError(t, err)
	assert.True(t, response.Messages.HasType(messenger.TypeWarning))
	assert.Equal(t, after, f.reload(t, profile.Id))
	assert.Equal(t, fmt.Sprintf("/api/v1/users/%d/profiles/customer/form", f.jane), response.Redirect)
}

func TestPublishAccessOwnVersusAny(t *testing.T) {
	f := setup(t)
	janes := f.create(t, user(f.jane, "customer"), model.ProfileRequest{})

	_, err := f.svc.Unpublish(user(f.john, "customer"), janes.Id, "")
	requireClientError(t, err, http.StatusForbidden)

	moderator := as(&authn.Principal{UserId: f.john, Permissions: []string{"unpublish any customer profile"}})
	response, err := f.svc.Unpublish(moderator, janes.Id, "")
	require.NoError(t, err)
	assert.False(t, response.Profile.Status)

	_, err = f.svc.Publish(moderator, janes.Id, "")
	requireClientError(t, err, http.StatusForbidden)
}

func TestDeleteUserCascadesProfiles(t *testing.T) {
	f := setup(t)
	janes := f.create(t, user(f.jane, "customer"), model.ProfileRequest{})
	johns := f.create(t, user(f.john, "customer"), model.ProfileRequest{})

	deleted, err := userservice.GetUserService().DeleteUser(f.admin, f.jane)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedProfiles)

	_, err = f.svc.GetProfile(f.admin, janes.Id)
	requireClientError(t, err, http.StatusNotFound)
	other := f.reload(t, johns.Id)
	assert.True(t, other.IsDefault)
	assert.Equal(t, johns.UpdatedAt, other.UpdatedAt)
}

func TestSiblingTypeUntouched(t *testing.T) {
	f := setup(t,
		typemodel.ProfileType{Id: "customer", Label: "Customer", Multiple: true},
		typemodel.ProfileType{Id: "billing", Label: "Billing", Multiple: true})
	ctx := user(f.jane, "customer", "create billing profile", "view own billing profile")

	billing := f.create(t, ctx, model.ProfileRequest{Type: "billing"})
	f.create(t, ctx, model.ProfileRequest{})
	f.create(t, ctx, model.ProfileRequest{Op: constants.FormOpSetDefault})

	stored := f.reload(t, billing.Id)
	assert.True(t, stored.IsDefault)
	assert.Equal(t, billing.UpdatedAt, stored.UpdatedAt)
}

func TestHardDeletePromotesSibling(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	a := f.create(t, ctx, model.ProfileRequest{})
	b := f.create(t, ctx, model.ProfileRequest{})

	require.NoError(t, f.svc.DeleteProfile(ctx, a.Id))
	assert.True(t, f.reload(t, b.Id).IsDefault)

	requireClientError(t, f.svc.DeleteProfile(user(f.john, "customer"), b.Id), http.StatusForbidden)
}

func TestConfirmDeleteDeactivates(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	profile := f.create(t, ctx, model.ProfileRequest{})

	form, err := f.svc.GetConfirmForm(ctx, profile.Id, constants.OperationDelete, "")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Are you sure you want to delete Customer profile #%d?", profile.Id), form.Question)
	assert.Equal(t, "Delete", form.ConfirmText)
	assert.Equal(t, fmt.Sprintf("/api/v1/users/%d", f.jane), form.CancelURL)

	response, err := f.svc.ConfirmDelete(ctx, profile.Id, "")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Customer profile #%d has been deleted.", profile.Id), response.Messages[0].Text)
	stored := f.reload(t, profile.Id)
	assert.False(t, stored.Status)
	assert.False(t, stored.IsDefault)
}

func TestPublishConfirmForm(t *testing.T) {
	f := setup(t, typemodel.ProfileType{Id: "customer", Label: "Customer", Multiple: true, PublishLabel: "Enable"})
	ctx := user(f.jane, "customer")
	profile := f.create(t, ctx, model.ProfileRequest{Status: boolPtr(false)})

	form, err := f.svc.GetConfirmForm(ctx, profile.Id, constants.OperationPublish, "/api/v1/profiles")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Are you sure you want to publish the profile Customer profile #%d?", profile.Id), form.Question)
	assert.Equal(t, "Publish", form.ConfirmText)
	assert.Equal(t, "/api/v1/profiles", form.CancelURL)
	assert.Equal(t, fmt.Sprintf("/api/v1/profiles/%d/publish?destination=%%2Fapi%%2Fv1%%2Fprofiles", profile.Id), form.SubmitURL)
	assert.Empty(t, form.Messages)

	form, err = f.svc.GetConfirmForm(ctx, profile.Id, constants.OperationUnpublish, "")
	require.NoError(t, err)
	assert.Empty(t, form.SubmitURL)
	assert.True(t, form.Messages.HasType(messenger.TypeWarning))
	assert.Equal(t, fmt.Sprintf("/api/v1/users/%d/profiles/customer/form", f.jane), form.CancelURL)

	_, err = f.svc.GetConfirmForm(ctx, profile.Id, "archive", "")
	requireClientError(t, err, http.StatusBadRequest)
}

func TestExecuteAction(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	inactive := f.create(t, ctx, model.ProfileRequest{Status: boolPtr(false)})
	active := f.create(t, ctx, model.ProfileRequest{})
	johns := f.create(t, user(f.john, "customer"), model.ProfileRequest{Status: boolPtr(false)})

	response, err := f.svc.ExecuteAction(ctx, constants.ActionPublishProfile, []int64{inactive.Id, active.Id, johns.Id, 999})
	require.NoError(t, err)
	assert.Equal(t, []model.ActionItemResult{
		{ProfileId: inactive.Id, Outcome: model.OutcomeUpdated},
		{ProfileId: active.Id, Outcome: model.OutcomeUnchanged},
		{ProfileId: johns.Id, Outcome: model.OutcomeDenied},
		{ProfileId: 999, Outcome: model.OutcomeNotFound},
	}, response.Results)
	require.Len(t, response.Messages, 2)
	assert.Equal(t, "Publish was applied to 1 profile(s).", response.Messages[0].Text)
	assert.Equal(t, messenger.Message{Type: messenger.TypeWarning,
		Text: fmt.Sprintf("The profile Customer profile #%d is already published.", active.Id)}, response.Messages[1])
	assert.True(t, f.reload(t, inactive.Id).Status)

	_, err = f.svc.ExecuteAction(ctx, constants.ActionPublishProfile, []int64{johns.Id})
	requireClientError(t, err, http.StatusForbidden)

	_, err = f.svc.ExecuteAction(ctx, constants.ActionPublishProfile, nil)
	requireClientError(t, err, http.StatusBadRequest)

	_, err = f.svc.ExecuteAction(ctx, "profile_archive_action", []int64{active.Id})
	requireClientError(t, err, http.StatusBadRequest)

	tooMany := make([]int64, constants.MaxActionProfiles+1)
	for i := range tooMany {
		tooMany[i] = int64(i + 1)
	}
	_, err = f.svc.ExecuteAction(ctx, constants.ActionPublishProfile, tooMany)
	requireClientError(t, err, http.StatusBadRequest)
}

func TestDeactivateActionNeedsEditAccess(t *testing.T) {
	f := setup(t)
	profile := f.create(t, user(f.jane, "customer"), model.ProfileRequest{})

	noEdit := as(&authn.Principal{UserId: f.john, Permissions: []string{"activate/deactivate any customer profile"}})
	_, err := f.svc.ExecuteAction(noEdit, constants.ActionDeactivateProfile, []int64{profile.Id})
	requireClientError(t, err, http.StatusForbidden)

	withEdit := as(&authn.Principal{UserId: f.john, Permissions: []string{
		"activate/deactivate any customer profile", "edit any customer profile"}})
	response, err := f.svc.ExecuteAction(withEdit, constants.ActionDeactivateProfile, []int64{profile.Id})
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeUpdated, response.Results[0].Outcome)
}

func TestListProfiles(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	first := f.create(t, ctx, model.ProfileRequest{})
	second := f.create(t, ctx, model.ProfileRequest{})
	f.create(t, user(f.john, "customer"), model.ProfileRequest{Status: boolPtr(false)})

	_, err := f.svc.ListProfiles(ctx, model.ListFilter{}, "")
	requireClientError(t, err, http.StatusForbidden)

	list, err := f.svc.ListProfiles(f.admin, model.ListFilter{}, "/api/v1/profiles")
	require.NoError(t, err)
	keys := []string{}
	for _, column := range list.Header {
		keys = append(keys, column.Key)
	}
	assert.Equal(t, []string{"label", "type", "owner", "status", "is_default", "changed", "operations"}, keys)
	require.Len(t, list.Rows, 3)

	row := list.Rows[1]
	assert.Equal(t, second.Id, row.ProfileId)
	assert.Equal(t, "jane", row.Cells["owner"])
	assert.Equal(t, "customer", row.Cells["type"])
	assert.Equal(t, "active", row.Cells["status"])
	assert.Equal(t, "not default", row.Cells["is_default"])
	ops := []string{}
	for _, op := range row.Operations {
		ops = append(ops, op.Key)
	}
	assert.Equal(t, []string{"edit", "set_default", "unpublish", "delete"}, ops)
	assert.Equal(t, fmt.Sprintf("/api/v1/profiles/%d/set-default?destination=%%2Fapi%%2Fv1%%2Fprofiles", second.Id),
		row.Operations[1].URL)
	require.NotNil(t, row.StatusLink)
	assert.Equal(t, "Unpublish", row.StatusLink.Title)
	require.NotNil(t, row.ActivationLink)
	assert.Equal(t, "Deactivate", row.ActivationLink.Title)

	assert.Equal(t, "default", list.Rows[0].Cells["is_default"])
	inactiveOps := []string{}
	for _, op := range list.Rows[2].Operations {
		inactiveOps = append(inactiveOps, op.Key)
	}
	assert.Equal(t, []string{"edit", "publish", "delete"}, inactiveOps)

	page, err := f.svc.ListProfiles(f.admin, model.ListFilter{Limit: 1}, "")
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	info := page.Pagination.(pagination.Pagination)
	assert.Equal(t, pagination.EncodeCursor(first.Id), info.NextCursor)

	filtered, err := f.svc.ListProfiles(f.admin, model.ListFilter{OwnerId: f.john}, "")
	require.NoError(t, err)
	require.Len(t, filtered.Rows, 1)

	empty, err := f.svc.ListProfiles(f.admin, model.ListFilter{Type: "nothing"}, "")
	require.NoError(t, err)
	assert.Equal(t, "There are no profiles yet.", empty.Empty)
}

func TestGetOperations(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	f.create(t, ctx, model.ProfileRequest{})
	second := f.create(t, ctx, model.ProfileRequest{})

	operations, err := f.svc.GetOperations(ctx, second.Id, "")
	require.NoError(t, err)
	weights := map[string]int{}
	for _, op := range operations {
		weights[op.Key] = op.Weight
	}
	assert.Equal(t, map[string]int{"edit": 10, "set_default": 50, "unpublish": 51, "delete": 100}, weights)

	_, err = f.svc.GetOperations(user(f.john, "customer"), second.Id, "")
	requireClientError(t, err, http.StatusForbidden)
}

func TestEditFormActions(t *testing.T) {
	f := setup(t, typemodel.ProfileType{Id: "customer", Label: "Customer", Multiple: true, DeactivateLabel: "Disable"})
	ctx := user(f.jane, "customer")
	first := f.create(t, ctx, model.ProfileRequest{})
	second := f.create(t, ctx, model.ProfileRequest{})

	form, err := f.svc.GetEditForm(ctx, second.Id)
	require.NoError(t, err)
	labels := map[string]string{}
	for _, action := range form.Actions {
		labels[action.Op] = action.Label
	}
	assert.Equal(t, map[string]string{
		"submit": "Save", "set_default": "Save and make default", "deactivate": "Disable", "delete": "Delete",
	}, labels)
	assert.Equal(t, constants.FormOpSubmit, form.Actions[0].Op)

	form, err = f.svc.GetEditForm(ctx, first.Id)
	require.NoError(t, err)
	for _, action := range form.Actions {
		assert.NotEqual(t, constants.FormOpSetDefault, action.Op)
	}

	add, err := f.svc.GetAddForm(ctx, f.jane, "customer")
	require.NoError(t, err)
	assert.True(t, add.IsNew)
	assert.Equal(t, http.MethodPost, add.Actions[0].Method)
	assert.Equal(t, fmt.Sprintf("/api/v1/users/%d/profiles/customer", f.jane), add.Actions[0].URL)
}

func TestSingleProfileTypes(t *testing.T) {
	f := setup(t, typemodel.ProfileType{Id: "main", Label: "Main"})
	ctx := user(f.jane, "main")
	profile := f.create(t, ctx, model.ProfileRequest{Type: "main"})

	_, err := f.svc.CreateProfile(ctx, model.ProfileRequest{Type: "main"})
	requireClientError(t, err, http.StatusConflict)

	form, err := f.svc.GetAddForm(ctx, f.jane, "main")
	require.NoError(t, err)
	assert.False(t, form.IsNew)
	assert.Equal(t, profile.Id, form.Profile.Id)
}

func TestProfileTypeRoles(t *testing.T) {
	f := setup(t, typemodel.ProfileType{Id: "vendor", Label: "Vendor", Multiple: true, Roles: []string{"seller"}})
	_, err := f.svc.CreateProfile(user(f.jane, "vendor"), model.ProfileRequest{Type: "vendor"})
	requireClientError(t, err, http.StatusForbidden)
}

func TestForcedRevisions(t *testing.T) {
	f := setup(t, typemodel.ProfileType{Id: "customer", Label: "Customer", Multiple: true, UseRevisions: true})
	ctx := user(f.jane, "customer")
	profile := f.create(t, ctx, model.ProfileRequest{Data: map[string]interface{}{"city": "Kandy"}})

	_, err := f.svc.UpdateProfile(ctx, profile.Id, model.ProfileRequest{
		Data: map[string]interface{}{"city": "Galle"}, RevisionLog: "moved"})
	require.NoError(t, err)

	revisions, err := f.svc.GetRevisions(ctx, profile.Id)
	require.NoError(t, err)
	require.Len(t, revisions.Revisions, 2)
	assert.Equal(t, "Kandy", revisions.Revisions[0].Data["city"])
	assert.Equal(t, "moved", revisions.Revisions[1].RevisionLog)
	assert.Equal(t, f.jane, revisions.Revisions[1].RevisionUser)
}

func TestUpdateRejectsTypeAndOwnerChanges(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")
	profile := f.create(t, ctx, model.ProfileRequest{})

	_, err := f.svc.UpdateProfile(ctx, profile.Id, model.ProfileRequest{Type: "billing"})
	requireClientError(t, err, http.StatusBadRequest)
	_, err = f.svc.UpdateProfile(f.admin, profile.Id, model.ProfileRequest{OwnerId: f.john})
	requireClientError(t, err, http.StatusBadRequest)
	_, err = f.svc.UpdateProfile(user(f.john, "customer"), profile.Id, model.ProfileRequest{})
	requireClientError(t, err, http.StatusForbidden)
	_, err = f.svc.UpdateProfile(ctx, 999, model.ProfileRequest{})
	requireClientError(t, err, http.StatusNotFound)
}

func TestUpdateStatusNeedsPublishPermission(t *testing.T) {
	f := setup(t)
	profile := f.create(t, user(f.jane, "customer"), model.ProfileRequest{})

	editOnly := as(&authn.Principal{UserId: f.jane, Permissions: []string{
		"view own customer profile", "edit own customer profile"}})
	_, err := f.svc.UpdateProfile(editOnly, profile.Id, model.ProfileRequest{Status: boolPtr(false)})
	requireClientError(t, err, http.StatusForbidden)
	stored := f.reload(t, profile.Id)
	assert.True(t, stored.Status)
	assert.True(t, stored.IsDefault)

	// Field edits and an unchanged status stay within edit access.
	_, err = f.svc.UpdateProfile(editOnly, profile.Id, model.ProfileRequest{
		Status: boolPtr(true), Data: map[string]interface{}{"city": "Galle"}})
	require.NoError(t, err)

	_, err = f.svc.UpdateProfile(user(f.jane, "customer"), profile.Id, model.ProfileRequest{Status: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, f.reload(t, profile.Id).Status)

	_, err = f.svc.UpdateProfile(editOnly, profile.Id, model.ProfileRequest{Status: boolPtr(true)})
	requireClientError(t, err, http.StatusForbidden)
}

func TestLoadDefaultByUser(t *testing.T) {
	f := setup(t)
	ctx := user(f.jane, "customer")

	_, err := f.svc.LoadDefaultByUser(ctx, f.jane, "customer")
	requireClientError(t, err, http.StatusNotFound)
	// Without view access the missing default is not revealed.
	_, err = f.svc.LoadDefaultByUser(user(f.john, "customer"), f.jane, "customer")
	requireClientError(t, err, http.StatusForbidden)

	f.create(t, ctx, model.ProfileRequest{})
	second := f.create(t, ctx, model.ProfileRequest{Op: constants.FormOpSetDefault})
	def, err := f.svc.LoadDefaultByUser(ctx, f.jane, "customer")
	require.NoError(t, err)
	assert.Equal(t, second.Id, def.Id)

	_, err = f.svc.LoadDefaultByUser(user(f.john, "customer"), f.jane, "customer")
	requireClientError(t, err, http.StatusForbidden)
}

// TestDefaultInvariantUnderRandomSaves runs random status and default changes
// and checks that no pair ever ends up with more than one default.
func TestDefaultInvariantUnderRandomSaves(t *testing.T) {
	f := setup(t)
	owners := []int64{f.jane, f.john}
	ids := map[int64][]int64{}
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 120; step++ {
		owner := owners[rng.Intn(len(owners))]
		ctx := user(owner, "customer")
		if len(ids[owner]) == 0 || rng.Intn(5) == 0 {
			profile := f.create(t, ctx, model.ProfileRequest{Status: boolPtr(rng.Intn(3) > 0)})
			ids[owner] = append(ids[owner], profile.Id)
			continue
		}
		id := ids[owner][rng.Intn(len(ids[owner]))]
		var err error
		switch rng.Intn(5) {
		case 0:
			_, err = f.svc.Publish(ctx, id, "")
		case 1:
			_, err = f.svc.Unpublish(ctx, id, "")
		case 2:
			_, err = f.svc.SetDefault(ctx, id)
			if err != nil {
				requireClientError(t, err, http.StatusBadRequest)
				err = nil
			}
		case 3:
			_, err = f.svc.UpdateProfile(ctx, id, model.ProfileRequest{IsDefault: boolPtr(rng.Intn(2) == 0)})
		case 4:
			err = f.svc.DeleteProfile(ctx, id)
			for i, candidate := range ids[owner] {
				if candidate == id {
					ids[owner] = append(ids[owner][:i], ids[owner][i+1:]...)
					break
				}
			}
		}
		require.NoError(t, err)
		for _, o := range owners {
			require.LessOrEqual(t, countDefaults(t, o, "customer"), 1, "step %d", step)
		}
	}
}
