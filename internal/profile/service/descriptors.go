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
	"net/http"
	"sort"
	"time"

	"github.com/wso2/identity-user-profile-service/internal/profile/model"
	"github.com/wso2/identity-user-profile-service/internal/profile/store"
	typemodel "github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/authz"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/i18n"
	"github.com/wso2/identity-user-profile-service/internal/system/pagination"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
	userstore "github.com/wso2/identity-user-profile-service/internal/user/store"
)

// Operation weights.
const (
	weightEdit       = 10
	weightSetDefault = 50
	weightStatus     = 51
	weightDelete     = 100
)

// Form action weights.
const (
	weightSubmitAction = 5
	weightExtraAction  = 10
)

// ListProfiles builds the administrative profile list. destination is put on
// every row operation so that it leads back to the list.
func (s *ProfileService) ListProfiles(ctx context.Context, filter model.ListFilter,
	destination string) (*model.ListResponse, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessCollection(principal) {
		return nil, forbidden()
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	filter.Limit = limit + 1
	profiles, err := store.ListProfiles(filter)
	if err != nil {
		return nil, err
	}
	hasMore := len(profiles) > limit
	if hasMore {
		profiles = profiles[:limit]
	}

	multilingual := config.GetProfileRuntime().Config.Language.Multilingual
	response := &model.ListResponse{Header: listHeader(ctx, multilingual), Rows: make([]model.ListRow, 0, len(profiles))}
	owners := map[int64]string{}
	for i := range profiles {
		profile := &profiles[i]
		profileType, err := s.profileTypes.GetProfileType(ctx, profile.Type)
		if err != nil {
			return nil, err
		}
		profile.Label = label(ctx, profile, profileType)
		owner, err := ownerName(owners, profile.OwnerId)
		if err != nil {
			return nil, err
		}
		response.Rows = append(response.Rows,
			buildRow(ctx, principal, profile, profileType, owner, multilingual, destination))
	}
	if len(response.Rows) == 0 {
		response.Empty = i18n.T(ctx, i18n.ListEmpty)
	}
	var lastId int64
	if len(profiles) > 0 {
		lastId = profiles[len(profiles)-1].Id
	}
	response.Pagination = pagination.Build(len(profiles), limit, lastId, hasMore)
	return response, nil
}

func listHeader(ctx context.Context, multilingual bool) []model.ListColumn {
	header := []model.ListColumn{
		{Key: "label", Label: i18n.T(ctx, i18n.ListLabel)},
		{Key: "type", Label: i18n.T(ctx, i18n.ListType)},
		{Key: "owner", Label: i18n.T(ctx, i18n.ListOwner)},
		{Key: "status", Label: i18n.T(ctx, i18n.ListStatus)},
		{Key: "is_default", Label: i18n.T(ctx, i18n.ListDefault)},
		{Key: "changed", Label: i18n.T(ctx, i18n.ListChanged)},
	}
	if multilingual {
		header = append(header, model.ListColumn{Key: "language_name", Label: i18n.T(ctx, i18n.ListLanguage)})
	}
	return append(header, model.ListColumn{Key: "operations", Label: i18n.T(ctx, i18n.ListOperations)})
}

func buildRow(ctx context.Context, principal *authn.Principal, profile *model.Profile,
	profileType *typemodel.ProfileType, ownerName string, multilingual bool, destination string) model.ListRow {

	status := i18n.T(ctx, i18n.ListInactive)
	if profile.Status {
		status = i18n.T(ctx, i18n.ListActive)
	}
	isDefault := i18n.T(ctx, i18n.ListNotDefault)
	if profile.IsDefault {
		isDefault = i18n.T(ctx, i18n.ListIsDefault)
	}
	cells := map[string]string{
		"label":      profile.Label,
		"type":       profile.Type,
		"owner":      ownerName,
		"status":     status,
		"is_default": isDefault,
		"changed":    time.Unix(profile.UpdatedAt, 0).UTC().Format(constants.ShortDateFormat),
	}
	if multilingual {
		cells["language_name"] = i18n.LanguageName(ctx, profile.Langcode)
	}

	row := model.ListRow{
		ProfileId:  profile.Id,
		URL:        profileURL(routing.ProfileCanonical, profile.Id, ""),
		Cells:      cells,
		Operations: buildOperations(ctx, principal, profile, profileType, destination),
	}
	row.StatusLink = statusLink(principal, profile, profileType)
	row.ActivationLink = activationLink(principal, profile, profileType)
	return row
}

// statusLink points at the publish or unpublish form, whichever applies.
func statusLink(principal *authn.Principal, profile *model.Profile, profileType *typemodel.ProfileType) *model.Link {
	if profile.Status {
		if !unpublishChange.allowed(principal, profile) {
			return nil
		}
		return &model.Link{Title: profileType.GetUnpublishLabel(), URL: profileURL(routing.ProfileUnpublish, profile.Id, "")}
	}
	if !publishChange.allowed(principal, profile) {
		return nil
	}
	return &model.Link{Title: profileType.GetPublishLabel(), URL: profileURL(routing.ProfilePublish, profile.Id, "")}
}

// activationLink points at the activate or deactivate route, whichever applies.
func activationLink(principal *authn.Principal, profile *model.Profile, profileType *typemodel.ProfileType) *model.Link {
	if !activateChange.allowed(principal, profile) {
		return nil
	}
	if profile.Status {
		return &model.Link{Title: profileType.GetDeactivateLabel(), URL: profileURL(routing.ProfileDeactivate, profile.Id, "")}
	}
	return &model.Link{Title: profileType.GetActivateLabel(), URL: profileURL(routing.ProfileActivate, profile.Id, "")}
}

func (s *ProfileService) GetOperations(ctx context.Context, id int64, destination string) ([]model.Operation, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	profile, profileType, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	operations := buildOperations(ctx, principal, profile, profileType, destination)
	if len(operations) == 0 && !authz.CanAccessProfile(principal, constants.OperationView, profile.Type, profile.OwnerId) {
		return nil, forbidden()
	}
	return operations, nil
}

// buildOperations returns the operations the principal may run on profile,
// ordered by weight.
func buildOperations(ctx context.Context, principal *authn.Principal, profile *model.Profile,
	profileType *typemodel.ProfileType, destination string) []model.Operation {

	canEdit := authz.CanAccessProfile(principal, constants.OperationEdit, profile.Type, profile.OwnerId)
	operations := []model.Operation{}
	if canEdit {
		operations = append(operations, model.Operation{Key: "edit", Title: i18n.T(ctx, i18n.OpEdit),
			Weight: weightEdit, URL: profileURL(routing.ProfileEditForm, profile.Id, destination)})
	}
	if authz.CanAccessProfile(principal, constants.OperationDelete, profile.Type, profile.OwnerId) {
		operations = append(operations, model.Operation{Key: "delete", Title: i18n.T(ctx, i18n.OpDelete),
			Weight: weightDelete, URL: profileURL(routing.ProfileDeleteForm, profile.Id, destination)})
	}
	if profile.Status {
		if !profile.IsDefault && canEdit {
			operations = append(operations, model.Operation{Key: "set_default", Title: i18n.T(ctx, i18n.OpSetDefault),
				Weight: weightSetDefault, URL: profileURL(routing.ProfileSetDefault, profile.Id, destination)})
		}
		if unpublishChange.allowed(principal, profile) {
			operations = append(operations, model.Operation{Key: "unpublish", Title: profileType.GetUnpublishLabel(),
				Weight: weightStatus, URL: profileURL(routing.ProfileUnpublish, profile.Id, destination)})
		}
	} else if publishChange.allowed(principal, profile) {
		operations = append(operations, model.Operation{Key: "publish", Title: profileType.GetPublishLabel(),
			Weight: weightStatus, URL: profileURL(routing.ProfilePublish, profile.Id, destination)})
	}
	sort.SliceStable(operations, func(i, j int) bool { return operations[i].Weight < operations[j].Weight })
	return operations
}

func (s *ProfileService) GetEditForm(ctx context.Context, id int64) (*model.ProfileForm, error) {

	principal, profile, profileType, err := s.loadWithAccess(ctx, id, constants.OperationEdit)
	if err != nil {
		return nil, err
	}
	return buildForm(ctx, principal, profile, profileType), nil
}

// GetAddForm returns the form adding a profile of profileType for uid. Types
// that allow a single profile per user edit the existing one instead.
func (s *ProfileService) GetAddForm(ctx context.Context, uid int64, profileType string) (*model.ProfileForm, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	bundle, err := s.profileTypes.GetProfileType(ctx, profileType)
	if err != nil {
		return nil, err
	}
	if !bundle.Multiple {
		existing, err := store.GetProfilesByOwnerAndType(uid, bundle.Id)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return s.GetEditForm(ctx, existing[0].Id)
		}
	}
	if err := s.checkCreateAccess(ctx, principal, bundle, uid); err != nil {
		return nil, err
	}
	profile := &model.Profile{
		Type:     bundle.Id,
		OwnerId:  uid,
		Status:   true,
		Langcode: config.GetProfileRuntime().Config.Language.DefaultLangcode,
		Data:     map[string]interface{}{},
	}
	return buildForm(ctx, principal, profile, bundle), nil
}

func buildForm(ctx context.Context, principal *authn.Principal, profile *model.Profile,
	profileType *typemodel.ProfileType) *model.ProfileForm {

	method, submitURL := http.MethodPut, profileURL(routing.ProfileCanonical, profile.Id, "")
	if profile.IsNew() {
		method = http.MethodPost
		submitURL, _ = routing.URL(routing.UserProfiles, routing.Params{
			"user":         idString(profile.OwnerId),
			"profile_type": profile.Type,
		}, nil)
	}

	actions := []model.FormAction{{Op: constants.FormOpSubmit, Label: i18n.T(ctx, i18n.FormSave),
		Weight: weightSubmitAction, Method: method, URL: submitURL}}
	if profileType.Multiple && !profile.IsDefault {
		actions = append(actions, model.FormAction{Op: constants.FormOpSetDefault, Label: i18n.T(ctx, i18n.FormSaveDefault),
			Weight: weightExtraAction, Method: method, URL: submitURL})
	}
	if !profile.IsNew() {
		if authz.CanAccessProfile(principal, constants.OperationActivateDeactivate, profile.Type, profile.OwnerId) {
			if profile.Status {
				actions = append(actions, model.FormAction{Op: constants.FormOpDeactivate, Label: profileType.GetDeactivateLabel(),
					Weight: weightExtraAction, Method: method, URL: submitURL})
			} else {
				actions = append(actions, model.FormAction{Op: constants.FormOpActivate, Label: profileType.GetActivateLabel(),
					Weight: weightExtraAction, Method: method, URL: submitURL})
			}
		}
		if authz.CanAccessProfile(principal, constants.OperationDelete, profile.Type, profile.OwnerId) {
			actions = append(actions, model.FormAction{Op: constants.FormOpDelete, Label: i18n.T(ctx, i18n.FormDelete),
				Weight: weightExtraAction, Method: http.MethodGet, URL: profileURL(routing.ProfileDeleteForm, profile.Id, "")})
		}
	}
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].Weight < actions[j].Weight })

	return &model.ProfileForm{Profile: profile, Type: profileType.Id, IsNew: profile.IsNew(), Actions: actions}
}

// GetConfirmForm describes the publish, unpublish or delete confirmation of a profile.
func (s *ProfileService) GetConfirmForm(ctx context.Context, id int64, kind string,
	destination string) (*model.ConfirmForm, error) {

	var (
		change      *statusChange
		question    string
		confirm     string
		submitRoute string
	)
	switch kind {
	case constants.OperationPublish:
		change, question, confirm, submitRoute = &publishChange, i18n.ProfilePublishQuestion, i18n.LabelPublish, routing.ProfilePublish
	case constants.OperationUnpublish:
		change, question, confirm, submitRoute = &unpublishChange, i18n.ProfileUnpublishQuestion, i18n.LabelUnpublish, routing.ProfileUnpublish
	case constants.OperationDelete:
		question, confirm, submitRoute = i18n.ProfileDeleteQuestion, i18n.FormDelete, routing.ProfileDeleteForm
	default:
		return nil, errors.NewClientErrorFrom(errors.INVALID_ACTION,
			fmt.Sprintf("Unknown confirmation '%s'.", kind), http.StatusBadRequest)
	}

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	profile, _, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if change != nil && !change.allowed(principal, profile) {
		return nil, forbidden()
	}
	if change == nil && !authz.CanAccessProfile(principal, constants.OperationDelete, profile.Type, profile.OwnerId) {
		return nil, forbidden()
	}

	form := &model.ConfirmForm{
		ProfileId:   profile.Id,
		Question:    i18n.T(ctx, question, profile.Label),
		ConfirmText: i18n.T(ctx, confirm),
		CancelText:  i18n.T(ctx, i18n.FormCancel),
		CancelURL:   destination,
		SubmitURL:   profileURL(submitRoute, profile.Id, destination),
	}
	if form.CancelURL == "" {
		if change != nil {
			form.CancelURL = publishRedirect(profile, "")
		} else {
			form.CancelURL = ownerRedirect(profile)
		}
	}
	if change != nil && profile.Status == change.active {
		form.SubmitURL = ""
		form.Messages.Warning(i18n.T(ctx, change.already, profile.Label))
	}
	return form, nil
}

func ownerName(owners map[int64]string, uid int64) (string, error) {
	if name, ok := owners[uid]; ok {
		return name, nil
	}
	user, err := userstore.GetUser(uid)
	if err != nil {
		return "", err
	}
	name := idString(uid)
	if user != nil {
		name = user.Name
	}
	owners[uid] = name
	return name, nil
}

func profileURL(route string, id int64, destination string) string {
	url, _ := routing.URL(route, routing.Params{"profile": idString(id)}, routing.WithDestination(destination))
	return url
}
