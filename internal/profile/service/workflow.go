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

	"github.com/wso2/identity-user-profile-service/internal/profile/model"
	"github.com/wso2/identity-user-profile-service/internal/profile/store"
	typemodel "github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	"github.com/wso2/identity-user-profile-service/internal/system/audit"
	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/authz"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/i18n"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
)

// statusChange describes one way of switching the status of a profile.
type statusChange struct {
	operation string
	active    bool
	already   string
	done      string
	label     string
	auditId   string
}

var (
	publishChange = statusChange{
		operation: constants.OperationPublish,
		active:    true,
		already:   i18n.ProfilePublishAlready,
		done:      i18n.ProfilePublishDone,
		label:     i18n.LabelPublish,
		auditId:   log.ActionPublishProfile,
	}
	unpublishChange = statusChange{
		operation: constants.OperationUnpublish,
		active:    false,
		already:   i18n.ProfileUnpublishAlready,
		done:      i18n.ProfileUnpublishDone,
		label:     i18n.LabelUnpublish,
		auditId:   log.ActionUnpublishProfile,
	}
	activateChange = statusChange{
		operation: constants.OperationActivateDeactivate,
		active:    true,
		already:   i18n.ProfileActivateAlready,
		done:      i18n.ProfileActivated,
		label:     i18n.LabelActivate,
		auditId:   log.ActionActivateProfile,
	}
	deactivateChange = statusChange{
		operation: constants.OperationActivateDeactivate,
		active:    false,
		already:   i18n.ProfileDeactivateAlready,
		done:      i18n.ProfileDeactivated,
		label:     i18n.LabelDeactivate,
		auditId:   log.ActionDeactivateProfile,
	}
)

// actionChanges maps bulk action ids to the change they apply.
var actionChanges = map[string]statusChange{
	constants.ActionPublishProfile:    publishChange,
	constants.ActionUnpublishProfile:  unpublishChange,
	constants.ActionActivateProfile:   activateChange,
	constants.ActionDeactivateProfile: deactivateChange,
}

// allowed reports whether principal may apply the change to profile.
// Activation also needs edit access to the status field, which is edit
// access to the profile.
func (c statusChange) allowed(principal *authn.Principal, profile *model.Profile) bool {
	if !authz.CanAccessProfile(principal, c.operation, profile.Type, profile.OwnerId) {
		return false
	}
	if c.operation == constants.OperationActivateDeactivate {
		return authz.CanAccessProfile(principal, constants.OperationEdit, profile.Type, profile.OwnerId)
	}
	return true
}

func (s *ProfileService) Publish(ctx context.Context, id int64, destination string) (*model.ProfileResponse, error) {
	response, err := s.changeStatus(ctx, id, publishChange)
	if err != nil {
		return nil, err
	}
	response.Redirect = publishRedirect(response.Profile, destination)
	return response, nil
}

func (s *ProfileService) Unpublish(ctx context.Context, id int64, destination string) (*model.ProfileResponse, error) {
	response, err := s.changeStatus(ctx, id, unpublishChange)
	if err != nil {
		return nil, err
	}
	response.Redirect = publishRedirect(response.Profile, destination)
	return response, nil
}

func (s *ProfileService) Activate(ctx context.Context, id int64) (*model.ProfileResponse, error) {
	return s.changeStatus(ctx, id, activateChange)
}

func (s *ProfileService) Deactivate(ctx context.Context, id int64) (*model.ProfileResponse, error) {
	return s.changeStatus(ctx, id, deactivateChange)
}

// changeStatus applies change to one profile. A profile already in the target
// state is left untouched and a warning is returned instead.
func (s *ProfileService) changeStatus(ctx context.Context, id int64, change statusChange) (*model.ProfileResponse, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	profile, profileType, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !change.allowed(principal, profile) {
		return nil, forbidden()
	}

	response := &model.ProfileResponse{Profile: profile, Redirect: ownerRedirect(profile)}
	if profile.Status == change.active {
		response.Messages.Warning(i18n.T(ctx, change.already, profile.Label))
		return response, nil
	}
	saved, err := s.applyChange(ctx, profile, profileType, principal, change)
	if err != nil {
		return nil, err
	}
	response.Profile = saved
	response.Messages.Status(i18n.T(ctx, change.done, saved.Label))
	return response, nil
}

func (s *ProfileService) applyChange(ctx context.Context, profile *model.Profile, profileType *typemodel.ProfileType,
	principal *authn.Principal, change statusChange) (*model.Profile, error) {

	updated := *profile
	updated.Status = change.active
	result, err := s.persist(ctx, updated, profileType, model.SaveOptions{RevisionUser: principal.UserId})
	if err != nil {
		return nil, err
	}
	audit.Record(ctx, change.auditId, log.TargetTypeProfile, idString(profile.Id),
		map[string]interface{}{"is_default": result.Profile.IsDefault, "promoted": result.Promoted})
	return result.Profile, nil
}

// SetDefault marks an active profile as the default of its owner and type.
func (s *ProfileService) SetDefault(ctx context.Context, id int64) (*model.ProfileResponse, error) {

	principal, profile, profileType, err := s.loadWithAccess(ctx, id, constants.OperationEdit)
	if err != nil {
		return nil, err
	}
	response := &model.ProfileResponse{Profile: profile, Redirect: ownerRedirect(profile)}
	if profile.IsDefault {
		response.Messages.Warning(i18n.T(ctx, i18n.ProfileDefaultAlready, profile.Label))
		return response, nil
	}
	if !profile.Status {
		return nil, errors.NewClientError(errors.INACTIVE_PROFILE_DEFAULT, http.StatusBadRequest)
	}

	updated := *profile
	updated.IsDefault = true
	result, err := s.persist(ctx, updated, profileType, model.SaveOptions{RevisionUser: principal.UserId})
	if err != nil {
		return nil, err
	}
	response.Profile = result.Profile
	response.Messages.Status(i18n.T(ctx, i18n.ProfileDefaultDone, result.Profile.Label))
	audit.Record(ctx, log.ActionSetDefaultProfile, log.TargetTypeProfile, idString(profile.Id),
		map[string]interface{}{"cleared": result.Cleared})
	return response, nil
}

// ConfirmDelete handles the delete confirmation: the profile is deactivated
// rather than removed so that references to it stay valid.
func (s *ProfileService) ConfirmDelete(ctx context.Context, id int64, destination string) (*model.ProfileResponse, error) {

	principal, profile, profileType, err := s.loadWithAccess(ctx, id, constants.OperationDelete)
	if err != nil {
		return nil, err
	}
	saved := profile
	if profile.Status {
		updated := *profile
		updated.Status = false
		result, err := s.persist(ctx, updated, profileType, model.SaveOptions{RevisionUser: principal.UserId})
		if err != nil {
			return nil, err
		}
		saved = result.Profile
	}
	redirect := destination
	if redirect == "" {
		redirect = ownerRedirect(saved)
	}
	response := &model.ProfileResponse{Profile: saved, Redirect: redirect}
	response.Messages.Status(i18n.T(ctx, i18n.ProfileDeleted, saved.Label))
	audit.Record(ctx, log.ActionDeleteProfile, log.TargetTypeProfile, idString(saved.Id),
		map[string]interface{}{"deactivated": true})
	return response, nil
}

// ExecuteAction applies a bulk action to the given profiles and reports the
// outcome per profile.
func (s *ProfileService) ExecuteAction(ctx context.Context, actionId string, ids []int64) (*model.ActionResponse, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	change, ok := actionChanges[actionId]
	if !ok {
		return nil, errors.NewClientErrorFrom(errors.INVALID_ACTION,
			fmt.Sprintf("Unknown action '%s'.", actionId), http.StatusBadRequest)
	}
	if len(ids) == 0 {
		return nil, errors.NewClientErrorFrom(errors.BAD_REQUEST, "No profiles selected.", http.StatusBadRequest)
	}
	if len(ids) > constants.MaxActionProfiles {
		return nil, errors.NewClientErrorFrom(errors.BAD_REQUEST,
			fmt.Sprintf("At most %d profiles can be selected.", constants.MaxActionProfiles), http.StatusBadRequest)
	}

	profiles, err := store.GetProfiles(ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[int64]*model.Profile, len(profiles))
	for i := range profiles {
		byId[profiles[i].Id] = &profiles[i]
	}

	response := &model.ActionResponse{Action: actionId, Results: make([]model.ActionItemResult, 0, len(ids))}
	denied, changed := 0, 0
	var unchanged []*model.Profile
	for _, id := range ids {
		profile, found := byId[id]
		switch {
		case !found:
			response.Results = append(response.Results, model.ActionItemResult{ProfileId: id, Outcome: model.OutcomeNotFound})
			continue
		case !change.allowed(principal, profile):
			denied++
			response.Results = append(response.Results, model.ActionItemResult{ProfileId: id, Outcome: model.OutcomeDenied})
			continue
		case profile.Status == change.active:
			unchanged = append(unchanged, profile)
			response.Results = append(response.Results, model.ActionItemResult{ProfileId: id, Outcome: model.OutcomeUnchanged})
			continue
		}
		profileType, err := s.profileTypes.GetProfileType(ctx, profile.Type)
		if err != nil {
			return nil, err
		}
		// Earlier items may have moved the default flag; act on the stored row.
		current, err := store.GetProfile(id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			response.Results = append(response.Results, model.ActionItemResult{ProfileId: id, Outcome: model.OutcomeNotFound})
			continue
		}
		if _, err := s.applyChange(ctx, current, profileType, principal, change); err != nil {
			return nil, err
		}
		profile.Status = change.active
		changed++
		response.Results = append(response.Results, model.ActionItemResult{ProfileId: id, Outcome: model.OutcomeUpdated})
	}

	if denied == len(ids) {
		return nil, forbidden()
	}
	if changed == 0 {
		response.Messages.Warning(i18n.T(ctx, i18n.ProfileActionNone))
	} else {
		response.Messages.Status(i18n.T(ctx, i18n.ProfileActionDone, i18n.T(ctx, change.label), changed))
	}
	for _, profile := range unchanged {
		profileType, err := s.profileTypes.GetProfileType(ctx, profile.Type)
		if err != nil {
			return nil, err
		}
		response.Messages.Warning(i18n.T(ctx, change.already, label(ctx, profile, profileType)))
	}
	return response, nil
}

// publishRedirect is the destination when given, else the owner's profile form.
func publishRedirect(profile *model.Profile, destination string) string {
	if destination != "" {
		return destination
	}
	url, err := routing.URL(routing.UserProfileForm, routing.Params{
		"user":         idString(profile.OwnerId),
		"profile_type": profile.Type,
	}, nil)
	if err != nil {
		return ownerRedirect(profile)
	}
	return url
}
