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
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/wso2/identity-user-profile-service/internal/profile/model"
	"github.com/wso2/identity-user-profile-service/internal/profile/store"
	typemodel "github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	typeservice "github.com/wso2/identity-user-profile-service/internal/profile_type/service"
	"github.com/wso2/identity-user-profile-service/internal/system/audit"
	"github.com/wso2/identity-user-profile-service/internal/system/authn"
	"github.com/wso2/identity-user-profile-service/internal/system/authz"
	"github.com/wso2/identity-user-profile-service/internal/system/config"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	sysContext "github.com/wso2/identity-user-profile-service/internal/system/context"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/i18n"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
	"github.com/wso2/identity-user-profile-service/internal/system/routing"
	userstore "github.com/wso2/identity-user-profile-service/internal/user/store"
)

// ProfileServiceInterface defines the service interface.
type ProfileServiceInterface interface {
	CreateProfile(ctx context.Context, request model.ProfileRequest) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, id int64, request model.ProfileRequest) (*model.ProfileResponse, error)
	GetProfile(ctx context.Context, id int64) (*model.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
	LoadDefaultByUser(ctx context.Context, uid int64, profileType string) (*model.Profile, error)
	GetRevisions(ctx context.Context, id int64) (*model.RevisionListResponse, error)

	Publish(ctx context.Context, id int64, destination string) (*model.ProfileResponse, error)
	Unpublish(ctx context.Context, id int64, destination string) (*model.ProfileResponse, error)
	Activate(ctx context.Context, id int64) (*model.ProfileResponse, error)
	Deactivate(ctx context.Context, id int64) (*model.ProfileResponse, error)
	SetDefault(ctx context.Context, id int64) (*model.ProfileResponse, error)
	ConfirmDelete(ctx context.Context, id int64, destination string) (*model.ProfileResponse, error)
	ExecuteAction(ctx context.Context, actionId string, ids []int64) (*model.ActionResponse, error)

	ListProfiles(ctx context.Context, filter model.ListFilter, destination string) (*model.ListResponse, error)
	GetOperations(ctx context.Context, id int64, destination string) ([]model.Operation, error)
	GetEditForm(ctx context.Context, id int64) (*model.ProfileForm, error)
	GetAddForm(ctx context.Context, uid int64, profileType string) (*model.ProfileForm, error)
	GetConfirmForm(ctx context.Context, id int64, kind string, destination string) (*model.ConfirmForm, error)
}

// ProfileService is the default implementation.
type ProfileService struct {
	profileTypes typeservice.ProfileTypeServiceInterface
}

// GetProfileService returns a new instance.
func GetProfileService() ProfileServiceInterface {
	return &ProfileService{profileTypes: typeservice.GetProfileTypeService()}
}

func (s *ProfileService) CreateProfile(ctx context.Context, request model.ProfileRequest) (*model.ProfileResponse, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	request.Type = strings.TrimSpace(request.Type)
	if request.Type == "" {
		return nil, errors.NewClientErrorFrom(errors.PROFILE_VALIDATION, "Profile type is required.", http.StatusBadRequest)
	}
	profileType, err := s.profileTypes.GetProfileType(ctx, request.Type)
	if err != nil {
		return nil, err
	}
	if request.OwnerId == 0 {
		request.OwnerId = principal.UserId
	}
	if err := s.checkCreateAccess(ctx, principal, profileType, request.OwnerId); err != nil {
		return nil, err
	}

	profile := model.Profile{
		Type:     profileType.Id,
		OwnerId:  request.OwnerId,
		Status:   true,
		Langcode: config.GetProfileRuntime().Config.Language.DefaultLangcode,
		Data:     map[string]interface{}{},
	}
	if err := applyRequest(&profile, request); err != nil {
		return nil, err
	}
	op, err := formOp(request.Op)
	if err != nil {
		return nil, err
	}
	applyOp(&profile, op)

	result, err := s.save(ctx, profile, profileType, principal, request)
	if err != nil {
		return nil, err
	}
	saved := result.Profile

	response := &model.ProfileResponse{Profile: saved, Redirect: ownerRedirect(saved)}
	response.Messages.Status(i18n.T(ctx, i18n.ProfileCreated, saved.Label))
	audit.Record(ctx, log.ActionAddProfile, log.TargetTypeProfile, idString(saved.Id),
		map[string]interface{}{"type": saved.Type, "uid": saved.OwnerId, "is_default": saved.IsDefault})
	return response, nil
}

// checkCreateAccess allows creating a profile of profileType for ownerId.
// Creating profiles for another user needs administrative access as well.
func (s *ProfileService) checkCreateAccess(ctx context.Context, principal *authn.Principal,
	profileType *typemodel.ProfileType, ownerId int64) error {

	if !authz.CanAccessProfile(principal, constants.OperationCreate, profileType.Id, ownerId) {
		return forbidden()
	}
	if ownerId != principal.UserId && !authz.CanAccessCollection(principal) {
		return forbidden()
	}
	owner, err := userstore.GetUser(ownerId)
	if err != nil {
		return err
	}
	if owner == nil {
		return errors.NewClientErrorFrom(errors.USER_NOT_FOUND,
			fmt.Sprintf("No user found with uid %d.", ownerId), http.StatusNotFound)
	}
	if !profileType.AllowsRoles(owner.Roles) {
		return errors.NewClientErrorFrom(errors.ROLE_NOT_ALLOWED,
			fmt.Sprintf("User %d may not own %s profiles.", ownerId, profileType.Id), http.StatusForbidden)
	}
	if !profileType.Multiple {
		count, err := store.CountProfilesByOwnerAndType(ownerId, profileType.Id)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.NewClientErrorFrom(errors.PROFILE_LIMIT_REACHED,
				fmt.Sprintf("User %d already has a %s profile.", ownerId, profileType.Id), http.StatusConflict)
		}
	}
	return nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id int64, request model.ProfileRequest) (*model.ProfileResponse, error) {

	principal, profile, profileType, err := s.loadWithAccess(ctx, id, constants.OperationEdit)
	if err != nil {
		return nil, err
	}
	if request.Type != "" && request.Type != profile.Type {
		return nil, errors.NewClientErrorFrom(errors.PROFILE_VALIDATION,
			"The profile type cannot be changed.", http.StatusBadRequest)
	}
	if request.OwnerId != 0 && request.OwnerId != profile.OwnerId {
		return nil, errors.NewClientErrorFrom(errors.PROFILE_VALIDATION,
			"The profile owner cannot be changed.", http.StatusBadRequest)
	}
	op, err := formOp(request.Op)
	if err != nil {
		return nil, err
	}
	if op == constants.FormOpActivate || op == constants.FormOpDeactivate {
		if !authz.CanAccessProfile(principal, constants.OperationActivateDeactivate, profile.Type, profile.OwnerId) {
			return nil, forbidden()
		}
	}

	updated := *profile
	if err := applyRequest(&updated, request); err != nil {
		return nil, err
	}
	applyOp(&updated, op)
	if !statusChangeAllowed(principal, profile, updated.Status, op) {
		return nil, forbidden()
	}

	result, err := s.save(ctx, updated, profileType, principal, request)
	if err != nil {
		return nil, err
	}
	saved := result.Profile

	response := &model.ProfileResponse{Profile: saved, Redirect: ownerRedirect(saved)}
	switch op {
	case constants.FormOpActivate:
		response.Messages.Status(i18n.T(ctx, i18n.ProfileActivated, saved.Label))
		audit.Record(ctx, log.ActionActivateProfile, log.TargetTypeProfile, idString(saved.Id), nil)
	case constants.FormOpDeactivate:
		response.Messages.Status(i18n.T(ctx, i18n.ProfileDeactivated, saved.Label))
		audit.Record(ctx, log.ActionDeactivateProfile, log.TargetTypeProfile, idString(saved.Id), nil)
	default:
		response.Messages.Status(i18n.T(ctx, i18n.ProfileUpdated, saved.Label))
		audit.Record(ctx, log.ActionUpdateProfile, log.TargetTypeProfile, idString(saved.Id),
			map[string]interface{}{"is_default": saved.IsDefault, "status": saved.Status})
	}
	return response, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {

	_, profile, _, err := s.loadWithAccess(ctx, id, constants.OperationView)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes the profile and its revisions permanently.
func (s *ProfileService) DeleteProfile(ctx context.Context, id int64) error {

	_, profile, _, err := s.loadWithAccess(ctx, id, constants.OperationDelete)
	if err != nil {
		return err
	}
	promoted, err := store.DeleteProfile(profile.Id)
	if err != nil {
		return err
	}
	data := map[string]interface{}{"type": profile.Type, "uid": profile.OwnerId}
	if promoted != 0 {
		data["promoted"] = promoted
	}
	audit.Record(ctx, log.ActionDeleteProfile, log.TargetTypeProfile, idString(profile.Id), data)
	return nil
}

func (s *ProfileService) LoadDefaultByUser(ctx context.Context, uid int64, profileType string) (*model.Profile, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	bundle, err := s.profileTypes.GetProfileType(ctx, profileType)
	if err != nil {
		return nil, err
	}
	// Access depends only on the owner and the bundle, so it is decided before
	// the lookup and a denied caller learns nothing about the default.
	if !authz.CanAccessProfile(principal, constants.OperationView, bundle.Id, uid) {
		return nil, forbidden()
	}
	profile, err := store.LoadDefaultByUser(uid, bundle.Id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewClientErrorFrom(errors.PROFILE_NOT_FOUND,
			fmt.Sprintf("User %d has no default %s profile.", uid, bundle.Id), http.StatusNotFound)
	}
	profile.Label = label(ctx, profile, bundle)
	return profile, nil
}

func (s *ProfileService) GetRevisions(ctx context.Context, id int64) (*model.RevisionListResponse, error) {

	_, profile, _, err := s.loadWithAccess(ctx, id, constants.OperationView)
	if err != nil {
		return nil, err
	}
	revisions, err := store.GetRevisions(profile.Id)
	if err != nil {
		return nil, err
	}
	return &model.RevisionListResponse{ProfileId: profile.Id, Revisions: revisions}, nil
}

// save writes profile. New revisions are forced when the type asks for them.
func (s *ProfileService) save(ctx context.Context, profile model.Profile, profileType *typemodel.ProfileType,
	principal *authn.Principal, request model.ProfileRequest) (*model.SaveResult, error) {

	options := model.SaveOptions{
		NewRevision:  request.NewRevision || profileType.UseRevisions,
		RevisionLog:  strings.TrimSpace(request.RevisionLog),
		RevisionUser: principal.UserId,
	}
	return s.persist(ctx, profile, profileType, options)
}

func (s *ProfileService) persist(ctx context.Context, profile model.Profile, profileType *typemodel.ProfileType,
	options model.SaveOptions) (*model.SaveResult, error) {

	result, err := store.SaveProfile(profile, options)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, notFound(profile.Id)
	}
	result.Profile.Label = label(ctx, result.Profile, profileType)
	logger := log.FromContext(ctx)
	if len(result.Cleared) > 0 || result.Promoted != 0 {
		logger.Debug("Default profile reassigned",
			log.Int64("profile", result.Profile.Id), log.Any("cleared", result.Cleared),
			log.Int64("promoted", result.Promoted))
	}
	return result, nil
}

// loadWithAccess loads a profile and its type and checks operation for the
// principal of ctx.
func (s *ProfileService) loadWithAccess(ctx context.Context, id int64,
	operation string) (*authn.Principal, *model.Profile, *typemodel.ProfileType, error) {

	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	profile, profileType, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if !authz.CanAccessProfile(principal, operation, profile.Type, profile.OwnerId) {
		return nil, nil, nil, forbidden()
	}
	return principal, profile, profileType, nil
}

func (s *ProfileService) load(ctx context.Context, id int64) (*model.Profile, *typemodel.ProfileType, error) {

	profile, err := store.GetProfile(id)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, notFound(id)
	}
	profileType, err := s.profileTypes.GetProfileType(ctx, profile.Type)
	if err != nil {
		return nil, nil, err
	}
	profile.Label = label(ctx, profile, profileType)
	return profile, profileType, nil
}

// statusChangeAllowed guards status edits made through a plain save. The
// activate and deactivate ops are checked against their own permission.
func statusChangeAllowed(principal *authn.Principal, profile *model.Profile, status bool, op string) bool {
	if status == profile.Status || op == constants.FormOpActivate || op == constants.FormOpDeactivate {
		return true
	}
	if status {
		return publishChange.allowed(principal, profile)
	}
	return unpublishChange.allowed(principal, profile)
}

// applyRequest copies the writable fields of request onto profile.
func applyRequest(profile *model.Profile, request model.ProfileRequest) error {

	if request.Data != nil {
		profile.Data = request.Data
	}
	if request.Status != nil {
		profile.Status = *request.Status
	}
	if request.IsDefault != nil {
		profile.IsDefault = *request.IsDefault
	}
	if langcode := strings.TrimSpace(request.Langcode); langcode != "" {
		if err := validateLangcode(langcode); err != nil {
			return err
		}
		profile.Langcode = langcode
	}
	return nil
}

func validateLangcode(langcode string) error {
	if langcode == constants.LangcodeNotSpecified || langcode == constants.LangcodeNotApplicable {
		return nil
	}
	if _, err := language.Parse(langcode); err != nil {
		return errors.NewClientErrorFrom(errors.PROFILE_VALIDATION,
			fmt.Sprintf("'%s' is not a valid language code.", langcode), http.StatusBadRequest)
	}
	return nil
}

func formOp(op string) (string, error) {
	switch op {
	case "":
		return constants.FormOpSubmit, nil
	case constants.FormOpSubmit, constants.FormOpSetDefault, constants.FormOpActivate, constants.FormOpDeactivate:
		return op, nil
	}
	return "", errors.NewClientErrorFrom(errors.INVALID_ACTION,
		fmt.Sprintf("Unknown form operation '%s'.", op), http.StatusBadRequest)
}

func applyOp(profile *model.Profile, op string) {
	switch op {
	case constants.FormOpSetDefault:
		profile.IsDefault = true
	case constants.FormOpActivate:
		profile.Status = true
	case constants.FormOpDeactivate:
		profile.Status = false
	}
}

func label(ctx context.Context, profile *model.Profile, profileType *typemodel.ProfileType) string {
	return i18n.T(ctx, i18n.ProfileLabel, profileType.Label, profile.Id)
}

// ownerRedirect is the owner's page, or the collection for ownerless profiles.
func ownerRedirect(profile *model.Profile) string {
	if profile.OwnerId != 0 {
		if url, err := routing.URL(routing.UserCanonical, routing.Params{"user": idString(profile.OwnerId)}, nil); err == nil {
			return url
		}
	}
	url, _ := routing.URL(routing.ProfileCollection, nil, nil)
	return url
}

func requirePrincipal(ctx context.Context) (*authn.Principal, error) {
	principal := sysContext.GetPrincipal(ctx)
	if principal == nil {
		return nil, errors.NewClientError(errors.UN_AUTHORIZED, http.StatusUnauthorized)
	}
	return principal, nil
}

func forbidden() error {
	return errors.NewClientError(errors.FORBIDDEN, http.StatusForbidden)
}

func notFound(id int64) error {
	return errors.NewClientErrorFrom(errors.PROFILE_NOT_FOUND,
		fmt.Sprintf("No profile found with id %d.", id), http.StatusNotFound)
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
