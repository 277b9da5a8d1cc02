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
	"regexp"
	"strings"
	"time"

	"github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	"github.com/wso2/identity-user-profile-service/internal/profile_type/store"
	"github.com/wso2/identity-user-profile-service/internal/system/audit"
	"github.com/wso2/identity-user-profile-service/internal/system/cache"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/errors"
	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

var machineName = regexp.MustCompile(`^[a-z0-9_]{1,32}$`)

var profileTypeCache = cache.NewCache[model.ProfileType]("profile_type",
	constants.ProfileTypeCacheTTLSeconds*time.Second)

// ProfileTypeServiceInterface defines the service interface.
type ProfileTypeServiceInterface interface {
	AddProfileType(ctx context.Context, profileType model.ProfileType) (*model.ProfileType, error)
	UpdateProfileType(ctx context.Context, id string, profileType model.ProfileType) (*model.ProfileType, error)
	GetProfileType(ctx context.Context, id string) (*model.ProfileType, error)
	GetProfileTypes(ctx context.Context) ([]model.ProfileType, error)
	DeleteProfileType(ctx context.Context, id string) error
	ImportProfileTypes(ctx context.Context, profileTypes []model.ProfileType) (created int, updated int, err error)
}

// ProfileTypeService is the default implementation.
type ProfileTypeService struct{}

// GetProfileTypeService returns a new instance.
func GetProfileTypeService() ProfileTypeServiceInterface {
	return &ProfileTypeService{}
}

func (s *ProfileTypeService) AddProfileType(ctx context.Context, profileType model.ProfileType) (*model.ProfileType, error) {

	profileType = normalize(profileType)
	if err := validate(profileType); err != nil {
		return nil, err
	}
	existing, err := store.GetProfileType(profileType.Id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewClientErrorFrom(errors.PROFILE_TYPE_ALREADY_EXISTS,
			fmt.Sprintf("Profile type '%s' already exists.", profileType.Id), http.StatusConflict)
	}
	if err := store.AddProfileType(profileType); err != nil {
		return nil, err
	}
	audit.Record(ctx, log.ActionAddProfileType, log.TargetTypeProfileType, profileType.Id, nil)
	return &profileType, nil
}

func (s *ProfileTypeService) UpdateProfileType(ctx context.Context, id string, profileType model.ProfileType) (*model.ProfileType, error) {

	if profileType.Id != "" && profileType.Id != id {
		return nil, errors.NewClientErrorFrom(errors.PROFILE_TYPE_VALIDATION,
			"The profile type id cannot be changed.", http.StatusBadRequest)
	}
	profileType.Id = id
	profileType = normalize(profileType)
	if err := validate(profileType); err != nil {
		return nil, err
	}
	if _, err := s.GetProfileType(ctx, id); err != nil {
		return nil, err
	}
	if err := store.UpdateProfileType(profileType); err != nil {
		return nil, err
	}
	profileTypeCache.Delete(id)
	audit.Record(ctx, log.ActionUpdateProfileType, log.TargetTypeProfileType, id, nil)
	return &profileType, nil
}

// GetProfileType returns a profile type, served from the process cache when possible.
func (s *ProfileTypeService) GetProfileType(ctx context.Context, id string) (*model.ProfileType, error) {

	if cached, ok := profileTypeCache.Get(id); ok {
		return &cached, nil
	}
	profileType, err := store.GetProfileType(id)
	if err != nil {
		return nil, err
	}
	if profileType == nil {
		return nil, errors.NewClientErrorFrom(errors.PROFILE_TYPE_NOT_FOUND,
			fmt.Sprintf("Profile type '%s' does not exist.", id), http.StatusNotFound)
	}
	profileTypeCache.Set(id, *profileType)
	return profileType, nil
}

func (s *ProfileTypeService) GetProfileTypes(ctx context.Context) ([]model.ProfileType, error) {
	return store.GetProfileTypes()
}

// DeleteProfileType deletes a type that no profile uses.
func (s *ProfileTypeService) DeleteProfileType(ctx context.Context, id string) error {

	if _, err := s.GetProfileType(ctx, id); err != nil {
		return err
	}
	inUse, err := store.CountProfiles(id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return errors.NewClientErrorFrom(errors.PROFILE_TYPE_IN_USE,
			fmt.Sprintf("Profile type '%s' is used by %d profile(s) and cannot be deleted.", id, inUse),
			http.StatusConflict)
	}
	if err := store.DeleteProfileType(id); err != nil {
		return err
	}
	profileTypeCache.Delete(id)
	audit.Record(ctx, log.ActionDeleteProfileType, log.TargetTypeProfileType, id, nil)
	return nil
}

// ImportProfileTypes creates missing types and updates existing ones.
func (s *ProfileTypeService) ImportProfileTypes(ctx context.Context, profileTypes []model.ProfileType) (int, int, error) {

	created, updated := 0, 0
	for _, profileType := range profileTypes {
		profileType = normalize(profileType)
		if err := validate(profileType); err != nil {
			return created, updated, err
		}
		existing, err := store.GetProfileType(profileType.Id)
		if err != nil {
			return created, updated, err
		}
		if existing == nil {
			if _, err := s.AddProfileType(ctx, profileType); err != nil {
				return created, updated, err
			}
			created++
			continue
		}
		if _, err := s.UpdateProfileType(ctx, profileType.Id, profileType); err != nil {
			return created, updated, err
		}
		updated++
	}
	return created, updated, nil
}

func normalize(profileType model.ProfileType) model.ProfileType {
	profileType.Id = strings.TrimSpace(profileType.Id)
	profileType.Label = strings.TrimSpace(profileType.Label)
	profileType.DisplayLabel = strings.TrimSpace(profileType.DisplayLabel)
	if profileType.Roles == nil {
		profileType.Roles = []string{}
	}
	return profileType
}

func validate(profileType model.ProfileType) error {
	if !machineName.MatchString(profileType.Id) {
		return errors.NewClientErrorFrom(errors.PROFILE_TYPE_VALIDATION,
			"The profile type id must be 1-32 lowercase letters, digits or underscores.", http.StatusBadRequest)
	}
	if profileType.Label == "" {
		return errors.NewClientErrorFrom(errors.PROFILE_TYPE_VALIDATION,
			"The profile type label is required.", http.StatusBadRequest)
	}
	return nil
}

// ResetCache drops every cached profile type.
func ResetCache() {
	profileTypeCache.Clear()
}
