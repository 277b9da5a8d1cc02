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
	"fmt"

	"github.com/wso2/identity-user-profile-service/internal/health_check/model"
	"github.com/wso2/identity-user-profile-service/internal/system/database/provider"
	"github.com/wso2/identity-user-profile-service/internal/system/database/scripts"
	"github.com/wso2/identity-user-profile-service/internal/system/utils"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() (*model.Readiness, error)
}

// HealthCheckService is the default implementation.
type HealthCheckService struct{}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{}
}

// CheckReadiness probes the profile tables through the shared pool. A missing
// schema fails the probe the same way a lost connection does.
func (h HealthCheckService) CheckReadiness() (*model.Readiness, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	dialect := dbClient.Dialect()
	rows, err := dbClient.ExecuteQuery(scripts.SchemaProbe[dialect])
	if err != nil {
		return nil, fmt.Errorf("profile schema check failed: %w", err)
	}
	readiness := &model.Readiness{Status: model.StatusReady, Dialect: dialect}
	if len(rows) == 1 {
		readiness.ProfileTypes = utils.AsInt64(rows[0]["profile_types"])
		readiness.Profiles = utils.AsInt64(rows[0]["profiles"])
	}
	return readiness, nil
}
