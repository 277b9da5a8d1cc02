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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-user-profile-service/internal/health_check/model"
	typemodel "github.com/wso2/identity-user-profile-service/internal/profile_type/model"
	typestore "github.com/wso2/identity-user-profile-service/internal/profile_type/store"
	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"github.com/wso2/identity-user-profile-service/internal/system/database/dbtest"
)

func TestCheckReadiness(t *testing.T) {
	dbtest.Setup(t)
	require.NoError(t, typestore.AddProfileType(typemodel.ProfileType{Id: "customer", Label: "Customer"}))

	readiness, err := GetHealthCheckService().CheckReadiness()
	require.NoError(t, err)
	assert.Equal(t, model.StatusReady, readiness.Status)
	assert.Equal(t, constants.DialectSQLite, readiness.Dialect)
	assert.Equal(t, int64(1), readiness.ProfileTypes)
	assert.Zero(t, readiness.Profiles)
}

func TestCheckReadinessWithoutSchema(t *testing.T) {
	db := dbtest.Setup(t)
	_, err := db.Exec(`DROP TABLE profile_revision`)
	require.NoError(t, err)
	_, err = db.Exec(`DROP TABLE profile`)
	require.NoError(t, err)

	_, err = GetHealthCheckService().CheckReadiness()
	assert.Error(t, err)
}
