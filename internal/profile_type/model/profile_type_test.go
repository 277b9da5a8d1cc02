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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelDefaults(t *testing.T) {
	pt := ProfileType{Id: "customer", Label: "Customer"}
	assert.Equal(t, "Publish", pt.GetPublishLabel())
	assert.Equal(t, "Unpublish", pt.GetUnpublishLabel())
	assert.Equal(t, "Activate", pt.GetActivateLabel())
	assert.Equal(t, "Deactivate", pt.GetDeactivateLabel())
	assert.Equal(t, "Customer", pt.GetDisplayLabel())

	pt.PublishLabel = "Enable"
	pt.DisplayLabel = "Customer information"
	assert.Equal(t, "Enable", pt.GetPublishLabel())
	assert.Equal(t, "Customer information", pt.GetDisplayLabel())
}

func TestAllowsRoles(t *testing.T) {
	open := ProfileType{}
	assert.True(t, open.AllowsRoles(nil))

	restricted := ProfileType{Roles: []string{"customer", "reseller"}}
	assert.True(t, restricted.AllowsRoles([]string{"authenticated", "reseller"}))
	assert.False(t, restricted.AllowsRoles([]string{"authenticated"}))
}
