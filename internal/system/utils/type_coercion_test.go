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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(5), AsInt64(int64(5)))
	assert.Equal(t, int64(5), AsInt64([]byte("5")))
	assert.Equal(t, int64(5), AsInt64("5"))
	assert.Equal(t, int64(1), AsInt64(true))
	assert.Equal(t, int64(0), AsInt64(nil))
}

func TestAsBool(t *testing.T) {
	assert.True(t, AsBool(true))
	assert.True(t, AsBool(int64(1)))
	assert.False(t, AsBool(int64(0)))
	assert.True(t, AsBool("true"))
	assert.False(t, AsBool(nil))
}

func TestAsJSONMap(t *testing.T) {
	m, err := AsJSONMap([]byte(`{"city":"Colombo"}`))
	require.NoError(t, err)
	assert.Equal(t, "Colombo", m["city"])

	m, err = AsJSONMap(nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = AsJSONMap("{broken")
	assert.Error(t, err)
}

func TestAsStringSlice(t *testing.T) {
	roles, err := AsStringSlice(`["editor","admin"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"editor", "admin"}, roles)

	roles, err = AsStringSlice("")
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestToJSONText(t *testing.T) {
	text, err := ToJSONText(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", text)

	text, err = ToJSONText([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, text)
}
