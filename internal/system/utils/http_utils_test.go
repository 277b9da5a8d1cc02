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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	customerrors "github.com/wso2/identity-user-profile-service/internal/system/errors"
)

func TestHandleErrorClientError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("wrapped: %w",
		customerrors.NewClientError(customerrors.PROFILE_NOT_FOUND, http.StatusNotFound)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, customerrors.PROFILE_NOT_FOUND.Code, body["code"])
}

func TestHandleErrorServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, customerrors.NewServerError(customerrors.GET_PROFILE, fmt.Errorf("boom")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestDecodeJSONBody(t *testing.T) {
	var target struct {
		Type string `json:"type"`
	}
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"type":"customer"}`))
	require.NoError(t, DecodeJSONBody(req, &target))
	assert.Equal(t, "customer", target.Type)

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"unknown":1}`))
	err := DecodeJSONBody(req, &target)
	var clientError *customerrors.ClientError
	require.ErrorAs(t, err, &clientError)
	assert.Equal(t, http.StatusBadRequest, clientError.StatusCode)

	req = httptest.NewRequest("POST", "/", strings.NewReader(""))
	assert.NoError(t, DecodeJSONBody(req, &target))
}

func TestPathInt64(t *testing.T) {
	req := httptest.NewRequest("GET", "/profiles/12", nil)
	req.SetPathValue("id", "12")
	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	req.SetPathValue("id", "abc")
	_, err = PathInt64(req, "id")
	assert.Error(t, err)
}
