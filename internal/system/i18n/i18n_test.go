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

package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslateEnglish(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "Customer profile #3 has been created.",
		T(ctx, ProfileCreated, T(ctx, ProfileLabel, "Customer", 3)))
	assert.Equal(t, "Are you sure you want to publish the profile Customer profile #3?",
		T(ctx, ProfilePublishQuestion, "Customer profile #3"))
}

func TestTranslateGermanWithFallback(t *testing.T) {
	ctx := WithLanguage(context.Background(), language.German)
	assert.Equal(t, "Speichern", T(ctx, FormSave))
	// Not translated: falls back to English.
	assert.Equal(t, "Customer: Publish any profile", T(ctx, PermissionTitleKey("publish", "any"), "Customer", "profile"))
}

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match(""))
	assert.Equal(t, language.German, Match("de-CH, en;q=0.5"))
	assert.Equal(t, language.English, Match("fr-FR"))
}

func TestMiddleware(t *testing.T) {
	var seen language.Tag
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = LanguageFromContext(r.Context())
	}))
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "de")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, language.German, seen)
	assert.Equal(t, "de", rec.Header().Get("Content-Language"))
}

func TestLanguageName(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "English", LanguageName(ctx, "en"))
	assert.Equal(t, "German", LanguageName(ctx, "de"))
	assert.Equal(t, "Not specified", LanguageName(ctx, "und"))
	assert.Equal(t, "Not applicable", LanguageName(ctx, "zxx"))
}

func TestPermissionTitleKey(t *testing.T) {
	assert.Equal(t, "permission.activate_own", PermissionTitleKey("activate/deactivate", "own"))
	assert.Equal(t, "permission.create", PermissionTitleKey("create", ""))
}
