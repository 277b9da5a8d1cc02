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
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"

	"github.com/wso2/identity-user-profile-service/internal/system/constants"
)

type languageContextKey struct{}

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var localesFS embed.FS

var (
	supported = mustRegister(localesFS)
	matcher   = language.NewMatcher(supported)
)

// mustRegister loads every locale file and registers its messages with the
// x/text catalog. Keys missing from a locale fall back to the English text.
func mustRegister(catalogFS fs.FS) []language.Tag {
	paths, err := fs.Glob(catalogFS, "locales/*.yaml")
	if err != nil || len(paths) == 0 {
		panic(fmt.Sprintf("no message catalogs found: %v", err))
	}
	sort.Strings(paths)

	files := map[language.Tag]map[string]string{}
	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			panic(fmt.Sprintf("read catalog %s: %v", path, err))
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			panic(fmt.Sprintf("parse catalog %s: %v", path, err))
		}
		files[language.MustParse(file.Locale)] = file.Messages
	}
	english, ok := files[language.English]
	if !ok {
		panic("english message catalog is missing")
	}

	// English first so it wins ties in the matcher.
	tags := []language.Tag{language.English}
	for tag := range files {
		if tag != language.English {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags[1:], func(i, j int) bool { return tags[i+1].String() < tags[j+1].String() })

	for _, tag := range tags {
		for key, fallback := range english {
			msg, found := files[tag][key]
			if !found {
				msg = fallback
			}
			if err := message.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("register %s/%s: %v", tag, key, err))
			}
		}
	}
	return tags
}

// Supported returns the languages that have a message catalog.
func Supported() []language.Tag {
	return supported
}

// Match picks the best supported language for an Accept-Language value.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(acceptLanguage))
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// Middleware binds the request language to the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := Match(r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Language", tag.String())
		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), tag)))
	})
}

// WithLanguage binds tag to ctx.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, languageContextKey{}, tag)
}

// LanguageFromContext returns the language bound to ctx, English by default.
func LanguageFromContext(ctx context.Context) language.Tag {
	if ctx != nil {
		if tag, ok := ctx.Value(languageContextKey{}).(language.Tag); ok {
			return tag
		}
	}
	return language.English
}

// T formats the catalog message key in the language carried by ctx.
func T(ctx context.Context, key string, args ...interface{}) string {
	return message.NewPrinter(LanguageFromContext(ctx)).Sprintf(key, args...)
}

// LanguageName returns the display name of a langcode in the language of ctx.
// The special codes "und" and "zxx" map to catalog strings.
func LanguageName(ctx context.Context, langcode string) string {
	switch langcode {
	case "", constants.LangcodeNotSpecified:
		return T(ctx, LanguageNotSpecified)
	case constants.LangcodeNotApplicable:
		return T(ctx, LanguageNotApplicable)
	}
	tag, err := language.Parse(langcode)
	if err != nil {
		return langcode
	}
	name := display.Tags(LanguageFromContext(ctx)).Name(tag)
	if name == "" {
		return langcode
	}
	return name
}
