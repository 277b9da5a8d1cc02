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

package pagination

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"github.com/wso2/identity-user-profile-service/internal/system/errors"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

const cursorPrefix = "id:"

type Pagination struct {
	Count      int    `json:"count"`
	PageSize   int    `json:"page_size"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// Page is a keyset page request: rows with an id greater than AfterId.
type Page struct {
	Limit   int
	AfterId int64
}

// ParsePage reads the limit and cursor query parameters.
func ParsePage(r *http.Request) (Page, error) {

	page := Page{Limit: DefaultLimit}
	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return page, errors.NewClientErrorFrom(errors.BAD_REQUEST,
				"Query parameter 'limit' must be a positive integer.", http.StatusBadRequest)
		}
		page.Limit = min(limit, MaxLimit)
	}
	if raw := query.Get("cursor"); raw != "" {
		afterId, err := DecodeCursor(raw)
		if err != nil {
			return page, errors.NewClientError(errors.INVALID_CURSOR, http.StatusBadRequest)
		}
		page.AfterId = afterId
	}
	return page, nil
}

// EncodeCursor returns the opaque cursor continuing after id.
func EncodeCursor(id int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.FormatInt(id, 10)))
}

// DecodeCursor returns the id encoded by EncodeCursor.
func DecodeCursor(cursor string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, err
	}
	value, found := strings.CutPrefix(string(raw), cursorPrefix)
	if !found {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(value, 10, 64)
}

// Build returns the pagination block for a page fetched with one extra row.
// hasMore reports whether that extra row was present.
func Build(count, limit int, lastId int64, hasMore bool) Pagination {
	p := Pagination{Count: count, PageSize: limit}
	if hasMore {
		p.NextCursor = EncodeCursor(lastId)
	}
	return p
}
