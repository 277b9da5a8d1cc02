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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	id, err := DecodeCursor(EncodeCursor(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = DecodeCursor("!!")
	assert.Error(t, err)
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(httptest.NewRequest("GET", "/profiles", nil))
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: DefaultLimit}, page)

	page, err = ParsePage(httptest.NewRequest("GET", "/profiles?limit=1000&cursor="+EncodeCursor(7), nil))
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: MaxLimit, AfterId: 7}, page)

	_, err = ParsePage(httptest.NewRequest("GET", "/profiles?limit=-1", nil))
	assert.Error(t, err)
	_, err = ParsePage(httptest.NewRequest("GET", "/profiles?cursor=bad", nil))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	assert.Empty(t, Build(2, 10, 5, false).NextCursor)
	assert.Equal(t, EncodeCursor(5), Build(10, 10, 5, true).NextCursor)
}
