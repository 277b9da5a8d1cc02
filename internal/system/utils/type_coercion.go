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
	"strconv"
)

// Row values differ by driver: lib/pq returns int64/bool/[]byte, modernc
// sqlite returns int64 for booleans and string or []byte for text.

// AsInt64 reads an integer column.
func AsInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

// AsBool reads a boolean column.
func AsBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64, int32, int, float64:
		return AsInt64(v) != 0
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// AsString reads a text column.
func AsString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(value)
}

// AsJSONMap decodes a JSON object column. NULL and empty text yield an empty map.
func AsJSONMap(value interface{}) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	raw := AsString(value)
	if raw == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode json column: %w", err)
	}
	return result, nil
}

// AsStringSlice decodes a JSON array column of strings.
func AsStringSlice(value interface{}) ([]string, error) {
	result := []string{}
	raw := AsString(value)
	if raw == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode json array column: %w", err)
	}
	return result, nil
}

// ToJSONText encodes v for a JSON/TEXT column.
func ToJSONText(v interface{}) (string, error) {
	if v == nil {
		return "{}", nil
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
