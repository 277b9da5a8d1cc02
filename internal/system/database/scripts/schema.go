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

package scripts

import (
	"embed"
	"fmt"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Schema returns the DDL script for the given dialect.
func Schema(dialect string) (string, error) {
	content, err := schemaFS.ReadFile(fmt.Sprintf("schema/%s.sql", dialect))
	if err != nil {
		return "", fmt.Errorf("no schema script for dialect %q: %w", dialect, err)
	}
	return string(content), nil
}
