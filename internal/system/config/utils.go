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

package config

import (
	"os"
	"path"
	"strings"

	"github.com/wso2/identity-user-profile-service/internal/system/constants"
	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment file, expands environment references and
// fills in defaults for anything left empty.
func LoadConfig(profileHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(profileHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// OverrideProfileRuntime replaces the runtime configuration. Used by tests
// and by the admin CLI.
func OverrideProfileRuntime(conf Config) {
	applyDefaults(&conf)
	runtimeConfig = &ProfileRuntime{
		Config: conf,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Addr.Host == "" {
		cfg.Addr.Host = "localhost"
	}
	if cfg.Addr.Port == 0 {
		cfg.Addr.Port = 8900
	}
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = "INFO"
	}
	cfg.DataSource.Type = strings.ToLower(strings.TrimSpace(cfg.DataSource.Type))
	if cfg.DataSource.Type == "" {
		cfg.DataSource.Type = constants.DialectPostgres
	}
	if cfg.DataSource.SSLMode == "" {
		cfg.DataSource.SSLMode = "disable"
	}
	if cfg.Language.DefaultLangcode == "" {
		cfg.Language.DefaultLangcode = constants.DefaultLangcode
	}
	if cfg.AuthServer.AdminUserId == 0 {
		cfg.AuthServer.AdminUserId = 1
	}
}
