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

import "sync"

// ProfileRuntime holds the runtime configuration for the profile server.
type ProfileRuntime struct {
	ProfileHome string `yaml:"profile_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *ProfileRuntime
	once          sync.Once
)

// InitializeProfileRuntime initializes the ProfileRuntime configuration.
func InitializeProfileRuntime(profileHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &ProfileRuntime{
			ProfileHome: profileHome,
			Config:      *config,
		}
	})

	return nil
}

// GetProfileRuntime returns the ProfileRuntime configuration.
func GetProfileRuntime() *ProfileRuntime {

	if runtimeConfig == nil {
		panic("ProfileRuntime is not initialized")
	}
	return runtimeConfig
}
