/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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
	"errors"
	"path/filepath"
	"sync"
)

// ServerRuntime is the configuration the server was started with and the home
// directory relative paths in it are resolved against.
type ServerRuntime struct {
	ServerHome string `yaml:"server_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *ServerRuntime
	once          sync.Once
)

// InitializeServerRuntime stores the runtime configuration. Only the first call takes effect.
func InitializeServerRuntime(serverHome string, config *Config) error {
	if config == nil {
		return errors.New("server runtime requires a configuration")
	}
	once.Do(func() {
		runtimeConfig = &ServerRuntime{
			ServerHome: serverHome,
			Config:     *config,
		}
	})
	return nil
}

// GetServerRuntime returns the runtime configuration. It panics before InitializeServerRuntime.
func GetServerRuntime() *ServerRuntime {
	if runtimeConfig == nil {
		panic("ServerRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetServerRuntime clears the runtime so tests can initialize it again.
func ResetServerRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}

// ResolvePath resolves a configured path against the server home. Empty and absolute
// paths are returned unchanged.
func (r *ServerRuntime) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.ServerHome, path)
}
