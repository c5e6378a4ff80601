/*
 * Copyright 2025 Open Launcher Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package util

import (
	srv_base "github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level/level"
)

type LoggerConfig struct {
	Level        level.Level `json:"level" env_var:"LOGGER_LEVEL"`
	Utc          bool        `json:"utc" env_var:"LOGGER_UTC"`
	Path         string      `json:"path" env_var:"LOGGER_PATH"`
	FileName     string      `json:"file_name" env_var:"LOGGER_FILE_NAME"`
	Terminal     bool        `json:"terminal" env_var:"LOGGER_TERMINAL"`
	Microseconds bool        `json:"microseconds" env_var:"LOGGER_MICROSECONDS"`
	Prefix       string      `json:"prefix" env_var:"LOGGER_PREFIX"`
}

type DatabaseConfig struct {
	Path       string `json:"path" env_var:"DB_PATH"`
	Timeout    int64  `json:"timeout" env_var:"DB_TIMEOUT"`
	SchemaPath string `json:"schema_path" env_var:"DB_SCHEMA_PATH"`
}

type BackendConfig struct {
	BaseUrl string `json:"base_url" env_var:"BACKEND_BASE_URL"`
}

type ManifestConfig struct {
	RepoUrl     string `json:"repo_url" env_var:"MANIFEST_REPO_URL"`
	WorkdirPath string `json:"workdir_path" env_var:"MANIFEST_WORKDIR_PATH"`
}

type JobsConfig struct {
	BufferSize  int   `json:"buffer_size" env_var:"JOBS_BUFFER_SIZE"`
	MaxNumber   int   `json:"max_number" env_var:"JOBS_MAX_NUMBER"`
	CCHInterval int   `json:"cch_interval" env_var:"JOBS_CCH_INTERVAL"`
	JHInterval  int   `json:"jh_interval" env_var:"JOBS_JH_INTERVAL"`
	MaxAge      int64 `json:"max_age" env_var:"JOBS_MAX_AGE"`
}

type Config struct {
	ServerPort uint           `json:"server_port" env_var:"SERVER_PORT"`
	Logger     LoggerConfig   `json:"logger" env_var:"LOGGER_CONFIG"`
	Database   DatabaseConfig `json:"database" env_var:"DATABASE_CONFIG"`
	Backend    BackendConfig  `json:"backend" env_var:"BACKEND_CONFIG"`
	Manifest   ManifestConfig `json:"manifest" env_var:"MANIFEST_CONFIG"`
	Jobs       JobsConfig     `json:"jobs" env_var:"JOBS_CONFIG"`
}

func NewConfig(path string) (*Config, error) {
	cfg := Config{
		ServerPort: 8800,
		Logger: LoggerConfig{
			Level:        level.Warning,
			Utc:          true,
			Microseconds: true,
			Terminal:     true,
		},
		Database: DatabaseConfig{
			Path:       "/opt/install-manager/registry.db",
			Timeout:    5000000000,
			SchemaPath: "include/registry_schema.sql",
		},
		Backend: BackendConfig{
			BaseUrl: "http://127.0.0.1:8810",
		},
		Manifest: ManifestConfig{
			RepoUrl:     "https://github.com/open-launcher/manifests.git",
			WorkdirPath: "/opt/install-manager/manifests",
		},
		Jobs: JobsConfig{
			BufferSize:  50,
			MaxNumber:   10,
			CCHInterval: 500000,
			JHInterval:  500000,
			MaxAge:      3600000000,
		},
	}
	err := srv_base.LoadConfig(path, &cfg, nil, nil, nil)
	return &cfg, err
}
