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

package model

// InstallRecord is one configured game installation as reported by the
// backend. Name, Background and Icon are the install's own cached copies of
// the game assets, kept so a selection can be rebuilt without the game
// manifest being present.
type InstallRecord struct {
	ID         string `json:"id"`
	ManifestID string `json:"manifest_id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Icon       string `json:"icon"`
}

// XxmiConfig is the nested mod-loader configuration of an installation.
type XxmiConfig struct {
	Path          string `json:"path"`
	RunnerVersion string `json:"runner_version"`
	DxvkVersion   string `json:"dxvk_version"`
	Env           string `json:"env"`
}

// XxmiConfigPatch carries a partial XxmiConfig update. Nil fields are left
// untouched by the backend.
type XxmiConfigPatch struct {
	Path          *string `json:"path,omitempty"`
	RunnerVersion *string `json:"runner_version,omitempty"`
	DxvkVersion   *string `json:"dxvk_version,omitempty"`
	Env           *string `json:"env,omitempty"`
}

// InstallSettings is the flat settings snapshot of one installation. The
// in-memory and stored copies are read replicas, the backend is the source
// of truth.
type InstallSettings struct {
	ID            string     `json:"id"`
	ManifestID    string     `json:"manifest_id"`
	InstallPath   string     `json:"install_path"`
	RunnerPath    string     `json:"runner_path"`
	DxvkPath      string     `json:"dxvk_path"`
	PrefixPath    string     `json:"runner_prefix_path"`
	ModsPath      string     `json:"mods_path"`
	IgnoreUpdates bool       `json:"ignore_updates"`
	UseJadeite    bool       `json:"use_jadeite"`
	UseXxmi       bool       `json:"use_xxmi"`
	UseFpsUnlock  bool       `json:"use_fps_unlock"`
	SkipHashCheck bool       `json:"skip_hash_check"`
	LaunchArgs    string     `json:"launch_args"`
	EnvVars       string     `json:"env_vars"`
	PreLaunchCmd  string     `json:"pre_launch_cmd"`
	LaunchCmd     string     `json:"launch_cmd"`
	RunnerVersion string     `json:"runner_version"`
	DxvkVersion   string     `json:"dxvk_version"`
	FpsValue      int        `json:"fps_value"`
	XxmiConfig    XxmiConfig `json:"xxmi_config"`
}

// SettingUpdate is the wire payload of an update_install_<key> command.
// Exactly one value field is set, or none for a key outside the known table.
type SettingUpdate struct {
	ID      string  `json:"id"`
	Enabled *bool   `json:"enabled,omitempty"`
	Path    *string `json:"path,omitempty"`
	Args    *string `json:"args,omitempty"`
	EnvVars *string `json:"envVars,omitempty"`
	Cmd     *string `json:"cmd,omitempty"`
	Version *string `json:"version,omitempty"`
	Fps     *int    `json:"fps,omitempty"`
}

// UninstallOptions are carried verbatim into the remove_install request.
type UninstallOptions struct {
	WipePrefix   bool `json:"wipe_prefix"`
	KeepGameData bool `json:"keep_game_data"`
}

// UninstallSession is the API snapshot of one pending uninstall review.
type UninstallSession struct {
	InstallID    string `json:"install_id"`
	Reviewing    bool   `json:"reviewing"`
	Acknowledged bool   `json:"acknowledged"`
	InProgress   bool   `json:"in_progress"`
	UninstallOptions
}

// OpenFolderRequest addresses a filesystem location by symbolic path type.
type OpenFolderRequest struct {
	RunnerVersion string   `json:"runner_version"`
	ManifestID    string   `json:"manifest_id"`
	InstallID     string   `json:"install_id"`
	PathType      PathType `json:"path_type"`
}

// RepairEvent is broadcast to trigger an out-of-band file repair. The sender
// does not await the outcome.
type RepairEvent struct {
	Install string `json:"install"`
	Biz     string `json:"biz"`
	Lang    string `json:"lang"`
	Region  string `json:"region"`
}
