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

const ServiceName = "launcher-install-manager"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderApiVer    = "X-Api-Version"
	HeaderSrvName   = "X-Service"
)

const (
	ManifestsPath        = "manifests"
	ManifestUpdatePath   = "update"
	RunnersPath          = "runners"
	GamesPath            = "games"
	InstallsPath         = "installs"
	InstallsRefreshPath  = "refresh"
	SettingsPath         = "settings"
	XxmiConfigPath       = "xxmi_config"
	UninstallPath        = "uninstall"
	UninstallAckPath     = "acknowledge"
	UninstallOptionsPath = "options"
	UninstallPreviewPath = "preview"
	UninstallConfirmPath = "confirm"
	SelectionPath        = "selection"
	FoldersPath          = "folders"
	FoldersOpenPath      = "open"
	FoldersEmptyPath     = "empty"
	PrefixLaunchPath     = "prefix_launch"
	ShortcutsPath        = "shortcuts"
	AuthkeyPath          = "authkey"
	RepairPath           = "repair"
	JobsPath             = "jobs"
	JobsCancelPath       = "cancel"
	HealthCheckPath      = "health-check"
)

// Backend command names. The persistence service exposes each as a named
// request/response operation, StartGameRepairEvent is a fire-and-forget
// broadcast.
const (
	GetInstalledRunnersCmd     = "get_installed_runners"
	AddInstalledRunnerCmd      = "add_installed_runner"
	RemoveInstalledRunnerCmd   = "remove_installed_runner"
	GetInstallsCmd             = "get_installs"
	GetInstallSettingsCmd      = "get_install_settings"
	UpdateInstallCmdPrefix     = "update_install_"
	UpdateInstallXxmiConfigCmd = "update_install_xxmi_config"
	RemoveInstallCmd           = "remove_install"
	OpenFolderCmd              = "open_folder"
	EmptyFolderCmd             = "empty_folder"
	OpenInPrefixCmd            = "open_in_prefix"
	AddShortcutCmd             = "add_shortcut"
	RemoveShortcutCmd          = "remove_shortcut"
	CopyAuthkeyCmd             = "copy_authkey"
	StartGameRepairEvent       = "start_game_repair"
)

// Setting keys accepted by UpdateInstallSetting.
const (
	SettingInstallPath   = "install_path"
	SettingRunnerPath    = "runner_path"
	SettingDxvkPath      = "dxvk_path"
	SettingPrefixPath    = "runner_prefix_path"
	SettingModsPath      = "mods_path"
	SettingIgnoreUpdates = "ignore_updates"
	SettingUseJadeite    = "use_jadeite"
	SettingUseXxmi       = "use_xxmi"
	SettingUseFpsUnlock  = "use_fps_unlock"
	SettingSkipHashCheck = "skip_hash_check"
	SettingLaunchArgs    = "launch_args"
	SettingEnvVars       = "env_vars"
	SettingPreLaunchCmd  = "pre_launch_cmd"
	SettingLaunchCmd     = "launch_cmd"
	SettingRunnerVersion = "runner_version"
	SettingDxvkVersion   = "dxvk_version"
	SettingFpsValue      = "fps_value"
)

type PathType = string

const (
	RunnerGlobalPathType PathType = "runner_global"
	InstallPathType      PathType = "install"
	ModsPathType         PathType = "mods"
	RunnerPathType       PathType = "runner"
	RunnerPrefixPathType PathType = "runner_prefix"
)

var PathTypeMap = map[PathType]struct{}{
	RunnerGlobalPathType: {},
	InstallPathType:      {},
	ModsPathType:         {},
	RunnerPathType:       {},
	RunnerPrefixPathType: {},
}

type ShortcutType = string

const (
	SteamShortcutType   ShortcutType = "steam"
	DesktopShortcutType ShortcutType = "desktop"
)

var ShortcutTypeMap = map[ShortcutType]struct{}{
	SteamShortcutType:   {},
	DesktopShortcutType: {},
}

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCanceled  JobStatus = "canceled"
	JobCompleted JobStatus = "completed"
	JobError     JobStatus = "error"
	JobOK        JobStatus = "ok"
)

var JobStateMap = map[JobStatus]struct{}{
	JobPending:   {},
	JobRunning:   {},
	JobCanceled:  {},
	JobCompleted: {},
	JobError:     {},
	JobOK:        {},
}
