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

package handler

import (
	"context"

	"github.com/open-launcher/install-manager/lib/model"
)

// BackendClient drives the external persistence and execution service via
// its named commands. Calls block until the backend resolves or rejects,
// cancellation is not supported by the backend.
type BackendClient interface {
	GetInstalledRunners(ctx context.Context) ([]model.InstalledRunnerRecord, error)
	AddInstalledRunner(ctx context.Context, runnerUrl, runnerVersion string) error
	RemoveInstalledRunner(ctx context.Context, runnerVersion string) error
	GetInstalls(ctx context.Context) ([]model.InstallRecord, error)
	GetInstallSettings(ctx context.Context, id string) (model.InstallSettings, error)
	UpdateInstallSetting(ctx context.Context, command string, update model.SettingUpdate) error
	UpdateInstallXxmiConfig(ctx context.Context, id string, patch model.XxmiConfigPatch) error
	RemoveInstall(ctx context.Context, id string, options model.UninstallOptions) (bool, error)
	OpenFolder(ctx context.Context, req model.OpenFolderRequest) error
	EmptyFolder(ctx context.Context, installID string, pathType model.PathType) error
	OpenInPrefix(ctx context.Context, installID string, pathType model.PathType, executable string) error
	AddShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error
	RemoveShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error
	CopyAuthkey(ctx context.Context, id string) error
	StartGameRepair(ctx context.Context, event model.RepairEvent) error
}

// ManifestSource provides the read-only runner and game manifests.
type ManifestSource interface {
	Update(ctx context.Context) error
	Runners() []model.RunnerManifestEntry
	Games() []model.GameManifest
}

// StorageHandler is the local registry, a read replica of backend state.
type StorageHandler interface {
	ListInstalls(ctx context.Context) ([]model.InstallRecord, error)
	ReadInstall(ctx context.Context, id string) (model.InstallRecord, error)
	UpsertInstall(ctx context.Context, install model.InstallRecord) error
	DeleteInstall(ctx context.Context, id string) error
	ReadInstallSettings(ctx context.Context, id string) (model.InstallSettings, error)
	UpsertInstallSettings(ctx context.Context, settings model.InstallSettings) error
}

// SelectionHandler owns the current selection context.
type SelectionHandler interface {
	Get() model.SelectionContext
	Cascade(remainingInstalls []model.InstallRecord, availableGames []model.GameManifest) model.SelectionContext
}

type RunnerHandler interface {
	States(ctx context.Context) ([]model.RunnerStateView, error)
	Install(ctx context.Context, family, version string) error
	Remove(ctx context.Context, family, version string) error
}

type SettingsHandler interface {
	Get(ctx context.Context, installID string) (model.InstallSettings, error)
	Apply(ctx context.Context, installID, key string, value any) error
	ApplyXxmiConfig(ctx context.Context, installID string, patch model.XxmiConfigPatch) error
	Refresh(ctx context.Context, installID string) error
}

type UninstallHandler interface {
	Begin(ctx context.Context, id string) error
	Acknowledge(ctx context.Context, id string, acknowledged bool) error
	SetOptions(ctx context.Context, id string, options model.UninstallOptions) error
	Get(ctx context.Context, id string) (model.UninstallSession, error)
	Preview(ctx context.Context, id string) (string, error)
	Cancel(ctx context.Context, id string) error
	Confirm(ctx context.Context, id string) error
}

type JobHandler interface {
	Create(desc string, tFunc func(context.Context, context.CancelFunc) error) (string, error)
	Get(id string) (model.Job, error)
	Cancel(id string) error
	List(filter model.JobFilter) []model.Job
	PurgeJobs(maxAge int64) int
}
