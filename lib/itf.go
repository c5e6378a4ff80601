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

package lib

import (
	"context"

	"github.com/open-launcher/install-manager/lib/model"
)

type Api interface {
	UpdateManifests(ctx context.Context) (string, error)
	GetRunnerManifests(ctx context.Context) ([]model.RunnerManifestEntry, error)
	GetGameManifests(ctx context.Context) ([]model.GameManifest, error)
	GetRunnerStates(ctx context.Context) ([]model.RunnerStateView, error)
	InstallRunner(ctx context.Context, family, version string) (string, error)
	RemoveRunner(ctx context.Context, family, version string) (string, error)
	RefreshInstalls(ctx context.Context) (string, error)
	GetInstalls(ctx context.Context) ([]model.InstallRecord, error)
	GetInstallSettings(ctx context.Context, id string) (model.InstallSettings, error)
	UpdateInstallSetting(ctx context.Context, id, key string, value any) error
	UpdateInstallXxmiConfig(ctx context.Context, id string, patch model.XxmiConfigPatch) error
	BeginUninstall(ctx context.Context, id string) error
	AcknowledgeUninstall(ctx context.Context, id string, acknowledged bool) error
	SetUninstallOptions(ctx context.Context, id string, options model.UninstallOptions) error
	GetUninstallSession(ctx context.Context, id string) (model.UninstallSession, error)
	GetUninstallPreview(ctx context.Context, id string) (string, error)
	CancelUninstall(ctx context.Context, id string) error
	ConfirmUninstall(ctx context.Context, id string) (string, error)
	GetSelection(ctx context.Context) (model.SelectionContext, error)
	OpenFolder(ctx context.Context, req model.OpenFolderRequest) error
	EmptyFolder(ctx context.Context, installID string, pathType model.PathType) error
	OpenInPrefix(ctx context.Context, installID string, pathType model.PathType, executable string) error
	AddShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error
	RemoveShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error
	CopyAuthkey(ctx context.Context, id string) error
	StartGameRepair(ctx context.Context, event model.RepairEvent) error
	GetJobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, id string) (model.Job, error)
	CancelJob(ctx context.Context, id string) error
}
