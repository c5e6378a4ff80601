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

package backend_client

import (
	"context"

	"github.com/open-launcher/install-manager/lib/model"
)

type runnerInstallRequest struct {
	RunnerUrl     string `json:"runnerUrl"`
	RunnerVersion string `json:"runnerVersion"`
}

type runnerRemoveRequest struct {
	RunnerVersion string `json:"runnerVersion"`
}

type installIdRequest struct {
	ID string `json:"id"`
}

type xxmiConfigRequest struct {
	ID string `json:"id"`
	model.XxmiConfigPatch
}

type removeInstallRequest struct {
	ID           string `json:"id"`
	WipePrefix   bool   `json:"wipePrefix"`
	KeepGameData bool   `json:"keepGameData"`
}

type removeInstallResponse struct {
	Removed bool `json:"removed"`
}

type folderRequest struct {
	RunnerVersion string         `json:"runnerVersion,omitempty"`
	ManifestID    string         `json:"manifestId,omitempty"`
	InstallID     string         `json:"installId,omitempty"`
	PathType      model.PathType `json:"pathType"`
}

type prefixLaunchRequest struct {
	InstallID  string         `json:"installId"`
	PathType   model.PathType `json:"pathType"`
	Executable string         `json:"executable"`
}

type shortcutRequest struct {
	InstallID    string             `json:"installId"`
	ShortcutType model.ShortcutType `json:"shortcutType"`
}

func (c *Client) GetInstalledRunners(ctx context.Context) ([]model.InstalledRunnerRecord, error) {
	var records []model.InstalledRunnerRecord
	if err := c.execCommand(ctx, model.GetInstalledRunnersCmd, struct{}{}, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) AddInstalledRunner(ctx context.Context, runnerUrl, runnerVersion string) error {
	return c.execCommand(ctx, model.AddInstalledRunnerCmd, runnerInstallRequest{RunnerUrl: runnerUrl, RunnerVersion: runnerVersion}, nil)
}

func (c *Client) RemoveInstalledRunner(ctx context.Context, runnerVersion string) error {
	return c.execCommand(ctx, model.RemoveInstalledRunnerCmd, runnerRemoveRequest{RunnerVersion: runnerVersion}, nil)
}

func (c *Client) GetInstalls(ctx context.Context) ([]model.InstallRecord, error) {
	var installs []model.InstallRecord
	if err := c.execCommand(ctx, model.GetInstallsCmd, struct{}{}, &installs); err != nil {
		return nil, err
	}
	return installs, nil
}

func (c *Client) GetInstallSettings(ctx context.Context, id string) (model.InstallSettings, error) {
	var settings model.InstallSettings
	if err := c.execCommand(ctx, model.GetInstallSettingsCmd, installIdRequest{ID: id}, &settings); err != nil {
		return model.InstallSettings{}, err
	}
	return settings, nil
}

func (c *Client) UpdateInstallSetting(ctx context.Context, command string, update model.SettingUpdate) error {
	return c.execCommand(ctx, command, update, nil)
}

func (c *Client) UpdateInstallXxmiConfig(ctx context.Context, id string, patch model.XxmiConfigPatch) error {
	return c.execCommand(ctx, model.UpdateInstallXxmiConfigCmd, xxmiConfigRequest{ID: id, XxmiConfigPatch: patch}, nil)
}

func (c *Client) RemoveInstall(ctx context.Context, id string, options model.UninstallOptions) (bool, error) {
	var resp removeInstallResponse
	err := c.execCommand(ctx, model.RemoveInstallCmd, removeInstallRequest{ID: id, WipePrefix: options.WipePrefix, KeepGameData: options.KeepGameData}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Removed, nil
}

func (c *Client) OpenFolder(ctx context.Context, req model.OpenFolderRequest) error {
	return c.execCommand(ctx, model.OpenFolderCmd, folderRequest{
		RunnerVersion: req.RunnerVersion,
		ManifestID:    req.ManifestID,
		InstallID:     req.InstallID,
		PathType:      req.PathType,
	}, nil)
}

func (c *Client) EmptyFolder(ctx context.Context, installID string, pathType model.PathType) error {
	return c.execCommand(ctx, model.EmptyFolderCmd, folderRequest{InstallID: installID, PathType: pathType}, nil)
}

func (c *Client) OpenInPrefix(ctx context.Context, installID string, pathType model.PathType, executable string) error {
	return c.execCommand(ctx, model.OpenInPrefixCmd, prefixLaunchRequest{InstallID: installID, PathType: pathType, Executable: executable}, nil)
}

func (c *Client) AddShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error {
	return c.execCommand(ctx, model.AddShortcutCmd, shortcutRequest{InstallID: installID, ShortcutType: shortcutType}, nil)
}

func (c *Client) RemoveShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error {
	return c.execCommand(ctx, model.RemoveShortcutCmd, shortcutRequest{InstallID: installID, ShortcutType: shortcutType}, nil)
}

func (c *Client) CopyAuthkey(ctx context.Context, id string) error {
	return c.execCommand(ctx, model.CopyAuthkeyCmd, installIdRequest{ID: id}, nil)
}

func (c *Client) StartGameRepair(ctx context.Context, event model.RepairEvent) error {
	return c.postEvent(ctx, model.StartGameRepairEvent, event)
}
