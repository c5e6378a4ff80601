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

package api

import (
	"context"

	"github.com/open-launcher/install-manager/lib/model"
	"github.com/open-launcher/install-manager/util"
	"github.com/open-launcher/install-manager/util/context_hdl"
)

// RefreshInstalls pulls the authoritative install list from the backend
// into the local registry.
func (a *Api) RefreshInstalls(_ context.Context) (string, error) {
	return a.jobHandler.Create("refresh installs", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.refreshInstalls(ctx)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) refreshInstalls(ctx context.Context) error {
	installs, err := a.backendClient.GetInstalls(ctx)
	if err != nil {
		return err
	}
	ch := context_hdl.New()
	defer ch.CancelAll()
	for _, install := range installs {
		if err = a.storageHandler.UpsertInstall(ch.Add(context.WithTimeout(ctx, a.dbTimeout)), install); err != nil {
			return err
		}
	}
	return nil
}

func (a *Api) GetInstalls(ctx context.Context) ([]model.InstallRecord, error) {
	ctxWt, cf := context.WithTimeout(ctx, a.dbTimeout)
	defer cf()
	return a.storageHandler.ListInstalls(ctxWt)
}

func (a *Api) GetInstallSettings(ctx context.Context, id string) (model.InstallSettings, error) {
	return a.settingsHandler.Get(ctx, id)
}

func (a *Api) UpdateInstallSetting(ctx context.Context, id, key string, value any) error {
	return a.settingsHandler.Apply(ctx, id, key, value)
}

func (a *Api) UpdateInstallXxmiConfig(ctx context.Context, id string, patch model.XxmiConfigPatch) error {
	return a.settingsHandler.ApplyXxmiConfig(ctx, id, patch)
}

func (a *Api) GetSelection(_ context.Context) (model.SelectionContext, error) {
	return a.selectionHandler.Get(), nil
}

// StartGameRepair broadcasts the repair event without awaiting its outcome.
func (a *Api) StartGameRepair(_ context.Context, event model.RepairEvent) error {
	go func() {
		if err := a.backendClient.StartGameRepair(context.Background(), event); err != nil {
			util.Logger.Errorf("repair: broadcasting for %s: %s", event.Install, err)
		}
	}()
	return nil
}
