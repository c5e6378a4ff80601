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

package settings_hdl

import (
	"context"
	"sync"
	"time"

	"github.com/open-launcher/install-manager/handler"
	"github.com/open-launcher/install-manager/lib/model"
	"github.com/open-launcher/install-manager/util"
)

// Handler owns the settings read replica of every installation. Mutations
// are translated to backend commands and followed by an authoritative
// re-fetch of the full snapshot. Backend rejections are logged and swallowed,
// the replica stays stale until the next successful refresh, there are no
// retries.
type Handler struct {
	mu             sync.Mutex
	backendClient  handler.BackendClient
	storageHandler handler.StorageHandler
	dbTimeout      time.Duration
	pendingRefresh map[string]struct{}
}

func New(backendClient handler.BackendClient, storageHandler handler.StorageHandler, dbTimeout time.Duration) (*Handler, error) {
	if err := validateTable(); err != nil {
		return nil, model.NewInternalError(err)
	}
	return &Handler{
		backendClient:  backendClient,
		storageHandler: storageHandler,
		dbTimeout:      dbTimeout,
		pendingRefresh: make(map[string]struct{}),
	}, nil
}

// Get serves the local replica, falling back to the backend when the
// install was never refreshed.
func (h *Handler) Get(ctx context.Context, installID string) (model.InstallSettings, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	settings, err := h.storageHandler.ReadInstallSettings(ctxWt, installID)
	if err == nil {
		return settings, nil
	}
	settings, err = h.backendClient.GetInstallSettings(ctx, installID)
	if err != nil {
		return model.InstallSettings{}, err
	}
	ctxWt2, cf2 := context.WithTimeout(ctx, h.dbTimeout)
	defer cf2()
	if err = h.storageHandler.UpsertInstallSettings(ctxWt2, settings); err != nil {
		util.Logger.Errorf("settings: caching snapshot for %s: %s", installID, err)
	}
	return settings, nil
}

// Apply dispatches one (key, value) mutation. Errors never reach the
// caller's render path, they are logged with the offending key.
func (h *Handler) Apply(ctx context.Context, installID, key string, value any) error {
	update, carried, err := buildUpdate(installID, key, value)
	if err != nil {
		util.Logger.Errorf("settings: %s", err)
		return nil
	}
	if !carried {
		util.Logger.Warningf("settings: key %s is not in the payload table, value dropped", key)
	}
	if err = h.backendClient.UpdateInstallSetting(ctx, commandFor(key), update); err != nil {
		util.Logger.Errorf("settings: update %s for %s: %s", key, installID, err)
		return nil
	}
	h.scheduleRefresh(installID)
	return nil
}

// ApplyXxmiConfig sends a nested-config patch under a single command. Same
// error and refresh behavior as Apply.
func (h *Handler) ApplyXxmiConfig(ctx context.Context, installID string, patch model.XxmiConfigPatch) error {
	if err := h.backendClient.UpdateInstallXxmiConfig(ctx, installID, patch); err != nil {
		util.Logger.Errorf("settings: xxmi config for %s: %s", installID, err)
		return nil
	}
	h.scheduleRefresh(installID)
	return nil
}

// Refresh fetches the authoritative snapshot and replaces the replica.
func (h *Handler) Refresh(ctx context.Context, installID string) error {
	settings, err := h.backendClient.GetInstallSettings(ctx, installID)
	if err != nil {
		return err
	}
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	return h.storageHandler.UpsertInstallSettings(ctxWt, settings)
}

// scheduleRefresh coalesces refreshes per install: a refresh that is
// scheduled but not yet started absorbs later requests. The pending mark is
// cleared before the fetch so a mutation landing mid-fetch schedules a new
// one and the last snapshot always wins.
func (h *Handler) scheduleRefresh(installID string) {
	h.mu.Lock()
	if _, ok := h.pendingRefresh[installID]; ok {
		h.mu.Unlock()
		return
	}
	h.pendingRefresh[installID] = struct{}{}
	h.mu.Unlock()
	go func() {
		h.mu.Lock()
		delete(h.pendingRefresh, installID)
		h.mu.Unlock()
		if err := h.Refresh(context.Background(), installID); err != nil {
			util.Logger.Errorf("settings: refresh for %s: %s", installID, err)
		}
	}()
}
