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

package storage_hdl

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	lib_model "github.com/open-launcher/install-manager/lib/model"
)

// ListInstalls returns installs in first-insert order, the order the
// selection cascade relies on.
func (h *Handler) ListInstalls(ctx context.Context) ([]lib_model.InstallRecord, error) {
	rows, err := h.db.QueryContext(ctx, "SELECT `id`, `manifest_id`, `name`, `background`, `icon` FROM `installs` ORDER BY `rowid`")
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	defer rows.Close()
	var installs []lib_model.InstallRecord
	for rows.Next() {
		var install lib_model.InstallRecord
		if err = rows.Scan(&install.ID, &install.ManifestID, &install.Name, &install.Background, &install.Icon); err != nil {
			return nil, lib_model.NewInternalError(err)
		}
		installs = append(installs, install)
	}
	if err = rows.Err(); err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	return installs, nil
}

func (h *Handler) ReadInstall(ctx context.Context, id string) (lib_model.InstallRecord, error) {
	row := h.db.QueryRowContext(ctx, "SELECT `id`, `manifest_id`, `name`, `background`, `icon` FROM `installs` WHERE `id` = ?", id)
	var install lib_model.InstallRecord
	err := row.Scan(&install.ID, &install.ManifestID, &install.Name, &install.Background, &install.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lib_model.InstallRecord{}, lib_model.NewNotFoundError(err)
		}
		return lib_model.InstallRecord{}, lib_model.NewInternalError(err)
	}
	return install, nil
}

func (h *Handler) UpsertInstall(ctx context.Context, install lib_model.InstallRecord) error {
	_, err := h.db.ExecContext(ctx, "INSERT INTO `installs` (`id`, `manifest_id`, `name`, `background`, `icon`, `updated`) VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT (`id`) DO UPDATE SET `manifest_id` = ?, `name` = ?, `background` = ?, `icon` = ?, `updated` = ?",
		install.ID, install.ManifestID, install.Name, install.Background, install.Icon, time.Now().UTC(),
		install.ManifestID, install.Name, install.Background, install.Icon, time.Now().UTC())
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) DeleteInstall(ctx context.Context, id string) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer tx.Rollback()
	res, err := tx.ExecContext(ctx, "DELETE FROM `installs` WHERE `id` = ?", id)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	if n < 1 {
		return lib_model.NewNotFoundError(errors.New("not found"))
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM `install_settings` WHERE `install_id` = ?", id); err != nil {
		return lib_model.NewInternalError(err)
	}
	if err = tx.Commit(); err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) ReadInstallSettings(ctx context.Context, id string) (lib_model.InstallSettings, error) {
	row := h.db.QueryRowContext(ctx, "SELECT `settings` FROM `install_settings` WHERE `install_id` = ?", id)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lib_model.InstallSettings{}, lib_model.NewNotFoundError(err)
		}
		return lib_model.InstallSettings{}, lib_model.NewInternalError(err)
	}
	var settings lib_model.InstallSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return lib_model.InstallSettings{}, lib_model.NewInternalError(err)
	}
	return settings, nil
}

func (h *Handler) UpsertInstallSettings(ctx context.Context, settings lib_model.InstallSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	_, err = h.db.ExecContext(ctx, "INSERT INTO `install_settings` (`install_id`, `settings`, `updated`) VALUES (?, ?, ?) ON CONFLICT (`install_id`) DO UPDATE SET `settings` = ?, `updated` = ?",
		settings.ID, raw, time.Now().UTC(), raw, time.Now().UTC())
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}
