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
	"os"

	lib_model "github.com/open-launcher/install-manager/lib/model"
	_ "modernc.org/sqlite"
)

// Handler is the local registry on a sqlite file, a read replica of
// backend-owned state.
type Handler struct {
	db *sql.DB
}

func New(dbPath string) (*Handler, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	return &Handler{db: db}, nil
}

func (h *Handler) Init(ctx context.Context, schemaPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	if _, err = h.db.ExecContext(ctx, string(schema)); err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) Close() error {
	return h.db.Close()
}
