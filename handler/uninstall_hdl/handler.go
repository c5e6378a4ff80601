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

package uninstall_hdl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/open-launcher/install-manager/handler"
	"github.com/open-launcher/install-manager/lib/model"
	"github.com/open-launcher/install-manager/util"
)

type session struct {
	reviewing    bool
	acknowledged bool
	inProgress   bool
	options      model.UninstallOptions
}

// Handler gates install removal behind an explicit review and
// acknowledgment step. A failed or falsy removal keeps the session in
// reviewing so the user can retry, success discards the session and
// cascades the selection over whatever remains.
type Handler struct {
	mu               sync.Mutex
	sessions         map[string]*session
	backendClient    handler.BackendClient
	storageHandler   handler.StorageHandler
	manifestSrc      handler.ManifestSource
	selectionHandler handler.SelectionHandler
	dbTimeout        time.Duration
}

func New(backendClient handler.BackendClient, storageHandler handler.StorageHandler, manifestSrc handler.ManifestSource, selectionHandler handler.SelectionHandler, dbTimeout time.Duration) *Handler {
	return &Handler{
		sessions:         make(map[string]*session),
		backendClient:    backendClient,
		storageHandler:   storageHandler,
		manifestSrc:      manifestSrc,
		selectionHandler: selectionHandler,
		dbTimeout:        dbTimeout,
	}
}

// Begin opens a review session for the install. Re-entering review resets
// the acknowledgment.
func (h *Handler) Begin(ctx context.Context, id string) error {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	if _, err := h.storageHandler.ReadInstall(ctxWt, id); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.sessions[id]; ok {
		if s.inProgress {
			return model.NewResourceBusyError(errors.New("removal in progress"))
		}
		s.acknowledged = false
		return nil
	}
	h.sessions[id] = &session{reviewing: true}
	return nil
}

func (h *Handler) Acknowledge(_ context.Context, id string, acknowledged bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return model.NewNotFoundError(fmt.Errorf("no uninstall session for %s", id))
	}
	s.acknowledged = acknowledged
	return nil
}

func (h *Handler) SetOptions(_ context.Context, id string, options model.UninstallOptions) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return model.NewNotFoundError(fmt.Errorf("no uninstall session for %s", id))
	}
	s.options = options
	return nil
}

func (h *Handler) Get(_ context.Context, id string) (model.UninstallSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return model.UninstallSession{}, model.NewNotFoundError(fmt.Errorf("no uninstall session for %s", id))
	}
	return model.UninstallSession{
		InstallID:        id,
		Reviewing:        s.reviewing,
		Acknowledged:     s.acknowledged,
		InProgress:       s.inProgress,
		UninstallOptions: s.options,
	}, nil
}

// Preview renders the human-readable effect summary shown during review.
// Conflicting option combinations are not rejected, the text just states
// both effects.
func (h *Handler) Preview(ctx context.Context, id string) (string, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	install, err := h.storageHandler.ReadInstall(ctxWt, id)
	if err != nil {
		return "", err
	}
	h.mu.Lock()
	s, ok := h.sessions[id]
	if !ok {
		h.mu.Unlock()
		return "", model.NewNotFoundError(fmt.Errorf("no uninstall session for %s", id))
	}
	options := s.options
	h.mu.Unlock()
	lines := []string{fmt.Sprintf("'%s' will be removed from the launcher.", install.Name)}
	if options.KeepGameData {
		lines = append(lines, "Game files will be kept on disk.")
	} else {
		lines = append(lines, "Game files will be deleted.")
	}
	if options.WipePrefix {
		lines = append(lines, "The runner prefix will be wiped.")
	}
	return strings.Join(lines, "\n"), nil
}

// Cancel discards the session. No backend call is made.
func (h *Handler) Cancel(_ context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return model.NewNotFoundError(fmt.Errorf("no uninstall session for %s", id))
	}
	if s.inProgress {
		return model.NewResourceBusyError(errors.New("removal in progress"))
	}
	delete(h.sessions, id)
	return nil
}

// Confirm performs the removal. Permitted only while reviewing with the
// acknowledgment set and no removal already running.
func (h *Handler) Confirm(ctx context.Context, id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	if !ok {
		h.mu.Unlock()
		return model.NewNotFoundError(fmt.Errorf("no uninstall session for %s", id))
	}
	if s.inProgress {
		h.mu.Unlock()
		return model.NewResourceBusyError(errors.New("removal in progress"))
	}
	if !s.reviewing || !s.acknowledged {
		h.mu.Unlock()
		return model.NewInvalidInputError(errors.New("removal not acknowledged"))
	}
	s.inProgress = true
	options := s.options
	h.mu.Unlock()
	removed, err := h.backendClient.RemoveInstall(ctx, id, options)
	if err != nil || !removed {
		if err == nil {
			err = model.NewInternalError(fmt.Errorf("backend did not remove install %s", id))
		}
		util.Logger.Errorf("uninstall: removing %s: %s", id, err)
		h.mu.Lock()
		s.inProgress = false
		h.mu.Unlock()
		return err
	}
	h.finalize(id)
	return nil
}

// finalize drops the install from the local registry, recomputes the
// selection and discards the session. Registry errors are logged but the
// cascade still runs, the selection must always be consistent with what
// remains.
func (h *Handler) finalize(id string) {
	ctx := context.Background()
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	if err := h.storageHandler.DeleteInstall(ctxWt, id); err != nil {
		util.Logger.Errorf("uninstall: deleting %s from registry: %s", id, err)
	}
	ctxWt2, cf2 := context.WithTimeout(ctx, h.dbTimeout)
	defer cf2()
	remaining, err := h.storageHandler.ListInstalls(ctxWt2)
	if err != nil {
		util.Logger.Errorf("uninstall: listing remaining installs: %s", err)
		remaining = nil
	}
	h.selectionHandler.Cascade(remaining, h.manifestSrc.Games())
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}
