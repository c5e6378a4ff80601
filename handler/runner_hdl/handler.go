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

package runner_hdl

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/open-launcher/install-manager/handler"
	"github.com/open-launcher/install-manager/lib/model"
)

// Handler derives per-version display state and guards runner install and
// remove requests. The in-flight set is the only mutual exclusion device,
// it is process-local and held here so correctness does not depend on any
// view staying mounted.
type Handler struct {
	mu            sync.Mutex
	backendClient handler.BackendClient
	manifestSrc   handler.ManifestSource
	inFlight      map[model.RunnerRef]struct{}
}

func New(backendClient handler.BackendClient, manifestSrc handler.ManifestSource) *Handler {
	return &Handler{
		backendClient: backendClient,
		manifestSrc:   manifestSrc,
		inFlight:      make(map[model.RunnerRef]struct{}),
	}
}

// States fetches a fresh installed-set snapshot, reconciles it against the
// manifests and overlays the busy flags. Order follows the manifests.
func (h *Handler) States(ctx context.Context) ([]model.RunnerStateView, error) {
	manifests := h.manifestSrc.Runners()
	installed, err := h.backendClient.GetInstalledRunners(ctx)
	if err != nil {
		return nil, err
	}
	states := Reconcile(manifests, installed)
	h.mu.Lock()
	defer h.mu.Unlock()
	var views []model.RunnerStateView
	for _, entry := range manifests {
		for _, version := range entry.Versions {
			ref := model.RunnerRef{Family: entry.Family, Version: version.Version}
			state := states[ref]
			if _, ok := h.inFlight[ref]; ok {
				state.Busy = true
			}
			views = append(views, model.RunnerStateView{
				RunnerRef:   ref,
				SourceURL:   version.SourceURL,
				RunnerState: state,
			})
		}
	}
	return views, nil
}

func (h *Handler) Install(ctx context.Context, family, version string) error {
	ref := model.RunnerRef{Family: family, Version: version}
	runnerVersion, err := h.lookup(ref)
	if err != nil {
		return err
	}
	if err = h.acquire(ctx, ref, true); err != nil {
		return err
	}
	defer h.release(ref)
	return h.backendClient.AddInstalledRunner(ctx, runnerVersion.SourceURL, ref.Version)
}

func (h *Handler) Remove(ctx context.Context, family, version string) error {
	ref := model.RunnerRef{Family: family, Version: version}
	if _, err := h.lookup(ref); err != nil {
		return err
	}
	if err := h.acquire(ctx, ref, false); err != nil {
		return err
	}
	defer h.release(ref)
	return h.backendClient.RemoveInstalledRunner(ctx, ref.Version)
}

func (h *Handler) lookup(ref model.RunnerRef) (model.RunnerVersion, error) {
	for _, entry := range h.manifestSrc.Runners() {
		if entry.Family != ref.Family {
			continue
		}
		for _, version := range entry.Versions {
			if version.Version == ref.Version {
				return version, nil
			}
		}
	}
	return model.RunnerVersion{}, model.NewNotFoundError(fmt.Errorf("runner %s %s not in manifest", ref.Family, ref.Version))
}

// acquire marks ref busy after checking that no operation is in flight for
// it and that it is not already in the target state. The installed-set
// check uses a fresh snapshot, not a cached one.
func (h *Handler) acquire(ctx context.Context, ref model.RunnerRef, target bool) error {
	h.mu.Lock()
	if _, ok := h.inFlight[ref]; ok {
		h.mu.Unlock()
		return model.NewResourceBusyError(fmt.Errorf("operation in progress for runner %s %s", ref.Family, ref.Version))
	}
	h.inFlight[ref] = struct{}{}
	h.mu.Unlock()
	installed, err := h.backendClient.GetInstalledRunners(ctx)
	if err != nil {
		h.release(ref)
		return err
	}
	states := Reconcile(h.manifestSrc.Runners(), installed)
	if states[ref].Installed == target {
		h.release(ref)
		if target {
			return model.NewInvalidInputError(errors.New("runner version already installed"))
		}
		return model.NewInvalidInputError(errors.New("runner version not installed"))
	}
	return nil
}

func (h *Handler) release(ref model.RunnerRef) {
	h.mu.Lock()
	delete(h.inFlight, ref)
	h.mu.Unlock()
}
