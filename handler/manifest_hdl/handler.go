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

package manifest_hdl

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/open-launcher/install-manager/lib/model"
)

const (
	runnersDir = "runners"
	gamesDir   = "games"
)

// Handler mirrors a git-hosted manifest repository into the local workdir
// and serves the decoded runner and game manifests. Manifests are replaced
// wholesale on every update, file order within a directory is the display
// order.
type Handler struct {
	mu          sync.RWMutex
	repoUrl     string
	wrkSpcPath  string
	runnerItems []model.RunnerManifestEntry
	gameItems   []model.GameManifest
}

func New(repoUrl, workspacePath string) (*Handler, error) {
	if !path.IsAbs(workspacePath) {
		return nil, fmt.Errorf("workspace path must be absolute")
	}
	return &Handler{
		repoUrl:    repoUrl,
		wrkSpcPath: workspacePath,
	}, nil
}

func (h *Handler) Update(ctx context.Context) error {
	if err := h.sync(ctx); err != nil {
		return err
	}
	runnerItems, err := loadManifests[model.RunnerManifestEntry](path.Join(h.wrkSpcPath, runnersDir))
	if err != nil {
		return model.NewInternalError(err)
	}
	gameItems, err := loadManifests[model.GameManifest](path.Join(h.wrkSpcPath, gamesDir))
	if err != nil {
		return model.NewInternalError(err)
	}
	h.mu.Lock()
	h.runnerItems = runnerItems
	h.gameItems = gameItems
	h.mu.Unlock()
	return nil
}

func (h *Handler) Runners() []model.RunnerManifestEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	items := make([]model.RunnerManifestEntry, len(h.runnerItems))
	copy(items, h.runnerItems)
	return items
}

func (h *Handler) Games() []model.GameManifest {
	h.mu.RLock()
	defer h.mu.RUnlock()
	items := make([]model.GameManifest, len(h.gameItems))
	copy(items, h.gameItems)
	return items
}

func (h *Handler) sync(ctx context.Context) error {
	_, err := git.PlainCloneContext(ctx, h.wrkSpcPath, false, &git.CloneOptions{
		URL:               h.repoUrl,
		Depth:             1,
		RecurseSubmodules: git.NoRecurseSubmodules,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return model.NewInternalError(err)
	}
	repo, err := git.PlainOpen(h.wrkSpcPath)
	if err != nil {
		return model.NewInternalError(err)
	}
	wrkTree, err := repo.Worktree()
	if err != nil {
		return model.NewInternalError(err)
	}
	err = wrkTree.PullContext(ctx, &git.PullOptions{})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return model.NewInternalError(err)
	}
	return nil
}
