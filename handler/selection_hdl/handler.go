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

package selection_hdl

import (
	"sync"

	"github.com/open-launcher/install-manager/lib/model"
)

// Handler owns the single current SelectionContext. The context is only
// ever replaced as a whole so readers never observe a half-updated
// install/game pairing.
type Handler struct {
	mu      sync.RWMutex
	current model.SelectionContext
}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) Get() model.SelectionContext {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

func (h *Handler) Set(sc model.SelectionContext) {
	h.mu.Lock()
	h.current = sc
	h.mu.Unlock()
}

// Cascade recomputes and replaces the selection after a removal.
func (h *Handler) Cascade(remainingInstalls []model.InstallRecord, availableGames []model.GameManifest) model.SelectionContext {
	sc := PickNext(remainingInstalls, availableGames)
	h.Set(sc)
	return sc
}

// PickNext deterministically selects the next active install or game.
// First remaining install wins with its own cached display fields, then the
// first available game with no active install, then an empty context.
func PickNext(remainingInstalls []model.InstallRecord, availableGames []model.GameManifest) model.SelectionContext {
	if len(remainingInstalls) > 0 {
		install := remainingInstalls[0]
		return model.SelectionContext{
			InstallID:  install.ID,
			GameID:     install.ManifestID,
			Name:       install.Name,
			Background: install.Background,
			Icon:       install.Icon,
		}
	}
	if len(availableGames) > 0 {
		game := availableGames[0]
		sc := model.SelectionContext{
			GameID:     game.ID,
			Name:       game.Name,
			Background: game.Background,
			Icon:       game.Icon,
		}
		if game.Assets != nil {
			if game.Assets.Background != "" {
				sc.Background = game.Assets.Background
			}
			if game.Assets.Icon != "" {
				sc.Icon = game.Assets.Icon
			}
		}
		return sc
	}
	return model.SelectionContext{}
}
