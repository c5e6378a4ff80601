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

package model

// GameAssets is the structured asset block of newer game manifests.
type GameAssets struct {
	Background string `json:"background" yaml:"background"`
	Icon       string `json:"icon" yaml:"icon"`
}

// GameManifest is the static per-game descriptor from the manifest
// repository. Background and Icon are the legacy flat fields kept for older
// manifests, Assets supersedes them when present.
type GameManifest struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Background string      `json:"background" yaml:"background"`
	Icon       string      `json:"icon" yaml:"icon"`
	Assets     *GameAssets `json:"assets,omitempty" yaml:"assets"`
}

// SelectionContext is the externally visible current install / current game
// quintuple. It is only ever replaced as a whole, never field by field.
type SelectionContext struct {
	InstallID  string `json:"install_id"`
	GameID     string `json:"game_id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Icon       string `json:"icon"`
}
