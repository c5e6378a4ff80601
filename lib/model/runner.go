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

// RunnerVersion is one installable version of a runner family. Versions are
// unique per family, ordered as listed in the manifest.
type RunnerVersion struct {
	Version   string `json:"version" yaml:"version"`
	SourceURL string `json:"source_url" yaml:"source_url"`
}

// RunnerManifestEntry describes a runner family as published by the manifest
// repository. Immutable once fetched.
type RunnerManifestEntry struct {
	Family   string          `json:"family" yaml:"family"`
	Versions []RunnerVersion `json:"versions" yaml:"versions"`
}

// InstalledRunnerRecord is the backend's view of one runner version. The full
// set is an authoritative snapshot, never patched incrementally.
type InstalledRunnerRecord struct {
	Version     string `json:"version"`
	IsInstalled bool   `json:"is_installed"`
}

// RunnerRef identifies one (family, version) pair.
type RunnerRef struct {
	Family  string `json:"family"`
	Version string `json:"version"`
}

// RunnerState is derived per ref, not persisted. Busy is set while an install
// or remove for exactly this ref is in flight.
type RunnerState struct {
	Installed bool `json:"installed"`
	Busy      bool `json:"busy"`
}

// RunnerStateView is the list form served over the API, in manifest order.
type RunnerStateView struct {
	RunnerRef
	SourceURL string `json:"source_url"`
	RunnerState
}
