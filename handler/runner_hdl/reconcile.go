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
	"github.com/open-launcher/install-manager/lib/model"
)

// Reconcile joins the manifest catalog against the backend's installed-set
// snapshot. The result holds exactly one entry per (family, version) listed
// in the manifests, a version only reported as installed never yields an
// entry. Pure function of its inputs.
func Reconcile(manifests []model.RunnerManifestEntry, installed []model.InstalledRunnerRecord) map[model.RunnerRef]model.RunnerState {
	installedSet := make(map[string]struct{})
	for _, record := range installed {
		if record.IsInstalled {
			installedSet[record.Version] = struct{}{}
		}
	}
	states := make(map[model.RunnerRef]model.RunnerState)
	for _, entry := range manifests {
		for _, version := range entry.Versions {
			ref := model.RunnerRef{Family: entry.Family, Version: version.Version}
			_, ok := installedSet[version.Version]
			states[ref] = model.RunnerState{Installed: ok}
		}
	}
	return states
}
