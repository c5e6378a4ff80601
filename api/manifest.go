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

package api

import (
	"context"

	"github.com/open-launcher/install-manager/lib/model"
)

func (a *Api) UpdateManifests(_ context.Context) (string, error) {
	return a.jobHandler.Create("update manifests", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.manifestSrc.Update(ctx)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) GetRunnerManifests(_ context.Context) ([]model.RunnerManifestEntry, error) {
	return a.manifestSrc.Runners(), nil
}

func (a *Api) GetGameManifests(_ context.Context) ([]model.GameManifest, error) {
	return a.manifestSrc.Games(), nil
}
