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
	"fmt"

	"github.com/open-launcher/install-manager/lib/model"
)

func (a *Api) GetRunnerStates(ctx context.Context) ([]model.RunnerStateView, error) {
	return a.runnerHandler.States(ctx)
}

func (a *Api) InstallRunner(_ context.Context, family, version string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("install runner '%s' version '%s'", family, version), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.runnerHandler.Install(ctx, family, version)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) RemoveRunner(_ context.Context, family, version string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("remove runner '%s' version '%s'", family, version), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.runnerHandler.Remove(ctx, family, version)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}
