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

func (a *Api) BeginUninstall(ctx context.Context, id string) error {
	return a.uninstallHandler.Begin(ctx, id)
}

func (a *Api) AcknowledgeUninstall(ctx context.Context, id string, acknowledged bool) error {
	return a.uninstallHandler.Acknowledge(ctx, id, acknowledged)
}

func (a *Api) SetUninstallOptions(ctx context.Context, id string, options model.UninstallOptions) error {
	return a.uninstallHandler.SetOptions(ctx, id, options)
}

func (a *Api) GetUninstallSession(ctx context.Context, id string) (model.UninstallSession, error) {
	return a.uninstallHandler.Get(ctx, id)
}

func (a *Api) GetUninstallPreview(ctx context.Context, id string) (string, error) {
	return a.uninstallHandler.Preview(ctx, id)
}

func (a *Api) CancelUninstall(ctx context.Context, id string) error {
	return a.uninstallHandler.Cancel(ctx, id)
}

func (a *Api) ConfirmUninstall(_ context.Context, id string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("uninstall '%s'", id), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.uninstallHandler.Confirm(ctx, id)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}
