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

func (a *Api) OpenFolder(ctx context.Context, req model.OpenFolderRequest) error {
	if err := validatePathType(req.PathType); err != nil {
		return err
	}
	return a.backendClient.OpenFolder(ctx, req)
}

func (a *Api) EmptyFolder(ctx context.Context, installID string, pathType model.PathType) error {
	if err := validatePathType(pathType); err != nil {
		return err
	}
	return a.backendClient.EmptyFolder(ctx, installID, pathType)
}

func (a *Api) OpenInPrefix(ctx context.Context, installID string, pathType model.PathType, executable string) error {
	if err := validatePathType(pathType); err != nil {
		return err
	}
	return a.backendClient.OpenInPrefix(ctx, installID, pathType, executable)
}

func (a *Api) AddShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error {
	if err := validateShortcutType(shortcutType); err != nil {
		return err
	}
	return a.backendClient.AddShortcut(ctx, installID, shortcutType)
}

func (a *Api) RemoveShortcut(ctx context.Context, installID string, shortcutType model.ShortcutType) error {
	if err := validateShortcutType(shortcutType); err != nil {
		return err
	}
	return a.backendClient.RemoveShortcut(ctx, installID, shortcutType)
}

func (a *Api) CopyAuthkey(ctx context.Context, id string) error {
	return a.backendClient.CopyAuthkey(ctx, id)
}

func validatePathType(pathType model.PathType) error {
	if _, ok := model.PathTypeMap[pathType]; !ok {
		return model.NewInvalidInputError(fmt.Errorf("unknown path type '%s'", pathType))
	}
	return nil
}

func validateShortcutType(shortcutType model.ShortcutType) error {
	if _, ok := model.ShortcutTypeMap[shortcutType]; !ok {
		return model.NewInvalidInputError(fmt.Errorf("unknown shortcut type '%s'", shortcutType))
	}
	return nil
}
