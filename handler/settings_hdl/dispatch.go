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

package settings_hdl

import (
	"fmt"
	"strings"

	"github.com/open-launcher/install-manager/lib/model"
)

type payloadKind int

const (
	enabledKind payloadKind = iota
	pathKind
	argsKind
	envVarsKind
	cmdKind
	versionKind
	fpsKind
)

// settingKinds is the closed mapping from setting key to the backend
// payload shape. Keys outside the table are dispatched with the id only and
// flagged in the log.
var settingKinds = map[string]payloadKind{
	model.SettingInstallPath:   pathKind,
	model.SettingRunnerPath:    pathKind,
	model.SettingDxvkPath:      pathKind,
	model.SettingPrefixPath:    pathKind,
	model.SettingModsPath:      pathKind,
	model.SettingIgnoreUpdates: enabledKind,
	model.SettingUseJadeite:    enabledKind,
	model.SettingUseXxmi:       enabledKind,
	model.SettingUseFpsUnlock:  enabledKind,
	model.SettingSkipHashCheck: enabledKind,
	model.SettingLaunchArgs:    argsKind,
	model.SettingEnvVars:       envVarsKind,
	model.SettingPreLaunchCmd:  cmdKind,
	model.SettingLaunchCmd:     cmdKind,
	model.SettingRunnerVersion: versionKind,
	model.SettingDxvkVersion:   versionKind,
	model.SettingFpsValue:      fpsKind,
}

// validateTable checks the closed mapping against the dispatch rules so an
// inconsistent entry fails at init instead of producing a silent mismatch.
func validateTable() error {
	for key, kind := range settingKinds {
		if kind != pathKind && strings.Contains(key, "path") {
			return fmt.Errorf("setting %s contains path but is not mapped to path payload", key)
		}
		switch kind {
		case pathKind:
			if !strings.Contains(key, "path") {
				return fmt.Errorf("setting %s mapped to path payload without path in key", key)
			}
		case argsKind:
			if key != model.SettingLaunchArgs {
				return fmt.Errorf("setting %s mapped to args payload", key)
			}
		case envVarsKind:
			if key != model.SettingEnvVars {
				return fmt.Errorf("setting %s mapped to env vars payload", key)
			}
		case cmdKind:
			if key != model.SettingPreLaunchCmd && key != model.SettingLaunchCmd {
				return fmt.Errorf("setting %s mapped to cmd payload", key)
			}
		case versionKind:
			if key != model.SettingRunnerVersion && key != model.SettingDxvkVersion {
				return fmt.Errorf("setting %s mapped to version payload", key)
			}
		case fpsKind:
			if key != model.SettingFpsValue {
				return fmt.Errorf("setting %s mapped to fps payload", key)
			}
		}
	}
	return nil
}

// commandFor maps a setting key to its backend command name. Total over all
// keys.
func commandFor(key string) string {
	return model.UpdateInstallCmdPrefix + key
}

// buildUpdate resolves the payload for (key, value). Boolean values always
// win, then the closed table, then the path substring rule. The boolean
// flag reports whether the value was carried, false means the key is
// unmapped and only the id is sent.
func buildUpdate(id, key string, value any) (model.SettingUpdate, bool, error) {
	update := model.SettingUpdate{ID: id}
	if b, ok := value.(bool); ok {
		update.Enabled = &b
		return update, true, nil
	}
	kind, known := settingKinds[key]
	if !known {
		if strings.Contains(key, "path") {
			kind = pathKind
			known = true
		}
	}
	if !known {
		return update, false, nil
	}
	switch kind {
	case enabledKind:
		return update, false, fmt.Errorf("setting %s requires a boolean value, got %T", key, value)
	case fpsKind:
		fps, err := toInt(value)
		if err != nil {
			return update, false, fmt.Errorf("setting %s: %s", key, err)
		}
		update.Fps = &fps
	default:
		s, ok := value.(string)
		if !ok {
			return update, false, fmt.Errorf("setting %s requires a string value, got %T", key, value)
		}
		switch kind {
		case pathKind:
			update.Path = &s
		case argsKind:
			update.Args = &s
		case envVarsKind:
			update.EnvVars = &s
		case cmdKind:
			update.Cmd = &s
		case versionKind:
			update.Version = &s
		}
	}
	return update, true, nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("not a number: %T", value)
	}
}
