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
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/open-launcher/install-manager/handler"
	"github.com/open-launcher/install-manager/lib/model"
	"github.com/open-launcher/install-manager/util"
	"github.com/y-du/go-log-level/level"
)

func TestMain(m *testing.M) {
	if _, err := util.InitLogger(util.LoggerConfig{Level: level.Error, Terminal: true}); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type backendMock struct {
	handler.BackendClient
	mu          sync.Mutex
	settings    model.InstallSettings
	getCalls    int
	getSignal   chan struct{}
	updateErr   error
	lastCommand string
	lastUpdate  model.SettingUpdate
	lastPatch   model.XxmiConfigPatch
}

func (m *backendMock) GetInstallSettings(_ context.Context, id string) (model.InstallSettings, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.getSignal != nil {
		m.getSignal <- struct{}{}
	}
	s := m.settings
	s.ID = id
	return s, nil
}

func (m *backendMock) UpdateInstallSetting(_ context.Context, command string, update model.SettingUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastCommand = command
	m.lastUpdate = update
	return nil
}

func (m *backendMock) UpdateInstallXxmiConfig(_ context.Context, id string, patch model.XxmiConfigPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPatch = patch
	return nil
}

type storageMock struct {
	handler.StorageHandler
	mu       sync.Mutex
	settings map[string]model.InstallSettings
}

func newStorageMock() *storageMock {
	return &storageMock{settings: make(map[string]model.InstallSettings)}
}

func (m *storageMock) ReadInstallSettings(_ context.Context, id string) (model.InstallSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[id]
	if !ok {
		return model.InstallSettings{}, model.NewNotFoundError(errors.New("not found"))
	}
	return s, nil
}

func (m *storageMock) UpsertInstallSettings(_ context.Context, settings model.InstallSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[settings.ID] = settings
	return nil
}

func (m *storageMock) get(id string) (model.InstallSettings, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[id]
	return s, ok
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func TestValidateTable(t *testing.T) {
	if err := validateTable(); err != nil {
		t.Error("err != nil")
	}
	// ------------------------------
	settingKinds["shader_path_mode"] = enabledKind
	defer delete(settingKinds, "shader_path_mode")
	if err := validateTable(); err == nil {
		t.Error("err == nil")
	}
}

func TestCommandFor(t *testing.T) {
	if c := commandFor(model.SettingLaunchArgs); c != "update_install_launch_args" {
		t.Errorf("%s != update_install_launch_args", c)
	}
	if c := commandFor(model.SettingFpsValue); c != "update_install_fps_value" {
		t.Errorf("%s != update_install_fps_value", c)
	}
}

func TestBuildUpdate(t *testing.T) {
	tests := []struct {
		key     string
		value   any
		update  model.SettingUpdate
		carried bool
		wantErr bool
	}{
		{model.SettingUseJadeite, true, model.SettingUpdate{ID: "i1", Enabled: boolPtr(true)}, true, false},
		{model.SettingLaunchArgs, false, model.SettingUpdate{ID: "i1", Enabled: boolPtr(false)}, true, false},
		{model.SettingInstallPath, "/games/a", model.SettingUpdate{ID: "i1", Path: strPtr("/games/a")}, true, false},
		{model.SettingLaunchArgs, "-dx11", model.SettingUpdate{ID: "i1", Args: strPtr("-dx11")}, true, false},
		{model.SettingEnvVars, "A=1", model.SettingUpdate{ID: "i1", EnvVars: strPtr("A=1")}, true, false},
		{model.SettingPreLaunchCmd, "echo hi", model.SettingUpdate{ID: "i1", Cmd: strPtr("echo hi")}, true, false},
		{model.SettingRunnerVersion, "8-26", model.SettingUpdate{ID: "i1", Version: strPtr("8-26")}, true, false},
		{model.SettingFpsValue, 120, model.SettingUpdate{ID: "i1", Fps: intPtr(120)}, true, false},
		{model.SettingFpsValue, float64(144), model.SettingUpdate{ID: "i1", Fps: intPtr(144)}, true, false},
		{"custom_dxvk_path", "/dxvk", model.SettingUpdate{ID: "i1", Path: strPtr("/dxvk")}, true, false},
		{"fancy_mode", "x", model.SettingUpdate{ID: "i1"}, false, false},
		{model.SettingFpsValue, "fast", model.SettingUpdate{}, false, true},
		{model.SettingUseXxmi, "yes", model.SettingUpdate{}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			update, carried, err := buildUpdate("i1", tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Error("err == nil")
				}
				return
			}
			if err != nil {
				t.Error("err != nil")
			}
			if carried != tt.carried {
				t.Errorf("%v != %v", carried, tt.carried)
			}
			if reflect.DeepEqual(tt.update, update) == false {
				t.Errorf("%v != %v", tt.update, update)
			}
		})
	}
}

func TestHandlerApply(t *testing.T) {
	backend := &backendMock{
		settings:  model.InstallSettings{LaunchArgs: "-dx11"},
		getSignal: make(chan struct{}, 1),
	}
	storage := newStorageMock()
	h, err := New(backend, storage, time.Second)
	if err != nil {
		t.Fatal("err != nil")
	}
	if err = h.Apply(context.Background(), "i1", model.SettingLaunchArgs, "-dx11"); err != nil {
		t.Error("err != nil")
	}
	backend.mu.Lock()
	if backend.lastCommand != "update_install_launch_args" {
		t.Errorf("%s != update_install_launch_args", backend.lastCommand)
	}
	if backend.lastUpdate.Args == nil || *backend.lastUpdate.Args != "-dx11" {
		t.Errorf("%v != -dx11", backend.lastUpdate.Args)
	}
	backend.mu.Unlock()
	select {
	case <-backend.getSignal:
	case <-time.After(time.Second):
		t.Fatal("refresh not scheduled")
	}
	deadline := time.Now().Add(time.Second)
	for {
		if s, ok := storage.get("i1"); ok {
			if s.LaunchArgs != "-dx11" {
				t.Errorf("%s != -dx11", s.LaunchArgs)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("replica not refreshed")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHandlerApplyUnknownKey(t *testing.T) {
	backend := &backendMock{getSignal: make(chan struct{}, 1)}
	h, err := New(backend, newStorageMock(), time.Second)
	if err != nil {
		t.Fatal("err != nil")
	}
	if err = h.Apply(context.Background(), "i1", "fancy_mode", "x"); err != nil {
		t.Error("err != nil")
	}
	backend.mu.Lock()
	if backend.lastCommand != "update_install_fancy_mode" {
		t.Errorf("%s != update_install_fancy_mode", backend.lastCommand)
	}
	a := model.SettingUpdate{ID: "i1"}
	if reflect.DeepEqual(a, backend.lastUpdate) == false {
		t.Errorf("%v != %v", a, backend.lastUpdate)
	}
	backend.mu.Unlock()
}

func TestHandlerApplyBackendError(t *testing.T) {
	backend := &backendMock{
		updateErr: errors.New("rejected"),
		getSignal: make(chan struct{}, 1),
	}
	h, err := New(backend, newStorageMock(), time.Second)
	if err != nil {
		t.Fatal("err != nil")
	}
	if err = h.Apply(context.Background(), "i1", model.SettingLaunchArgs, "-dx11"); err != nil {
		t.Error("err != nil")
	}
	select {
	case <-backend.getSignal:
		t.Error("refresh scheduled after rejected update")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerApplyXxmiConfig(t *testing.T) {
	backend := &backendMock{getSignal: make(chan struct{}, 1)}
	h, err := New(backend, newStorageMock(), time.Second)
	if err != nil {
		t.Fatal("err != nil")
	}
	patch := model.XxmiConfigPatch{Path: strPtr("/xxmi")}
	if err = h.ApplyXxmiConfig(context.Background(), "i1", patch); err != nil {
		t.Error("err != nil")
	}
	backend.mu.Lock()
	if reflect.DeepEqual(patch, backend.lastPatch) == false {
		t.Errorf("%v != %v", patch, backend.lastPatch)
	}
	backend.mu.Unlock()
	select {
	case <-backend.getSignal:
	case <-time.After(time.Second):
		t.Fatal("refresh not scheduled")
	}
}

func TestHandlerGet(t *testing.T) {
	backend := &backendMock{settings: model.InstallSettings{LaunchCmd: "run"}}
	storage := newStorageMock()
	h, err := New(backend, storage, time.Second)
	if err != nil {
		t.Fatal("err != nil")
	}
	settings, err := h.Get(context.Background(), "i1")
	if err != nil {
		t.Error("err != nil")
	}
	if settings.LaunchCmd != "run" {
		t.Errorf("%s != run", settings.LaunchCmd)
	}
	if _, ok := storage.get("i1"); !ok {
		t.Error("backend snapshot not cached")
	}
	// ------------------------------
	storage.mu.Lock()
	storage.settings["i1"] = model.InstallSettings{ID: "i1", LaunchCmd: "cached"}
	storage.mu.Unlock()
	settings, err = h.Get(context.Background(), "i1")
	if err != nil {
		t.Error("err != nil")
	}
	if settings.LaunchCmd != "cached" {
		t.Errorf("%s != cached", settings.LaunchCmd)
	}
	backend.mu.Lock()
	if backend.getCalls != 1 {
		t.Errorf("%d != 1", backend.getCalls)
	}
	backend.mu.Unlock()
}
