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

package storage_hdl

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	lib_model "github.com/open-launcher/install-manager/lib/model"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := New(filepath.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatal("err != nil")
	}
	t.Cleanup(func() {
		_ = h.Close()
	})
	if err = h.Init(context.Background(), "../../include/registry_schema.sql"); err != nil {
		t.Fatal("err != nil")
	}
	return h
}

func TestInstalls(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()
	installs, err := h.ListInstalls(ctx)
	if err != nil {
		t.Error("err != nil")
	}
	if len(installs) != 0 {
		t.Errorf("len(%v) != 0", installs)
	}
	// ------------------------------
	first := lib_model.InstallRecord{ID: "i1", ManifestID: "g1", Name: "First", Background: "bg1", Icon: "ic1"}
	second := lib_model.InstallRecord{ID: "i2", ManifestID: "g2", Name: "Second", Background: "bg2", Icon: "ic2"}
	if err = h.UpsertInstall(ctx, first); err != nil {
		t.Error("err != nil")
	}
	if err = h.UpsertInstall(ctx, second); err != nil {
		t.Error("err != nil")
	}
	installs, err = h.ListInstalls(ctx)
	if err != nil {
		t.Error("err != nil")
	}
	a := []lib_model.InstallRecord{first, second}
	if reflect.DeepEqual(a, installs) == false {
		t.Errorf("%v != %v", a, installs)
	}
	// ------------------------------
	// updating a record keeps its place in the insert order
	first.Name = "Renamed"
	if err = h.UpsertInstall(ctx, first); err != nil {
		t.Error("err != nil")
	}
	installs, _ = h.ListInstalls(ctx)
	a = []lib_model.InstallRecord{first, second}
	if reflect.DeepEqual(a, installs) == false {
		t.Errorf("%v != %v", a, installs)
	}
	// ------------------------------
	install, err := h.ReadInstall(ctx, "i2")
	if err != nil {
		t.Error("err != nil")
	}
	if reflect.DeepEqual(second, install) == false {
		t.Errorf("%v != %v", second, install)
	}
	var nfe *lib_model.NotFoundError
	if _, err = h.ReadInstall(ctx, "i9"); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
	// ------------------------------
	if err = h.DeleteInstall(ctx, "i1"); err != nil {
		t.Error("err != nil")
	}
	installs, _ = h.ListInstalls(ctx)
	a = []lib_model.InstallRecord{second}
	if reflect.DeepEqual(a, installs) == false {
		t.Errorf("%v != %v", a, installs)
	}
	if err = h.DeleteInstall(ctx, "i1"); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
}

func TestInstallSettings(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()
	var nfe *lib_model.NotFoundError
	if _, err := h.ReadInstallSettings(ctx, "i1"); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
	// ------------------------------
	settings := lib_model.InstallSettings{
		ID:           "i1",
		ManifestID:   "g1",
		InstallPath:  "/games/one",
		UseJadeite:   true,
		LaunchArgs:   "-dx11",
		FpsValue:     120,
		XxmiConfig:   lib_model.XxmiConfig{Path: "/xxmi", Env: "A=1"},
		LaunchCmd:    "run",
		PreLaunchCmd: "echo hi",
	}
	if err := h.UpsertInstallSettings(ctx, settings); err != nil {
		t.Error("err != nil")
	}
	stored, err := h.ReadInstallSettings(ctx, "i1")
	if err != nil {
		t.Error("err != nil")
	}
	if reflect.DeepEqual(settings, stored) == false {
		t.Errorf("%v != %v", settings, stored)
	}
	// ------------------------------
	settings.LaunchArgs = "-dx12"
	if err = h.UpsertInstallSettings(ctx, settings); err != nil {
		t.Error("err != nil")
	}
	stored, _ = h.ReadInstallSettings(ctx, "i1")
	if stored.LaunchArgs != "-dx12" {
		t.Errorf("%s != -dx12", stored.LaunchArgs)
	}
	// ------------------------------
	if err = h.UpsertInstall(ctx, lib_model.InstallRecord{ID: "i1"}); err != nil {
		t.Error("err != nil")
	}
	if err = h.DeleteInstall(ctx, "i1"); err != nil {
		t.Error("err != nil")
	}
	if _, err = h.ReadInstallSettings(ctx, "i1"); !errors.As(err, &nfe) {
		t.Error("settings survived install deletion")
	}
	// ------------------------------
	// a failed deletion must not touch the settings row
	if err = h.UpsertInstallSettings(ctx, settings); err != nil {
		t.Error("err != nil")
	}
	if err = h.DeleteInstall(ctx, "i1"); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
	if _, err = h.ReadInstallSettings(ctx, "i1"); err != nil {
		t.Error("err != nil")
	}
}
