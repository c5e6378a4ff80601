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

package uninstall_hdl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
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
	removed     bool
	removeErr   error
	removeBlock chan struct{}
	lastID      string
	lastOptions model.UninstallOptions
}

func (m *backendMock) RemoveInstall(_ context.Context, id string, options model.UninstallOptions) (bool, error) {
	m.mu.Lock()
	m.lastID = id
	m.lastOptions = options
	m.mu.Unlock()
	if m.removeBlock != nil {
		<-m.removeBlock
	}
	return m.removed, m.removeErr
}

type storageMock struct {
	handler.StorageHandler
	mu       sync.Mutex
	installs map[string]model.InstallRecord
	order    []string
}

func newStorageMock(installs ...model.InstallRecord) *storageMock {
	m := &storageMock{installs: make(map[string]model.InstallRecord)}
	for _, install := range installs {
		m.installs[install.ID] = install
		m.order = append(m.order, install.ID)
	}
	return m
}

func (m *storageMock) ListInstalls(_ context.Context) ([]model.InstallRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var installs []model.InstallRecord
	for _, id := range m.order {
		if install, ok := m.installs[id]; ok {
			installs = append(installs, install)
		}
	}
	return installs, nil
}

func (m *storageMock) ReadInstall(_ context.Context, id string) (model.InstallRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	install, ok := m.installs[id]
	if !ok {
		return model.InstallRecord{}, model.NewNotFoundError(fmt.Errorf("install %s not found", id))
	}
	return install, nil
}

func (m *storageMock) DeleteInstall(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.installs[id]; !ok {
		return model.NewNotFoundError(fmt.Errorf("install %s not found", id))
	}
	delete(m.installs, id)
	return nil
}

type manifestMock struct {
	games []model.GameManifest
}

func (m *manifestMock) Update(_ context.Context) error {
	return nil
}

func (m *manifestMock) Runners() []model.RunnerManifestEntry {
	return nil
}

func (m *manifestMock) Games() []model.GameManifest {
	return m.games
}

type selectionMock struct {
	mu       sync.Mutex
	current  model.SelectionContext
	cascades int
	installs []model.InstallRecord
	games    []model.GameManifest
}

func (m *selectionMock) Get() model.SelectionContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *selectionMock) Cascade(remainingInstalls []model.InstallRecord, availableGames []model.GameManifest) model.SelectionContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cascades++
	m.installs = remainingInstalls
	m.games = availableGames
	return m.current
}

func newTestHandler(backend *backendMock, storage *storageMock, selection *selectionMock, games []model.GameManifest) *Handler {
	return New(backend, storage, &manifestMock{games: games}, selection, time.Second)
}

func TestSessionLifecycle(t *testing.T) {
	storage := newStorageMock(model.InstallRecord{ID: "i1", Name: "Game One"})
	h := newTestHandler(&backendMock{}, storage, &selectionMock{}, nil)
	err := h.Begin(context.Background(), "missing")
	var nfe *model.NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
	// ------------------------------
	if err = h.Begin(context.Background(), "i1"); err != nil {
		t.Error("err != nil")
	}
	session, err := h.Get(context.Background(), "i1")
	if err != nil {
		t.Error("err != nil")
	}
	a := model.UninstallSession{InstallID: "i1", Reviewing: true}
	if reflect.DeepEqual(a, session) == false {
		t.Errorf("%v != %v", a, session)
	}
	// ------------------------------
	if err = h.Acknowledge(context.Background(), "i1", true); err != nil {
		t.Error("err != nil")
	}
	options := model.UninstallOptions{WipePrefix: true}
	if err = h.SetOptions(context.Background(), "i1", options); err != nil {
		t.Error("err != nil")
	}
	session, _ = h.Get(context.Background(), "i1")
	if !session.Acknowledged || !session.WipePrefix {
		t.Errorf("%v not acknowledged with options", session)
	}
	// re-entering review resets the acknowledgment
	if err = h.Begin(context.Background(), "i1"); err != nil {
		t.Error("err != nil")
	}
	session, _ = h.Get(context.Background(), "i1")
	if session.Acknowledged {
		t.Error("acknowledgment survived re-entry")
	}
	// ------------------------------
	if err = h.Cancel(context.Background(), "i1"); err != nil {
		t.Error("err != nil")
	}
	if _, err = h.Get(context.Background(), "i1"); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
}

func TestNoSessionGuards(t *testing.T) {
	h := newTestHandler(&backendMock{}, newStorageMock(), &selectionMock{}, nil)
	var nfe *model.NotFoundError
	if err := h.Acknowledge(context.Background(), "i1", true); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
	if err := h.SetOptions(context.Background(), "i1", model.UninstallOptions{}); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
	if err := h.Cancel(context.Background(), "i1"); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
	if err := h.Confirm(context.Background(), "i1"); !errors.As(err, &nfe) {
		t.Errorf("%v != NotFoundError", err)
	}
}

func TestPreview(t *testing.T) {
	storage := newStorageMock(model.InstallRecord{ID: "i1", Name: "Game One"})
	h := newTestHandler(&backendMock{}, storage, &selectionMock{}, nil)
	if err := h.Begin(context.Background(), "i1"); err != nil {
		t.Fatal("err != nil")
	}
	preview, err := h.Preview(context.Background(), "i1")
	if err != nil {
		t.Error("err != nil")
	}
	if !strings.Contains(preview, "Game One") {
		t.Errorf("%s missing install name", preview)
	}
	if !strings.Contains(preview, "deleted") {
		t.Errorf("%s missing delete effect", preview)
	}
	// ------------------------------
	_ = h.SetOptions(context.Background(), "i1", model.UninstallOptions{WipePrefix: true, KeepGameData: true})
	preview, err = h.Preview(context.Background(), "i1")
	if err != nil {
		t.Error("err != nil")
	}
	if !strings.Contains(preview, "kept") {
		t.Errorf("%s missing keep effect", preview)
	}
	if !strings.Contains(preview, "prefix") {
		t.Errorf("%s missing prefix effect", preview)
	}
}

func TestConfirmGuards(t *testing.T) {
	storage := newStorageMock(model.InstallRecord{ID: "i1", Name: "Game One"})
	h := newTestHandler(&backendMock{removed: true}, storage, &selectionMock{}, nil)
	if err := h.Begin(context.Background(), "i1"); err != nil {
		t.Fatal("err != nil")
	}
	err := h.Confirm(context.Background(), "i1")
	var iie *model.InvalidInputError
	if !errors.As(err, &iie) {
		t.Errorf("%v != InvalidInputError", err)
	}
	session, _ := h.Get(context.Background(), "i1")
	if !session.Reviewing || session.InProgress {
		t.Errorf("%v left reviewing", session)
	}
}

func TestConfirmFailureReturnsToReviewing(t *testing.T) {
	backend := &backendMock{removeErr: errors.New("backend down")}
	storage := newStorageMock(model.InstallRecord{ID: "i1", Name: "Game One"})
	selection := &selectionMock{}
	h := newTestHandler(backend, storage, selection, nil)
	_ = h.Begin(context.Background(), "i1")
	_ = h.Acknowledge(context.Background(), "i1", true)
	if err := h.Confirm(context.Background(), "i1"); err == nil {
		t.Error("err == nil")
	}
	session, err := h.Get(context.Background(), "i1")
	if err != nil {
		t.Error("err != nil")
	}
	if !session.Reviewing || session.InProgress {
		t.Errorf("%v not back to reviewing", session)
	}
	if selection.cascades != 0 {
		t.Error("cascade ran after failed removal")
	}
	if _, err = storage.ReadInstall(context.Background(), "i1"); err != nil {
		t.Error("install dropped after failed removal")
	}
	// ------------------------------
	// falsy backend result counts as failure too
	backend.removeErr = nil
	backend.removed = false
	if err = h.Confirm(context.Background(), "i1"); err == nil {
		t.Error("err == nil")
	}
	session, _ = h.Get(context.Background(), "i1")
	if !session.Reviewing || session.InProgress {
		t.Errorf("%v not back to reviewing", session)
	}
}

func TestConfirmSuccess(t *testing.T) {
	backend := &backendMock{removed: true}
	storage := newStorageMock(
		model.InstallRecord{ID: "i1", Name: "Game One"},
		model.InstallRecord{ID: "i2", ManifestID: "g2", Name: "Game Two", Background: "bg2", Icon: "ic2"},
	)
	selection := &selectionMock{}
	games := []model.GameManifest{{ID: "g3", Name: "Game Three"}}
	h := newTestHandler(backend, storage, selection, games)
	_ = h.Begin(context.Background(), "i1")
	_ = h.Acknowledge(context.Background(), "i1", true)
	options := model.UninstallOptions{WipePrefix: true}
	_ = h.SetOptions(context.Background(), "i1", options)
	if err := h.Confirm(context.Background(), "i1"); err != nil {
		t.Error("err != nil")
	}
	backend.mu.Lock()
	if backend.lastID != "i1" {
		t.Errorf("%s != i1", backend.lastID)
	}
	if reflect.DeepEqual(options, backend.lastOptions) == false {
		t.Errorf("%v != %v", options, backend.lastOptions)
	}
	backend.mu.Unlock()
	if _, err := storage.ReadInstall(context.Background(), "i1"); err == nil {
		t.Error("install still in registry")
	}
	selection.mu.Lock()
	if selection.cascades != 1 {
		t.Errorf("%d != 1", selection.cascades)
	}
	a := []model.InstallRecord{{ID: "i2", ManifestID: "g2", Name: "Game Two", Background: "bg2", Icon: "ic2"}}
	if reflect.DeepEqual(a, selection.installs) == false {
		t.Errorf("%v != %v", a, selection.installs)
	}
	if reflect.DeepEqual(games, selection.games) == false {
		t.Errorf("%v != %v", games, selection.games)
	}
	selection.mu.Unlock()
	var nfe *model.NotFoundError
	if _, err := h.Get(context.Background(), "i1"); !errors.As(err, &nfe) {
		t.Error("session survived successful removal")
	}
}

func TestConfirmWhileInProgress(t *testing.T) {
	block := make(chan struct{})
	backend := &backendMock{removed: true, removeBlock: block}
	storage := newStorageMock(model.InstallRecord{ID: "i1", Name: "Game One"})
	h := newTestHandler(backend, storage, &selectionMock{}, nil)
	_ = h.Begin(context.Background(), "i1")
	_ = h.Acknowledge(context.Background(), "i1", true)
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- h.Confirm(context.Background(), "i1")
	}()
	for {
		session, err := h.Get(context.Background(), "i1")
		if err != nil {
			t.Fatal("err != nil")
		}
		if session.InProgress {
			break
		}
		time.Sleep(time.Millisecond)
	}
	var rbe *model.ResourceBusyError
	if err := h.Confirm(context.Background(), "i1"); !errors.As(err, &rbe) {
		t.Errorf("%v != ResourceBusyError", err)
	}
	if err := h.Cancel(context.Background(), "i1"); !errors.As(err, &rbe) {
		t.Errorf("%v != ResourceBusyError", err)
	}
	if err := h.Begin(context.Background(), "i1"); !errors.As(err, &rbe) {
		t.Errorf("%v != ResourceBusyError", err)
	}
	close(block)
	if err := <-firstDone; err != nil {
		t.Error("err != nil")
	}
}
