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
	"time"

	"github.com/open-launcher/install-manager/handler"
)

type Api struct {
	runnerHandler    handler.RunnerHandler
	settingsHandler  handler.SettingsHandler
	uninstallHandler handler.UninstallHandler
	selectionHandler handler.SelectionHandler
	manifestSrc      handler.ManifestSource
	storageHandler   handler.StorageHandler
	backendClient    handler.BackendClient
	jobHandler       handler.JobHandler
	dbTimeout        time.Duration
}

func New(runnerHandler handler.RunnerHandler, settingsHandler handler.SettingsHandler, uninstallHandler handler.UninstallHandler, selectionHandler handler.SelectionHandler, manifestSrc handler.ManifestSource, storageHandler handler.StorageHandler, backendClient handler.BackendClient, jobHandler handler.JobHandler, dbTimeout time.Duration) *Api {
	return &Api{
		runnerHandler:    runnerHandler,
		settingsHandler:  settingsHandler,
		uninstallHandler: uninstallHandler,
		selectionHandler: selectionHandler,
		manifestSrc:      manifestSrc,
		storageHandler:   storageHandler,
		backendClient:    backendClient,
		jobHandler:       jobHandler,
		dbTimeout:        dbTimeout,
	}
}
