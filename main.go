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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	sb_logger "github.com/SENERGY-Platform/go-service-base/logger"
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/SENERGY-Platform/go-service-base/srv-base/types"
	"github.com/open-launcher/install-manager/api"
	backend_client "github.com/open-launcher/install-manager/clients/backend-client"
	"github.com/open-launcher/install-manager/handler/http_hdl"
	"github.com/open-launcher/install-manager/handler/job_hdl"
	"github.com/open-launcher/install-manager/handler/manifest_hdl"
	"github.com/open-launcher/install-manager/handler/runner_hdl"
	"github.com/open-launcher/install-manager/handler/selection_hdl"
	"github.com/open-launcher/install-manager/handler/settings_hdl"
	"github.com/open-launcher/install-manager/handler/storage_hdl"
	"github.com/open-launcher/install-manager/handler/uninstall_hdl"
	lib_model "github.com/open-launcher/install-manager/lib/model"
	"github.com/open-launcher/install-manager/util"
)

var version string

func main() {
	srv_base.PrintInfo(lib_model.ServiceName, version)

	flags := util.NewFlags()

	config, err := util.NewConfig(flags.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := util.InitLogger(config.Logger)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		var logFileError *sb_logger.LogFileError
		if errors.As(err, &logFileError) {
			os.Exit(1)
		}
	}
	if logFile != nil {
		defer logFile.Close()
	}

	util.Logger.Debugf("config: %s", srv_base.ToJsonStr(config))

	dbTimeout := time.Duration(config.Database.Timeout)

	storageHandler, err := storage_hdl.New(config.Database.Path)
	if err != nil {
		util.Logger.Error(err)
		return
	}
	defer storageHandler.Close()

	initCtx, initCF := context.WithTimeout(context.Background(), dbTimeout)
	err = storageHandler.Init(initCtx, config.Database.SchemaPath)
	initCF()
	if err != nil {
		util.Logger.Error(err)
		return
	}

	manifestHandler, err := manifest_hdl.New(config.Manifest.RepoUrl, config.Manifest.WorkdirPath)
	if err != nil {
		util.Logger.Error(err)
		return
	}

	backendClient := backend_client.New(http.DefaultClient, config.Backend.BaseUrl)

	ccHandler := ccjh.New(config.Jobs.BufferSize)
	jobCtx, jobCF := context.WithCancel(context.Background())
	defer jobCF()
	jobHandler := job_hdl.New(jobCtx, ccHandler)

	runnerHandler := runner_hdl.New(backendClient, manifestHandler)
	settingsHandler, err := settings_hdl.New(backendClient, storageHandler, dbTimeout)
	if err != nil {
		util.Logger.Error(err)
		return
	}
	selectionHandler := selection_hdl.New()
	uninstallHandler := uninstall_hdl.New(backendClient, storageHandler, manifestHandler, selectionHandler, dbTimeout)

	mApi := api.New(runnerHandler, settingsHandler, uninstallHandler, selectionHandler, manifestHandler, storageHandler, backendClient, jobHandler, dbTimeout)

	err = ccHandler.RunAsync(config.Jobs.MaxNumber, time.Duration(config.Jobs.CCHInterval*1000))
	if err != nil {
		util.Logger.Error(err)
		return
	}
	defer ccHandler.Stop()

	go func() {
		ticker := time.NewTicker(time.Duration(config.Jobs.JHInterval * 1000))
		defer ticker.Stop()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				if n := jobHandler.PurgeJobs(config.Jobs.MaxAge); n > 0 {
					util.Logger.Debugf("purged %d old jobs", n)
				}
			}
		}
	}()

	if jID, err := mApi.UpdateManifests(context.Background()); err != nil {
		util.Logger.Errorf("starting manifest update failed: %s", err)
	} else {
		util.Logger.Debugf("manifest update started (job %s)", jID)
	}
	if jID, err := mApi.RefreshInstalls(context.Background()); err != nil {
		util.Logger.Errorf("starting install refresh failed: %s", err)
	} else {
		util.Logger.Debugf("install refresh started (job %s)", jID)
	}

	httpHandler, err := http_hdl.New(mApi, map[string]string{
		lib_model.HeaderApiVer:  version,
		lib_model.HeaderSrvName: lib_model.ServiceName,
	})
	if err != nil {
		util.Logger.Error(err)
		return
	}

	listener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		util.Logger.Error(err)
		return
	}
	srv_base.StartServer(&http.Server{Handler: httpHandler}, listener, srv_base_types.DefaultShutdownSignals, util.Logger)
}
