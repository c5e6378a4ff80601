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

package http_hdl

import (
	"sort"

	gin_mw "github.com/SENERGY-Platform/gin-middleware"
	"github.com/gin-gonic/gin"
	"github.com/open-launcher/install-manager/lib"
	lib_model "github.com/open-launcher/install-manager/lib/model"
	"github.com/open-launcher/install-manager/util"
)

var routes = gin_mw.Routes[lib.Api]{
	getRunnerManifestsH,
	getGameManifestsH,
	patchManifestUpdateH,
	getRunnerStatesH,
	postRunnerH,
	deleteRunnerH,
	getInstallsH,
	patchInstallsRefreshH,
	getInstallSettingsH,
	patchInstallSettingH,
	patchInstallXxmiConfigH,
	postUninstallH,
	getUninstallSessionH,
	getUninstallPreviewH,
	patchUninstallAckH,
	putUninstallOptionsH,
	patchUninstallConfirmH,
	deleteUninstallH,
	getSelectionH,
	postFolderOpenH,
	postFolderEmptyH,
	postPrefixLaunchH,
	postShortcutH,
	deleteShortcutH,
	postAuthkeyH,
	postRepairH,
	getJobsH,
	getJobH,
	patchJobCancelH,
}

// SetRoutes
// @title Launcher Install Manager API
// @version 0.1.0
// @description Manages runner installations, install settings and uninstall reviews.
// @license.name Apache-2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func SetRoutes(e *gin.Engine, a lib.Api) error {
	rg := e.Group("")
	err := routes.Set(a, rg, util.Logger)
	if err != nil {
		return err
	}
	e.GET("/"+lib_model.HealthCheckPath, getServiceHealthH(a))
	return nil
}

func GetRoutes(e *gin.Engine) [][2]string {
	rInfo := e.Routes()
	sort.Slice(rInfo, func(i, j int) bool {
		return rInfo[i].Path < rInfo[j].Path
	})
	var routeList [][2]string
	for _, info := range rInfo {
		routeList = append(routeList, [2]string{info.Method, info.Path})
	}
	return routeList
}
