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
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/open-launcher/install-manager/lib"
	lib_model "github.com/open-launcher/install-manager/lib/model"
)

type settingUpdateRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func getInstallsH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, lib_model.InstallsPath, func(gc *gin.Context) {
		installs, err := a.GetInstalls(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, installs)
	}
}

func patchInstallsRefreshH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPatch, path.Join(lib_model.InstallsPath, lib_model.InstallsRefreshPath), func(gc *gin.Context) {
		jID, err := a.RefreshInstalls(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func getInstallSettingsH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(lib_model.InstallsPath, ":id", lib_model.SettingsPath), func(gc *gin.Context) {
		settings, err := a.GetInstallSettings(gc.Request.Context(), gc.Param("id"))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, settings)
	}
}

func patchInstallSettingH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPatch, path.Join(lib_model.InstallsPath, ":id", lib_model.SettingsPath), func(gc *gin.Context) {
		var req settingUpdateRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.UpdateInstallSetting(gc.Request.Context(), gc.Param("id"), req.Key, req.Value)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func patchInstallXxmiConfigH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPatch, path.Join(lib_model.InstallsPath, ":id", lib_model.XxmiConfigPath), func(gc *gin.Context) {
		var patch lib_model.XxmiConfigPatch
		if err := gc.ShouldBindJSON(&patch); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.UpdateInstallXxmiConfig(gc.Request.Context(), gc.Param("id"), patch)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}
