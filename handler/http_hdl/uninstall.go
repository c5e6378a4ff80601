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

type uninstallAckRequest struct {
	Acknowledged bool `json:"acknowledged"`
}

func postUninstallH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, path.Join(lib_model.InstallsPath, ":id", lib_model.UninstallPath), func(gc *gin.Context) {
		err := a.BeginUninstall(gc.Request.Context(), gc.Param("id"))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func getUninstallSessionH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(lib_model.InstallsPath, ":id", lib_model.UninstallPath), func(gc *gin.Context) {
		session, err := a.GetUninstallSession(gc.Request.Context(), gc.Param("id"))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, session)
	}
}

func getUninstallPreviewH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(lib_model.InstallsPath, ":id", lib_model.UninstallPath, lib_model.UninstallPreviewPath), func(gc *gin.Context) {
		preview, err := a.GetUninstallPreview(gc.Request.Context(), gc.Param("id"))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, preview)
	}
}

func patchUninstallAckH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPatch, path.Join(lib_model.InstallsPath, ":id", lib_model.UninstallPath, lib_model.UninstallAckPath), func(gc *gin.Context) {
		var req uninstallAckRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.AcknowledgeUninstall(gc.Request.Context(), gc.Param("id"), req.Acknowledged)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func putUninstallOptionsH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPut, path.Join(lib_model.InstallsPath, ":id", lib_model.UninstallPath, lib_model.UninstallOptionsPath), func(gc *gin.Context) {
		var options lib_model.UninstallOptions
		if err := gc.ShouldBindJSON(&options); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.SetUninstallOptions(gc.Request.Context(), gc.Param("id"), options)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func patchUninstallConfirmH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPatch, path.Join(lib_model.InstallsPath, ":id", lib_model.UninstallPath, lib_model.UninstallConfirmPath), func(gc *gin.Context) {
		jID, err := a.ConfirmUninstall(gc.Request.Context(), gc.Param("id"))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func deleteUninstallH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodDelete, path.Join(lib_model.InstallsPath, ":id", lib_model.UninstallPath), func(gc *gin.Context) {
		err := a.CancelUninstall(gc.Request.Context(), gc.Param("id"))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}
