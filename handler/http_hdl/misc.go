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

type emptyFolderRequest struct {
	InstallID string `json:"install_id"`
	PathType  string `json:"path_type"`
}

type prefixLaunchRequest struct {
	InstallID  string `json:"install_id"`
	PathType   string `json:"path_type"`
	Executable string `json:"executable"`
}

type shortcutRequest struct {
	InstallID string `json:"install_id"`
	Type      string `json:"type"`
}

type deleteShortcutQuery struct {
	InstallID string `form:"install_id"`
	Type      string `form:"type"`
}

type installIDRequest struct {
	ID string `json:"id"`
}

func getSelectionH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, lib_model.SelectionPath, func(gc *gin.Context) {
		selection, err := a.GetSelection(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, selection)
	}
}

func postFolderOpenH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, path.Join(lib_model.FoldersPath, lib_model.FoldersOpenPath), func(gc *gin.Context) {
		var req lib_model.OpenFolderRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.OpenFolder(gc.Request.Context(), req)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func postFolderEmptyH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, path.Join(lib_model.FoldersPath, lib_model.FoldersEmptyPath), func(gc *gin.Context) {
		var req emptyFolderRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.EmptyFolder(gc.Request.Context(), req.InstallID, req.PathType)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func postPrefixLaunchH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, lib_model.PrefixLaunchPath, func(gc *gin.Context) {
		var req prefixLaunchRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.OpenInPrefix(gc.Request.Context(), req.InstallID, req.PathType, req.Executable)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func postShortcutH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, lib_model.ShortcutsPath, func(gc *gin.Context) {
		var req shortcutRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.AddShortcut(gc.Request.Context(), req.InstallID, req.Type)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func deleteShortcutH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodDelete, lib_model.ShortcutsPath, func(gc *gin.Context) {
		query := deleteShortcutQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.RemoveShortcut(gc.Request.Context(), query.InstallID, query.Type)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func postAuthkeyH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, lib_model.AuthkeyPath, func(gc *gin.Context) {
		var req installIDRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.CopyAuthkey(gc.Request.Context(), req.ID)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func postRepairH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, lib_model.RepairPath, func(gc *gin.Context) {
		var event lib_model.RepairEvent
		if err := gc.ShouldBindJSON(&event); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		err := a.StartGameRepair(gc.Request.Context(), event)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}
