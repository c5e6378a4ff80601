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

	"github.com/gin-gonic/gin"
	"github.com/open-launcher/install-manager/lib"
	lib_model "github.com/open-launcher/install-manager/lib/model"
)

type runnerRequest struct {
	Family  string `json:"family"`
	Version string `json:"version"`
}

type deleteRunnerQuery struct {
	Family  string `form:"family"`
	Version string `form:"version"`
}

func getRunnerStatesH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, lib_model.RunnersPath, func(gc *gin.Context) {
		states, err := a.GetRunnerStates(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, states)
	}
}

func postRunnerH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, lib_model.RunnersPath, func(gc *gin.Context) {
		var req runnerRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		jID, err := a.InstallRunner(gc.Request.Context(), req.Family, req.Version)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func deleteRunnerH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodDelete, lib_model.RunnersPath, func(gc *gin.Context) {
		query := deleteRunnerQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		jID, err := a.RemoveRunner(gc.Request.Context(), query.Family, query.Version)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}
