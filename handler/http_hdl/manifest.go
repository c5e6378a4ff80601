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

func getRunnerManifestsH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(lib_model.ManifestsPath, lib_model.RunnersPath), func(gc *gin.Context) {
		manifests, err := a.GetRunnerManifests(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, manifests)
	}
}

func getGameManifestsH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(lib_model.ManifestsPath, lib_model.GamesPath), func(gc *gin.Context) {
		manifests, err := a.GetGameManifests(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, manifests)
	}
}

func patchManifestUpdateH(a lib.Api) (string, string, gin.HandlerFunc) {
	return http.MethodPatch, path.Join(lib_model.ManifestsPath, lib_model.ManifestUpdatePath), func(gc *gin.Context) {
		jID, err := a.UpdateManifests(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}
