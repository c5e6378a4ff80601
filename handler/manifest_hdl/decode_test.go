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

package manifest_hdl

import (
	"os"
	"path"
	"reflect"
	"testing"

	"github.com/open-launcher/install-manager/lib/model"
)

func writeFile(t *testing.T, dirPath, name, content string) {
	t.Helper()
	if err := os.WriteFile(path.Join(dirPath, name), []byte(content), 0666); err != nil {
		t.Fatal("err != nil")
	}
}

func TestLoadManifests(t *testing.T) {
	dirPath := t.TempDir()
	writeFile(t, dirPath, "20-proton.yaml", "family: proton\nversions:\n  - version: \"9.0-1\"\n    source_url: https://example.com/proton.tar.xz\n")
	writeFile(t, dirPath, "10-wine-ge.yml", "family: wine-ge\nversions:\n  - version: \"8-26\"\n    source_url: https://example.com/wine-ge.tar.xz\n")
	writeFile(t, dirPath, "README.md", "not a manifest")
	items, err := loadManifests[model.RunnerManifestEntry](dirPath)
	if err != nil {
		t.Error("err != nil")
	}
	a := []model.RunnerManifestEntry{
		{
			Family:   "wine-ge",
			Versions: []model.RunnerVersion{{Version: "8-26", SourceURL: "https://example.com/wine-ge.tar.xz"}},
		},
		{
			Family:   "proton",
			Versions: []model.RunnerVersion{{Version: "9.0-1", SourceURL: "https://example.com/proton.tar.xz"}},
		},
	}
	if reflect.DeepEqual(a, items) == false {
		t.Errorf("%v != %v", a, items)
	}
	// ------------------------------
	items, err = loadManifests[model.RunnerManifestEntry](path.Join(dirPath, "missing"))
	if err != nil {
		t.Error("err != nil")
	}
	if items != nil {
		t.Errorf("%v != nil", items)
	}
	// ------------------------------
	writeFile(t, dirPath, "30-broken.yaml", "family: [")
	if _, err = loadManifests[model.RunnerManifestEntry](dirPath); err == nil {
		t.Error("err == nil")
	}
}

func TestLoadGameManifests(t *testing.T) {
	dirPath := t.TempDir()
	writeFile(t, dirPath, "game.yaml", "id: g1\nname: Game One\nbackground: flat-bg\nicon: flat-ic\nassets:\n  background: asset-bg\n  icon: asset-ic\n")
	items, err := loadManifests[model.GameManifest](dirPath)
	if err != nil {
		t.Error("err != nil")
	}
	a := []model.GameManifest{
		{
			ID:         "g1",
			Name:       "Game One",
			Background: "flat-bg",
			Icon:       "flat-ic",
			Assets:     &model.GameAssets{Background: "asset-bg", Icon: "asset-ic"},
		},
	}
	if reflect.DeepEqual(a, items) == false {
		t.Errorf("%v != %v", a, items)
	}
}
