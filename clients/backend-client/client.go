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

package backend_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/open-launcher/install-manager/lib/model"
)

const (
	commandsPath = "commands"
	eventsPath   = "events"
)

// Client speaks the backend's named-command protocol. Every command is a
// JSON POST to commands/<name>, events are posted to events/<name> and the
// response is discarded.
type Client struct {
	baseUrl    string
	httpClient *http.Client
}

func New(httpClient *http.Client, baseUrl string) *Client {
	return &Client{
		baseUrl:    baseUrl,
		httpClient: httpClient,
	}
}

func (c *Client) execCommand(ctx context.Context, name string, payload any, result any) error {
	u, err := url.JoinPath(c.baseUrl, commandsPath, name)
	if err != nil {
		return model.NewInternalError(err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return model.NewInternalError(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return model.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.NewInternalError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return model.NewInternalError(fmt.Errorf("%s: %s %s", name, resp.Status, bytes.TrimSpace(b)))
	}
	if result != nil {
		if err = json.NewDecoder(resp.Body).Decode(result); err != nil {
			return model.NewInternalError(err)
		}
	}
	return nil
}

func (c *Client) postEvent(ctx context.Context, name string, payload any) error {
	u, err := url.JoinPath(c.baseUrl, eventsPath, name)
	if err != nil {
		return model.NewInternalError(err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return model.NewInternalError(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return model.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.NewInternalError(err)
	}
	_ = resp.Body.Close()
	return nil
}
