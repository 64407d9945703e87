/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package http provides the bounded HTTP client used for every outbound call.
package http

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds every outbound call that does not ask for a tighter limit.
	DefaultTimeout = 10 * time.Second
	// UserAgent identifies the server to upstream APIs.
	UserAgent = "moonmap (+https://github.com/moonwalkers/moonmap)"
)

// HTTPClientInterface defines the interface for HTTP client operations.
type HTTPClientInterface interface {
	// Do executes an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
	// Client exposes the underlying client for libraries that need a *http.Client.
	Client() *http.Client
}

// HTTPClient implements HTTPClientInterface.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a client bounded by DefaultTimeout.
func NewHTTPClient() HTTPClientInterface {
	return NewHTTPClientWithTimeout(DefaultTimeout)
}

// NewHTTPClientWithTimeout creates a client bounded by timeout. A non-positive
// timeout falls back to DefaultTimeout, so outbound calls are never unbounded.
func NewHTTPClientWithTimeout(timeout time.Duration) HTTPClientInterface {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &userAgentTransport{base: http.DefaultTransport},
		},
	}
}

// NewHTTPClientWithConfig wraps a caller supplied client as is.
func NewHTTPClientWithConfig(client *http.Client) HTTPClientInterface {
	return &HTTPClient{client: client}
}

// Do executes an HTTP request and returns an HTTP response.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// Client returns the wrapped *http.Client.
func (c *HTTPClient) Client() *http.Client {
	return c.client
}

// userAgentTransport sets UserAgent on requests that do not carry one.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return t.base.RoundTrip(req)
}
