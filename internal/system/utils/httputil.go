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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/moonwalkers/moonmap/internal/system/constants"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

// WriteJSON writes the given body as a JSON response with the provided status code.
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.GetLogger().Error("Failed to write JSON response", log.Error(err))
	}
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, code, desc string, statusCode int) {
	logger := log.GetLogger()
	logger.Debug("Error in HTTP response", log.String("error", code), log.String("description", desc))

	WriteJSON(w, statusCode, map[string]string{
		"error":             code,
		"error_description": desc,
	})
}

// GetURIWithQueryParams returns the base URI with the given query parameters appended.
func GetURIWithQueryParams(uri string, queryParams map[string]string) (string, error) {
	parsedURL, err := url.Parse(uri)
	if err != nil {
		return "", err
	}

	query := parsedURL.Query()
	for key, value := range queryParams {
		query.Set(key, value)
	}
	parsedURL.RawQuery = query.Encode()
	return parsedURL.String(), nil
}

// StripQueryParams returns the request's path and query with the named parameters removed.
func StripQueryParams(u *url.URL, names ...string) string {
	query := u.Query()
	for _, name := range names {
		query.Del(name)
	}

	stripped := url.URL{Path: u.Path, RawQuery: query.Encode()}
	if stripped.Path == "" {
		stripped.Path = "/"
	}
	return stripped.String()
}
