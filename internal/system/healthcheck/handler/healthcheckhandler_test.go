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

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonwalkers/moonmap/internal/system/healthcheck/model"
	"github.com/moonwalkers/moonmap/internal/system/healthcheck/service"
)

func newMux(check service.HealthCheckFunc) *http.ServeMux {
	svc := service.NewHealthCheckService()
	svc.Register("SnapshotStore", check)
	mux := http.NewServeMux()
	Initialize(mux, svc)
	return mux
}

func TestLiveness(t *testing.T) {
	mux := newMux(func(context.Context) error { return errors.New("down") })
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadinessUp(t *testing.T) {
	mux := newMux(func(context.Context) error { return nil })
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var status model.ServerStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, model.StatusUp, status.Status)
}

func TestReadinessDown(t *testing.T) {
	mux := newMux(func(context.Context) error { return errors.New("down") })
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var status model.ServerStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, model.StatusDown, status.Status)
	assert.Equal(t, "SnapshotStore", status.ServiceStatus[0].ServiceName)
}

func TestReadinessRejectsPost(t *testing.T) {
	mux := newMux(func(context.Context) error { return nil })
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health/readiness", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
