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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"
	"time"

	"github.com/moonwalkers/moonmap/internal/system/healthcheck/model"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const checkTimeout = 3 * time.Second

// HealthCheckFunc checks a dependency and returns an error when it is not usable.
type HealthCheckFunc func(ctx context.Context) error

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) model.ServerStatus
}

// HealthCheckService checks a fixed set of named dependencies.
type HealthCheckService struct {
	names  []string
	checks map[string]HealthCheckFunc
}

// NewHealthCheckService creates a health check service with no dependencies.
func NewHealthCheckService() *HealthCheckService {
	return &HealthCheckService{checks: make(map[string]HealthCheckFunc)}
}

// Register adds a named dependency check. Checks are reported in registration order.
func (hcs *HealthCheckService) Register(name string, check HealthCheckFunc) {
	if _, exists := hcs.checks[name]; !exists {
		hcs.names = append(hcs.names, name)
	}
	hcs.checks[name] = check
}

// CheckReadiness checks every registered dependency. The server is down if any dependency is.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	status := model.StatusUp
	statuses := make([]model.ServiceStatus, 0, len(hcs.names))
	for _, name := range hcs.names {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := hcs.checks[name](checkCtx)
		cancel()

		serviceStatus := model.ServiceStatus{ServiceName: name, Status: model.StatusUp}
		if err != nil {
			logger.Error("Dependency check failed", log.String("service", name), log.Error(err))
			serviceStatus.Status = model.StatusDown
			status = model.StatusDown
		}
		statuses = append(statuses, serviceStatus)
	}

	return model.ServerStatus{
		Status:        status,
		ServiceStatus: statuses,
	}
}
