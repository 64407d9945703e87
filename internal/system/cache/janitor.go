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

package cache

import (
	"context"
	"time"

	"github.com/moonwalkers/moonmap/internal/system/log"
)

// cleanable is implemented by every cache that can drop its expired entries.
type cleanable interface {
	CleanupExpired()
	GetName() string
}

// StartJanitor periodically removes expired entries from the given caches until ctx is done.
func StartJanitor(ctx context.Context, interval time.Duration, caches ...cleanable) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheJanitor"))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Debug("Stopping cache janitor")
				return
			case <-ticker.C:
				for _, c := range caches {
					c.CleanupExpired()
				}
			}
		}
	}()
}
