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

package snapshot

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moonwalkers/moonmap/internal/system/config"
	"github.com/moonwalkers/moonmap/internal/system/database/provider"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

// NewSnapshotStore opens the snapshot backend selected in the runtime configuration.
// Relative file store directories and SQLite paths are resolved against the server home.
func NewSnapshotStore(ctx context.Context) (SnapshotStoreInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SnapshotStoreFactory"))
	runtime := config.GetServerRuntime()
	cfg := runtime.Config.Snapshot

	switch cfg.Type {
	case config.SnapshotTypeFile, "":
		dir := cfg.Directory
		if dir == "" {
			dir = config.DefaultSnapshotDirectory
		}
		dir = runtime.ResolvePath(dir)
		logger.Debug("Using file snapshot store", log.String("directory", dir))
		return NewFileStore(dir)
	case config.SnapshotTypeDatabase:
		dbClient, err := provider.OpenDBClient(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		logger.Debug("Using database snapshot store", log.String("type", cfg.Database.Type))
		store, err := NewDBStore(ctx, dbClient)
		if err != nil {
			_ = dbClient.Close()
			return nil, err
		}
		return store, nil
	case config.SnapshotTypeRedis:
		logger.Debug("Using redis snapshot store", log.String("address", cfg.Redis.Address))
		return NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})), nil
	default:
		return nil, fmt.Errorf("unsupported snapshot store type: %q", cfg.Type)
	}
}
