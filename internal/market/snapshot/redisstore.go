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
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "snapshot:"

// Compile-time check to ensure redisStore implements SnapshotStoreInterface.
var _ SnapshotStoreInterface = (*redisStore)(nil)

// redisStore keeps one string value per key under the snapshot: prefix.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis backed snapshot store.
func NewRedisStore(client *redis.Client) SnapshotStoreInterface {
	return &redisStore{client: client}
}

// Write replaces the value held for key. Snapshots never expire.
func (s *redisStore) Write(ctx context.Context, key string, payload []byte) error {
	return s.client.Set(ctx, redisKeyPrefix+key, payload, 0).Err()
}

// Read returns the value held for key.
func (s *redisStore) Read(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errSlotNotFound
	}
	return payload, err
}

// Ping checks that redis is reachable.
func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *redisStore) Close() error {
	return s.client.Close()
}
