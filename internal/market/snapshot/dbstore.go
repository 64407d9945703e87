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
	"time"

	dbclient "github.com/moonwalkers/moonmap/internal/system/database/client"
)

// Compile-time check to ensure dbStore implements SnapshotStoreInterface.
var _ SnapshotStoreInterface = (*dbStore)(nil)

// dbStore keeps one row per key in the OPTION_SNAPSHOT table.
type dbStore struct {
	client dbclient.DBClientInterface
	clock  func() time.Time
}

// NewDBStore creates a database backed snapshot store and ensures its table exists.
func NewDBStore(ctx context.Context, client dbclient.DBClientInterface) (SnapshotStoreInterface, error) {
	if _, err := client.Execute(ctx, queryCreateSnapshotTable); err != nil {
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &dbStore{client: client, clock: time.Now}, nil
}

// Write upserts the row for key.
func (s *dbStore) Write(ctx context.Context, key string, payload []byte) error {
	_, err := s.client.Execute(ctx, queryUpsertSnapshot, key, string(payload), s.clock().UTC())
	return err
}

// Read returns the payload of the row for key.
func (s *dbStore) Read(ctx context.Context, key string) ([]byte, error) {
	results, err := s.client.Query(ctx, querySelectSnapshot, key)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errSlotNotFound
	}

	payload, ok := results[0]["payload"].(string)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T", results[0]["payload"])
	}
	return []byte(payload), nil
}

// Ping checks that the database is reachable.
func (s *dbStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close closes the database client.
func (s *dbStore) Close() error {
	return s.client.Close()
}
