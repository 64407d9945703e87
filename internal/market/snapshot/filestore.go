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
	"fmt"
	"os"
	"path/filepath"
)

// Compile-time check to ensure fileStore implements SnapshotStoreInterface.
var _ SnapshotStoreInterface = (*fileStore)(nil)

// fileStore keeps one JSON file per key in a single directory.
type fileStore struct {
	directory string
}

// NewFileStore creates a file backed snapshot store rooted at directory, creating it if needed.
func NewFileStore(directory string) (SnapshotStoreInterface, error) {
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &fileStore{directory: directory}, nil
}

// Write atomically replaces the slot file so concurrent readers never see a partial document.
func (s *fileStore) Write(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.directory, "."+key+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.slotPath(key))
}

// Read returns the slot file contents.
func (s *fileStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(s.slotPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errSlotNotFound
	}
	return payload, err
}

// Ping checks that the directory exists and is a directory.
func (s *fileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.directory)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("snapshot path %s is not a directory", s.directory)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *fileStore) Close() error {
	return nil
}

func (s *fileStore) slotPath(key string) string {
	return filepath.Join(s.directory, key+".json")
}
