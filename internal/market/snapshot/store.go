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

import "context"

// SnapshotStoreInterface is a symbol-keyed, single-slot byte store.
// Writing a slot replaces the previous document; there is no versioning or locking.
type SnapshotStoreInterface interface {
	// Write replaces the document held in the slot for key.
	Write(ctx context.Context, key string, payload []byte) error
	// Read returns the document held in the slot for key, or errSlotNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// Ping checks that the backend is usable.
	Ping(ctx context.Context) error
	// Close releases the resources held by the backend.
	Close() error
}
