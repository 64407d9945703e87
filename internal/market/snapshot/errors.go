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
	"errors"

	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
)

// errSlotNotFound is returned by the store backends when a slot holds no document.
var errSlotNotFound = errors.New("snapshot slot not found")

// Client errors for snapshot operations.
var (
	// ErrorSnapshotNotFound is the error when no snapshot exists for the symbol.
	ErrorSnapshotNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SNAP-1001",
		Error:            "Snapshot not found",
		ErrorDescription: "No snapshot has been saved for the symbol",
	}
	// ErrorInvalidSymbol is the error when a symbol yields an empty storage key.
	ErrorInvalidSymbol = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SNAP-1002",
		Error:            "Invalid symbol",
		ErrorDescription: "The symbol does not contain any characters usable as a storage key",
	}
)

// Server errors for snapshot operations.
var (
	// ErrorSnapshotCorrupt is the error when a persisted snapshot cannot be parsed.
	ErrorSnapshotCorrupt = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SNAP-5001",
		Error:            "Corrupt snapshot",
		ErrorDescription: "The persisted snapshot document could not be parsed",
	}
	// ErrorSnapshotReadFailed is the error when the snapshot slot cannot be read.
	ErrorSnapshotReadFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SNAP-5002",
		Error:            "Snapshot read failed",
		ErrorDescription: "An error occurred while reading the snapshot slot",
	}
	// ErrorSnapshotWriteFailed is the error when a snapshot cannot be serialized or written.
	ErrorSnapshotWriteFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SNAP-5003",
		Error:            "Snapshot write failed",
		ErrorDescription: "An error occurred while writing the snapshot slot",
	}
)
