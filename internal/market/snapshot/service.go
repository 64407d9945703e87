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
	"encoding/json"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/moonwalkers/moonmap/internal/market/model"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const serviceLoggerComponentName = "SnapshotService"

// SnapshotServiceInterface persists and restores the last good dataset of each symbol.
type SnapshotServiceInterface interface {
	Save(ctx context.Context, symbol string, price *float64, dataset *model.Dataset) *serviceerror.ServiceError
	Load(ctx context.Context, symbol string) (*Snapshot, *serviceerror.ServiceError)
	CheckHealth(ctx context.Context) error
}

// SnapshotService serializes snapshots into the slot of a SnapshotStoreInterface.
type SnapshotService struct {
	store    SnapshotStoreInterface
	location *time.Location
	now      func() time.Time
}

// NewSnapshotService creates a snapshot service. Timestamps are recorded in location,
// which defaults to UTC when nil.
func NewSnapshotService(store SnapshotStoreInterface, location *time.Location) SnapshotServiceInterface {
	if location == nil {
		location = time.UTC
	}
	return &SnapshotService{
		store:    store,
		location: location,
		now:      time.Now,
	}
}

// Save overwrites the symbol's slot with the given price and dataset.
// An empty dataset or an empty storage key leaves the slot untouched.
func (s *SnapshotService) Save(ctx context.Context, symbol string, price *float64,
	dataset *model.Dataset) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName),
		log.String(log.LoggerKeySymbol, symbol))

	if dataset.IsEmpty() {
		logger.Debug("Skipping snapshot save for an empty dataset")
		return nil
	}
	key := SanitizeKey(symbol)
	if key == "" {
		logger.Debug("Skipping snapshot save for a symbol without a usable key")
		return &ErrorInvalidSymbol
	}

	doc := document{
		Timestamp: s.now().In(s.location).Format(time.RFC3339),
		Spot:      finiteOrNil(price),
		Columns:   dataset.Columns,
		Records:   make([]map[string]interface{}, 0, len(dataset.Rows)),
	}
	for _, row := range dataset.Rows {
		record := make(map[string]interface{}, len(row))
		for col, value := range row {
			record[col] = jsonSafe(value)
		}
		doc.Records = append(doc.Records, record)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		logger.Error("Failed to serialize snapshot", log.Error(err))
		return &ErrorSnapshotWriteFailed
	}
	if err := s.store.Write(ctx, key, payload); err != nil {
		logger.Error("Failed to write snapshot", log.String("key", key), log.Error(err))
		return &ErrorSnapshotWriteFailed
	}

	logger.Debug("Snapshot saved", log.String("key", key), log.Int("rows", len(doc.Records)))
	return nil
}

// Load reads the symbol's slot. A missing slot is a client error, an unreadable or
// unparseable one a server error; callers treat both as "no snapshot".
func (s *SnapshotService) Load(ctx context.Context, symbol string) (*Snapshot, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName),
		log.String(log.LoggerKeySymbol, symbol))

	key := SanitizeKey(symbol)
	if key == "" {
		return nil, &ErrorSnapshotNotFound
	}

	payload, err := s.store.Read(ctx, key)
	if err != nil {
		if errors.Is(err, errSlotNotFound) {
			logger.Debug("No snapshot saved", log.String("key", key))
			return nil, &ErrorSnapshotNotFound
		}
		logger.Error("Failed to read snapshot", log.String("key", key), log.Error(err))
		return nil, &ErrorSnapshotReadFailed
	}

	snap, err := s.decode(symbol, payload)
	if err != nil {
		logger.Warn("Discarding corrupt snapshot", log.String("key", key), log.Error(err))
		return nil, &ErrorSnapshotCorrupt
	}
	return snap, nil
}

// CheckHealth reports whether the snapshot backend is usable.
func (s *SnapshotService) CheckHealth(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// decode parses a persisted document. Columns missing from the document are derived
// from the record keys in sorted order.
func (s *SnapshotService) decode(symbol string, payload []byte) (*Snapshot, error) {
	var doc document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}

	columns := doc.Columns
	if len(columns) == 0 {
		columns = recordColumns(doc.Records)
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col]; dup {
			return nil, errors.New("duplicate column " + col)
		}
		seen[col] = struct{}{}
	}

	dataset := model.NewDataset(columns...)
	for _, record := range doc.Records {
		dataset.AddRow(record)
	}

	var ts time.Time
	if doc.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, doc.Timestamp)
		if err == nil {
			ts = parsed.In(s.location)
		}
	}

	return &Snapshot{
		Symbol:    symbol,
		Timestamp: ts,
		Price:     finiteOrNil(doc.Spot),
		Dataset:   dataset,
	}, nil
}

func recordColumns(records []map[string]interface{}) []string {
	set := map[string]struct{}{}
	for _, record := range records {
		for col := range record {
			set[col] = struct{}{}
		}
	}
	columns := make([]string, 0, len(set))
	for col := range set {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

// jsonSafe maps non-finite floats to null since JSON cannot represent them.
func jsonSafe(value interface{}) interface{} {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil
		}
	}
	return value
}
