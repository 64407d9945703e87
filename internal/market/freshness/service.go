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

// Package freshness decides whether a request is served live options-chain data or the
// persisted snapshot, and keeps the snapshot refreshed from successful live fetches.
package freshness

import (
	"context"
	"time"

	"github.com/moonwalkers/moonmap/internal/market/model"
	"github.com/moonwalkers/moonmap/internal/market/snapshot"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const loggerComponentName = "FreshnessService"

// Source identifies where a resolved dataset came from.
type Source string

const (
	// SourceLive means the dataset came from the live fetch.
	SourceLive Source = "live"
	// SourceSnapshot means the dataset came from the persisted snapshot.
	SourceSnapshot Source = "snapshot"
)

// LiveFetchFunc fetches the live reference price and options-chain dataset of a symbol.
type LiveFetchFunc func(ctx context.Context, symbol string) (*float64, *model.Dataset, *serviceerror.ServiceError)

// Result is the resolved price and dataset for a request.
type Result struct {
	Price        *float64
	Dataset      *model.Dataset
	Source       Source
	Frozen       bool
	SnapshotTime *time.Time
}

// FreshnessServiceInterface resolves the data a request is served.
type FreshnessServiceInterface interface {
	IsFreezeWindow(now time.Time) bool
	Resolve(ctx context.Context, symbol string, now time.Time, liveFetch LiveFetchFunc) Result
}

// FreshnessService applies the freeze window policy over a snapshot service.
type FreshnessService struct {
	window    Window
	snapshots snapshot.SnapshotServiceInterface
}

// NewFreshnessService creates a freshness service.
func NewFreshnessService(window Window, snapshots snapshot.SnapshotServiceInterface) FreshnessServiceInterface {
	return &FreshnessService{
		window:    window,
		snapshots: snapshots,
	}
}

// IsFreezeWindow reports whether live chain data is considered unreliable at now.
func (s *FreshnessService) IsFreezeWindow(now time.Time) bool {
	return s.window.Contains(now)
}

// Resolve always runs the live fetch. Inside the freeze window a non-empty snapshot
// dataset replaces the live dataset, while the snapshot price only fills in a missing
// live price. A successful non-empty live fetch is saved as the new snapshot.
func (s *FreshnessService) Resolve(ctx context.Context, symbol string, now time.Time,
	liveFetch LiveFetchFunc) Result {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySymbol, symbol))

	livePrice, liveDataset, svcErr := liveFetch(ctx, symbol)
	liveOK := svcErr == nil
	if !liveOK {
		logger.Warn("Live fetch failed", log.String("code", svcErr.Code))
		livePrice, liveDataset = nil, nil
	}
	if liveDataset == nil {
		liveDataset = model.NewDataset()
	}

	result := Result{
		Price:   livePrice,
		Dataset: liveDataset,
		Source:  SourceLive,
	}

	if s.IsFreezeWindow(now) {
		result.Frozen = true
		snap, loadErr := s.snapshots.Load(ctx, symbol)
		switch {
		case loadErr != nil:
			logger.Debug("No usable snapshot in freeze window", log.String("code", loadErr.Code))
		case snap.Dataset.IsEmpty():
			logger.Debug("Ignoring empty snapshot in freeze window")
		default:
			result.Dataset = snap.Dataset
			result.Source = SourceSnapshot
			if !snap.Timestamp.IsZero() {
				ts := snap.Timestamp
				result.SnapshotTime = &ts
			}
			if result.Price == nil {
				result.Price = snap.Price
			}
		}
	}

	if liveOK && !liveDataset.IsEmpty() {
		if saveErr := s.snapshots.Save(ctx, symbol, livePrice, liveDataset); saveErr != nil {
			logger.Warn("Snapshot save failed", log.String("code", saveErr.Code))
		}
	}

	return result
}
