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

package freshness

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moonwalkers/moonmap/internal/market/model"
	"github.com/moonwalkers/moonmap/internal/market/snapshot"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
	"github.com/moonwalkers/moonmap/tests/mocks/snapshotmock"
)

type FreshnessServiceTestSuite struct {
	suite.Suite
	zone      *time.Location
	snapshots *snapshotmock.SnapshotServiceInterfaceMock
	service   FreshnessServiceInterface
	inWindow  time.Time
	outWindow time.Time
}

func TestFreshnessServiceSuite(t *testing.T) {
	suite.Run(t, new(FreshnessServiceTestSuite))
}

func (suite *FreshnessServiceTestSuite) SetupTest() {
	suite.zone = time.FixedZone("EST", -5*60*60)
	suite.snapshots = snapshotmock.NewSnapshotServiceInterfaceMock(suite.T())
	window := Window{Location: suite.zone, Start: 0, End: 9*time.Hour + 30*time.Minute}
	suite.service = NewFreshnessService(window, suite.snapshots)
	suite.inWindow = time.Date(2026, 3, 2, 8, 0, 0, 0, suite.zone)
	suite.outWindow = time.Date(2026, 3, 2, 11, 0, 0, 0, suite.zone)
}

func floatPtr(v float64) *float64 {
	return &v
}

func dataset(strikes ...float64) *model.Dataset {
	ds := model.NewDataset("strike")
	for _, s := range strikes {
		ds.AddRow(map[string]interface{}{"strike": s})
	}
	return ds
}

func liveFetch(price *float64, ds *model.Dataset, svcErr *serviceerror.ServiceError, calls *int) LiveFetchFunc {
	return func(context.Context, string) (*float64, *model.Dataset, *serviceerror.ServiceError) {
		*calls++
		return price, ds, svcErr
	}
}

func (suite *FreshnessServiceTestSuite) TestOutsideWindowUsesLiveAndSaves() {
	calls := 0
	live := dataset(450, 455)
	suite.snapshots.On("Save", mock.Anything, "SPY", floatPtr(512.0), live).Return(nil).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.outWindow,
		liveFetch(floatPtr(512.0), live, nil, &calls))

	suite.Equal(1, calls)
	suite.Equal(SourceLive, result.Source)
	suite.False(result.Frozen)
	suite.Equal(512.0, *result.Price)
	suite.Same(live, result.Dataset)
	suite.Nil(result.SnapshotTime)
	suite.snapshots.AssertNotCalled(suite.T(), "Load", mock.Anything, mock.Anything)
}

func (suite *FreshnessServiceTestSuite) TestInsideWindowSnapshotDatasetOverridesLive() {
	calls := 0
	live := dataset(1)
	snapTime := time.Date(2026, 2, 27, 15, 59, 0, 0, suite.zone)
	snap := &snapshot.Snapshot{Symbol: "SPY", Timestamp: snapTime, Price: floatPtr(500.0), Dataset: dataset(450, 455, 460)}
	suite.snapshots.On("Load", mock.Anything, "SPY").Return(snap, nil).Once()
	suite.snapshots.On("Save", mock.Anything, "SPY", floatPtr(510.0), live).Return(nil).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.inWindow,
		liveFetch(floatPtr(510.0), live, nil, &calls))

	suite.Equal(1, calls)
	suite.True(result.Frozen)
	suite.Equal(SourceSnapshot, result.Source)
	suite.Same(snap.Dataset, result.Dataset)
	// Live price wins over the snapshot price when available.
	suite.Equal(510.0, *result.Price)
	suite.Require().NotNil(result.SnapshotTime)
	suite.True(snapTime.Equal(*result.SnapshotTime))
}

func (suite *FreshnessServiceTestSuite) TestInsideWindowSnapshotPriceFillsMissingLivePrice() {
	calls := 0
	snap := &snapshot.Snapshot{Symbol: "SPY", Price: floatPtr(500.0), Dataset: dataset(450)}
	suite.snapshots.On("Load", mock.Anything, "SPY").Return(snap, nil).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.inWindow,
		liveFetch(nil, model.NewDataset("strike"), nil, &calls))

	suite.Equal(500.0, *result.Price)
	suite.Equal(SourceSnapshot, result.Source)
	suite.Nil(result.SnapshotTime)
	suite.snapshots.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FreshnessServiceTestSuite) TestInsideWindowMissingSnapshotFallsBackToLive() {
	calls := 0
	live := dataset(450)
	suite.snapshots.On("Load", mock.Anything, "SPY").Return(nil, &snapshot.ErrorSnapshotNotFound).Once()
	suite.snapshots.On("Save", mock.Anything, "SPY", floatPtr(1.0), live).Return(nil).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.inWindow,
		liveFetch(floatPtr(1.0), live, nil, &calls))

	suite.True(result.Frozen)
	suite.Equal(SourceLive, result.Source)
	suite.Same(live, result.Dataset)
}

func (suite *FreshnessServiceTestSuite) TestInsideWindowCorruptSnapshotFallsBackToLive() {
	calls := 0
	suite.snapshots.On("Load", mock.Anything, "SPY").Return(nil, &snapshot.ErrorSnapshotCorrupt).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.inWindow,
		liveFetch(nil, nil, nil, &calls))

	suite.Equal(SourceLive, result.Source)
	suite.True(result.Dataset.IsEmpty())
	suite.Nil(result.Price)
}

func (suite *FreshnessServiceTestSuite) TestInsideWindowEmptySnapshotIsIgnored() {
	calls := 0
	live := dataset(450)
	snap := &snapshot.Snapshot{Symbol: "SPY", Price: floatPtr(9.0), Dataset: model.NewDataset("strike")}
	suite.snapshots.On("Load", mock.Anything, "SPY").Return(snap, nil).Once()
	suite.snapshots.On("Save", mock.Anything, "SPY", (*float64)(nil), live).Return(nil).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.inWindow,
		liveFetch(nil, live, nil, &calls))

	suite.Equal(SourceLive, result.Source)
	suite.Nil(result.Price)
}

func (suite *FreshnessServiceTestSuite) TestLiveFailureDegradesAndIsNotSaved() {
	calls := 0
	svcErr := &serviceerror.ServiceError{Code: "CHAIN-5001"}
	snap := &snapshot.Snapshot{Symbol: "SPY", Price: floatPtr(500.0), Dataset: dataset(450)}
	suite.snapshots.On("Load", mock.Anything, "SPY").Return(snap, nil).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.inWindow,
		liveFetch(floatPtr(1.0), dataset(1), svcErr, &calls))

	suite.Equal(1, calls)
	suite.Equal(SourceSnapshot, result.Source)
	suite.Equal(500.0, *result.Price)
	suite.snapshots.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FreshnessServiceTestSuite) TestLiveFailureOutsideWindowIsEmpty() {
	calls := 0

	result := suite.service.Resolve(context.Background(), "SPY", suite.outWindow,
		liveFetch(nil, nil, &serviceerror.ServiceError{Code: "X"}, &calls))

	suite.Equal(SourceLive, result.Source)
	suite.NotNil(result.Dataset)
	suite.True(result.Dataset.IsEmpty())
	suite.Nil(result.Price)
}

func (suite *FreshnessServiceTestSuite) TestSaveFailureDoesNotAffectResult() {
	calls := 0
	live := dataset(450)
	suite.snapshots.On("Save", mock.Anything, "SPY", floatPtr(2.0), live).
		Return(&snapshot.ErrorSnapshotWriteFailed).Once()

	result := suite.service.Resolve(context.Background(), "SPY", suite.outWindow,
		liveFetch(floatPtr(2.0), live, nil, &calls))

	suite.Same(live, result.Dataset)
	suite.Equal(2.0, *result.Price)
}

func (suite *FreshnessServiceTestSuite) TestIsFreezeWindow() {
	suite.True(suite.service.IsFreezeWindow(suite.inWindow))
	suite.False(suite.service.IsFreezeWindow(suite.outWindow))
}
