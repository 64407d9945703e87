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

package snapshotmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moonwalkers/moonmap/internal/market/model"
	"github.com/moonwalkers/moonmap/internal/market/snapshot"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
)

// SnapshotServiceInterfaceMock is a mock implementation of snapshot.SnapshotServiceInterface.
type SnapshotServiceInterfaceMock struct {
	mock.Mock
}

// NewSnapshotServiceInterfaceMock creates a mock that asserts its expectations on cleanup.
func NewSnapshotServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *SnapshotServiceInterfaceMock {
	m := &SnapshotServiceInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Save provides a mock function.
func (_m *SnapshotServiceInterfaceMock) Save(ctx context.Context, symbol string, price *float64,
	dataset *model.Dataset) *serviceerror.ServiceError {
	ret := _m.Called(ctx, symbol, price, dataset)
	if rf, ok := ret.Get(0).(func(context.Context, string, *float64, *model.Dataset) *serviceerror.ServiceError); ok {
		return rf(ctx, symbol, price, dataset)
	}
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(*serviceerror.ServiceError)
}

// Load provides a mock function.
func (_m *SnapshotServiceInterfaceMock) Load(ctx context.Context, symbol string) (*snapshot.Snapshot,
	*serviceerror.ServiceError) {
	ret := _m.Called(ctx, symbol)

	var r0 *snapshot.Snapshot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*snapshot.Snapshot)
	}
	var r1 *serviceerror.ServiceError
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*serviceerror.ServiceError)
	}
	return r0, r1
}

// CheckHealth provides a mock function.
func (_m *SnapshotServiceInterfaceMock) CheckHealth(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
