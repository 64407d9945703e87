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

package chainmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moonwalkers/moonmap/internal/market/model"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
)

// ChainClientInterfaceMock is a mock implementation of chain.ChainClientInterface.
type ChainClientInterfaceMock struct {
	mock.Mock
}

// NewChainClientInterfaceMock creates a mock that asserts its expectations on cleanup.
func NewChainClientInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChainClientInterfaceMock {
	m := &ChainClientInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FetchChain provides a mock function.
func (_m *ChainClientInterfaceMock) FetchChain(ctx context.Context, symbol string) (*float64, *model.Dataset,
	*serviceerror.ServiceError) {
	ret := _m.Called(ctx, symbol)

	var r0 *float64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*float64)
	}
	var r1 *model.Dataset
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*model.Dataset)
	}
	var r2 *serviceerror.ServiceError
	if ret.Get(2) != nil {
		r2 = ret.Get(2).(*serviceerror.ServiceError)
	}
	return r0, r1, r2
}
