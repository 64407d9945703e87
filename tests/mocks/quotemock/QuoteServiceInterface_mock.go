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

package quotemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moonwalkers/moonmap/internal/market/quote"
	"github.com/moonwalkers/moonmap/internal/system/cache"
)

// QuoteServiceInterfaceMock is a mock implementation of quote.QuoteServiceInterface.
type QuoteServiceInterfaceMock struct {
	mock.Mock
}

// NewQuoteServiceInterfaceMock creates a mock that asserts its expectations on cleanup.
func NewQuoteServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *QuoteServiceInterfaceMock {
	m := &QuoteServiceInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetQuote provides a mock function.
func (_m *QuoteServiceInterfaceMock) GetQuote(ctx context.Context, symbol string) quote.Quote {
	ret := _m.Called(ctx, symbol)
	return ret.Get(0).(quote.Quote)
}

// GetCache provides a mock function.
func (_m *QuoteServiceInterfaceMock) GetCache() cache.CacheInterface[quote.Quote] {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(cache.CacheInterface[quote.Quote])
}
