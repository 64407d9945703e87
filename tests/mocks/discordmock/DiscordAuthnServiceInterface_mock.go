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

package discordmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moonwalkers/moonmap/internal/authn/discord"
	sessionmodel "github.com/moonwalkers/moonmap/internal/session/model"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
)

// DiscordAuthnServiceInterfaceMock is a mock implementation of discord.DiscordAuthnServiceInterface.
type DiscordAuthnServiceInterfaceMock struct {
	mock.Mock
}

// NewDiscordAuthnServiceInterfaceMock creates a mock that asserts its expectations on cleanup.
func NewDiscordAuthnServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DiscordAuthnServiceInterfaceMock {
	m := &DiscordAuthnServiceInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// BuildAuthorizeURL provides a mock function.
func (_m *DiscordAuthnServiceInterfaceMock) BuildAuthorizeURL() string {
	ret := _m.Called()
	return ret.String(0)
}

// ExchangeCode provides a mock function.
func (_m *DiscordAuthnServiceInterfaceMock) ExchangeCode(ctx context.Context, code string) (*discord.Credential,
	*serviceerror.ServiceError) {
	ret := _m.Called(ctx, code)

	var r0 *discord.Credential
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*discord.Credential)
	}
	var r1 *serviceerror.ServiceError
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*serviceerror.ServiceError)
	}
	return r0, r1
}

// FetchIdentity provides a mock function.
func (_m *DiscordAuthnServiceInterfaceMock) FetchIdentity(ctx context.Context, accessToken string) (
	*sessionmodel.Identity, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, accessToken)

	var r0 *sessionmodel.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sessionmodel.Identity)
	}
	var r1 *serviceerror.ServiceError
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*serviceerror.ServiceError)
	}
	return r0, r1
}

// FetchMembership provides a mock function.
func (_m *DiscordAuthnServiceInterfaceMock) FetchMembership(ctx context.Context, accessToken string) (
	*discord.MembershipRecord, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, accessToken)

	var r0 *discord.MembershipRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*discord.MembershipRecord)
	}
	var r1 *serviceerror.ServiceError
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*serviceerror.ServiceError)
	}
	return r0, r1
}
