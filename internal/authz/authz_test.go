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

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moonwalkers/moonmap/internal/authn/discord"
)

func TestHasRequiredRole(t *testing.T) {
	tests := []struct {
		name     string
		record   *discord.MembershipRecord
		roleID   string
		expected bool
	}{
		{"nil record", nil, "222", false},
		{"no roles", &discord.MembershipRecord{}, "222", false},
		{"role missing", &discord.MembershipRecord{Roles: []string{"111", "333"}}, "222", false},
		{"role present", &discord.MembershipRecord{Roles: []string{"111", "222"}}, "222", true},
		{"role first", &discord.MembershipRecord{Roles: []string{"222", "111"}}, "222", true},
		{"duplicates", &discord.MembershipRecord{Roles: []string{"222", "222"}}, "222", true},
		{"duplicates without role", &discord.MembershipRecord{Roles: []string{"111", "111"}}, "222", false},
		{"prefix is not a match", &discord.MembershipRecord{Roles: []string{"2222"}}, "222", false},
		{"empty required role", &discord.MembershipRecord{Roles: []string{""}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasRequiredRole(tt.record, tt.roleID))
		})
	}
}

func TestHasRequiredRoleIgnoresOrder(t *testing.T) {
	roles := []string{"5", "4", "3", "2", "1"}
	for i := range roles {
		rotated := append(append([]string{}, roles[i:]...), roles[:i]...)
		for _, role := range roles {
			assert.True(t, HasRequiredRole(&discord.MembershipRecord{Roles: rotated}, role))
		}
		assert.False(t, HasRequiredRole(&discord.MembershipRecord{Roles: rotated}, "6"))
	}
}
