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

// Package authz decides whether a guild member may see the dashboard.
package authz

import (
	"slices"

	"github.com/moonwalkers/moonmap/internal/authn/discord"
)

// HasRequiredRole reports whether the membership record lists the required role.
// A nil record means no roles.
func HasRequiredRole(record *discord.MembershipRecord, requiredRoleID string) bool {
	if record == nil || requiredRoleID == "" {
		return false
	}
	return slices.Contains(record.Roles, requiredRoleID)
}
