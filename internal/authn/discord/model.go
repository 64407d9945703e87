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

package discord

import "time"

// Credential is the access token obtained from a code exchange. It is used for the
// identity and membership lookups of a single sign-in and never persisted.
type Credential struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
}

// IsEmpty reports whether the credential has no access token.
func (c *Credential) IsEmpty() bool {
	return c == nil || c.AccessToken == ""
}

// MembershipRecord is the visitor's membership in the configured guild.
type MembershipRecord struct {
	Roles    []string `json:"roles"`
	Nick     *string  `json:"nick"`
	JoinedAt string   `json:"joined_at"`
}

