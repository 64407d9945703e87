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

package dashboard

import (
	"time"

	"github.com/moonwalkers/moonmap/internal/market/freshness"
	"github.com/moonwalkers/moonmap/internal/market/quote"
)

// Response statuses.
const (
	StatusOK              = "ok"
	StatusLoginRequired   = "login_required"
	StatusAccessDenied    = "access_denied"
	StatusDataUnavailable = "data_unavailable"
)

// DataUnavailableMessage is shown when no options chain could be obtained for the symbol.
const DataUnavailableMessage = "Could not fetch options chain for this symbol."

// LoginResponse asks the visitor to sign in.
type LoginResponse struct {
	Status   string `json:"status"`
	LoginURL string `json:"login_url"`
}

// DeniedResponse tells the visitor why the request stopped.
type DeniedResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	LoginURL string `json:"login_url,omitempty"`
}

// UserResponse is the signed-in visitor.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// DashboardResponse is everything a renderer needs to draw the dashboard.
type DashboardResponse struct {
	Status         string                   `json:"status"`
	User           UserResponse             `json:"user"`
	Symbol         string                   `json:"symbol"`
	Quote          quote.Quote              `json:"quote"`
	ReferencePrice *float64                 `json:"reference_price"`
	Source         freshness.Source         `json:"source"`
	Frozen         bool                     `json:"frozen"`
	SnapshotTime   *time.Time               `json:"snapshot_time,omitempty"`
	Columns        []string                 `json:"columns"`
	Rows           []map[string]interface{} `json:"rows"`
	Analysis       *Analysis                `json:"analysis,omitempty"`
}
