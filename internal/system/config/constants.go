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

package config

// Defaults applied when the deployment file leaves a setting empty.
const (
	DefaultServerPort            = 8090
	DefaultDiscordAPIBase        = "https://discord.com/api"
	DefaultQuoteBaseURL          = "https://finnhub.io/api/v1"
	DefaultQuoteTimeoutSeconds   = 6
	DefaultQuoteCacheTTLSeconds  = 180
	DefaultChainBaseURL          = "https://api.tradier.com"
	DefaultMarketTimeZone        = "America/New_York"
	DefaultFreezeStart           = "00:00"
	DefaultFreezeEnd             = "09:30"
	DefaultSymbol                = "SPY"
	DefaultSnapshotDirectory     = ".cache/snapshots"
	DefaultSessionCookieName     = "moonmap_session"
	DefaultSessionValidityPeriod = 12 * 60 * 60
)

// Discord OAuth scopes requested by the dashboard.
const (
	ScopeIdentify         = "identify"
	ScopeGuildMembersRead = "guilds.members.read"
)

// Snapshot store backends.
const (
	SnapshotTypeFile     = "file"
	SnapshotTypeDatabase = "database"
	SnapshotTypeRedis    = "redis"
)

// Database types supported by the database snapshot store.
const (
	DataSourceTypePostgres = "postgres"
	DataSourceTypeSQLite   = "sqlite"
)
