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

package snapshot

import dbmodel "github.com/moonwalkers/moonmap/internal/system/database/model"

var (
	// queryCreateSnapshotTable creates the snapshot table when it does not exist.
	queryCreateSnapshotTable = dbmodel.DBQuery{
		ID: "SNQ-SNAPSHOT-01",
		Query: "CREATE TABLE IF NOT EXISTS OPTION_SNAPSHOT (" +
			"SYMBOL_KEY VARCHAR(24) PRIMARY KEY, PAYLOAD TEXT NOT NULL, UPDATED_AT TIMESTAMP NOT NULL)",
	}
	// queryUpsertSnapshot replaces the snapshot held for a key.
	queryUpsertSnapshot = dbmodel.DBQuery{
		ID: "SNQ-SNAPSHOT-02",
		Query: "INSERT INTO OPTION_SNAPSHOT (SYMBOL_KEY, PAYLOAD, UPDATED_AT) VALUES (?, ?, ?) " +
			"ON CONFLICT (SYMBOL_KEY) DO UPDATE SET PAYLOAD = excluded.PAYLOAD, UPDATED_AT = excluded.UPDATED_AT",
		PostgresQuery: "INSERT INTO OPTION_SNAPSHOT (SYMBOL_KEY, PAYLOAD, UPDATED_AT) VALUES ($1, $2, $3) " +
			"ON CONFLICT (SYMBOL_KEY) DO UPDATE SET PAYLOAD = excluded.PAYLOAD, UPDATED_AT = excluded.UPDATED_AT",
	}
	// querySelectSnapshot reads the snapshot held for a key.
	querySelectSnapshot = dbmodel.DBQuery{
		ID:            "SNQ-SNAPSHOT-03",
		Query:         "SELECT PAYLOAD FROM OPTION_SNAPSHOT WHERE SYMBOL_KEY = ?",
		PostgresQuery: "SELECT PAYLOAD FROM OPTION_SNAPSHOT WHERE SYMBOL_KEY = $1",
	}
)
