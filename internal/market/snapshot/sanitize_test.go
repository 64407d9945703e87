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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		expected string
	}{
		{"plain ticker", "SPY", "SPY"},
		{"keeps underscore and hyphen", "BRK_B-1", "BRK_B-1"},
		{"drops dots", "BRK.B", "BRKB"},
		{"drops path separators", "../../etc/passwd", "etcpasswd"},
		{"drops backslashes", `..\..\win`, "win"},
		{"drops whitespace", " spy \n", "spy"},
		{"drops non ascii letters", "SPYé", "SPY"},
		{"truncates to 24", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "ABCDEFGHIJKLMNOPQRSTUVWX"},
		{"truncates after filtering", "A.B.C.D.E.F.G.H.I.J.K.L.M.N.O.P.Q.R.S.T.U.V.W.X.Y.Z", "ABCDEFGHIJKLMNOPQRSTUVWX"},
		{"nothing usable", "../..", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeKey(tt.symbol))
		})
	}
}
