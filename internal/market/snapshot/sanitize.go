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

import "strings"

// maxKeyLength bounds the length of a storage key derived from a symbol.
const maxKeyLength = 24

// SanitizeKey derives a storage key from a symbol by keeping only ASCII letters,
// digits, underscores and hyphens, truncated to 24 characters. Separators and dots
// never survive, so a key cannot address anything outside its slot namespace.
func SanitizeKey(symbol string) string {
	var b strings.Builder
	for _, r := range symbol {
		if b.Len() >= maxKeyLength {
			break
		}
		if isKeyRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isKeyRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}
