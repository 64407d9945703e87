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

package quote

// Quote is a real-time quote. All fields are nil when the quote could not be fetched.
type Quote struct {
	Price         *float64 `json:"price"`
	PreviousClose *float64 `json:"previous_close"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"change_percent"`
}

// IsEmpty reports whether the quote carries no data.
func (q Quote) IsEmpty() bool {
	return q.Price == nil && q.PreviousClose == nil && q.Change == nil && q.ChangePercent == nil
}

// Clone returns a quote whose fields do not share storage with q.
func (q Quote) Clone() Quote {
	return Quote{
		Price:         cloneFloat(q.Price),
		PreviousClose: cloneFloat(q.PreviousClose),
		Change:        cloneFloat(q.Change),
		ChangePercent: cloneFloat(q.ChangePercent),
	}
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// quoteResponse is the quote endpoint's response body. Absent fields decode as zero.
type quoteResponse struct {
	Current       float64 `json:"c"`
	PreviousClose float64 `json:"pc"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
}

func (r quoteResponse) toQuote() *Quote {
	current, prev, change, pct := r.Current, r.PreviousClose, r.Change, r.ChangePercent
	return &Quote{
		Price:         &current,
		PreviousClose: &prev,
		Change:        &change,
		ChangePercent: &pct,
	}
}
