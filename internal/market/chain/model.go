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

package chain

import (
	"bytes"
	"encoding/json"
)

// Columns of a chain dataset, in order.
var Columns = []string{
	"symbol", "option_type", "strike", "expiration", "open_interest", "volume",
	"bid", "ask", "gamma", "vega", "mid_iv",
}

// oneOrMany decodes a field the API sends as an object for a single item, an array
// for several, or null for none.
type oneOrMany[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (o *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = nil
		return nil
	}
	if data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*o = many
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*o = []T{one}
	return nil
}

type quotesResponse struct {
	Quotes *struct {
		Quote oneOrMany[quoteItem] `json:"quote"`
	} `json:"quotes"`
}

type quoteItem struct {
	Symbol string   `json:"symbol"`
	Last   *float64 `json:"last"`
	Close  *float64 `json:"close"`
}

type expirationsResponse struct {
	Expirations *struct {
		Date oneOrMany[string] `json:"date"`
	} `json:"expirations"`
}

type chainResponse struct {
	Options *struct {
		Option oneOrMany[optionItem] `json:"option"`
	} `json:"options"`
}

type optionItem struct {
	Symbol         string   `json:"symbol"`
	OptionType     string   `json:"option_type"`
	Strike         *float64 `json:"strike"`
	ExpirationDate string   `json:"expiration_date"`
	OpenInterest   *float64 `json:"open_interest"`
	Volume         *float64 `json:"volume"`
	Bid            *float64 `json:"bid"`
	Ask            *float64 `json:"ask"`
	Greeks         *struct {
		Gamma *float64 `json:"gamma"`
		Vega  *float64 `json:"vega"`
		MidIV *float64 `json:"mid_iv"`
	} `json:"greeks"`
}

func (o optionItem) toRow() map[string]interface{} {
	row := map[string]interface{}{
		"symbol":        o.Symbol,
		"option_type":   o.OptionType,
		"strike":        floatOrNil(o.Strike),
		"expiration":    o.ExpirationDate,
		"open_interest": floatOrNil(o.OpenInterest),
		"volume":        floatOrNil(o.Volume),
		"bid":           floatOrNil(o.Bid),
		"ask":           floatOrNil(o.Ask),
		"gamma":         nil,
		"vega":          nil,
		"mid_iv":        nil,
	}
	if o.Greeks != nil {
		row["gamma"] = floatOrNil(o.Greeks.Gamma)
		row["vega"] = floatOrNil(o.Greeks.Vega)
		row["mid_iv"] = floatOrNil(o.Greeks.MidIV)
	}
	return row
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
