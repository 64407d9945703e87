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

// Package model defines the market data shapes shared by the quote, chain and snapshot components.
package model

// Dataset is a tabular options-chain dataset: an ordered list of unique column
// names and the rows keyed by those column names.
type Dataset struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

// NewDataset creates a dataset with the given columns and no rows.
func NewDataset(columns ...string) *Dataset {
	return &Dataset{
		Columns: columns,
		Rows:    []map[string]interface{}{},
	}
}

// IsEmpty reports whether the dataset is absent or holds no rows.
func (d *Dataset) IsEmpty() bool {
	return d == nil || len(d.Rows) == 0
}

// Len returns the number of rows, treating a nil dataset as empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// AddRow appends a row. Keys that are not columns of the dataset are dropped.
func (d *Dataset) AddRow(values map[string]interface{}) {
	row := make(map[string]interface{}, len(d.Columns))
	for _, col := range d.Columns {
		if v, ok := values[col]; ok {
			row[col] = v
		} else {
			row[col] = nil
		}
	}
	d.Rows = append(d.Rows, row)
}
