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
	"context"

	"github.com/moonwalkers/moonmap/internal/market/model"
)

// Analysis is the output of the options analytics: net gamma and vega exposure
// tables and the reference price they were computed against.
type Analysis struct {
	GammaExposure  *model.Dataset `json:"gamma_exposure"`
	VegaExposure   *model.Dataset `json:"vega_exposure"`
	ReferencePrice *float64       `json:"reference_price"`
}

// AnalyzerInterface computes the options analytics from a resolved dataset.
// It is never called with an empty dataset.
type AnalyzerInterface interface {
	Analyze(ctx context.Context, referencePrice *float64, dataset *model.Dataset) (*Analysis, error)
}
