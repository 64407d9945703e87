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

// Package chain fetches live options-chain datasets from the Tradier market data API.
package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/moonwalkers/moonmap/internal/market/model"
	sysconst "github.com/moonwalkers/moonmap/internal/system/constants"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
	syshttp "github.com/moonwalkers/moonmap/internal/system/http"
	"github.com/moonwalkers/moonmap/internal/system/log"
	sysutils "github.com/moonwalkers/moonmap/internal/system/utils"
)

const (
	loggerComponentName = "ChainClient"
	quotesPath          = "/v1/markets/quotes"
	expirationsPath     = "/v1/markets/options/expirations"
	chainsPath          = "/v1/markets/options/chains"
)

// ChainClientInterface fetches the live reference price and options chain of a symbol.
type ChainClientInterface interface {
	FetchChain(ctx context.Context, symbol string) (*float64, *model.Dataset, *serviceerror.ServiceError)
}

// ChainClient is the Tradier implementation of ChainClientInterface.
type ChainClient struct {
	baseURL    string
	token      string
	httpClient syshttp.HTTPClientInterface
}

// NewChainClient creates a chain client. A nil httpClient gets the default bounded timeout.
func NewChainClient(baseURL, token string, httpClient syshttp.HTTPClientInterface) ChainClientInterface {
	if httpClient == nil {
		httpClient = syshttp.NewHTTPClient()
	}
	return &ChainClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// FetchChain returns the reference price and the nearest-expiration chain of the symbol.
// A missing reference price is not an error; the price is then nil.
func (c *ChainClient) FetchChain(ctx context.Context, symbol string) (*float64, *model.Dataset,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySymbol, symbol))

	price := c.fetchReferencePrice(ctx, symbol, logger)

	var expirations expirationsResponse
	if svcErr := c.get(ctx, expirationsPath, map[string]string{"symbol": symbol}, &expirations,
		logger); svcErr != nil {
		return price, nil, svcErr
	}
	if expirations.Expirations == nil || len(expirations.Expirations.Date) == 0 {
		logger.Debug("No option expirations listed")
		return price, nil, &ErrorNoExpirations
	}
	expiration := expirations.Expirations.Date[0]

	var chain chainResponse
	if svcErr := c.get(ctx, chainsPath, map[string]string{
		"symbol":     symbol,
		"expiration": expiration,
		"greeks":     "true",
	}, &chain, logger); svcErr != nil {
		return price, nil, svcErr
	}

	dataset := model.NewDataset(Columns...)
	if chain.Options != nil {
		for _, option := range chain.Options.Option {
			dataset.AddRow(option.toRow())
		}
	}

	logger.Debug("Fetched options chain", log.String("expiration", expiration), log.Int("rows", dataset.Len()))
	return price, dataset, nil
}

func (c *ChainClient) fetchReferencePrice(ctx context.Context, symbol string, logger *log.Logger) *float64 {
	var quotes quotesResponse
	if svcErr := c.get(ctx, quotesPath, map[string]string{"symbols": symbol}, &quotes, logger); svcErr != nil {
		return nil
	}
	if quotes.Quotes == nil {
		return nil
	}
	for _, q := range quotes.Quotes.Quote {
		if !strings.EqualFold(q.Symbol, symbol) {
			continue
		}
		if q.Last != nil {
			return q.Last
		}
		return q.Close
	}
	return nil
}

// get issues one authenticated GET and decodes the JSON response into out.
func (c *ChainClient) get(ctx context.Context, path string, params map[string]string, out interface{},
	logger *log.Logger) *serviceerror.ServiceError {
	endpoint, err := sysutils.GetURIWithQueryParams(c.baseURL+path, params)
	if err != nil {
		logger.Error("Failed to build options URL", log.String("path", path), log.Error(err))
		return &ErrorChainRequestFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Error("Failed to create options request", log.String("path", path), log.Error(err))
		return &ErrorChainRequestFailed
	}
	req.Header.Set(sysconst.AuthorizationHeaderName, sysconst.TokenTypeBearer+" "+c.token)
	req.Header.Set(sysconst.AcceptHeaderName, sysconst.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Options request failed", log.String("path", path), log.Error(err))
		return &ErrorChainRequestFailed
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close options response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, sysconst.MaxErrorBodySize))
		logger.Error("Options endpoint returned an error response", log.String("path", path),
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return serviceerror.CustomServiceError(ErrorChainEndpointError,
			fmt.Sprintf("Options endpoint %s returned status %d", path, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("Failed to parse options response", log.String("path", path), log.Error(err))
		return &ErrorInvalidChainResponse
	}
	return nil
}
