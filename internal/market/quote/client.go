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

// Package quote fetches real-time quotes and caches them for a short period.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sysconst "github.com/moonwalkers/moonmap/internal/system/constants"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
	syshttp "github.com/moonwalkers/moonmap/internal/system/http"
	"github.com/moonwalkers/moonmap/internal/system/log"
	sysutils "github.com/moonwalkers/moonmap/internal/system/utils"
)

const (
	clientLoggerComponentName = "QuoteClient"
	quotePath                 = "/quote"
	// DefaultTimeout bounds a single quote request.
	DefaultTimeout = 6 * time.Second
)

// QuoteClientInterface fetches a single quote from the upstream quote API.
type QuoteClientInterface interface {
	FetchQuote(ctx context.Context, symbol string) (*Quote, *serviceerror.ServiceError)
}

// QuoteClient is the Finnhub implementation of QuoteClientInterface.
type QuoteClient struct {
	baseURL    string
	token      string
	httpClient syshttp.HTTPClientInterface
}

// NewQuoteClient creates a quote client. A nil httpClient gets one bounded by DefaultTimeout.
func NewQuoteClient(baseURL, token string, httpClient syshttp.HTTPClientInterface) QuoteClientInterface {
	if httpClient == nil {
		httpClient = syshttp.NewHTTPClientWithTimeout(DefaultTimeout)
	}
	return &QuoteClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// FetchQuote issues one GET to the quote endpoint.
func (c *QuoteClient) FetchQuote(ctx context.Context, symbol string) (*Quote, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, clientLoggerComponentName),
		log.String(log.LoggerKeySymbol, symbol))

	if strings.TrimSpace(symbol) == "" {
		return nil, &ErrorEmptySymbol
	}

	endpoint, err := sysutils.GetURIWithQueryParams(c.baseURL+quotePath, map[string]string{
		"symbol": symbol,
		"token":  c.token,
	})
	if err != nil {
		logger.Error("Failed to build quote URL", log.Error(err))
		return nil, &ErrorQuoteRequestFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Error("Failed to create quote request", log.Error(err))
		return nil, &ErrorQuoteRequestFailed
	}
	req.Header.Set(sysconst.AcceptHeaderName, sysconst.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Quote request failed", log.Error(err))
		return nil, &ErrorQuoteRequestFailed
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close quote response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, sysconst.MaxErrorBodySize))
		logger.Error("Quote endpoint returned an error response",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return nil, serviceerror.CustomServiceError(ErrorQuoteEndpointError,
			fmt.Sprintf("Quote endpoint returned status %d", resp.StatusCode))
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Error("Failed to parse quote response", log.Error(err))
		return nil, &ErrorInvalidQuoteResponse
	}

	return body.toQuote(), nil
}
