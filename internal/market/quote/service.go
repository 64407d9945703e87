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

import (
	"context"
	"strings"
	"time"

	"github.com/moonwalkers/moonmap/internal/system/cache"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const (
	serviceLoggerComponentName = "QuoteService"
	quoteCacheName             = "QuoteCache"
	// DefaultCacheTTL is how long a fetched quote is served without a network call.
	DefaultCacheTTL = 180 * time.Second
)

// QuoteServiceInterface serves quotes through a process-wide TTL cache.
type QuoteServiceInterface interface {
	GetQuote(ctx context.Context, symbol string) Quote
	GetCache() cache.CacheInterface[Quote]
}

// QuoteService caches successful quotes per upper-cased symbol.
type QuoteService struct {
	client QuoteClientInterface
	cache  cache.CacheInterface[Quote]
}

// NewQuoteService creates a quote service backed by a fresh cache.
func NewQuoteService(client QuoteClientInterface, ttl time.Duration, clock cache.Clock) QuoteServiceInterface {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &QuoteService{
		client: client,
		cache:  cache.NewTTLCache[Quote](quoteCacheName, ttl, clock),
	}
}

// GetQuote returns the cached quote for the symbol while it is younger than the TTL,
// otherwise fetches it once. A failed fetch returns an empty quote and is not cached.
// The returned quote is a copy the caller may modify.
func (s *QuoteService) GetQuote(ctx context.Context, symbol string) Quote {
	key := strings.ToUpper(strings.TrimSpace(symbol))
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName),
		log.String(log.LoggerKeySymbol, key))

	if key == "" {
		return Quote{}
	}
	if cached, ok := s.cache.Get(key); ok {
		logger.Debug("Serving cached quote")
		return cached.Clone()
	}

	q, svcErr := s.client.FetchQuote(ctx, key)
	if svcErr != nil {
		logger.Warn("Quote unavailable", log.String("code", svcErr.Code))
		return Quote{}
	}

	s.cache.Set(key, *q)
	return q.Clone()
}

// GetCache exposes the quote cache so it can be swept by the cache janitor.
func (s *QuoteService) GetCache() cache.CacheInterface[Quote] {
	return s.cache
}
