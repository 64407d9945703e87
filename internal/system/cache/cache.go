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

// Package cache provides a generic, time-expiring in-memory cache.
package cache

import (
	"sync"
	"time"

	"github.com/moonwalkers/moonmap/internal/system/log"
)

const loggerComponentName = "TTLCache"

// Clock returns the current time. Tests inject a fake clock to drive expiry.
type Clock func() time.Time

// CacheInterface defines the contract for the TTL cache.
type CacheInterface[T any] interface {
	Set(key string, value T)
	Get(key string) (T, bool)
	Delete(key string)
	Clear()
	CleanupExpired()
	GetStats() CacheStat
	GetName() string
}

// CacheStat holds the hit/miss counters of a cache.
type CacheStat struct {
	Size      int     `json:"size"`
	HitCount  int64   `json:"hit_count"`
	MissCount int64   `json:"miss_count"`
	HitRate   float64 `json:"hit_rate"`
}

// cacheEntry is a cached value together with its creation time.
type cacheEntry[T any] struct {
	value     T
	createdAt time.Time
}

// TTLCache expires entries a fixed duration after they were stored.
// Entries are never evicted for size; one entry per distinct key may accumulate.
type TTLCache[T any] struct {
	name      string
	ttl       time.Duration
	clock     Clock
	entries   map[string]cacheEntry[T]
	mu        sync.RWMutex
	hitCount  int64
	missCount int64
}

// NewTTLCache creates a new TTL cache. A nil clock defaults to time.Now.
func NewTTLCache[T any](name string, ttl time.Duration, clock Clock) CacheInterface[T] {
	if clock == nil {
		clock = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	log.GetLogger().Debug("Initializing TTL cache", log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("name", name), log.Duration("ttl", ttl))

	return &TTLCache[T]{
		name:    name,
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]cacheEntry[T]),
	}
}

// Set adds or replaces an entry in the cache; its age starts at the current clock time.
func (c *TTLCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry[T]{
		value:     value,
		createdAt: c.clock(),
	}
}

// Get retrieves a value when its entry is younger than the TTL.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	entry, exists := c.entries[key]
	if !exists {
		c.missCount++
		return zero, false
	}

	if !c.isFresh(entry, c.clock()) {
		delete(c.entries, key)
		c.missCount++
		return zero, false
	}

	c.hitCount++
	return entry.value, true
}

// Delete removes an entry from the cache.
func (c *TTLCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries and resets the counters.
func (c *TTLCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry[T])
	c.hitCount = 0
	c.missCount = 0
}

// CleanupExpired removes all expired entries from the cache.
func (c *TTLCache[T]) CleanupExpired() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("name", c.name))

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	cleaned := 0
	for key, entry := range c.entries {
		if !c.isFresh(entry, now) {
			delete(c.entries, key)
			cleaned++
		}
	}

	if cleaned > 0 {
		logger.Debug("Expired cache entries cleaned", log.Int("count", cleaned))
	}
}

// GetStats returns cache statistics.
func (c *TTLCache[T]) GetStats() CacheStat {
	c.mu.RLock()
	defer c.mu.RUnlock()

	totalOps := c.hitCount + c.missCount
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(c.hitCount) / float64(totalOps)
	}

	return CacheStat{
		Size:      len(c.entries),
		HitCount:  c.hitCount,
		MissCount: c.missCount,
		HitRate:   hitRate,
	}
}

// GetName returns the name of the cache.
func (c *TTLCache[T]) GetName() string {
	return c.name
}

// isFresh reports whether the entry's age at now is strictly below the TTL.
func (c *TTLCache[T]) isFresh(entry cacheEntry[T], now time.Time) bool {
	return now.Sub(entry.createdAt) < c.ttl
}
