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

package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type TTLCacheTestSuite struct {
	suite.Suite
	clock *fakeClock
	cache CacheInterface[string]
}

func TestTTLCacheSuite(t *testing.T) {
	suite.Run(t, new(TTLCacheTestSuite))
}

func (suite *TTLCacheTestSuite) SetupTest() {
	suite.clock = &fakeClock{now: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)}
	suite.cache = NewTTLCache[string]("test", 180*time.Second, suite.clock.Now)
}

func (suite *TTLCacheTestSuite) TestGetMiss() {
	value, ok := suite.cache.Get("SPY")
	suite.False(ok)
	suite.Empty(value)
	suite.Equal(int64(1), suite.cache.GetStats().MissCount)
}

func (suite *TTLCacheTestSuite) TestGetHitWithinTTL() {
	suite.cache.Set("SPY", "v1")
	suite.clock.Advance(179 * time.Second)

	value, ok := suite.cache.Get("SPY")
	suite.True(ok)
	suite.Equal("v1", value)
}

func (suite *TTLCacheTestSuite) TestGetExpiresAtTTL() {
	suite.cache.Set("SPY", "v1")
	suite.clock.Advance(180 * time.Second)

	_, ok := suite.cache.Get("SPY")
	suite.False(ok)
	suite.Equal(0, suite.cache.GetStats().Size)
}

func (suite *TTLCacheTestSuite) TestSetResetsAge() {
	suite.cache.Set("SPY", "v1")
	suite.clock.Advance(170 * time.Second)
	suite.cache.Set("SPY", "v2")
	suite.clock.Advance(170 * time.Second)

	value, ok := suite.cache.Get("SPY")
	suite.True(ok)
	suite.Equal("v2", value)
}

func (suite *TTLCacheTestSuite) TestNoSizeEviction() {
	for i := 0; i < 5000; i++ {
		suite.cache.Set(fmt.Sprintf("SYM%d", i), "v")
	}
	suite.Equal(5000, suite.cache.GetStats().Size)

	_, ok := suite.cache.Get("SYM0")
	suite.True(ok)
}

func (suite *TTLCacheTestSuite) TestDeleteAndClear() {
	suite.cache.Set("SPY", "v1")
	suite.cache.Set("QQQ", "v2")

	suite.cache.Delete("SPY")
	_, ok := suite.cache.Get("SPY")
	suite.False(ok)

	suite.cache.Clear()
	stats := suite.cache.GetStats()
	suite.Equal(0, stats.Size)
	suite.Equal(int64(0), stats.MissCount)
}

func (suite *TTLCacheTestSuite) TestCleanupExpired() {
	suite.cache.Set("OLD", "v1")
	suite.clock.Advance(100 * time.Second)
	suite.cache.Set("NEW", "v2")
	suite.clock.Advance(100 * time.Second)

	suite.cache.CleanupExpired()

	suite.Equal(1, suite.cache.GetStats().Size)
	_, ok := suite.cache.Get("NEW")
	suite.True(ok)
}

func (suite *TTLCacheTestSuite) TestGetStatsHitRate() {
	suite.cache.Set("SPY", "v1")
	suite.cache.Get("SPY")
	suite.cache.Get("QQQ")

	stats := suite.cache.GetStats()
	suite.Equal(int64(1), stats.HitCount)
	suite.Equal(int64(1), stats.MissCount)
	suite.InDelta(0.5, stats.HitRate, 0.0001)
	suite.Equal("test", suite.cache.GetName())
}

func (suite *TTLCacheTestSuite) TestDefaults() {
	c := NewTTLCache[int]("defaults", 0, nil).(*TTLCache[int])
	suite.Equal(DefaultTTL, c.ttl)
	suite.NotNil(c.clock)
}

func (suite *TTLCacheTestSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("SYM%d", i%5)
			suite.cache.Set(key, "v")
			suite.cache.Get(key)
		}(i)
	}
	wg.Wait()
	suite.Equal(5, suite.cache.GetStats().Size)
}

func (suite *TTLCacheTestSuite) TestStartJanitor() {
	c := NewTTLCache[string]("janitor", 10*time.Millisecond, nil)
	c.Set("SPY", "v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartJanitor(ctx, 5*time.Millisecond, c)

	suite.Eventually(func() bool {
		return c.GetStats().Size == 0
	}, time.Second, 5*time.Millisecond)
}
