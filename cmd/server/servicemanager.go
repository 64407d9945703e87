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

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/moonwalkers/moonmap/internal/authn/discord"
	"github.com/moonwalkers/moonmap/internal/dashboard"
	"github.com/moonwalkers/moonmap/internal/market/chain"
	"github.com/moonwalkers/moonmap/internal/market/freshness"
	"github.com/moonwalkers/moonmap/internal/market/quote"
	"github.com/moonwalkers/moonmap/internal/market/snapshot"
	"github.com/moonwalkers/moonmap/internal/session"
	sessionstore "github.com/moonwalkers/moonmap/internal/session/store"
	"github.com/moonwalkers/moonmap/internal/system/cache"
	"github.com/moonwalkers/moonmap/internal/system/config"
	healthcheckhandler "github.com/moonwalkers/moonmap/internal/system/healthcheck/handler"
	healthcheckservice "github.com/moonwalkers/moonmap/internal/system/healthcheck/service"
	syshttp "github.com/moonwalkers/moonmap/internal/system/http"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const snapshotHealthCheckName = "SnapshotStore"

// serviceManager builds the services and registers their routes on the mux.
type serviceManager struct {
	mux     *http.ServeMux
	closers []func() error
}

func newServiceManager(mux *http.ServeMux) *serviceManager {
	return &serviceManager{mux: mux}
}

// RegisterServices wires every service from the server runtime configuration.
// Background work started here stops when ctx is done.
func (sm *serviceManager) RegisterServices(ctx context.Context) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServiceManager"))
	cfg := &config.GetServerRuntime().Config

	window, err := freshness.NewWindow(cfg.Market.TimeZone, cfg.Market.FreezeStart, cfg.Market.FreezeEnd)
	if err != nil {
		return err
	}

	store, err := snapshot.NewSnapshotStore(ctx)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	sm.closers = append(sm.closers, store.Close)
	snapshotService := snapshot.NewSnapshotService(store, window.Location)

	discordService := discord.NewDiscordAuthnService(cfg.IdentityProvider, nil)
	quoteService := quote.NewQuoteService(
		quote.NewQuoteClient(cfg.Quote.BaseURL, cfg.Quote.Token,
			syshttp.NewHTTPClientWithTimeout(time.Duration(cfg.Quote.TimeoutSeconds)*time.Second)),
		time.Duration(cfg.Quote.CacheTTLSeconds)*time.Second, nil)
	chainClient := chain.NewChainClient(cfg.Chain.BaseURL, cfg.Chain.Token,
		syshttp.NewHTTPClientWithTimeout(time.Duration(cfg.Chain.TimeoutSeconds)*time.Second))

	validity := time.Duration(cfg.Session.ValidityPeriod) * time.Second
	sessions := sessionstore.NewSessionStore(validity, time.Now)

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	sm.closers = append(sm.closers, func() error {
		stopJanitor()
		return nil
	})
	cache.StartJanitor(janitorCtx, cache.DefaultCleanupInterval, quoteService.GetCache(), sessions)

	healthService := healthcheckservice.NewHealthCheckService()
	healthService.Register(snapshotHealthCheckName, snapshotService.CheckHealth)
	healthcheckhandler.Initialize(sm.mux, healthService)

	dashboard.Initialize(sm.mux, dashboard.Dependencies{
		Sessions:  sessions,
		Gate:      session.NewGateService(discordService, cfg.IdentityProvider.RoleID),
		Discord:   discordService,
		Quotes:    quoteService,
		Chain:     chainClient,
		Freshness: freshness.NewFreshnessService(window, snapshotService),
		Cookie: dashboard.CookieConfig{
			Name:   cfg.Session.CookieName,
			MaxAge: validity,
			Secure: cfg.Session.SecureCookie,
		},
		DefaultSymbol: cfg.Market.DefaultSymbol,
	})

	logger.Debug("Registered services", log.String("snapshotStore", cfg.Snapshot.Type))
	return nil
}

// Close releases the resources opened by RegisterServices, in reverse order.
func (sm *serviceManager) Close() error {
	var err error
	for i := len(sm.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, sm.closers[i]())
	}
	sm.closers = nil
	return err
}
