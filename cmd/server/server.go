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
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/moonwalkers/moonmap/internal/system/config"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const shutdownTimeout = 15 * time.Second

// runServer loads the configuration, wires the services and serves until interrupted.
func runServer(ctx context.Context, opts *serveOptions) error {
	logger := log.GetLogger()
	if ctx == nil {
		ctx = context.Background()
	}

	serverHome, err := resolveServerHome(logger, opts.home)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(resolvePath(serverHome, opts.configPath), resolvePath(serverHome, opts.envFile))
	if err != nil {
		return fmt.Errorf("load configurations: %w", err)
	}
	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		return fmt.Errorf("initialize server runtime: %w", err)
	}
	cfg.LogSummary()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	manager := newServiceManager(mux)
	if err := manager.RegisterServices(ctx); err != nil {
		return multierr.Append(fmt.Errorf("register services: %w", err), manager.Close())
	}

	server, serverAddr := createHTTPServer(logger, cfg, mux)
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Moon Map server started (HTTP)...", log.String("address", serverAddr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return multierr.Append(fmt.Errorf("serve HTTP requests: %w", err), manager.Close())
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := multierr.Append(server.Shutdown(shutdownCtx), manager.Close())
	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}
	logger.Info("Server stopped")
	return nil
}

// resolveServerHome returns the --home directory, or the working directory when unset.
func resolveServerHome(logger *log.Logger, home string) (string, error) {
	if home != "" {
		logger.Info("Using server home from command line argument", log.String("home", home))
		return home, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current working directory: %w", err)
	}
	return dir, nil
}

func resolvePath(serverHome, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(serverHome, path)
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
