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

// Package provider opens database clients from configured data sources.
package provider

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	// Registers the postgres driver.
	_ "github.com/lib/pq"
	// Registers the sqlite driver.
	_ "modernc.org/sqlite"

	"github.com/moonwalkers/moonmap/internal/system/config"
	"github.com/moonwalkers/moonmap/internal/system/database/client"
	"github.com/moonwalkers/moonmap/internal/system/database/model"
)

// dbConfig represents the resolved driver configuration of a data source.
type dbConfig struct {
	dsn        string
	driverName string
}

// OpenDBClient connects to the data source, verifies the connection and returns a client.
// Relative SQLite paths are resolved against the server home of the runtime.
func OpenDBClient(ctx context.Context, dataSource config.DataSource) (client.DBClientInterface, error) {
	dbCfg, err := getDBConfig(dataSource, config.GetServerRuntime().ServerHome)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dbCfg.driverName, dbCfg.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dataSource.Name, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}

	return client.NewDBClient(model.NewDB(db), dbCfg.driverName), nil
}

// getDBConfig returns the driver name and DSN for the provided data source.
func getDBConfig(dataSource config.DataSource, serverHome string) (dbConfig, error) {
	switch dataSource.Type {
	case config.DataSourceTypePostgres:
		return dbConfig{
			driverName: config.DataSourceTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case config.DataSourceTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(serverHome, dbPath)
		}
		return dbConfig{
			driverName: config.DataSourceTypeSQLite,
			dsn:        dbPath + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %q", dataSource.Type)
	}
}
