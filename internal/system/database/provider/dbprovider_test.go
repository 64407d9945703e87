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

package provider

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/moonwalkers/moonmap/internal/system/config"
	"github.com/moonwalkers/moonmap/internal/system/database/model"
)

type DBProviderTestSuite struct {
	suite.Suite
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) TestGetDBConfigPostgres() {
	cfg, err := getDBConfig(config.DataSource{
		Type:     "postgres",
		Hostname: "db",
		Port:     5432,
		Name:     "moonmap",
		Username: "user",
		Password: "pass",
		SSLMode:  "disable",
	}, "/srv")

	suite.NoError(err)
	suite.Equal("postgres", cfg.driverName)
	suite.Equal("host=db port=5432 user=user password=pass dbname=moonmap sslmode=disable", cfg.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigSQLite() {
	cfg, err := getDBConfig(config.DataSource{Type: "sqlite", Path: "data/snap.db", Options: "_pragma=busy_timeout(5000)"},
		"/srv")
	suite.NoError(err)
	suite.Equal("sqlite", cfg.driverName)
	suite.Equal("/srv/data/snap.db?_pragma=busy_timeout(5000)", cfg.dsn)

	cfg, err = getDBConfig(config.DataSource{Type: "sqlite", Path: "/abs/snap.db"}, "/srv")
	suite.NoError(err)
	suite.Equal("/abs/snap.db", cfg.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigUnsupported() {
	_, err := getDBConfig(config.DataSource{Type: "mysql"}, "/srv")
	suite.Error(err)
}

func (suite *DBProviderTestSuite) TestOpenDBClientSQLite() {
	home := suite.T().TempDir()
	suite.Require().NoError(config.InitializeServerRuntime(home, &config.Config{}))
	suite.T().Cleanup(config.ResetServerRuntime)

	dbClient, err := OpenDBClient(context.Background(), config.DataSource{Type: "sqlite", Name: "snapshots", Path: "snap.db"})
	suite.Require().NoError(err)
	defer func() { _ = dbClient.Close() }()

	_, err = dbClient.Execute(context.Background(), model.DBQuery{ID: "create", Query: "CREATE TABLE T (ID INTEGER)"})
	suite.NoError(err)
	suite.FileExists(filepath.Join(home, "snap.db"))
	suite.NoError(dbClient.Ping(context.Background()))
}
