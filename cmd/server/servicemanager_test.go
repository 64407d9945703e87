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
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/moonwalkers/moonmap/internal/system/config"
)

const testDeployment = `
server:
  hostname: localhost
  port: 0
identity_provider:
  client_id: client
  client_secret: secret
  redirect_uri: https://moonmap.test/
  guild_id: "100"
  role_id: "200"
quote:
  token: quote-token
chain:
  token: chain-token
snapshot:
  type: file
  directory: snapshots
`

type ServiceManagerTestSuite struct {
	suite.Suite
	home    string
	mux     *http.ServeMux
	manager *serviceManager
}

func TestServiceManagerSuite(t *testing.T) {
	suite.Run(t, new(ServiceManagerTestSuite))
}

func (suite *ServiceManagerTestSuite) SetupTest() {
	suite.home = suite.T().TempDir()
	cfg, err := config.ParseConfig([]byte(testDeployment))
	suite.Require().NoError(err)

	suite.Require().NoError(config.InitializeServerRuntime(suite.home, cfg))

	suite.mux = http.NewServeMux()
	suite.manager = newServiceManager(suite.mux)
	ctx, cancel := context.WithCancel(context.Background())
	suite.T().Cleanup(cancel)
	suite.Require().NoError(suite.manager.RegisterServices(ctx))
}

func (suite *ServiceManagerTestSuite) TearDownTest() {
	suite.NoError(suite.manager.Close())
	config.ResetServerRuntime()
}

func (suite *ServiceManagerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func (suite *ServiceManagerTestSuite) TestReadinessChecksSnapshotStore() {
	rr := suite.serve(http.MethodGet, "/health/readiness")

	suite.Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), snapshotHealthCheckName)
	suite.DirExists(filepath.Join(suite.home, "snapshots"))
}

func (suite *ServiceManagerTestSuite) TestDashboardRequiresSignIn() {
	rr := suite.serve(http.MethodGet, "/")

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.Contains(rr.Body.String(), "client_id=client")
}

func (suite *ServiceManagerTestSuite) TestLoginRedirects() {
	rr := suite.serve(http.MethodGet, "/login")

	suite.Equal(http.StatusFound, rr.Code)
	suite.Contains(rr.Header().Get("Location"), "discord.com/api/oauth2/authorize")
}

func TestRegisterServicesRejectsBadTimeZone(t *testing.T) {
	cfg, err := config.ParseConfig([]byte(testDeployment))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Market.TimeZone = "Mars/Olympus_Mons"
	if err := config.InitializeServerRuntime(t.TempDir(), cfg); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(config.ResetServerRuntime)

	manager := newServiceManager(http.NewServeMux())
	if err := manager.RegisterServices(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown time zone")
	}
}

func TestResolvePath(t *testing.T) {
	cases := []struct {
		home, path, want string
	}{
		{"/srv/moonmap", "repository/conf/deployment.yaml", "/srv/moonmap/repository/conf/deployment.yaml"},
		{"/srv/moonmap", "/etc/moonmap.yaml", "/etc/moonmap.yaml"},
		{"/srv/moonmap", "", ""},
	}
	for _, c := range cases {
		if got := resolvePath(c.home, c.path); got != c.want {
			t.Errorf("resolvePath(%q, %q) = %q, want %q", c.home, c.path, got, c.want)
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCommand()

	flag := root.PersistentFlags().Lookup("config")
	if flag == nil || flag.DefValue != defaultConfigPath {
		t.Fatalf("unexpected config flag: %+v", flag)
	}
	if root.PersistentFlags().Lookup("home") == nil || root.PersistentFlags().Lookup("env") == nil {
		t.Fatal("missing home or env flag")
	}
	if cmd, _, err := root.Find([]string{"serve"}); err != nil || cmd.Name() != "serve" {
		t.Fatalf("serve subcommand not found: %v", err)
	}
}
