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

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moonwalkers/moonmap/internal/authn/discord"
	"github.com/moonwalkers/moonmap/internal/market/chain"
	"github.com/moonwalkers/moonmap/internal/market/freshness"
	"github.com/moonwalkers/moonmap/internal/market/model"
	"github.com/moonwalkers/moonmap/internal/market/quote"
	"github.com/moonwalkers/moonmap/internal/market/snapshot"
	"github.com/moonwalkers/moonmap/internal/session"
	sessionmodel "github.com/moonwalkers/moonmap/internal/session/model"
	sessionstore "github.com/moonwalkers/moonmap/internal/session/store"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
	"github.com/moonwalkers/moonmap/tests/mocks/chainmock"
	"github.com/moonwalkers/moonmap/tests/mocks/discordmock"
	"github.com/moonwalkers/moonmap/tests/mocks/quotemock"
)

const (
	testCookieName   = "moonmap_session"
	testAuthorizeURL = "https://discord.test/oauth2/authorize?client_id=abc"
	testRoleID       = "role-moon"
)

type stubAnalyzer struct {
	result *Analysis
	err    error
	rows   int
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ *float64, ds *model.Dataset) (*Analysis, error) {
	a.rows = ds.Len()
	return a.result, a.err
}

type DashboardHandlerTestSuite struct {
	suite.Suite
	zone      *time.Location
	now       time.Time
	discord   *discordmock.DiscordAuthnServiceInterfaceMock
	quotes    *quotemock.QuoteServiceInterfaceMock
	chain     *chainmock.ChainClientInterfaceMock
	snapshots snapshot.SnapshotServiceInterface
	sessions  sessionstore.SessionStoreInterface
	analyzer  *stubAnalyzer
	mux       *http.ServeMux
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.zone = time.FixedZone("EST", -5*60*60)
	suite.now = time.Date(2026, 3, 2, 11, 0, 0, 0, suite.zone)

	suite.discord = discordmock.NewDiscordAuthnServiceInterfaceMock(suite.T())
	suite.discord.On("BuildAuthorizeURL").Return(testAuthorizeURL).Maybe()
	suite.quotes = quotemock.NewQuoteServiceInterfaceMock(suite.T())
	suite.chain = chainmock.NewChainClientInterfaceMock(suite.T())

	store, err := snapshot.NewFileStore(suite.T().TempDir())
	suite.Require().NoError(err)
	suite.snapshots = snapshot.NewSnapshotService(store, suite.zone)
	window := freshness.Window{Location: suite.zone, Start: 0, End: 9*time.Hour + 30*time.Minute}

	suite.sessions = sessionstore.NewSessionStore(time.Hour, time.Now)
	gex := model.NewDataset("strike", "net_gex")
	gex.AddRow(map[string]interface{}{"strike": 450.0, "net_gex": 1.5e9})
	suite.analyzer = &stubAnalyzer{result: &Analysis{
		GammaExposure:  gex,
		VegaExposure:   model.NewDataset("strike", "net_vex"),
		ReferencePrice: floatPtr(450.0),
	}}
	suite.mux = http.NewServeMux()
	Initialize(suite.mux, Dependencies{
		Sessions:      suite.sessions,
		Gate:          session.NewGateService(suite.discord, testRoleID),
		Discord:       suite.discord,
		Quotes:        suite.quotes,
		Chain:         suite.chain,
		Freshness:     freshness.NewFreshnessService(window, suite.snapshots),
		Analyzer:      suite.analyzer,
		Cookie:        CookieConfig{Name: testCookieName, MaxAge: time.Hour},
		DefaultSymbol: "SPY",
		Clock:         func() time.Time { return suite.now },
	})
}

func floatPtr(v float64) *float64 {
	return &v
}

func chainDataset(strikes ...float64) *model.Dataset {
	ds := model.NewDataset(chain.Columns...)
	for _, s := range strikes {
		ds.AddRow(map[string]interface{}{"strike": s, "option_type": "call"})
	}
	return ds
}

func (suite *DashboardHandlerTestSuite) do(method, target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *DashboardHandlerTestSuite) sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	suite.FailNow("session cookie not set")
	return nil
}

func (suite *DashboardHandlerTestSuite) decode(rr *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func (suite *DashboardHandlerTestSuite) expectSignIn(code string, roles ...string) {
	suite.discord.On("ExchangeCode", mock.Anything, code).
		Return(&discord.Credential{AccessToken: "token-" + code, TokenType: "Bearer"}, nil).Once()
	suite.discord.On("FetchIdentity", mock.Anything, "token-"+code).
		Return(&sessionmodel.Identity{ID: "42", Username: "moonwalker"}, nil).Once()
	suite.discord.On("FetchMembership", mock.Anything, "token-"+code).
		Return(&discord.MembershipRecord{Roles: roles}, nil).Once()
}

func (suite *DashboardHandlerTestSuite) signIn() *http.Cookie {
	suite.expectSignIn("good", testRoleID)
	rr := suite.do(http.MethodGet, "/?code=good", nil)
	suite.Require().Equal(http.StatusSeeOther, rr.Code)
	return suite.sessionCookie(rr)
}

func (suite *DashboardHandlerTestSuite) TestAnonymousVisitorMustSignIn() {
	rr := suite.do(http.MethodGet, "/", nil)

	suite.Equal(http.StatusUnauthorized, rr.Code)
	body := suite.decode(rr)
	suite.Equal(StatusLoginRequired, body["status"])
	suite.Equal(testAuthorizeURL, body["login_url"])

	cookie := suite.sessionCookie(rr)
	suite.True(cookie.HttpOnly)
	suite.Equal(http.SameSiteLaxMode, cookie.SameSite)
	suite.Equal(3600, cookie.MaxAge)
	suite.NotEmpty(cookie.Value)
}

func (suite *DashboardHandlerTestSuite) TestSuccessfulSignInStripsCodeAndServesDashboard() {
	suite.expectSignIn("abc", "other", testRoleID)

	rr := suite.do(http.MethodGet, "/?code=abc&symbol=qqq", nil)
	suite.Equal(http.StatusSeeOther, rr.Code)
	suite.Equal("/?symbol=qqq", rr.Header().Get("Location"))
	cookie := suite.sessionCookie(rr)

	live := chainDataset(400, 405)
	suite.quotes.On("GetQuote", mock.Anything, "QQQ").
		Return(quote.Quote{Price: floatPtr(402.5), PreviousClose: floatPtr(400.0)}).Once()
	suite.chain.On("FetchChain", mock.Anything, "QQQ").Return(floatPtr(402.4), live, nil).Once()

	rr = suite.do(http.MethodGet, "/?symbol=qqq", cookie)
	suite.Equal(http.StatusOK, rr.Code)
	body := suite.decode(rr)
	suite.Equal(StatusOK, body["status"])
	suite.Equal("QQQ", body["symbol"])
	suite.Equal(string(freshness.SourceLive), body["source"])
	suite.Equal(false, body["frozen"])
	suite.Equal(402.4, body["reference_price"])
	suite.Equal("moonwalker", body["user"].(map[string]interface{})["username"])
	suite.Len(body["rows"], 2)
	analysis := body["analysis"].(map[string]interface{})
	suite.Equal(450.0, analysis["reference_price"])
	suite.Len(analysis["gamma_exposure"].(map[string]interface{})["rows"], 1)
	suite.Equal(2, suite.analyzer.rows)

	saved, svcErr := suite.snapshots.Load(context.Background(), "QQQ")
	suite.Nil(svcErr)
	suite.Equal(2, saved.Dataset.Len())
}

func (suite *DashboardHandlerTestSuite) TestMissingRoleShowsDenialOnce() {
	suite.expectSignIn("abc", "other")

	rr := suite.do(http.MethodGet, "/?code=abc", nil)
	suite.Equal(http.StatusSeeOther, rr.Code)
	suite.Equal("/", rr.Header().Get("Location"))
	cookie := suite.sessionCookie(rr)

	rr = suite.do(http.MethodGet, "/", cookie)
	suite.Equal(http.StatusForbidden, rr.Code)
	body := suite.decode(rr)
	suite.Equal(StatusAccessDenied, body["status"])
	suite.Equal(session.AccessDeniedMessage, body["message"])
	suite.Equal(testAuthorizeURL, body["login_url"])

	rr = suite.do(http.MethodGet, "/", cookie)
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *DashboardHandlerTestSuite) TestReplayedCodeIsDeniedWithoutExchange() {
	suite.discord.On("ExchangeCode", mock.Anything, "used").
		Return(&discord.Credential{}, &discord.ErrorDuringTokenExchange).Once()

	rr := suite.do(http.MethodGet, "/?code=used", nil)
	suite.Equal(http.StatusSeeOther, rr.Code)
	cookie := suite.sessionCookie(rr)

	rr = suite.do(http.MethodGet, "/?code=used", cookie)
	suite.Equal(http.StatusSeeOther, rr.Code)
	suite.discord.AssertNumberOfCalls(suite.T(), "ExchangeCode", 1)
}

func (suite *DashboardHandlerTestSuite) TestAuthenticatedVisitorWithStaleCodeIsRedirected() {
	cookie := suite.signIn()

	rr := suite.do(http.MethodGet, "/?code=stale&symbol=spy", cookie)
	suite.Equal(http.StatusSeeOther, rr.Code)
	suite.Equal("/?symbol=spy", rr.Header().Get("Location"))
}

func (suite *DashboardHandlerTestSuite) TestDefaultSymbolAndUnavailableData() {
	cookie := suite.signIn()
	suite.quotes.On("GetQuote", mock.Anything, "SPY").Return(quote.Quote{}).Once()
	chainErr := chain.ErrorChainRequestFailed
	suite.chain.On("FetchChain", mock.Anything, "SPY").
		Return(nil, (*model.Dataset)(nil), &chainErr).Once()

	rr := suite.do(http.MethodGet, "/", cookie)

	suite.Equal(http.StatusBadGateway, rr.Code)
	body := suite.decode(rr)
	suite.Equal(StatusDataUnavailable, body["status"])
	suite.Equal(DataUnavailableMessage, body["message"])
}

func (suite *DashboardHandlerTestSuite) TestFreezeWindowServesSnapshot() {
	cookie := suite.signIn()
	stored := chainDataset(500, 505, 510)
	suite.Nil(suite.snapshots.Save(context.Background(), "SPY", floatPtr(505.0), stored))

	suite.now = time.Date(2026, 3, 3, 8, 0, 0, 0, suite.zone)
	suite.quotes.On("GetQuote", mock.Anything, "SPY").Return(quote.Quote{Price: floatPtr(506.0)}).Once()
	suite.chain.On("FetchChain", mock.Anything, "SPY").Return(floatPtr(506.1), chainDataset(1), nil).Once()

	rr := suite.do(http.MethodGet, "/", cookie)

	suite.Equal(http.StatusOK, rr.Code)
	body := suite.decode(rr)
	suite.Equal(string(freshness.SourceSnapshot), body["source"])
	suite.Equal(true, body["frozen"])
	suite.Equal(506.1, body["reference_price"])
	suite.Len(body["rows"], 3)
	suite.NotEmpty(body["snapshot_time"])
}

func (suite *DashboardHandlerTestSuite) TestAnalysisFailureIsOmitted() {
	cookie := suite.signIn()
	suite.analyzer.err = errors.New("boom")
	suite.quotes.On("GetQuote", mock.Anything, "SPY").Return(quote.Quote{}).Once()
	suite.chain.On("FetchChain", mock.Anything, "SPY").
		Return(floatPtr(500.0), chainDataset(500), (*serviceerror.ServiceError)(nil)).Once()

	rr := suite.do(http.MethodGet, "/", cookie)

	suite.Equal(http.StatusOK, rr.Code)
	_, ok := suite.decode(rr)["analysis"]
	suite.False(ok)
}

func (suite *DashboardHandlerTestSuite) TestLoginRedirectsToAuthorizeURL() {
	rr := suite.do(http.MethodGet, "/login", nil)

	suite.Equal(http.StatusFound, rr.Code)
	suite.Equal(testAuthorizeURL, rr.Header().Get("Location"))
}

func (suite *DashboardHandlerTestSuite) TestLogoutEndsSession() {
	cookie := suite.signIn()

	rr := suite.do(http.MethodPost, "/logout", cookie)
	suite.Equal(http.StatusSeeOther, rr.Code)
	suite.Equal("/", rr.Header().Get("Location"))
	suite.Equal(-1, suite.sessionCookie(rr).MaxAge)

	found, _ := suite.sessions.GetSession(cookie.Value)
	suite.False(found)

	rr = suite.do(http.MethodGet, "/", cookie)
	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.NotEqual(cookie.Value, suite.sessionCookie(rr).Value)
}

func (suite *DashboardHandlerTestSuite) TestUnknownRouteIsNotFound() {
	rr := suite.do(http.MethodGet, "/missing", nil)
	suite.Equal(http.StatusNotFound, rr.Code)
}
