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

// Package dashboard serves the gated market dashboard.
package dashboard

import (
	"net/http"
	"strings"
	"time"

	"github.com/moonwalkers/moonmap/internal/authn/discord"
	"github.com/moonwalkers/moonmap/internal/market/chain"
	"github.com/moonwalkers/moonmap/internal/market/freshness"
	"github.com/moonwalkers/moonmap/internal/market/quote"
	"github.com/moonwalkers/moonmap/internal/session"
	sessionmodel "github.com/moonwalkers/moonmap/internal/session/model"
	sessionstore "github.com/moonwalkers/moonmap/internal/session/store"
	sysconst "github.com/moonwalkers/moonmap/internal/system/constants"
	"github.com/moonwalkers/moonmap/internal/system/log"
	sysutils "github.com/moonwalkers/moonmap/internal/system/utils"
)

const (
	loggerComponentName = "DashboardHandler"
	callbackParam       = "code"
	symbolParam         = "symbol"
)

// CookieConfig configures the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Dependencies are the services the dashboard handler is built from.
type Dependencies struct {
	Sessions      sessionstore.SessionStoreInterface
	Gate          session.GateServiceInterface
	Discord       discord.DiscordAuthnServiceInterface
	Quotes        quote.QuoteServiceInterface
	Chain         chain.ChainClientInterface
	Freshness     freshness.FreshnessServiceInterface
	Analyzer      AnalyzerInterface
	Cookie        CookieConfig
	DefaultSymbol string
	Clock         func() time.Time
}

// DashboardHandler handles the dashboard, login and logout requests.
type DashboardHandler struct {
	deps Dependencies
}

// NewDashboardHandler creates a dashboard handler. A nil clock defaults to time.Now.
func NewDashboardHandler(deps Dependencies) *DashboardHandler {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &DashboardHandler{deps: deps}
}

// HandleDashboard gates the request on the visitor session and serves the market data.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.loadSession(w, r)
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionID, log.MaskString(sess.ID)))

	decision := h.deps.Gate.Resolve(ctx, sess, r.URL.Query().Get(callbackParam))

	switch decision.Outcome {
	case session.OutcomeLoginRequired:
		if notice := sess.TakeNotice(); notice != "" {
			sysutils.WriteJSON(w, http.StatusForbidden, DeniedResponse{
				Status:   StatusAccessDenied,
				Message:  notice,
				LoginURL: decision.LoginURL,
			})
			return
		}
		sysutils.WriteJSON(w, http.StatusUnauthorized, LoginResponse{
			Status:   StatusLoginRequired,
			LoginURL: decision.LoginURL,
		})
		return
	case session.OutcomeAccessDenied:
		if decision.StripCallback {
			sess.SetNotice(decision.Message)
			h.redirectWithoutCallback(w, r)
			return
		}
		sysutils.WriteJSON(w, http.StatusForbidden, DeniedResponse{
			Status:  StatusAccessDenied,
			Message: decision.Message,
		})
		return
	case session.OutcomeContinue:
		if decision.StripCallback {
			h.redirectWithoutCallback(w, r)
			return
		}
	default:
		logger.Error("Unknown gate outcome", log.String("outcome", string(decision.Outcome)))
		sysutils.WriteJSONError(w, "server_error", "Unexpected session state", http.StatusInternalServerError)
		return
	}

	identity := sess.Identity()
	if identity == nil {
		// Session ended by a concurrent logout.
		sysutils.WriteJSON(w, http.StatusUnauthorized, LoginResponse{
			Status:   StatusLoginRequired,
			LoginURL: h.deps.Discord.BuildAuthorizeURL(),
		})
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(symbolParam)))
	if symbol == "" {
		symbol = h.deps.DefaultSymbol
	}

	q := h.deps.Quotes.GetQuote(ctx, symbol)
	result := h.deps.Freshness.Resolve(ctx, symbol, h.deps.Clock(), h.deps.Chain.FetchChain)
	if result.Dataset.IsEmpty() {
		logger.Warn("No options data available", log.String(log.LoggerKeySymbol, symbol))
		sysutils.WriteJSON(w, http.StatusBadGateway, DeniedResponse{
			Status:  StatusDataUnavailable,
			Message: DataUnavailableMessage,
		})
		return
	}

	resp := DashboardResponse{
		Status:         StatusOK,
		User:           UserResponse{ID: identity.ID, Username: identity.Username},
		Symbol:         symbol,
		Quote:          q,
		ReferencePrice: result.Price,
		Source:         result.Source,
		Frozen:         result.Frozen,
		SnapshotTime:   result.SnapshotTime,
		Columns:        result.Dataset.Columns,
		Rows:           result.Dataset.Rows,
	}

	if h.deps.Analyzer != nil {
		analysis, err := h.deps.Analyzer.Analyze(ctx, result.Price, result.Dataset)
		if err != nil {
			logger.Error("Analysis failed", log.String(log.LoggerKeySymbol, symbol), log.Error(err))
		} else {
			resp.Analysis = analysis
		}
	}

	sysutils.WriteJSON(w, http.StatusOK, resp)
}

// HandleLogin redirects the visitor to the identity provider's authorize URL.
func (h *DashboardHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.deps.Discord.BuildAuthorizeURL(), http.StatusFound)
}

// HandleLogout ends the visitor session and expires its cookie.
func (h *DashboardHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.deps.Cookie.Name); err == nil {
		if found, sess := h.deps.Sessions.GetSession(cookie.Value); found {
			sess.End()
		}
		h.deps.Sessions.ClearSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.deps.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.deps.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loadSession returns the session named by the request cookie, creating a new one
// (and setting its cookie) when the cookie is absent or the session has expired.
func (h *DashboardHandler) loadSession(w http.ResponseWriter, r *http.Request) *sessionmodel.Session {
	if cookie, err := r.Cookie(h.deps.Cookie.Name); err == nil {
		if found, sess := h.deps.Sessions.GetSession(cookie.Value); found {
			return sess
		}
	}

	sess := h.deps.Sessions.CreateSession()
	http.SetCookie(w, &http.Cookie{
		Name:     h.deps.Cookie.Name,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.deps.Cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.deps.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (h *DashboardHandler) redirectWithoutCallback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(sysconst.LocationHeaderName, sysutils.StripQueryParams(r.URL, callbackParam))
	w.WriteHeader(http.StatusSeeOther)
}
