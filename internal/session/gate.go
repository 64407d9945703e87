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

// Package session runs the sign-in state machine of a visitor session.
package session

import (
	"context"

	"github.com/moonwalkers/moonmap/internal/authn/discord"
	"github.com/moonwalkers/moonmap/internal/authz"
	"github.com/moonwalkers/moonmap/internal/session/model"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const loggerComponentName = "GateService"

// AccessDeniedMessage is shown to visitors who fail the role check.
const AccessDeniedMessage = "You do not have the required Discord role."

// Outcome is the result of resolving a session against a request.
type Outcome string

const (
	// OutcomeContinue means the visitor is authenticated and the request proceeds.
	OutcomeContinue Outcome = "continue"
	// OutcomeLoginRequired means the visitor must sign in through the authorize URL.
	OutcomeLoginRequired Outcome = "login_required"
	// OutcomeAccessDenied means the sign-in attempt failed or the role check denied it.
	OutcomeAccessDenied Outcome = "access_denied"
)

// Decision tells the caller how to proceed with a request.
type Decision struct {
	Outcome Outcome
	// StripCallback asks the caller to drop the code parameter from the visible address.
	StripCallback bool
	LoginURL      string
	Message       string
}

// GateServiceInterface resolves a session and the callback code of a request into a decision.
type GateServiceInterface interface {
	Resolve(ctx context.Context, session *model.Session, callbackCode string) Decision
}

// GateService admits visitors holding the required role in the configured guild.
type GateService struct {
	discordService discord.DiscordAuthnServiceInterface
	requiredRoleID string
}

// NewGateService creates a gate service.
func NewGateService(discordService discord.DiscordAuthnServiceInterface, requiredRoleID string) GateServiceInterface {
	return &GateService{
		discordService: discordService,
		requiredRoleID: requiredRoleID,
	}
}

// Resolve moves an unauthenticated session through code exchange, identity lookup,
// membership lookup and the role check. Any failure along the chain denies access.
// A code is consumed before it is exchanged, so presenting it again is denied without
// contacting the identity provider.
func (g *GateService) Resolve(ctx context.Context, session *model.Session, callbackCode string) Decision {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionID, log.MaskString(session.ID)))

	if session.IsAuthenticated() {
		return Decision{Outcome: OutcomeContinue, StripCallback: callbackCode != ""}
	}

	if callbackCode == "" {
		return Decision{Outcome: OutcomeLoginRequired, LoginURL: g.discordService.BuildAuthorizeURL()}
	}

	if !session.ConsumeCode(callbackCode) {
		logger.Debug("Callback code already consumed")
		return g.deny()
	}

	credential, svcErr := g.discordService.ExchangeCode(ctx, callbackCode)
	if svcErr != nil || credential.IsEmpty() {
		logger.Debug("Code exchange failed")
		return g.deny()
	}

	identity, svcErr := g.discordService.FetchIdentity(ctx, credential.AccessToken)
	if svcErr != nil || identity.IsEmpty() {
		logger.Debug("Identity lookup failed")
		return g.deny()
	}

	record, svcErr := g.discordService.FetchMembership(ctx, credential.AccessToken)
	if svcErr != nil {
		logger.Debug("Membership lookup returned no record", log.String("code", svcErr.Code))
	}

	if !authz.HasRequiredRole(record, g.requiredRoleID) {
		logger.Info("Access denied", log.String("userId", identity.ID))
		return g.deny()
	}

	if !session.Authenticate(identity) {
		return g.deny()
	}

	logger.Info("Visitor authenticated", log.String("userId", identity.ID))
	return Decision{Outcome: OutcomeContinue, StripCallback: true}
}

func (g *GateService) deny() Decision {
	return Decision{
		Outcome:       OutcomeAccessDenied,
		StripCallback: true,
		Message:       AccessDeniedMessage,
	}
}
