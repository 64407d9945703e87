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

// Package discord implements the Discord OAuth2 client used to sign visitors in and
// read their role membership in the gated guild.
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	sessionmodel "github.com/moonwalkers/moonmap/internal/session/model"
	"github.com/moonwalkers/moonmap/internal/system/config"
	sysconst "github.com/moonwalkers/moonmap/internal/system/constants"
	"github.com/moonwalkers/moonmap/internal/system/error/serviceerror"
	syshttp "github.com/moonwalkers/moonmap/internal/system/http"
	"github.com/moonwalkers/moonmap/internal/system/log"
)

const loggerComponentName = "DiscordAuthnService"

// DiscordAuthnServiceInterface defines the Discord calls of the sign-in flow.
type DiscordAuthnServiceInterface interface {
	BuildAuthorizeURL() string
	ExchangeCode(ctx context.Context, code string) (*Credential, *serviceerror.ServiceError)
	FetchIdentity(ctx context.Context, accessToken string) (*sessionmodel.Identity, *serviceerror.ServiceError)
	FetchMembership(ctx context.Context, accessToken string) (*MembershipRecord, *serviceerror.ServiceError)
}

// DiscordAuthnService is the default implementation of DiscordAuthnServiceInterface.
type DiscordAuthnService struct {
	oauthConfig oauth2.Config
	apiBase     string
	guildID     string
	httpClient  syshttp.HTTPClientInterface
}

// NewDiscordAuthnService creates a Discord client from the identity provider configuration.
// A nil httpClient gets the default bounded timeout, or the configured one when set.
func NewDiscordAuthnService(cfg config.IdentityProviderConfig,
	httpClient syshttp.HTTPClientInterface) DiscordAuthnServiceInterface {
	if httpClient == nil {
		httpClient = syshttp.NewHTTPClientWithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}
	apiBase := strings.TrimRight(cfg.APIBase, "/")
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{config.ScopeIdentify, config.ScopeGuildMembersRead}
	}

	return &DiscordAuthnService{
		oauthConfig: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   apiBase + AuthorizePath,
				TokenURL:  apiBase + TokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBase:    apiBase,
		guildID:    cfg.GuildID,
		httpClient: httpClient,
	}
}

// BuildAuthorizeURL returns the authorization URL the visitor is sent to for sign-in.
func (d *DiscordAuthnService) BuildAuthorizeURL() string {
	return d.oauthConfig.AuthCodeURL("")
}

// ExchangeCode exchanges the callback code for an access token. On failure the
// returned credential is empty.
func (d *DiscordAuthnService) ExchangeCode(ctx context.Context, code string) (*Credential,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(code) == "" {
		return &Credential{}, &ErrorEmptyAuthorizationCode
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, d.httpClient.Client())
	token, err := d.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			logger.Error("Token endpoint returned an error response",
				log.Int("statusCode", retrieveErr.Response.StatusCode),
				log.String("error", retrieveErr.ErrorCode))
		} else {
			logger.Error("Token exchange failed", log.Error(err))
		}
		return &Credential{}, &ErrorDuringTokenExchange
	}

	logger.Debug("Exchanged authorization code for token")
	return &Credential{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		Expiry:      token.Expiry,
	}, nil
}

// FetchIdentity returns the current user. On failure the returned identity is empty.
func (d *DiscordAuthnService) FetchIdentity(ctx context.Context, accessToken string) (*sessionmodel.Identity,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if accessToken == "" {
		return &sessionmodel.Identity{}, &ErrorEmptyAccessToken
	}

	resp, svcErr := d.get(ctx, CurrentUserPath, accessToken, &ErrorFetchingUserInfo, logger)
	if svcErr != nil {
		return &sessionmodel.Identity{}, svcErr
	}
	defer closeBody(resp, logger)

	if resp.StatusCode != http.StatusOK {
		logErrorResponse(resp, "User endpoint returned an error response", logger)
		return &sessionmodel.Identity{}, &ErrorFetchingUserInfo
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read user response body", log.Error(err))
		return &sessionmodel.Identity{}, &ErrorFetchingUserInfo
	}
	var attributes map[string]interface{}
	if err := json.Unmarshal(body, &attributes); err != nil {
		logger.Error("Failed to parse user response", log.Error(err))
		return &sessionmodel.Identity{}, &ErrorFetchingUserInfo
	}
	id, _ := attributes[userAttributeID].(string)
	if id == "" {
		logger.Error("User response does not carry an id")
		return &sessionmodel.Identity{}, &ErrorFetchingUserInfo
	}
	username, _ := attributes[userAttributeUsername].(string)

	return &sessionmodel.Identity{
		ID:         id,
		Username:   username,
		Attributes: attributes,
	}, nil
}

// FetchMembership returns the user's membership in the configured guild. Any non-200
// response, including the 404 returned for non-members, yields a nil record.
func (d *DiscordAuthnService) FetchMembership(ctx context.Context, accessToken string) (*MembershipRecord,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if accessToken == "" {
		return nil, &ErrorEmptyAccessToken
	}

	path := fmt.Sprintf(GuildMemberPathFormat, d.guildID)
	resp, svcErr := d.get(ctx, path, accessToken, &ErrorFetchingMembership, logger)
	if svcErr != nil {
		return nil, svcErr
	}
	defer closeBody(resp, logger)

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			logger.Debug("User is not a member of the guild")
		} else {
			logErrorResponse(resp, "Guild member endpoint returned an error response", logger)
		}
		return nil, &ErrorMembershipNotFound
	}

	var record MembershipRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		logger.Error("Failed to parse guild member response", log.Error(err))
		return nil, &ErrorMembershipNotFound
	}
	return &record, nil
}

func (d *DiscordAuthnService) get(ctx context.Context, path, accessToken string,
	failure *serviceerror.ServiceError, logger *log.Logger) (*http.Response, *serviceerror.ServiceError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiBase+path, nil)
	if err != nil {
		logger.Error("Failed to create request", log.String("path", path), log.Error(err))
		return nil, &ErrorUnexpectedServerError
	}
	req.Header.Set(sysconst.AuthorizationHeaderName, sysconst.TokenTypeBearer+" "+accessToken)
	req.Header.Set(sysconst.AcceptHeaderName, sysconst.ContentTypeJSON)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		logger.Error("Request to Discord failed", log.String("path", path), log.Error(err))
		return nil, failure
	}
	return resp, nil
}

func closeBody(resp *http.Response, logger *log.Logger) {
	if err := resp.Body.Close(); err != nil {
		logger.Error("Failed to close response body", log.Error(err))
	}
}

func logErrorResponse(resp *http.Response, msg string, logger *log.Logger) {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, sysconst.MaxErrorBodySize))
	logger.Error(msg, log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
}
