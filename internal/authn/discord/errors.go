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

package discord

import "github.com/moonwalkers/moonmap/internal/system/error/serviceerror"

// Client errors for Discord authentication.
var (
	// ErrorEmptyAuthorizationCode is the error when the authorization code is empty.
	ErrorEmptyAuthorizationCode = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTH-DISCORD-1001",
		Error:            "Empty authorization code",
		ErrorDescription: "The authorization code cannot be empty",
	}
	// ErrorEmptyAccessToken is the error when the access token is empty.
	ErrorEmptyAccessToken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTH-DISCORD-1002",
		Error:            "Empty access token",
		ErrorDescription: "The access token cannot be empty",
	}
	// ErrorMembershipNotFound is the error when the user's guild membership cannot be read,
	// most commonly because the user is not a member of the guild.
	ErrorMembershipNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTH-DISCORD-1003",
		Error:            "Guild membership not found",
		ErrorDescription: "The user is not a member of the guild or the membership could not be read",
	}
)

// Server errors for Discord authentication.
var (
	// ErrorUnexpectedServerError is a generic error for unexpected server errors.
	ErrorUnexpectedServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTH-DISCORD-5000",
		Error:            "Something went wrong",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorDuringTokenExchange is the error when the code exchange fails.
	ErrorDuringTokenExchange = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTH-DISCORD-5001",
		Error:            "Error during token exchange",
		ErrorDescription: "An error occurred while exchanging the authorization code for token",
	}
	// ErrorFetchingUserInfo is the error when the current user cannot be fetched.
	ErrorFetchingUserInfo = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTH-DISCORD-5002",
		Error:            "Error fetching user information",
		ErrorDescription: "An error occurred while fetching user information from Discord",
	}
	// ErrorFetchingMembership is the error when the membership request cannot be sent.
	ErrorFetchingMembership = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTH-DISCORD-5003",
		Error:            "Error fetching guild membership",
		ErrorDescription: "An error occurred while fetching the guild membership from Discord",
	}
)
