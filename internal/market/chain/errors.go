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

package chain

import "github.com/moonwalkers/moonmap/internal/system/error/serviceerror"

// Client errors for options-chain retrieval.
var (
	// ErrorNoExpirations is the error when the symbol has no listed option expirations.
	ErrorNoExpirations = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CHAIN-1001",
		Error:            "No expirations",
		ErrorDescription: "The symbol has no listed option expirations",
	}
)

// Server errors for options-chain retrieval.
var (
	// ErrorChainRequestFailed is the error when the options API cannot be reached.
	ErrorChainRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CHAIN-5001",
		Error:            "Options request failed",
		ErrorDescription: "An error occurred while requesting options data",
	}
	// ErrorChainEndpointError is the error when the options API responds with a non-success status.
	ErrorChainEndpointError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CHAIN-5002",
		Error:            "Options endpoint error",
		ErrorDescription: "The options endpoint returned an error response",
	}
	// ErrorInvalidChainResponse is the error when an options API response cannot be parsed.
	ErrorInvalidChainResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CHAIN-5003",
		Error:            "Invalid options response",
		ErrorDescription: "The options endpoint returned a malformed response",
	}
)
