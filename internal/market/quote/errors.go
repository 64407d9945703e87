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

package quote

import "github.com/moonwalkers/moonmap/internal/system/error/serviceerror"

// Client errors for quote retrieval.
var (
	// ErrorEmptySymbol is the error when the requested symbol is blank.
	ErrorEmptySymbol = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "QUOTE-1001",
		Error:            "Empty symbol",
		ErrorDescription: "The ticker symbol cannot be empty",
	}
)

// Server errors for quote retrieval.
var (
	// ErrorQuoteRequestFailed is the error when the quote endpoint cannot be reached.
	ErrorQuoteRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "QUOTE-5001",
		Error:            "Quote request failed",
		ErrorDescription: "An error occurred while requesting the quote",
	}
	// ErrorQuoteEndpointError is the error when the quote endpoint responds with a non-success status.
	ErrorQuoteEndpointError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "QUOTE-5002",
		Error:            "Quote endpoint error",
		ErrorDescription: "The quote endpoint returned an error response",
	}
	// ErrorInvalidQuoteResponse is the error when the quote response body cannot be parsed.
	ErrorInvalidQuoteResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "QUOTE-5003",
		Error:            "Invalid quote response",
		ErrorDescription: "The quote endpoint returned a malformed response",
	}
)
