// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrMissingCredential indicates the API token environment variable is unset.
	// Maps to exit code 2.
	ErrMissingCredential = errors.New("missing github api token")

	// ErrInvalidYear indicates a year outside the range the service has data for.
	ErrInvalidYear = errors.New("Invalid Year")

	// ErrQuery indicates a GraphQL query failed in transport or was rejected by the service.
	// Every network failure is wrapped with it, so callers can test for it alone.
	ErrQuery = errors.New("graphql query failed")

	// ErrNoUserFound indicates the service answered but returned no matching user.
	ErrNoUserFound = errors.New("No user found")

	// ErrInvalidDay indicates a calendar week carried more days than allowed.
	ErrInvalidDay = errors.New("invalid day")

	// ErrInvalidWeek indicates a calendar carried more weeks than allowed.
	ErrInvalidWeek = errors.New("invalid week")

	// ErrMalformedID indicates a user identifier that is not base64-encoded UTF-8.
	ErrMalformedID = errors.New("malformed user id")

	// ErrInvalidToken indicates GitHub authentication failed.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("github rate limit exceeded")
)
