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

// Package main implements the skylineg command-line interface.
// It resolves a GitHub login to its account identifier, fetches that
// user's contribution calendar for one year and prints the decoded
// identifier followed by the number of day records retrieved.
//
// Usage:
//
//	skylineg fetch --user <login> --year <year> [flags]
//
// Example:
//
//	export GITHUB_API_TOKEN=your_token
//	skylineg fetch -u octocat -y 2020 --output octocat-2020.ndjson
//
// The token may also be placed in a .env file in the working directory.
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Missing credential, authentication or rate limit error
//   - 3: Network error
package main
