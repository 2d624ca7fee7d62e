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

// Package github provides a client for GitHub's GraphQL API that resolves a
// login to its user identifier and fetches the contribution calendar of a
// login for one calendar year.
//
// The package includes:
//   - A Client interface for identity lookup and contribution fetching
//   - A GraphQL implementation using the shurcooL/graphql library
//   - Mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql", github.ClientOptions{})
//	records, err := client.FetchContributions(ctx, "octocat", 2020)
//	if err != nil {
//	    // Handle error
//	}
//	for _, r := range records {
//	    // r.Week, r.Day, r.Count, r.Color
//	}
package github
