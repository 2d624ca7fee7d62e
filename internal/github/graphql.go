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

package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shurcooL/graphql"
	"github.com/sirupsen/logrus"
	"github.com/skylineg/skylineg/internal/calendar"
	relaierrors "github.com/skylineg/skylineg/internal/errors"
	"github.com/skylineg/skylineg/internal/giterror"
	"github.com/skylineg/skylineg/pkg/version"
	"golang.org/x/oauth2"
)

// GraphQLClient implements the GitHub Client interface using GraphQL API.
type GraphQLClient struct {
	client    *graphql.Client
	inspector giterror.Inspector
	log       logrus.FieldLogger
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token and endpoint.
// The client is configured with:
//   - Bearer authentication from a static oauth2 token source
//   - Custom GraphQL endpoint URL (e.g., for GitHub Enterprise)
//   - Optional per-request timeout
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
func NewGraphQLClient(token string, endpoint string, opts ClientOptions) *GraphQLClient {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        2,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "skylineg/" + version.Version
	}

	httpClient := &http.Client{
		Timeout: opts.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base: &headerTransport{
				userAgent: userAgent,
				limit:     maxResponseBytes,
				base:      transport,
			},
		},
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		inspector: giterror.NewErrorChainInspector(giterror.NewInspector()),
		log:       log.WithField("component", "github"),
	}
}

// execute sends the query shaped by Q and decodes the response into a new Q.
//
// GitHub reports an unknown login as an error next to "user": null. That
// case is not a failure: the decoded response, with its nil user, is returned.
func execute[Q any](ctx context.Context, c *GraphQLClient, op string, variables map[string]interface{}) (*Q, error) {
	var q Q

	c.log.WithField("op", op).Debug("sending query")
	err := c.client.Query(ctx, &q, variables)
	if err != nil {
		if c.inspector.IsUserNotFoundError(err) {
			c.log.WithField("op", op).WithError(err).Debug("service could not resolve user")
			return &q, nil
		}
		return nil, c.mapError(op, err)
	}

	return &q, nil
}

// LookupUser resolves login to its user identifier. The node id returned by
// the service is base64-decoded; an id that does not decode to UTF-8 fails
// with ErrMalformedID.
func (c *GraphQLClient) LookupUser(ctx context.Context, login string) (*UserIdentity, error) {
	variables := map[string]interface{}{
		"login": graphql.String(login),
	}

	q, err := execute[userIDQuery](ctx, c, "user id", variables)
	if err != nil {
		return nil, err
	}
	if q.User == nil {
		return nil, nil
	}

	nodeID := string(q.User.ID)
	id, err := decodeUserID(nodeID)
	if err != nil {
		return nil, err
	}

	return &UserIdentity{
		Login:  login,
		NodeID: nodeID,
		ID:     id,
	}, nil
}

// FetchContributions fetches the contribution calendar of login for year and
// flattens it. An invalid year fails with ErrInvalidYear before any request;
// a response without a user fails with ErrNoUserFound.
func (c *GraphQLClient) FetchContributions(ctx context.Context, login string, year int) ([]calendar.Contribution, error) {
	r, err := calendar.YearRange(year)
	if err != nil {
		return nil, err
	}
	from, to, err := r.Times()
	if err != nil {
		return nil, err
	}

	variables := map[string]interface{}{
		"login": graphql.String(login),
		"from":  DateTime{from},
		"to":    DateTime{to},
	}

	q, err := execute[contributionQuery](ctx, c, "contributions", variables)
	if err != nil {
		return nil, err
	}
	if q.User == nil {
		return nil, fmt.Errorf("%w: %s", relaierrors.ErrNoUserFound, login)
	}

	return calendar.Flatten(convertWeeks(q), c.log.WithField("login", login))
}

// convertWeeks copies the response calendar into the wire-independent shape.
func convertWeeks(q *contributionQuery) []calendar.Week {
	src := q.User.ContributionsCollection.ContributionCalendar.Weeks
	weeks := make([]calendar.Week, 0, len(src))
	for _, w := range src {
		week := calendar.Week{Days: make([]calendar.Day, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			week.Days = append(week.Days, calendar.Day{
				Date:  string(d.Date),
				Count: int(d.ContributionCount),
				Color: string(d.Color),
			})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// mapError maps GraphQL errors to our domain errors with actionable messages.
// Every result wraps ErrQuery.
func (c *GraphQLClient) mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("%s query: GitHub API rate limit exceeded: %w: %w", op, relaierrors.ErrQuery, relaierrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("%s query: GitHub API authentication failed. Check the configured API token: %w: %w", op, relaierrors.ErrQuery, relaierrors.ErrInvalidToken)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("%s query: network error connecting to GitHub API (%v): %w: %w", op, err, relaierrors.ErrQuery, relaierrors.ErrNetworkFailure)
	}

	return fmt.Errorf("%s query: %w: %w", op, relaierrors.ErrQuery, err)
}
