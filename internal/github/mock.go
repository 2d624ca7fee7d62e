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

	"github.com/skylineg/skylineg/internal/calendar"
	relaierrors "github.com/skylineg/skylineg/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Identity returned by LookupUser; nil simulates an unknown login
	Identity *UserIdentity

	// Weeks flattened by FetchContributions
	Weeks []calendar.Week

	// Error to return from both calls
	Error error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool
	NoUser            bool

	// Track calls for verification
	LookupCalls int
	FetchCalls  int
	LastLogin   string
	LastYear    int
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Identity: &UserIdentity{
			Login:  "octocat",
			NodeID: "MDQ6VXNlcjU4MzIzMQ==",
			ID:     "04:User583231",
		},
		Weeks: generateTestWeeks(2),
	}
}

// LookupUser implements the Client interface
func (m *MockClient) LookupUser(ctx context.Context, login string) (*UserIdentity, error) {
	m.LookupCalls++
	m.LastLogin = login

	if err := m.fail(ctx); err != nil {
		return nil, err
	}
	if m.NoUser {
		return nil, nil
	}
	return m.Identity, nil
}

// FetchContributions implements the Client interface
func (m *MockClient) FetchContributions(ctx context.Context, login string, year int) ([]calendar.Contribution, error) {
	m.FetchCalls++
	m.LastLogin = login
	m.LastYear = year

	// Same validation order as the real client: no request for a bad year
	if _, err := calendar.YearRange(year); err != nil {
		return nil, err
	}
	if err := m.fail(ctx); err != nil {
		return nil, err
	}
	if m.NoUser {
		return nil, fmt.Errorf("%w: %s", relaierrors.ErrNoUserFound, login)
	}
	return calendar.Flatten(m.Weeks, nil)
}

func (m *MockClient) fail(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w: %w", relaierrors.ErrQuery, relaierrors.ErrInvalidToken)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w: %w", relaierrors.ErrQuery, relaierrors.ErrNetworkFailure)
	}
	return m.Error
}

// generateTestWeeks creates n full weeks of zero-count days starting 2020-01-05
func generateTestWeeks(n int) []calendar.Week {
	weeks := make([]calendar.Week, 0, n)
	for w := 0; w < n; w++ {
		week := calendar.Week{}
		for d := 0; d < 7; d++ {
			week.Days = append(week.Days, calendar.Day{
				Date:  fmt.Sprintf("2020-01-%02d", 5+w*7+d),
				Count: 0,
				Color: "#ebedf0",
			})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithWeeks sets the calendar to flatten
func WithWeeks(weeks []calendar.Week) MockClientOption {
	return func(m *MockClient) {
		m.Weeks = weeks
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// WithNoUser makes the client behave as if the login does not exist
func WithNoUser() MockClientOption {
	return func(m *MockClient) {
		m.NoUser = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
