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

// Package testutil provides common test helpers for skylineg
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// GraphQLRequest is a decoded GraphQL request body
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// IsContributionQuery reports whether the request asks for a contribution calendar
func (r GraphQLRequest) IsContributionQuery() bool {
	return strings.Contains(r.Query, "contributionsCollection")
}

// MockServer is a GitHub-like GraphQL endpoint at /graphql. It answers
// identity queries with IDResponse and contribution queries with
// CalendarResponse, and records every request it receives.
type MockServer struct {
	*httptest.Server
	t *testing.T

	IDResponse       map[string]interface{}
	CalendarResponse map[string]interface{}

	mu       sync.Mutex
	requests []GraphQLRequest
	headers  []http.Header
}

// NewMockServer creates a mock server that serves the given responses.
// The server is closed when the test finishes.
func NewMockServer(t *testing.T, idResponse, calendarResponse map[string]interface{}) *MockServer {
	t.Helper()
	m := &MockServer{
		t:                t,
		IDResponse:       idResponse,
		CalendarResponse: calendarResponse,
	}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Close)
	return m
}

// GraphQLURL returns the GraphQL endpoint of the server
func (m *MockServer) GraphQLURL() string {
	return m.Server.URL + "/graphql"
}

func (m *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/graphql" {
		http.NotFound(w, r)
		return
	}
	AssertGraphQLRequest(m.t, r)

	var req GraphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.headers = append(m.headers, r.Header.Clone())
	m.mu.Unlock()

	response := m.IDResponse
	if req.IsContributionQuery() {
		response = m.CalendarResponse
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// Requests returns the requests received so far
func (m *MockServer) Requests() []GraphQLRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GraphQLRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// Headers returns the headers of the requests received so far
func (m *MockServer) Headers() []http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]http.Header, len(m.headers))
	copy(out, m.headers)
	return out
}

// NewErrorServer creates a mock server that always returns the specified status
func NewErrorServer(t *testing.T, statusCode int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// AssertGraphQLRequest validates a GraphQL request structure
func AssertGraphQLRequest(t *testing.T, r *http.Request) {
	t.Helper()
	if r.URL.Path != "/graphql" {
		t.Errorf("Unexpected path: %s", r.URL.Path)
	}
	if r.Method != "POST" {
		t.Errorf("Expected POST method, got: %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type: application/json, got: %s", ct)
	}
}
