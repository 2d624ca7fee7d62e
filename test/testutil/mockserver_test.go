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

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestCalendarBuilder(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	response := NewCalendarBuilder(start).
		WithWeek(1, 2, 3, 4).
		WithFullWeeks(2, 0).
		Build()

	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("response missing data")
	}
	user := data["user"].(map[string]interface{})
	collection := user["contributionsCollection"].(map[string]interface{})
	cal := collection["contributionCalendar"].(map[string]interface{})
	weeks := cal["weeks"].([]interface{})

	if len(weeks) != 3 {
		t.Fatalf("expected 3 weeks, got %d", len(weeks))
	}

	first := weeks[0].(map[string]interface{})["contributionDays"].([]interface{})
	if len(first) != 4 {
		t.Fatalf("expected 4 days in first week, got %d", len(first))
	}
	day := first[3].(map[string]interface{})
	if day["date"] != "2020-01-04" {
		t.Errorf("date = %v, want 2020-01-04", day["date"])
	}
	if day["contributionCount"] != 4 {
		t.Errorf("contributionCount = %v, want 4", day["contributionCount"])
	}
	if day["color"] != "#40c463" {
		t.Errorf("color = %v, want #40c463", day["color"])
	}

	second := weeks[1].(map[string]interface{})["contributionDays"].([]interface{})
	if got := second[0].(map[string]interface{})["date"]; got != "2020-01-05" {
		t.Errorf("second week starts %v, want 2020-01-05", got)
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "#ebedf0"},
		{1, "#9be9a8"},
		{5, "#40c463"},
		{9, "#30a14e"},
		{42, "#216e39"},
	}

	for _, tt := range tests {
		if got := colorFor(tt.count); got != tt.want {
			t.Errorf("colorFor(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

func TestMockServer(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	server := NewMockServer(t, UserIDResponse("MDQ6VXNlcjE="), NewCalendarBuilder(start).WithFullWeeks(1, 1).Build())

	post := func(query string) map[string]interface{} {
		t.Helper()
		body, _ := json.Marshal(GraphQLRequest{Query: query, Variables: map[string]interface{}{"login": "octocat"}})
		resp, err := http.Post(server.GraphQLURL(), "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		var out map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return out
	}

	idResp := post("query($login:String!){user(login: $login){id}}")
	user := idResp["data"].(map[string]interface{})["user"].(map[string]interface{})
	if user["id"] != "MDQ6VXNlcjE=" {
		t.Errorf("id = %v", user["id"])
	}

	calResp := post("query{user(login: $login){contributionsCollection(from: $from, to: $to){contributionCalendar{weeks{contributionDays{date}}}}}}")
	user = calResp["data"].(map[string]interface{})["user"].(map[string]interface{})
	if _, ok := user["contributionsCollection"]; !ok {
		t.Error("contribution query did not get a calendar response")
	}

	reqs := server.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 recorded requests, got %d", len(reqs))
	}
	if reqs[0].IsContributionQuery() || !reqs[1].IsContributionQuery() {
		t.Error("requests were not classified correctly")
	}
	if reqs[0].Variables["login"] != "octocat" {
		t.Errorf("login variable = %v", reqs[0].Variables["login"])
	}
	if len(server.Headers()) != 2 {
		t.Errorf("expected 2 recorded headers, got %d", len(server.Headers()))
	}
}

func TestNewErrorServer(t *testing.T) {
	server := NewErrorServer(t, http.StatusUnauthorized, `{"message":"Bad credentials"}`)

	resp, err := http.Post(server.URL+"/graphql", "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}
