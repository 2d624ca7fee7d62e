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

import "time"

// Color codes GitHub uses for the default calendar theme, lightest first.
var calendarColors = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

// CalendarBuilder provides a fluent API for creating contribution calendar responses
type CalendarBuilder struct {
	next  time.Time
	weeks []map[string]interface{}
}

// NewCalendarBuilder creates a builder whose first day is start
func NewCalendarBuilder(start time.Time) *CalendarBuilder {
	return &CalendarBuilder{next: start}
}

// WithWeek appends one week with a day per count, on consecutive dates
func (b *CalendarBuilder) WithWeek(counts ...int) *CalendarBuilder {
	days := make([]interface{}, 0, len(counts))
	for _, c := range counts {
		days = append(days, map[string]interface{}{
			"date":              b.next.Format("2006-01-02"),
			"contributionCount": c,
			"color":             colorFor(c),
		})
		b.next = b.next.AddDate(0, 0, 1)
	}
	b.weeks = append(b.weeks, map[string]interface{}{
		"contributionDays": days,
	})
	return b
}

// WithFullWeeks appends n seven-day weeks where every day has count contributions
func (b *CalendarBuilder) WithFullWeeks(n, count int) *CalendarBuilder {
	for i := 0; i < n; i++ {
		b.WithWeek(count, count, count, count, count, count, count)
	}
	return b
}

// Build returns the complete GraphQL response body
func (b *CalendarBuilder) Build() map[string]interface{} {
	weeks := make([]interface{}, 0, len(b.weeks))
	for _, w := range b.weeks {
		weeks = append(weeks, w)
	}
	return map[string]interface{}{
		"data": map[string]interface{}{
			"user": map[string]interface{}{
				"contributionsCollection": map[string]interface{}{
					"contributionCalendar": map[string]interface{}{
						"weeks": weeks,
					},
				},
			},
		},
	}
}

// UserIDResponse returns an identity lookup response carrying nodeID
func UserIDResponse(nodeID string) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"user": map[string]interface{}{
				"id": nodeID,
			},
		},
	}
}

// UnknownUserResponse is what GitHub answers for a login that does not exist
func UnknownUserResponse(login string) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"user": nil,
		},
		"errors": []interface{}{
			map[string]interface{}{
				"type":    "NOT_FOUND",
				"path":    []interface{}{"user"},
				"message": "Could not resolve to a User with the login of '" + login + "'.",
			},
		},
	}
}

// NullUserResponse returns data with a null user and no errors
func NullUserResponse() map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"user": nil,
		},
	}
}

func colorFor(count int) string {
	switch {
	case count <= 0:
		return calendarColors[0]
	case count < 3:
		return calendarColors[1]
	case count < 6:
		return calendarColors[2]
	case count < 10:
		return calendarColors[3]
	default:
		return calendarColors[4]
	}
}
