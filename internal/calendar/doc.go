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

// Package calendar turns a calendar year into the date range the contribution
// query is bounded by, and flattens the week/day calendar returned by the
// service into an ordered list of per-day contribution records.
//
// Records are produced week-major, day-minor. Week and day indexes are
// positional: the first delivered week is week 0 and the first delivered day
// of every week is day 0, regardless of the actual weekday.
//
// Example:
//
//	r, err := calendar.YearRange(2020)
//	if err != nil {
//	    // errors.Is(err, relaierrors.ErrInvalidYear)
//	}
//	records, err := calendar.Flatten(weeks, logrus.StandardLogger())
package calendar
