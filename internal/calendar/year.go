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

package calendar

import (
	"fmt"
	"time"

	relaierrors "github.com/skylineg/skylineg/internal/errors"
)

// FirstYear is the earliest year GitHub has contribution data for.
const FirstYear = 2008

const (
	startLayout = "%04d-01-01T00:00:00Z"
	endLayout   = "%04d-12-31T11:59:59Z"
)

// DateRange bounds a contribution query. Both ends are ISO-8601 UTC timestamps.
type DateRange struct {
	Start string
	End   string
}

// YearRange returns the date range covering year, measured against the
// current UTC year. Only completed years from FirstYear on are accepted.
func YearRange(year int) (DateRange, error) {
	return YearRangeAt(year, time.Now())
}

// YearRangeAt is YearRange with an explicit notion of "now".
//
// The end bound is 11:59:59 on December 31st, not 23:59:59. Existing callers
// depend on that exact value, so it is kept as is.
func YearRangeAt(year int, now time.Time) (DateRange, error) {
	if year < FirstYear || year >= now.UTC().Year() {
		return DateRange{}, relaierrors.ErrInvalidYear
	}

	return DateRange{
		Start: fmt.Sprintf(startLayout, year),
		End:   fmt.Sprintf(endLayout, year),
	}, nil
}

// Times parses both bounds of the range.
func (r DateRange) Times() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse range start %q: %w", r.Start, err)
	}
	end, err = time.Parse(time.RFC3339, r.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse range end %q: %w", r.End, err)
	}
	return start, end, nil
}
