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
	"io"

	"github.com/sirupsen/logrus"
	relaierrors "github.com/skylineg/skylineg/internal/errors"
)

// Bounds on the positional indexes. A counter is checked after it has been
// advanced, so the 8th day of a week and the 54th week are rejected.
const (
	maxDay  = 7
	maxWeek = 53
)

// DayError reports a week that delivered too many days.
type DayError struct {
	Day  int
	Date string
}

func (e *DayError) Error() string {
	return fmt.Sprintf("Invalid day %d from date %q", e.Day, e.Date)
}

// Unwrap lets errors.Is match ErrInvalidDay.
func (e *DayError) Unwrap() error { return relaierrors.ErrInvalidDay }

// WeekError reports a calendar that delivered too many weeks.
type WeekError struct {
	Week int
}

func (e *WeekError) Error() string {
	return fmt.Sprintf("Invalid week %d", e.Week)
}

// Unwrap lets errors.Is match ErrInvalidWeek.
func (e *WeekError) Unwrap() error { return relaierrors.ErrInvalidWeek }

// Flatten walks weeks in delivery order and returns one Contribution per day.
// Counts and colors are copied verbatim. Each week index and each
// (date, count) pair is logged at debug level as it is processed.
//
// A nil log discards the diagnostics.
func Flatten(weeks []Week, log logrus.FieldLogger) ([]Contribution, error) {
	if log == nil {
		log = discardLogger()
	}

	contributions := make([]Contribution, 0, len(weeks)*maxDay)
	currentWeek := 0
	for _, week := range weeks {
		log.WithField("week", currentWeek).Debug("processing week")

		currentDay := 0
		for _, day := range week.Days {
			log.WithFields(logrus.Fields{
				"date":  day.Date,
				"count": day.Count,
			}).Debug("processing day")

			contributions = append(contributions, Contribution{
				Week:  currentWeek,
				Day:   currentDay,
				Count: day.Count,
				Color: day.Color,
			})

			currentDay++
			if currentDay > maxDay {
				return nil, &DayError{Day: currentDay, Date: day.Date}
			}
		}

		currentWeek++
		if currentWeek > maxWeek {
			return nil, &WeekError{Week: currentWeek}
		}
	}

	return contributions, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
