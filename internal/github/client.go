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

	"github.com/skylineg/skylineg/internal/calendar"
)

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// LookupUser resolves a login to its decoded user identifier.
	// A login the service does not know yields a nil identity and no error.
	LookupUser(ctx context.Context, login string) (*UserIdentity, error)

	// FetchContributions returns the contribution calendar of login for year,
	// flattened week-major, day-minor. The year is validated before any
	// request is made.
	FetchContributions(ctx context.Context, login string, year int) ([]calendar.Contribution, error)
}
