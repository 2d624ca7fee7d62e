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
	"encoding/base64"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shurcooL/graphql"
	"github.com/sirupsen/logrus"
	relaierrors "github.com/skylineg/skylineg/internal/errors"
)

// UserIdentity is the identifier GitHub issues for a user account.
// ID is the base64-decoded form of NodeID; neither is interpreted further.
type UserIdentity struct {
	Login  string
	NodeID string
	ID     string
}

// DateTime is an ISO-8601 timestamp sent as the GraphQL DateTime scalar.
// The type name becomes the variable type in the generated query.
type DateTime struct {
	time.Time
}

// ClientOptions configures the HTTP side of a GraphQLClient.
type ClientOptions struct {
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration

	// UserAgent is sent on every request. Defaults to "skylineg/<version>".
	UserAgent string

	// Logger receives debug diagnostics. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// userIDQuery resolves a login to its node id.
type userIDQuery struct {
	User *struct {
		ID graphql.String
	} `graphql:"user(login: $login)"`
}

// contributionQuery fetches the calendar of a login between $from and $to.
type contributionQuery struct {
	User *struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				Weeks []struct {
					ContributionDays []struct {
						Date              graphql.String
						ContributionCount graphql.Int
						Color             graphql.String
					}
				}
			}
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
	} `graphql:"user(login: $login)"`
}

// decodeUserID decodes a base64 node id into a UTF-8 string.
func decodeUserID(nodeID string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(nodeID)
	if err != nil {
		return "", fmt.Errorf("user id %q is not base64: %w", nodeID, relaierrors.ErrMalformedID)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("user id %q does not decode to UTF-8: %w", nodeID, relaierrors.ErrMalformedID)
	}
	return string(raw), nil
}
