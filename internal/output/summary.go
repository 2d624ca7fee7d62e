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

package output

import (
	"fmt"
	"io"
)

// Summary prints the result of a run. The id line is omitted when no user
// identity was found; the count line is always printed.
func Summary(w io.Writer, userID *string, count int) error {
	if userID != nil {
		if _, err := fmt.Fprintf(w, "%q\n", *userID); err != nil {
			return fmt.Errorf("failed to write user id: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "%d\n", count); err != nil {
		return fmt.Errorf("failed to write record count: %w", err)
	}
	return nil
}
