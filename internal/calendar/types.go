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

// Contribution is a single flattened calendar day.
type Contribution struct {
	Week  int    `json:"week"`
	Day   int    `json:"day"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Week is one week of the calendar as delivered by the service.
type Week struct {
	Days []Day
}

// Day is one day of the calendar as delivered by the service.
// Date is kept as the service formats it (YYYY-MM-DD).
type Day struct {
	Date  string
	Count int
	Color string
}
