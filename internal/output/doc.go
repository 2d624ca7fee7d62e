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

// Package output writes fetch results to the console or a file.
//
// Writer emits contribution records as NDJSON (one JSON object per line),
// which is easy to pipe into jq or load into a rendering step. Summary
// prints the two lines a run reports: the decoded user id, when one was
// found, and the number of records retrieved.
//
// Example usage:
//
//	w, err := output.NewFileWriter("2020.ndjson")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.WriteAll(records); err != nil {
//	    return err
//	}
package output
