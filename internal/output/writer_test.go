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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skylineg/skylineg/internal/calendar"
)

// Compile-time check that Writer implements RecordWriter
var _ RecordWriter = (*Writer)(nil)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)

	if writer == nil {
		t.Fatal("NewWriter returned nil")
	}
	if writer.output != &buf {
		t.Error("Writer output doesn't match provided buffer")
	}
	if writer.encoder == nil {
		t.Error("Writer encoder is nil")
	}
	if writer.count != 0 {
		t.Errorf("Initial count should be 0, got %d", writer.count)
	}
}

func TestWriter_WriteAll(t *testing.T) {
	tests := []struct {
		name    string
		records []calendar.Contribution
		want    []string
	}{
		{
			name: "single record",
			records: []calendar.Contribution{
				{Week: 0, Day: 0, Count: 4, Color: "#40c463"},
			},
			want: []string{
				`{"week":0,"day":0,"count":4,"color":"#40c463"}`,
			},
		},
		{
			name: "multiple records keep order",
			records: []calendar.Contribution{
				{Week: 0, Day: 6, Count: 0, Color: "#ebedf0"},
				{Week: 1, Day: 0, Count: 1, Color: "#9be9a8"},
				{Week: 1, Day: 1, Count: 11, Color: "#216e39"},
			},
			want: []string{
				`{"week":0,"day":6,"count":0,"color":"#ebedf0"}`,
				`{"week":1,"day":0,"count":1,"color":"#9be9a8"}`,
				`{"week":1,"day":1,"count":11,"color":"#216e39"}`,
			},
		},
		{
			name:    "empty records",
			records: []calendar.Contribution{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writer := NewWriter(&buf)

			if err := writer.WriteAll(tt.records); err != nil {
				t.Fatalf("WriteAll failed: %v", err)
			}

			if writer.Count() != len(tt.records) {
				t.Errorf("Count mismatch: got %d, want %d", writer.Count(), len(tt.records))
			}

			output := strings.TrimSpace(buf.String())
			if output == "" && len(tt.want) == 0 {
				return
			}

			lines := strings.Split(output, "\n")
			if len(lines) != len(tt.want) {
				t.Fatalf("Line count mismatch: got %d, want %d", len(lines), len(tt.want))
			}
			for i, line := range lines {
				if line != tt.want[i] {
					t.Errorf("Line %d mismatch:\ngot:  %s\nwant: %s", i, line, tt.want[i])
				}
			}
		})
	}
}

func TestWriter_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)

	numGoroutines := 10
	recordsPerGoroutine := 100
	totalRecords := numGoroutines * recordsPerGoroutine

	errCh := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(week int) {
			for j := 0; j < recordsPerGoroutine; j++ {
				if err := writer.Write(calendar.Contribution{Week: week, Day: j, Count: j}); err != nil {
					errCh <- err
					return
				}
			}
			errCh <- nil
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("Concurrent write failed: %v", err)
		}
	}

	if writer.Count() != totalRecords {
		t.Errorf("Count mismatch: got %d, want %d", writer.Count(), totalRecords)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != totalRecords {
		t.Errorf("Line count mismatch: got %d, want %d", len(lines), totalRecords)
	}
	for i, line := range lines {
		var record calendar.Contribution
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Errorf("Invalid JSON at line %d: %v", i, err)
		}
	}
}

func TestNewFileWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "2020.ndjson")

	writer, err := NewFileWriter(filename)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	defer writer.Close()

	records := []calendar.Contribution{
		{Week: 0, Day: 0, Count: 2, Color: "#9be9a8"},
		{Week: 0, Day: 1, Count: 0, Color: "#ebedf0"},
	}
	if err := writer.WriteAll(records); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != len(records) {
		t.Fatalf("Line count mismatch: got %d, want %d", len(lines), len(records))
	}
	for i, line := range lines {
		var got calendar.Contribution
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("Failed to parse JSON at line %d: %v", i, err)
		}
		if got != records[i] {
			t.Errorf("line %d = %+v, want %+v", i, got, records[i])
		}
	}
}

func TestNewFileWriter_Error(t *testing.T) {
	_, err := NewFileWriter("/non/existent/path/test.ndjson")
	if err == nil {
		t.Error("Expected error for non-existent directory, got nil")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_WriteAllError(t *testing.T) {
	writer := NewWriter(failingWriter{})

	err := writer.WriteAll([]calendar.Contribution{{Week: 3, Day: 2}})
	if err == nil {
		t.Fatal("Expected error from failing writer")
	}
	if !strings.Contains(err.Error(), "week 3 day 2") {
		t.Errorf("error %q does not name the record", err)
	}
	if writer.Count() != 0 {
		t.Errorf("Count = %d, want 0", writer.Count())
	}
}

func TestWriter_WriteError(t *testing.T) {
	writer := NewWriter(&bytes.Buffer{})

	if err := writer.Write(make(chan int)); err == nil {
		t.Error("Expected error when writing non-marshalable data")
	}
}

func TestWriter_CloseOnce(t *testing.T) {
	calls := 0
	writer := &Writer{
		output:  &bytes.Buffer{},
		encoder: json.NewEncoder(&bytes.Buffer{}),
		closeFunc: func() error {
			calls++
			if calls > 1 {
				return errors.New("file already closed")
			}
			return nil
		},
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close error = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("closeFunc called %d times, want 1", calls)
	}
}

func TestNewFileWriter_DeferredCloseAfterClose(t *testing.T) {
	writer, err := NewFileWriter(filepath.Join(t.TempDir(), "twice.ndjson"))
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close error = %v, want nil", err)
	}
}
