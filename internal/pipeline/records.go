package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"topchart/internal/chart"
	"topchart/internal/fileutil"
)

// WriteRecords stores records as an indented JSON array, replacing path
// atomically.
func WriteRecords(path string, records []chart.Record) error {
	if records == nil {
		records = []chart.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	if err := fileutil.WriteAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// ReadRecords loads a records file written by WriteRecords. A missing file
// reports ok=false without error.
func ReadRecords(path string) ([]chart.Record, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read records: %w", err)
	}
	var records []chart.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("decode records %s: %w", path, err)
	}
	if records == nil {
		records = []chart.Record{}
	}
	return records, true, nil
}
