package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SplitFrame is a table serialized as parallel columns, index and data arrays
// rather than one object per row.
type SplitFrame struct {
	Columns []string        `json:"columns"`
	Index   []int           `json:"index"`
	Data    [][]interface{} `json:"data"`
}

// Validate checks that the index and every row line up with the columns
func (f *SplitFrame) Validate() error {
	if len(f.Index) != len(f.Data) {
		return fmt.Errorf("index has %d entries but data has %d rows", len(f.Index), len(f.Data))
	}
	for i, row := range f.Data {
		if len(row) != len(f.Columns) {
			return fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(f.Columns))
		}
	}
	return nil
}

// MarshalCompact serializes the frame as compact JSON without HTML escaping
func (f *SplitFrame) MarshalCompact() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid frame: %w", err)
	}
	return EncodeJSON(f)
}

// EncodeJSON encodes v compactly, leaving <, > and & unescaped
func EncodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder terminates every value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
