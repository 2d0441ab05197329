package naver

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Table is the untyped intermediate form of a siseJson response: a header
// row of upstream column labels plus data rows of scalar cells (numbers or
// numeric strings). Column order is not stable across calls, so cells must
// be addressed through label lookup, never by fixed position.
type Table struct {
	Header []string
	Rows   [][]any
}

// trailingComma matches a dangling comma before a closing bracket, which the
// upstream emits but encoding/json rejects.
var trailingComma = regexp.MustCompile(`,\s*\]`)

// ParseTable parses the quasi-JSON array literal the upstream returns.
// The text is a JavaScript-style nested array: single-quoted strings and
// trailing commas are tolerated and normalized before decoding.
//
// Individually malformed rows (not an array, or shorter than the header) are
// skipped silently; only an unparsable top-level structure is an error.
func ParseTable(text string) (*Table, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "'", `"`)
	s = trailingComma.ReplaceAllString(s, "]")

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrMalformedPayload)
	}

	var header []string
	if err := json.Unmarshal(raw[0], &header); err != nil {
		return nil, fmt.Errorf("%w: header row: %v", ErrMalformedPayload, err)
	}

	rows := make([][]any, 0, len(raw)-1)
	for _, rm := range raw[1:] {
		var row []any
		if err := json.Unmarshal(rm, &row); err != nil {
			continue // per-row skip, not fatal
		}
		if len(row) < len(header) {
			continue
		}
		rows = append(rows, row)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// Column returns the index of the column with the given label.
func (t *Table) Column(label string) (int, bool) {
	for i, h := range t.Header {
		if h == label {
			return i, true
		}
	}
	return 0, false
}

// Require returns the index of a required column, or ErrMissingColumn
// naming the label.
func (t *Table) Require(label string) (int, error) {
	i, ok := t.Column(label)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, label)
	}
	return i, nil
}
