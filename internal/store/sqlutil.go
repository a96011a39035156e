package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// encodeJSON marshals v for storage in a TEXT column.
func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding column value: %w", err)
	}
	return string(data), nil
}

// decodeStrings parses a JSON string array column. An empty or null column
// yields an empty, non-nil slice.
func decodeStrings(s string) ([]string, error) {
	if s == "" || s == "null" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("parsing string array column: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// decodeExtra parses the extra passthrough column.
func decodeExtra(s sql.NullString) (map[string]json.RawMessage, error) {
	if !s.Valid || s.String == "" || s.String == "null" {
		return nil, nil
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s.String), &out); err != nil {
		return nil, fmt.Errorf("parsing extra column: %w", err)
	}
	return out, nil
}

// encodeExtra marshals the extra passthrough map, or NULL when empty.
func encodeExtra(extra map[string]json.RawMessage) (sql.NullString, error) {
	if len(extra) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encoding extra column: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// formatTime renders a timestamp for storage.
func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseStoredTime parses a stored timestamp.
func parseStoredTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored timestamp %q: %w", s, err)
	}
	return t, nil
}

// nullIfEmpty wraps a string column that stores NULL for the empty value.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
