package types

import "encoding/json"

// BackupDocument is the portable export/import shape. Every section holds
// all records regardless of deletion state, so tombstones round-trip and a
// re-import of an older backup cannot resurrect a deleted item. Sections
// are optional on import: each present section is applied independently.
type BackupDocument struct {
	Notes     []json.RawMessage `json:"notes,omitempty"`
	Expenses  []json.RawMessage `json:"expenses,omitempty"`
	Links     []json.RawMessage `json:"links,omitempty"`
	Passwords []json.RawMessage `json:"passwords,omitempty"`
	Timestamp string            `json:"timestamp"`
}
