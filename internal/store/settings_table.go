// Settings collection accessor. Values are opaque JSON payloads keyed by
// name; the last write wins.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/notespend/notespend/pkg/types"
)

func (c *collection) getSetting(key string) (any, error) {
	var raw string
	err := c.store.db.QueryRow(
		"SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting setting %s: %w", key, err)
	}

	s := types.Setting{Key: key}
	if err := json.Unmarshal([]byte(raw), &s.Value); err != nil {
		return nil, fmt.Errorf("parsing setting %s: %w", key, err)
	}
	return &s, nil
}

func (c *collection) putSetting(record any) error {
	s, ok := record.(*types.Setting)
	if !ok {
		return types.ErrInvalidData
	}
	if s.Key == "" {
		return fmt.Errorf("%w: setting has no key", types.ErrValidation)
	}

	raw, err := encodeJSON(s.Value)
	if err != nil {
		return err
	}
	_, err = c.store.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.Key, raw)
	if err != nil {
		return fmt.Errorf("upserting setting: %w", err)
	}
	return nil
}

// fetchSettings returns all settings in key order. The only supported
// filter key is "key".
func (c *collection) fetchSettings(filter types.Filter) ([]any, error) {
	query := "SELECT key, value FROM settings"
	var args []any

	if v, ok := filter["key"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		query += " WHERE key = ?"
		args = append(args, s)
	}
	query += " ORDER BY key"

	rows, err := c.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching settings: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		var s types.Setting
		var raw string
		if err := rows.Scan(&s.Key, &raw); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &s.Value); err != nil {
			return nil, fmt.Errorf("parsing setting %s: %w", s.Key, err)
		}
		results = append(results, &s)
	}
	if results == nil {
		results = []any{}
	}
	return results, rows.Err()
}
