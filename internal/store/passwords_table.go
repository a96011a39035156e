// Password entries collection accessor. The password column holds the
// sealed ciphertext produced upstream; the store never sees cleartext.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/notespend/notespend/pkg/types"
)

const passwordColumns = "password_id, service_name, username, password, created_at, updated_at, is_deleted"

func (c *collection) getPassword(id string) (any, error) {
	row := c.store.db.QueryRow(
		"SELECT "+passwordColumns+" FROM passwords WHERE password_id = ?", id)
	p, err := hydratePassword(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting password entry %s: %w", id, err)
	}
	return p, nil
}

func (c *collection) putPassword(record any) error {
	p, ok := record.(*types.PasswordEntry)
	if !ok {
		return types.ErrInvalidData
	}
	if p.ID == "" {
		return fmt.Errorf("%w: password entry has no primary key", types.ErrValidation)
	}

	_, err := c.store.db.Exec(`
		INSERT INTO passwords (`+passwordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(password_id) DO UPDATE SET
			service_name = excluded.service_name,
			username = excluded.username,
			password = excluded.password,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			is_deleted = excluded.is_deleted`,
		p.ID, p.ServiceName, nullIfEmpty(p.Username), p.Password,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt), p.IsDeleted)
	if err != nil {
		return fmt.Errorf("upserting password entry: %w", err)
	}
	return nil
}

// fetchPasswords queries password entries ordered by service name.
// Supported filter keys: isDeleted, serviceName.
func (c *collection) fetchPasswords(filter types.Filter) ([]any, error) {
	query := "SELECT " + passwordColumns + " FROM passwords"
	var conditions []string
	var args []any

	if v, ok := filter["isDeleted"]; ok {
		d, ok := toInt(v)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "is_deleted = ?")
		args = append(args, d)
	}
	if v, ok := filter["serviceName"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "service_name = ?")
		args = append(args, s)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY service_name, created_at DESC"

	rows, err := c.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching password entries: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		p, err := hydratePassword(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating password entry: %w", err)
		}
		results = append(results, p)
	}
	if results == nil {
		results = []any{}
	}
	return results, rows.Err()
}

// hydratePassword converts a SQLite row into a *types.PasswordEntry.
func hydratePassword(row rowScanner) (*types.PasswordEntry, error) {
	var p types.PasswordEntry
	var username sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.ServiceName, &username, &p.Password,
		&createdAt, &updatedAt, &p.IsDeleted)
	if err != nil {
		return nil, err
	}
	p.Username = username.String
	if p.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
