// Auth collection accessor. A single local identity row; the hash column
// carries a bcrypt digest, never a cleartext password.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/notespend/notespend/pkg/types"
)

const authColumns = "user_id, username, email, password_hash, created_at"

func (c *collection) getAuth(id string) (any, error) {
	row := c.store.db.QueryRow(
		"SELECT "+authColumns+" FROM auth WHERE user_id = ?", id)
	a, err := hydrateAuth(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting identity %s: %w", id, err)
	}
	return a, nil
}

func (c *collection) putAuth(record any) error {
	a, ok := record.(*types.AuthIdentity)
	if !ok {
		return types.ErrInvalidData
	}
	if a.UserID == "" {
		return fmt.Errorf("%w: identity has no primary key", types.ErrValidation)
	}

	_, err := c.store.db.Exec(`
		INSERT INTO auth (`+authColumns+`)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			email = excluded.email,
			password_hash = excluded.password_hash,
			created_at = excluded.created_at`,
		a.UserID, a.Username, a.Email, a.PasswordHash, formatTime(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("upserting identity: %w", err)
	}
	return nil
}

// fetchAuth queries identities. Supported filter keys: username, email.
func (c *collection) fetchAuth(filter types.Filter) ([]any, error) {
	query := "SELECT " + authColumns + " FROM auth"
	var conditions []string
	var args []any

	for _, field := range []string{"username", "email"} {
		if v, ok := filter[field]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, field+" = ?")
			args = append(args, s)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := c.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching identities: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		a, err := hydrateAuth(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating identity: %w", err)
		}
		results = append(results, a)
	}
	if results == nil {
		results = []any{}
	}
	return results, rows.Err()
}

// hydrateAuth converts a SQLite row into a *types.AuthIdentity.
func hydrateAuth(row rowScanner) (*types.AuthIdentity, error) {
	var a types.AuthIdentity
	var createdAt string
	err := row.Scan(&a.UserID, &a.Username, &a.Email, &a.PasswordHash, &createdAt)
	if err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, err
	}
	return &a, nil
}
