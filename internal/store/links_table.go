// Saved links collection accessor.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/notespend/notespend/pkg/types"
)

const linkColumns = "link_id, name, url, created_at, updated_at, is_deleted"

func (c *collection) getLink(id string) (any, error) {
	row := c.store.db.QueryRow(
		"SELECT "+linkColumns+" FROM links WHERE link_id = ?", id)
	l, err := hydrateLink(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting link %s: %w", id, err)
	}
	return l, nil
}

func (c *collection) putLink(record any) error {
	l, ok := record.(*types.SavedLink)
	if !ok {
		return types.ErrInvalidData
	}
	if l.ID == "" {
		return fmt.Errorf("%w: link has no primary key", types.ErrValidation)
	}

	_, err := c.store.db.Exec(`
		INSERT INTO links (`+linkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(link_id) DO UPDATE SET
			name = excluded.name,
			url = excluded.url,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			is_deleted = excluded.is_deleted`,
		l.ID, nullIfEmpty(l.Name), l.URL,
		formatTime(l.CreatedAt), formatTime(l.UpdatedAt), l.IsDeleted)
	if err != nil {
		return fmt.Errorf("upserting link: %w", err)
	}
	return nil
}

// fetchLinks queries links ordered by creation time DESC. Supported filter
// keys: isDeleted, url.
func (c *collection) fetchLinks(filter types.Filter) ([]any, error) {
	query := "SELECT " + linkColumns + " FROM links"
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
	if v, ok := filter["url"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "url = ?")
		args = append(args, s)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching links: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		l, err := hydrateLink(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating link: %w", err)
		}
		results = append(results, l)
	}
	if results == nil {
		results = []any{}
	}
	return results, rows.Err()
}

// hydrateLink converts a SQLite row into a *types.SavedLink.
func hydrateLink(row rowScanner) (*types.SavedLink, error) {
	var l types.SavedLink
	var name sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&l.ID, &name, &l.URL, &createdAt, &updatedAt, &l.IsDeleted)
	if err != nil {
		return nil, err
	}
	l.Name = name.String
	if l.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, err
	}
	if l.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
