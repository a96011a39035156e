// Notes collection accessor.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/notespend/notespend/pkg/types"
)

const noteColumns = "note_id, title, description, tags, pinned, created_at, updated_at, linked_expense_ids, is_deleted, deleted_at, extra"

func (c *collection) getNote(id string) (any, error) {
	row := c.store.db.QueryRow(
		"SELECT "+noteColumns+" FROM notes WHERE note_id = ?", id)
	n, err := hydrateNote(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting note %s: %w", id, err)
	}
	return n, nil
}

func (c *collection) putNote(record any) error {
	n, ok := record.(*types.Note)
	if !ok {
		return types.ErrInvalidData
	}
	if n.ID == "" {
		return fmt.Errorf("%w: note has no primary key", types.ErrValidation)
	}

	tags, err := encodeJSON(n.Tags)
	if err != nil {
		return err
	}
	linked, err := encodeJSON(n.LinkedExpenseIDs)
	if err != nil {
		return err
	}
	extra, err := encodeExtra(n.Extra)
	if err != nil {
		return err
	}
	var deletedAt sql.NullString
	if n.DeletedAt != nil {
		deletedAt = sql.NullString{String: formatTime(*n.DeletedAt), Valid: true}
	}

	_, err = c.store.db.Exec(`
		INSERT INTO notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(note_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			tags = excluded.tags,
			pinned = excluded.pinned,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			linked_expense_ids = excluded.linked_expense_ids,
			is_deleted = excluded.is_deleted,
			deleted_at = excluded.deleted_at,
			extra = excluded.extra`,
		n.ID, n.Title, nullIfEmpty(n.Description), tags, n.Pinned,
		formatTime(n.CreatedAt), formatTime(n.UpdatedAt),
		linked, n.IsDeleted, deletedAt, extra)
	if err != nil {
		return fmt.Errorf("upserting note: %w", err)
	}
	return nil
}

// fetchNotes queries notes ordered by created_at DESC. Supported filter
// keys: isDeleted, pinned.
func (c *collection) fetchNotes(filter types.Filter) ([]any, error) {
	query := "SELECT " + noteColumns + " FROM notes"
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
	if v, ok := filter["pinned"]; ok {
		p, ok := toInt(v)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		conditions = append(conditions, "pinned = ?")
		args = append(args, p)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching notes: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		n, err := hydrateNote(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating note: %w", err)
		}
		results = append(results, n)
	}
	if results == nil {
		results = []any{}
	}
	return results, rows.Err()
}

// hydrateNote converts a SQLite row into a *types.Note.
func hydrateNote(row rowScanner) (*types.Note, error) {
	var n types.Note
	var description, deletedAt, extra sql.NullString
	var tags, linked, createdAt, updatedAt string
	err := row.Scan(&n.ID, &n.Title, &description, &tags, &n.Pinned,
		&createdAt, &updatedAt, &linked, &n.IsDeleted, &deletedAt, &extra)
	if err != nil {
		return nil, err
	}
	n.Description = description.String
	if n.Tags, err = decodeStrings(tags); err != nil {
		return nil, err
	}
	if n.LinkedExpenseIDs, err = decodeStrings(linked); err != nil {
		return nil, err
	}
	if n.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, err
	}
	if n.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		t, err := parseStoredTime(deletedAt.String)
		if err != nil {
			return nil, err
		}
		n.DeletedAt = &t
	}
	if n.Extra, err = decodeExtra(extra); err != nil {
		return nil, err
	}
	return &n, nil
}

// toInt converts filter values of various numeric types to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
