// Expenses collection accessor.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/notespend/notespend/pkg/types"
)

const expenseColumns = "expense_id, type, amount, category, date, description, linked_note_id, created_at, updated_at, is_deleted, extra"

func (c *collection) getExpense(id string) (any, error) {
	row := c.store.db.QueryRow(
		"SELECT "+expenseColumns+" FROM expenses WHERE expense_id = ?", id)
	e, err := hydrateExpense(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting expense %s: %w", id, err)
	}
	return e, nil
}

func (c *collection) putExpense(record any) error {
	e, ok := record.(*types.Expense)
	if !ok {
		return types.ErrInvalidData
	}
	if e.ID == "" {
		return fmt.Errorf("%w: expense has no primary key", types.ErrValidation)
	}

	extra, err := encodeExtra(e.Extra)
	if err != nil {
		return err
	}

	_, err = c.store.db.Exec(`
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(expense_id) DO UPDATE SET
			type = excluded.type,
			amount = excluded.amount,
			category = excluded.category,
			date = excluded.date,
			description = excluded.description,
			linked_note_id = excluded.linked_note_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			is_deleted = excluded.is_deleted,
			extra = excluded.extra`,
		e.ID, e.Type, e.Amount, e.Category, e.Date,
		nullIfEmpty(e.Description), nullIfEmpty(e.LinkedNoteID),
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
		e.IsDeleted, extra)
	if err != nil {
		return fmt.Errorf("upserting expense: %w", err)
	}
	return nil
}

// fetchExpenses queries expenses ordered by date DESC, then creation time
// DESC. Supported filter keys: isDeleted, type, category, linkedNoteId,
// date.
func (c *collection) fetchExpenses(filter types.Filter) ([]any, error) {
	query := "SELECT " + expenseColumns + " FROM expenses"
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
	for _, key := range []struct{ field, column string }{
		{"type", "type"},
		{"category", "category"},
		{"linkedNoteId", "linked_note_id"},
		{"date", "date"},
	} {
		if v, ok := filter[key.field]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, key.column+" = ?")
			args = append(args, s)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := c.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching expenses: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		e, err := hydrateExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating expense: %w", err)
		}
		results = append(results, e)
	}
	if results == nil {
		results = []any{}
	}
	return results, rows.Err()
}

// hydrateExpense converts a SQLite row into a *types.Expense.
func hydrateExpense(row rowScanner) (*types.Expense, error) {
	var e types.Expense
	var description, linkedNoteID, extra sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&e.ID, &e.Type, &e.Amount, &e.Category, &e.Date,
		&description, &linkedNoteID, &createdAt, &updatedAt, &e.IsDeleted, &extra)
	if err != nil {
		return nil, err
	}
	e.Description = description.String
	e.LinkedNoteID = linkedNoteID.String
	if e.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return nil, err
	}
	if e.Extra, err = decodeExtra(extra); err != nil {
		return nil, err
	}
	return &e, nil
}

// SumActiveAmounts aggregates the active expense set: total income, total
// expense, and the derived balance (income minus expense). Amounts are
// stored as positive magnitudes; direction comes from the type column.
func (s *Store) SumActiveAmounts() (income, expense float64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return 0, 0, types.ErrStoreClosed
	}

	rows, err := s.db.Query(
		"SELECT type, COALESCE(SUM(amount), 0) FROM expenses WHERE is_deleted = 0 GROUP BY type")
	if err != nil {
		return 0, 0, fmt.Errorf("summing expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var typ string
		var total float64
		if err := rows.Scan(&typ, &total); err != nil {
			return 0, 0, fmt.Errorf("scanning expense sum: %w", err)
		}
		switch typ {
		case types.TypeIncome:
			income = total
		case types.TypeExpense:
			expense = total
		}
	}
	return income, expense, rows.Err()
}
