// Categories collection accessor. The built-in catalog is seeded on first
// run; user-defined categories go through the same path.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/notespend/notespend/pkg/types"
)

const categoryColumns = "category_id, type, name, icon, color"

func (c *collection) getCategory(id string) (any, error) {
	var cat types.Category
	err := c.store.db.QueryRow(
		"SELECT "+categoryColumns+" FROM categories WHERE category_id = ?", id).
		Scan(&cat.ID, &cat.Type, &cat.Name, &cat.Icon, &cat.Color)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %s: %w", id, err)
	}
	return &cat, nil
}

func (c *collection) putCategory(record any) error {
	cat, ok := record.(*types.Category)
	if !ok {
		return types.ErrInvalidData
	}
	if cat.ID == "" {
		return fmt.Errorf("%w: category has no primary key", types.ErrValidation)
	}

	_, err := c.store.db.Exec(`
		INSERT INTO categories (`+categoryColumns+`)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(category_id) DO UPDATE SET
			type = excluded.type,
			name = excluded.name,
			icon = excluded.icon,
			color = excluded.color`,
		cat.ID, cat.Type, cat.Name, cat.Icon, cat.Color)
	if err != nil {
		return fmt.Errorf("upserting category: %w", err)
	}
	return nil
}

// fetchCategories queries categories in catalog order. Supported filter
// keys: type, name.
func (c *collection) fetchCategories(filter types.Filter) ([]any, error) {
	query := "SELECT " + categoryColumns + " FROM categories"
	var conditions []string
	var args []any

	for _, field := range []string{"type", "name"} {
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
	query += " ORDER BY CAST(category_id AS INTEGER), category_id"

	rows, err := c.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		var cat types.Category
		if err := rows.Scan(&cat.ID, &cat.Type, &cat.Name, &cat.Icon, &cat.Color); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		results = append(results, &cat)
	}
	if results == nil {
		results = []any{}
	}
	return results, rows.Err()
}
