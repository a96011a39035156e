// First-run seeding of the built-in category catalog.
package store

import (
	"database/sql"
	"fmt"

	"github.com/notespend/notespend/pkg/types"
)

// seedDefaultCategories inserts the built-in expense and income categories
// when the categories table is empty (first run). Seeding is idempotent:
// any existing row, user-edited or not, suppresses it entirely.
func seedDefaultCategories(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	catalog := make([]types.Category, 0,
		len(types.DefaultExpenseCategories)+len(types.DefaultIncomeCategories))
	catalog = append(catalog, types.DefaultExpenseCategories...)
	catalog = append(catalog, types.DefaultIncomeCategories...)

	for _, cat := range catalog {
		_, err = tx.Exec(
			"INSERT INTO categories (category_id, type, name, icon, color) VALUES (?, ?, ?, ?, ?)",
			cat.ID, cat.Type, cat.Name, cat.Icon, cat.Color,
		)
		if err != nil {
			return fmt.Errorf("seeding category %s: %w", cat.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
