package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	assert.Len(t, DefaultExpenseCategories, 10)
	assert.Len(t, DefaultIncomeCategories, 6)

	seen := make(map[string]bool)
	for _, c := range append(DefaultExpenseCategories, DefaultIncomeCategories...) {
		assert.False(t, seen[c.ID], "duplicate category id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Icon)
		assert.NotEmpty(t, c.Color)
	}
}

func TestLookupCategory(t *testing.T) {
	cat, ok := LookupCategory(TypeExpense, "Travel")
	assert.True(t, ok)
	assert.Equal(t, "8", cat.ID)
	assert.Equal(t, "Plane", cat.Icon)

	cat, ok = LookupCategory(TypeIncome, "Salary")
	assert.True(t, ok)
	assert.Equal(t, "11", cat.ID)

	// Same name resolves per type.
	expenseOther, ok := LookupCategory(TypeExpense, "Other")
	assert.True(t, ok)
	incomeOther, ok := LookupCategory(TypeIncome, "Other")
	assert.True(t, ok)
	assert.NotEqual(t, expenseOther.ID, incomeOther.ID)

	// Unknown names fall back, never fail.
	cat, ok = LookupCategory(TypeExpense, "Space Tourism")
	assert.False(t, ok)
	assert.Equal(t, UncategorizedCategory, cat)
}
