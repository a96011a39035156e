package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validExpense() Expense {
	return Expense{
		ID:       "e1",
		Type:     TypeExpense,
		Amount:   100,
		Category: "Travel",
		Date:     "2026-08-15",
	}
}

func TestExpenseValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{"valid", func(e *Expense) {}, nil},
		{"valid income", func(e *Expense) { e.Type = TypeIncome }, nil},
		{"unknown type", func(e *Expense) { e.Type = "transfer" }, ErrInvalidType},
		{"zero amount", func(e *Expense) { e.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.Amount = -1 }, ErrInvalidAmount},
		{"infinite amount", func(e *Expense) { e.Amount = math.Inf(1) }, ErrInvalidAmount},
		{"NaN amount", func(e *Expense) { e.Amount = math.NaN() }, ErrInvalidAmount},
		{"empty category", func(e *Expense) { e.Category = "" }, ErrEmptyCategory},
		{"bad date format", func(e *Expense) { e.Date = "15/08/2026" }, ErrInvalidDate},
		{"date with time", func(e *Expense) { e.Date = "2026-08-15T10:00:00Z" }, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpenseSigned(t *testing.T) {
	e := validExpense()
	assert.Equal(t, -100.0, e.Signed())

	e.Type = TypeIncome
	assert.Equal(t, 100.0, e.Signed())
}
