package types

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Expense transaction kinds. Amount is always stored as a positive
// magnitude; direction is derived from the type at aggregation time.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// validExpenseTypes is the set of recognized transaction type values.
var validExpenseTypes = map[string]bool{
	TypeExpense: true,
	TypeIncome:  true,
}

// DateLayout is the calendar-date format for Expense.Date. Dates carry no
// time component.
const DateLayout = "2006-01-02"

// Expense is a single transaction, expense or income.
type Expense struct {
	ID           string    `json:"id"`             // UUID, generated on creation.
	Type         string    `json:"type"`           // TypeExpense or TypeIncome.
	Amount       float64   `json:"amount"`         // Positive magnitude, never signed.
	Category     string    `json:"category"`       // Category name; unknown names render as uncategorized.
	Date         string    `json:"date"`           // Calendar date, DateLayout.
	Description  string    `json:"description,omitempty"`
	LinkedNoteID string    `json:"linkedNoteId,omitempty"` // Optional back-reference to a note.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	IsDeleted    int       `json:"isDeleted"` // 0 active, 1 tombstone.

	// Extra holds unknown fields preserved from an imported document.
	Extra map[string]json.RawMessage `json:"-"`
}

// expenseKnownFields lists the JSON keys owned by the Expense struct.
var expenseKnownFields = map[string]bool{
	"id": true, "type": true, "amount": true, "category": true,
	"date": true, "description": true, "linkedNoteId": true,
	"createdAt": true, "updatedAt": true, "isDeleted": true,
}

// Validate checks type, amount, category, and date before any store write
// is attempted. Returns an error wrapping ErrValidation on failure.
func (e *Expense) Validate() error {
	if !validExpenseTypes[e.Type] {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidType, e.Type)
	}
	if e.Amount <= 0 || math.IsInf(e.Amount, 0) || math.IsNaN(e.Amount) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidAmount)
	}
	if e.Category == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyCategory)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidDate, e.Date)
	}
	return nil
}

// Signed returns the amount with its direction applied: positive for
// income, negative for expense.
func (e *Expense) Signed() float64 {
	if e.Type == TypeIncome {
		return e.Amount
	}
	return -e.Amount
}

// MarkDeleted sets the tombstone flag.
func (e *Expense) MarkDeleted() {
	e.IsDeleted = 1
}

type expenseAlias Expense

func (e Expense) MarshalJSON() ([]byte, error) {
	return mergeExtra(expenseAlias(e), e.Extra)
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	extra, err := splitExtra(data, (*expenseAlias)(e), expenseKnownFields)
	if err != nil {
		return err
	}
	e.Extra = extra
	return nil
}
