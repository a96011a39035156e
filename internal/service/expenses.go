// Expense lifecycle, including note linkage bookkeeping.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/notespend/notespend/pkg/types"
)

// CreateExpense validates and stores a new transaction. When linkedNoteID
// names a note, the expense id is appended to that note's linkage list.
// The two writes are sequential, not transactional: a linkage failure
// leaves the expense committed and is reported to the caller.
func (s *Service) CreateExpense(typ string, amount float64, category, date, description, linkedNoteID string) (*types.Expense, error) {
	now := time.Now()
	e := &types.Expense{
		ID:           uuid.NewString(),
		Type:         typ,
		Amount:       amount,
		Category:     category,
		Date:         date,
		Description:  description,
		LinkedNoteID: linkedNoteID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	coll, err := s.store.Collection(types.ExpensesCollection)
	if err != nil {
		return nil, err
	}
	if err := coll.Put(e); err != nil {
		return nil, err
	}

	if linkedNoteID != "" {
		if err := s.linkExpenseToNote(linkedNoteID, e.ID); err != nil {
			return e, fmt.Errorf("expense stored but note linkage failed: %w", err)
		}
	}
	return e, nil
}

// UpdateExpense merge-patches an expense. The patched fields are validated
// before anything is written; a newly set linkedNoteId triggers the same
// linkage append as creation.
func (s *Service) UpdateExpense(id string, fields map[string]any) error {
	if err := validateExpensePatch(fields); err != nil {
		return err
	}

	coll, err := s.store.Collection(types.ExpensesCollection)
	if err != nil {
		return err
	}
	patch := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updatedAt"] = time.Now().Format(time.RFC3339Nano)
	if err := coll.Update(id, patch); err != nil {
		return err
	}

	if noteID, ok := fields["linkedNoteId"].(string); ok && noteID != "" {
		if err := s.linkExpenseToNote(noteID, id); err != nil {
			return fmt.Errorf("expense updated but note linkage failed: %w", err)
		}
	}
	return nil
}

// validateExpensePatch checks the caller-controlled fields of a patch.
func validateExpensePatch(fields map[string]any) error {
	if v, ok := fields["type"]; ok {
		typ, _ := v.(string)
		if typ != types.TypeExpense && typ != types.TypeIncome {
			return fmt.Errorf("%w: %w: %q", types.ErrValidation, types.ErrInvalidType, typ)
		}
	}
	if v, ok := fields["amount"]; ok {
		amount, isNum := v.(float64)
		if !isNum || amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
			return fmt.Errorf("%w: %w", types.ErrValidation, types.ErrInvalidAmount)
		}
	}
	if v, ok := fields["category"]; ok {
		if category, _ := v.(string); category == "" {
			return fmt.Errorf("%w: %w", types.ErrValidation, types.ErrEmptyCategory)
		}
	}
	if v, ok := fields["date"]; ok {
		date, _ := v.(string)
		if _, err := time.Parse(types.DateLayout, date); err != nil {
			return fmt.Errorf("%w: %w: %q", types.ErrValidation, types.ErrInvalidDate, date)
		}
	}
	return nil
}

// linkExpenseToNote appends expenseID to the note's linkage list if not
// already present. Idempotent; a second link of the same pair writes
// nothing. A missing note is logged and reported, not fatal to the
// already-committed expense write.
func (s *Service) linkExpenseToNote(noteID, expenseID string) error {
	n, err := s.GetNote(noteID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.log.Warn("linked note does not exist",
				slog.String("noteId", noteID), slog.String("expenseId", expenseID))
		}
		return err
	}
	if !n.LinkExpense(expenseID) {
		return nil
	}
	n.UpdatedAt = time.Now()

	coll, err := s.store.Collection(types.NotesCollection)
	if err != nil {
		return err
	}
	return coll.Put(n)
}

// DeleteExpense soft-deletes an expense. The owning note's linkage list is
// left untouched; readers resolve the tombstone when they follow the link.
func (s *Service) DeleteExpense(id string) error {
	coll, err := s.store.Collection(types.ExpensesCollection)
	if err != nil {
		return err
	}
	return coll.SoftDelete(id)
}

// GetExpense resolves an expense by id, tombstones included.
func (s *Service) GetExpense(id string) (*types.Expense, error) {
	coll, err := s.store.Collection(types.ExpensesCollection)
	if err != nil {
		return nil, err
	}
	rec, err := coll.Get(id)
	if err != nil {
		return nil, err
	}
	return rec.(*types.Expense), nil
}

// ActiveExpenses returns the active transaction set, newest date first.
func (s *Service) ActiveExpenses() ([]*types.Expense, error) {
	return s.store.ActiveExpenses()
}

// Balance aggregates the active transaction set: total income, total
// expense, and income minus expense.
func (s *Service) Balance() (income, expense, balance float64, err error) {
	income, expense, err = s.store.SumActiveAmounts()
	if err != nil {
		return 0, 0, 0, err
	}
	return income, expense, income - expense, nil
}

// CategoryFor resolves how a transaction's category renders. Unknown names
// fall back to the uncategorized entry rather than failing.
func (s *Service) CategoryFor(e *types.Expense) types.Category {
	cat, ok := types.LookupCategory(e.Type, e.Category)
	if !ok {
		return types.UncategorizedCategory
	}
	return cat
}
