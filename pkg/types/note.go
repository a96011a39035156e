package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Note is a free-form text record. Notes are soft-deleted: IsDeleted flips
// to 1 and the row stays addressable by ID for relationship maintenance.
type Note struct {
	ID               string     `json:"id"`               // UUID, generated on creation.
	Title            string     `json:"title"`            // Required, non-empty.
	Description      string     `json:"description,omitempty"`
	Tags             []string   `json:"tags"`             // Free-form labels.
	Pinned           int        `json:"pinned"`           // 0 or 1.
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	LinkedExpenseIDs []string   `json:"linkedExpenseIds"` // Inverse view of Expense.LinkedNoteID.
	IsDeleted        int        `json:"isDeleted"`        // 0 active, 1 tombstone.
	DeletedAt        *time.Time `json:"deletedAt,omitempty"`

	// Extra holds unknown fields preserved from an imported document.
	Extra map[string]json.RawMessage `json:"-"`
}

// noteKnownFields lists the JSON keys owned by the Note struct.
var noteKnownFields = map[string]bool{
	"id": true, "title": true, "description": true, "tags": true,
	"pinned": true, "createdAt": true, "updatedAt": true,
	"linkedExpenseIds": true, "isDeleted": true, "deletedAt": true,
}

// Validate checks the fields a caller controls. Returns an error wrapping
// ErrValidation on failure.
func (n *Note) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTitle)
	}
	return nil
}

// LinkExpense appends expenseID to LinkedExpenseIDs if not already present.
// Returns true when the list changed. Idempotent.
func (n *Note) LinkExpense(expenseID string) bool {
	for _, id := range n.LinkedExpenseIDs {
		if id == expenseID {
			return false
		}
	}
	n.LinkedExpenseIDs = append(n.LinkedExpenseIDs, expenseID)
	return true
}

// TogglePin flips the pinned flag. No other field changes.
func (n *Note) TogglePin() {
	n.Pinned = 1 - n.Pinned
}

// MarkDeleted sets the tombstone flag and stamps the deletion time.
func (n *Note) MarkDeleted(now time.Time) {
	n.IsDeleted = 1
	n.DeletedAt = &now
}

// noteAlias avoids MarshalJSON/UnmarshalJSON recursion.
type noteAlias Note

func (n Note) MarshalJSON() ([]byte, error) {
	return mergeExtra(noteAlias(n), n.Extra)
}

func (n *Note) UnmarshalJSON(data []byte) error {
	extra, err := splitExtra(data, (*noteAlias)(n), noteKnownFields)
	if err != nil {
		return err
	}
	n.Extra = extra
	return nil
}
