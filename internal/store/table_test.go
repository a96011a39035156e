// Unit tests for the collection accessors: CRUD, merge-patch updates,
// soft deletion, filtered queries, and bulk upserts.
package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notespend/notespend/pkg/types"
)

func makeNote(id, title string) *types.Note {
	now := time.Now()
	return &types.Note{
		ID:               id,
		Title:            title,
		Tags:             []string{},
		LinkedExpenseIDs: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func makeExpense(id, typ string, amount float64, category, date string) *types.Expense {
	now := time.Now()
	return &types.Expense{
		ID:        id,
		Type:      typ,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNotesCRUD(t *testing.T) {
	t.Run("put then get round-trips all fields", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		n := makeNote("n1", "Trip to Lahore")
		n.Description = "itinerary and bookings"
		n.Tags = []string{"travel", "family"}
		n.Pinned = 1
		require.NoError(t, notes.Put(n))

		rec, err := notes.Get("n1")
		require.NoError(t, err)
		got := rec.(*types.Note)
		assert.Equal(t, "Trip to Lahore", got.Title)
		assert.Equal(t, "itinerary and bookings", got.Description)
		assert.Equal(t, []string{"travel", "family"}, got.Tags)
		assert.Equal(t, 1, got.Pinned)
		assert.True(t, n.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		_, err = notes.Get("missing")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("get empty id returns ErrInvalidID", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		_, err = notes.Get("")
		assert.ErrorIs(t, err, types.ErrInvalidID)
	})

	t.Run("put without primary key fails validation", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		err = notes.Put(makeNote("", "untitled"))
		assert.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("put wrong record type returns ErrInvalidData", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		err = notes.Put(makeExpense("e1", types.TypeExpense, 10, "Other", "2026-08-01"))
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})

	t.Run("update merge-patches named fields only", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		n := makeNote("n1", "before")
		n.Tags = []string{"keep"}
		require.NoError(t, notes.Put(n))

		require.NoError(t, notes.Update("n1", map[string]any{
			"title":  "after",
			"pinned": 1,
		}))

		rec, err := notes.Get("n1")
		require.NoError(t, err)
		got := rec.(*types.Note)
		assert.Equal(t, "after", got.Title)
		assert.Equal(t, 1, got.Pinned)
		assert.Equal(t, []string{"keep"}, got.Tags)
	})

	t.Run("update missing id returns ErrNotFound", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		err = notes.Update("missing", map[string]any{"title": "x"})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("unknown fields survive put, update, and get", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		n := makeNote("n1", "with extras")
		n.Extra = map[string]json.RawMessage{
			"color":    json.RawMessage(`"#FFAA00"`),
			"revision": json.RawMessage(`3`),
		}
		require.NoError(t, notes.Put(n))
		require.NoError(t, notes.Update("n1", map[string]any{"title": "renamed"}))

		rec, err := notes.Get("n1")
		require.NoError(t, err)
		got := rec.(*types.Note)
		assert.Equal(t, "renamed", got.Title)
		assert.JSONEq(t, `"#FFAA00"`, string(got.Extra["color"]))
		assert.JSONEq(t, `3`, string(got.Extra["revision"]))
	})
}

func TestSoftDelete(t *testing.T) {
	t.Run("deleted note leaves active set but stays resolvable", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		require.NoError(t, notes.Put(makeNote("n1", "doomed")))
		require.NoError(t, notes.Put(makeNote("n2", "survivor")))
		require.NoError(t, notes.SoftDelete("n1"))

		active, err := notes.FetchActive()
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "n2", active[0].(*types.Note).ID)

		rec, err := notes.Get("n1")
		require.NoError(t, err)
		got := rec.(*types.Note)
		assert.Equal(t, 1, got.IsDeleted)
		require.NotNil(t, got.DeletedAt)
	})

	t.Run("deleted expense excluded from active set and sums", func(t *testing.T) {
		s, _ := openTestStore(t)
		expenses, err := s.Collection(types.ExpensesCollection)
		require.NoError(t, err)

		require.NoError(t, expenses.Put(makeExpense("e1", types.TypeExpense, 500, "Food & Dining", "2026-08-01")))
		require.NoError(t, expenses.Put(makeExpense("e2", types.TypeIncome, 2000, "Salary", "2026-08-01")))
		require.NoError(t, expenses.SoftDelete("e1"))

		active, err := expenses.FetchActive()
		require.NoError(t, err)
		assert.Len(t, active, 1)

		income, expense, err := s.SumActiveAmounts()
		require.NoError(t, err)
		assert.Equal(t, 2000.0, income)
		assert.Equal(t, 0.0, expense)
	})

	t.Run("soft delete missing id returns ErrNotFound", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		err = notes.SoftDelete("missing")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("categories do not support soft deletion", func(t *testing.T) {
		s, _ := openTestStore(t)
		cats, err := s.Collection(types.CategoriesCollection)
		require.NoError(t, err)

		err = cats.SoftDelete("1")
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})
}

func TestFetchBy(t *testing.T) {
	t.Run("expenses filter by linked note", func(t *testing.T) {
		s, _ := openTestStore(t)
		expenses, err := s.Collection(types.ExpensesCollection)
		require.NoError(t, err)

		linked := makeExpense("e1", types.TypeExpense, 120, "Travel", "2026-08-02")
		linked.LinkedNoteID = "n1"
		require.NoError(t, expenses.Put(linked))
		require.NoError(t, expenses.Put(makeExpense("e2", types.TypeExpense, 40, "Travel", "2026-08-03")))

		got, err := expenses.FetchBy(types.Filter{"linkedNoteId": "n1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "e1", got[0].(*types.Expense).ID)
	})

	t.Run("empty filter includes tombstones", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		require.NoError(t, notes.Put(makeNote("n1", "a")))
		require.NoError(t, notes.Put(makeNote("n2", "b")))
		require.NoError(t, notes.SoftDelete("n1"))

		all, err := notes.FetchBy(nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("wrong filter value type returns ErrInvalidFilter", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		_, err = notes.FetchBy(types.Filter{"isDeleted": "nope"})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})

	t.Run("fetch active orders notes by creation time desc", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		older := makeNote("n1", "older")
		older.CreatedAt = time.Now().Add(-time.Hour)
		older.UpdatedAt = older.CreatedAt
		require.NoError(t, notes.Put(older))
		require.NoError(t, notes.Put(makeNote("n2", "newer")))

		active, err := notes.FetchActive()
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "n2", active[0].(*types.Note).ID)
		assert.Equal(t, "n1", active[1].(*types.Note).ID)
	})
}

func TestBulkPut(t *testing.T) {
	t.Run("upserts all records", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		require.NoError(t, notes.Put(makeNote("n1", "old title")))
		err = notes.BulkPut([]any{
			makeNote("n1", "new title"),
			makeNote("n2", "brand new"),
		})
		require.NoError(t, err)

		all, err := notes.FetchActive()
		require.NoError(t, err)
		assert.Len(t, all, 2)

		rec, err := notes.Get("n1")
		require.NoError(t, err)
		assert.Equal(t, "new title", rec.(*types.Note).Title)
	})

	t.Run("failure names the offending record and keeps earlier ones", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		err = notes.BulkPut([]any{
			makeNote("n1", "fine"),
			makeNote("", "no id"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 1")

		_, err = notes.Get("n1")
		assert.NoError(t, err)
	})
}

func TestSettings(t *testing.T) {
	t.Run("last write wins per key", func(t *testing.T) {
		s, _ := openTestStore(t)
		settings, err := s.Collection(types.SettingsCollection)
		require.NoError(t, err)

		require.NoError(t, settings.Put(&types.Setting{Key: "theme", Value: "dark"}))
		require.NoError(t, settings.Put(&types.Setting{Key: "theme", Value: "light"}))

		rec, err := settings.Get("theme")
		require.NoError(t, err)
		assert.Equal(t, "light", rec.(*types.Setting).Value)
	})

	t.Run("structured values round-trip", func(t *testing.T) {
		s, _ := openTestStore(t)
		settings, err := s.Collection(types.SettingsCollection)
		require.NoError(t, err)

		profile := map[string]any{"name": "Aisha", "email": "aisha@example.com"}
		require.NoError(t, settings.Put(&types.Setting{Key: "profile", Value: profile}))

		rec, err := settings.Get("profile")
		require.NoError(t, err)
		got := rec.(*types.Setting).Value.(map[string]any)
		assert.Equal(t, "Aisha", got["name"])
	})
}
