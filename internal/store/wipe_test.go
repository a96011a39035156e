// Unit tests for the two-step wipe handshake.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notespend/notespend/pkg/types"
)

func TestWipe(t *testing.T) {
	t.Run("request then confirm clears the targeted collections", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		expenses, err := s.Collection(types.ExpensesCollection)
		require.NoError(t, err)

		require.NoError(t, notes.Put(makeNote("n1", "gone soon")))
		require.NoError(t, expenses.Put(makeExpense("e1", types.TypeExpense, 10, "Other", "2026-08-01")))

		token, err := s.RequestWipe(types.NotesCollection)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.NoError(t, s.ConfirmWipe(token))

		_, err = notes.Get("n1")
		assert.ErrorIs(t, err, types.ErrNotFound)
		_, err = expenses.Get("e1")
		assert.NoError(t, err)
	})

	t.Run("no target wipes everything including tombstones", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		require.NoError(t, notes.Put(makeNote("n1", "x")))
		require.NoError(t, notes.SoftDelete("n1"))

		token, err := s.RequestWipe()
		require.NoError(t, err)
		require.NoError(t, s.ConfirmWipe(token))

		all, err := notes.FetchBy(nil)
		require.NoError(t, err)
		assert.Empty(t, all)

		cats, err := s.Collection(types.CategoriesCollection)
		require.NoError(t, err)
		remaining, err := cats.FetchActive()
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("confirm without request", func(t *testing.T) {
		s, _ := openTestStore(t)
		err := s.ConfirmWipe("whatever")
		assert.ErrorIs(t, err, types.ErrWipeNotRequested)
	})

	t.Run("wrong token rejects and disarms", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		require.NoError(t, notes.Put(makeNote("n1", "safe")))

		token, err := s.RequestWipe(types.NotesCollection)
		require.NoError(t, err)

		err = s.ConfirmWipe("guess")
		assert.ErrorIs(t, err, types.ErrWipeTokenInvalid)

		// The real token no longer works either.
		err = s.ConfirmWipe(token)
		assert.ErrorIs(t, err, types.ErrWipeNotRequested)

		_, err = notes.Get("n1")
		assert.NoError(t, err)
	})

	t.Run("token is single use", func(t *testing.T) {
		s, _ := openTestStore(t)
		token, err := s.RequestWipe(types.NotesCollection)
		require.NoError(t, err)
		require.NoError(t, s.ConfirmWipe(token))

		err = s.ConfirmWipe(token)
		assert.ErrorIs(t, err, types.ErrWipeNotRequested)
	})

	t.Run("unknown collection rejected at request time", func(t *testing.T) {
		s, _ := openTestStore(t)
		_, err := s.RequestWipe("widgets")
		assert.ErrorIs(t, err, types.ErrCollectionNotFound)
	})

	t.Run("wipe notifies subscribers per collection", func(t *testing.T) {
		s, _ := openTestStore(t)
		var events []Event
		cancel := s.Subscribe(func(ev Event) { events = append(events, ev) })
		defer cancel()

		token, err := s.RequestWipe(types.NotesCollection, types.ExpensesCollection)
		require.NoError(t, err)
		require.NoError(t, s.ConfirmWipe(token))

		require.Len(t, events, 2)
		assert.Equal(t, ChangeClear, events[0].Kind)
		assert.Equal(t, ChangeClear, events[1].Kind)
	})
}
