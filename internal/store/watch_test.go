// Unit tests for the reactive query layer.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notespend/notespend/pkg/types"
)

func TestSubscribe(t *testing.T) {
	t.Run("subscriber sees committed mutations", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		var events []Event
		cancel := s.Subscribe(func(ev Event) { events = append(events, ev) })
		defer cancel()

		require.NoError(t, notes.Put(makeNote("n1", "a")))
		require.NoError(t, notes.Update("n1", map[string]any{"pinned": 1}))
		require.NoError(t, notes.SoftDelete("n1"))

		require.Len(t, events, 3)
		assert.Equal(t, ChangePut, events[0].Kind)
		assert.Equal(t, ChangeUpdate, events[1].Kind)
		assert.Equal(t, ChangeDelete, events[2].Kind)
		assert.Equal(t, types.NotesCollection, events[0].Collection)
	})

	t.Run("cancel stops delivery", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		count := 0
		cancel := s.Subscribe(func(Event) { count++ })
		require.NoError(t, notes.Put(makeNote("n1", "a")))
		cancel()
		require.NoError(t, notes.Put(makeNote("n2", "b")))

		assert.Equal(t, 1, count)
	})

	t.Run("failed mutations publish nothing", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)

		count := 0
		cancel := s.Subscribe(func(Event) { count++ })
		defer cancel()

		require.Error(t, notes.Put(makeNote("", "no id")))
		assert.Equal(t, 0, count)
	})
}

func TestWatch(t *testing.T) {
	t.Run("initial snapshot then refresh per mutation", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		require.NoError(t, notes.Put(makeNote("n1", "first")))

		var snapshots [][]*types.Note
		cancel, err := s.WatchActiveNotes(func(active []*types.Note) {
			snapshots = append(snapshots, active)
		})
		require.NoError(t, err)
		defer cancel()

		require.Len(t, snapshots, 1)
		assert.Len(t, snapshots[0], 1)

		require.NoError(t, notes.Put(makeNote("n2", "second")))
		require.Len(t, snapshots, 2)
		assert.Len(t, snapshots[1], 2)

		require.NoError(t, notes.SoftDelete("n1"))
		require.Len(t, snapshots, 3)
		require.Len(t, snapshots[2], 1)
		assert.Equal(t, "n2", snapshots[2][0].ID)
	})

	t.Run("view ignores other collections", func(t *testing.T) {
		s, _ := openTestStore(t)
		expenses, err := s.Collection(types.ExpensesCollection)
		require.NoError(t, err)

		pushes := 0
		cancel, err := s.WatchActiveNotes(func([]*types.Note) { pushes++ })
		require.NoError(t, err)
		defer cancel()

		require.NoError(t, expenses.Put(makeExpense("e1", types.TypeExpense, 10, "Other", "2026-08-01")))
		assert.Equal(t, 1, pushes) // initial snapshot only
	})

	t.Run("settings view sees every write", func(t *testing.T) {
		s, _ := openTestStore(t)
		settings, err := s.Collection(types.SettingsCollection)
		require.NoError(t, err)

		var latest []*types.Setting
		cancel, err := s.WatchSettings(func(snap []*types.Setting) { latest = snap })
		require.NoError(t, err)
		defer cancel()

		require.NoError(t, settings.Put(&types.Setting{Key: "theme", Value: "dark"}))
		require.NoError(t, settings.Put(&types.Setting{Key: "currency", Value: "USD"}))

		require.Len(t, latest, 2)
		assert.Equal(t, "currency", latest[0].Key)
		assert.Equal(t, "theme", latest[1].Key)
	})
}
