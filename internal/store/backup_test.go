// Unit tests for backup export/import: round-tripping, merge semantics,
// tombstone preservation, and format rejection.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notespend/notespend/pkg/types"
)

func TestExport(t *testing.T) {
	t.Run("document carries all sections and tombstones", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		expenses, err := s.Collection(types.ExpensesCollection)
		require.NoError(t, err)

		require.NoError(t, notes.Put(makeNote("n1", "kept")))
		require.NoError(t, notes.Put(makeNote("n2", "deleted")))
		require.NoError(t, notes.SoftDelete("n2"))
		require.NoError(t, expenses.Put(makeExpense("e1", types.TypeExpense, 250, "Travel", "2026-08-01")))

		var buf bytes.Buffer
		require.NoError(t, s.Export(&buf))

		var doc types.BackupDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Len(t, doc.Notes, 2)
		assert.Len(t, doc.Expenses, 1)
		require.NotEmpty(t, doc.Timestamp)
		_, err = time.Parse(timeLayout, doc.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("export to file is readable back", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		require.NoError(t, notes.Put(makeNote("n1", "on disk")))

		path := filepath.Join(t.TempDir(), "backup.json")
		require.NoError(t, s.ExportToFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var doc types.BackupDocument
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Len(t, doc.Notes, 1)
	})
}

func TestImport(t *testing.T) {
	t.Run("round-trip into a fresh store", func(t *testing.T) {
		src, _ := openTestStore(t)
		notes, err := src.Collection(types.NotesCollection)
		require.NoError(t, err)
		expenses, err := src.Collection(types.ExpensesCollection)
		require.NoError(t, err)

		n := makeNote("n1", "travel notes")
		n.LinkedExpenseIDs = []string{"e1"}
		require.NoError(t, notes.Put(n))
		e := makeExpense("e1", types.TypeExpense, 250, "Travel", "2026-08-01")
		e.LinkedNoteID = "n1"
		require.NoError(t, expenses.Put(e))

		var buf bytes.Buffer
		require.NoError(t, src.Export(&buf))

		dst, _ := openTestStore(t)
		report, err := dst.Import(&buf)
		require.NoError(t, err)
		assert.False(t, report.Failed())
		assert.Equal(t, 1, report.Notes)
		assert.Equal(t, 1, report.Expenses)

		dstNotes, err := dst.Collection(types.NotesCollection)
		require.NoError(t, err)
		rec, err := dstNotes.Get("n1")
		require.NoError(t, err)
		got := rec.(*types.Note)
		assert.Equal(t, "travel notes", got.Title)
		assert.Equal(t, []string{"e1"}, got.LinkedExpenseIDs)
	})

	t.Run("merge leaves records absent from the document untouched", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		require.NoError(t, notes.Put(makeNote("local", "only here")))

		doc := `{"notes": [{"id": "imported", "title": "from backup",
			"tags": [], "pinned": 0, "linkedExpenseIds": [], "isDeleted": 0,
			"createdAt": "2026-08-01T10:00:00Z", "updatedAt": "2026-08-01T10:00:00Z"}],
			"timestamp": "2026-08-01T10:00:00Z"}`
		report, err := s.Import(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, 1, report.Notes)

		all, err := notes.FetchActive()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("imported tombstone overwrites a live record", func(t *testing.T) {
		s, _ := openTestStore(t)
		notes, err := s.Collection(types.NotesCollection)
		require.NoError(t, err)
		require.NoError(t, notes.Put(makeNote("n1", "alive")))

		doc := `{"notes": [{"id": "n1", "title": "alive", "tags": [],
			"pinned": 0, "linkedExpenseIds": [], "isDeleted": 1,
			"deletedAt": "2026-08-02T09:00:00Z",
			"createdAt": "2026-08-01T10:00:00Z", "updatedAt": "2026-08-02T09:00:00Z"}],
			"timestamp": "2026-08-02T09:00:00Z"}`
		_, err = s.Import(strings.NewReader(doc))
		require.NoError(t, err)

		active, err := notes.FetchActive()
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("unknown record fields re-emit on the next export", func(t *testing.T) {
		s, _ := openTestStore(t)

		doc := `{"notes": [{"id": "n1", "title": "future note", "tags": [],
			"pinned": 0, "linkedExpenseIds": [], "isDeleted": 0,
			"createdAt": "2026-08-01T10:00:00Z", "updatedAt": "2026-08-01T10:00:00Z",
			"mood": "optimistic"}], "timestamp": "2026-08-01T10:00:00Z"}`
		_, err := s.Import(strings.NewReader(doc))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, s.Export(&buf))
		assert.Contains(t, buf.String(), `"mood"`)
	})

	t.Run("malformed payload returns ErrImportFormat", func(t *testing.T) {
		s, _ := openTestStore(t)

		_, err := s.Import(strings.NewReader("not json at all"))
		assert.ErrorIs(t, err, types.ErrImportFormat)

		_, err = s.Import(strings.NewReader(`{"unrelated": true}`))
		assert.ErrorIs(t, err, types.ErrImportFormat)
	})

	t.Run("one bad section does not block the others", func(t *testing.T) {
		s, _ := openTestStore(t)

		doc := `{"notes": [{"id": 42}],
			"links": [{"id": "l1", "url": "https://example.com", "isDeleted": 0,
			"createdAt": "2026-08-01T10:00:00Z", "updatedAt": "2026-08-01T10:00:00Z"}],
			"timestamp": "2026-08-01T10:00:00Z"}`
		report, err := s.Import(strings.NewReader(doc))
		require.NoError(t, err)
		assert.True(t, report.Failed())
		assert.ErrorIs(t, report.Errors[types.NotesCollection], types.ErrImportFormat)
		assert.Equal(t, 1, report.Links)
	})
}
