// Note lifecycle.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notespend/notespend/pkg/types"
)

// CreateNote builds and stores a new active note: generated id, pinned
// off, empty tag and linkage lists, both timestamps set to now.
func (s *Service) CreateNote(title, description string, tags []string) (*types.Note, error) {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now()
	n := &types.Note{
		ID:               uuid.NewString(),
		Title:            title,
		Description:      description,
		Tags:             tags,
		LinkedExpenseIDs: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	coll, err := s.store.Collection(types.NotesCollection)
	if err != nil {
		return nil, err
	}
	if err := coll.Put(n); err != nil {
		return nil, err
	}
	return n, nil
}

// UpdateNote merge-patches a note and refreshes its update time. A patch
// that clears the title is rejected before anything is written.
func (s *Service) UpdateNote(id string, fields map[string]any) error {
	if title, ok := fields["title"]; ok {
		if str, _ := title.(string); str == "" {
			return fmt.Errorf("%w: %w", types.ErrValidation, types.ErrEmptyTitle)
		}
	}

	coll, err := s.store.Collection(types.NotesCollection)
	if err != nil {
		return err
	}
	patch := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updatedAt"] = time.Now().Format(time.RFC3339Nano)
	return coll.Update(id, patch)
}

// TogglePin flips the pinned flag and returns the updated note.
func (s *Service) TogglePin(id string) (*types.Note, error) {
	n, err := s.GetNote(id)
	if err != nil {
		return nil, err
	}
	n.TogglePin()
	n.UpdatedAt = time.Now()

	coll, err := s.store.Collection(types.NotesCollection)
	if err != nil {
		return nil, err
	}
	if err := coll.Put(n); err != nil {
		return nil, err
	}
	return n, nil
}

// DeleteNote soft-deletes a note. The tombstone keeps its linkage list so
// linked expenses remain resolvable.
func (s *Service) DeleteNote(id string) error {
	coll, err := s.store.Collection(types.NotesCollection)
	if err != nil {
		return err
	}
	return coll.SoftDelete(id)
}

// GetNote resolves a note by id, tombstones included.
func (s *Service) GetNote(id string) (*types.Note, error) {
	coll, err := s.store.Collection(types.NotesCollection)
	if err != nil {
		return nil, err
	}
	rec, err := coll.Get(id)
	if err != nil {
		return nil, err
	}
	return rec.(*types.Note), nil
}

// ActiveNotes returns the active note set, newest first.
func (s *Service) ActiveNotes() ([]*types.Note, error) {
	return s.store.ActiveNotes()
}
