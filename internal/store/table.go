package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/notespend/notespend/pkg/types"
)

// collection implements types.Collection for a single entity type. Each
// accessor knows its collection name and the parent store for DB access
// and change notification.
type collection struct {
	name  string
	store *Store
}

var _ types.Collection = (*collection)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Get retrieves a record by ID. Soft-deleted records remain resolvable
// here; only the active-set queries exclude them.
func (c *collection) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if !c.store.open {
		return nil, types.ErrStoreClosed
	}

	switch c.name {
	case types.NotesCollection:
		return c.getNote(id)
	case types.ExpensesCollection:
		return c.getExpense(id)
	case types.CategoriesCollection:
		return c.getCategory(id)
	case types.SettingsCollection:
		return c.getSetting(id)
	case types.LinksCollection:
		return c.getLink(id)
	case types.PasswordsCollection:
		return c.getPassword(id)
	case types.AuthCollection:
		return c.getAuth(id)
	default:
		return nil, types.ErrCollectionNotFound
	}
}

// Put inserts or fully replaces a record by primary key. The record must
// already carry its primary key; assigning ids is the lifecycle layer's
// job, not the store's.
func (c *collection) Put(record any) error {
	c.store.mu.Lock()
	err := c.put(record)
	c.store.mu.Unlock()
	if err != nil {
		return err
	}
	c.store.publish(Event{Collection: c.name, Kind: ChangePut})
	return nil
}

func (c *collection) put(record any) error {
	if !c.store.open {
		return types.ErrStoreClosed
	}

	switch c.name {
	case types.NotesCollection:
		return c.putNote(record)
	case types.ExpensesCollection:
		return c.putExpense(record)
	case types.CategoriesCollection:
		return c.putCategory(record)
	case types.SettingsCollection:
		return c.putSetting(record)
	case types.LinksCollection:
		return c.putLink(record)
	case types.PasswordsCollection:
		return c.putPassword(record)
	case types.AuthCollection:
		return c.putAuth(record)
	default:
		return types.ErrCollectionNotFound
	}
}

// Update merge-patches the named fields of an existing record. Field names
// use the record's JSON keys. Returns ErrNotFound if the ID does not exist.
func (c *collection) Update(id string, fields map[string]any) error {
	if id == "" {
		return types.ErrInvalidID
	}

	c.store.mu.Lock()
	err := func() error {
		if !c.store.open {
			return types.ErrStoreClosed
		}
		rec, err := c.getAny(id)
		if err != nil {
			return err
		}
		patched, err := patchRecord(c.name, rec, fields)
		if err != nil {
			return err
		}
		return c.put(patched)
	}()
	c.store.mu.Unlock()
	if err != nil {
		return err
	}
	c.store.publish(Event{Collection: c.name, Kind: ChangeUpdate})
	return nil
}

// SoftDelete marks a record deleted without removing it. Notes additionally
// get a deletion timestamp; links refresh their update time. Settings,
// categories, and auth have no soft-delete concept.
func (c *collection) SoftDelete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	c.store.mu.Lock()
	err := func() error {
		if !c.store.open {
			return types.ErrStoreClosed
		}
		rec, err := c.getAny(id)
		if err != nil {
			return err
		}
		now := time.Now()
		switch r := rec.(type) {
		case *types.Note:
			r.MarkDeleted(now)
			r.UpdatedAt = now
		case *types.Expense:
			r.MarkDeleted()
			r.UpdatedAt = now
		case *types.SavedLink:
			r.MarkDeleted(now)
		case *types.PasswordEntry:
			r.MarkDeleted()
			r.UpdatedAt = now
		default:
			return fmt.Errorf("%w: %s does not support soft deletion", types.ErrInvalidData, c.name)
		}
		return c.put(rec)
	}()
	c.store.mu.Unlock()
	if err != nil {
		return err
	}
	c.store.publish(Event{Collection: c.name, Kind: ChangeDelete})
	return nil
}

// FetchActive returns all records with the soft-delete flag unset, in the
// collection's display order. Collections without a soft-delete flag
// return every record.
func (c *collection) FetchActive() ([]any, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if !c.store.open {
		return nil, types.ErrStoreClosed
	}

	switch c.name {
	case types.NotesCollection:
		return c.fetchNotes(types.Filter{"isDeleted": 0})
	case types.ExpensesCollection:
		return c.fetchExpenses(types.Filter{"isDeleted": 0})
	case types.CategoriesCollection:
		return c.fetchCategories(nil)
	case types.SettingsCollection:
		return c.fetchSettings(nil)
	case types.LinksCollection:
		return c.fetchLinks(types.Filter{"isDeleted": 0})
	case types.PasswordsCollection:
		return c.fetchPasswords(types.Filter{"isDeleted": 0})
	case types.AuthCollection:
		return c.fetchAuth(nil)
	default:
		return nil, types.ErrCollectionNotFound
	}
}

// FetchBy returns records matching the field-equality filter. An empty
// filter matches every record, tombstones included.
func (c *collection) FetchBy(filter types.Filter) ([]any, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if !c.store.open {
		return nil, types.ErrStoreClosed
	}

	switch c.name {
	case types.NotesCollection:
		return c.fetchNotes(filter)
	case types.ExpensesCollection:
		return c.fetchExpenses(filter)
	case types.CategoriesCollection:
		return c.fetchCategories(filter)
	case types.SettingsCollection:
		return c.fetchSettings(filter)
	case types.LinksCollection:
		return c.fetchLinks(filter)
	case types.PasswordsCollection:
		return c.fetchPasswords(filter)
	case types.AuthCollection:
		return c.fetchAuth(filter)
	default:
		return nil, types.ErrCollectionNotFound
	}
}

// BulkPut upserts records sequentially, bypassing per-field validation.
// A failure partway leaves earlier records committed; the error names the
// failing record.
func (c *collection) BulkPut(records []any) error {
	c.store.mu.Lock()
	err := func() error {
		if !c.store.open {
			return types.ErrStoreClosed
		}
		for i, rec := range records {
			if err := c.put(rec); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		return nil
	}()
	c.store.mu.Unlock()
	if err != nil {
		return err
	}
	c.store.publish(Event{Collection: c.name, Kind: ChangeBulk})
	return nil
}

// getAny dispatches Get without taking the store lock; the caller holds it.
func (c *collection) getAny(id string) (any, error) {
	switch c.name {
	case types.NotesCollection:
		return c.getNote(id)
	case types.ExpensesCollection:
		return c.getExpense(id)
	case types.CategoriesCollection:
		return c.getCategory(id)
	case types.SettingsCollection:
		return c.getSetting(id)
	case types.LinksCollection:
		return c.getLink(id)
	case types.PasswordsCollection:
		return c.getPassword(id)
	case types.AuthCollection:
		return c.getAuth(id)
	default:
		return nil, types.ErrCollectionNotFound
	}
}

// patchRecord merges fields into the record's JSON form and rebuilds the
// concrete entity. Unknown keys survive on notes and expenses through
// their Extra passthrough.
func patchRecord(name string, rec any, fields map[string]any) (any, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshaling record for patch: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding record for patch: %w", err)
	}
	for k, v := range fields {
		m[k] = v
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding patched record: %w", err)
	}

	fresh := newRecord(name)
	if fresh == nil {
		return nil, types.ErrCollectionNotFound
	}
	if err := json.Unmarshal(merged, fresh); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	return fresh, nil
}

// newRecord returns a zero entity pointer for the named collection.
func newRecord(name string) any {
	switch name {
	case types.NotesCollection:
		return &types.Note{}
	case types.ExpensesCollection:
		return &types.Expense{}
	case types.CategoriesCollection:
		return &types.Category{}
	case types.SettingsCollection:
		return &types.Setting{}
	case types.LinksCollection:
		return &types.SavedLink{}
	case types.PasswordsCollection:
		return &types.PasswordEntry{}
	case types.AuthCollection:
		return &types.AuthIdentity{}
	default:
		return nil
	}
}
