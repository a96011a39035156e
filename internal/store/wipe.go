// Physical clearing of collections. Unlike soft deletion this actually
// removes rows, so it sits behind a two-step token handshake.
package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/notespend/notespend/pkg/types"
)

// RequestWipe arms a wipe of the named collections and returns a
// single-use confirmation token. Calling it again replaces any pending
// request. With no collections named, every standard collection is
// targeted.
func (s *Store) RequestWipe(collections ...string) (string, error) {
	s.mu.RLock()
	open := s.open
	s.mu.RUnlock()
	if !open {
		return "", types.ErrStoreClosed
	}

	if len(collections) == 0 {
		collections = append([]string{}, types.StandardCollectionNames...)
	}
	for _, name := range collections {
		if _, ok := tableFor(name); !ok {
			return "", fmt.Errorf("%w: %s", types.ErrCollectionNotFound, name)
		}
	}

	token := uuid.NewString()

	s.wipeMu.Lock()
	s.wipeToken = token
	s.wipeTargets = collections
	s.wipeMu.Unlock()

	return token, nil
}

// ConfirmWipe executes the pending wipe if token matches. The token is
// consumed on the attempt either way; a mismatched token also cancels the
// pending request rather than leaving a destructive operation armed.
func (s *Store) ConfirmWipe(token string) error {
	s.wipeMu.Lock()
	pending := s.wipeToken
	targets := s.wipeTargets
	s.wipeToken = ""
	s.wipeTargets = nil
	s.wipeMu.Unlock()

	if pending == "" {
		return types.ErrWipeNotRequested
	}
	if token != pending {
		return types.ErrWipeTokenInvalid
	}

	s.mu.Lock()
	err := func() error {
		if !s.open {
			return types.ErrStoreClosed
		}
		for _, name := range targets {
			table, _ := tableFor(name)
			if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("wiping %s: %w", name, err)
			}
		}
		return nil
	}()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	for _, name := range targets {
		s.publish(Event{Collection: name, Kind: ChangeClear})
	}
	return nil
}

// tableFor maps a collection name to its backing table.
func tableFor(name string) (string, bool) {
	switch name {
	case types.NotesCollection:
		return "notes", true
	case types.ExpensesCollection:
		return "expenses", true
	case types.CategoriesCollection:
		return "categories", true
	case types.SettingsCollection:
		return "settings", true
	case types.LinksCollection:
		return "links", true
	case types.PasswordsCollection:
		return "passwords", true
	case types.AuthCollection:
		return "auth", true
	default:
		return "", false
	}
}
