// Reactive query layer: registered live views are re-derived and pushed
// after every mutation that touches their collection. Delivery happens
// synchronously in-process once the mutating call has committed; there is
// no cross-process or cross-tab coordination.
package store

import (
	"sort"

	"github.com/notespend/notespend/pkg/types"
)

// ChangeKind classifies a store mutation for subscribers.
type ChangeKind string

const (
	ChangePut    ChangeKind = "put"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
	ChangeBulk   ChangeKind = "bulk"
	ChangeClear  ChangeKind = "clear"
)

// Event describes a committed mutation.
type Event struct {
	Collection string
	Kind       ChangeKind
}

// watcher is one registered subscriber. A collection filter of "" receives
// every event.
type watcher struct {
	collection string
	fn         func(Event)
}

// Subscribe registers fn for every committed mutation event. The returned
// cancel function removes the subscription.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	return s.subscribe("", fn)
}

func (s *Store) subscribe(collection string, fn func(Event)) func() {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	s.watchSeq++
	id := s.watchSeq
	s.watchers[id] = &watcher{collection: collection, fn: fn}

	return func() {
		s.watchMu.Lock()
		delete(s.watchers, id)
		s.watchMu.Unlock()
	}
}

// publish delivers an event to every matching subscriber. Called after the
// store lock is released so subscribers can re-run queries.
func (s *Store) publish(events ...Event) {
	if len(events) == 0 {
		return
	}
	s.watchMu.Lock()
	var targets []*watcher
	for _, w := range s.watchers {
		targets = append(targets, w)
	}
	s.watchMu.Unlock()

	for _, ev := range events {
		for _, w := range targets {
			if w.collection == "" || w.collection == ev.Collection {
				w.fn(ev)
			}
		}
	}
}

// Watch registers a live view over one collection: derive runs immediately
// for the initial snapshot, then re-runs after every mutation touching the
// collection, pushing each fresh result. Returns a cancel function.
func (s *Store) Watch(collection string, derive func() (any, error), push func(any)) (func(), error) {
	snapshot, err := derive()
	if err != nil {
		return nil, err
	}
	push(snapshot)

	cancel := s.subscribe(collection, func(Event) {
		if snap, err := derive(); err == nil {
			push(snap)
		}
	})
	return cancel, nil
}

// WatchActiveNotes registers a live view of the active note set sorted by
// creation time, newest first.
func (s *Store) WatchActiveNotes(push func([]*types.Note)) (func(), error) {
	return s.Watch(types.NotesCollection,
		func() (any, error) { return s.ActiveNotes() },
		func(snap any) { push(snap.([]*types.Note)) })
}

// WatchActiveExpenses registers a live view of the active expense set
// sorted by date, newest first.
func (s *Store) WatchActiveExpenses(push func([]*types.Expense)) (func(), error) {
	return s.Watch(types.ExpensesCollection,
		func() (any, error) { return s.ActiveExpenses() },
		func(snap any) { push(snap.([]*types.Expense)) })
}

// WatchSettings registers a live view of the full settings snapshot.
func (s *Store) WatchSettings(push func([]*types.Setting)) (func(), error) {
	return s.Watch(types.SettingsCollection,
		func() (any, error) { return s.AllSettings() },
		func(snap any) { push(snap.([]*types.Setting)) })
}

// ActiveNotes returns the active note set sorted by createdAt descending.
func (s *Store) ActiveNotes() ([]*types.Note, error) {
	c, err := s.Collection(types.NotesCollection)
	if err != nil {
		return nil, err
	}
	records, err := c.FetchActive()
	if err != nil {
		return nil, err
	}
	notes := make([]*types.Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, r.(*types.Note))
	}
	return notes, nil
}

// ActiveExpenses returns the active expense set sorted by date descending.
func (s *Store) ActiveExpenses() ([]*types.Expense, error) {
	c, err := s.Collection(types.ExpensesCollection)
	if err != nil {
		return nil, err
	}
	records, err := c.FetchActive()
	if err != nil {
		return nil, err
	}
	expenses := make([]*types.Expense, 0, len(records))
	for _, r := range records {
		expenses = append(expenses, r.(*types.Expense))
	}
	return expenses, nil
}

// AllSettings returns every settings row sorted by key.
func (s *Store) AllSettings() ([]*types.Setting, error) {
	c, err := s.Collection(types.SettingsCollection)
	if err != nil {
		return nil, err
	}
	records, err := c.FetchBy(nil)
	if err != nil {
		return nil, err
	}
	settings := make([]*types.Setting, 0, len(records))
	for _, r := range records {
		settings = append(settings, r.(*types.Setting))
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}
