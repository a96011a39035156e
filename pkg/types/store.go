package types

import "errors"

// Store defines the interface for the local record store. Callers open the
// store against a data directory, access collections by name, and close it
// when done.
type Store interface {
	// Collection returns the Collection for the given name.
	// Returns ErrCollectionNotFound if the name is not a standard collection.
	Collection(name string) (Collection, error)

	// Open connects the Store to the database described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyOpen if
	// called while already open.
	Open(config Config) error

	// Close releases storage resources. Idempotent: multiple calls succeed.
	// After Close, operations on collections return ErrStoreClosed.
	Close() error
}

// Collection provides uniform record operations for a single entity type.
// Get, FetchActive, and FetchBy return any; callers type-assert to the
// concrete entity struct.
type Collection interface {
	// Get retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID; soft-deleted
	// records are still resolvable here.
	Get(id string) (any, error)

	// Put inserts or fully replaces a record by primary key. Returns
	// ErrValidation if the record carries no primary key value.
	Put(record any) error

	// Update merge-patches the named fields of an existing record and
	// persists it. Returns ErrNotFound if the ID does not exist.
	Update(id string, fields map[string]any) error

	// SoftDelete marks the record deleted without removing it. Returns
	// ErrNotFound if the ID does not exist.
	SoftDelete(id string) error

	// FetchActive returns all records with the soft-delete flag unset,
	// sorted by the collection's display order.
	FetchActive() ([]any, error)

	// FetchBy returns records matching the field-equality filter. An empty
	// filter matches every record, deleted or not.
	FetchBy(filter Filter) ([]any, error)

	// BulkPut upserts many records in one pass, bypassing per-field
	// validation. Used by restore.
	BulkPut(records []any) error
}

// Filter is a field-equality predicate for Collection.FetchBy.
type Filter map[string]any

// Store lifecycle errors.
var (
	ErrStoreClosed        = errors.New("store is closed")
	ErrAlreadyOpen        = errors.New("store is already open")
	ErrCollectionNotFound = errors.New("collection not found")
)
