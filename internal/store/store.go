package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/notespend/notespend/pkg/types"
)

// DBFileName is the SQLite database file created inside the data directory.
const DBFileName = "notespend.db"

// timeLayout is the persisted timestamp format.
const timeLayout = time.RFC3339Nano

// Store implements types.Store over a single SQLite database file. All
// mutations are atomic per call; no cross-collection transactionality is
// guaranteed.
type Store struct {
	mu          sync.RWMutex
	open        bool
	config      types.Config
	db          *sql.DB
	collections map[string]*collection

	watchMu  sync.Mutex
	watchSeq int
	watchers map[int]*watcher

	wipeMu      sync.Mutex
	wipeToken   string
	wipeTargets []string
}

// New creates a Store instance. The store is not open; call Open with a
// Config to initialize.
func New() *Store {
	return &Store{
		collections: make(map[string]*collection),
		watchers:    make(map[int]*watcher),
	}
}

// Open initializes the store against the configured data directory,
// creating it and the database schema if needed, and seeds the built-in
// category catalog on first run. Returns ErrAlreadyOpen if already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying indexes: %w", err)
		}
	}

	if err := seedDefaultCategories(db); err != nil {
		db.Close()
		return fmt.Errorf("seeding categories: %w", err)
	}

	s.db = db
	s.config = config
	s.open = true

	for _, name := range types.StandardCollectionNames {
		s.collections[name] = &collection{name: name, store: s}
	}

	return nil
}

// Close releases the database connection. Idempotent. After Close, all
// collection operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.open = false
	s.collections = make(map[string]*collection)

	return nil
}

// Collection returns the accessor for the named collection.
// Returns ErrCollectionNotFound if the name is not a standard collection,
// ErrStoreClosed if the store is not open.
func (s *Store) Collection(name string) (types.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	c, ok := s.collections[name]
	if !ok {
		return nil, types.ErrCollectionNotFound
	}
	return c, nil
}

var _ types.Store = (*Store)(nil)
