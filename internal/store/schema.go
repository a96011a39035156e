// Package store implements the SQLite-backed record store for NoteSpend.
// The database file is the durable source of truth and persists across
// opens; the schema is applied idempotently.
package store

// Schema DDL for all collections.
const (
	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    note_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    tags TEXT NOT NULL,
    pinned INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    linked_expense_ids TEXT NOT NULL,
    is_deleted INTEGER NOT NULL,
    deleted_at TEXT,
    extra TEXT
);`

	createExpenses = `CREATE TABLE IF NOT EXISTS expenses (
    expense_id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    amount REAL NOT NULL,
    category TEXT NOT NULL,
    date TEXT NOT NULL,
    description TEXT,
    linked_note_id TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    is_deleted INTEGER NOT NULL,
    extra TEXT
);`

	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    name TEXT NOT NULL,
    icon TEXT NOT NULL,
    color TEXT NOT NULL
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createLinks = `CREATE TABLE IF NOT EXISTS links (
    link_id TEXT PRIMARY KEY,
    name TEXT,
    url TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    is_deleted INTEGER NOT NULL
);`

	createPasswords = `CREATE TABLE IF NOT EXISTS passwords (
    password_id TEXT PRIMARY KEY,
    service_name TEXT NOT NULL,
    username TEXT,
    password TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    is_deleted INTEGER NOT NULL
);`

	createAuth = `CREATE TABLE IF NOT EXISTS auth (
    user_id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL for the active-set and equality lookups every list view runs.
const (
	idxNotesDeleted       = `CREATE INDEX IF NOT EXISTS idx_notes_deleted ON notes(is_deleted);`
	idxNotesCreated       = `CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at);`
	idxExpensesDeleted    = `CREATE INDEX IF NOT EXISTS idx_expenses_deleted ON expenses(is_deleted);`
	idxExpensesDate       = `CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);`
	idxExpensesLinkedNote = `CREATE INDEX IF NOT EXISTS idx_expenses_linked_note ON expenses(linked_note_id);`
	idxExpensesCategory   = `CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);`
	idxCategoriesType     = `CREATE INDEX IF NOT EXISTS idx_categories_type ON categories(type);`
	idxLinksDeleted       = `CREATE INDEX IF NOT EXISTS idx_links_deleted ON links(is_deleted);`
	idxPasswordsDeleted   = `CREATE INDEX IF NOT EXISTS idx_passwords_deleted ON passwords(is_deleted);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createNotes,
	createExpenses,
	createCategories,
	createSettings,
	createLinks,
	createPasswords,
	createAuth,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxNotesDeleted,
	idxNotesCreated,
	idxExpensesDeleted,
	idxExpensesDate,
	idxExpensesLinkedNote,
	idxExpensesCategory,
	idxCategoriesType,
	idxLinksDeleted,
	idxPasswordsDeleted,
}
