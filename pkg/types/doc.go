// Package types defines the Store and Collection interfaces, the persisted
// entity types (notes, expenses, categories, settings, links, passwords,
// auth), and the standard errors for the NoteSpend storage system.
package types
