package types

// Setting is a single key → opaque payload row. One row per key; the last
// write wins. Settings have no soft-delete concept.
type Setting struct {
	Key   string `json:"key"`
	Value any    `json:"value"` // Arbitrary JSON-serializable payload.
}
