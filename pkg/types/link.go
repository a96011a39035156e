package types

import "time"

// SavedLink is a bookmarked URL. The URL is normalized to carry a scheme
// before it reaches the store.
type SavedLink struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted int       `json:"isDeleted"`
}

// MarkDeleted sets the tombstone flag and refreshes the update time.
func (l *SavedLink) MarkDeleted(now time.Time) {
	l.IsDeleted = 1
	l.UpdatedAt = now
}
