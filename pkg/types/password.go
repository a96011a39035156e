package types

import "time"

// PasswordEntry stores a credential for an external service. The Password
// field holds the AES-GCM sealed secret, base64-encoded; the cleartext
// never reaches the store.
type PasswordEntry struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"serviceName"`
	Username    string    `json:"username,omitempty"`
	Password    string    `json:"password"` // Sealed, not cleartext.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsDeleted   int       `json:"isDeleted"`
}

// MarkDeleted sets the tombstone flag.
func (p *PasswordEntry) MarkDeleted() {
	p.IsDeleted = 1
}
