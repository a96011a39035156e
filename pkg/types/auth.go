package types

import "time"

// AuthIdentity is the single local user identity. PasswordHash is a bcrypt
// hash; login compares against it and the cleartext is never persisted.
// The system does not model multiple concurrent sessions.
type AuthIdentity struct {
	UserID       string    `json:"userId"` // Generated, not user-chosen.
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
