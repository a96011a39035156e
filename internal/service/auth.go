// Local account registration and login. The password is bcrypt-hashed
// before storage; login compares against the hash.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notespend/notespend/internal/cryptox"
	"github.com/notespend/notespend/pkg/types"
)

// Register creates the local account identity. The system models a single
// account; a second registration is rejected.
func (s *Service) Register(username, email, password string) (*types.AuthIdentity, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: %w", types.ErrValidation, types.ErrEmptyUsername)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: %w", types.ErrValidation, types.ErrEmptyPassword)
	}

	coll, err := s.store.Collection(types.AuthCollection)
	if err != nil {
		return nil, err
	}
	existing, err := coll.FetchBy(nil)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrAccountExists
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	identity := &types.AuthIdentity{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := coll.Put(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Login verifies the account credentials. An unknown username and a wrong
// password fail identically so neither leaks which part was wrong.
func (s *Service) Login(username, password string) (*types.AuthIdentity, error) {
	coll, err := s.store.Collection(types.AuthCollection)
	if err != nil {
		return nil, err
	}
	matches, err := coll.FetchBy(types.Filter{"username": username})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrLoginFailed
	}

	identity := matches[0].(*types.AuthIdentity)
	if !cryptox.VerifyPassword(identity.PasswordHash, password) {
		return nil, ErrLoginFailed
	}
	return identity, nil
}
