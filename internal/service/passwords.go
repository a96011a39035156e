// Password entry lifecycle. Secrets are sealed under the device key
// before storage and only unsealed on explicit reveal.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notespend/notespend/pkg/types"
)

// ErrNoSealer is returned when password entry operations run without a
// configured device key.
var ErrNoSealer = errors.New("no device key configured")

// CreatePassword seals the secret and stores a new password entry.
func (s *Service) CreatePassword(serviceName, username, secret string) (*types.PasswordEntry, error) {
	if serviceName == "" {
		return nil, fmt.Errorf("%w: %w", types.ErrValidation, types.ErrEmptyService)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: %w", types.ErrValidation, types.ErrEmptyPassword)
	}
	if s.sealer == nil {
		return nil, ErrNoSealer
	}

	sealed, err := s.sealer.Seal(secret)
	if err != nil {
		return nil, fmt.Errorf("sealing password: %w", err)
	}

	now := time.Now()
	p := &types.PasswordEntry{
		ID:          uuid.NewString(),
		ServiceName: serviceName,
		Username:    username,
		Password:    sealed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	coll, err := s.store.Collection(types.PasswordsCollection)
	if err != nil {
		return nil, err
	}
	if err := coll.Put(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RevealPassword unseals and returns the cleartext secret of an entry.
func (s *Service) RevealPassword(id string) (string, error) {
	if s.sealer == nil {
		return "", ErrNoSealer
	}

	coll, err := s.store.Collection(types.PasswordsCollection)
	if err != nil {
		return "", err
	}
	rec, err := coll.Get(id)
	if err != nil {
		return "", err
	}
	return s.sealer.Unseal(rec.(*types.PasswordEntry).Password)
}

// DeletePassword soft-deletes a password entry.
func (s *Service) DeletePassword(id string) error {
	coll, err := s.store.Collection(types.PasswordsCollection)
	if err != nil {
		return err
	}
	return coll.SoftDelete(id)
}

// ActivePasswords returns the active password entries grouped by service.
// Secrets stay sealed in the returned records.
func (s *Service) ActivePasswords() ([]*types.PasswordEntry, error) {
	coll, err := s.store.Collection(types.PasswordsCollection)
	if err != nil {
		return nil, err
	}
	records, err := coll.FetchActive()
	if err != nil {
		return nil, err
	}
	entries := make([]*types.PasswordEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.(*types.PasswordEntry))
	}
	return entries, nil
}
