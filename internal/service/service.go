// Package service implements the entity lifecycle rules on top of the
// record store: id assignment, timestamps, validation, soft deletion, and
// the note-expense linkage bookkeeping.
package service

import (
	"errors"
	"log/slog"

	"github.com/notespend/notespend/internal/cryptox"
	"github.com/notespend/notespend/internal/store"
)

// Account errors.
var (
	ErrAccountExists = errors.New("an account is already registered")
	ErrLoginFailed   = errors.New("username or password is incorrect")
)

// Service wires the record store to the lifecycle rules. A nil sealer is
// allowed; password entry operations then fail with an explicit error.
type Service struct {
	store  *store.Store
	log    *slog.Logger
	sealer *cryptox.Sealer
}

// New creates a Service over an open store.
func New(st *store.Store, log *slog.Logger, sealer *cryptox.Sealer) *Service {
	return &Service{store: st, log: log, sealer: sealer}
}

// Store exposes the underlying record store for watch subscriptions and
// backup operations.
func (s *Service) Store() *store.Store {
	return s.store
}
