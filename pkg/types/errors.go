package types

import "errors"

// Record operation errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid record ID")
	ErrInvalidData   = errors.New("invalid record data")
	ErrInvalidFilter = errors.New("invalid filter value type")
)

// Lifecycle validation errors. ErrValidation is the sentinel every
// malformed-input failure wraps; callers match with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidAmount = errors.New("amount must be a positive finite number")
	ErrInvalidType   = errors.New("type must be expense or income")
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrEmptyCategory = errors.New("category must not be empty")
	ErrEmptyURL      = errors.New("url must not be empty")
	ErrInvalidDate   = errors.New("date must be a YYYY-MM-DD calendar date")
	ErrEmptyService  = errors.New("service name must not be empty")
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrEmptyPassword = errors.New("password must not be empty")
)

// Backup/restore errors.
var (
	ErrImportFormat = errors.New("backup document has unexpected shape")
)

// Destructive-operation errors. Wipe is a two-step contract: request a
// token, then confirm with it.
var (
	ErrWipeNotRequested = errors.New("wipe was not requested")
	ErrWipeTokenInvalid = errors.New("wipe token does not match")
)
