package domain

import "errors"

var (
	// Numbering / ledger errors.
	ErrStorage           = errors.New("storage unavailable")
	ErrLockContention    = errors.New("counter lock not acquired in time")
	ErrProjectNotFound   = errors.New("project not found")
	ErrEditLimitExceeded = errors.New("maximum number of revisions reached")
	ErrAllocationFailed  = errors.New("cannot generate document number")
	ErrInvalidPrefix     = errors.New("document prefix must not be empty")
	ErrInvalidYear       = errors.New("year must be a positive integer")

	// Account errors.
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")
)
