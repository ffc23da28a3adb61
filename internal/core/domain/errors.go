package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFields     = errors.New("missing fields")
	ErrInvalidRole       = errors.New("invalid role")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrNoUpdatableFields = errors.New("no updatable fields")
	ErrAccountNotFound   = errors.New("user not found")
	ErrHashFailure       = errors.New("password hashing failed")
	ErrStoreFailure      = errors.New("store failure")

	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists for user")
	ErrClubNotFound    = errors.New("club not found")

	ErrIdempotencyInProgress = errors.New("a request with this idempotency key is still in progress")
	ErrIdempotencyKeyReused  = errors.New("idempotency key was already used for a different request")
)

// StoreError wraps an unclassified storage fault. Its message is the driver's
// own diagnostic so it can be reported verbatim.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for the named operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: store failure", e.Op)
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStoreFailure) match any StoreError.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreFailure
}
