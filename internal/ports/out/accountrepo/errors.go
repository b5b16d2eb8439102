package accountrepo

import "errors"

var (
	// ErrNotFound indicates no account exists for the given email.
	ErrNotFound = errors.New("account not found")

	// ErrEmailTaken indicates an account already exists with the given email.
	ErrEmailTaken = errors.New("account email already taken")
)
