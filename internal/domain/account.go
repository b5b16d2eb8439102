package domain

import "time"

// Account is a login credential record. It is linked to a Member by email
// value only; there is no foreign key between the two.
type Account struct {
	ID    AccountID
	Email string
	Name  string
	Role  Role
	// Status is a free-form lifecycle string ("active" on creation).
	Status string
	// PasswordHash is a bcrypt hash; the plaintext is never stored.
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
