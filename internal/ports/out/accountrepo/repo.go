package accountrepo

import (
	"context"
	"time"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// Account is the persistence shape used by the account repository. It is an
// internal record, not an HTTP DTO.
type Account struct {
	ID     domain.AccountID
	Email  string
	Name   string
	Role   domain.Role
	Status string
	// PasswordHash is a bcrypt hash.
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository provides access to persisted credential records.
//
// Email is unique across the store; adapters must enforce it (unique index in
// Postgres, map key in memory) and surface ErrEmailTaken on conflict.
type Repository interface {
	Create(ctx context.Context, a Account) error
	Update(ctx context.Context, a Account) error

	FindByEmail(ctx context.Context, email string) (Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Count(ctx context.Context) (int, error)
}
