package supplementrepo

import (
	"context"
	"errors"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// ErrNotFound indicates the requested supplement does not exist.
var ErrNotFound = errors.New("supplement not found")

// Repository provides access to the supplement inventory.
type Repository interface {
	Create(ctx context.Context, s domain.Supplement) error
	Update(ctx context.Context, s domain.Supplement) error
	Delete(ctx context.Context, id domain.SupplementID) error

	GetByID(ctx context.Context, id domain.SupplementID) (domain.Supplement, error)

	// List returns supplements ordered by name ascending.
	List(ctx context.Context) ([]domain.Supplement, error)

	// SearchByTerm matches the term case-insensitively against name and
	// category.
	SearchByTerm(ctx context.Context, term string) ([]domain.Supplement, error)

	Count(ctx context.Context) (int, error)
}
