package packagerepo

import (
	"context"
	"errors"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

var (
	// ErrNotFound indicates the requested fee package does not exist.
	ErrNotFound = errors.New("fee package not found")

	// ErrNameTaken indicates a fee package already exists with the given name.
	ErrNameTaken = errors.New("fee package name already taken")
)

// Repository provides access to persisted fee packages.
type Repository interface {
	Create(ctx context.Context, p domain.FeePackage) error

	GetByID(ctx context.Context, id domain.PackageID) (domain.FeePackage, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List returns packages ordered by name ascending.
	List(ctx context.Context) ([]domain.FeePackage, error)

	Count(ctx context.Context) (int, error)
}
