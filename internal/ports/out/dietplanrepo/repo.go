package dietplanrepo

import (
	"context"
	"errors"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// ErrNotFound indicates the requested diet plan does not exist.
var ErrNotFound = errors.New("diet plan not found")

// Repository provides access to persisted diet plans.
type Repository interface {
	Create(ctx context.Context, p domain.DietPlan) error
	Update(ctx context.Context, p domain.DietPlan) error
	Delete(ctx context.Context, id domain.DietPlanID) error

	GetByID(ctx context.Context, id domain.DietPlanID) (domain.DietPlan, error)

	// List returns plans ordered by title ascending.
	List(ctx context.Context) ([]domain.DietPlan, error)

	Count(ctx context.Context) (int, error)
}
