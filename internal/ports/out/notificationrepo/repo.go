package notificationrepo

import (
	"context"
	"errors"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// ErrNotFound indicates the requested notification does not exist.
var ErrNotFound = errors.New("notification not found")

// Repository provides access to persisted notifications.
//
// Result ordering expectations: newest first (CreatedAt descending, then ID).
type Repository interface {
	Create(ctx context.Context, n domain.Notification) error
	Update(ctx context.Context, n domain.Notification) error

	GetByID(ctx context.Context, id domain.NotificationID) (domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)

	// ListByAudiences returns notifications whose target audience is one of
	// the provided values.
	ListByAudiences(ctx context.Context, audiences []string) ([]domain.Notification, error)
}
