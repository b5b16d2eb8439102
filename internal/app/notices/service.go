// Package notices carries the notification use cases.
package notices

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
	clockport "github.com/ironhaven-fitness/gym-api/internal/ports/out/clock"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/notificationrepo"
)

type CreateNotificationInput struct {
	Title          string
	Message        string
	Type           string
	TargetAudience string
}

type Service struct {
	repo notificationrepo.Repository
	clk  clockport.Clock

	newNotificationID func() domain.NotificationID
}

func NewService(repo notificationrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newNotificationID: func() domain.NotificationID {
			return domain.NotificationID(uuid.NewString())
		},
	}
}

// ListNotifications filters by audience. An empty audience returns
// everything; "members" also matches notifications addressed to "all".
func (s *Service) ListNotifications(ctx context.Context, audience string) ([]domain.Notification, error) {
	audience = strings.ToLower(strings.TrimSpace(audience))
	switch audience {
	case "":
		return s.repo.List(ctx)
	case "members":
		return s.repo.ListByAudiences(ctx, []string{"members", "all"})
	default:
		return s.repo.ListByAudiences(ctx, []string{audience})
	}
}

func (s *Service) CreateNotification(ctx context.Context, in CreateNotificationInput) (domain.Notification, error) {
	title := domain.NormalizeHumanName(in.Title)
	if title == "" {
		return domain.Notification{}, &apperr.Error{
			Status:  http.StatusUnprocessableEntity,
			Code:    "VALIDATION_ERROR",
			Message: "invalid title",
			Details: map[string]any{"title": "must be non-empty"},
		}
	}
	if strings.TrimSpace(in.Message) == "" {
		return domain.Notification{}, &apperr.Error{
			Status:  http.StatusUnprocessableEntity,
			Code:    "VALIDATION_ERROR",
			Message: "invalid message",
			Details: map[string]any{"message": "must be non-empty"},
		}
	}

	typ := strings.ToLower(strings.TrimSpace(in.Type))
	if typ == "" {
		typ = "info"
	}
	audience := strings.ToLower(strings.TrimSpace(in.TargetAudience))
	if audience == "" {
		audience = "all"
	}

	n := domain.Notification{
		ID:             s.newNotificationID(),
		Title:          title,
		Message:        strings.TrimSpace(in.Message),
		Type:           typ,
		TargetAudience: audience,
		CreatedAt:      s.clk.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}

// MarkRead flips the read flag. Idempotent: marking an already-read
// notification succeeds.
func (s *Service) MarkRead(ctx context.Context, id domain.NotificationID) (domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notificationrepo.ErrNotFound) {
			return domain.Notification{}, apperr.New(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "No notification exists with the given id.")
		}
		return domain.Notification{}, err
	}
	if n.ReadFlag {
		return n, nil
	}
	n.ReadFlag = true
	if err := s.repo.Update(ctx, n); err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}
