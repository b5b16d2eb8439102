package notificationrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/notificationrepo"
)

// Repo is an in-memory implementation of notificationrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.NotificationID]domain.Notification
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.NotificationID]domain.Notification)}
}

func (r *Repo) Create(ctx context.Context, n domain.Notification) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[n.ID] = n
	return nil
}

func (r *Repo) Update(ctx context.Context, n domain.Notification) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[n.ID]; !ok {
		return notificationrepo.ErrNotFound
	}
	r.byID[n.ID] = n
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.NotificationID) (domain.Notification, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return domain.Notification{}, notificationrepo.ErrNotFound
	}
	return n, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Notification, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Notification, 0, len(r.byID))
	for _, n := range r.byID {
		out = append(out, n)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *Repo) ListByAudiences(ctx context.Context, audiences []string) ([]domain.Notification, error) {
	_ = ctx
	want := make(map[string]struct{}, len(audiences))
	for _, a := range audiences {
		want[a] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Notification, 0)
	for _, n := range r.byID {
		if _, ok := want[n.TargetAudience]; ok {
			out = append(out, n)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(ns []domain.Notification) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return string(ns[i].ID) < string(ns[j].ID)
		}
		return ns[i].CreatedAt.After(ns[j].CreatedAt)
	})
}
